package grid

import (
	"errors"
	"testing"
)

func TestCellType_String(t *testing.T) {
	for _, ct := range CellTypes {
		parsed, err := ParseCellType(ct.String())
		if err != nil || parsed != ct {
			t.Errorf("ParseCellType(%q) = %v, %v", ct.String(), parsed, err)
		}
	}
	if CellType(42).String() != "unknown" {
		t.Error("out of range type should be unknown")
	}
	if _, err := ParseCellType("balcony"); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("ParseCellType(balcony) error = %v", err)
	}
}

func TestCellStyleAttributes(t *testing.T) {
	c := NewCell(TypeSeat)

	if v, _ := c.Get(AttrFill); v != "" {
		t.Errorf("fill without override = %v, want empty", v)
	}

	if err := c.Set(AttrFill, "#ff8800"); err != nil {
		t.Fatalf("Set fill failed: %v", err)
	}
	if c.Style == nil || c.Style.Fill != "#ff8800" {
		t.Fatalf("style not allocated: %+v", c.Style)
	}

	if err := c.Set(AttrText, "not-a-colour"); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("invalid colour error = %v", err)
	}
	if c.Style.Text != "" {
		t.Error("failed Set modified the cell")
	}

	if err := c.Set(AttrFill, ""); err != nil {
		t.Fatalf("clearing fill failed: %v", err)
	}
	if c.Style != nil {
		t.Errorf("empty override should be dropped, got %+v", c.Style)
	}
}

func TestCellEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Cell
		want bool
	}{
		{"both nil", nil, nil, true},
		{"nil vs cell", nil, NewCell(TypeSeat), false},
		{"same", &Cell{Type: TypeSeat, Name: "A"}, &Cell{Type: TypeSeat, Name: "A"}, true},
		{"different name", &Cell{Type: TypeSeat, Name: "A"}, &Cell{Type: TypeSeat, Name: "B"}, false},
		{"nil style vs zero style", &Cell{Type: TypeAisle}, &Cell{Type: TypeAisle, Style: &StyleOverride{}}, true},
		{"different style", &Cell{Style: &StyleOverride{Fill: "#000000"}}, &Cell{Style: &StyleOverride{Fill: "#ffffff"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"A1", "A1"},
		{TypeDoor, "door"},
		{true, "true"},
		{false, "false"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
