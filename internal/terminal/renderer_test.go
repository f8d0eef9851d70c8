package terminal

import (
	"strings"
	"testing"

	"github.com/dshills/gridedit/internal/collision"
	"github.com/dshills/gridedit/internal/editor"
	"github.com/dshills/gridedit/internal/grid"
	"github.com/dshills/gridedit/internal/history"
	"github.com/gdamore/tcell/v2"
)

type fixture struct {
	screen tcell.SimulationScreen
	ed     *editor.Editor
	cells  *collision.Dispatcher[int]
	panel  *collision.Dispatcher[string]
	r      *Renderer
}

// Helper to render a 3x1 grid (seat, empty, wall) on an 80x24 screen.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(80, 24)

	g, err := grid.New(3, 1)
	if err != nil {
		t.Fatal(err)
	}
	_ = g.Put(0, grid.NewCell(grid.TypeSeat))
	_ = g.Put(2, grid.NewCell(grid.TypeWall))

	f := &fixture{
		screen: s,
		ed:     editor.New(history.New(g)),
		cells:  collision.NewDispatcher[int](),
		panel:  collision.NewDispatcher[string](),
	}
	f.r = NewRenderer(s, f.cells, f.panel, 3, 32)
	f.r.SetTitle("test")
	return f
}

func (f *fixture) rowText(y int) string {
	w, _ := f.screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := f.screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func (f *fixture) regionFor(t *testing.T, address string) collision.Collision[string] {
	t.Helper()
	for _, c := range f.panel.Regions() {
		if c.Ref == address {
			return c
		}
	}
	t.Fatalf("no panel region for %q", address)
	return collision.None[string]()
}

func TestRendererDrawsGrid(t *testing.T) {
	f := newFixture(t)
	f.r.Draw(f.ed)

	for _, tt := range []struct {
		x    int
		want rune
	}{
		{1, 'S'},
		{4, emptyGlyph},
		{7, 'W'},
	} {
		if r, _, _, _ := f.screen.GetContent(tt.x, gridTop); r != tt.want {
			t.Errorf("glyph at %d = %q, want %q", tt.x, r, tt.want)
		}
	}

	if !strings.Contains(f.rowText(titleRow), "test") {
		t.Errorf("title row %q lacks title", f.rowText(titleRow))
	}
}

func TestRendererRegistersCellRegions(t *testing.T) {
	f := newFixture(t)
	f.r.Draw(f.ed)

	regions := f.cells.Regions()
	if len(regions) != 3 {
		t.Fatalf("len(regions) = %d, want 3", len(regions))
	}

	tests := []struct {
		x    int
		want int
	}{
		{0, 0},
		{2, 0},
		{3, 1},
		{8, 2},
	}
	for _, tt := range tests {
		hits := f.cells.HitTest(tt.x, gridTop)
		if len(hits) != 1 || hits[0].Ref != tt.want {
			t.Errorf("HitTest(%d) = %v, want slot %d", tt.x, hits, tt.want)
		}
	}
	if hits := f.cells.HitTest(9, gridTop); len(hits) != 0 {
		t.Errorf("HitTest past grid = %v, want none", hits)
	}
}

func TestRendererMarksSelection(t *testing.T) {
	f := newFixture(t)
	f.ed.Select(0)
	f.r.Draw(f.ed)

	_, _, style, _ := f.screen.GetContent(1, gridTop)
	if _, _, attrs := style.Decompose(); attrs&tcell.AttrReverse == 0 {
		t.Error("selected cell not drawn reversed")
	}
	_, _, style, _ = f.screen.GetContent(7, gridTop)
	if _, _, attrs := style.Decompose(); attrs&tcell.AttrReverse != 0 {
		t.Error("unselected cell drawn reversed")
	}
}

func TestPanelClickActivates(t *testing.T) {
	f := newFixture(t)
	f.panel.OnClick(func(c collision.Collision[string], _ collision.Buttons) {
		if err := f.ed.Activate(c.Ref); err != nil {
			t.Errorf("Activate(%q) failed: %v", c.Ref, err)
		}
	})
	f.ed.Select(0)
	f.r.Draw(f.ed)

	next := f.regionFor(t, "1+")
	f.panel.LeftClick(next.X, next.Y)
	v, _ := f.ed.Grid().Attr(0, grid.AttrType)
	if v != grid.TypeAisle {
		t.Errorf("type = %v, want aisle", v)
	}

	f.r.Draw(f.ed)
	del := f.regionFor(t, "5")
	f.panel.LeftClick(del.X, del.Y)
	if !f.ed.Grid().IsEmpty(0) {
		t.Error("delete button did not empty slot 0")
	}
}

func TestPanelShowsDraftCaret(t *testing.T) {
	f := newFixture(t)
	f.ed.Select(0)
	if err := f.ed.Activate("2"); err != nil {
		t.Fatal(err)
	}
	f.ed.Insert('A')
	f.r.Draw(f.ed)

	name := f.regionFor(t, "2")
	if got := f.rowText(name.Y); !strings.Contains(got, "Name: A_") {
		t.Errorf("row %q lacks draft with caret", got)
	}
}

func TestStatusLine(t *testing.T) {
	f := newFixture(t)
	f.r.SetStatus("saved", false)
	f.r.Draw(f.ed)

	_, h := f.screen.Size()
	if got := f.rowText(h - 1); !strings.Contains(got, "saved") {
		t.Errorf("status row = %q", got)
	}
}

func TestColor(t *testing.T) {
	c, ok := Color("#ff0000")
	if !ok {
		t.Fatal("Color(#ff0000) not ok")
	}
	if r, g, b := c.RGB(); r != 255 || g != 0 || b != 0 {
		t.Errorf("RGB = %d,%d,%d, want 255,0,0", r, g, b)
	}
	for _, s := range []string{"", "red", "#12"} {
		if _, ok := Color(s); ok {
			t.Errorf("Color(%q) ok, want not ok", s)
		}
	}
}

func TestCellStyleOverrides(t *testing.T) {
	theme := DefaultTheme()
	cell := grid.NewCell(grid.TypeSeat)
	cell.Style = &grid.StyleOverride{Fill: "#0000ff", Stroke: "#00ff00"}

	body, border := theme.CellStyle(cell)
	blue, _ := Color("#0000ff")
	green, _ := Color("#00ff00")
	if _, bg, _ := body.Decompose(); bg != blue {
		t.Errorf("body background = %v, want blue", bg)
	}
	if fg, _, _ := border.Decompose(); fg != green {
		t.Errorf("border foreground = %v, want green", fg)
	}
}

func TestRendererTitle(t *testing.T) {
	tests := []struct {
		name     string
		modified bool
		undo     bool
		want     []string
		absent   []string
	}{
		{"clean", false, false, []string{"test  [0/0]"}, []string{"*", "undo:", "redo:"}},
		{"modified", true, false, []string{"test *", "undo: Set"}, []string{"redo:"}},
		{"after undo", true, true, []string{"[0/1]", "redo: Set"}, []string{"undo:"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.modified {
				f.ed.Select(0)
				if err := f.ed.Activate("3"); err != nil {
					t.Fatal(err)
				}
			}
			if tt.undo {
				if err := f.ed.Undo(); err != nil {
					t.Fatal(err)
				}
			}
			f.r.SetModified(tt.modified)
			f.r.Draw(f.ed)

			row := f.rowText(titleRow)
			for _, w := range tt.want {
				if !strings.Contains(row, w) {
					t.Errorf("title %q lacks %q", row, w)
				}
			}
			for _, a := range tt.absent {
				if strings.Contains(row, a) {
					t.Errorf("title %q contains %q", row, a)
				}
			}
		})
	}
}

func TestRendererHighlightsCursor(t *testing.T) {
	f := newFixture(t)
	f.ed.Select(0)
	if err := f.ed.MoveCursor(-1); err != nil { // Delete button
		t.Fatal(err)
	}
	f.r.Draw(f.ed)

	c := f.regionFor(t, f.ed.State().Cursor)
	_, _, style, _ := f.screen.GetContent(c.X, c.Y)
	if style != f.r.theme.Focused {
		t.Errorf("cursor style = %v, want focused", style)
	}
}
