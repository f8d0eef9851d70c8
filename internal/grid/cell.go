package grid

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// CellType classifies a non-empty cell.
type CellType uint8

const (
	// TypeSeat is a bookable seat.
	TypeSeat CellType = iota
	// TypeAisle is walkable floor.
	TypeAisle
	// TypeWall is a solid obstacle.
	TypeWall
	// TypeDoor is an entrance or exit.
	TypeDoor
	// TypeCustom is a user-defined marker.
	TypeCustom
)

// CellTypes lists every cell type in declaration order.
var CellTypes = []CellType{TypeSeat, TypeAisle, TypeWall, TypeDoor, TypeCustom}

// String returns the string representation of the cell type.
func (t CellType) String() string {
	switch t {
	case TypeSeat:
		return "seat"
	case TypeAisle:
		return "aisle"
	case TypeWall:
		return "wall"
	case TypeDoor:
		return "door"
	case TypeCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// ParseCellType parses the string form of a cell type.
func ParseCellType(s string) (CellType, error) {
	for _, t := range CellTypes {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: cell type %q", ErrInvalidValue, s)
}

// StyleOverride replaces parts of the theme for a single cell.
// Colours are hex strings ("#rrggbb"); an empty field inherits the theme.
type StyleOverride struct {
	Fill   string `yaml:"fill,omitempty" json:"fill,omitempty"`
	Stroke string `yaml:"stroke,omitempty" json:"stroke,omitempty"`
	Text   string `yaml:"text,omitempty" json:"text,omitempty"`
}

// IsZero returns true if the override changes nothing.
func (s *StyleOverride) IsZero() bool {
	return s == nil || (s.Fill == "" && s.Stroke == "" && s.Text == "")
}

// Clone returns a copy of the override, or nil for a nil receiver.
func (s *StyleOverride) Clone() *StyleOverride {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// Cell is the content of a non-empty grid slot.
type Cell struct {
	Type    CellType       `json:"type"`
	Name    string         `json:"name,omitempty"`
	Blocked bool           `json:"blocked,omitempty"`
	Style   *StyleOverride `json:"style,omitempty"`
}

// NewCell creates a cell of the given type with no name or style.
func NewCell(t CellType) *Cell {
	return &Cell{Type: t}
}

// Clone creates a deep copy of the cell. A nil cell clones to nil.
func (c *Cell) Clone() *Cell {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Style = c.Style.Clone()
	return &clone
}

// Equal reports whether two slots hold the same content.
// Two nil cells are equal; a nil style equals an all-empty style.
func (c *Cell) Equal(other *Cell) bool {
	if c == nil || other == nil {
		return c == nil && other == nil
	}
	if c.Type != other.Type || c.Name != other.Name || c.Blocked != other.Blocked {
		return false
	}
	if c.Style.IsZero() || other.Style.IsZero() {
		return c.Style.IsZero() && other.Style.IsZero()
	}
	return *c.Style == *other.Style
}

// Get returns the value of an attribute.
func (c *Cell) Get(key AttrKey) (any, error) {
	if c == nil {
		return nil, ErrEmptyCell
	}
	switch key {
	case AttrType:
		return c.Type, nil
	case AttrName:
		return c.Name, nil
	case AttrBlocked:
		return c.Blocked, nil
	case AttrFill:
		if c.Style == nil {
			return "", nil
		}
		return c.Style.Fill, nil
	case AttrStroke:
		if c.Style == nil {
			return "", nil
		}
		return c.Style.Stroke, nil
	case AttrText:
		if c.Style == nil {
			return "", nil
		}
		return c.Style.Text, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAttribute, key)
}

// Set assigns an attribute. The value is validated and normalized first;
// on error the cell is unchanged.
func (c *Cell) Set(key AttrKey, value any) error {
	if c == nil {
		return ErrEmptyCell
	}
	v, err := NormalizeValue(key, value)
	if err != nil {
		return err
	}

	switch key {
	case AttrType:
		c.Type = v.(CellType)
	case AttrName:
		c.Name = v.(string)
	case AttrBlocked:
		c.Blocked = v.(bool)
	case AttrFill, AttrStroke, AttrText:
		if c.Style == nil {
			c.Style = &StyleOverride{}
		}
		switch key {
		case AttrFill:
			c.Style.Fill = v.(string)
		case AttrStroke:
			c.Style.Stroke = v.(string)
		case AttrText:
			c.Style.Text = v.(string)
		}
		if c.Style.IsZero() {
			c.Style = nil
		}
	}
	return nil
}

// ValidateColor checks that s is empty or a hex colour.
func ValidateColor(s string) error {
	if s == "" {
		return nil
	}
	if _, err := colorful.Hex(s); err != nil {
		return fmt.Errorf("%w: colour %q", ErrInvalidValue, s)
	}
	return nil
}
