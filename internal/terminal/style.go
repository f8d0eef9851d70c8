package terminal

import (
	"github.com/dshills/gridedit/internal/grid"
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme holds the base styles of the view.
type Theme struct {
	Cells    map[grid.CellType]tcell.Style
	Empty    tcell.Style
	Panel    tcell.Style
	Focused  tcell.Style
	Button   tcell.Style
	Status   tcell.Style
	Error    tcell.Style
	Selected tcell.AttrMask
	Hovered  tcell.AttrMask
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	base := tcell.StyleDefault
	return Theme{
		Cells: map[grid.CellType]tcell.Style{
			grid.TypeSeat:   base.Foreground(tcell.ColorGreen),
			grid.TypeAisle:  base.Foreground(tcell.ColorGray),
			grid.TypeWall:   base.Foreground(tcell.ColorWhite).Background(tcell.ColorDimGray),
			grid.TypeDoor:   base.Foreground(tcell.ColorYellow),
			grid.TypeCustom: base.Foreground(tcell.ColorAqua),
		},
		Empty:    base.Foreground(tcell.ColorDimGray),
		Panel:    base,
		Focused:  base.Underline(true),
		Button:   base.Bold(true),
		Status:   base.Reverse(true),
		Error:    base.Foreground(tcell.ColorRed).Reverse(true),
		Selected: tcell.AttrReverse,
		Hovered:  tcell.AttrBold,
	}
}

// Color converts a hex colour to a tcell colour. ok is false for an empty
// or invalid string.
func Color(hex string) (tcell.Color, bool) {
	if hex == "" {
		return tcell.ColorDefault, false
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorDefault, false
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), true
}

// CellStyle returns the body and border styles of a cell. Style overrides
// replace the theme: fill is the background, text the foreground and
// stroke the border colour.
func (t Theme) CellStyle(cell *grid.Cell) (body, border tcell.Style) {
	if cell == nil {
		return t.Empty, t.Empty
	}
	body = t.Cells[cell.Type]
	border = body
	if cell.Style == nil {
		return body, border
	}
	if c, ok := Color(cell.Style.Fill); ok {
		body = body.Background(c)
		border = border.Background(c)
	}
	if c, ok := Color(cell.Style.Text); ok {
		body = body.Foreground(c)
	}
	if c, ok := Color(cell.Style.Stroke); ok {
		border = border.Foreground(c)
	}
	return body, border
}

// withAttrs adds attributes to a style.
func withAttrs(s tcell.Style, attrs tcell.AttrMask) tcell.Style {
	return s.Attributes(attrsOf(s) | attrs)
}

func attrsOf(s tcell.Style) tcell.AttrMask {
	_, _, attrs := s.Decompose()
	return attrs
}
