package terminal

import (
	"fmt"

	"github.com/dshills/gridedit/internal/collision"
	"github.com/dshills/gridedit/internal/editor"
	"github.com/dshills/gridedit/internal/element"
	"github.com/dshills/gridedit/internal/grid"
	"github.com/dshills/gridedit/internal/layout"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Screen rows used outside the grid.
const (
	titleRow   = 0
	gridTop    = 1
	panelGap   = 2
	caretGlyph = '_'
	emptyGlyph = '·'
)

// Renderer draws an editor onto a tcell screen and registers the hit
// regions of what it drew.
type Renderer struct {
	screen     tcell.Screen
	theme      Theme
	cellWidth  int
	panelWidth int

	cells *collision.Dispatcher[int]
	panel *collision.Dispatcher[string]

	title     string
	modified  bool
	status    string
	statusErr bool
	hover     int
}

// NewRenderer creates a renderer. Cell and panel regions are registered
// with the given dispatchers on every Draw.
func NewRenderer(screen tcell.Screen, cells *collision.Dispatcher[int], panel *collision.Dispatcher[string], cellWidth, panelWidth int) *Renderer {
	if cellWidth < 1 {
		cellWidth = 1
	}
	return &Renderer{
		screen:     screen,
		theme:      DefaultTheme(),
		cellWidth:  cellWidth,
		panelWidth: panelWidth,
		cells:      cells,
		panel:      panel,
		hover:      -1,
	}
}

// SetTitle sets the text of the title bar.
func (r *Renderer) SetTitle(title string) {
	r.title = title
}

// SetModified marks the title as having unsaved changes.
func (r *Renderer) SetModified(modified bool) {
	r.modified = modified
}

// SetStatus sets the status line message.
func (r *Renderer) SetStatus(msg string, isErr bool) {
	r.status = msg
	r.statusErr = isErr
}

// SetHover marks the slot under the pointer, -1 for none.
func (r *Renderer) SetHover(index int) {
	r.hover = index
}

// CellAt returns the slot index drawn at screen position (x, y), or -1.
func (r *Renderer) CellAt(g grid.Reader, x, y int) int {
	if x < 0 || y < gridTop {
		return -1
	}
	return g.Index(y-gridTop, x/r.cellWidth)
}

// region returns a collision covering w by h terminal cells at (x, y).
// Containment is inclusive on every edge, so the extent is one less than
// the cell count.
func region[R any](x, y, w, h int, ref R) collision.Collision[R] {
	return collision.Collision[R]{X: x, Y: y, Width: w - 1, Height: h - 1, Ref: ref}
}

// Draw renders one frame and replaces the registered regions.
func (r *Renderer) Draw(ed *editor.Editor) {
	r.screen.Clear()
	width, height := r.screen.Size()

	r.drawTitle(ed, width)
	cellRegions := r.drawGrid(ed)
	left := ed.Grid().Cols()*r.cellWidth + panelGap
	panelRegions := r.drawPanel(ed, left, height-1)
	r.drawStatus(width, height-1)

	r.cells.RegisterCollisions(cellRegions)
	r.panel.RegisterCollisions(panelRegions)
	r.screen.Show()
}

func (r *Renderer) drawTitle(ed *editor.Editor, width int) {
	h := ed.History()
	title := r.title
	if r.modified {
		title += " *"
	}
	text := fmt.Sprintf(" %s  [%d/%d]", title, h.Cursor(), h.Len())
	if info, ok := h.PeekUndo(); ok {
		text += "  undo: " + info.Description
	}
	if info, ok := h.PeekRedo(); ok {
		text += "  redo: " + info.Description
	}
	r.fill(0, titleRow, width, r.theme.Status)
	r.drawText(0, titleRow, width, text, r.theme.Status)
}

func (r *Renderer) drawGrid(ed *editor.Editor) []collision.Collision[int] {
	g := ed.Grid()
	regions := make([]collision.Collision[int], 0, g.Len())

	for i := 0; i < g.Len(); i++ {
		row, col := g.Coords(i)
		x, y := col*r.cellWidth, gridTop+row

		cell, _ := g.At(i)
		body, border := r.theme.CellStyle(cell)
		var attrs tcell.AttrMask
		if ed.IsSelected(i) {
			attrs |= r.theme.Selected
		}
		if i == r.hover {
			attrs |= r.theme.Hovered
		}
		body, border = withAttrs(body, attrs), withAttrs(border, attrs)

		glyph := emptyGlyph
		if cell != nil {
			glyph = layout.Symbol(cell.Type)
		}
		r.drawSlot(x, y, glyph, body, border, cell != nil && cell.Style != nil && cell.Style.Stroke != "")

		regions = append(regions, region(x, y, r.cellWidth, 1, i))
	}
	return regions
}

// drawSlot draws one grid slot: the glyph centred, framed by brackets when
// the cell has a stroke colour and the slot is wide enough.
func (r *Renderer) drawSlot(x, y int, glyph rune, body, border tcell.Style, framed bool) {
	for dx := 0; dx < r.cellWidth; dx++ {
		r.screen.SetContent(x+dx, y, ' ', nil, body)
	}
	if framed && r.cellWidth >= 3 {
		r.screen.SetContent(x, y, '[', nil, border)
		r.screen.SetContent(x+r.cellWidth-1, y, ']', nil, border)
	}
	r.screen.SetContent(x+(r.cellWidth-1)/2, y, glyph, nil, body)
}

func (r *Renderer) drawPanel(ed *editor.Editor, left, bottom int) []collision.Collision[string] {
	var regions []collision.Collision[string]
	y := gridTop
	state := ed.State()

	line := func(indent int, address string, el element.Element) {
		if y >= bottom {
			return
		}
		x := left + indent
		width := r.panelWidth - indent
		regions = append(regions, r.drawElement(ed, state, x, y, width, address, el)...)
		y++
	}

	for i, el := range ed.Panel() {
		if el.Kind != element.KindGroup {
			line(0, element.ItemAddress(i), el)
			continue
		}
		if y < bottom {
			r.drawText(left, y, r.panelWidth, el.Label, r.theme.Panel.Bold(true))
			y++
		}
		for j, leaf := range el.Elements {
			line(2, element.GroupAddress(i, j), leaf)
		}
	}
	return regions
}

// drawElement draws one panel element on a single line and returns its
// hit regions.
func (r *Renderer) drawElement(ed *editor.Editor, state editor.State, x, y, width int, address string, el element.Element) []collision.Collision[string] {
	style := r.theme.Panel
	focused := state.Focus == address || state.Cursor == address
	if focused {
		style = r.theme.Focused
	}

	switch el.Kind {
	case element.KindLabel:
		r.drawText(x, y, width, el.Label, style)
		return nil

	case element.KindInput:
		text := el.Label + ": " + ed.Display(address)
		if focused && state.Editing && state.CaretVisible {
			text += string(caretGlyph)
		}
		w := r.drawText(x, y, width, text, style)
		return []collision.Collision[string]{region(x, y, max(w, 1), 1, address)}

	case element.KindCheckbox:
		w := r.drawText(x, y, width, ed.Display(address)+" "+el.Label, style)
		return []collision.Collision[string]{region(x, y, max(w, 1), 1, address)}

	case element.KindHSelect:
		lw := r.drawText(x, y, width, el.Label+": ", style)
		x += lw
		width -= lw
		prev := r.drawText(x, y, width, "<", r.theme.Button)
		value := r.drawText(x+prev, y, width-prev, " "+ed.Display(address)+" ", style)
		next := r.drawText(x+prev+value, y, width-prev-value, ">", r.theme.Button)
		out := []collision.Collision[string]{
			region(x, y, max(prev, 1), 1, element.WithControl(address, element.ControlPrev)),
		}
		if value > 0 {
			out = append(out, region(x+prev, y, value, 1, address))
		}
		if next > 0 {
			out = append(out, region(x+prev+value, y, next, 1, element.WithControl(address, element.ControlNext)))
		}
		return out

	case element.KindButton:
		button := r.theme.Button
		if focused {
			button = r.theme.Focused
		}
		w := r.drawText(x, y, width, "[ "+el.Label+" ]", button)
		return []collision.Collision[string]{region(x, y, max(w, 1), 1, address)}
	}
	return nil
}

func (r *Renderer) drawStatus(width, y int) {
	if r.status == "" {
		return
	}
	style := r.theme.Status
	if r.statusErr {
		style = r.theme.Error
	}
	r.fill(0, y, width, style)
	r.drawText(0, y, width, " "+r.status, style)
}

// drawText draws s clipped to width columns and returns the columns used.
func (r *Renderer) drawText(x, y, width int, s string, style tcell.Style) int {
	if width <= 0 {
		return 0
	}
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	used := 0
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		r.screen.SetContent(x+used, y, ch, nil, style)
		used += w
	}
	return used
}

func (r *Renderer) fill(x, y, width int, style tcell.Style) {
	for dx := 0; dx < width; dx++ {
		r.screen.SetContent(x+dx, y, ' ', nil, style)
	}
}
