package editor

import (
	"fmt"

	"github.com/dshills/gridedit/internal/element"
	"github.com/dshills/gridedit/internal/grid"
)

// Mixed is displayed for an attribute whose value differs across the selection.
const Mixed = "(mixed)"

// rebuild regenerates the panel from the selection. Any previously issued
// address is invalid afterwards.
func (e *Editor) rebuild() {
	prev, _, hadCursor := e.panel.Resolve(e.state.Cursor)
	e.panel = e.buildPanel()
	if err := e.panel.Validate(); err != nil {
		e.logger.Error("panel: %v", err)
	}
	if e.state.Focus != "" {
		if el, _, ok := e.panel.Resolve(e.state.Focus); !ok || !el.Focusable() {
			e.state.Focus = ""
			e.state.clearDraft()
		}
	}
	// The cursor survives only while its address names the same kind of
	// element, e.g. a checkbox that was just toggled.
	if e.state.Cursor != "" {
		el, _, ok := e.panel.Resolve(e.state.Cursor)
		if !ok || !el.Activatable() || (hadCursor && el.Kind != prev.Kind) {
			e.state.Cursor = ""
		}
	}
}

func (e *Editor) buildPanel() element.Tree {
	sel := e.state.Selection
	if len(sel) == 0 {
		return element.Tree{element.Label("No selection")}
	}

	occupied, empty := e.partition()
	if len(empty) > 0 {
		tree := element.Tree{
			element.Label(fmt.Sprintf("%d empty, %d occupied", len(empty), len(occupied))),
		}
		for _, t := range []grid.CellType{grid.TypeSeat, grid.TypeAisle, grid.TypeWall} {
			tree = append(tree, element.Button("Create "+t.String(), func() {
				e.report("create", e.Create(t))
			}))
		}
		if len(occupied) > 0 {
			tree = append(tree, element.Button("Delete", func() {
				e.report("delete", e.Delete())
			}))
		}
		return tree
	}

	types := make([]string, len(grid.CellTypes))
	for i, t := range grid.CellTypes {
		types[i] = t.String()
	}

	summary := fmt.Sprintf("%d cells", len(sel))
	if len(sel) == 1 {
		row, col := e.Grid().Coords(sel[0])
		summary = fmt.Sprintf("Cell r%d c%d", row, col)
	}

	styleLabel := "Style +"
	if e.state.ShowStyle {
		styleLabel = "Style -"
	}

	tree := element.Tree{
		element.Label(summary),
		element.HSelect("Type", grid.AttrType, types...),
		element.Input("Name", grid.AttrName),
		element.Checkbox("Blocked", grid.AttrBlocked),
		element.Button(styleLabel, e.ToggleStyle),
		element.Button("Delete", func() {
			e.report("delete", e.Delete())
		}),
	}
	if e.state.ShowStyle {
		tree = append(tree, element.Group("Style",
			element.Input("Fill", grid.AttrFill),
			element.Input("Stroke", grid.AttrStroke),
			element.Input("Text", grid.AttrText),
		))
	}
	return tree
}

// ToggleStyle expands or collapses the style group.
func (e *Editor) ToggleStyle() {
	e.report("commit", e.commitIfEditing())
	e.state.ShowStyle = !e.state.ShowStyle
	e.rebuild()
}

// CommonValue returns the value of key shared by every selected cell.
// ok is false when the selection is empty, contains an empty slot, or the
// values differ.
func (e *Editor) CommonValue(key grid.AttrKey) (any, bool) {
	g := e.Grid()
	var common any
	for n, i := range e.state.Selection {
		v, err := g.Attr(i, key)
		if err != nil {
			return nil, false
		}
		if n == 0 {
			common = v
			continue
		}
		if v != common {
			return nil, false
		}
	}
	return common, len(e.state.Selection) > 0
}

// Display returns the text a front end shows for the element at address.
func (e *Editor) Display(address string) string {
	el, _, ok := e.panel.Resolve(address)
	if !ok {
		return ""
	}

	switch el.Kind {
	case element.KindInput:
		if e.state.Editing && e.state.Focus == address {
			return e.state.Draft
		}
		if v, ok := e.CommonValue(el.Attr); ok {
			return grid.FormatValue(v)
		}
		return Mixed
	case element.KindCheckbox:
		v, ok := e.CommonValue(el.Attr)
		switch {
		case !ok:
			return "[-]"
		case v == true:
			return "[x]"
		default:
			return "[ ]"
		}
	case element.KindHSelect:
		if v, ok := e.CommonValue(el.Attr); ok {
			return grid.FormatValue(v)
		}
		return Mixed
	default:
		return ""
	}
}

func (e *Editor) report(op string, err error) {
	if err != nil {
		e.logger.Warn("%s: %v", op, err)
	}
}
