package editor

import (
	"fmt"
	"unicode/utf8"

	"github.com/dshills/gridedit/internal/element"
	"github.com/dshills/gridedit/internal/grid"
)

// Activate performs the action of the panel element at address, as a click
// or keyboard activation would.
func (e *Editor) Activate(address string) error {
	el, addr, ok := e.panel.Resolve(address)
	if !ok {
		e.logger.Debug("activate %q: stale address", address)
		return fmt.Errorf("%w: %q", ErrStaleAddress, address)
	}

	switch el.Kind {
	case element.KindInput:
		if e.state.Editing && e.state.Focus == addr.Base() {
			return nil
		}
		if err := e.commitIfEditing(); err != nil {
			return err
		}
		e.focus(addr.Base(), el)
		return nil

	case element.KindCheckbox:
		if err := e.commitIfEditing(); err != nil {
			return err
		}
		return e.toggle(el.Attr)

	case element.KindHSelect:
		if err := e.commitIfEditing(); err != nil {
			return err
		}
		delta := 1
		if addr.Control == element.ControlPrev {
			delta = -1
		}
		return e.cycle(el, delta)

	case element.KindButton:
		if err := e.commitIfEditing(); err != nil {
			return err
		}
		if el.Action != nil {
			el.Action()
		}
		return nil
	}
	return nil
}

// focus opens a draft on an input seeded with the common value.
func (e *Editor) focus(address string, el element.Element) {
	e.state.Focus = address
	e.state.Cursor = address
	e.state.Editing = true
	e.state.CaretVisible = true
	e.state.Draft = ""
	if v, ok := e.CommonValue(el.Attr); ok {
		e.state.Draft = grid.FormatValue(v)
	}
}

// Insert appends r to the draft.
func (e *Editor) Insert(r rune) {
	if !e.state.Editing {
		return
	}
	e.state.Draft += string(r)
	e.state.CaretVisible = true
}

// Backspace removes the last rune of the draft.
func (e *Editor) Backspace() {
	if !e.state.Editing || e.state.Draft == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(e.state.Draft)
	e.state.Draft = e.state.Draft[:len(e.state.Draft)-size]
	e.state.CaretVisible = true
}

// Cancel discards the draft. Neither the grid nor the history changes.
func (e *Editor) Cancel() {
	e.state.clearDraft()
}

// Commit writes the draft to every selected cell as one undo step.
// An invalid draft stays open so it can be corrected.
func (e *Editor) Commit() error {
	if !e.state.Editing {
		return nil
	}
	el, _, ok := e.panel.Resolve(e.state.Focus)
	if !ok || !el.Focusable() {
		e.state.clearDraft()
		return fmt.Errorf("%w: %q", ErrStaleAddress, e.state.Focus)
	}

	if err := e.setAll(el.Attr, e.state.Draft); err != nil {
		return err
	}
	e.state.clearDraft()
	e.rebuild()
	return nil
}

func (e *Editor) commitIfEditing() error {
	if !e.state.Editing {
		return nil
	}
	return e.Commit()
}

// FocusNext commits the draft and focuses the next input.
func (e *Editor) FocusNext() error {
	return e.moveFocus(1)
}

// FocusPrev commits the draft and focuses the previous input.
func (e *Editor) FocusPrev() error {
	return e.moveFocus(-1)
}

func (e *Editor) moveFocus(delta int) error {
	if err := e.commitIfEditing(); err != nil {
		return err
	}

	target, ok := "", false
	switch {
	case e.state.Focus == "":
	case delta > 0:
		target, ok = e.panel.Next(e.state.Focus)
	default:
		target, ok = e.panel.Prev(e.state.Focus)
	}
	if !ok {
		target, ok = e.panel.First()
	}
	if !ok {
		return nil
	}
	el, _, _ := e.panel.Resolve(target)
	e.focus(target, el)
	return nil
}

// MoveCursor commits the draft and moves the activation cursor to the next
// (delta > 0) or previous activatable element. Landing on an input focuses
// it.
func (e *Editor) MoveCursor(delta int) error {
	if err := e.commitIfEditing(); err != nil {
		return err
	}

	step := e.panel.NextControl
	if delta < 0 {
		step = e.panel.PrevControl
	}
	target, ok := step(e.state.Cursor)
	if !ok {
		target, ok = step("")
	}
	if !ok {
		e.state.Cursor = ""
		return nil
	}

	el, _, _ := e.panel.Resolve(target)
	if el.Focusable() {
		e.focus(target, el)
		return nil
	}
	e.state.Focus = ""
	e.state.Cursor = target
	return nil
}

// Create fills the empty selected slots with new cells of type t.
func (e *Editor) Create(t grid.CellType) error {
	_, empty := e.partition()
	if len(empty) == 0 {
		return ErrNoSelection
	}
	olds := make([]*grid.Cell, len(empty))
	news := make([]*grid.Cell, len(empty))
	for i := range empty {
		news[i] = grid.NewCell(t)
	}
	if err := e.history.SwapCells(empty, olds, news); err != nil {
		return err
	}
	e.rebuild()
	return nil
}

// Delete empties the occupied selected slots.
func (e *Editor) Delete() error {
	occupied, _ := e.partition()
	if len(occupied) == 0 {
		return ErrNoSelection
	}
	g := e.Grid()
	olds := make([]*grid.Cell, len(occupied))
	news := make([]*grid.Cell, len(occupied))
	for i, idx := range occupied {
		cell, err := g.At(idx)
		if err != nil {
			return err
		}
		olds[i] = cell
	}
	if err := e.history.SwapCells(occupied, olds, news); err != nil {
		return err
	}
	e.rebuild()
	return nil
}

// toggle flips a boolean attribute: all set clears it, otherwise sets it.
func (e *Editor) toggle(key grid.AttrKey) error {
	v, ok := e.CommonValue(key)
	next := !(ok && v == true)
	if err := e.setAll(key, next); err != nil {
		return err
	}
	e.rebuild()
	return nil
}

// cycle moves a selector to the neighbouring option. A mixed selection
// starts from the first option.
func (e *Editor) cycle(el element.Element, delta int) error {
	n := len(el.Options)
	if n == 0 {
		return nil
	}
	current := -1
	if v, ok := e.CommonValue(el.Attr); ok {
		s := grid.FormatValue(v)
		for i, opt := range el.Options {
			if opt == s {
				current = i
				break
			}
		}
	}
	next := 0
	if current >= 0 {
		next = (current + delta + n) % n
	}
	if err := e.setAll(el.Attr, el.Options[next]); err != nil {
		return err
	}
	e.rebuild()
	return nil
}

// setAll sets key to value on every selected cell as one history entry.
// Nothing is recorded when every cell already holds value.
func (e *Editor) setAll(key grid.AttrKey, value any) error {
	sel := e.state.Selection
	if len(sel) == 0 {
		return ErrNoSelection
	}
	value, err := grid.NormalizeValue(key, value)
	if err != nil {
		e.logger.Warn("set %s: %v", key, err)
		return err
	}

	g := e.Grid()
	olds := make([]any, len(sel))
	news := make([]any, len(sel))
	changed := false
	for i, idx := range sel {
		old, err := g.Attr(idx, key)
		if err != nil {
			return err
		}
		olds[i] = old
		news[i] = value
		if old != value {
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return e.history.SetAttributes(sel, key, olds, news)
}
