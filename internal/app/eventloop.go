package app

import (
	"github.com/dshills/gridedit/internal/collision"
	"github.com/dshills/gridedit/internal/element"
	"github.com/dshills/gridedit/internal/history"
	"github.com/dshills/gridedit/internal/terminal"
	"github.com/gdamore/tcell/v2"
)

// handleEvent processes one terminal event.
func (app *Application) handleEvent(ev tcell.Event) error {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return app.handleKey(e)

	case *tcell.EventMouse:
		app.pointer.Translate(e)
		return nil

	case *tcell.EventResize:
		app.screen.Sync()
		return nil

	case *tcell.EventInterrupt:
		return app.handleInterrupt(e.Data())
	}
	return nil
}

func (app *Application) handleKey(ev *tcell.EventKey) error {
	ed := app.editor
	action, r := terminal.KeyAction(ev)

	var err error
	switch action {
	case terminal.ActionQuit:
		return ErrQuit
	case terminal.ActionFocusNext:
		err = ed.FocusNext()
	case terminal.ActionFocusPrev:
		err = ed.FocusPrev()
	case terminal.ActionCommit:
		if ed.State().Editing {
			err = ed.Commit()
		} else {
			err = app.activate(ed.State().Cursor)
		}
	case terminal.ActionCursorNext:
		err = ed.MoveCursor(1)
	case terminal.ActionCursorPrev:
		err = ed.MoveCursor(-1)
	case terminal.ActionDecrement, terminal.ActionIncrement:
		el, _, ok := ed.Panel().Resolve(ed.State().Cursor)
		if ed.State().Editing || !ok || el.Kind != element.KindHSelect {
			return nil
		}
		c := element.ControlNext
		if action == terminal.ActionDecrement {
			c = element.ControlPrev
		}
		err = app.activate(element.WithControl(ed.State().Cursor, c))
	case terminal.ActionRevert:
		err = app.Revert()
	case terminal.ActionCancel:
		if ed.State().Editing {
			ed.Cancel()
		} else {
			ed.ClearSelection()
		}
	case terminal.ActionUndo:
		err = ed.Undo()
	case terminal.ActionRedo:
		err = ed.Redo()
	case terminal.ActionSave:
		if err = app.Save(); err == nil {
			app.setStatus("saved "+app.layoutPath, nil)
			return nil
		}
	case terminal.ActionInsert:
		if r == ' ' && !ed.State().Editing {
			err = app.activate(ed.State().Cursor)
			break
		}
		ed.Insert(r)
	case terminal.ActionBackspace:
		ed.Backspace()
	default:
		return nil
	}

	app.report(action.String(), err)
	return nil
}

// activate clicks the panel region registered for address, as a pointer
// click on it would. An address drawn off screen is activated directly.
func (app *Application) activate(address string) error {
	if address == "" {
		return nil
	}
	for _, c := range app.panel.Regions() {
		if c.Ref == address {
			app.activateErr = nil
			app.panel.LeftClick(c.X, c.Y)
			return app.activateErr
		}
	}
	return app.editor.Activate(address)
}

// report puts the outcome of a user action on the status line.
func (app *Application) report(op string, err error) {
	switch {
	case err == nil:
		app.setStatus("", nil)
	case history.IsIdle(err):
		app.setStatus(err.Error(), nil)
	default:
		app.logger.Debug("%s: %v", op, err)
		app.setStatus("", err)
	}
}

func (app *Application) handleInterrupt(data any) error {
	switch d := data.(type) {
	case tickEvent:
		app.editor.Tick()
	case quitEvent:
		return ErrQuit
	case reloadEvent:
		app.reload(d.path)
	case watchError:
		app.logger.Warn("watcher: %v", d.err)
	}
	return nil
}

// subscribe connects the dispatchers to the editor.
func (app *Application) subscribe() {
	app.panel.OnClick(func(c collision.Collision[string], buttons collision.Buttons) {
		if buttons.Has(collision.ButtonLeft) {
			app.activateErr = app.editor.Activate(c.Ref)
			app.report("activate", app.activateErr)
		}
	})

	app.cells.OnClick(func(c collision.Collision[int], buttons collision.Buttons) {
		switch {
		case buttons.Has(collision.ButtonLeft):
			app.editor.Select(c.Ref)
		case buttons.Has(collision.ButtonRight):
			app.editor.Toggle(c.Ref)
		}
	})

	app.cells.OnHover(func(c collision.Collision[int], _ collision.Buttons) {
		if c.IsNone() {
			app.renderer.SetHover(-1)
			return
		}
		app.renderer.SetHover(c.Ref)
	})

	// Dragging with the left button selects the rectangle between the
	// press and the pointer. Listeners run before the dispatcher records
	// the new position, so the pointer is Latest plus the delta.
	selectDrag := func(dx, dy int, buttons collision.Buttons) {
		if !buttons.Has(collision.ButtonLeft) {
			return
		}
		g := app.editor.Grid()
		anchor, latest := app.cells.Anchor(), app.cells.Latest()
		from := app.renderer.CellAt(g, anchor.X, anchor.Y)
		to := app.renderer.CellAt(g, latest.X+dx, latest.Y+dy)
		if from < 0 || to < 0 {
			return
		}
		r0, c0 := g.Coords(from)
		r1, c1 := g.Coords(to)
		app.editor.SelectRect(r0, c0, r1, c1)
	}
	app.cells.OnDrag(selectDrag)
	app.cells.OnDragEnd(selectDrag)
}
