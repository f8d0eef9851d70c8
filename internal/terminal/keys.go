package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Action is an editor command bound to a key.
type Action uint8

const (
	ActionNone Action = iota
	ActionFocusNext
	ActionFocusPrev
	ActionCommit
	ActionCancel
	ActionUndo
	ActionRedo
	ActionSave
	ActionQuit
	ActionInsert
	ActionBackspace
	ActionCursorNext
	ActionCursorPrev
	ActionDecrement
	ActionIncrement
	ActionRevert
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionFocusNext:
		return "focus-next"
	case ActionFocusPrev:
		return "focus-prev"
	case ActionCommit:
		return "commit"
	case ActionCancel:
		return "cancel"
	case ActionUndo:
		return "undo"
	case ActionRedo:
		return "redo"
	case ActionSave:
		return "save"
	case ActionQuit:
		return "quit"
	case ActionInsert:
		return "insert"
	case ActionBackspace:
		return "backspace"
	case ActionCursorNext:
		return "cursor-next"
	case ActionCursorPrev:
		return "cursor-prev"
	case ActionDecrement:
		return "decrement"
	case ActionIncrement:
		return "increment"
	case ActionRevert:
		return "revert"
	default:
		return "none"
	}
}

// KeyAction maps a key event to an action. For ActionInsert the rune to
// insert is returned as well.
func KeyAction(ev *tcell.EventKey) (Action, rune) {
	switch ev.Key() {
	case tcell.KeyTab:
		return ActionFocusNext, 0
	case tcell.KeyBacktab:
		return ActionFocusPrev, 0
	case tcell.KeyEnter:
		return ActionCommit, 0
	case tcell.KeyEscape:
		return ActionCancel, 0
	case tcell.KeyCtrlZ:
		return ActionUndo, 0
	case tcell.KeyCtrlY:
		return ActionRedo, 0
	case tcell.KeyCtrlS:
		return ActionSave, 0
	case tcell.KeyCtrlR:
		return ActionRevert, 0
	case tcell.KeyDown:
		return ActionCursorNext, 0
	case tcell.KeyUp:
		return ActionCursorPrev, 0
	case tcell.KeyLeft:
		return ActionDecrement, 0
	case tcell.KeyRight:
		return ActionIncrement, 0
	case tcell.KeyCtrlQ, tcell.KeyCtrlC:
		return ActionQuit, 0
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return ActionBackspace, 0
	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return ctrlRune(r), 0
		}
		if unicode.IsPrint(r) {
			return ActionInsert, r
		}
	}
	return ActionNone, 0
}

// ctrlRune maps Ctrl+letter reported as a rune rather than a control key.
func ctrlRune(r rune) Action {
	switch unicode.ToLower(r) {
	case 'z':
		return ActionUndo
	case 'y':
		return ActionRedo
	case 's':
		return ActionSave
	case 'r':
		return ActionRevert
	case 'q', 'c':
		return ActionQuit
	}
	return ActionNone
}
