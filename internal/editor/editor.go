package editor

import (
	"sort"

	"github.com/dshills/gridedit/internal/element"
	"github.com/dshills/gridedit/internal/grid"
	"github.com/dshills/gridedit/internal/history"
	"github.com/dshills/gridedit/internal/logging"
)

// Editor coordinates selection, the attribute panel and committed edits.
type Editor struct {
	history *history.Engine
	state   State
	panel   element.Tree
	logger  *logging.Logger
}

// Option configures an Editor.
type Option func(*Editor)

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithState starts the editor from a saved state, e.g. one decoded from a
// serialized State. Selected indices that do not exist in the grid are
// dropped.
func WithState(s State) Option {
	return func(e *Editor) {
		e.state = s.clone()
	}
}

// New creates an editor over the grid owned by h.
func New(h *history.Engine, opts ...Option) *Editor {
	e := &Editor{
		history: h,
		state:   NewState(),
		logger:  logging.Null,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.state.Session == "" {
		e.state.Session = NewState().Session
	}
	e.logger = e.logger.WithComponent("editor").WithField("session", e.state.Session)
	e.state.Selection = e.normalize(e.state.Selection)
	e.rebuild()
	return e
}

// State returns a copy of the editing state.
func (e *Editor) State() State {
	return e.state.clone()
}

// Panel returns the current element tree.
func (e *Editor) Panel() element.Tree {
	return e.panel
}

// Grid returns a read-only view of the edited grid.
func (e *Editor) Grid() grid.Reader {
	return e.history.Grid()
}

// History returns the history engine.
func (e *Editor) History() *history.Engine {
	return e.history
}

// Selected returns the selected indices in ascending order.
func (e *Editor) Selected() []int {
	return append([]int(nil), e.state.Selection...)
}

// IsSelected returns true if index is selected.
func (e *Editor) IsSelected(index int) bool {
	i := sort.SearchInts(e.state.Selection, index)
	return i < len(e.state.Selection) && e.state.Selection[i] == index
}

// Select replaces the selection.
func (e *Editor) Select(indices ...int) {
	e.setSelection(indices)
}

// Toggle adds index to the selection or removes it.
func (e *Editor) Toggle(index int) {
	if e.IsSelected(index) {
		out := make([]int, 0, len(e.state.Selection))
		for _, i := range e.state.Selection {
			if i != index {
				out = append(out, i)
			}
		}
		e.setSelection(out)
		return
	}
	e.setSelection(append(e.Selected(), index))
}

// SelectRect selects every slot in the rectangle spanned by two corners.
func (e *Editor) SelectRect(row0, col0, row1, col1 int) {
	if row0 > row1 {
		row0, row1 = row1, row0
	}
	if col0 > col1 {
		col0, col1 = col1, col0
	}
	g := e.Grid()
	var indices []int
	for r := row0; r <= row1; r++ {
		for c := col0; c <= col1; c++ {
			if i := g.Index(r, c); i >= 0 {
				indices = append(indices, i)
			}
		}
	}
	e.setSelection(indices)
}

// ClearSelection empties the selection.
func (e *Editor) ClearSelection() {
	e.setSelection(nil)
}

// Load replaces the grid, discarding history and selection.
func (e *Editor) Load(g *grid.Grid) {
	e.history.Reset(g)
	e.state.Selection = nil
	e.state.Focus = ""
	e.state.Cursor = ""
	e.state.clearDraft()
	e.rebuild()
	e.logger.Info("loaded %dx%d grid", g.Cols(), g.Rows())
}

// Undo reverts the last committed edit. Any open draft is discarded.
func (e *Editor) Undo() error {
	e.state.clearDraft()
	err := e.history.Undo()
	e.rebuild()
	return err
}

// Redo reapplies the last undone edit. Any open draft is discarded.
func (e *Editor) Redo() error {
	e.state.clearDraft()
	err := e.history.Redo()
	e.rebuild()
	return err
}

// Restore undoes or redoes to a history checkpoint. Any open draft is
// discarded.
func (e *Editor) Restore(cp history.Checkpoint) error {
	e.state.clearDraft()
	err := e.history.Restore(cp)
	e.rebuild()
	return err
}

// Tick advances the caret blink phase.
func (e *Editor) Tick() {
	if e.state.Editing {
		e.state.CaretVisible = !e.state.CaretVisible
	}
}

func (e *Editor) setSelection(indices []int) {
	e.state.Selection = e.normalize(indices)
	e.state.Focus = ""
	e.state.Cursor = ""
	e.state.clearDraft()
	e.rebuild()
}

// normalize sorts, dedupes and drops indices outside the grid.
func (e *Editor) normalize(indices []int) []int {
	g := e.Grid()
	seen := make(map[int]struct{}, len(indices))
	out := make([]int, 0, len(indices))
	for _, i := range indices {
		if !g.InRange(i) {
			continue
		}
		if _, ok := seen[i]; ok {
			continue
		}
		seen[i] = struct{}{}
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// partition splits the selection into occupied and empty slots.
func (e *Editor) partition() (occupied, empty []int) {
	g := e.Grid()
	for _, i := range e.state.Selection {
		if g.IsEmpty(i) {
			empty = append(empty, i)
		} else {
			occupied = append(occupied, i)
		}
	}
	return occupied, empty
}
