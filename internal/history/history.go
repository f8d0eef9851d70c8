package history

import (
	"errors"
	"time"

	"github.com/dshills/gridedit/internal/grid"
	"github.com/dshills/gridedit/internal/logging"
)

// DefaultMaxEntries bounds the log when no limit is configured.
const DefaultMaxEntries = 1000

// record wraps an entry with metadata.
type record struct {
	entry     Entry
	timestamp time.Time
	seq       uint64
}

// Engine applies edits to a grid and records them for undo/redo.
type Engine struct {
	grid *grid.Grid

	log    []record
	cursor int

	// seq numbers entries in commit order; base is the number of the state
	// at cursor 0 (the last trimmed entry, or a Reset).
	seq  uint64
	base uint64

	// Configuration
	maxEntries int
	logger     *logging.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxEntries limits the number of retained entries.
func WithMaxEntries(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxEntries = n
		}
	}
}

// WithLogger sets the logger failures are reported to.
func WithLogger(l *logging.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an engine that owns g.
func New(g *grid.Grid, opts ...Option) *Engine {
	e := &Engine{
		grid:       g,
		maxEntries: DefaultMaxEntries,
		logger:     logging.Null,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Grid returns a read-only view of the owned grid.
func (e *Engine) Grid() grid.Reader {
	return e.grid
}

// Reset installs a new grid and discards all history.
func (e *Engine) Reset(g *grid.Grid) {
	e.grid = g
	e.log = nil
	e.cursor = 0
	e.seq++
	e.base = e.seq
}

// SetAttribute sets key on the cell at index and records the change.
func (e *Engine) SetAttribute(index int, key grid.AttrKey, oldValue, newValue any) error {
	const op = "setAttribute"

	oldN, err := grid.NormalizeValue(key, oldValue)
	if err != nil {
		return e.reject(op, &TargetError{Op: op, Index: index, Err: err})
	}
	newN, err := grid.NormalizeValue(key, newValue)
	if err != nil {
		return e.reject(op, &TargetError{Op: op, Index: index, Err: err})
	}

	return e.commit(op, &SetAttribute{Index: index, Key: key, Old: oldN, New: newN})
}

// SetAttributes sets key on every cell in indices as one undo unit.
// indices, oldValues and newValues must be parallel.
func (e *Engine) SetAttributes(indices []int, key grid.AttrKey, oldValues, newValues []any) error {
	const op = "setAttributes"

	if len(oldValues) != len(indices) || len(newValues) != len(indices) {
		return e.reject(op, ErrLengthMismatch)
	}
	if len(indices) == 0 {
		return nil
	}
	if err := checkDuplicates(op, indices); err != nil {
		return e.reject(op, err)
	}

	entry := &SetAttributes{
		Index: append([]int(nil), indices...),
		Key:   key,
		Old:   make([]any, len(indices)),
		New:   make([]any, len(indices)),
	}
	for i, idx := range indices {
		oldN, err := grid.NormalizeValue(key, oldValues[i])
		if err != nil {
			return e.reject(op, &TargetError{Op: op, Index: idx, Err: err})
		}
		newN, err := grid.NormalizeValue(key, newValues[i])
		if err != nil {
			return e.reject(op, &TargetError{Op: op, Index: idx, Err: err})
		}
		entry.Old[i] = oldN
		entry.New[i] = newN
	}

	return e.commit(op, entry)
}

// SwapCell replaces the slot at index and records the change.
// A nil cell denotes an empty slot. Both cells are copied.
func (e *Engine) SwapCell(index int, oldCell, newCell *grid.Cell) error {
	return e.commit("swapCell", &SwapCell{
		Index: index,
		Old:   oldCell.Clone(),
		New:   newCell.Clone(),
	})
}

// SwapCells replaces every slot in indices as one undo unit.
func (e *Engine) SwapCells(indices []int, oldCells, newCells []*grid.Cell) error {
	const op = "swapCells"

	if len(oldCells) != len(indices) || len(newCells) != len(indices) {
		return e.reject(op, ErrLengthMismatch)
	}
	if len(indices) == 0 {
		return nil
	}
	if err := checkDuplicates(op, indices); err != nil {
		return e.reject(op, err)
	}

	entry := &SwapCells{
		Index: append([]int(nil), indices...),
		Old:   make([]*grid.Cell, len(indices)),
		New:   make([]*grid.Cell, len(indices)),
	}
	for i := range indices {
		entry.Old[i] = oldCells[i].Clone()
		entry.New[i] = newCells[i].Clone()
	}

	return e.commit(op, entry)
}

// commit validates, applies and appends an entry, discarding any redo-able
// suffix. Nothing changes if validation fails.
func (e *Engine) commit(op string, entry Entry) error {
	if err := entry.validate(e.grid); err != nil {
		return e.reject(op, err)
	}
	if err := entry.write(e.grid, sideNew); err != nil {
		return e.fail(op, err)
	}

	// Truncate the redo branch
	for i := e.cursor; i < len(e.log); i++ {
		e.log[i] = record{}
	}
	e.seq++
	e.log = append(e.log[:e.cursor], record{entry: entry, timestamp: time.Now(), seq: e.seq})
	e.cursor = len(e.log)

	e.trim()
	return nil
}

// Undo reverts the entry before the cursor.
// Returns ErrNothingToUndo when there is nothing applied.
func (e *Engine) Undo() error {
	const op = "undo"

	if e.cursor == 0 || len(e.log) == 0 {
		return ErrNothingToUndo
	}
	if e.cursor > len(e.log) {
		e.cursor = len(e.log)
		return e.fail(op, ErrMissingEntry)
	}

	entry := e.log[e.cursor-1].entry
	if entry == nil {
		return e.fail(op, ErrMissingEntry)
	}

	if err := e.step(entry, sideNew, sideOld); err != nil {
		return e.reject(op, err)
	}
	e.cursor--
	return nil
}

// Redo reapplies the entry at the cursor.
// Returns ErrNothingToRedo when every entry is applied.
func (e *Engine) Redo() error {
	const op = "redo"

	if len(e.log) == 0 || e.cursor == len(e.log) {
		return ErrNothingToRedo
	}
	if e.cursor > len(e.log) {
		e.cursor = len(e.log)
		return e.fail(op, ErrMissingEntry)
	}

	entry := e.log[e.cursor].entry
	if entry == nil {
		return e.fail(op, ErrMissingEntry)
	}

	if err := e.step(entry, sideOld, sideNew); err != nil {
		return e.reject(op, err)
	}
	e.cursor++
	return nil
}

// step moves the grid from one side of an entry to the other after checking
// that it currently holds the first.
func (e *Engine) step(entry Entry, from, to side) error {
	if err := entry.validate(e.grid); err != nil {
		return err
	}
	if err := entry.matches(e.grid, from); err != nil {
		return err
	}
	return entry.write(e.grid, to)
}

// trim drops the oldest applied entries beyond maxEntries.
func (e *Engine) trim() {
	excess := len(e.log) - e.maxEntries
	if excess > e.cursor {
		excess = e.cursor
	}
	if excess <= 0 {
		return
	}
	e.base = e.log[excess-1].seq
	kept := make([]record, len(e.log)-excess)
	copy(kept, e.log[excess:])
	e.log = kept
	e.cursor -= excess
}

// reject reports a failed operation that left the grid untouched.
func (e *Engine) reject(op string, err error) error {
	e.logger.WithComponent("history").Warn("%s rejected: %v", op, err)
	return err
}

// fail reports an internal invariant violation.
func (e *Engine) fail(op string, err error) error {
	e.logger.WithComponent("history").WithField("cursor", e.cursor).Error("%s: %v", op, err)
	return err
}

func checkDuplicates(op string, indices []int) error {
	seen := make(map[int]struct{}, len(indices))
	for _, idx := range indices {
		if _, ok := seen[idx]; ok {
			return &TargetError{Op: op, Index: idx, Err: ErrDuplicateIndex}
		}
		seen[idx] = struct{}{}
	}
	return nil
}

// IsIdle returns true if err only signals an exhausted history.
func IsIdle(err error) bool {
	return errors.Is(err, ErrNothingToUndo) || errors.Is(err, ErrNothingToRedo)
}

// Len returns the number of entries in the log.
func (e *Engine) Len() int {
	return len(e.log)
}

// Cursor returns the number of applied entries.
func (e *Engine) Cursor() int {
	return e.cursor
}

// CanUndo returns true if undo is available.
func (e *Engine) CanUndo() bool {
	return e.cursor > 0
}

// CanRedo returns true if redo is available.
func (e *Engine) CanRedo() bool {
	return e.cursor < len(e.log)
}
