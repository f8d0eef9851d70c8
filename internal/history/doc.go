// Package history provides undo/redo for edits to a grid.Grid.
//
// The Engine owns the grid's mutation path. Every edit goes through one of
// four operations, each of which applies the change and records an Entry
// holding independent copies of both the previous and the new state:
//
//   - SetAttribute / SetAttributes change one attribute on one or many cells
//   - SwapCell / SwapCells replace whole slots, including empty <-> non-empty
//
// Batched operations are a single undo unit and are atomic: every target is
// validated before the grid is touched, so a bad index leaves both the grid
// and the log unchanged.
//
//	h := history.New(g, history.WithMaxEntries(500))
//	_ = h.SetAttributes([]int{3, 4}, grid.AttrName, []any{"A", "B"}, []any{"X", "X"})
//	_ = h.Undo()
//	_ = h.Redo()
//
// # Cursor
//
// The log is linear. A cursor separates applied entries from redo-able ones;
// committing a new edit while the cursor is behind the end discards the
// redo-able suffix.
//
// # Divergence
//
// Before undoing or redoing, the engine verifies that each target still holds
// the state the entry expects to leave. If something else changed the grid,
// the step fails with ErrDiverged rather than overwriting that change.
//
// # Thread Safety
//
// An Engine is not safe for concurrent use. It is driven from the single
// goroutine that handles input events.
package history
