package history

// PeekUndo returns info about the next undo without performing it.
func (e *Engine) PeekUndo() (EntryInfo, bool) {
	if !e.CanUndo() {
		return EntryInfo{}, false
	}
	return e.describe(e.log[e.cursor-1]), true
}

// PeekRedo returns info about the next redo without performing it.
func (e *Engine) PeekRedo() (EntryInfo, bool) {
	if !e.CanRedo() {
		return EntryInfo{}, false
	}
	return e.describe(e.log[e.cursor]), true
}

func (e *Engine) describe(rec record) EntryInfo {
	if rec.entry == nil {
		return EntryInfo{Timestamp: rec.timestamp}
	}
	return EntryInfo{
		Kind:        rec.entry.Kind(),
		Description: rec.entry.Description(),
		Indices:     rec.entry.Indices(),
		Timestamp:   rec.timestamp,
	}
}

// Checkpoint marks a state of the grid that history can return to.
type Checkpoint struct {
	seq uint64
}

// CreateCheckpoint marks the current state.
func (e *Engine) CreateCheckpoint() Checkpoint {
	return Checkpoint{seq: e.seqAt(e.cursor)}
}

// AtCheckpoint returns true if the grid is in the checkpoint's state.
func (e *Engine) AtCheckpoint(cp Checkpoint) bool {
	return e.seqAt(e.cursor) == cp.seq
}

// Restore undoes or redoes until the grid is in the checkpoint's state.
// It returns ErrCheckpointLost, changing nothing, when that state was
// trimmed, truncated by a later commit or discarded by Reset. A failing
// step stops the walk where it is.
func (e *Engine) Restore(cp Checkpoint) error {
	target, ok := e.position(cp)
	if !ok {
		return e.reject("restore", ErrCheckpointLost)
	}
	for e.cursor > target {
		if err := e.Undo(); err != nil {
			return err
		}
	}
	for e.cursor < target {
		if err := e.Redo(); err != nil {
			return err
		}
	}
	return nil
}

// seqAt returns the number of the state with n entries applied.
func (e *Engine) seqAt(n int) uint64 {
	if n == 0 {
		return e.base
	}
	return e.log[n-1].seq
}

// position returns the cursor at which the checkpoint's state holds.
func (e *Engine) position(cp Checkpoint) (int, bool) {
	if cp.seq == e.base {
		return 0, true
	}
	for i, rec := range e.log {
		if rec.seq == cp.seq {
			return i + 1, true
		}
	}
	return 0, false
}
