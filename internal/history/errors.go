package history

import (
	"errors"
	"fmt"
)

// Common errors for history operations.
var (
	// ErrNothingToUndo is returned by Undo when the cursor is at the start.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo is returned by Redo when the cursor is at the end.
	ErrNothingToRedo = errors.New("nothing to redo")

	// ErrLengthMismatch indicates batched arguments of unequal length.
	ErrLengthMismatch = errors.New("indices and values differ in length")

	// ErrDuplicateIndex indicates a batch naming the same slot twice.
	ErrDuplicateIndex = errors.New("duplicate index in batch")

	// ErrDiverged indicates the grid no longer holds the state an entry expects.
	ErrDiverged = errors.New("grid diverged from history")

	// ErrCheckpointLost indicates a checkpoint whose state was trimmed,
	// truncated or reset out of the log.
	ErrCheckpointLost = errors.New("checkpoint no longer in history")

	// ErrMissingEntry indicates the cursor points past the log or at a nil entry.
	ErrMissingEntry = errors.New("missing history entry at cursor")
)

// TargetError reports which slot made an operation fail.
type TargetError struct {
	Op    string // Operation name (e.g., "setAttributes", "undo")
	Index int    // Slot index that failed
	Err   error  // Underlying error
}

func (e *TargetError) Error() string {
	return fmt.Sprintf("%s: cell %d: %v", e.Op, e.Index, e.Err)
}

func (e *TargetError) Unwrap() error {
	return e.Err
}
