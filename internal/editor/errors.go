package editor

import "errors"

// Editor errors.
var (
	// ErrStaleAddress indicates an address that does not resolve in the current panel.
	ErrStaleAddress = errors.New("address does not resolve in current panel")

	// ErrNoSelection indicates an edit with nothing selected.
	ErrNoSelection = errors.New("nothing selected")
)
