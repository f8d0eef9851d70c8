package layout

import (
	"errors"
	"fmt"
)

// Layout errors.
var (
	// ErrNoRows indicates a layout without rows.
	ErrNoRows = errors.New("layout has no rows")

	// ErrRaggedRows indicates rows of different lengths.
	ErrRaggedRows = errors.New("rows differ in length")

	// ErrUnknownSymbol indicates a row symbol with no cell type.
	ErrUnknownSymbol = errors.New("unknown cell symbol")

	// ErrCellOutOfRange indicates an override outside the grid.
	ErrCellOutOfRange = errors.New("cell override outside grid")

	// ErrInvalidJSON indicates malformed or mistyped JSON layout data.
	ErrInvalidJSON = errors.New("invalid JSON layout")

	// ErrMissingPosition indicates a cell override without row or col.
	ErrMissingPosition = errors.New("cell override needs row and col")

	// ErrEmptyOverride indicates an override on an empty slot.
	ErrEmptyOverride = errors.New("cell override on empty slot")
)

// ParseError describes a layout that could not be decoded or built.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	path := e.Path
	if path == "" {
		path = "<data>"
	}
	if e.Line > 0 {
		return fmt.Sprintf("layout error in %s at line %d: %s", path, e.Line, e.Message)
	}
	return fmt.Sprintf("layout error in %s: %s", path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
