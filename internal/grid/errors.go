package grid

import "errors"

// Grid errors.
var (
	// ErrIndexOutOfRange indicates a slot index outside the grid.
	ErrIndexOutOfRange = errors.New("cell index out of range")

	// ErrEmptyCell indicates an attribute access on an empty slot.
	ErrEmptyCell = errors.New("cell is empty")

	// ErrUnknownAttribute indicates an attribute key the model does not define.
	ErrUnknownAttribute = errors.New("unknown attribute")

	// ErrInvalidValue indicates a value of the wrong type or format for an attribute.
	ErrInvalidValue = errors.New("invalid attribute value")

	// ErrInvalidSize indicates non-positive grid dimensions.
	ErrInvalidSize = errors.New("invalid grid size")
)
