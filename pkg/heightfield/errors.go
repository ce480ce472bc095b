package heightfield

import "errors"

var (
	// ErrInvalidArgument reports a precondition violation. Nothing is computed
	// or modified when it is returned.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfBounds reports a sample coordinate outside the grid.
	ErrOutOfBounds = errors.New("sample out of bounds")
)
