package outline

import "errors"

var (
	// ErrIndexOutOfRange is returned by index-based accessors and mutators
	// when the index doesn't refer to an existing element.
	ErrIndexOutOfRange = errors.New("outline: index out of range")

	// ErrInvalidOperation is returned for structurally disallowed edits,
	// such as setting an incoming handle on the first point of an open
	// contour.
	ErrInvalidOperation = errors.New("outline: invalid operation")

	// ErrNotFound is returned when removing an object that isn't part of
	// the collection it is being removed from.
	ErrNotFound = errors.New("outline: not found")
)
