package liststore

import "errors"

var (
	// ErrOutOfRange indicates a position outside the valid bounds for the operation.
	ErrOutOfRange = errors.New("position out of range")

	// ErrInsufficientItems indicates an operation that needs at least two items.
	ErrInsufficientItems = errors.New("need at least two items")

	// ErrAlreadyEmpty is returned by Clear on an empty list. It is informational.
	ErrAlreadyEmpty = errors.New("list is already empty")

	// ErrEmptyItem indicates an item that is blank after trimming.
	ErrEmptyItem = errors.New("item must not be empty")

	// ErrLineBreak indicates an item containing a line break.
	ErrLineBreak = errors.New("item must not contain a line break")
)
