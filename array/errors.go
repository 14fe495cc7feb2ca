package array

import "errors"

var (
	// ErrTooLong indicates a length that would exceed alloc.MaxLength.
	ErrTooLong = errors.New("array: length exceeds maximum")

	// ErrOutOfRange indicates an operation that would exceed a fixed capacity.
	ErrOutOfRange = errors.New("array: fixed capacity exceeded")

	// ErrInlineCapacity indicates inline storage cannot hold the requested
	// element count or alignment.
	ErrInlineCapacity = errors.New("array: inline storage cannot fit requested capacity")
)
