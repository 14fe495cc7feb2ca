package alloc

import "errors"

var (
	// ErrAllocFailed indicates the memory provider could not satisfy the request.
	ErrAllocFailed = errors.New("alloc: allocation failed")

	// ErrBadLayout indicates a layout with invalid size or alignment.
	ErrBadLayout = errors.New("alloc: bad layout")

	// ErrMmapUnsupported indicates the mmap provider is unavailable on this platform.
	ErrMmapUnsupported = errors.New("alloc: mmap not supported on this platform")
)
