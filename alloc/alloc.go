package alloc

import "unsafe"

// Block is an opaque handle to provider-issued memory. Two Blocks compare
// equal exactly when they refer to the same memory, which is what the
// immutable package's identity check relies on.
//
// A Block must be deallocated through the allocator instance and Layout
// that produced it.
type Block struct {
	ptr unsafe.Pointer
}

// BlockAt wraps a raw pointer in a Block. The pointer must come from an
// Allocator implementation; arbitrary pointers break the release contract.
func BlockAt(p unsafe.Pointer) Block {
	return Block{ptr: p}
}

// Ptr returns the raw pointer to the start of the block.
func (b Block) Ptr() unsafe.Pointer {
	return b.ptr
}

// IsZero reports whether b is the zero Block, i.e. not backed by any memory.
func (b Block) IsZero() bool {
	return b.ptr == nil
}

// Allocator is the memory-provider contract all memkit containers build on.
//
// Implementations:
//   - Heap: default provider on the Go heap
//   - Mmap: anonymous-mapping provider (unix)
//   - Instrumented: counting/logging wrapper around another Allocator
//
// All operations are synchronous. Failures are reported as ErrAllocFailed
// (possibly wrapped); implementations never panic on exhaustion.
type Allocator interface {
	// Allocate obtains a new Block for the given layout. The block's
	// contents are unspecified.
	Allocate(layout Layout) (Block, error)

	// Resize grows or shrinks a block previously produced with oldLayout.
	// When both layouts share an alignment an in-place adjustment is
	// attempted; otherwise a new block is allocated, min(old, new) bytes
	// are copied, and the old block is released. On failure the old block
	// is left intact and still owned by the caller.
	Resize(block Block, oldLayout, newLayout Layout) (Block, error)

	// Deallocate returns a block to the provider. The layout must be the
	// one the block was allocated or last resized with.
	Deallocate(block Block, layout Layout)
}

// danglingArea backs the pointers handed out by Dangling. Sized at twice
// MaxAlign so an aligned pointer for any valid alignment fits inside it.
var danglingArea [2 * MaxAlign]byte

// Dangling returns a non-nil Block aligned to align that is not backed by
// usable memory. It must never be dereferenced or deallocated. Containers
// with capacity zero hold a dangling Block so their access paths need no
// nil branch.
//
// align must be a valid power of two not exceeding MaxAlign.
func Dangling(align int) Block {
	p := unsafe.Pointer(&danglingArea[0])
	rem := uintptr(p) % uintptr(align)
	if rem != 0 {
		p = unsafe.Add(p, uintptr(align)-rem)
	}
	return Block{ptr: p}
}
