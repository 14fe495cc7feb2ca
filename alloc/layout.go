package alloc

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/joshuapare/memkit/internal/arith"
)

const (
	// MaxLength is the maximum element count any memkit container accepts.
	// The 1024-unit headroom below math.MaxInt32 is reserved so internal
	// offset arithmetic never overflows a 32-bit signed integer.
	MaxLength = math.MaxInt32 - 1024

	// MaxAlign is the largest alignment a Layout may request. It equals the
	// MaxLength headroom, which guarantees a combined-layout data offset
	// always fits inside the reserved range.
	MaxAlign = 1024
)

// Layout describes the size and alignment of a memory region.
// Align must be a power of two.
type Layout struct {
	Size  int
	Align int
}

// LayoutOf returns the Layout of a single value of type T.
func LayoutOf[T any]() Layout {
	var zero T
	return Layout{
		Size:  int(unsafe.Sizeof(zero)),
		Align: int(unsafe.Alignof(zero)),
	}
}

// SliceLayout returns the Layout of n contiguous values of type T.
func SliceLayout[T any](n int) (Layout, error) {
	if n < 0 {
		return Layout{}, fmt.Errorf("%w: negative count %d", ErrBadLayout, n)
	}
	elem := LayoutOf[T]()
	size, ok := arith.MulNoOverflow(n, elem.Size)
	if !ok {
		return Layout{}, fmt.Errorf("%w: %d elements of size %d overflow", ErrBadLayout, n, elem.Size)
	}
	return Layout{Size: size, Align: elem.Align}, nil
}

// Validate reports whether the Layout is usable by an Allocator.
func (l Layout) Validate() error {
	if l.Size < 0 {
		return fmt.Errorf("%w: negative size %d", ErrBadLayout, l.Size)
	}
	if !arith.IsPowerOfTwo(l.Align) {
		return fmt.Errorf("%w: alignment %d is not a power of two", ErrBadLayout, l.Align)
	}
	if l.Align > MaxAlign {
		return fmt.Errorf("%w: alignment %d exceeds %d", ErrBadLayout, l.Align, MaxAlign)
	}
	return nil
}

// BlockLayout is the precomputed shape of a "header followed by N elements"
// allocation. It is a pure function of the header and element types;
// callers compute it once per element type and reuse it for every
// allocation of that shape.
type BlockLayout struct {
	// DataOffset is the byte offset of element 0 from the block start.
	DataOffset int

	// Align is the alignment of the whole block:
	// max(align(header), align(element)).
	Align int

	// ElemSize is the size of one element.
	ElemSize int
}

// CombinedLayout computes and validates the BlockLayout for a block holding
// a header of type H followed by a trailing array of T. The data offset is
// the smallest multiple of max(align(H), align(T)) that is >= sizeof(H).
func CombinedLayout[H, T any]() (BlockLayout, error) {
	header := LayoutOf[H]()
	elem := LayoutOf[T]()

	align := arith.Max(header.Align, elem.Align)
	if !arith.IsPowerOfTwo(align) {
		return BlockLayout{}, fmt.Errorf("%w: alignment %d is not a power of two", ErrBadLayout, align)
	}
	if align > MaxAlign {
		return BlockLayout{}, fmt.Errorf("%w: alignment %d exceeds %d", ErrBadLayout, align, MaxAlign)
	}

	offset, ok := arith.AlignUp(header.Size, align)
	if !ok {
		return BlockLayout{}, fmt.Errorf("%w: header size %d not alignable", ErrBadLayout, header.Size)
	}
	// The header region must fit inside the MaxLength headroom so that
	// offset + capacity*elemSize stays below MaxInt32 for any valid capacity.
	if offset > MaxAlign {
		return BlockLayout{}, fmt.Errorf("%w: data offset %d exceeds %d", ErrBadLayout, offset, MaxAlign)
	}
	if offset%align != 0 {
		return BlockLayout{}, fmt.Errorf("%w: data offset %d not aligned to %d", ErrBadLayout, offset, align)
	}

	return BlockLayout{DataOffset: offset, Align: align, ElemSize: elem.Size}, nil
}

// Of returns the full block Layout for the given element capacity.
func (bl BlockLayout) Of(capacity int) (Layout, error) {
	if capacity < 0 || capacity > MaxLength {
		return Layout{}, fmt.Errorf("%w: capacity %d out of range", ErrBadLayout, capacity)
	}
	bytes, ok := arith.MulNoOverflow(capacity, bl.ElemSize)
	if !ok {
		return Layout{}, fmt.Errorf("%w: capacity %d overflows", ErrBadLayout, capacity)
	}
	size, ok := arith.AddNoOverflow(bl.DataOffset, bytes)
	if !ok {
		return Layout{}, fmt.Errorf("%w: block size overflows", ErrBadLayout)
	}
	return Layout{Size: size, Align: bl.Align}, nil
}
