package array

import (
	"unsafe"

	"github.com/joshuapare/memkit/alloc"
)

// Boxed is a fixed-length array held in a single allocator block. It
// cannot grow or shrink, though its content stays mutable. It exists as
// the frozen endpoint of a Dynamic: the two convert into each other in
// O(1) once capacity equals length.
type Boxed[T any] struct {
	block     alloc.Block
	length    int
	allocator alloc.Allocator
}

// BoxedFromSlice copies src into a fresh block on the default heap provider.
func BoxedFromSlice[T any](src []T) (*Boxed[T], error) {
	return BoxedFromSliceIn(src, alloc.Heap{})
}

// BoxedFromSliceIn copies src into a fresh block on the given allocator.
func BoxedFromSliceIn[T any](src []T, a alloc.Allocator) (*Boxed[T], error) {
	if len(src) > alloc.MaxLength {
		return nil, ErrTooLong
	}
	b := &Boxed[T]{
		block:     alloc.Dangling(alloc.LayoutOf[T]().Align),
		allocator: a,
	}
	if len(src) == 0 {
		return b, nil
	}
	layout, err := alloc.SliceLayout[T](len(src))
	if err != nil {
		return nil, err
	}
	block, err := a.Allocate(layout)
	if err != nil {
		return nil, err
	}
	copy(unsafe.Slice((*T)(block.Ptr()), len(src)), src)
	b.block = block
	b.length = len(src)
	return b, nil
}

// Len returns the element count.
func (b *Boxed[T]) Len() int { return b.length }

// IsEmpty reports whether the array holds no elements.
func (b *Boxed[T]) IsEmpty() bool { return b.length == 0 }

// Allocator returns the memory provider holding the block.
func (b *Boxed[T]) Allocator() alloc.Allocator { return b.allocator }

// Slice returns the elements. The slice aliases the block; it stays valid
// until Free.
func (b *Boxed[T]) Slice() []T {
	return unsafe.Slice((*T)(b.block.Ptr()), b.length)
}

// Free returns the block to the allocator and resets the array to empty.
func (b *Boxed[T]) Free() {
	if b.length == 0 {
		return
	}
	layout, err := alloc.SliceLayout[T](b.length)
	if err == nil {
		b.allocator.Deallocate(b.block, layout)
	}
	b.block = alloc.Dangling(alloc.LayoutOf[T]().Align)
	b.length = 0
}

// IntoBoxed freezes d into a Boxed. O(1) when capacity already equals
// length; otherwise it implies a ShrinkToFit and may reallocate. On
// success d is reset to empty and must not be reused for its old content.
func (d *Dynamic[T]) IntoBoxed() (*Boxed[T], error) {
	if err := d.ShrinkToFit(); err != nil {
		return nil, err
	}
	b := &Boxed[T]{
		block:     d.block,
		length:    d.length,
		allocator: d.allocator,
	}
	d.block = alloc.Dangling(alloc.LayoutOf[T]().Align)
	d.length = 0
	d.capacity = 0
	return b, nil
}

// FromBoxed thaws b into a Dynamic in O(1); the block moves, no element is
// copied. On return b is reset to empty and must not be reused for its
// old content.
func FromBoxed[T any](b *Boxed[T]) *Dynamic[T] {
	d := &Dynamic[T]{
		block:     b.block,
		length:    b.length,
		capacity:  b.length,
		allocator: b.allocator,
	}
	b.block = alloc.Dangling(alloc.LayoutOf[T]().Align)
	b.length = 0
	return d
}
