package array

import (
	"unsafe"

	"github.com/joshuapare/memkit/alloc"
)

// Dynamic is a growable array backed by an Allocator. Similar to a built-in
// slice in nature, with two differences: capacity grows at a 3/2 rate
// instead of doubling, and the memory provider is pluggable.
//
// A Dynamic is exclusively owned and not safe for concurrent use.
type Dynamic[T any] struct {
	block     alloc.Block
	length    int
	capacity  int
	allocator alloc.Allocator
}

// growFormula is the capacity growth policy shared by the whole family:
// 3/2 of the requested capacity plus a small constant so tiny arrays make
// progress too.
func growFormula(atLeast int) int {
	return 3*(atLeast/2) + 2
}

// New creates an empty Dynamic on the default heap provider.
func New[T any]() *Dynamic[T] {
	return NewIn[T](alloc.Heap{})
}

// NewIn creates an empty Dynamic on the given allocator. No memory is
// allocated until the first element arrives.
func NewIn[T any](a alloc.Allocator) *Dynamic[T] {
	return &Dynamic[T]{
		block:     alloc.Dangling(alloc.LayoutOf[T]().Align),
		allocator: a,
	}
}

// WithCapacity creates an empty Dynamic that can hold capacity elements
// without reallocating.
func WithCapacity[T any](capacity int, a alloc.Allocator) (*Dynamic[T], error) {
	d := NewIn[T](a)
	if capacity == 0 {
		return d, nil
	}
	if capacity < 0 || capacity > alloc.MaxLength {
		return nil, ErrTooLong
	}
	if err := d.grow(capacity); err != nil {
		return nil, err
	}
	return d, nil
}

// Len returns the number of elements.
func (d *Dynamic[T]) Len() int { return d.length }

// Cap returns the current capacity.
func (d *Dynamic[T]) Cap() int { return d.capacity }

// IsEmpty reports whether the array holds no elements.
func (d *Dynamic[T]) IsEmpty() bool { return d.length == 0 }

// Allocator returns the memory provider this array allocates from.
func (d *Dynamic[T]) Allocator() alloc.Allocator { return d.allocator }

// Slice returns the live elements as a slice. The slice aliases the
// array's storage and is invalidated by any growing operation.
func (d *Dynamic[T]) Slice() []T {
	return unsafe.Slice((*T)(d.block.Ptr()), d.length)
}

// Push appends one element.
func (d *Dynamic[T]) Push(value T) error {
	return d.Append(value)
}

// Append appends the given elements, growing at most once.
func (d *Dynamic[T]) Append(values ...T) error {
	return d.ExtendFromSlice(values)
}

// ExtendFromSlice appends a copy of every element in src. Growth is
// computed and validated before any element is copied, so on failure the
// array is left unmodified.
func (d *Dynamic[T]) ExtendFromSlice(src []T) error {
	if len(src) == 0 {
		return nil
	}
	if err := d.reserve(len(src)); err != nil {
		return err
	}
	dst := unsafe.Slice((*T)(d.block.Ptr()), d.capacity)
	copy(dst[d.length:], src)
	d.length += len(src)
	return nil
}

// Pop removes and returns the last element. The second result is false
// when the array is empty.
func (d *Dynamic[T]) Pop() (T, bool) {
	if d.length == 0 {
		var zero T
		return zero, false
	}
	return d.PopUnchecked(), true
}

// PopUnchecked removes and returns the last element. Calling it on an
// empty array is a contract violation and panics.
func (d *Dynamic[T]) PopUnchecked() T {
	if d.length == 0 {
		panic("array: PopUnchecked on empty Dynamic")
	}
	d.length--
	return *(*T)(d.elem(d.length))
}

// ShrinkToFit reallocates so capacity equals length. Shrinking to length
// zero releases the block entirely.
func (d *Dynamic[T]) ShrinkToFit() error {
	if d.length == d.capacity {
		return nil
	}
	oldLayout, err := alloc.SliceLayout[T](d.capacity)
	if err != nil {
		return err
	}
	if d.length == 0 {
		d.allocator.Deallocate(d.block, oldLayout)
		d.block = alloc.Dangling(oldLayout.Align)
		d.capacity = 0
		return nil
	}
	newLayout, err := alloc.SliceLayout[T](d.length)
	if err != nil {
		return err
	}
	block, err := d.allocator.Resize(d.block, oldLayout, newLayout)
	if err != nil {
		return err
	}
	d.block = block
	d.capacity = d.length
	return nil
}

// Clone duplicates the array element-wise into a fresh block sized to the
// current capacity, on the same allocator.
func (d *Dynamic[T]) Clone() (*Dynamic[T], error) {
	c, err := WithCapacity[T](d.capacity, d.allocator)
	if err != nil {
		return nil, err
	}
	if err := c.ExtendFromSlice(d.Slice()); err != nil {
		c.Free()
		return nil, err
	}
	return c, nil
}

// Free returns the block to the allocator and resets the array to empty.
// Freeing a zero-capacity array is a no-op, so Free is idempotent.
func (d *Dynamic[T]) Free() {
	if d.capacity == 0 {
		return
	}
	layout, err := alloc.SliceLayout[T](d.capacity)
	if err == nil {
		d.allocator.Deallocate(d.block, layout)
	}
	d.block = alloc.Dangling(alloc.LayoutOf[T]().Align)
	d.length = 0
	d.capacity = 0
}

// reserve ensures room for extra more elements, growing by the family
// formula when needed. State is untouched on failure.
func (d *Dynamic[T]) reserve(extra int) error {
	if extra > alloc.MaxLength-d.length {
		return ErrTooLong
	}
	need := d.length + extra
	if need <= d.capacity {
		return nil
	}
	newCapacity := growFormula(need)
	if newCapacity > alloc.MaxLength {
		newCapacity = alloc.MaxLength
	}
	return d.grow(newCapacity)
}

func (d *Dynamic[T]) grow(newCapacity int) error {
	newLayout, err := alloc.SliceLayout[T](newCapacity)
	if err != nil {
		return err
	}
	var block alloc.Block
	if d.capacity == 0 {
		block, err = d.allocator.Allocate(newLayout)
	} else {
		var oldLayout alloc.Layout
		oldLayout, err = alloc.SliceLayout[T](d.capacity)
		if err != nil {
			return err
		}
		block, err = d.allocator.Resize(d.block, oldLayout, newLayout)
	}
	if err != nil {
		return err
	}
	d.block = block
	d.capacity = newCapacity
	return nil
}

// elem returns the address of element i. The index must be within capacity.
func (d *Dynamic[T]) elem(i int) unsafe.Pointer {
	var zero T
	return unsafe.Add(d.block.Ptr(), uintptr(i)*unsafe.Sizeof(zero))
}
