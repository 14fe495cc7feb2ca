package array

import (
	"unsafe"

	"github.com/joshuapare/memkit/alloc"
)

// InlineScratchBytes is the size of the embedded storage an Inline carves
// its inline capacity from.
const InlineScratchBytes = 256

// inlineMaxAlign is the guaranteed alignment of the scratch buffer.
const inlineMaxAlign = 8

// Inline is a growable array that stores up to an inline capacity of
// elements inside the struct itself, allocating nothing. Pushing past
// that capacity promotes it to a heap block of doubled capacity; the
// promotion is permanent, the array never returns to inline storage even
// if the length later drops.
//
// Because the representation is a plain capacity test rather than a
// discriminant, every data access routes through one helper that branches
// on it. An Inline must not be copied once in use.
type Inline[T any] struct {
	// scratch is the inline element storage. It sits first so it shares
	// the struct's 8-byte alignment.
	scratch [InlineScratchBytes]byte
	_       [0]uint64

	heap      alloc.Block
	length    int
	capacity  int
	inlineCap int
	allocator alloc.Allocator
}

// NewInline creates an array with inline storage for n elements on the
// default heap provider.
func NewInline[T any](n int) (*Inline[T], error) {
	return NewInlineIn[T](n, alloc.Heap{})
}

// NewInlineIn creates an array with inline storage for n elements on the
// given allocator. It fails with ErrInlineCapacity when n elements of T
// do not fit in InlineScratchBytes or T needs stricter alignment than the
// scratch buffer guarantees.
func NewInlineIn[T any](n int, a alloc.Allocator) (*Inline[T], error) {
	if n < 1 {
		return nil, ErrInlineCapacity
	}
	elem := alloc.LayoutOf[T]()
	if elem.Align > inlineMaxAlign {
		return nil, ErrInlineCapacity
	}
	if elem.Size > 0 && n > InlineScratchBytes/elem.Size {
		return nil, ErrInlineCapacity
	}
	return &Inline[T]{
		capacity:  n,
		inlineCap: n,
		allocator: a,
	}, nil
}

// Len returns the number of elements.
func (a *Inline[T]) Len() int { return a.length }

// Cap returns the current capacity; at least the inline capacity.
func (a *Inline[T]) Cap() int { return a.capacity }

// IsEmpty reports whether the array holds no elements.
func (a *Inline[T]) IsEmpty() bool { return a.length == 0 }

// IsInlined reports whether elements still live in the embedded storage.
// Once false it stays false for the lifetime of the array.
func (a *Inline[T]) IsInlined() bool { return a.capacity == a.inlineCap }

// Allocator returns the memory provider used after promotion.
func (a *Inline[T]) Allocator() alloc.Allocator { return a.allocator }

// Slice returns the live elements. The slice aliases the current storage
// and is invalidated by any growing push.
func (a *Inline[T]) Slice() []T {
	return unsafe.Slice((*T)(a.dataPtr()), a.length)
}

// Push appends one element, promoting to heap storage when the inline
// capacity is exhausted.
func (a *Inline[T]) Push(value T) error {
	if a.capacity == 0 {
		panic("array: Inline used after Free")
	}
	if a.length == a.capacity {
		if err := a.growDouble(); err != nil {
			return err
		}
	}
	*(*T)(a.elem(a.length)) = value
	a.length++
	return nil
}

// Pop removes and returns the last element. The second result is false
// when the array is empty. Popping never demotes heap storage back to
// inline storage.
func (a *Inline[T]) Pop() (T, bool) {
	if a.length == 0 {
		var zero T
		return zero, false
	}
	return a.PopUnchecked(), true
}

// PopUnchecked removes and returns the last element. Calling it on an
// empty array is a contract violation and panics.
func (a *Inline[T]) PopUnchecked() T {
	if a.length == 0 {
		panic("array: PopUnchecked on empty Inline")
	}
	a.length--
	return *(*T)(a.elem(a.length))
}

// Clone duplicates the array into a fresh Inline with the same inline
// capacity and allocator. The clone starts inlined regardless of the
// receiver's storage mode.
func (a *Inline[T]) Clone() (*Inline[T], error) {
	c, err := NewInlineIn[T](a.inlineCap, a.allocator)
	if err != nil {
		return nil, err
	}
	for _, v := range a.Slice() {
		if err := c.Push(v); err != nil {
			c.Free()
			return nil, err
		}
	}
	return c, nil
}

// Free releases the heap block if the array was promoted and marks the
// array unusable. Further operations panic.
func (a *Inline[T]) Free() {
	if a.capacity == 0 {
		return
	}
	if !a.IsInlined() {
		layout, err := alloc.SliceLayout[T](a.capacity)
		if err == nil {
			a.allocator.Deallocate(a.heap, layout)
		}
	}
	a.heap = alloc.Block{}
	a.length = 0
	a.capacity = 0
}

// growDouble doubles the capacity: the first call migrates the inline
// elements into a fresh heap block, later calls resize that block.
func (a *Inline[T]) growDouble() error {
	newCapacity := a.capacity * 2
	if newCapacity > alloc.MaxLength {
		return ErrTooLong
	}
	newLayout, err := alloc.SliceLayout[T](newCapacity)
	if err != nil {
		return err
	}
	if a.IsInlined() {
		block, err := a.allocator.Allocate(newLayout)
		if err != nil {
			return err
		}
		copy(unsafe.Slice((*T)(block.Ptr()), a.length),
			unsafe.Slice((*T)(unsafe.Pointer(&a.scratch[0])), a.length))
		a.heap = block
		a.capacity = newCapacity
		return nil
	}
	oldLayout, err := alloc.SliceLayout[T](a.capacity)
	if err != nil {
		return err
	}
	block, err := a.allocator.Resize(a.heap, oldLayout, newLayout)
	if err != nil {
		return err
	}
	a.heap = block
	a.capacity = newCapacity
	return nil
}

// dataPtr is the single guard between the two representations: inline
// scratch bytes while capacity equals the inline capacity, the heap block
// afterwards. Callers never cache the result across a push.
func (a *Inline[T]) dataPtr() unsafe.Pointer {
	if a.IsInlined() {
		return unsafe.Pointer(&a.scratch[0])
	}
	return a.heap.Ptr()
}

func (a *Inline[T]) elem(i int) unsafe.Pointer {
	var zero T
	return unsafe.Add(a.dataPtr(), uintptr(i)*unsafe.Sizeof(zero))
}
