package immutable

import (
	"github.com/joshuapare/memkit/alloc"
)

// Array is a strong handle to a frozen, reference-counted array. Cloning
// is a single atomic increment; the element data is shared, never copied.
// Handles may be used from different goroutines, but each individual
// handle belongs to one owner, who must Release it exactly once.
type Array[T any] struct {
	internal internalArray[T]
	released bool
}

// FromSlice copies src into a freshly frozen array on the default heap
// provider. The result has strong count 1 and weak count 1.
func FromSlice[T any](src []T) (*Array[T], error) {
	return FromSliceIn(src, alloc.Heap{})
}

// FromSliceIn copies src into a freshly frozen array on the given
// allocator.
func FromSliceIn[T any](src []T, a alloc.Allocator) (*Array[T], error) {
	if len(src) > alloc.MaxLength {
		return nil, ErrTooLong
	}
	ia, err := newInternal[T](len(src), len(src), a)
	if err != nil {
		return nil, err
	}
	copy(ia.slice(), src)
	// Counters go live only after the data is fully written.
	hdr := ia.header()
	hdr.strong.Store(1)
	hdr.weak.Store(1)
	return &Array[T]{internal: ia}, nil
}

// Slice returns the frozen elements. The slice is read-only by contract
// and valid until this handle is Released.
func (a *Array[T]) Slice() []T {
	a.check()
	return a.internal.slice()
}

// Len returns the element count.
func (a *Array[T]) Len() int {
	a.check()
	return a.internal.length
}

// Cap returns the block's element capacity. It can exceed Len when the
// array came from an unshrunk Builder.
func (a *Array[T]) Cap() int {
	a.check()
	return a.internal.capacity
}

// IsEmpty reports whether the array holds no elements.
func (a *Array[T]) IsEmpty() bool {
	return a.Len() == 0
}

// Allocator returns the provider owning the block.
func (a *Array[T]) Allocator() alloc.Allocator {
	a.check()
	return a.internal.allocator
}

// Clone mints another strong handle to the same block.
func (a *Array[T]) Clone() *Array[T] {
	a.check()
	a.internal.header().strong.Add(1)
	return &Array[T]{internal: a.internal}
}

// Downgrade mints a weak handle to the same block. The strong handle
// stays valid.
func (a *Array[T]) Downgrade() *Weak[T] {
	a.check()
	a.internal.header().weak.Add(1)
	return &Weak[T]{internal: a.internal}
}

// Release gives up this strong handle. When it is the last one the
// element data is cleared in place and the strong handles' collective
// weak unit is dropped; the block itself survives until the last weak
// handle goes away. Releasing twice panics.
func (a *Array[T]) Release() {
	a.check()
	a.released = true
	if a.internal.header().strong.Add(^uint32(0)) != 0 {
		return
	}
	a.internal.clearElems()
	a.internal.releaseWeak()
}

// StrongCount returns the current number of strong handles.
func (a *Array[T]) StrongCount() int {
	a.check()
	return int(a.internal.header().strong.Load())
}

// WeakCount returns the current weak count, including the single unit
// held on behalf of all strong handles.
func (a *Array[T]) WeakCount() int {
	a.check()
	return int(a.internal.header().weak.Load())
}

// RefEqual reports whether two handles trace back to the same block.
// This is identity, not content equality: independently constructed
// arrays with equal content compare false.
func RefEqual[T any](a, b *Array[T]) bool {
	a.check()
	b.check()
	return a.internal.block == b.internal.block
}

func (a *Array[T]) check() {
	if a.released {
		panic("immutable: use of released Array handle")
	}
}
