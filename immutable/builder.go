package immutable

import (
	"unsafe"

	"github.com/joshuapare/memkit/alloc"
)

// builderInitialCapacity is the element capacity a fresh Builder
// allocates up front.
const builderInitialCapacity = 16

// Builder assembles an Array incrementally. It is exclusively owned and
// mutable until Build freezes it; Build itself is an O(1) ownership
// transfer, no element is copied or recounted.
//
// A Builder that will not be built must be Discarded, which releases its
// block exactly like a weak release: no leak, no double clear.
type Builder[T any] struct {
	internal internalArray[T]
	done     bool
}

// NewBuilder creates a Builder on the default heap provider.
func NewBuilder[T any]() (*Builder[T], error) {
	return NewBuilderIn[T](alloc.Heap{})
}

// NewBuilderIn creates a Builder allocating from a.
func NewBuilderIn[T any](a alloc.Allocator) (*Builder[T], error) {
	ia, err := newInternal[T](0, builderInitialCapacity, a)
	if err != nil {
		return nil, err
	}
	return &Builder[T]{internal: ia}, nil
}

// Len returns the number of elements pushed so far.
func (b *Builder[T]) Len() int {
	b.checkActive()
	return b.internal.length
}

// Cap returns the current element capacity.
func (b *Builder[T]) Cap() int {
	b.checkActive()
	return b.internal.capacity
}

// Push appends one element.
func (b *Builder[T]) Push(value T) error {
	return b.ExtendFromSlice([]T{value})
}

// Append appends the given elements, growing at most once.
func (b *Builder[T]) Append(values ...T) error {
	return b.ExtendFromSlice(values)
}

// ExtendFromSlice appends a copy of src. Growth is validated before any
// element is copied; on failure the builder is unmodified.
func (b *Builder[T]) ExtendFromSlice(src []T) error {
	b.checkActive()
	if len(src) == 0 {
		return nil
	}
	if len(src) > alloc.MaxLength-b.internal.length {
		return ErrTooLong
	}
	need := b.internal.length + len(src)
	if need > b.internal.capacity {
		newCapacity := 3 * (need / 2)
		if newCapacity < need {
			newCapacity = need
		}
		if newCapacity > alloc.MaxLength {
			newCapacity = alloc.MaxLength
		}
		if err := b.internal.grow(newCapacity); err != nil {
			return err
		}
	}
	dst := unsafe.Slice((*T)(b.internal.dataPtr()), b.internal.capacity)
	copy(dst[b.internal.length:], src)
	b.internal.length += len(src)
	return nil
}

// ShrinkToFit reallocates so capacity equals length, including down to a
// true zero-capacity block (just the counter header) for an empty
// builder.
func (b *Builder[T]) ShrinkToFit() error {
	b.checkActive()
	if b.internal.length == b.internal.capacity {
		return nil
	}
	fresh, err := newInternal[T](b.internal.length, b.internal.length, b.internal.allocator)
	if err != nil {
		return err
	}
	copy(fresh.slice(), b.internal.slice())
	b.internal.free()
	b.internal = fresh
	return nil
}

// Build freezes the builder into the first strong handle, with strong
// and weak counts both 1. The builder is spent afterwards; any further
// use panics.
func (b *Builder[T]) Build() *Array[T] {
	b.checkActive()
	b.done = true
	hdr := b.internal.header()
	hdr.strong.Store(1)
	hdr.weak.Store(1)
	return &Array[T]{internal: b.internal}
}

// Discard releases an unbuilt builder's block. The builder is spent
// afterwards; any further use panics.
func (b *Builder[T]) Discard() {
	b.checkActive()
	b.done = true
	// The block was never frozen, so nothing holds a counter unit yet;
	// releasing it mirrors the last weak release.
	hdr := b.internal.header()
	hdr.weak.Store(1)
	b.internal.releaseWeak()
}

func (b *Builder[T]) checkActive() {
	if b.done {
		panic("immutable: use of spent Builder")
	}
}
