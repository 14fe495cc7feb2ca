package array

// Fixed is a semi-dynamic array whose capacity is fixed at construction.
// It never reallocates: operations that would exceed the capacity fail
// with ErrOutOfRange instead of touching an allocator. Storage lives on
// the Go heap and may hold pointer-bearing element types.
type Fixed[T any] struct {
	data   []T
	length int
}

// NewFixed creates an empty Fixed with room for capacity elements.
// A negative capacity is a contract violation and panics.
func NewFixed[T any](capacity int) *Fixed[T] {
	if capacity < 0 {
		panic("array: negative Fixed capacity")
	}
	return &Fixed[T]{data: make([]T, capacity)}
}

// FixedFromSlice creates a Fixed with capacity len(src), filled with a
// copy of src.
func FixedFromSlice[T any](src []T) *Fixed[T] {
	f := NewFixed[T](len(src))
	copy(f.data, src)
	f.length = len(src)
	return f
}

// Len returns the number of elements.
func (f *Fixed[T]) Len() int { return f.length }

// Cap returns the fixed capacity.
func (f *Fixed[T]) Cap() int { return len(f.data) }

// IsEmpty reports whether the array holds no elements.
func (f *Fixed[T]) IsEmpty() bool { return f.length == 0 }

// IsFull reports whether length has reached the capacity.
func (f *Fixed[T]) IsFull() bool { return f.length == len(f.data) }

// Slice returns the live elements. The slice aliases the array's storage.
func (f *Fixed[T]) Slice() []T { return f.data[:f.length] }

// Push appends one element, failing with ErrOutOfRange when full.
func (f *Fixed[T]) Push(value T) error {
	if f.length == len(f.data) {
		return ErrOutOfRange
	}
	f.data[f.length] = value
	f.length++
	return nil
}

// Append appends the given elements; all or nothing.
func (f *Fixed[T]) Append(values ...T) error {
	return f.ExtendFromSlice(values)
}

// ExtendFromSlice appends a copy of src, failing with ErrOutOfRange when
// the result would not fit. On failure nothing is copied.
func (f *Fixed[T]) ExtendFromSlice(src []T) error {
	if f.length+len(src) > len(f.data) {
		return ErrOutOfRange
	}
	copy(f.data[f.length:], src)
	f.length += len(src)
	return nil
}

// Pop removes and returns the last element. The second result is false
// when the array is empty.
func (f *Fixed[T]) Pop() (T, bool) {
	if f.length == 0 {
		var zero T
		return zero, false
	}
	return f.PopUnchecked(), true
}

// PopUnchecked removes and returns the last element. Calling it on an
// empty array is a contract violation and panics.
func (f *Fixed[T]) PopUnchecked() T {
	if f.length == 0 {
		panic("array: PopUnchecked on empty Fixed")
	}
	f.length--
	value := f.data[f.length]
	var zero T
	f.data[f.length] = zero
	return value
}

// Clone duplicates the array, capacity included.
func (f *Fixed[T]) Clone() *Fixed[T] {
	c := NewFixed[T](len(f.data))
	copy(c.data, f.data[:f.length])
	c.length = f.length
	return c
}
