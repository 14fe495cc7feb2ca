package immutable

import (
	"sync/atomic"
	"unsafe"

	"github.com/joshuapare/memkit/alloc"
)

// refHeader sits at the start of every shared block, in front of the
// element storage. Both counters are operated atomically, straight on the
// block memory; Go atomics are sequentially consistent, so strong/weak
// transitions are globally agreed upon across goroutines.
type refHeader struct {
	strong atomic.Uint32
	weak   atomic.Uint32
}

// internalArray is the physical representation shared by Array, Weak and
// Builder: a combined header+data block plus the bookkeeping needed to
// slice and eventually deallocate it. Copying an internalArray copies the
// handle, not the block.
type internalArray[T any] struct {
	block     alloc.Block
	length    int
	capacity  int
	layout    alloc.BlockLayout
	allocator alloc.Allocator
}

// newInternal allocates a combined block for capacity elements and zeroes
// the header. The element region is left unspecified; callers fill it
// before any handle escapes.
func newInternal[T any](length, capacity int, a alloc.Allocator) (internalArray[T], error) {
	bl, err := alloc.CombinedLayout[refHeader, T]()
	if err != nil {
		return internalArray[T]{}, err
	}
	full, err := bl.Of(capacity)
	if err != nil {
		return internalArray[T]{}, err
	}
	block, err := a.Allocate(full)
	if err != nil {
		return internalArray[T]{}, err
	}
	ia := internalArray[T]{
		block:     block,
		length:    length,
		capacity:  capacity,
		layout:    bl,
		allocator: a,
	}
	hdr := ia.header()
	hdr.strong.Store(0)
	hdr.weak.Store(0)
	return ia, nil
}

func (ia *internalArray[T]) header() *refHeader {
	return (*refHeader)(ia.block.Ptr())
}

func (ia *internalArray[T]) dataPtr() unsafe.Pointer {
	return unsafe.Add(ia.block.Ptr(), ia.layout.DataOffset)
}

func (ia *internalArray[T]) slice() []T {
	return unsafe.Slice((*T)(ia.dataPtr()), ia.length)
}

// grow resizes the block to hold newCapacity elements. Only the Builder
// calls this; frozen blocks never move.
func (ia *internalArray[T]) grow(newCapacity int) error {
	oldFull, err := ia.layout.Of(ia.capacity)
	if err != nil {
		return err
	}
	newFull, err := ia.layout.Of(newCapacity)
	if err != nil {
		return err
	}
	block, err := ia.allocator.Resize(ia.block, oldFull, newFull)
	if err != nil {
		return err
	}
	ia.block = block
	ia.capacity = newCapacity
	return nil
}

// free returns the block to the allocator.
func (ia *internalArray[T]) free() {
	full, err := ia.layout.Of(ia.capacity)
	if err != nil {
		return
	}
	ia.allocator.Deallocate(ia.block, full)
	ia.block = alloc.Block{}
}

// releaseWeak drops one weak unit; the last one deallocates the block.
// Reports whether the block was freed.
func (ia *internalArray[T]) releaseWeak() bool {
	if ia.header().weak.Add(^uint32(0)) != 0 {
		return false
	}
	ia.free()
	return true
}

// clearElems zeroes the element region. Called when the last strong
// handle goes away: the block stays allocated for outstanding weak
// handles, but carries no live data anymore.
func (ia *internalArray[T]) clearElems() {
	clear(unsafe.Slice((*T)(ia.dataPtr()), ia.length))
}
