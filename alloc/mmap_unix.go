//go:build unix

package alloc

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Mmap is an Allocator backed by anonymous memory mappings. Unlike Heap,
// its memory is invisible to the Go runtime: Deallocate is mandatory and
// unreleased blocks leak their mapping.
//
// Mappings are page-aligned, which satisfies every alignment a Layout may
// request (MaxAlign is well below the page size).
type Mmap struct {
	mu sync.Mutex
	// regions maps block base addresses to their mapped slices, so
	// Deallocate can hand the original slice back to munmap.
	regions map[uintptr][]byte
}

// NewMmap returns an anonymous-mapping allocator.
func NewMmap() (*Mmap, error) {
	return &Mmap{regions: make(map[uintptr][]byte)}, nil
}

func (m *Mmap) Allocate(layout Layout) (Block, error) {
	if err := layout.Validate(); err != nil {
		return Block{}, err
	}
	if layout.Size == 0 {
		return Dangling(layout.Align), nil
	}
	data, err := unix.Mmap(-1, 0, layout.Size,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return Block{}, fmt.Errorf("%w: mmap: %v", ErrAllocFailed, err)
	}
	p := unsafe.Pointer(&data[0])
	m.mu.Lock()
	m.regions[uintptr(p)] = data
	m.mu.Unlock()
	return Block{ptr: p}, nil
}

func (m *Mmap) Resize(block Block, oldLayout, newLayout Layout) (Block, error) {
	if err := newLayout.Validate(); err != nil {
		return Block{}, err
	}
	if oldLayout.Align == newLayout.Align && newLayout.Size <= oldLayout.Size {
		// In-place shrink: the mapping keeps its original extent and is
		// released with it on Deallocate.
		return block, nil
	}
	newBlock, err := m.Allocate(newLayout)
	if err != nil {
		return Block{}, err
	}
	moveBlock(newBlock, block, minInt(oldLayout.Size, newLayout.Size))
	m.Deallocate(block, oldLayout)
	return newBlock, nil
}

func (m *Mmap) Deallocate(block Block, layout Layout) {
	if layout.Size == 0 || block.IsZero() {
		return
	}
	m.mu.Lock()
	data, ok := m.regions[uintptr(block.ptr)]
	if ok {
		delete(m.regions, uintptr(block.ptr))
	}
	m.mu.Unlock()
	if !ok {
		return
	}
	// Double-unmap is excluded by the bookkeeping above; a failing munmap
	// on a tracked region indicates a corrupted mapping table.
	_ = unix.Munmap(data)
}

// Live returns the number of mappings not yet deallocated.
func (m *Mmap) Live() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.regions)
}

// Compile-time interface check
var _ Allocator = (*Mmap)(nil)
