package alloc

import "unsafe"

// Heap is the default Allocator, backed by the Go heap.
//
// Deallocate is a no-op: a block is reclaimed by the garbage collector
// once no live Block handle points into it. Blocks are byte storage and
// are not scanned for pointers, so element types stored through Heap must
// not contain Go pointers.
//
// The zero value is ready to use and safe for concurrent use.
type Heap struct{}

func (Heap) Allocate(layout Layout) (Block, error) {
	if err := layout.Validate(); err != nil {
		return Block{}, err
	}
	if layout.Size == 0 {
		return Dangling(layout.Align), nil
	}
	// Over-allocate by the alignment and round the pointer up. The interior
	// pointer keeps the whole backing array reachable.
	buf := make([]byte, layout.Size+layout.Align)
	p := unsafe.Pointer(&buf[0])
	rem := uintptr(p) % uintptr(layout.Align)
	if rem != 0 {
		p = unsafe.Add(p, uintptr(layout.Align)-rem)
	}
	return Block{ptr: p}, nil
}

func (h Heap) Resize(block Block, oldLayout, newLayout Layout) (Block, error) {
	if err := newLayout.Validate(); err != nil {
		return Block{}, err
	}
	if oldLayout.Align == newLayout.Align && newLayout.Size <= oldLayout.Size {
		// In-place shrink: the block simply keeps its slack.
		return block, nil
	}
	newBlock, err := h.Allocate(newLayout)
	if err != nil {
		return Block{}, err
	}
	moveBlock(newBlock, block, minInt(oldLayout.Size, newLayout.Size))
	h.Deallocate(block, oldLayout)
	return newBlock, nil
}

func (Heap) Deallocate(Block, Layout) {
	// Reclaimed by the garbage collector.
}

// moveBlock copies n bytes from src to dst. The regions must not overlap.
func moveBlock(dst, src Block, n int) {
	if n <= 0 {
		return
	}
	copy(unsafe.Slice((*byte)(dst.ptr), n), unsafe.Slice((*byte)(src.ptr), n))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Compile-time interface check
var _ Allocator = Heap{}
