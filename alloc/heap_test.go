package alloc

import (
	"testing"
	"unsafe"
)

func TestHeapAllocateAligned(t *testing.T) {
	var h Heap
	for _, align := range []int{1, 8, 64, 256} {
		block, err := h.Allocate(Layout{Size: 100, Align: align})
		if err != nil {
			t.Fatalf("Allocate(align=%d) failed: %v", align, err)
		}
		if uintptr(block.Ptr())%uintptr(align) != 0 {
			t.Fatalf("block not aligned to %d", align)
		}
	}
}

func TestHeapWriteRead(t *testing.T) {
	var h Heap
	layout := Layout{Size: 64, Align: 8}
	block, err := h.Allocate(layout)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	s := unsafe.Slice((*byte)(block.Ptr()), layout.Size)
	for i := range s {
		s[i] = byte(i)
	}
	for i := range s {
		if s[i] != byte(i) {
			t.Fatalf("byte %d = %d, want %d", i, s[i], byte(i))
		}
	}
}

func TestHeapResizeGrowPreservesData(t *testing.T) {
	var h Heap
	oldLayout := Layout{Size: 16, Align: 8}
	block, err := h.Allocate(oldLayout)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	s := unsafe.Slice((*byte)(block.Ptr()), oldLayout.Size)
	for i := range s {
		s[i] = byte(0xA0 + i)
	}

	newLayout := Layout{Size: 128, Align: 8}
	grown, err := h.Resize(block, oldLayout, newLayout)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	gs := unsafe.Slice((*byte)(grown.Ptr()), newLayout.Size)
	for i := 0; i < oldLayout.Size; i++ {
		if gs[i] != byte(0xA0+i) {
			t.Fatalf("byte %d lost after grow: got %d", i, gs[i])
		}
	}
}

func TestHeapResizeShrinkInPlace(t *testing.T) {
	var h Heap
	oldLayout := Layout{Size: 128, Align: 8}
	block, err := h.Allocate(oldLayout)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	shrunk, err := h.Resize(block, oldLayout, Layout{Size: 32, Align: 8})
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	if shrunk != block {
		t.Fatalf("shrink with equal alignment should keep the block")
	}
}

func TestHeapZeroSize(t *testing.T) {
	var h Heap
	block, err := h.Allocate(Layout{Size: 0, Align: 8})
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	if block.IsZero() {
		t.Fatalf("zero-size allocation must still return a non-zero block")
	}
}

func TestHeapRejectsBadLayout(t *testing.T) {
	var h Heap
	if _, err := h.Allocate(Layout{Size: 8, Align: 3}); err == nil {
		t.Fatalf("expected error for non-power-of-two alignment")
	}
	if _, err := h.Allocate(Layout{Size: -8, Align: 8}); err == nil {
		t.Fatalf("expected error for negative size")
	}
}
