package alloc

import (
	"errors"
	"testing"
	"unsafe"
)

type refHeader struct {
	strong uint32
	weak   uint32
}

func TestCombinedLayoutByteElem(t *testing.T) {
	bl, err := CombinedLayout[refHeader, byte]()
	if err != nil {
		t.Fatalf("CombinedLayout failed: %v", err)
	}
	if bl.DataOffset != 8 {
		t.Fatalf("DataOffset = %d, want 8", bl.DataOffset)
	}
	if bl.Align != 4 {
		t.Fatalf("Align = %d, want 4", bl.Align)
	}
	full, err := bl.Of(17)
	if err != nil {
		t.Fatalf("Of(17) failed: %v", err)
	}
	if full.Size != 8+17 || full.Align != 4 {
		t.Fatalf("Of(17) = %+v, want {25 4}", full)
	}
}

func TestCombinedLayoutWideElem(t *testing.T) {
	type wide struct {
		a int64
		b int32
	}
	bl, err := CombinedLayout[refHeader, wide]()
	if err != nil {
		t.Fatalf("CombinedLayout failed: %v", err)
	}
	if bl.Align != 8 {
		t.Fatalf("Align = %d, want 8", bl.Align)
	}
	if bl.DataOffset != 8 {
		t.Fatalf("DataOffset = %d, want 8", bl.DataOffset)
	}
	if bl.DataOffset%bl.Align != 0 {
		t.Fatalf("DataOffset %d not aligned to %d", bl.DataOffset, bl.Align)
	}
	var zero wide
	full, err := bl.Of(3)
	if err != nil {
		t.Fatalf("Of(3) failed: %v", err)
	}
	if full.Size != 8+3*int(unsafe.Sizeof(zero)) {
		t.Fatalf("Of(3).Size = %d", full.Size)
	}
}

func TestCombinedLayoutOfRejectsBadCapacity(t *testing.T) {
	bl, err := CombinedLayout[refHeader, int64]()
	if err != nil {
		t.Fatalf("CombinedLayout failed: %v", err)
	}
	if _, err := bl.Of(-1); !errors.Is(err, ErrBadLayout) {
		t.Fatalf("Of(-1) error = %v, want ErrBadLayout", err)
	}
	if _, err := bl.Of(MaxLength + 1); !errors.Is(err, ErrBadLayout) {
		t.Fatalf("Of(MaxLength+1) error = %v, want ErrBadLayout", err)
	}
}

func TestSliceLayout(t *testing.T) {
	l, err := SliceLayout[int64](10)
	if err != nil {
		t.Fatalf("SliceLayout failed: %v", err)
	}
	if l.Size != 80 || l.Align != 8 {
		t.Fatalf("SliceLayout[int64](10) = %+v, want {80 8}", l)
	}
	if _, err := SliceLayout[int64](-1); !errors.Is(err, ErrBadLayout) {
		t.Fatalf("negative count error = %v, want ErrBadLayout", err)
	}
}

func TestLayoutValidate(t *testing.T) {
	if err := (Layout{Size: 16, Align: 8}).Validate(); err != nil {
		t.Fatalf("valid layout rejected: %v", err)
	}
	if err := (Layout{Size: -1, Align: 8}).Validate(); !errors.Is(err, ErrBadLayout) {
		t.Fatalf("negative size error = %v, want ErrBadLayout", err)
	}
	if err := (Layout{Size: 16, Align: 3}).Validate(); !errors.Is(err, ErrBadLayout) {
		t.Fatalf("non-power-of-two align error = %v, want ErrBadLayout", err)
	}
	if err := (Layout{Size: 16, Align: 2 * MaxAlign}).Validate(); !errors.Is(err, ErrBadLayout) {
		t.Fatalf("oversized align error = %v, want ErrBadLayout", err)
	}
}

func TestDanglingAligned(t *testing.T) {
	for _, align := range []int{1, 2, 4, 8, 16, 64, MaxAlign} {
		b := Dangling(align)
		if b.IsZero() {
			t.Fatalf("Dangling(%d) returned zero block", align)
		}
		if uintptr(b.Ptr())%uintptr(align) != 0 {
			t.Fatalf("Dangling(%d) not aligned", align)
		}
	}
}
