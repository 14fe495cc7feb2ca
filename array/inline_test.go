package array

import (
	"errors"
	"testing"

	"github.com/joshuapare/memkit/alloc"
)

func TestInlineStaysInlinedUpToCapacity(t *testing.T) {
	ca := alloc.NewCounting(nil)
	a, err := NewInlineIn[int32](5, ca)
	if err != nil {
		t.Fatalf("NewInlineIn failed: %v", err)
	}
	for i := int32(0); i < 5; i++ {
		if err := a.Push(i); err != nil {
			t.Fatalf("Push(%d) failed: %v", i, err)
		}
	}
	if !a.IsInlined() {
		t.Fatalf("array should still be inlined at length 5")
	}
	if ca.Allocates() != 0 {
		t.Fatalf("inline pushes allocated %d times, want 0", ca.Allocates())
	}
	s := a.Slice()
	for i := int32(0); i < 5; i++ {
		if s[i] != i {
			t.Fatalf("element %d = %d", i, s[i])
		}
	}
}

func TestInlinePromotionIsPermanent(t *testing.T) {
	ca := alloc.NewCounting(nil)
	a, err := NewInlineIn[int32](5, ca)
	if err != nil {
		t.Fatalf("NewInlineIn failed: %v", err)
	}
	for i := int32(0); i < 6; i++ {
		if err := a.Push(i); err != nil {
			t.Fatalf("Push(%d) failed: %v", i, err)
		}
	}
	if a.IsInlined() {
		t.Fatalf("6th push must promote to heap storage")
	}
	if a.Cap() < 6 {
		t.Fatalf("Cap = %d after promotion, want >= 6", a.Cap())
	}
	if ca.Allocates() != 1 {
		t.Fatalf("promotion allocated %d times, want 1", ca.Allocates())
	}
	// Elements survive the migration.
	for i, v := range a.Slice() {
		if v != int32(i) {
			t.Fatalf("element %d = %d after promotion", i, v)
		}
	}
	// Popping back below the inline capacity never re-inlines.
	for a.Len() > 3 {
		if _, ok := a.Pop(); !ok {
			t.Fatalf("Pop failed")
		}
	}
	if a.IsInlined() {
		t.Fatalf("array re-inlined after popping, promotion must be permanent")
	}
}

func TestInlineGrowsByDoubling(t *testing.T) {
	a, err := NewInline[byte](4)
	if err != nil {
		t.Fatalf("NewInline failed: %v", err)
	}
	for i := 0; i < 100; i++ {
		before := a.Cap()
		if err := a.Push(byte(i)); err != nil {
			t.Fatalf("Push failed: %v", err)
		}
		if after := a.Cap(); after != before && after != before*2 {
			t.Fatalf("grew %d -> %d, want doubling", before, after)
		}
	}
	for i, v := range a.Slice() {
		if v != byte(i) {
			t.Fatalf("element %d = %d", i, v)
		}
	}
}

func TestInlineCapacityValidation(t *testing.T) {
	if _, err := NewInline[int64](0); !errors.Is(err, ErrInlineCapacity) {
		t.Fatalf("n=0 error = %v, want ErrInlineCapacity", err)
	}
	// 64 int64s fill the scratch exactly; 65 cannot fit.
	if _, err := NewInline[int64](64); err != nil {
		t.Fatalf("n=64 should fit: %v", err)
	}
	if _, err := NewInline[int64](65); !errors.Is(err, ErrInlineCapacity) {
		t.Fatalf("n=65 error = %v, want ErrInlineCapacity", err)
	}
}

func TestInlineClone(t *testing.T) {
	a, err := NewInline[int](3)
	if err != nil {
		t.Fatalf("NewInline failed: %v", err)
	}
	for i := 0; i < 8; i++ {
		if err := a.Push(i); err != nil {
			t.Fatalf("Push failed: %v", err)
		}
	}
	c, err := a.Clone()
	if err != nil {
		t.Fatalf("Clone failed: %v", err)
	}
	if c.Len() != 8 {
		t.Fatalf("clone Len = %d, want 8", c.Len())
	}
	for i, v := range c.Slice() {
		if v != i {
			t.Fatalf("clone element %d = %d", i, v)
		}
	}
}

func TestInlineFreeReleasesHeapBlock(t *testing.T) {
	ca := alloc.NewCounting(nil)
	a, err := NewInlineIn[int64](2, ca)
	if err != nil {
		t.Fatalf("NewInlineIn failed: %v", err)
	}
	for i := int64(0); i < 10; i++ {
		if err := a.Push(i); err != nil {
			t.Fatalf("Push failed: %v", err)
		}
	}
	a.Free()
	if ca.LiveBlocks() != 0 {
		t.Fatalf("heap block leaked: %d live", ca.LiveBlocks())
	}
}

func TestInlineUseAfterFreePanics(t *testing.T) {
	a, err := NewInline[int](2)
	if err != nil {
		t.Fatalf("NewInline failed: %v", err)
	}
	a.Free()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	_ = a.Push(1)
}
