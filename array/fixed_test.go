package array

import (
	"errors"
	"testing"
)

func TestFixedPushPop(t *testing.T) {
	f := NewFixed[int](4)
	for i := 0; i < 4; i++ {
		if err := f.Push(i); err != nil {
			t.Fatalf("Push(%d) failed: %v", i, err)
		}
	}
	if !f.IsFull() {
		t.Fatalf("array should be full")
	}
	if err := f.Push(99); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Push past capacity = %v, want ErrOutOfRange", err)
	}
	for i := 3; i >= 0; i-- {
		v, ok := f.Pop()
		if !ok || v != i {
			t.Fatalf("Pop = %d,%v want %d,true", v, ok, i)
		}
	}
	if _, ok := f.Pop(); ok {
		t.Fatalf("Pop on empty must report false")
	}
}

func TestFixedExtendAllOrNothing(t *testing.T) {
	f := NewFixed[int](5)
	if err := f.ExtendFromSlice([]int{1, 2, 3}); err != nil {
		t.Fatalf("ExtendFromSlice failed: %v", err)
	}
	if err := f.ExtendFromSlice([]int{4, 5, 6}); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("overfull extend = %v, want ErrOutOfRange", err)
	}
	// The failed extend must not have copied anything.
	if f.Len() != 3 {
		t.Fatalf("Len = %d after failed extend, want 3", f.Len())
	}
	if err := f.ExtendFromSlice([]int{4, 5}); err != nil {
		t.Fatalf("exact-fit extend failed: %v", err)
	}
	s := f.Slice()
	for i, want := range []int{1, 2, 3, 4, 5} {
		if s[i] != want {
			t.Fatalf("element %d = %d, want %d", i, s[i], want)
		}
	}
}

func TestFixedFromSlice(t *testing.T) {
	src := []string{"a", "b", "c"}
	f := FixedFromSlice(src)
	if f.Cap() != 3 || f.Len() != 3 {
		t.Fatalf("cap=%d len=%d, want 3/3", f.Cap(), f.Len())
	}
	src[0] = "mutated"
	if f.Slice()[0] != "a" {
		t.Fatalf("FixedFromSlice must copy, not alias")
	}
}

func TestFixedZeroCapacity(t *testing.T) {
	f := NewFixed[int](0)
	if !f.IsEmpty() || !f.IsFull() {
		t.Fatalf("zero-capacity array should be both empty and full")
	}
	if err := f.Push(1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Push = %v, want ErrOutOfRange", err)
	}
}

func TestFixedClone(t *testing.T) {
	f := NewFixed[int](3)
	if err := f.Append(1, 2); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	c := f.Clone()
	if err := c.Push(3); err != nil {
		t.Fatalf("Push on clone failed: %v", err)
	}
	if f.Len() != 2 || c.Len() != 3 {
		t.Fatalf("clone mutation leaked: f=%d c=%d", f.Len(), c.Len())
	}
}

func TestFixedNegativeCapacityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	NewFixed[int](-1)
}
