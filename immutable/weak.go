package immutable

// Weak is a weak handle to a shared array. It keeps the block allocated
// but not the element data: once the last strong handle is gone the data
// is cleared, and a Weak only tells you whether the array is still alive
// via Upgrade. Each handle must be Released exactly once.
type Weak[T any] struct {
	internal internalArray[T]
	released bool
}

// Upgrade attempts to mint a strong handle. It fails once the strong
// count has reached zero; no resurrection is ever possible after that.
func (w *Weak[T]) Upgrade() (*Array[T], bool) {
	w.check()
	hdr := w.internal.header()
	for {
		cur := hdr.strong.Load()
		if cur == 0 {
			return nil, false
		}
		if hdr.strong.CompareAndSwap(cur, cur+1) {
			return &Array[T]{internal: w.internal}, true
		}
	}
}

// Clone mints another weak handle to the same block.
func (w *Weak[T]) Clone() *Weak[T] {
	w.check()
	w.internal.header().weak.Add(1)
	return &Weak[T]{internal: w.internal}
}

// Release gives up this weak handle. The last weak release deallocates
// the block. Reports whether the block was freed. Releasing twice panics.
func (w *Weak[T]) Release() bool {
	w.check()
	w.released = true
	return w.internal.releaseWeak()
}

// StrongCount returns the current number of strong handles.
func (w *Weak[T]) StrongCount() int {
	w.check()
	return int(w.internal.header().strong.Load())
}

// WeakCount returns the current weak count.
func (w *Weak[T]) WeakCount() int {
	w.check()
	return int(w.internal.header().weak.Load())
}

func (w *Weak[T]) check() {
	if w.released {
		panic("immutable: use of released Weak handle")
	}
}
