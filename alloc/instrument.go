package alloc

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// Stats is a point-in-time snapshot of an Instrumented allocator.
type Stats struct {
	Allocs     uint64
	Resizes    uint64
	Frees      uint64
	LiveBlocks int64
	LiveBytes  int64
}

// Instrumented wraps an Allocator with atomic counters and optional zap
// debug logging. It adds no locking around the inner allocator; it is as
// concurrency-safe as the allocator it wraps.
type Instrumented struct {
	inner Allocator
	log   *zap.Logger

	allocs     atomic.Uint64
	resizes    atomic.Uint64
	frees      atomic.Uint64
	liveBlocks atomic.Int64
	liveBytes  atomic.Int64
}

// Instrument wraps inner with counters and logging. A nil logger disables
// logging but keeps the counters.
func Instrument(inner Allocator, log *zap.Logger) *Instrumented {
	if log == nil {
		log = zap.NewNop()
	}
	return &Instrumented{inner: inner, log: log}
}

func (in *Instrumented) Allocate(layout Layout) (Block, error) {
	block, err := in.inner.Allocate(layout)
	if err != nil {
		in.log.Debug("allocate failed",
			zap.Int("size", layout.Size),
			zap.Int("align", layout.Align),
			zap.Error(err))
		return Block{}, err
	}
	in.allocs.Add(1)
	in.liveBlocks.Add(1)
	in.liveBytes.Add(int64(layout.Size))
	in.log.Debug("allocate",
		zap.Int("size", layout.Size),
		zap.Int("align", layout.Align))
	return block, nil
}

func (in *Instrumented) Resize(block Block, oldLayout, newLayout Layout) (Block, error) {
	newBlock, err := in.inner.Resize(block, oldLayout, newLayout)
	if err != nil {
		in.log.Debug("resize failed",
			zap.Int("old_size", oldLayout.Size),
			zap.Int("new_size", newLayout.Size),
			zap.Error(err))
		return Block{}, err
	}
	in.resizes.Add(1)
	in.liveBytes.Add(int64(newLayout.Size - oldLayout.Size))
	in.log.Debug("resize",
		zap.Int("old_size", oldLayout.Size),
		zap.Int("new_size", newLayout.Size))
	return newBlock, nil
}

func (in *Instrumented) Deallocate(block Block, layout Layout) {
	in.inner.Deallocate(block, layout)
	in.frees.Add(1)
	in.liveBlocks.Add(-1)
	in.liveBytes.Add(-int64(layout.Size))
	in.log.Debug("deallocate", zap.Int("size", layout.Size))
}

// Stats returns a snapshot of the counters.
func (in *Instrumented) Stats() Stats {
	return Stats{
		Allocs:     in.allocs.Load(),
		Resizes:    in.resizes.Load(),
		Frees:      in.frees.Load(),
		LiveBlocks: in.liveBlocks.Load(),
		LiveBytes:  in.liveBytes.Load(),
	}
}

// Compile-time interface check
var _ Allocator = (*Instrumented)(nil)
