package alloc

import "sync"

// ============================================================================
// Test Helpers
// ============================================================================

// CountingAllocator wraps an Allocator and tracks every block it hands out.
// Container tests use it to prove exactly-once release and absence of
// hidden allocations. Safe for concurrent use.
type CountingAllocator struct {
	inner Allocator

	mu        sync.Mutex
	live      map[Block]Layout
	allocates int
	frees     int
}

// NewCounting wraps inner. A nil inner defaults to Heap.
func NewCounting(inner Allocator) *CountingAllocator {
	if inner == nil {
		inner = Heap{}
	}
	return &CountingAllocator{inner: inner, live: make(map[Block]Layout)}
}

func (c *CountingAllocator) Allocate(layout Layout) (Block, error) {
	block, err := c.inner.Allocate(layout)
	if err != nil {
		return Block{}, err
	}
	c.mu.Lock()
	c.allocates++
	c.live[block] = layout
	c.mu.Unlock()
	return block, nil
}

func (c *CountingAllocator) Resize(block Block, oldLayout, newLayout Layout) (Block, error) {
	newBlock, err := c.inner.Resize(block, oldLayout, newLayout)
	if err != nil {
		return Block{}, err
	}
	c.mu.Lock()
	delete(c.live, block)
	c.live[newBlock] = newLayout
	c.mu.Unlock()
	return newBlock, nil
}

func (c *CountingAllocator) Deallocate(block Block, layout Layout) {
	c.mu.Lock()
	_, tracked := c.live[block]
	if tracked {
		delete(c.live, block)
	}
	c.frees++
	c.mu.Unlock()
	if !tracked {
		panic("alloc: deallocating untracked or already freed block")
	}
	c.inner.Deallocate(block, layout)
}

// LiveBlocks returns the number of blocks allocated and not yet freed.
func (c *CountingAllocator) LiveBlocks() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.live)
}

// Allocates returns the total number of successful Allocate calls.
func (c *CountingAllocator) Allocates() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.allocates
}

// Frees returns the total number of Deallocate calls.
func (c *CountingAllocator) Frees() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frees
}

// Compile-time interface check
var _ Allocator = (*CountingAllocator)(nil)
