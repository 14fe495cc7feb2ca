//go:build !unix

package alloc

// Mmap is unavailable on this platform; every operation fails with
// ErrMmapUnsupported.
type Mmap struct{}

// NewMmap reports that anonymous mappings are unsupported here.
func NewMmap() (*Mmap, error) {
	return nil, ErrMmapUnsupported
}

func (*Mmap) Allocate(Layout) (Block, error) {
	return Block{}, ErrMmapUnsupported
}

func (*Mmap) Resize(Block, Layout, Layout) (Block, error) {
	return Block{}, ErrMmapUnsupported
}

func (*Mmap) Deallocate(Block, Layout) {}

// Live always reports zero on platforms without mmap support.
func (*Mmap) Live() int { return 0 }

// Compile-time interface check
var _ Allocator = (*Mmap)(nil)
