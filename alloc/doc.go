// Package alloc provides the memory-provider contract and layout calculator
// that the memkit container packages are built on.
//
// # Overview
//
// Containers in this module never call make or new for element storage.
// Instead they describe the memory they need as a Layout and obtain an
// opaque Block from an Allocator. This keeps element storage, growth and
// release under explicit caller control and lets alternative providers
// (anonymous mappings, instrumented wrappers) be swapped in.
//
// # Allocator Interface
//
// The core abstraction is the Allocator interface:
//
//   - Allocate(layout): obtain a new Block for the given size/alignment
//   - Resize(block, old, new): grow or shrink an existing Block
//   - Deallocate(block, layout): return a Block to the provider
//
// A Block must always be released through the same Allocator instance and
// with the same Layout that produced it (or a Layout it was last Resized
// to). Allocation failure is reported as ErrAllocFailed; callers branch on
// it explicitly, nothing in this package panics on exhaustion.
//
// # Implementations
//
// Heap: the default provider, backed by the Go heap
//
//   - Deallocate is a no-op; the garbage collector reclaims blocks once
//     no live Block handle refers to them
//   - blocks are byte storage and are not scanned for pointers, so element
//     types stored through Heap must not contain Go pointers
//
// Mmap: anonymous-mapping provider (unix only)
//
//   - memory is obtained with mmap and released with munmap
//   - Deallocate is mandatory; unreleased blocks leak the mapping
//
// Instrumented: wrapper adding counters and zap debug logging around any
// inner Allocator.
//
// # Layout Calculator
//
// CombinedLayout computes the "header followed by N elements" shape used
// for single-allocation containers: the data offset is the smallest
// multiple of max(align(header), align(element)) that is >= the header
// size. The computation is pure; callers validate it once per element type
// and cache the result.
//
// # Zero-Capacity Containers
//
// Dangling returns a well-aligned, non-nil Block that must never be
// dereferenced or deallocated. Containers with capacity zero carry a
// dangling Block so access paths need no nil branch.
//
// # Thread Safety
//
// Heap and Instrumented are safe for concurrent use. Mmap serializes its
// internal bookkeeping. Blocks themselves carry no synchronization.
package alloc
