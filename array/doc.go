// Package array provides exclusively-owned, mutable containers built on the
// alloc package: a heap-growing dynamic array, a construction-time fixed
// array, a fixed-length boxed array, and a hybrid inline/heap array.
//
// # Overview
//
// Every container here is owned by exactly one caller. None of them carry
// internal synchronization: mutation requires exclusive access, and moving
// one across goroutines is safe only as a whole-ownership transfer.
//
// # Containers
//
// Dynamic: grows on demand through an Allocator
//
//   - growth policy: newCapacity = 3*(capacity/2) + 2, computed and
//     bounds-checked before any element is copied
//   - capacity zero is backed by a dangling block and never deallocated
//
// Fixed: capacity chosen at construction, never reallocates
//
//   - operations that would exceed the capacity fail with ErrOutOfRange
//     and never touch an allocator
//
// Boxed: fixed-length array held in a single allocator block
//
//   - converts to and from Dynamic in O(1) once capacity equals length
//
// Inline: starts with embedded storage for n elements
//
//   - pushes beyond n promote it to a heap block of doubled capacity
//   - promotion is permanent; the array never returns to inline storage
//
// # Failure Semantics
//
// Allocation failures surface as alloc.ErrAllocFailed via errors.Is;
// length-bound violations surface as ErrTooLong or ErrOutOfRange. A failed
// growth leaves the container exactly as it was. Pop never fails; the
// Unchecked variants and use-after-Free are contract violations and panic.
//
// # Releasing Memory
//
// Go has no destructors, so allocator-backed containers expose Free. With
// the default alloc.Heap provider calling Free is optional (the garbage
// collector reclaims abandoned blocks); with providers like alloc.Mmap it
// is mandatory. After Free a container must not be used.
package array
