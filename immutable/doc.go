// Package immutable provides a shared, atomically reference-counted,
// write-once array: build it incrementally or copy it from a slice, freeze
// it, then share strong and weak handles across goroutines.
//
// # Overview
//
// Each array is one combined allocation: a small header holding two atomic
// counters (strong, weak) followed by the element storage in the same
// block, laid out by alloc.CombinedLayout. The element data is written
// exactly once, before the first handle exists; afterwards every access is
// read-only, so any number of goroutines may read through their handles
// without locking.
//
// # Handles
//
// Array is a strong handle: it guarantees live, readable element data.
// Weak is a weak handle: it guarantees only that the block itself has not
// been freed, and must be upgraded before the data can be read.
//
// A freshly built array starts with strong = 1 and weak = 1; the weak
// count carries one unit on behalf of all strong handles.
//
// # Lifecycle
//
//   - Clone on either handle bumps its counter
//   - Downgrade mints a weak handle from a strong one
//   - releasing the last strong handle clears the element data and drops
//     the collective weak unit; the block survives while weak handles do
//   - releasing the last weak handle deallocates the block
//   - Upgrade succeeds only while the strong count is non-zero; once it
//     has reached zero the array can never be resurrected
//
// Go has no destructors, so handles are released explicitly with Release.
// With the default alloc.Heap provider a forgotten Release only delays
// reclamation to the garbage collector; with providers like alloc.Mmap it
// leaks the mapping.
//
// # Builder
//
// Builder is an exclusively-owned mutable front end over a not-yet-frozen
// block. Build is an O(1) ownership transfer: it initializes the two
// counters and returns the first strong handle without copying anything.
// A Builder abandoned before Build must be Discarded, which releases the
// block exactly like a weak release.
//
// # Contract Violations
//
// Using a handle after releasing it, releasing twice, or touching a
// Builder after Build/Discard are programmer errors: they panic rather
// than returning an error.
package immutable
