// Package boxed provides Boxed, a region backed by memory obtained from an
// Allocator.
//
// # Overview
//
// A Boxed has a capacity chosen at run time and fixed at construction. Its
// bytes come from an Allocator and go back to the same Allocator on Close.
// Two allocators are provided:
//
//   - Go: the Go heap. Close only drops the reference.
//   - Mmap: anonymous private mappings outside the Go heap (mmap on unix,
//     VirtualAlloc on Windows, the Go heap elsewhere). Close unmaps.
//
// The constructors without a suffix use Go; the ...In variants take an
// explicit Allocator.
//
// # Errors and panics
//
// Constructors return a *AllocError when the allocator fails or the size is
// negative. The Must variants have the same successful behavior and panic on
// the error instead, for call sites where allocation failure is fatal.
//
// # Pointers
//
// Memory from Mmap is not scanned by the garbage collector, and neither are
// bytes in any region. Values containing pointers must keep their referents
// reachable elsewhere; see region.Anchor.
//
// # Thread Safety
//
// A Boxed is not safe for concurrent mutation, and Close must not race with
// any other use.
package boxed
