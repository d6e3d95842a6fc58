// Package region provides type-erased memory regions: contiguous byte buffers
// on which callers place and retrieve values of any type at any byte offset,
// without the buffer ever knowing what is stored where.
//
// # Overview
//
// A region is anything implementing Raw. Raw is deliberately tiny:
//
//   - Size(): capacity in bytes
//   - ReadValidity(at, size): the bounds check every checked operation runs
//   - Pointer(at): the address of byte at, with no checking at all
//
// Every typed operation in this package is a generic function over Raw and
// reduces to one validity check plus one copy through Pointer. Backends only
// supply storage:
//
//   - Slice: a borrowed view over any []byte (this package)
//   - array.Array: a fixed-size inline buffer (region/array)
//   - boxed.Boxed: an allocator-backed buffer (region/boxed)
//
// # Operations
//
// Each operation has a checked form, which validates the span first and has
// no side effect on failure, and an unchecked form, which skips validation:
//
//	Write / WriteUnchecked               copy a value's bytes in
//	WriteUnsized / WriteUnsizedUnchecked copy a slice's bytes in
//	WriteZeroes, WriteOnes               fill a span with 0x00 / 0xFF
//	Read / ReadUnchecked                 return a *T aliasing the span
//	Take / TakeUnchecked                 copy a value out, leaving the bytes
//	TakeZeroed                           copy a value out, then zero the span
//	Replace / ReplaceUnchecked           take the old value, write a new one
//	Get / GetMut / GetUnchecked          borrow a sub-region
//
// A failed Write or Replace returns a *ValueError carrying the value that was
// not written. All checked failures unwrap to an *idx.IdxError.
//
// # Safety Contract
//
// Unchecked operations and everything that interprets bytes as a type rely on
// the caller for the following:
//
//  1. Bounds: unchecked calls must address a span already known to fit.
//  2. Alignment: Read returns a pointer at whatever alignment the offset has.
//     Dereferencing a misaligned *T is only safe where the platform allows it.
//  3. Bit patterns: Take and Read assume the bytes are a valid T.
//  4. Exclusivity: mutating calls must not overlap with other live views of
//     the same bytes.
//  5. Reachability: region bytes are invisible to the garbage collector. Any
//     pointer written into a region must be kept reachable elsewhere for as
//     long as it is stored. Anchor pairs a write with that bookkeeping.
//
// Take does not clear its source. Taking the same span twice yields two
// copies of whatever was there; the region tracks nothing.
//
// # Boundary Policy
//
// A span fits only when offset+size is strictly less than Size(). See
// package idx for the details of both the bounds check and range resolution.
//
// # Thread Safety
//
// Regions carry no synchronization. Reads may share a region; any mutation
// requires exclusive access for the duration of the call.
package region
