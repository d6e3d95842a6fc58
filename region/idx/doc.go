// Package idx provides the indexing vocabulary shared by every region backend.
//
// # Overview
//
// Two concerns live here because every backend needs exactly the same answer
// for both of them:
//
//   - Check: the validity checker. It decides whether a span of size bytes
//     starting at an offset lies inside a region of a given capacity.
//   - Resolve: the range normalizer. It turns any supported range notation
//     into a concrete [start, end) window over a region.
//
// # Boundary Policy
//
// Check accepts a span only when offset+size is strictly less than the
// capacity:
//
//	Check(4, 0, 3) // ok:   0+3 = 3 < 4
//	Check(4, 2, 2) // fail: 2+2 = 4 is not < 4
//
// A value that ends exactly on the last byte is therefore rejected unless one
// byte of slack exists. Negative offsets or sizes and overflowing sums are
// always rejected.
//
// # Range Notations
//
// Every notation maps to a canonical (start, end) pair of Bounds:
//
//	At(i)            Included(i) .. Included(i)
//	Range(a, b)      Included(a) .. Excluded(b)     a..b
//	Inclusive(a, b)  Included(a) .. Included(b)     a..=b
//	From(a)          Included(a) .. Unbounded       a..
//	To(b)            Unbounded   .. Excluded(b)     ..b
//	ToInclusive(b)   Unbounded   .. Included(b)     ..=b
//	Full()           Unbounded   .. Unbounded       ..
//	Bounds(s, e)     s .. e
//
// Resolve maps an Included end bound to i-1, so At(i) and Inclusive(a, b)
// produce windows one byte shorter than their notation suggests. The
// mapping is kept as-is for compatibility with existing callers.
package idx
