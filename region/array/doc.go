// Package array provides Array, a region whose bytes live inline in a Go
// array value.
//
// # Overview
//
// An Array[B] wraps a byte array type B such as [64]byte. Its capacity is
// len(B), fixed at compile time, and the bytes are stored inside the Array
// value itself: an Array in a struct field or local variable needs no
// separate allocation.
//
//	a := array.Zeroed[[16]byte]()
//	_ = region.Write(a, 0, uint32(7))
//	v, _ := region.Take[uint32](a, 0)
//
// Every read and write goes through the region package; Array only supplies
// the capacity and addresses. Pass an *Array to the region functions. Array
// methods have pointer receivers, so the value must not be copied while a
// pointer obtained from it is in use. Clone makes an independent copy.
//
// # Capacities
//
// B is constrained by Bytes, which lists the supported array types: every
// length from 0 through 8, then record and page sizes up to 64 KiB. Named
// types over those arrays are accepted as well.
//
// # Construction
//
// Uninit, Zeroed, Filled and FromArray always succeed. FromBytes and
// FromRegion copy from a source whose size must equal the capacity exactly
// and otherwise return a *SizeError carrying the source size.
//
// # Thread Safety
//
// An Array is not safe for concurrent mutation. Concurrent readers are fine
// as long as nothing writes.
package array
