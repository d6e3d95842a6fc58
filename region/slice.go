package region

import (
	"bytes"
	"unsafe"

	"github.com/joshuapare/regionkit/region/idx"
)

// Slice is a region view over a []byte. It borrows the bytes; converting
// between Slice and []byte never copies.
type Slice []byte

var _ Region = Slice(nil)

// FromBytes views b as a region.
func FromBytes(b []byte) Slice { return Slice(b) }

// Bytes returns the underlying bytes.
func (s Slice) Bytes() []byte { return []byte(s) }

// Size returns the capacity in bytes.
func (s Slice) Size() int { return len(s) }

// ReadValidity checks size bytes at at against the capacity.
func (s Slice) ReadValidity(at, size int) error { return idx.Check(len(s), at, size) }

// Pointer returns the address of byte at. Unchecked.
func (s Slice) Pointer(at int) unsafe.Pointer {
	return unsafe.Add(unsafe.Pointer(unsafe.SliceData(s)), at)
}

// Validity is the checked bounds test for size bytes at at.
func (s Slice) Validity(at, size int) error { return Validity(s, at, size) }

// Byte returns the byte at at. Unchecked beyond Go's own bounds check.
func (s Slice) Byte(at int) byte { return s[at] }

// SetByte sets the byte at at. Unchecked beyond Go's own bounds check.
func (s Slice) SetByte(at int, b byte) { s[at] = b }

// WriteZeroes fills n bytes at at with 0x00.
func (s Slice) WriteZeroes(at, n int) error { return WriteZeroes(s, at, n) }

// WriteOnes fills n bytes at at with 0xFF.
func (s Slice) WriteOnes(at, n int) error { return WriteOnes(s, at, n) }

// Get returns the sub-region addressed by i, or false when i does not
// resolve inside s.
func (s Slice) Get(i idx.Idx) (Slice, bool) { return Get(s, i) }

// GetMut is Get for a caller that will mutate the result. The caller must not
// hold other views of the same bytes while mutating.
func (s Slice) GetMut(i idx.Idx) (Slice, bool) { return GetMut(s, i) }

func (s Slice) GetUnchecked(i idx.Idx) Slice    { return GetUnchecked(s, i) }
func (s Slice) GetMutUnchecked(i idx.Idx) Slice { return GetUnchecked(s, i) }

// AsSlice returns s.
func (s Slice) AsSlice() Slice { return s }

// Clone returns a copy of s backed by fresh memory.
func (s Slice) Clone() Slice {
	if s == nil {
		return nil
	}
	return Slice(bytes.Clone(s))
}
