package region

import (
	"unsafe"

	"github.com/joshuapare/regionkit/region/idx"
)

// Raw is the minimal primitive set a region backend supplies.
//
// Implementations must guarantee that Pointer(i) is valid for every i with
// ReadValidity(i, 1) == nil, and that the bytes from Pointer(0) through
// Pointer(Size()-1) are contiguous.
type Raw interface {
	// Size returns the capacity in bytes.
	Size() int
	// ReadValidity reports whether size bytes at at may be read.
	ReadValidity(at, size int) error
	// Pointer returns the address of byte at without any checking.
	Pointer(at int) unsafe.Pointer
}

// WriteValidator is implemented by backends whose write check differs from
// their read check.
type WriteValidator interface {
	WriteValidity(at, size int) error
}

// FullValidator is implemented by backends whose read-and-write check
// differs from their read check. A nil result must imply that both
// ReadValidity and WriteValidity succeed for the same span.
type FullValidator interface {
	FullValidity(at, size int) error
}

// Slicer is the sub-range capability.
type Slicer interface {
	Get(i idx.Idx) (Slice, bool)
	GetMut(i idx.Idx) (Slice, bool)
	GetUnchecked(i idx.Idx) Slice
	GetMutUnchecked(i idx.Idx) Slice
	AsSlice() Slice
}

// Region is a backend with the full capability set.
type Region interface {
	Raw
	Slicer
}

// Validity runs the read check of r. It is the bounds check used before any
// checked read.
func Validity(r Raw, at, size int) error {
	return r.ReadValidity(at, size)
}

// WriteValidity runs the write check of r, falling back to its read check.
func WriteValidity(r Raw, at, size int) error {
	if wv, ok := r.(WriteValidator); ok {
		return wv.WriteValidity(at, size)
	}
	return r.ReadValidity(at, size)
}

// FullValidity runs the combined read-and-write check of r. Without a
// FullValidator it runs the read check, then the write check when r
// overrides it, so success always implies both.
func FullValidity(r Raw, at, size int) error {
	if fv, ok := r.(FullValidator); ok {
		return fv.FullValidity(at, size)
	}
	if err := r.ReadValidity(at, size); err != nil {
		return err
	}
	if wv, ok := r.(WriteValidator); ok {
		return wv.WriteValidity(at, size)
	}
	return nil
}

// span returns the n bytes at at as a byte slice. Unchecked.
func span(r Raw, at, n int) []byte {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(r.Pointer(at)), n)
}
