package array

import (
	"unsafe"

	"github.com/joshuapare/regionkit/internal/buf"
	"github.com/joshuapare/regionkit/region"
	"github.com/joshuapare/regionkit/region/idx"
)

// Bytes is the set of array types an Array can hold.
type Bytes interface {
	~[0]byte | ~[1]byte | ~[2]byte | ~[3]byte | ~[4]byte |
		~[5]byte | ~[6]byte | ~[7]byte | ~[8]byte |
		~[12]byte | ~[16]byte | ~[24]byte | ~[32]byte | ~[48]byte |
		~[64]byte | ~[96]byte | ~[128]byte | ~[256]byte | ~[512]byte |
		~[1024]byte | ~[2048]byte | ~[4096]byte | ~[8192]byte |
		~[16384]byte | ~[32768]byte | ~[65536]byte
}

// Array is a region stored inline in a value of type B.
type Array[B Bytes] struct {
	inner B
}

var (
	_ region.Region = (*Array[[8]byte])(nil)
	_ region.Region = (*Array[[0]byte])(nil)
)

// Capacity returns len(B).
func Capacity[B Bytes]() int {
	var b B
	return int(unsafe.Sizeof(b))
}

// Uninit returns an Array whose contents carry no meaning. Go zeroes all
// memory it hands out, so the bytes are in fact zero; callers should not
// depend on that.
func Uninit[B Bytes]() *Array[B] {
	return new(Array[B])
}

// Zeroed returns an Array with every byte set to 0x00.
func Zeroed[B Bytes]() *Array[B] {
	return new(Array[B])
}

// Filled returns an Array with every byte set to b.
func Filled[B Bytes](b byte) *Array[B] {
	a := new(Array[B])
	buf.Fill(a.bytes(), b)
	return a
}

// FromArray wraps a copy of b.
func FromArray[B Bytes](b B) *Array[B] {
	return &Array[B]{inner: b}
}

// FromBytes copies src into a new Array. len(src) must equal the capacity.
func FromBytes[B Bytes](src []byte) (*Array[B], error) {
	a := new(Array[B])
	if len(src) != a.Size() {
		return nil, &SizeError{Want: a.Size(), Got: len(src)}
	}
	copy(a.bytes(), src)
	return a, nil
}

// FromRegion copies every byte of src into a new Array. src.Size() must
// equal the capacity.
func FromRegion[B Bytes](src region.Raw) (*Array[B], error) {
	a := new(Array[B])
	if err := region.CloneFrom(a, src); err != nil {
		return nil, &SizeError{Want: a.Size(), Got: src.Size()}
	}
	return a, nil
}

// bytes views the inline array as a slice. The result is nil for a
// zero-capacity Array.
func (a *Array[B]) bytes() []byte {
	n := int(unsafe.Sizeof(a.inner))
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&a.inner)), n)
}

// Size returns the capacity in bytes.
func (a *Array[B]) Size() int { return int(unsafe.Sizeof(a.inner)) }

// ReadValidity checks that size bytes at at lie inside the Array.
func (a *Array[B]) ReadValidity(at, size int) error { return idx.Check(a.Size(), at, size) }

// Pointer returns the address of byte at. Unchecked.
func (a *Array[B]) Pointer(at int) unsafe.Pointer {
	return unsafe.Add(unsafe.Pointer(&a.inner), at)
}

// Validity is region.Validity for a.
func (a *Array[B]) Validity(at, size int) error { return region.Validity(a, at, size) }

// Get borrows the sub-range i. See region.Get.
func (a *Array[B]) Get(i idx.Idx) (region.Slice, bool) { return region.Get(a, i) }

// GetMut borrows the sub-range i for mutation.
func (a *Array[B]) GetMut(i idx.Idx) (region.Slice, bool) { return region.GetMut(a, i) }

func (a *Array[B]) GetUnchecked(i idx.Idx) region.Slice    { return region.GetUnchecked(a, i) }
func (a *Array[B]) GetMutUnchecked(i idx.Idx) region.Slice { return region.GetUnchecked(a, i) }

// AsSlice borrows all of a.
func (a *Array[B]) AsSlice() region.Slice { return region.Slice(a.bytes()) }

// Array returns a copy of the inline array.
func (a *Array[B]) Array() B { return a.inner }

// Clone returns an independent copy of a.
func (a *Array[B]) Clone() *Array[B] {
	c := *a
	return &c
}

// WriteZeroes fills n bytes at at with 0x00.
func (a *Array[B]) WriteZeroes(at, n int) error { return region.WriteZeroes(a, at, n) }

// WriteOnes fills n bytes at at with 0xFF.
func (a *Array[B]) WriteOnes(at, n int) error { return region.WriteOnes(a, at, n) }
