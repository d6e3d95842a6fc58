package boxed

import (
	"unsafe"

	"github.com/joshuapare/regionkit/internal/buf"
	"github.com/joshuapare/regionkit/region"
	"github.com/joshuapare/regionkit/region/idx"
)

// Boxed is a region of run-time capacity backed by an Allocator.
type Boxed struct {
	data  []byte
	alloc Allocator
}

var _ region.Region = (*Boxed)(nil)

// Empty returns a zero-capacity Boxed using the Go heap.
func Empty() *Boxed { return &Boxed{data: []byte{}, alloc: Go{}} }

// Uninit returns a Boxed of n bytes whose contents carry no meaning.
func Uninit(n int) (*Boxed, error) { return UninitIn(n, Go{}) }

// Zeroed returns a Boxed of n bytes set to 0x00.
func Zeroed(n int) (*Boxed, error) { return ZeroedIn(n, Go{}) }

// Filled returns a Boxed of n bytes set to b.
func Filled(n int, b byte) (*Boxed, error) { return FilledIn(n, b, Go{}) }

// FromBytes returns a Boxed holding a copy of src.
func FromBytes(src []byte) (*Boxed, error) { return FromBytesIn(src, Go{}) }

// FromRegion returns a Boxed holding a copy of every byte of src.
func FromRegion(src region.Raw) (*Boxed, error) { return FromRegionIn(src, Go{}) }

// UninitIn is Uninit using alloc.
func UninitIn(n int, alloc Allocator) (*Boxed, error) {
	if n < 0 {
		return nil, &AllocError{Size: n, Err: ErrNegativeSize}
	}
	data, err := alloc.Alloc(n)
	if err != nil {
		return nil, &AllocError{Size: n, Err: err}
	}
	if len(data) != n {
		_ = alloc.Free(data)
		return nil, &AllocError{Size: n, Err: ErrShortAlloc}
	}
	return &Boxed{data: data, alloc: alloc}, nil
}

// ZeroedIn is Zeroed using alloc.
func ZeroedIn(n int, alloc Allocator) (*Boxed, error) {
	return FilledIn(n, 0x00, alloc)
}

// FilledIn is Filled using alloc.
func FilledIn(n int, b byte, alloc Allocator) (*Boxed, error) {
	x, err := UninitIn(n, alloc)
	if err != nil {
		return nil, err
	}
	buf.Fill(x.data, b)
	return x, nil
}

// FromBytesIn is FromBytes using alloc.
func FromBytesIn(src []byte, alloc Allocator) (*Boxed, error) {
	x, err := UninitIn(len(src), alloc)
	if err != nil {
		return nil, err
	}
	copy(x.data, src)
	return x, nil
}

// FromRegionIn is FromRegion using alloc.
func FromRegionIn(src region.Raw, alloc Allocator) (*Boxed, error) {
	x, err := UninitIn(src.Size(), alloc)
	if err != nil {
		return nil, err
	}
	region.CloneFromUnchecked(x, src)
	return x, nil
}

// MustUninit is like Uninit but panics on failure.
func MustUninit(n int) *Boxed { return must(Uninit(n)) }

// MustZeroed is like Zeroed but panics on failure.
func MustZeroed(n int) *Boxed { return must(Zeroed(n)) }

// MustFilled is like Filled but panics on failure.
func MustFilled(n int, b byte) *Boxed { return must(Filled(n, b)) }

// MustFromBytes is like FromBytes but panics on failure.
func MustFromBytes(src []byte) *Boxed { return must(FromBytes(src)) }

func must(x *Boxed, err error) *Boxed {
	if err != nil {
		panic(err)
	}
	return x
}

// Size returns the capacity in bytes. It is 0 after Close.
func (x *Boxed) Size() int { return len(x.data) }

// ReadValidity checks that size bytes at at lie inside x.
func (x *Boxed) ReadValidity(at, size int) error { return idx.Check(len(x.data), at, size) }

// Pointer returns the address of byte at. Unchecked.
func (x *Boxed) Pointer(at int) unsafe.Pointer {
	return unsafe.Add(unsafe.Pointer(unsafe.SliceData(x.data)), at)
}

// Validity is region.Validity for x.
func (x *Boxed) Validity(at, size int) error { return region.Validity(x, at, size) }

func (x *Boxed) Get(i idx.Idx) (region.Slice, bool)    { return region.Get(x, i) }
func (x *Boxed) GetMut(i idx.Idx) (region.Slice, bool) { return region.GetMut(x, i) }
func (x *Boxed) GetUnchecked(i idx.Idx) region.Slice   { return region.GetUnchecked(x, i) }

func (x *Boxed) GetMutUnchecked(i idx.Idx) region.Slice { return region.GetUnchecked(x, i) }

// AsSlice borrows all of x.
func (x *Boxed) AsSlice() region.Slice { return region.Slice(x.data) }

// Bytes returns the backing memory. It aliases x and is invalid after Close.
func (x *Boxed) Bytes() []byte { return x.data }

// WriteZeroes fills n bytes at at with 0x00.
func (x *Boxed) WriteZeroes(at, n int) error { return region.WriteZeroes(x, at, n) }

// WriteOnes fills n bytes at at with 0xFF.
func (x *Boxed) WriteOnes(at, n int) error { return region.WriteOnes(x, at, n) }

// Allocator returns the allocator x was created with.
func (x *Boxed) Allocator() Allocator { return x.alloc }

// Clone returns a byte-for-byte copy of x allocated from the same allocator.
func (x *Boxed) Clone() (*Boxed, error) {
	return FromBytesIn(x.data, x.alloc)
}

// Close returns the memory to the allocator. Calling Close more than once is
// a no-op. Every view and pointer into x is invalid afterwards.
func (x *Boxed) Close() error {
	if x.data == nil {
		return nil
	}
	data := x.data
	x.data = nil
	return x.alloc.Free(data)
}
