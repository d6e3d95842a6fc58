package region

import (
	"math"
	"unsafe"

	"github.com/joshuapare/regionkit/internal/buf"
	"github.com/joshuapare/regionkit/region/idx"
)

func sizeOf[T any]() int {
	var v T
	return int(unsafe.Sizeof(v))
}

// bytesOf views the memory of *p as bytes.
func bytesOf[T any](p *T) []byte {
	n := sizeOf[T]()
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), n)
}

// Write copies the bytes of value into r at at.
//
// The region does not retain value: if T holds pointers, their referents must
// stay reachable elsewhere while the bytes live in r (see AnchoredWrite).
// On failure nothing is written and the returned *ValueError holds value.
func Write[T any](r Raw, at int, value T) error {
	if err := WriteValidity(r, at, sizeOf[T]()); err != nil {
		return &ValueError[T]{Value: value, Err: err}
	}
	WriteUnchecked(r, at, value)
	return nil
}

// WriteUnchecked is Write without the bounds check.
func WriteUnchecked[T any](r Raw, at int, value T) {
	copy(span(r, at, sizeOf[T]()), bytesOf(&value))
}

// WriteUnsized copies the elements of value into r at at. The size written is
// len(value) times the element size.
//
// WriteUnsized panics if value is nil; an empty non-nil slice is a valid
// zero-byte write.
func WriteUnsized[E any](r Raw, at int, value []E) error {
	if value == nil {
		panic(errNilUnsized)
	}
	size, ok := buf.MulOverflowSafe(len(value), sizeOf[E]())
	if !ok {
		return &idx.IdxError{Idx: at, DataSize: r.Size(), TypeSize: math.MaxInt}
	}
	return WriteUnsizedPointer(r, at, unsafe.Pointer(unsafe.SliceData(value)), size)
}

// WriteUnsizedUnchecked is WriteUnsized without the bounds check. It still
// panics on a nil value.
func WriteUnsizedUnchecked[E any](r Raw, at int, value []E) {
	if value == nil {
		panic(errNilUnsized)
	}
	WriteUnsizedPointerUnchecked(r, at, unsafe.Pointer(unsafe.SliceData(value)), len(value)*sizeOf[E]())
}

// WriteUnsizedPointer copies size bytes starting at p into r at at.
// It panics if p is nil.
func WriteUnsizedPointer(r Raw, at int, p unsafe.Pointer, size int) error {
	if p == nil {
		panic(errNilUnsized)
	}
	if err := WriteValidity(r, at, size); err != nil {
		return err
	}
	WriteUnsizedPointerUnchecked(r, at, p, size)
	return nil
}

// WriteUnsizedPointerUnchecked is WriteUnsizedPointer without the bounds check.
func WriteUnsizedPointerUnchecked(r Raw, at int, p unsafe.Pointer, size int) {
	if p == nil {
		panic(errNilUnsized)
	}
	if size == 0 {
		return
	}
	copy(span(r, at, size), unsafe.Slice((*byte)(p), size))
}

// WriteZeroes fills n bytes at at with 0x00.
func WriteZeroes(r Raw, at, n int) error {
	if err := WriteValidity(r, at, n); err != nil {
		return err
	}
	WriteZeroesUnchecked(r, at, n)
	return nil
}

// WriteZeroesUnchecked is WriteZeroes without the bounds check.
func WriteZeroesUnchecked(r Raw, at, n int) {
	buf.Fill(span(r, at, n), 0x00)
}

// WriteOnes fills n bytes at at with 0xFF.
func WriteOnes(r Raw, at, n int) error {
	if err := WriteValidity(r, at, n); err != nil {
		return err
	}
	WriteOnesUnchecked(r, at, n)
	return nil
}

// WriteOnesUnchecked is WriteOnes without the bounds check.
func WriteOnesUnchecked(r Raw, at, n int) {
	buf.Fill(span(r, at, n), 0xFF)
}

// Read returns a pointer to the bytes at at, interpreted as a T. Nothing is
// copied; the pointer aliases r and is never nil on success.
func Read[T any](r Raw, at int) (*T, error) {
	if err := r.ReadValidity(at, sizeOf[T]()); err != nil {
		return nil, err
	}
	return ReadUnchecked[T](r, at), nil
}

// ReadUnchecked is Read without the bounds check.
func ReadUnchecked[T any](r Raw, at int) *T {
	return (*T)(r.Pointer(at))
}

// Take copies the bytes at at out into a new T. The source bytes are left as
// they were.
func Take[T any](r Raw, at int) (T, error) {
	if err := WriteValidity(r, at, sizeOf[T]()); err != nil {
		var zero T
		return zero, err
	}
	return TakeUnchecked[T](r, at), nil
}

// TakeUnchecked is Take without the bounds check.
func TakeUnchecked[T any](r Raw, at int) T {
	var v T
	copy(bytesOf(&v), span(r, at, sizeOf[T]()))
	return v
}

// TakeZeroed is Take followed by zeroing the span the value occupied.
func TakeZeroed[T any](r Raw, at int) (T, error) {
	v, err := Take[T](r, at)
	if err != nil {
		return v, err
	}
	WriteZeroesUnchecked(r, at, sizeOf[T]())
	return v, nil
}

// TakeZeroedUnchecked is TakeZeroed without the bounds check.
func TakeZeroedUnchecked[T any](r Raw, at int) T {
	v := TakeUnchecked[T](r, at)
	WriteZeroesUnchecked(r, at, sizeOf[T]())
	return v
}

// Replace returns the T stored at at and writes value in its place. The span
// is validated once, with the full check. On failure nothing changes and the
// returned *ValueError holds value.
func Replace[T any](r Raw, at int, value T) (T, error) {
	if err := FullValidity(r, at, sizeOf[T]()); err != nil {
		var zero T
		return zero, &ValueError[T]{Value: value, Err: err}
	}
	return ReplaceUnchecked(r, at, value), nil
}

// ReplaceUnchecked is Replace without the bounds check.
func ReplaceUnchecked[T any](r Raw, at int, value T) T {
	old := TakeUnchecked[T](r, at)
	WriteUnchecked(r, at, value)
	return old
}

// Byte returns the byte at at.
func Byte(r Raw, at int) (byte, error) {
	if err := r.ReadValidity(at, 1); err != nil {
		return 0, err
	}
	return *(*byte)(r.Pointer(at)), nil
}

// SetByte sets the byte at at.
func SetByte(r Raw, at int, b byte) error {
	if err := WriteValidity(r, at, 1); err != nil {
		return err
	}
	*(*byte)(r.Pointer(at)) = b
	return nil
}

// CloneFrom copies every byte of src into dst. Both regions must have the
// same size; otherwise a *SizeMismatchError is returned and dst is untouched.
func CloneFrom(dst, src Raw) error {
	if dst.Size() != src.Size() {
		return &SizeMismatchError{Dst: dst.Size(), Src: src.Size()}
	}
	CloneFromUnchecked(dst, src)
	return nil
}

// CloneFromUnchecked is CloneFrom without the size check. It copies
// min(dst.Size(), src.Size()) bytes.
func CloneFromUnchecked(dst, src Raw) {
	copy(span(dst, 0, dst.Size()), span(src, 0, src.Size()))
}
