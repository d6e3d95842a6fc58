package text

import (
	"fmt"

	"github.com/joshuapare/regionkit/internal/buf"
	"github.com/joshuapare/regionkit/region"
)

// WriteString encodes s and writes the bytes into r at at, returning the
// number of bytes written. Nothing is written on error.
func WriteString(r region.Raw, at int, s string, e Encoding) (int, error) {
	b, err := Encode(s, e)
	if err != nil {
		return 0, err
	}
	if err := region.WriteUnsized(r, at, b); err != nil {
		return 0, err
	}
	return len(b), nil
}

// ReadString decodes the n bytes at at.
func ReadString(r region.Raw, at, n int, e Encoding) (string, error) {
	b, err := load(r, at, n)
	if err != nil {
		return "", err
	}
	return Decode(b, e)
}

// WriteFixed writes s into the width-byte field at at and zero-fills the rest
// of the field. An encoded s longer than width fails with ErrTooLong. Nothing
// is written on error.
func WriteFixed(r region.Raw, at, width int, s string, e Encoding) error {
	if err := region.WriteValidity(r, at, width); err != nil {
		return err
	}
	b, err := Encode(s, e)
	if err != nil {
		return err
	}
	if len(b) > width {
		return fmt.Errorf("%w: %d bytes for a %d-byte field", ErrTooLong, len(b), width)
	}
	region.WriteUnsizedUnchecked(r, at, b)
	region.WriteZeroesUnchecked(r, at+len(b), width-len(b))
	return nil
}

// ReadFixed decodes the width-byte field at at up to its first NUL code unit.
func ReadFixed(r region.Raw, at, width int, e Encoding) (string, error) {
	b, err := load(r, at, width)
	if err != nil {
		return "", err
	}
	return Decode(b[:nulIndex(b, e.Unit())], e)
}

// load validates and borrows n bytes at at, capped so appends cannot reach
// past the field.
func load(r region.Raw, at, n int) ([]byte, error) {
	if err := region.Validity(r, at, n); err != nil {
		return nil, err
	}
	b, _ := buf.Span(region.AsSlice(r), at, n)
	return b, nil
}

// nulIndex returns the offset of the first all-zero code unit in b, or the
// largest whole number of units in b when there is none.
func nulIndex(b []byte, unit int) int {
	n := len(b) - len(b)%unit
	for i := 0; i < n; i += unit {
		zero := true
		for _, c := range b[i : i+unit] {
			if c != 0 {
				zero = false
				break
			}
		}
		if zero {
			return i
		}
	}
	return n
}
