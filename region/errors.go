package region

import (
	"errors"
	"fmt"

	"github.com/joshuapare/regionkit/region/idx"
)

// IdxError is the bounds error returned by every checked operation.
type IdxError = idx.IdxError

var (
	// ErrSizeMismatch matches any *SizeMismatchError via errors.Is.
	ErrSizeMismatch = errors.New("region: size mismatch")

	// errNilUnsized is the panic value for a nil unsized write.
	errNilUnsized = errors.New("region: nil value passed to unsized write")
)

// ValueError is returned by a checked Write or Replace that was rejected.
// Value holds the value that was not written; Err is the underlying *IdxError.
type ValueError[T any] struct {
	Value T
	Err   error
}

func (e *ValueError[T]) Error() string { return e.Err.Error() }
func (e *ValueError[T]) Unwrap() error { return e.Err }

// SizeMismatchError reports a whole-region copy between regions of
// different sizes.
type SizeMismatchError struct {
	Dst int
	Src int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("region: size mismatch: destination has %d bytes, source has %d", e.Dst, e.Src)
}

func (e *SizeMismatchError) Is(target error) bool { return target == ErrSizeMismatch }
