package boxed

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeSize indicates a constructor was given a negative capacity.
	ErrNegativeSize = errors.New("boxed: negative size")

	// ErrShortAlloc indicates an allocator returned fewer bytes than requested.
	ErrShortAlloc = errors.New("boxed: allocator returned a short buffer")
)

// AllocError reports a failed allocation of Size bytes.
type AllocError struct {
	Size int
	Err  error
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("boxed: allocate %d bytes: %v", e.Size, e.Err)
}

func (e *AllocError) Unwrap() error { return e.Err }
