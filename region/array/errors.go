package array

import (
	"errors"
	"fmt"
)

// ErrSize is matched by every *SizeError.
var ErrSize = errors.New("array: source size does not match capacity")

// SizeError reports a conversion from a source whose size differs from the
// capacity of the target Array.
type SizeError struct {
	Want int // capacity of the Array
	Got  int // size of the rejected source
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("array: source of %d bytes does not match capacity %d", e.Got, e.Want)
}

func (e *SizeError) Is(target error) bool { return target == ErrSize }
