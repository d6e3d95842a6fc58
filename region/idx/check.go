package idx

import "github.com/joshuapare/regionkit/internal/buf"

// Check reports whether size bytes starting at at fit inside a region of the
// given capacity. The span fits only when at+size < capacity; see the package
// documentation for the boundary policy.
//
// On failure the returned error is always an *IdxError.
func Check(capacity, at, size int) error {
	if at >= 0 && size >= 0 {
		if end, ok := buf.AddOverflowSafe(at, size); ok && end < capacity {
			return nil
		}
	}
	return &IdxError{Idx: at, DataSize: capacity, TypeSize: size}
}
