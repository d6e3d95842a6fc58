package region

import "github.com/joshuapare/regionkit/region/idx"

// Get borrows the sub-region of r addressed by i. It returns false when r is
// empty or i does not resolve inside r; see idx.Resolve. Get(r, idx.Full())
// always succeeds on a non-empty region.
func Get(r Raw, i idx.Idx) (Slice, bool) {
	start, end, ok := idx.Resolve(r.Size(), i)
	if !ok {
		return nil, false
	}
	return view(r, start, end), true
}

// GetMut is Get for a caller that will mutate the result.
func GetMut(r Raw, i idx.Idx) (Slice, bool) {
	return Get(r, i)
}

// GetUnchecked borrows the sub-region addressed by i without rejecting
// out-of-range bounds. The caller must know the window lies inside r.
func GetUnchecked(r Raw, i idx.Idx) Slice {
	start, end := idx.ResolveUnchecked(r.Size(), i)
	return view(r, start, end)
}

// AsSlice borrows the whole of r.
func AsSlice(r Raw) Slice {
	return view(r, 0, r.Size())
}

func view(r Raw, start, end int) Slice {
	if end <= start {
		return Slice{}
	}
	return Slice(span(r, start, end-start))
}
