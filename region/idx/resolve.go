package idx

import "github.com/joshuapare/regionkit/internal/buf"

// Resolve turns i into a [start, end) window over a region of the given
// capacity, rejecting bounds that fall outside it.
//
// Start bounds: Unbounded is 0, Included(v) is v when v < capacity, and
// Excluded(v) is v+1 when v+1 < capacity. End bounds: Unbounded is capacity,
// Included(v) is v-1 (saturating) when v < capacity, and Excluded(v) is v
// when v <= capacity. Negative bound values are rejected, as is every range
// over a zero-capacity region. An end before start yields an empty window.
func Resolve(capacity int, i Idx) (start, end int, ok bool) {
	if capacity <= 0 || i == nil {
		return 0, 0, false
	}

	sb, eb := i.Start(), i.End()

	switch sb.Kind {
	case Unbounded:
	case Included:
		if sb.Value < 0 || sb.Value >= capacity {
			return 0, 0, false
		}
	case Excluded:
		if sb.Value < 0 || buf.SaturatingAdd(sb.Value, 1) >= capacity {
			return 0, 0, false
		}
	default:
		return 0, 0, false
	}

	switch eb.Kind {
	case Unbounded:
	case Included:
		if eb.Value < 0 || eb.Value >= capacity {
			return 0, 0, false
		}
	case Excluded:
		if eb.Value < 0 || eb.Value > capacity {
			return 0, 0, false
		}
	default:
		return 0, 0, false
	}

	start, end = ResolveUnchecked(capacity, i)
	return start, end, true
}

// ResolveUnchecked applies the same bound mapping as Resolve without
// rejecting anything. The caller must know the window lies inside the region.
func ResolveUnchecked(capacity int, i Idx) (start, end int) {
	sb, eb := i.Start(), i.End()

	switch sb.Kind {
	case Included:
		start = sb.Value
	case Excluded:
		start = buf.SaturatingAdd(sb.Value, 1)
	}

	switch eb.Kind {
	case Included:
		end = buf.SaturatingSub(eb.Value, 1)
	case Excluded:
		end = eb.Value
	default:
		end = capacity
	}

	if end < start {
		end = start
	}
	return start, end
}
