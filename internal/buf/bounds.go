// Package buf holds the overflow-safe integer arithmetic and raw byte helpers
// shared by the region packages.
package buf

import "math"

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative ints, returning ok = false when
// either operand is negative or the product would overflow int.
// Used for count * elementSize when sizing unsized writes.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// SaturatingAdd returns a+b clamped to math.MaxInt. Both operands must be non-negative.
func SaturatingAdd(a, b int) int {
	if sum, ok := AddOverflowSafe(a, b); ok {
		return sum
	}
	return math.MaxInt
}

// SaturatingSub returns a-b clamped at zero.
func SaturatingSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}

// Span returns the sub-slice [off:off+n] if it fits within len(b).
func Span(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end:end], true
}

// Fill sets every byte of b to v.
func Fill(b []byte, v byte) {
	if v == 0 {
		clear(b)
		return
	}
	for i := range b {
		b[i] = v
	}
}
