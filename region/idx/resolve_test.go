package idx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonical_Notations(t *testing.T) {
	tests := []struct {
		name  string
		idx   Idx
		start Bound
		end   Bound
		str   string
	}{
		{"single", At(3), Incl(3), Incl(3), "3"},
		{"range", Range(1, 4), Incl(1), Excl(4), "1..4"},
		{"inclusive", Inclusive(1, 4), Incl(1), Incl(4), "1..=4"},
		{"from", From(2), Incl(2), Open(), "2.."},
		{"to", To(5), Open(), Excl(5), "..5"},
		{"to inclusive", ToInclusive(5), Open(), Incl(5), "..=5"},
		{"full", Full(), Open(), Open(), ".."},
		{"bounds", Bounds(Excl(1), Incl(6)), Excl(1), Incl(6), "(Excluded(1), Included(6))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, e := Canonical(tt.idx)
			assert.Equal(t, tt.start, s)
			assert.Equal(t, tt.end, e)
			assert.Equal(t, tt.str, tt.idx.(interface{ String() string }).String())
		})
	}
}

func TestResolve_Windows(t *testing.T) {
	tests := []struct {
		name  string
		cap   int
		idx   Idx
		start int
		end   int
		ok    bool
	}{
		{"full", 8, Full(), 0, 8, true},
		{"range", 8, Range(2, 6), 2, 6, true},
		{"range to capacity", 8, Range(2, 8), 2, 8, true},
		{"range past capacity", 8, Range(2, 9), 0, 0, false},
		{"from", 8, From(3), 3, 8, true},
		{"from at capacity", 8, From(8), 0, 0, false},
		{"to", 8, To(4), 0, 4, true},
		{"to capacity", 8, To(8), 0, 8, true},
		{"inclusive end maps to i-1", 8, Inclusive(1, 5), 1, 4, true},
		{"inclusive end at capacity", 8, Inclusive(1, 8), 0, 0, false},
		{"to inclusive", 8, ToInclusive(3), 0, 2, true},
		{"single index is empty", 8, At(3), 3, 3, true},
		{"single index out of range", 8, At(8), 0, 0, false},
		{"excluded start", 8, Bounds(Excl(2), Open()), 3, 8, true},
		{"excluded start at last byte", 8, Bounds(Excl(7), Open()), 0, 0, false},
		{"excluded start saturates", 8, Bounds(Excl(math.MaxInt), Open()), 0, 0, false},
		{"inclusive end zero saturates", 8, Bounds(Open(), Incl(0)), 0, 0, true},
		{"reversed range is empty", 8, Range(5, 2), 5, 5, true},
		{"negative start", 8, Range(-1, 2), 0, 0, false},
		{"negative end", 8, To(-1), 0, 0, false},
		{"unknown kind", 8, Bounds(Bound{Kind: Kind(9)}, Open()), 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := Resolve(tt.cap, tt.idx)
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.start, start, "start")
			assert.Equal(t, tt.end, end, "end")
		})
	}
}

func TestResolve_EmptyRegionRejectsEverything(t *testing.T) {
	for _, i := range []Idx{Full(), At(0), Range(0, 0), From(0), To(0), ToInclusive(0), Inclusive(0, 0)} {
		_, _, ok := Resolve(0, i)
		assert.False(t, ok, "capacity 0 should reject %v", i)
	}
}

func TestResolveUnchecked_MatchesResolve(t *testing.T) {
	start, end := ResolveUnchecked(16, Range(3, 9))
	assert.Equal(t, 3, start)
	assert.Equal(t, 9, end)

	start, end = ResolveUnchecked(16, Full())
	assert.Equal(t, 0, start)
	assert.Equal(t, 16, end)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Unbounded", Unbounded.String())
	assert.Equal(t, "Included", Included.String())
	assert.Equal(t, "Excluded", Excluded.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}

func FuzzResolve(f *testing.F) {
	f.Add(8, uint8(1), 2, uint8(2), 6)
	f.Add(0, uint8(0), 0, uint8(0), 0)
	f.Add(4, uint8(2), 3, uint8(1), 3)

	f.Fuzz(func(t *testing.T, capacity int, sk uint8, sv int, ek uint8, ev int) {
		i := Bounds(Bound{Kind: Kind(sk % 3), Value: sv}, Bound{Kind: Kind(ek % 3), Value: ev})
		start, end, ok := Resolve(capacity, i)
		if !ok {
			return
		}
		if capacity <= 0 {
			t.Fatalf("capacity %d accepted %v", capacity, i)
		}
		if start < 0 || end < start || end > capacity {
			t.Fatalf("Resolve(%d, %v) = [%d, %d) outside region", capacity, i, start, end)
		}
	})
}
