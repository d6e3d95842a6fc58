package idx

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_StrictBoundary(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		at       int
		size     int
		ok       bool
	}{
		{"fits with slack", 4, 0, 3, true},
		{"ends exactly at capacity", 4, 2, 2, false},
		{"whole region", 4, 0, 4, false},
		{"zero size inside", 4, 3, 0, true},
		{"zero size at capacity", 4, 4, 0, false},
		{"empty region", 0, 0, 0, false},
		{"offset beyond", 8, 9, 1, false},
		{"negative offset", 8, -1, 1, false},
		{"negative size", 8, 1, -1, false},
		{"overflow", 8, math.MaxInt, 1, false},
		{"large region", 32, 0, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.capacity, tt.at, tt.size)
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)

			var ie *IdxError
			require.True(t, errors.As(err, &ie), "error should be *IdxError")
			assert.Equal(t, IdxError{Idx: tt.at, DataSize: tt.capacity, TypeSize: tt.size}, *ie)
		})
	}
}

func TestCheck_ScenarioCapacityFour(t *testing.T) {
	err := Check(4, 2, 2)
	require.Error(t, err)
	assert.Equal(t, &IdxError{Idx: 2, DataSize: 4, TypeSize: 2}, err)
}

func TestIdxError_Messages(t *testing.T) {
	assert.Equal(t,
		"region: offset 9 is beyond capacity 8",
		(&IdxError{Idx: 9, DataSize: 8, TypeSize: 1}).Error())
	assert.Equal(t,
		"region: offset 2 plus size 2 does not fit within capacity 4",
		(&IdxError{Idx: 2, DataSize: 4, TypeSize: 2}).Error())
	assert.Equal(t,
		"region: negative offset -3",
		(&IdxError{Idx: -3, DataSize: 4, TypeSize: 2}).Error())
	assert.Equal(t,
		"region: negative size -1 at offset 0",
		(&IdxError{Idx: 0, DataSize: 4, TypeSize: -1}).Error())
}

func FuzzCheck(f *testing.F) {
	f.Add(4, 2, 2)
	f.Add(32, 0, 4)
	f.Add(0, 0, 0)
	f.Add(math.MaxInt, math.MaxInt, 1)

	f.Fuzz(func(t *testing.T, capacity, at, size int) {
		err := Check(capacity, at, size)
		want := at >= 0 && size >= 0 && at <= math.MaxInt-size && at+size < capacity
		if want && err != nil {
			t.Fatalf("Check(%d,%d,%d) = %v, want ok", capacity, at, size, err)
		}
		if !want && err == nil {
			t.Fatalf("Check(%d,%d,%d) = nil, want error", capacity, at, size)
		}
	})
}
