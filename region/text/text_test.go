package text

import (
	"testing"

	"github.com/joshuapare/regionkit/region"
	"github.com/joshuapare/regionkit/region/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allEncodings = []Encoding{UTF8, UTF16LE, Windows1252, Latin1}

func TestWriteString_RoundTrip(t *testing.T) {
	for _, enc := range allEncodings {
		t.Run(enc.String(), func(t *testing.T) {
			r := region.FromBytes(make([]byte, 64))

			n, err := WriteString(r, 3, "Software café", enc)
			require.NoError(t, err)
			require.Positive(t, n)

			got, err := ReadString(r, 3, n, enc)
			require.NoError(t, err)
			assert.Equal(t, "Software café", got)
		})
	}
}

func TestWriteString_Sizes(t *testing.T) {
	r := region.FromBytes(make([]byte, 32))

	n, err := WriteString(r, 0, "abc", UTF16LE)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, []byte{'a', 0, 'b', 0, 'c', 0}, r.Bytes()[:6])

	n, err = WriteString(r, 0, "é", UTF8)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = WriteString(r, 0, "é", Latin1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, byte(0xE9), r.Byte(0))

	n, err = WriteString(r, 5, "", UTF8)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestWriteString_Rejected(t *testing.T) {
	r := region.FromBytes(make([]byte, 4))

	_, err := WriteString(r, 0, "abcd", UTF8)
	var ie *region.IdxError
	require.ErrorAs(t, err, &ie, "strict boundary applies to strings too")
	assert.Equal(t, make([]byte, 4), r.Bytes())

	_, err = WriteString(r, 0, "€", Latin1)
	require.Error(t, err, "euro sign has no Latin-1 form")

	n, err := WriteString(r, 0, "€", Windows1252)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, byte(0x80), r.Byte(0))

	_, err = WriteString(r, 0, "x", Encoding(99))
	assert.ErrorIs(t, err, ErrUnknownEncoding)
	assert.Equal(t, "Encoding(99)", Encoding(99).String())
}

func TestFixed_RoundTrip(t *testing.T) {
	for _, enc := range allEncodings {
		t.Run(enc.String(), func(t *testing.T) {
			r := array.Filled[[64]byte](0xAA)

			require.NoError(t, WriteFixed(r, 8, 32, "ControlSet001", enc))
			got, err := ReadFixed(r, 8, 32, enc)
			require.NoError(t, err)
			assert.Equal(t, "ControlSet001", got)

			b := r.Array()
			assert.Equal(t, byte(0xAA), b[7], "bytes before the field are untouched")
			assert.Equal(t, byte(0xAA), b[40], "bytes after the field are untouched")
			assert.Equal(t, byte(0), b[39], "padding is zeroed")
		})
	}
}

func TestFixed_FullWidth(t *testing.T) {
	r := region.FromBytes(make([]byte, 16))

	require.NoError(t, WriteFixed(r, 0, 8, "abcd", UTF16LE))
	got, err := ReadFixed(r, 0, 8, UTF16LE)
	require.NoError(t, err)
	assert.Equal(t, "abcd", got)

	require.NoError(t, WriteFixed(r, 0, 8, "", UTF8))
	got, err = ReadFixed(r, 0, 8, UTF8)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFixed_UTF16NulAlignment(t *testing.T) {
	r := region.FromBytes(make([]byte, 16))

	// U+0100 encodes as 00 01; the zero byte is not a NUL code unit.
	require.NoError(t, WriteFixed(r, 0, 8, "ĀA", UTF16LE))
	got, err := ReadFixed(r, 0, 8, UTF16LE)
	require.NoError(t, err)
	assert.Equal(t, "ĀA", got)
}

func TestWriteFixed_Rejected(t *testing.T) {
	r := region.FromBytes(make([]byte, 16))
	r.SetByte(0, 0x11)

	err := WriteFixed(r, 0, 4, "toolong", UTF8)
	assert.ErrorIs(t, err, ErrTooLong)
	assert.Equal(t, byte(0x11), r.Byte(0), "nothing written on error")

	err = WriteFixed(r, 8, 8, "x", UTF8)
	var ie *region.IdxError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, region.IdxError{Idx: 8, DataSize: 16, TypeSize: 8}, *ie)

	_, err = ReadFixed(r, 8, 8, UTF8)
	require.ErrorAs(t, err, &ie)
	_, err = ReadString(r, -1, 2, UTF8)
	require.Error(t, err)
}

func TestNulIndex(t *testing.T) {
	tests := []struct {
		name string
		b    []byte
		unit int
		want int
	}{
		{"empty", nil, 1, 0},
		{"no nul", []byte("abc"), 1, 3},
		{"leading nul", []byte{0, 'a'}, 1, 0},
		{"middle", []byte{'a', 0, 'b'}, 1, 1},
		{"utf16 aligned", []byte{'a', 0, 0, 0}, 2, 2},
		{"utf16 odd tail", []byte{'a', 0, 'b'}, 2, 2},
		{"utf16 misaligned zeros", []byte{0x01, 0, 0, 0x01}, 2, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nulIndex(tt.b, tt.unit))
		})
	}
}
