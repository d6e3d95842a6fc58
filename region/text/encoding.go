package text

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding selects the byte representation of a string in a region.
type Encoding int

const (
	UTF8 Encoding = iota
	UTF16LE
	Windows1252
	Latin1
)

func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "utf-8"
	case UTF16LE:
		return "utf-16le"
	case Windows1252:
		return "windows-1252"
	case Latin1:
		return "iso-8859-1"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// Unit returns the size in bytes of one code unit.
func (e Encoding) Unit() int {
	if e == UTF16LE {
		return 2
	}
	return 1
}

func (e Encoding) codec() (encoding.Encoding, error) {
	switch e {
	case UTF8:
		return unicode.UTF8, nil
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case Windows1252:
		return charmap.Windows1252, nil
	case Latin1:
		return charmap.ISO8859_1, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownEncoding, int(e))
	}
}

// Encode returns s in encoding e. The result is never nil.
func Encode(s string, e Encoding) ([]byte, error) {
	c, err := e.codec()
	if err != nil {
		return nil, err
	}
	out, _, err := transform.String(c.NewEncoder(), s)
	if err != nil {
		return nil, fmt.Errorf("text: encode %s: %w", e, err)
	}
	if out == "" {
		return []byte{}, nil
	}
	return []byte(out), nil
}

// Decode converts b from encoding e to a Go string.
func Decode(b []byte, e Encoding) (string, error) {
	c, err := e.codec()
	if err != nil {
		return "", err
	}
	out, err := c.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("text: decode %s: %w", e, err)
	}
	return string(out), nil
}
