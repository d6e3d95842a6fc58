package boxed

import (
	"io"
	"log/slog"
)

// Allocator supplies and reclaims the memory behind a Boxed.
//
// Alloc returns exactly size bytes; for size 0 it may return an empty slice
// without reserving anything. Free receives the slice Alloc returned,
// unmodified, exactly once.
type Allocator interface {
	Alloc(size int) ([]byte, error)
	Free(b []byte) error
}

// Go allocates from the Go heap.
type Go struct{}

var _ Allocator = Go{}

// Alloc returns a zeroed slice of size bytes.
func (Go) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, ErrNegativeSize
	}
	return make([]byte, size), nil
}

// Free does nothing; the collector reclaims the slice.
func (Go) Free([]byte) error { return nil }

// Mmap allocates anonymous private memory mappings. Fresh mappings are
// zero-filled by the operating system. On platforms without a mapping
// primitive it falls back to the Go heap.
//
// The zero value is ready to use.
type Mmap struct {
	// Logger receives a debug record per map and unmap. Nil discards.
	Logger *slog.Logger
}

var _ Allocator = (*Mmap)(nil)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func (m *Mmap) logger() *slog.Logger {
	if m == nil || m.Logger == nil {
		return discard
	}
	return m.Logger
}

// Alloc maps size bytes.
func (m *Mmap) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, ErrNegativeSize
	}
	if size == 0 {
		return []byte{}, nil
	}
	b, err := mapAnon(size)
	if err != nil {
		m.logger().Debug("map failed", "size", size, "err", err)
		return nil, err
	}
	m.logger().Debug("mapped", "size", size, "platform", mapPlatform)
	return b, nil
}

// Free unmaps b.
func (m *Mmap) Free(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	if err := unmapAnon(b); err != nil {
		m.logger().Debug("unmap failed", "size", len(b), "err", err)
		return err
	}
	m.logger().Debug("unmapped", "size", len(b), "platform", mapPlatform)
	return nil
}
