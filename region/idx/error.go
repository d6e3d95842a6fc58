package idx

import "fmt"

// IdxError describes a checked access whose span does not fit in a region.
//
// Idx is the requested offset, DataSize the region capacity, and TypeSize the
// size in bytes of the value or span that was rejected.
type IdxError struct {
	Idx      int
	DataSize int
	TypeSize int
}

func (e *IdxError) Error() string {
	switch {
	case e.Idx < 0:
		return fmt.Sprintf("region: negative offset %d", e.Idx)
	case e.TypeSize < 0:
		return fmt.Sprintf("region: negative size %d at offset %d", e.TypeSize, e.Idx)
	case e.Idx > e.DataSize:
		return fmt.Sprintf("region: offset %d is beyond capacity %d", e.Idx, e.DataSize)
	default:
		return fmt.Sprintf(
			"region: offset %d plus size %d does not fit within capacity %d",
			e.Idx, e.TypeSize, e.DataSize,
		)
	}
}
