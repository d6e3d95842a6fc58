package idx

import (
	"fmt"
	"strconv"
)

// Kind classifies a Bound.
type Kind uint8

const (
	// Unbounded means the range is open on this side.
	Unbounded Kind = iota
	// Included means Bound.Value is part of the range.
	Included
	// Excluded means Bound.Value is not part of the range.
	Excluded
)

func (k Kind) String() string {
	switch k {
	case Unbounded:
		return "Unbounded"
	case Included:
		return "Included"
	case Excluded:
		return "Excluded"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Bound is one end of a range. Value is ignored for Unbounded.
type Bound struct {
	Kind  Kind
	Value int
}

// Incl returns an Included bound at i.
func Incl(i int) Bound { return Bound{Kind: Included, Value: i} }

// Excl returns an Excluded bound at i.
func Excl(i int) Bound { return Bound{Kind: Excluded, Value: i} }

// Open returns an Unbounded bound.
func Open() Bound { return Bound{Kind: Unbounded} }

func (b Bound) String() string {
	switch b.Kind {
	case Unbounded:
		return "Unbounded"
	case Included:
		return "Included(" + strconv.Itoa(b.Value) + ")"
	case Excluded:
		return "Excluded(" + strconv.Itoa(b.Value) + ")"
	default:
		return b.Kind.String()
	}
}

// Idx is any range notation accepted by the sub-region lookups.
//
// The set of notations is closed; use Bounds to express an arbitrary pair.
type Idx interface {
	Start() Bound
	End() Bound
	sealed()
}

// Canonical returns the (start, end) bound pair of i.
func Canonical(i Idx) (Bound, Bound) {
	return i.Start(), i.End()
}

type single int

// At addresses a single index.
func At(i int) Idx { return single(i) }

func (s single) Start() Bound   { return Incl(int(s)) }
func (s single) End() Bound     { return Incl(int(s)) }
func (s single) String() string { return strconv.Itoa(int(s)) }
func (single) sealed()          {}

type halfOpen struct{ lo, hi int }

// Range is the half-open range a..b.
func Range(a, b int) Idx { return halfOpen{lo: a, hi: b} }

func (r halfOpen) Start() Bound   { return Incl(r.lo) }
func (r halfOpen) End() Bound     { return Excl(r.hi) }
func (r halfOpen) String() string { return fmt.Sprintf("%d..%d", r.lo, r.hi) }
func (halfOpen) sealed()          {}

type closed struct{ lo, hi int }

// Inclusive is the closed range a..=b.
func Inclusive(a, b int) Idx { return closed{lo: a, hi: b} }

func (r closed) Start() Bound   { return Incl(r.lo) }
func (r closed) End() Bound     { return Incl(r.hi) }
func (r closed) String() string { return fmt.Sprintf("%d..=%d", r.lo, r.hi) }
func (closed) sealed()          {}

type from int

// From is the range a.. running to the end of the region.
func From(a int) Idx { return from(a) }

func (r from) Start() Bound   { return Incl(int(r)) }
func (from) End() Bound       { return Open() }
func (r from) String() string { return fmt.Sprintf("%d..", int(r)) }
func (from) sealed()          {}

type to int

// To is the range ..b.
func To(b int) Idx { return to(b) }

func (to) Start() Bound     { return Open() }
func (r to) End() Bound     { return Excl(int(r)) }
func (r to) String() string { return fmt.Sprintf("..%d", int(r)) }
func (to) sealed()          {}

type toInclusive int

// ToInclusive is the range ..=b.
func ToInclusive(b int) Idx { return toInclusive(b) }

func (toInclusive) Start() Bound     { return Open() }
func (r toInclusive) End() Bound     { return Incl(int(r)) }
func (r toInclusive) String() string { return fmt.Sprintf("..=%d", int(r)) }
func (toInclusive) sealed()          {}

type full struct{}

// Full is the range .. covering the whole region.
func Full() Idx { return full{} }

func (full) Start() Bound   { return Open() }
func (full) End() Bound     { return Open() }
func (full) String() string { return ".." }
func (full) sealed()        {}

type pair struct{ start, end Bound }

// Bounds builds an Idx from an explicit pair of bounds.
func Bounds(start, end Bound) Idx { return pair{start: start, end: end} }

func (p pair) Start() Bound   { return p.start }
func (p pair) End() Bound     { return p.end }
func (p pair) String() string { return "(" + p.start.String() + ", " + p.end.String() + ")" }
func (pair) sealed()          {}
