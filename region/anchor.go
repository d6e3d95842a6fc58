package region

// Anchor keeps values written into regions reachable by the garbage collector.
//
// Region bytes are opaque to the collector, so a pointer stored only inside a
// region does not keep its referent alive. AnchoredWrite performs the write
// and records the value on the Anchor in a single step; the referents stay
// alive until Release or until the Anchor itself becomes unreachable.
//
// The zero value is ready to use. An Anchor is not safe for concurrent use.
type Anchor struct {
	held []any
}

// AnchoredWrite writes value into r at at like Write and, on success, retains
// value on a.
func AnchoredWrite[T any](a *Anchor, r Raw, at int, value T) error {
	if err := Write(r, at, value); err != nil {
		return err
	}
	a.held = append(a.held, value)
	return nil
}

// Len returns the number of values currently retained.
func (a *Anchor) Len() int { return len(a.held) }

// Release drops every retained value. Pointers previously written through a
// must not be dereferenced from region bytes afterwards.
func (a *Anchor) Release() {
	clear(a.held)
	a.held = a.held[:0]
}
