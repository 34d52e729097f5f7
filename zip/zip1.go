package zip

import (
	"github.com/kbukum/zipkit/iterator"
	"github.com/kbukum/zipkit/tuple"
)

// Zip1 wraps a single slot iterator. It forwards every operation to the
// slot and dereferences to a one-element tuple.
type Zip1[I0 iterator.RandomAccess[I0, V0], V0 comparable] struct {
	its tuple.T1[I0]
}

// New1 returns a zip iterator owning the slot iterators in its.
func New1[I0 iterator.RandomAccess[I0, V0], V0 comparable](its tuple.T1[I0]) Zip1[I0, V0] {
	return Zip1[I0, V0]{its: its}
}

// Of1 is shorthand for New1(tuple.Of1(i0)).
func Of1[I0 iterator.RandomAccess[I0, V0], V0 comparable](i0 I0) Zip1[I0, V0] {
	return Zip1[I0, V0]{its: tuple.Of1(i0)}
}

// Iterators returns a copy of the slot iterators at the current position.
func (z Zip1[I0, V0]) Iterators() tuple.T1[I0] { return z.its }

// Deref returns the reference facade for the current element.
func (z Zip1[I0, V0]) Deref() Ref1[I0, V0] { return Ref1[I0, V0]{its: z.its} }

// Get returns a snapshot of the current element.
func (z Zip1[I0, V0]) Get() tuple.T1[V0] { return z.Deref().Get() }

// Set writes v through every slot at the current position.
func (z Zip1[I0, V0]) Set(v tuple.T1[V0]) { z.Deref().Set(v) }

// At returns the facade n positions ahead without moving z.
func (z Zip1[I0, V0]) At(n int) Ref1[I0, V0] { return z.Add(n).Deref() }

// Add returns z moved by n positions. z itself is not modified.
func (z Zip1[I0, V0]) Add(n int) Zip1[I0, V0] {
	z.its.V0 = z.its.V0.Add(n)
	return z
}

// Sub returns z moved back by n positions.
func (z Zip1[I0, V0]) Sub(n int) Zip1[I0, V0] { return z.Add(-n) }

// Advance moves z forward by n positions in place.
func (z *Zip1[I0, V0]) Advance(n int) { *z = z.Add(n) }

// Retreat moves z back by n positions in place.
func (z *Zip1[I0, V0]) Retreat(n int) { *z = z.Add(-n) }

// Inc moves z forward by one and returns the new position.
func (z *Zip1[I0, V0]) Inc() Zip1[I0, V0] {
	*z = z.Add(1)
	return *z
}

// PostInc moves z forward by one and returns the position it had before.
func (z *Zip1[I0, V0]) PostInc() Zip1[I0, V0] {
	old := *z
	*z = z.Add(1)
	return old
}

// Dec moves z back by one and returns the new position.
func (z *Zip1[I0, V0]) Dec() Zip1[I0, V0] {
	*z = z.Add(-1)
	return *z
}

// PostDec moves z back by one and returns the position it had before.
func (z *Zip1[I0, V0]) PostDec() Zip1[I0, V0] {
	old := *z
	*z = z.Add(-1)
	return old
}

// Diff returns the signed distance from other to z, measured on slot 0.
func (z Zip1[I0, V0]) Diff(other Zip1[I0, V0]) int { return z.its.V0.Diff(other.its.V0) }

// Compare returns -1, 0 or +1 as z is behind, level with or ahead of other.
func (z Zip1[I0, V0]) Compare(other Zip1[I0, V0]) int { return sign(z.Diff(other)) }

// Equal reports whether z and other are at the same position.
func (z Zip1[I0, V0]) Equal(other Zip1[I0, V0]) bool { return z.Diff(other) == 0 }

// Less reports whether z is behind other.
func (z Zip1[I0, V0]) Less(other Zip1[I0, V0]) bool { return z.Diff(other) < 0 }

// LessEqual reports whether z is behind or level with other.
func (z Zip1[I0, V0]) LessEqual(other Zip1[I0, V0]) bool { return z.Diff(other) <= 0 }

// Greater reports whether z is ahead of other.
func (z Zip1[I0, V0]) Greater(other Zip1[I0, V0]) bool { return z.Diff(other) > 0 }

// GreaterEqual reports whether z is ahead of or level with other.
func (z Zip1[I0, V0]) GreaterEqual(other Zip1[I0, V0]) bool { return z.Diff(other) >= 0 }

// Ref1 is the reference type of Zip1.
type Ref1[I0 iterator.RandomAccess[I0, V0], V0 comparable] struct {
	its tuple.T1[I0]
}

// Get reads every slot and returns the values as a tuple.
func (r Ref1[I0, V0]) Get() tuple.T1[V0] {
	return tuple.T1[V0]{
		V0: r.its.V0.Get(),
	}
}

// Set assigns v.Vk to slot k for every k, in slot order. A slot whose
// iterator is not an iterator.Writer panics.
func (r Ref1[I0, V0]) Set(v tuple.T1[V0]) {
	store(0, r.its.V0, v.V0)
}

// Equal reports whether every slot equals the corresponding element of v.
func (r Ref1[I0, V0]) Equal(v tuple.T1[V0]) bool { return r.Get() == v }

// EqualRef compares the elements behind two facades slot by slot.
func (r Ref1[I0, V0]) EqualRef(other Ref1[I0, V0]) bool { return r.Get() == other.Get() }

// Iterators returns the slot iterators the facade refers through.
func (r Ref1[I0, V0]) Iterators() tuple.T1[I0] { return r.its }
