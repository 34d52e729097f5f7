package zip

import (
	"github.com/kbukum/zipkit/iterator"
	"github.com/kbukum/zipkit/tuple"
)

// Zip2 is the two-slot form of Zip3.
type Zip2[I0 iterator.RandomAccess[I0, V0], I1 iterator.RandomAccess[I1, V1], V0, V1 comparable] struct {
	its tuple.T2[I0, I1]
}

// New2 returns a zip iterator owning the slot iterators in its.
func New2[I0 iterator.RandomAccess[I0, V0], I1 iterator.RandomAccess[I1, V1], V0, V1 comparable](its tuple.T2[I0, I1]) Zip2[I0, I1, V0, V1] {
	return Zip2[I0, I1, V0, V1]{its: its}
}

// Of2 is shorthand for New2(tuple.Of2(i0, i1)).
func Of2[I0 iterator.RandomAccess[I0, V0], I1 iterator.RandomAccess[I1, V1], V0, V1 comparable](i0 I0, i1 I1) Zip2[I0, I1, V0, V1] {
	return Zip2[I0, I1, V0, V1]{its: tuple.Of2(i0, i1)}
}

// Iterators returns a copy of the slot iterators at the current position.
func (z Zip2[I0, I1, V0, V1]) Iterators() tuple.T2[I0, I1] { return z.its }

// Deref returns the reference facade for the current element.
func (z Zip2[I0, I1, V0, V1]) Deref() Ref2[I0, I1, V0, V1] { return Ref2[I0, I1, V0, V1]{its: z.its} }

// Get returns a snapshot of the current element.
func (z Zip2[I0, I1, V0, V1]) Get() tuple.T2[V0, V1] { return z.Deref().Get() }

// Set writes v through every slot at the current position.
func (z Zip2[I0, I1, V0, V1]) Set(v tuple.T2[V0, V1]) { z.Deref().Set(v) }

// At returns the facade n positions ahead without moving z.
func (z Zip2[I0, I1, V0, V1]) At(n int) Ref2[I0, I1, V0, V1] { return z.Add(n).Deref() }

// Add returns z moved by n positions. z itself is not modified.
func (z Zip2[I0, I1, V0, V1]) Add(n int) Zip2[I0, I1, V0, V1] {
	z.its.V0 = z.its.V0.Add(n)
	z.its.V1 = z.its.V1.Add(n)
	return z
}

// Sub returns z moved back by n positions.
func (z Zip2[I0, I1, V0, V1]) Sub(n int) Zip2[I0, I1, V0, V1] { return z.Add(-n) }

// Advance moves z forward by n positions in place.
func (z *Zip2[I0, I1, V0, V1]) Advance(n int) { *z = z.Add(n) }

// Retreat moves z back by n positions in place.
func (z *Zip2[I0, I1, V0, V1]) Retreat(n int) { *z = z.Add(-n) }

// Inc moves z forward by one and returns the new position.
func (z *Zip2[I0, I1, V0, V1]) Inc() Zip2[I0, I1, V0, V1] {
	*z = z.Add(1)
	return *z
}

// PostInc moves z forward by one and returns the position it had before.
func (z *Zip2[I0, I1, V0, V1]) PostInc() Zip2[I0, I1, V0, V1] {
	old := *z
	*z = z.Add(1)
	return old
}

// Dec moves z back by one and returns the new position.
func (z *Zip2[I0, I1, V0, V1]) Dec() Zip2[I0, I1, V0, V1] {
	*z = z.Add(-1)
	return *z
}

// PostDec moves z back by one and returns the position it had before.
func (z *Zip2[I0, I1, V0, V1]) PostDec() Zip2[I0, I1, V0, V1] {
	old := *z
	*z = z.Add(-1)
	return old
}

// Diff returns the signed distance from other to z, measured on slot 0.
func (z Zip2[I0, I1, V0, V1]) Diff(other Zip2[I0, I1, V0, V1]) int { return z.its.V0.Diff(other.its.V0) }

// Compare returns -1, 0 or +1 as z is behind, level with or ahead of other.
func (z Zip2[I0, I1, V0, V1]) Compare(other Zip2[I0, I1, V0, V1]) int { return sign(z.Diff(other)) }

// Equal reports whether z and other are at the same position.
func (z Zip2[I0, I1, V0, V1]) Equal(other Zip2[I0, I1, V0, V1]) bool { return z.Diff(other) == 0 }

// Less reports whether z is behind other.
func (z Zip2[I0, I1, V0, V1]) Less(other Zip2[I0, I1, V0, V1]) bool { return z.Diff(other) < 0 }

// LessEqual reports whether z is behind or level with other.
func (z Zip2[I0, I1, V0, V1]) LessEqual(other Zip2[I0, I1, V0, V1]) bool { return z.Diff(other) <= 0 }

// Greater reports whether z is ahead of other.
func (z Zip2[I0, I1, V0, V1]) Greater(other Zip2[I0, I1, V0, V1]) bool { return z.Diff(other) > 0 }

// GreaterEqual reports whether z is ahead of or level with other.
func (z Zip2[I0, I1, V0, V1]) GreaterEqual(other Zip2[I0, I1, V0, V1]) bool { return z.Diff(other) >= 0 }

// Ref2 is the reference type of Zip2. See Ref3.
type Ref2[I0 iterator.RandomAccess[I0, V0], I1 iterator.RandomAccess[I1, V1], V0, V1 comparable] struct {
	its tuple.T2[I0, I1]
}

// Get reads every slot and returns the values as a tuple.
func (r Ref2[I0, I1, V0, V1]) Get() tuple.T2[V0, V1] {
	return tuple.T2[V0, V1]{
		V0: r.its.V0.Get(),
		V1: r.its.V1.Get(),
	}
}

// Set assigns v.Vk to slot k for every k, in slot order. A slot whose
// iterator is not an iterator.Writer panics.
func (r Ref2[I0, I1, V0, V1]) Set(v tuple.T2[V0, V1]) {
	store(0, r.its.V0, v.V0)
	store(1, r.its.V1, v.V1)
}

// Equal reports whether every slot equals the corresponding element of v.
func (r Ref2[I0, I1, V0, V1]) Equal(v tuple.T2[V0, V1]) bool { return r.Get() == v }

// EqualRef compares the elements behind two facades slot by slot.
func (r Ref2[I0, I1, V0, V1]) EqualRef(other Ref2[I0, I1, V0, V1]) bool { return r.Get() == other.Get() }

// Iterators returns the slot iterators the facade refers through.
func (r Ref2[I0, I1, V0, V1]) Iterators() tuple.T2[I0, I1] { return r.its }
