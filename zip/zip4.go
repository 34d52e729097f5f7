package zip

import (
	"github.com/kbukum/zipkit/iterator"
	"github.com/kbukum/zipkit/tuple"
)

// Zip4 is the four-slot form of Zip3.
type Zip4[I0 iterator.RandomAccess[I0, V0], I1 iterator.RandomAccess[I1, V1], I2 iterator.RandomAccess[I2, V2], I3 iterator.RandomAccess[I3, V3], V0, V1, V2, V3 comparable] struct {
	its tuple.T4[I0, I1, I2, I3]
}

// New4 returns a zip iterator owning the slot iterators in its.
func New4[I0 iterator.RandomAccess[I0, V0], I1 iterator.RandomAccess[I1, V1], I2 iterator.RandomAccess[I2, V2], I3 iterator.RandomAccess[I3, V3], V0, V1, V2, V3 comparable](its tuple.T4[I0, I1, I2, I3]) Zip4[I0, I1, I2, I3, V0, V1, V2, V3] {
	return Zip4[I0, I1, I2, I3, V0, V1, V2, V3]{its: its}
}

// Of4 is shorthand for New4(tuple.Of4(i0, i1, i2, i3)).
func Of4[I0 iterator.RandomAccess[I0, V0], I1 iterator.RandomAccess[I1, V1], I2 iterator.RandomAccess[I2, V2], I3 iterator.RandomAccess[I3, V3], V0, V1, V2, V3 comparable](i0 I0, i1 I1, i2 I2, i3 I3) Zip4[I0, I1, I2, I3, V0, V1, V2, V3] {
	return Zip4[I0, I1, I2, I3, V0, V1, V2, V3]{its: tuple.Of4(i0, i1, i2, i3)}
}

// Iterators returns a copy of the slot iterators at the current position.
func (z Zip4[I0, I1, I2, I3, V0, V1, V2, V3]) Iterators() tuple.T4[I0, I1, I2, I3] { return z.its }

// Deref returns the reference facade for the current element.
func (z Zip4[I0, I1, I2, I3, V0, V1, V2, V3]) Deref() Ref4[I0, I1, I2, I3, V0, V1, V2, V3] { return Ref4[I0, I1, I2, I3, V0, V1, V2, V3]{its: z.its} }

// Get returns a snapshot of the current element.
func (z Zip4[I0, I1, I2, I3, V0, V1, V2, V3]) Get() tuple.T4[V0, V1, V2, V3] { return z.Deref().Get() }

// Set writes v through every slot at the current position.
func (z Zip4[I0, I1, I2, I3, V0, V1, V2, V3]) Set(v tuple.T4[V0, V1, V2, V3]) { z.Deref().Set(v) }

// At returns the facade n positions ahead without moving z.
func (z Zip4[I0, I1, I2, I3, V0, V1, V2, V3]) At(n int) Ref4[I0, I1, I2, I3, V0, V1, V2, V3] { return z.Add(n).Deref() }

// Add returns z moved by n positions. z itself is not modified.
func (z Zip4[I0, I1, I2, I3, V0, V1, V2, V3]) Add(n int) Zip4[I0, I1, I2, I3, V0, V1, V2, V3] {
	z.its.V0 = z.its.V0.Add(n)
	z.its.V1 = z.its.V1.Add(n)
	z.its.V2 = z.its.V2.Add(n)
	z.its.V3 = z.its.V3.Add(n)
	return z
}

// Sub returns z moved back by n positions.
func (z Zip4[I0, I1, I2, I3, V0, V1, V2, V3]) Sub(n int) Zip4[I0, I1, I2, I3, V0, V1, V2, V3] { return z.Add(-n) }

// Advance moves z forward by n positions in place.
func (z *Zip4[I0, I1, I2, I3, V0, V1, V2, V3]) Advance(n int) { *z = z.Add(n) }

// Retreat moves z back by n positions in place.
func (z *Zip4[I0, I1, I2, I3, V0, V1, V2, V3]) Retreat(n int) { *z = z.Add(-n) }

// Inc moves z forward by one and returns the new position.
func (z *Zip4[I0, I1, I2, I3, V0, V1, V2, V3]) Inc() Zip4[I0, I1, I2, I3, V0, V1, V2, V3] {
	*z = z.Add(1)
	return *z
}

// PostInc moves z forward by one and returns the position it had before.
func (z *Zip4[I0, I1, I2, I3, V0, V1, V2, V3]) PostInc() Zip4[I0, I1, I2, I3, V0, V1, V2, V3] {
	old := *z
	*z = z.Add(1)
	return old
}

// Dec moves z back by one and returns the new position.
func (z *Zip4[I0, I1, I2, I3, V0, V1, V2, V3]) Dec() Zip4[I0, I1, I2, I3, V0, V1, V2, V3] {
	*z = z.Add(-1)
	return *z
}

// PostDec moves z back by one and returns the position it had before.
func (z *Zip4[I0, I1, I2, I3, V0, V1, V2, V3]) PostDec() Zip4[I0, I1, I2, I3, V0, V1, V2, V3] {
	old := *z
	*z = z.Add(-1)
	return old
}

// Diff returns the signed distance from other to z, measured on slot 0.
func (z Zip4[I0, I1, I2, I3, V0, V1, V2, V3]) Diff(other Zip4[I0, I1, I2, I3, V0, V1, V2, V3]) int { return z.its.V0.Diff(other.its.V0) }

// Compare returns -1, 0 or +1 as z is behind, level with or ahead of other.
func (z Zip4[I0, I1, I2, I3, V0, V1, V2, V3]) Compare(other Zip4[I0, I1, I2, I3, V0, V1, V2, V3]) int { return sign(z.Diff(other)) }

// Equal reports whether z and other are at the same position.
func (z Zip4[I0, I1, I2, I3, V0, V1, V2, V3]) Equal(other Zip4[I0, I1, I2, I3, V0, V1, V2, V3]) bool { return z.Diff(other) == 0 }

// Less reports whether z is behind other.
func (z Zip4[I0, I1, I2, I3, V0, V1, V2, V3]) Less(other Zip4[I0, I1, I2, I3, V0, V1, V2, V3]) bool { return z.Diff(other) < 0 }

// LessEqual reports whether z is behind or level with other.
func (z Zip4[I0, I1, I2, I3, V0, V1, V2, V3]) LessEqual(other Zip4[I0, I1, I2, I3, V0, V1, V2, V3]) bool { return z.Diff(other) <= 0 }

// Greater reports whether z is ahead of other.
func (z Zip4[I0, I1, I2, I3, V0, V1, V2, V3]) Greater(other Zip4[I0, I1, I2, I3, V0, V1, V2, V3]) bool { return z.Diff(other) > 0 }

// GreaterEqual reports whether z is ahead of or level with other.
func (z Zip4[I0, I1, I2, I3, V0, V1, V2, V3]) GreaterEqual(other Zip4[I0, I1, I2, I3, V0, V1, V2, V3]) bool { return z.Diff(other) >= 0 }

// Ref4 is the reference type of Zip4. See Ref3.
type Ref4[I0 iterator.RandomAccess[I0, V0], I1 iterator.RandomAccess[I1, V1], I2 iterator.RandomAccess[I2, V2], I3 iterator.RandomAccess[I3, V3], V0, V1, V2, V3 comparable] struct {
	its tuple.T4[I0, I1, I2, I3]
}

// Get reads every slot and returns the values as a tuple.
func (r Ref4[I0, I1, I2, I3, V0, V1, V2, V3]) Get() tuple.T4[V0, V1, V2, V3] {
	return tuple.T4[V0, V1, V2, V3]{
		V0: r.its.V0.Get(),
		V1: r.its.V1.Get(),
		V2: r.its.V2.Get(),
		V3: r.its.V3.Get(),
	}
}

// Set assigns v.Vk to slot k for every k, in slot order. A slot whose
// iterator is not an iterator.Writer panics.
func (r Ref4[I0, I1, I2, I3, V0, V1, V2, V3]) Set(v tuple.T4[V0, V1, V2, V3]) {
	store(0, r.its.V0, v.V0)
	store(1, r.its.V1, v.V1)
	store(2, r.its.V2, v.V2)
	store(3, r.its.V3, v.V3)
}

// Equal reports whether every slot equals the corresponding element of v.
func (r Ref4[I0, I1, I2, I3, V0, V1, V2, V3]) Equal(v tuple.T4[V0, V1, V2, V3]) bool { return r.Get() == v }

// EqualRef compares the elements behind two facades slot by slot.
func (r Ref4[I0, I1, I2, I3, V0, V1, V2, V3]) EqualRef(other Ref4[I0, I1, I2, I3, V0, V1, V2, V3]) bool { return r.Get() == other.Get() }

// Iterators returns the slot iterators the facade refers through.
func (r Ref4[I0, I1, I2, I3, V0, V1, V2, V3]) Iterators() tuple.T4[I0, I1, I2, I3] { return r.its }
