package zip

import (
	"github.com/kbukum/zipkit/iterator"
	"github.com/kbukum/zipkit/tuple"
)

// Zip3 binds three slot iterators into a single random-access iterator
// over tuple.T3 values. The slot types are independent; the element
// types V0..V2 are inferred from them.
//
// Every movement applies the same offset to all slots in slot order, so
// the slots never drift apart. Because of that, Diff and the relational
// methods only look at slot 0. Moving one slot by hand through Iterators
// and rebuilding the zip from it breaks this precondition, and the
// comparisons then silently give wrong answers.
type Zip3[I0 iterator.RandomAccess[I0, V0], I1 iterator.RandomAccess[I1, V1], I2 iterator.RandomAccess[I2, V2], V0, V1, V2 comparable] struct {
	its tuple.T3[I0, I1, I2]
}

// New3 returns a zip iterator owning the slot iterators in its.
func New3[I0 iterator.RandomAccess[I0, V0], I1 iterator.RandomAccess[I1, V1], I2 iterator.RandomAccess[I2, V2], V0, V1, V2 comparable](its tuple.T3[I0, I1, I2]) Zip3[I0, I1, I2, V0, V1, V2] {
	return Zip3[I0, I1, I2, V0, V1, V2]{its: its}
}

// Of3 is shorthand for New3(tuple.Of3(i0, i1, i2)).
func Of3[I0 iterator.RandomAccess[I0, V0], I1 iterator.RandomAccess[I1, V1], I2 iterator.RandomAccess[I2, V2], V0, V1, V2 comparable](i0 I0, i1 I1, i2 I2) Zip3[I0, I1, I2, V0, V1, V2] {
	return Zip3[I0, I1, I2, V0, V1, V2]{its: tuple.Of3(i0, i1, i2)}
}

// Iterators returns a copy of the slot iterators at the current position.
func (z Zip3[I0, I1, I2, V0, V1, V2]) Iterators() tuple.T3[I0, I1, I2] { return z.its }

// Deref returns the reference facade for the current element. The
// facade reads and writes the underlying storage directly.
func (z Zip3[I0, I1, I2, V0, V1, V2]) Deref() Ref3[I0, I1, I2, V0, V1, V2] { return Ref3[I0, I1, I2, V0, V1, V2]{its: z.its} }

// Get returns a snapshot of the current element.
func (z Zip3[I0, I1, I2, V0, V1, V2]) Get() tuple.T3[V0, V1, V2] { return z.Deref().Get() }

// Set writes v through every slot at the current position.
func (z Zip3[I0, I1, I2, V0, V1, V2]) Set(v tuple.T3[V0, V1, V2]) { z.Deref().Set(v) }

// At returns the facade n positions ahead without moving z.
func (z Zip3[I0, I1, I2, V0, V1, V2]) At(n int) Ref3[I0, I1, I2, V0, V1, V2] { return z.Add(n).Deref() }

// Add returns z moved by n positions. z itself is not modified.
func (z Zip3[I0, I1, I2, V0, V1, V2]) Add(n int) Zip3[I0, I1, I2, V0, V1, V2] {
	z.its.V0 = z.its.V0.Add(n)
	z.its.V1 = z.its.V1.Add(n)
	z.its.V2 = z.its.V2.Add(n)
	return z
}

// Sub returns z moved back by n positions.
func (z Zip3[I0, I1, I2, V0, V1, V2]) Sub(n int) Zip3[I0, I1, I2, V0, V1, V2] { return z.Add(-n) }

// Advance moves z forward by n positions in place.
func (z *Zip3[I0, I1, I2, V0, V1, V2]) Advance(n int) { *z = z.Add(n) }

// Retreat moves z back by n positions in place.
func (z *Zip3[I0, I1, I2, V0, V1, V2]) Retreat(n int) { *z = z.Add(-n) }

// Inc moves z forward by one and returns the new position.
func (z *Zip3[I0, I1, I2, V0, V1, V2]) Inc() Zip3[I0, I1, I2, V0, V1, V2] {
	*z = z.Add(1)
	return *z
}

// PostInc moves z forward by one and returns the position it had before.
func (z *Zip3[I0, I1, I2, V0, V1, V2]) PostInc() Zip3[I0, I1, I2, V0, V1, V2] {
	old := *z
	*z = z.Add(1)
	return old
}

// Dec moves z back by one and returns the new position.
func (z *Zip3[I0, I1, I2, V0, V1, V2]) Dec() Zip3[I0, I1, I2, V0, V1, V2] {
	*z = z.Add(-1)
	return *z
}

// PostDec moves z back by one and returns the position it had before.
func (z *Zip3[I0, I1, I2, V0, V1, V2]) PostDec() Zip3[I0, I1, I2, V0, V1, V2] {
	old := *z
	*z = z.Add(-1)
	return old
}

// Diff returns the signed distance from other to z, measured on slot 0.
func (z Zip3[I0, I1, I2, V0, V1, V2]) Diff(other Zip3[I0, I1, I2, V0, V1, V2]) int { return z.its.V0.Diff(other.its.V0) }

// Compare returns -1, 0 or +1 as z is behind, level with or ahead of other.
func (z Zip3[I0, I1, I2, V0, V1, V2]) Compare(other Zip3[I0, I1, I2, V0, V1, V2]) int { return sign(z.Diff(other)) }

// Equal reports whether z and other are at the same position.
func (z Zip3[I0, I1, I2, V0, V1, V2]) Equal(other Zip3[I0, I1, I2, V0, V1, V2]) bool { return z.Diff(other) == 0 }

// Less reports whether z is behind other.
func (z Zip3[I0, I1, I2, V0, V1, V2]) Less(other Zip3[I0, I1, I2, V0, V1, V2]) bool { return z.Diff(other) < 0 }

// LessEqual reports whether z is behind or level with other.
func (z Zip3[I0, I1, I2, V0, V1, V2]) LessEqual(other Zip3[I0, I1, I2, V0, V1, V2]) bool { return z.Diff(other) <= 0 }

// Greater reports whether z is ahead of other.
func (z Zip3[I0, I1, I2, V0, V1, V2]) Greater(other Zip3[I0, I1, I2, V0, V1, V2]) bool { return z.Diff(other) > 0 }

// GreaterEqual reports whether z is ahead of or level with other.
func (z Zip3[I0, I1, I2, V0, V1, V2]) GreaterEqual(other Zip3[I0, I1, I2, V0, V1, V2]) bool { return z.Diff(other) >= 0 }

// Ref3 is the reference type of Zip3. It stands for one element of the
// zipped sequence and holds the slot iterators positioned at it, so reads
// always see the current storage and Set writes through to it.
//
// Get converts the facade to a tuple.T3 value. That value is a copy;
// changing it does not touch the underlying storage.
type Ref3[I0 iterator.RandomAccess[I0, V0], I1 iterator.RandomAccess[I1, V1], I2 iterator.RandomAccess[I2, V2], V0, V1, V2 comparable] struct {
	its tuple.T3[I0, I1, I2]
}

// Get reads every slot and returns the values as a tuple.
func (r Ref3[I0, I1, I2, V0, V1, V2]) Get() tuple.T3[V0, V1, V2] {
	return tuple.T3[V0, V1, V2]{
		V0: r.its.V0.Get(),
		V1: r.its.V1.Get(),
		V2: r.its.V2.Get(),
	}
}

// Set assigns v.Vk to slot k for every k, in slot order. A slot whose
// iterator is not an iterator.Writer panics.
func (r Ref3[I0, I1, I2, V0, V1, V2]) Set(v tuple.T3[V0, V1, V2]) {
	store(0, r.its.V0, v.V0)
	store(1, r.its.V1, v.V1)
	store(2, r.its.V2, v.V2)
}

// Equal reports whether every slot equals the corresponding element of v.
func (r Ref3[I0, I1, I2, V0, V1, V2]) Equal(v tuple.T3[V0, V1, V2]) bool { return r.Get() == v }

// EqualRef compares the elements behind two facades slot by slot.
func (r Ref3[I0, I1, I2, V0, V1, V2]) EqualRef(other Ref3[I0, I1, I2, V0, V1, V2]) bool { return r.Get() == other.Get() }

// Iterators returns the slot iterators the facade refers through.
func (r Ref3[I0, I1, I2, V0, V1, V2]) Iterators() tuple.T3[I0, I1, I2] { return r.its }
