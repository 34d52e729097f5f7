package zip

import "github.com/kbukum/zipkit/tuple"

// Zip0 is the zip of no iterators. Every position is the same position:
// moving it is a no-op, distances are zero and all positions compare equal.
type Zip0 struct{}

// New0 returns the arity-0 zip.
func New0(tuple.T0) Zip0 { return Zip0{} }

// Of0 returns the arity-0 zip.
func Of0() Zip0 { return Zip0{} }

// Iterators returns the empty tuple.
func (z Zip0) Iterators() tuple.T0 { return tuple.T0{} }

// Deref returns the empty facade.
func (z Zip0) Deref() Ref0 { return Ref0{} }

// Get returns the empty tuple.
func (z Zip0) Get() tuple.T0 { return tuple.T0{} }

// Set does nothing.
func (z Zip0) Set(tuple.T0) {}

// At returns the empty facade.
func (z Zip0) At(int) Ref0 { return Ref0{} }

// Add returns z unchanged.
func (z Zip0) Add(int) Zip0 { return z }

// Sub returns z unchanged.
func (z Zip0) Sub(int) Zip0 { return z }

// Advance does nothing.
func (z *Zip0) Advance(int) {}

// Retreat does nothing.
func (z *Zip0) Retreat(int) {}

// Inc returns z unchanged.
func (z *Zip0) Inc() Zip0 { return *z }

// PostInc returns z unchanged.
func (z *Zip0) PostInc() Zip0 { return *z }

// Dec returns z unchanged.
func (z *Zip0) Dec() Zip0 { return *z }

// PostDec returns z unchanged.
func (z *Zip0) PostDec() Zip0 { return *z }

// Diff always returns 0.
func (z Zip0) Diff(Zip0) int { return 0 }

// Compare always returns 0.
func (z Zip0) Compare(Zip0) int { return 0 }

// Equal always reports true.
func (z Zip0) Equal(Zip0) bool { return true }

// Less always reports false.
func (z Zip0) Less(Zip0) bool { return false }

// LessEqual always reports true.
func (z Zip0) LessEqual(Zip0) bool { return true }

// Greater always reports false.
func (z Zip0) Greater(Zip0) bool { return false }

// GreaterEqual always reports true.
func (z Zip0) GreaterEqual(Zip0) bool { return true }

// Ref0 is the reference type of Zip0.
type Ref0 struct{}

// Get returns the empty tuple.
func (r Ref0) Get() tuple.T0 { return tuple.T0{} }

// Set does nothing.
func (r Ref0) Set(tuple.T0) {}

// Equal always reports true.
func (r Ref0) Equal(tuple.T0) bool { return true }

// EqualRef always reports true.
func (r Ref0) EqualRef(Ref0) bool { return true }
