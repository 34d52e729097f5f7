package iterator

// Counting yields start, start+1, start+2, ... without backing storage.
// Its dereference is a computed value and cannot be assigned.
//
// The position is kept as an integer offset from start, so distances stay
// exact for floating-point and unsigned element types.
type Counting[T Number] struct {
	start T
	i     int
}

// NewCounting returns a Counting positioned at start.
func NewCounting[T Number](start T) Counting[T] {
	return Counting[T]{start: start}
}

func (c Counting[T]) Get() T { return c.start + T(c.i) }

func (c Counting[T]) Add(n int) Counting[T] {
	c.i += n
	return c
}

func (c Counting[T]) Diff(other Counting[T]) int { return c.i - other.i }

// Constant yields the same value at every position.
type Constant[T any] struct {
	v T
	i int
}

// NewConstant returns a Constant yielding v.
func NewConstant[T any](v T) Constant[T] {
	return Constant[T]{v: v}
}

func (c Constant[T]) Get() T { return c.v }

func (c Constant[T]) Add(n int) Constant[T] {
	c.i += n
	return c
}

func (c Constant[T]) Diff(other Constant[T]) int { return c.i - other.i }

// Transform applies fn to every element read through base. Reads are not
// cached: each Get calls fn again.
type Transform[I RandomAccess[I, T], T, U any] struct {
	base I
	fn   func(T) U
}

// NewTransform wraps base so that dereferencing yields fn(*base).
func NewTransform[I RandomAccess[I, T], T, U any](base I, fn func(T) U) Transform[I, T, U] {
	return Transform[I, T, U]{base: base, fn: fn}
}

func (t Transform[I, T, U]) Get() U { return t.fn(t.base.Get()) }

func (t Transform[I, T, U]) Add(n int) Transform[I, T, U] {
	t.base = t.base.Add(n)
	return t
}

func (t Transform[I, T, U]) Diff(other Transform[I, T, U]) int {
	return t.base.Diff(other.base)
}

// Base returns the wrapped iterator at the current position.
func (t Transform[I, T, U]) Base() I { return t.base }

// Discard is an output iterator that drops every value written to it.
type Discard[T any] struct {
	i int
}

// NewDiscard returns a Discard at position zero.
func NewDiscard[T any]() Discard[T] {
	return Discard[T]{}
}

// Get always returns the zero value.
func (d Discard[T]) Get() T {
	var zero T
	return zero
}

func (d Discard[T]) Set(T) {}

func (d Discard[T]) Add(n int) Discard[T] {
	d.i += n
	return d
}

func (d Discard[T]) Diff(other Discard[T]) int { return d.i - other.i }
