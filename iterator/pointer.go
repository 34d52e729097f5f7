package iterator

// Pointer is a mutable random-access position in a slice, the equivalent of
// a raw element pointer. Moving a Pointer never checks bounds; dereferencing
// outside the slice panics.
type Pointer[T any] struct {
	s []T
	i int
}

// Begin returns a Pointer to the first element of s.
func Begin[T any](s []T) Pointer[T] {
	return Pointer[T]{s: s}
}

// End returns a Pointer one past the last element of s.
func End[T any](s []T) Pointer[T] {
	return Pointer[T]{s: s, i: len(s)}
}

func (p Pointer[T]) Get() T { return p.s[p.i] }

func (p Pointer[T]) Set(v T) { p.s[p.i] = v }

// Ref returns the address of the current element.
func (p Pointer[T]) Ref() *T { return &p.s[p.i] }

func (p Pointer[T]) Add(n int) Pointer[T] {
	p.i += n
	return p
}

func (p Pointer[T]) Diff(other Pointer[T]) int { return p.i - other.i }

// Index returns the position of p within its slice.
func (p Pointer[T]) Index() int { return p.i }

// Const returns a read-only view of p.
func (p Pointer[T]) Const() Const[T] {
	return Const[T]{s: p.s, i: p.i}
}

// Const is a read-only random-access position in a slice. It does not
// implement Writer.
type Const[T any] struct {
	s []T
	i int
}

// CBegin returns a Const to the first element of s.
func CBegin[T any](s []T) Const[T] {
	return Const[T]{s: s}
}

// CEnd returns a Const one past the last element of s.
func CEnd[T any](s []T) Const[T] {
	return Const[T]{s: s, i: len(s)}
}

func (c Const[T]) Get() T { return c.s[c.i] }

func (c Const[T]) Add(n int) Const[T] {
	c.i += n
	return c
}

func (c Const[T]) Diff(other Const[T]) int { return c.i - other.i }

// Index returns the position of c within its slice.
func (c Const[T]) Index() int { return c.i }
