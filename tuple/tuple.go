package tuple

import "fmt"

// T0 is the empty tuple.
type T0 struct{}

// T1 holds a single value.
type T1[A any] struct {
	V0 A
}

// T2 holds two values of independent types.
type T2[A, B any] struct {
	V0 A
	V1 B
}

// T3 holds three values of independent types.
type T3[A, B, C any] struct {
	V0 A
	V1 B
	V2 C
}

// T4 holds four values of independent types.
type T4[A, B, C, D any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
}

// Of1 builds a T1.
func Of1[A any](a A) T1[A] {
	return T1[A]{V0: a}
}

// Of2 builds a T2.
func Of2[A, B any](a A, b B) T2[A, B] {
	return T2[A, B]{V0: a, V1: b}
}

// Of3 builds a T3.
func Of3[A, B, C any](a A, b B, c C) T3[A, B, C] {
	return T3[A, B, C]{V0: a, V1: b, V2: c}
}

// Of4 builds a T4.
func Of4[A, B, C, D any](a A, b B, c C, d D) T4[A, B, C, D] {
	return T4[A, B, C, D]{V0: a, V1: b, V2: c, V3: d}
}

func (t T0) String() string { return "()" }

// Values returns the tuple's element.
func (t T1[A]) Values() A { return t.V0 }

func (t T1[A]) String() string { return fmt.Sprintf("(%v)", t.V0) }

// Values returns the tuple's elements in order.
func (t T2[A, B]) Values() (A, B) { return t.V0, t.V1 }

func (t T2[A, B]) String() string { return fmt.Sprintf("(%v, %v)", t.V0, t.V1) }

// Values returns the tuple's elements in order.
func (t T3[A, B, C]) Values() (A, B, C) { return t.V0, t.V1, t.V2 }

func (t T3[A, B, C]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.V0, t.V1, t.V2)
}

// Values returns the tuple's elements in order.
func (t T4[A, B, C, D]) Values() (A, B, C, D) { return t.V0, t.V1, t.V2, t.V3 }

func (t T4[A, B, C, D]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", t.V0, t.V1, t.V2, t.V3)
}
