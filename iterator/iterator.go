package iterator

// RandomAccess is the capability set of a random-access iterator. I is the
// iterator type itself and T the type produced by dereferencing it.
//
// The three methods are enough to derive every other random-access
// operation: increments and decrements are Add(1) and Add(-1), compound
// advance is reassignment of Add(n), subscript is Add(n).Get() and the
// relational operators compare Diff against zero.
type RandomAccess[I any, T any] interface {
	// Get dereferences the iterator at its current position.
	Get() T
	// Add returns a copy of the iterator moved by n positions. The receiver
	// is not modified.
	Add(n int) I
	// Diff returns the signed distance from other to the receiver, positive
	// when the receiver is ahead of other.
	Diff(other I) int
}

// Writer is implemented by iterators whose dereference can be assigned.
type Writer[T any] interface {
	// Set stores v at the iterator's current position.
	Set(v T)
}

// Output is the capability set of an iterator used as a transform
// destination.
type Output[I any, T any] interface {
	Writer[T]
	Add(n int) I
}

// Integer is the set of integer element types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Number is the set of arithmetic element types.
type Number interface {
	Integer | ~float32 | ~float64
}

// Next returns it moved forward by one position.
func Next[I RandomAccess[I, T], T any](it I) I {
	return it.Add(1)
}

// Prev returns it moved back by one position.
func Prev[I RandomAccess[I, T], T any](it I) I {
	return it.Add(-1)
}

// Advance moves the iterator pointed to by it by n positions in place.
func Advance[I RandomAccess[I, T], T any](it *I, n int) {
	*it = (*it).Add(n)
}

// Distance returns the number of positions from first to last.
func Distance[I RandomAccess[I, T], T any](first, last I) int {
	return last.Diff(first)
}

// At returns the element n positions past it, leaving it untouched.
func At[I RandomAccess[I, T], T any](it I, n int) T {
	return it.Add(n).Get()
}

// Compare returns -1, 0 or +1 depending on whether a is behind, level with
// or ahead of b.
func Compare[I RandomAccess[I, T], T any](a, b I) int {
	return sign(a.Diff(b))
}

// Equal reports whether a and b are at the same position.
func Equal[I RandomAccess[I, T], T any](a, b I) bool {
	return a.Diff(b) == 0
}

// Less reports whether a is behind b.
func Less[I RandomAccess[I, T], T any](a, b I) bool {
	return a.Diff(b) < 0
}

func sign(d int) int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}
