// Package tuple provides fixed-arity heterogeneous value tuples.
//
// Tuples are plain values. Copying one takes a snapshot; tuples whose element
// types are all comparable can be compared with ==.
//
// The zip package uses tuples in two roles: a tuple of slot iterators is the
// state a zip iterator owns, and a tuple of element values is what a zip
// iterator dereferences to.
//
// # Usage
//
//	t := tuple.Of3(1, 6, 1.0)
//	a, b, c := t.Values()
//	fmt.Println(t) // (1, 6, 1)
package tuple
