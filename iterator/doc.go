// Package iterator defines the random-access iterator capability set and the
// slot iterators that can be bound into a zip.
//
// An iterator is a small value type. Moving it returns a new value rather
// than mutating the receiver, so copies never alias each other's position.
// Iterators that reference storage (Pointer) alias that storage; computed
// iterators (Counting, Constant, Transform) synthesise their values on read.
//
// # Iterators
//
//   - Pointer: read/write position in a slice
//   - Const: read-only position in a slice
//   - Counting: start, start+1, ...
//   - Constant: the same value everywhere
//   - Transform: fn applied to another iterator's values
//   - Discard: output sink
//
// # Usage
//
//	xs := []int{1, 2, 3}
//	it := iterator.Begin(xs)
//	it.Add(2).Set(30)                                      // xs[2] = 30
//	n := iterator.Distance(iterator.Begin(xs), iterator.End(xs)) // 3
//
// Using an iterator outside its valid range, or comparing iterators over
// different sequences, is a caller error and is not detected.
package iterator
