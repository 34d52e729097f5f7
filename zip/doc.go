// Package zip binds a fixed number of random-access iterators of independent
// types into one random-access iterator over tuples.
//
// A ZipN owns a tuple of N slot iterators and moves all of them by the same
// offset on every operation. Dereferencing yields a RefN facade holding the
// slot iterators at that element: reading the facade reads the live storage
// and assigning a tuple to it writes every slot. Converting the facade to a
// value with Get yields an independent snapshot.
//
// Arity and slot types are part of the type. The element types V0..V(N-1)
// are inferred from the slot iterator types, so the reference type RefN and
// the value type tuple.TN of a zip are fixed at compile time and generic code
// can name them.
//
// Position queries (Diff, Equal, Less, ...) only consult slot 0. This is
// sound as long as the slots are only ever moved through the zip; a zip
// rebuilt from slots that were moved independently gives meaningless
// answers. The package does not detect that, nor out-of-range dereference.
//
// # Usage
//
//	a := []int{1, 2, 3, 4, 5}
//	b := []int{6, 7, 8, 9, 10}
//	c := []float64{1, 2, 3, 4, 5}
//
//	it := zip.Of3(iterator.Begin(a), iterator.Begin(b), iterator.Begin(c))
//	it.Get()                      // (1, 6, 1)
//	it.Set(tuple.Of3(1, 8, 15.0)) // b[0] = 8, c[0] = 15
//	it.Inc()
//	it.Add(2).Get()               // (4, 9, 4)
//
// A zip is itself an iterator.RandomAccess and an iterator.Output, so it can
// be nested inside another zip or passed to algorithm.Transform.
package zip
