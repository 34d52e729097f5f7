// Package algorithm holds the parallel algorithms that run over iterators on
// a device.Queue.
//
// Transform is the element-wise map. Its input is usually a zip, which lets
// one function read several independently typed sequences:
//
//	in := zip.Of3(iterator.Begin(a), iterator.Begin(b), iterator.Begin(c))
//	err := algorithm.Transform(ctx, q, in, iterator.Begin(out), n,
//		func(v tuple.T3[int32, float64, uint8]) float64 {
//			return float64(v.V0) + v.V1 + float64(v.V2)
//		})
//
// The same function value runs on a HostQueue, in index order, and on an
// AcceleratorQueue, in parallel blocks.
package algorithm
