// Package device provides the execution contexts kernels run on.
//
// A Queue accepts Launches: a kernel over the index range [0, Size). Two
// implementations exist:
//
//   - HostQueue runs each launch on the calling goroutine as one pass over
//     [0, Size), so side effects happen in index order. It is the reference
//     path results from a Device are checked against.
//   - AcceleratorQueue runs on a Device. A launch is cut into blocks of
//     BlockSize*ItemsPerThread indices and the blocks run concurrently on
//     the device's compute units. Launches on one queue run one after
//     another in submission order.
//
// Submission is asynchronous. Failures that happen while a kernel runs
// (a panic, a canceled context) are collected and returned by the next Wait
// as *errors.AppError values joined together:
//
//	dev, _ := device.New(device.Config{ComputeUnits: 8})
//	_ = dev.Start(ctx)
//	q, _ := dev.NewQueue()
//	_ = q.Submit(ctx, device.Launch{Name: "scale", Size: len(xs), Kernel: func(lo, hi int) {
//		for i := lo; i < hi; i++ {
//			xs[i] *= 2
//		}
//	}})
//	if err := q.Wait(ctx); err != nil {
//		// errors.IsCode(err, errors.ErrCodeKernelFault) ...
//	}
//
// A kernel on an AcceleratorQueue must be safe to call concurrently for
// disjoint ranges.
package device
