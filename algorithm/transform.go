package algorithm

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/zipkit/device"
	"github.com/kbukum/zipkit/errors"
	"github.com/kbukum/zipkit/iterator"
	"github.com/kbukum/zipkit/logger"
	"github.com/kbukum/zipkit/observability"
	"github.com/kbukum/zipkit/tuple"
	"github.com/kbukum/zipkit/zip"
)

// Transform computes out[i] = fn(in[i]) for 0 <= i < n on q.
//
// The call returns once the kernel is submitted; use q.Wait to block until
// the output is written and to collect kernel failures. With
// WithDebugSynchronous it waits itself and returns those failures.
//
// On a parallel queue fn is called concurrently for different i and must not
// depend on the order of calls. out must not alias the positions of in that
// other indices read.
func Transform[I iterator.RandomAccess[I, T], O iterator.Output[O, U], T, U any](
	ctx context.Context, q device.Queue, in I, out O, n int, fn func(T) U, opts ...Option,
) error {
	o := buildOptions("transform", opts)
	if n < 0 {
		return errors.InvalidLaunch(o.name, fmt.Sprintf("negative count %d", n))
	}
	if n == 0 {
		return nil
	}

	ctx, span := observability.StartSpan(ctx, observability.SpanTransform, trace.WithAttributes(
		attribute.String(observability.AttrKernel, o.name),
		attribute.String(observability.AttrQueueID, q.ID()),
		attribute.Int(observability.AttrItems, n),
	))
	start := time.Now()

	err := q.Submit(ctx, device.Launch{
		Name: o.name,
		Size: n,
		Kernel: func(lo, hi int) {
			src, dst := in.Add(lo), out.Add(lo)
			for i := lo; i < hi; i++ {
				dst.Set(fn(src.Get()))
				src, dst = src.Add(1), dst.Add(1)
			}
		},
	})
	if err == nil && o.debug {
		err = q.Wait(ctx)
		log := o.log.WithContext(ctx)
		if err != nil {
			log.Error("kernel failed", logger.ErrorFields(o.name, err))
		} else {
			log.Info("kernel finished", logger.DurationFields(o.name, time.Since(start)))
		}
	}
	observability.EndSpan(span, err)
	return err
}

// TransformBinary computes out[i] = fn(in1[i], in2[i]) for 0 <= i < n on q.
// It behaves like Transform over the zip of in1 and in2.
func TransformBinary[I1 iterator.RandomAccess[I1, T1], I2 iterator.RandomAccess[I2, T2], O iterator.Output[O, U], T1, T2 comparable, U any](
	ctx context.Context, q device.Queue, in1 I1, in2 I2, out O, n int, fn func(T1, T2) U, opts ...Option,
) error {
	in := zip.Of2[I1, I2, T1, T2](in1, in2)
	return Transform(ctx, q, in, out, n, func(v tuple.T2[T1, T2]) U {
		return fn(v.V0, v.V1)
	}, append([]Option{WithName("transform_binary")}, opts...)...)
}

// TransformRange writes fn(v) for every v in [first, last) to out, in order,
// on the calling goroutine. It returns out advanced past the last write.
func TransformRange[I iterator.RandomAccess[I, T], O iterator.Output[O, U], T, U any](first, last I, out O, fn func(T) U) O {
	for ; first.Diff(last) < 0; first = first.Add(1) {
		out.Set(fn(first.Get()))
		out = out.Add(1)
	}
	return out
}
