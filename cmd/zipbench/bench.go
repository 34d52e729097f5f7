package main

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/kbukum/zipkit/algorithm"
	"github.com/kbukum/zipkit/device"
	"github.com/kbukum/zipkit/errors"
	"github.com/kbukum/zipkit/iterator"
	"github.com/kbukum/zipkit/logger"
	"github.com/kbukum/zipkit/tuple"
	"github.com/kbukum/zipkit/zip"
)

// inputs are the three parallel arrays the benchmark zips.
type inputs struct {
	a []int32
	b []float64
	c []uint8
}

func generate(n int, seed uint64) inputs {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	in := inputs{a: make([]int32, n), b: make([]float64, n), c: make([]uint8, n)}
	for i := range n {
		in.a[i] = rng.Int32N(1 << 24)
		in.b[i] = rng.NormFloat64() * 1e3
		in.c[i] = uint8(rng.UintN(256))
	}
	return in
}

func sumOfThree(v tuple.T3[int32, float64, uint8]) float64 {
	return float64(v.V0) + v.V1 + float64(v.V2)
}

// Result is what one benchmark run measured.
type Result struct {
	Size       int
	Rounds     int
	Host       time.Duration
	Device     time.Duration // mean over rounds
	Mismatches int
}

// Speedup is host time over device time.
func (r Result) Speedup() float64 {
	if r.Device == 0 {
		return 0
	}
	return r.Host.Seconds() / r.Device.Seconds()
}

// runBench applies the sum-of-three transform through a zip on host and on
// dev, and compares the outputs.
func runBench(ctx context.Context, cfg RunConfig, host device.Queue, dev device.Queue, log *logger.Logger) (Result, error) {
	res := Result{Size: cfg.Size, Rounds: cfg.Rounds}
	in := generate(cfg.Size, cfg.Seed)
	first := zip.Of3(iterator.CBegin(in.a), iterator.CBegin(in.b), iterator.CBegin(in.c))

	opts := []algorithm.Option{algorithm.WithName("sum_of_three"), algorithm.WithDebugSynchronous(cfg.Synchronous)}

	want := make([]float64, cfg.Size)
	start := time.Now()
	if err := algorithm.Transform(ctx, host, first, iterator.Begin(want), cfg.Size, sumOfThree, opts...); err != nil {
		return res, err
	}
	if err := host.Wait(ctx); err != nil {
		return res, err
	}
	res.Host = time.Since(start)

	got := make([]float64, cfg.Size)
	var total time.Duration
	for round := range cfg.Rounds {
		clear(got)
		start := time.Now()
		if err := algorithm.Transform(ctx, dev, first, iterator.Begin(got), cfg.Size, sumOfThree, opts...); err != nil {
			return res, err
		}
		if err := dev.Wait(ctx); err != nil {
			return res, err
		}
		elapsed := time.Since(start)
		total += elapsed
		log.Debug("round complete", logger.Fields("round", round, logger.FieldDuration, float64(elapsed.Microseconds())/1000))
	}
	if cfg.Rounds > 0 {
		res.Device = total / time.Duration(cfg.Rounds)
	}

	res.Mismatches = compare(want, got, cfg.Tolerance)
	if res.Mismatches > 0 && cfg.Rounds > 0 {
		return res, errors.New(errors.ErrCodeInternal, fmt.Sprintf("%d of %d device results differ from host", res.Mismatches, cfg.Size)).
			WithDetail("tolerance", cfg.Tolerance)
	}
	return res, nil
}

// compare counts the positions where got differs from want by more than tol
// relative to want.
func compare(want, got []float64, tol float64) int {
	bad := 0
	for i := range want {
		diff := math.Abs(want[i] - got[i])
		if diff > tol*math.Max(1, math.Abs(want[i])) {
			bad++
		}
	}
	return bad
}
