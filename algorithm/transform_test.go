package algorithm

import (
	"bytes"
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/kbukum/zipkit/device"
	"github.com/kbukum/zipkit/errors"
	"github.com/kbukum/zipkit/iterator"
	"github.com/kbukum/zipkit/logger"
	"github.com/kbukum/zipkit/tuple"
	"github.com/kbukum/zipkit/zip"
)

func newDeviceQueue(t *testing.T) device.Queue {
	t.Helper()
	d, err := device.New(device.Config{ComputeUnits: 4, BlockSize: 64, ItemsPerThread: 4}, device.WithLogger(logger.Nop()))
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	if err := d.Start(ctx); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = d.Stop(ctx) })
	q, err := d.NewQueue()
	if err != nil {
		t.Fatal(err)
	}
	return q
}

func newHostQueue(t *testing.T) device.Queue {
	t.Helper()
	q := device.NewHostQueue(device.WithLogger(logger.Nop()))
	t.Cleanup(func() { _ = q.Close() })
	return q
}

func sumOfThree(v tuple.T3[int32, float64, uint8]) float64 {
	return float64(v.V0) + v.V1 + float64(v.V2)
}

func TestTransform_HostMatchesDevice(t *testing.T) {
	const n = 1024 * 16
	rng := rand.New(rand.NewPCG(1, 2))
	a := make([]int32, n)
	b := make([]float64, n)
	c := make([]uint8, n)
	for i := range n {
		a[i] = rng.Int32N(1 << 20)
		b[i] = rng.Float64() * 1000
		c[i] = uint8(rng.UintN(256))
	}
	in := zip.Of3(iterator.Begin(a), iterator.Begin(b), iterator.Begin(c))
	ctx := context.Background()

	hostOut := make([]float64, n)
	host := newHostQueue(t)
	if err := Transform(ctx, host, in, iterator.Begin(hostOut), n, sumOfThree); err != nil {
		t.Fatal(err)
	}
	if err := host.Wait(ctx); err != nil {
		t.Fatal(err)
	}

	devOut := make([]float64, n)
	dev := newDeviceQueue(t)
	if err := Transform(ctx, dev, in, iterator.Begin(devOut), n, sumOfThree); err != nil {
		t.Fatal(err)
	}
	if err := dev.Wait(ctx); err != nil {
		t.Fatal(err)
	}

	for i := range n {
		if hostOut[i] != devOut[i] {
			t.Fatalf("out[%d]: host %v, device %v", i, hostOut[i], devOut[i])
		}
		if want := float64(a[i]) + b[i] + float64(c[i]); hostOut[i] != want {
			t.Fatalf("out[%d] = %v, want %v", i, hostOut[i], want)
		}
	}
}

func TestTransform_Counts(t *testing.T) {
	ctx := context.Background()
	calls := 0
	fn := func(x int) int { calls++; return x }

	tests := []struct {
		name    string
		n       int
		wantErr errors.ErrorCode
	}{
		{"zero is a no-op", 0, ""},
		{"negative count", -1, errors.ErrCodeInvalidLaunch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := []int{9}
			err := Transform(ctx, newHostQueue(t), iterator.NewCounting(0), iterator.Begin(out), tt.n, fn)
			if errors.CodeOf(err) != tt.wantErr {
				t.Fatalf("Transform() error = %v, want code %q", err, tt.wantErr)
			}
			if calls != 0 || out[0] != 9 {
				t.Errorf("fn called %d times, out = %v", calls, out)
			}
		})
	}
}

func TestTransform_HostOrder(t *testing.T) {
	var order []int
	out := make([]int, 50)
	err := Transform(context.Background(), newHostQueue(t), iterator.NewCounting(0), iterator.Begin(out), len(out), func(i int) int {
		order = append(order, i)
		return i * i
	})
	if err != nil {
		t.Fatal(err)
	}
	for i := range out {
		if order[i] != i || out[i] != i*i {
			t.Fatalf("step %d: order %d, out %d", i, order[i], out[i])
		}
	}
}

func TestTransform_ZipOutput(t *testing.T) {
	const n = 1000
	xs := make([]int, n)
	sq := make([]int, n)
	out := zip.Of2(iterator.Begin(xs), iterator.Begin(sq))

	q := newDeviceQueue(t)
	ctx := context.Background()
	err := Transform(ctx, q, iterator.NewCounting(0), out, n, func(i int) tuple.T2[int, int] {
		return tuple.Of2(i, i*i)
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := q.Wait(ctx); err != nil {
		t.Fatal(err)
	}
	for i := range n {
		if xs[i] != i || sq[i] != i*i {
			t.Fatalf("index %d: got (%d, %d)", i, xs[i], sq[i])
		}
	}
}

func TestTransform_DebugSynchronous(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	log := logger.NewWithWriter(&logger.Config{Level: "info", Format: logger.FormatJSON}, "test", &buf)

	xs := make([]int, 300)
	q := newDeviceQueue(t)
	err := Transform(ctx, q, iterator.NewCounting(1), iterator.Begin(xs), len(xs), func(i int) int { return -i },
		WithDebugSynchronous(true), WithName("negate"), WithLogger(log))
	if err != nil {
		t.Fatal(err)
	}
	if xs[299] != -300 {
		t.Errorf("output not written on return: xs[299] = %d", xs[299])
	}
	if s := buf.String(); !strings.Contains(s, "kernel finished") || !strings.Contains(s, `"kernel":"negate"`) {
		t.Errorf("missing debug log, got %q", s)
	}

	buf.Reset()
	err = Transform(ctx, q, iterator.NewCounting(0), iterator.Begin(xs), len(xs), func(i int) int {
		if i == 7 {
			panic("bad element")
		}
		return i
	}, WithDebugSynchronous(true), WithLogger(log))
	if !errors.IsCode(err, errors.ErrCodeKernelFault) {
		t.Fatalf("expected KERNEL_FAULT, got %v", err)
	}
	if !strings.Contains(buf.String(), "kernel failed") {
		t.Errorf("missing failure log, got %q", buf.String())
	}
}

func TestTransform_SubmitErrorReturned(t *testing.T) {
	q := newHostQueue(t)
	_ = q.Close()
	err := Transform(context.Background(), q, iterator.NewCounting(0), iterator.NewDiscard[int](), 3, func(i int) int { return i })
	if !errors.IsCode(err, errors.ErrCodeQueueClosed) {
		t.Errorf("expected QUEUE_CLOSED, got %v", err)
	}
}

func TestTransformBinary(t *testing.T) {
	a := []int{1, 2, 3, 4}
	b := []float64{0.5, 0.25, 0.125, 0}
	out := make([]float64, len(a))

	q := newDeviceQueue(t)
	ctx := context.Background()
	err := TransformBinary(ctx, q, iterator.CBegin(a), iterator.CBegin(b), iterator.Begin(out), len(a),
		func(x int, y float64) float64 { return float64(x) * y })
	if err != nil {
		t.Fatal(err)
	}
	if err := q.Wait(ctx); err != nil {
		t.Fatal(err)
	}
	want := []float64{0.5, 0.5, 0.375, 0}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestTransformRange(t *testing.T) {
	xs := []int{3, 1, 4, 1, 5}
	out := make([]string, len(xs)+1)

	end := TransformRange(iterator.Begin(xs), iterator.End(xs), iterator.Begin(out), func(x int) string {
		return strings.Repeat("*", x)
	})
	if d := end.Diff(iterator.Begin(out)); d != len(xs) {
		t.Errorf("returned end at %d, want %d", d, len(xs))
	}
	if out[2] != "****" || out[5] != "" {
		t.Errorf("unexpected output %q", out)
	}

	empty := TransformRange(iterator.Begin(xs), iterator.Begin(xs), iterator.Begin(out), func(x int) string { return "x" })
	if empty.Diff(iterator.Begin(out)) != 0 {
		t.Error("empty range moved the output")
	}
}

func TestTransformRange_FloatCountingInput(t *testing.T) {
	first := iterator.NewCounting(-0.5)
	out := make([]float64, 4)

	end := TransformRange(first, first.Add(len(out)), iterator.Begin(out), func(x float64) float64 { return x * 2 })
	if d := end.Diff(iterator.Begin(out)); d != len(out) {
		t.Fatalf("processed %d elements, want %d", d, len(out))
	}
	want := []float64{-1, 1, 3, 5}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}
