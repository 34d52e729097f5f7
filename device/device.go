package device

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/kbukum/zipkit/component"
	"github.com/kbukum/zipkit/errors"
	"github.com/kbukum/zipkit/logger"
	"github.com/kbukum/zipkit/observability"
)

// Device is a pool of compute units that runs kernels in parallel blocks.
// Work reaches it through the AcceleratorQueues it creates.
type Device struct {
	cfg     Config
	info    Info
	units   *units
	log     *logger.Logger
	tracer  trace.Tracer
	metrics *observability.KernelMetrics

	running atomic.Bool // written under mu
	mu      sync.Mutex
	queues  map[string]*AcceleratorQueue
}

var (
	_ component.Component   = (*Device)(nil)
	_ component.Describable = (*Device)(nil)
)

// New creates a stopped device. cfg is defaulted and validated.
func New(cfg Config, opts ...Option) (*Device, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	return &Device{
		cfg:     cfg,
		info:    newInfo(cfg),
		units:   newUnits(cfg.ComputeUnits),
		log:     o.log.WithFields(logger.Fields(logger.FieldDevice, cfg.Name)),
		tracer:  o.tracer(),
		metrics: o.kernelMetrics(),
		queues:  make(map[string]*AcceleratorQueue),
	}, nil
}

// Name returns the device name.
func (d *Device) Name() string { return d.cfg.Name }

// Config returns the defaulted configuration.
func (d *Device) Config() Config { return d.cfg }

// Info describes the device.
func (d *Device) Info() Info { return d.info }

// Stats returns the work done so far.
func (d *Device) Stats() Stats { return d.units.snapshot() }

// Describe returns a one-line summary.
func (d *Device) Describe() string {
	return fmt.Sprintf("%s units=%d tile=%dx%d", d.info.Arch, d.cfg.ComputeUnits, d.cfg.BlockSize, d.cfg.ItemsPerThread)
}

// Start makes the device accept queues.
func (d *Device) Start(ctx context.Context) error {
	d.mu.Lock()
	started := d.running.Swap(true)
	d.mu.Unlock()
	if started {
		return nil
	}
	d.log.Info("device started", logger.Fields(
		"compute_units", d.cfg.ComputeUnits,
		"tile_size", d.cfg.TileSize(),
		"features", d.info.Features,
	))
	return nil
}

// Stop closes every open queue, letting submitted launches finish, and
// stops accepting new queues. It returns early if ctx ends first.
func (d *Device) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.running.Load() {
		d.mu.Unlock()
		return nil
	}
	d.running.Store(false)
	queues := make([]*AcceleratorQueue, 0, len(d.queues))
	for _, q := range d.queues {
		queues = append(queues, q)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		for _, q := range queues {
			_ = q.Close()
		}
		close(done)
	}()

	select {
	case <-done:
		d.log.Info("device stopped", logger.Fields("queues", len(queues)))
		return nil
	case <-ctx.Done():
		return errors.FromContext("device stop", ctx.Err())
	}
}

// Health reports whether the device is running, with its counters.
func (d *Device) Health(ctx context.Context) component.Health {
	s := d.Stats()
	h := component.Health{
		Name:   d.cfg.Name,
		Status: component.StatusHealthy,
		Details: map[string]any{
			"launches": s.Launches,
			"faults":   s.Faults,
			"in_use":   s.InUse,
			"capacity": d.units.capacity(),
		},
	}
	switch {
	case !d.running.Load():
		h.Status = component.StatusUnhealthy
		h.Message = "stopped"
	case s.Faults > 0:
		h.Status = component.StatusDegraded
		h.Message = fmt.Sprintf("%d kernel faults", s.Faults)
	}
	return h
}

// NewQueue creates an in-order queue on the device.
func (d *Device) NewQueue() (*AcceleratorQueue, error) {
	d.mu.Lock()
	if !d.running.Load() {
		d.mu.Unlock()
		return nil, errors.DeviceUnavailable(d.cfg.Name, "not started")
	}
	q := newAcceleratorQueue(d)
	d.queues[q.id] = q
	d.mu.Unlock()

	d.log.Debug("queue created", logger.Fields(logger.FieldQueueID, q.id))
	return q, nil
}

func (d *Device) forget(id string) {
	d.mu.Lock()
	delete(d.queues, id)
	d.mu.Unlock()
}

// execute tiles l into blocks and runs them on the device's units. It
// returns once every block has finished or the launch has failed.
func (d *Device) execute(ctx context.Context, queueID, launchID string, l Launch) error {
	name := l.name()
	tile := d.cfg.TileSize()
	blocks := (l.Size + tile - 1) / tile

	ctx, span := d.tracer.Start(ctx, observability.SpanLaunch, trace.WithAttributes(
		attribute.String(observability.AttrDevice, d.cfg.Name),
		attribute.String(observability.AttrQueueID, queueID),
		attribute.String(observability.AttrLaunchID, launchID),
		attribute.String(observability.AttrKernel, name),
		attribute.Int(observability.AttrItems, l.Size),
		attribute.Int(observability.AttrBlocks, blocks),
	))
	start := time.Now()
	d.units.stats.launches.Add(1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.cfg.ComputeUnits)
	launched := 0
	for ; launched < blocks && gctx.Err() == nil; launched++ {
		lo := launched * tile
		hi := min(lo+tile, l.Size)
		g.Go(func() error {
			if err := d.units.acquire(gctx); err != nil {
				return err
			}
			began := time.Now()
			err := runGuarded(name, l.Kernel, lo, hi)
			d.units.release(hi-lo, time.Since(began))
			return err
		})
	}
	err := g.Wait()
	if err == nil && launched < blocks {
		err = ctx.Err()
	}

	status := observability.StatusOK
	switch {
	case errors.IsCode(err, errors.ErrCodeKernelFault):
		status = observability.StatusFault
		d.units.stats.faults.Add(1)
	case err != nil:
		status = observability.StatusCanceled
		err = errors.FromContext("launch "+name, err)
	}

	elapsed := time.Since(start)
	d.metrics.RecordLaunch(ctx, d.cfg.Name, name, status, l.Size, elapsed)
	span.SetAttributes(attribute.String(observability.AttrStatus, status))
	observability.EndSpan(span, err)

	fields := logger.Fields(
		logger.FieldQueueID, queueID,
		logger.FieldLaunchID, launchID,
		logger.FieldKernel, name,
		logger.FieldItems, l.Size,
		logger.FieldBlocks, blocks,
		logger.FieldStatus, status,
		logger.FieldDuration, float64(elapsed.Microseconds())/1000,
	)
	if err != nil {
		d.log.WithError(err).Warn("launch failed", fields)
	} else {
		d.log.Debug("launch complete", fields)
	}
	return err
}
