package device

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/zipkit/errors"
	"github.com/kbukum/zipkit/logger"
	"github.com/kbukum/zipkit/observability"
)

// HostDeviceName is the device name host queues report in spans and metrics.
const HostDeviceName = "host"

// HostQueue runs every launch on the calling goroutine during Submit, as a
// single pass over [0, n). Side effects therefore happen in index order,
// which makes it the reference path for checking parallel results.
type HostQueue struct {
	id      string
	log     *logger.Logger
	tracer  trace.Tracer
	metrics *observability.KernelMetrics

	mu     sync.Mutex
	errs   []error
	closed bool
}

var _ Queue = (*HostQueue)(nil)

// NewHostQueue creates a sequential host queue.
func NewHostQueue(opts ...Option) *HostQueue {
	o := buildOptions(opts)
	id := uuid.NewString()
	return &HostQueue{
		id:      id,
		log:     o.log.WithFields(logger.Fields(logger.FieldDevice, HostDeviceName, logger.FieldQueueID, id)),
		tracer:  o.tracer(),
		metrics: o.kernelMetrics(),
	}
}

func (q *HostQueue) ID() string { return q.id }

func (q *HostQueue) Parallel() bool { return false }

// Submit runs l to completion before returning. Kernel faults and
// cancellation are still reported through Wait, as on any other queue.
func (q *HostQueue) Submit(ctx context.Context, l Launch) error {
	if err := l.check(0); err != nil {
		return err
	}
	q.mu.Lock()
	closed := q.closed
	q.mu.Unlock()
	if closed {
		return errors.QueueClosed(q.id)
	}

	name := l.name()
	ctx, span := q.tracer.Start(ctx, observability.SpanLaunch, trace.WithAttributes(
		attribute.String(observability.AttrDevice, HostDeviceName),
		attribute.String(observability.AttrQueueID, q.id),
		attribute.String(observability.AttrKernel, name),
		attribute.Int(observability.AttrItems, l.Size),
	))
	q.metrics.RecordSubmit(ctx, HostDeviceName)
	start := time.Now()

	status := observability.StatusOK
	err := ctx.Err()
	if err != nil {
		status = observability.StatusCanceled
		err = errors.FromContext("launch "+name, err)
	} else if err = runGuarded(name, l.Kernel, 0, l.Size); err != nil {
		status = observability.StatusFault
	}

	elapsed := time.Since(start)
	q.metrics.RecordLaunch(ctx, HostDeviceName, name, status, l.Size, elapsed)
	span.SetAttributes(attribute.String(observability.AttrStatus, status))
	observability.EndSpan(span, err)

	if err != nil {
		q.log.WithError(err).Warn("launch failed", logger.Fields(logger.FieldKernel, name, logger.FieldStatus, status))
		q.mu.Lock()
		q.errs = append(q.errs, err)
		q.mu.Unlock()
	}
	return nil
}

// Wait returns the failures collected since the previous Wait. Launches are
// already complete when Submit returns, so it never blocks.
func (q *HostQueue) Wait(ctx context.Context) error {
	q.mu.Lock()
	errs := q.errs
	q.errs = nil
	q.mu.Unlock()
	return stderrors.Join(errs...)
}

// Close rejects further submissions.
func (q *HostQueue) Close() error {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	return nil
}
