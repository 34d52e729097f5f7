package device

import (
	"context"
	stderrors "errors"
	"sync"

	"github.com/google/uuid"

	"github.com/kbukum/zipkit/errors"
	"github.com/kbukum/zipkit/logger"
	"github.com/kbukum/zipkit/observability"
)

// AcceleratorQueue is an in-order queue on a Device. Launches run one after
// another in submission order; the blocks of each launch run in parallel.
type AcceleratorQueue struct {
	id  string
	dev *Device
	log *logger.Logger

	mu      sync.Mutex
	tail    chan struct{} // closed when the last submitted launch has finished
	errs    []error
	closed  bool
	pending sync.WaitGroup
}

var _ Queue = (*AcceleratorQueue)(nil)

func newAcceleratorQueue(d *Device) *AcceleratorQueue {
	id := uuid.NewString()
	return &AcceleratorQueue{
		id:  id,
		dev: d,
		log: d.log.WithFields(logger.Fields(logger.FieldQueueID, id)),
	}
}

func (q *AcceleratorQueue) ID() string { return q.id }

func (q *AcceleratorQueue) Parallel() bool { return true }

// Device returns the device the queue runs on.
func (q *AcceleratorQueue) Device() *Device { return q.dev }

// Submit enqueues l behind every launch already on the queue. The launch
// observes ctx: if it is done by the time the launch would start or while
// blocks are pending, the launch is reported as CANCELED by Wait.
func (q *AcceleratorQueue) Submit(ctx context.Context, l Launch) error {
	if err := l.check(q.dev.cfg.MaxLaunchSize); err != nil {
		return err
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return errors.QueueClosed(q.id)
	}
	prev := q.tail
	done := make(chan struct{})
	q.tail = done
	q.pending.Add(1)
	q.mu.Unlock()

	q.dev.metrics.RecordSubmit(ctx, q.dev.cfg.Name)
	go q.run(ctx, prev, done, uuid.NewString(), l)
	return nil
}

func (q *AcceleratorQueue) run(ctx context.Context, prev, done chan struct{}, launchID string, l Launch) {
	defer q.pending.Done()
	defer close(done)

	if prev != nil {
		<-prev
	}

	var err error
	if cerr := ctx.Err(); cerr != nil {
		err = errors.FromContext("launch "+l.name(), cerr)
		q.dev.metrics.RecordLaunch(ctx, q.dev.cfg.Name, l.name(), observability.StatusCanceled, l.Size, 0)
	} else {
		err = q.dev.execute(ctx, q.id, launchID, l)
	}
	if err != nil {
		q.mu.Lock()
		q.errs = append(q.errs, err)
		q.mu.Unlock()
	}
}

// Wait blocks until every launch submitted before the call has finished.
// If ctx ends first it returns TIMEOUT or CANCELED and keeps the collected
// failures for the next Wait.
func (q *AcceleratorQueue) Wait(ctx context.Context) error {
	q.mu.Lock()
	tail := q.tail
	q.mu.Unlock()

	if tail != nil {
		select {
		case <-tail:
		case <-ctx.Done():
			return errors.FromContext("queue wait", ctx.Err())
		}
	}

	q.mu.Lock()
	errs := q.errs
	q.errs = nil
	q.mu.Unlock()
	return stderrors.Join(errs...)
}

// Close rejects further submissions and waits for submitted launches to
// finish. Failures not yet collected by Wait are logged and dropped.
func (q *AcceleratorQueue) Close() error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	q.mu.Unlock()

	q.pending.Wait()
	q.dev.forget(q.id)

	q.mu.Lock()
	dropped := len(q.errs)
	q.errs = nil
	q.mu.Unlock()
	if dropped > 0 {
		q.log.Warn("queue closed with uncollected failures", logger.Fields("failures", dropped))
	}
	return nil
}
