package device

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sys/cpu"
)

// units limits how many blocks run at once on a device. It is shared by all
// queues of the device, so two queues never oversubscribe it.
type units struct {
	sem   chan struct{}
	stats unitStats
}

// unitStats counters are written from every running block; padding keeps
// each on its own cache line.
type unitStats struct {
	_        cpu.CacheLinePad
	launches atomic.Int64
	_        cpu.CacheLinePad
	blocks   atomic.Int64
	_        cpu.CacheLinePad
	items    atomic.Int64
	_        cpu.CacheLinePad
	busy     atomic.Int64
	_        cpu.CacheLinePad
	faults   atomic.Int64
	_        cpu.CacheLinePad
}

func newUnits(n int) *units {
	if n <= 0 {
		n = 1
	}
	return &units{sem: make(chan struct{}, n)}
}

// acquire blocks until a unit is free or ctx is done.
func (u *units) acquire(ctx context.Context) error {
	select {
	case u.sem <- struct{}{}:
		return nil
	default:
	}

	select {
	case u.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// release frees a unit and books the block that ran on it.
func (u *units) release(items int, busy time.Duration) {
	u.stats.blocks.Add(1)
	u.stats.items.Add(int64(items))
	u.stats.busy.Add(int64(busy))
	<-u.sem
}

// inUse returns the number of units currently running a block.
func (u *units) inUse() int { return len(u.sem) }

func (u *units) capacity() int { return cap(u.sem) }

// Stats is a snapshot of the work a device has done since it was created.
type Stats struct {
	Launches int64         `json:"launches"`
	Blocks   int64         `json:"blocks"`
	Items    int64         `json:"items"`
	Faults   int64         `json:"faults"`
	Busy     time.Duration `json:"busy"`
	InUse    int           `json:"in_use"`
}

func (u *units) snapshot() Stats {
	return Stats{
		Launches: u.stats.launches.Load(),
		Blocks:   u.stats.blocks.Load(),
		Items:    u.stats.items.Load(),
		Faults:   u.stats.faults.Load(),
		Busy:     time.Duration(u.stats.busy.Load()),
		InUse:    u.inUse(),
	}
}
