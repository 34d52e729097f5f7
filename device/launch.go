package device

import (
	"context"
	"fmt"

	"github.com/kbukum/zipkit/errors"
)

// Kernel processes the elements with indices in [lo, hi).
type Kernel func(lo, hi int)

// Launch is one kernel invocation over Size elements.
type Launch struct {
	Name   string
	Size   int
	Kernel Kernel
}

// Queue accepts launches and runs them on an execution resource.
//
// Submit is asynchronous: it returns once the launch is accepted, and
// failures that happen while the kernel runs are reported by the next Wait.
// Submit itself only fails for launches that can never run.
type Queue interface {
	ID() string
	// Parallel reports whether kernels may run on several goroutines.
	Parallel() bool
	Submit(ctx context.Context, l Launch) error
	// Wait blocks until every launch submitted so far has finished and
	// returns the failures collected since the previous Wait.
	Wait(ctx context.Context) error
	Close() error
}

const defaultKernelName = "kernel"

func (l Launch) name() string {
	if l.Name == "" {
		return defaultKernelName
	}
	return l.Name
}

// check rejects launches that can never run. maxSize 0 means unlimited.
func (l Launch) check(maxSize int) error {
	switch {
	case l.Kernel == nil:
		return errors.InvalidLaunch(l.name(), "nil kernel")
	case l.Size < 0:
		return errors.InvalidLaunch(l.name(), fmt.Sprintf("negative size %d", l.Size))
	case maxSize > 0 && l.Size > maxSize:
		return errors.ResourceExhausted("launch size", l.Size, maxSize).WithDetail("kernel", l.name())
	}
	return nil
}

// runGuarded calls k over [lo, hi) and turns a panic into a KERNEL_FAULT.
func runGuarded(name string, k Kernel, lo, hi int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.KernelFault(name, r).WithDetails(map[string]any{"lo": lo, "hi": hi})
		}
	}()
	k(lo, hi)
	return nil
}
