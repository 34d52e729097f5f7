package algorithm

import (
	"github.com/kbukum/zipkit/logger"
)

// Option configures a single algorithm call.
type Option func(*options)

type options struct {
	name  string
	debug bool
	log   *logger.Logger
}

// WithName sets the kernel name used in logs, spans and errors.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithDebugSynchronous makes the call wait for the kernel to finish and log
// how long it took. Failures are then returned by the call itself.
func WithDebugSynchronous(on bool) Option {
	return func(o *options) { o.debug = on }
}

// WithLogger sets the logger for debug output.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

func buildOptions(defaultName string, opts []Option) options {
	o := options{name: defaultName}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.Get("algorithm")
	}
	return o
}
