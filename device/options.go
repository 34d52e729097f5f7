package device

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/zipkit/logger"
	"github.com/kbukum/zipkit/observability"
)

// Option configures a Device or a HostQueue.
type Option func(*options)

type options struct {
	log *logger.Logger
	tp  trace.TracerProvider
	mp  metric.MeterProvider
}

// WithLogger sets the logger. Defaults to the "device" component logger.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithTracerProvider sets the provider launch spans are recorded on.
// Defaults to the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tp = tp }
}

// WithMeterProvider sets the provider kernel metrics are recorded on.
// Defaults to the global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) { o.mp = mp }
}

func buildOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.Get("device")
	}
	if o.tp == nil {
		o.tp = otel.GetTracerProvider()
	}
	if o.mp == nil {
		o.mp = otel.GetMeterProvider()
	}
	return o
}

func (o options) tracer() trace.Tracer {
	return o.tp.Tracer(observability.InstrumentationName)
}

// kernelMetrics falls back to no-op instruments if the provider refuses them.
func (o options) kernelMetrics() *observability.KernelMetrics {
	m, err := observability.NewKernelMetrics(o.mp.Meter(observability.InstrumentationName))
	if err == nil {
		return m
	}
	o.log.Warn("kernel metrics unavailable", logger.Fields(logger.FieldError, err.Error()))
	m, _ = observability.NewKernelMetrics(noop.NewMeterProvider().Meter(observability.InstrumentationName))
	return m
}
