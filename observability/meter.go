package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/zipkit/logger"
)

// InitMeter initializes the OpenTelemetry meter provider and installs it
// globally. The caller shuts it down on exit.
func InitMeter(ctx context.Context, info ServiceInfo, cfg Config) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(info)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var readerOpts []sdkmetric.PeriodicReaderOption
	if cfg.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(cfg.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		logger.FieldService, info.Name,
		"endpoint", cfg.Endpoint,
		"interval", cfg.Interval.String(),
	))
	return mp, nil
}

// Meter returns the module's meter from the global provider.
func Meter() metric.Meter {
	return otel.Meter(InstrumentationName)
}

// Launch statuses recorded on kernel metrics.
const (
	StatusOK       = "ok"
	StatusFault    = "fault"
	StatusCanceled = "canceled"
)

// KernelMetrics holds the instruments recorded by queues for every launch.
type KernelMetrics struct {
	launches metric.Int64Counter
	items    metric.Int64Counter
	duration metric.Float64Histogram
	inflight metric.Int64UpDownCounter
	faults   metric.Int64Counter
}

// NewKernelMetrics creates the kernel instruments on the given meter.
func NewKernelMetrics(meter metric.Meter) (*KernelMetrics, error) {
	launches, err := meter.Int64Counter("kernel.launches",
		metric.WithDescription("Total number of kernel launches"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating kernel.launches counter: %w", err)
	}

	items, err := meter.Int64Counter("kernel.items",
		metric.WithDescription("Total number of elements processed by kernels"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating kernel.items counter: %w", err)
	}

	duration, err := meter.Float64Histogram("kernel.duration",
		metric.WithDescription("Kernel execution time from start to completion"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating kernel.duration histogram: %w", err)
	}

	inflight, err := meter.Int64UpDownCounter("kernel.inflight",
		metric.WithDescription("Launches submitted but not yet complete"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating kernel.inflight counter: %w", err)
	}

	faults, err := meter.Int64Counter("kernel.faults",
		metric.WithDescription("Kernel launches that panicked"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating kernel.faults counter: %w", err)
	}

	return &KernelMetrics{
		launches: launches,
		items:    items,
		duration: duration,
		inflight: inflight,
		faults:   faults,
	}, nil
}

// RecordSubmit counts a launch as in flight.
func (m *KernelMetrics) RecordSubmit(ctx context.Context, device string) {
	m.inflight.Add(ctx, 1, metric.WithAttributes(attribute.String(AttrDevice, device)))
}

// RecordLaunch records a finished launch and takes it out of flight.
func (m *KernelMetrics) RecordLaunch(ctx context.Context, device, kernel, status string, items int, d time.Duration) {
	dev := attribute.String(AttrDevice, device)
	attrs := metric.WithAttributes(dev, attribute.String(AttrKernel, kernel), attribute.String(AttrStatus, status))

	m.inflight.Add(ctx, -1, metric.WithAttributes(dev))
	m.launches.Add(ctx, 1, attrs)
	m.items.Add(ctx, int64(items), attrs)
	m.duration.Record(ctx, d.Seconds(), attrs)
	if status == StatusFault {
		m.faults.Add(ctx, 1, metric.WithAttributes(dev, attribute.String(AttrKernel, kernel)))
	}
}
