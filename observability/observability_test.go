package observability

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/kbukum/zipkit/errors"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected Endpoint 'localhost:4318', got %s", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected SampleRate 1.0, got %f", cfg.SampleRate)
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected Interval 15s, got %v", cfg.Interval)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"disabled empty", Config{}, false},
		{"enabled", Config{Enabled: true, Endpoint: "otel:4318", SampleRate: 0.5}, false},
		{"enabled without endpoint", Config{Enabled: true}, true},
		{"sample rate too high", Config{SampleRate: 1.5}, true},
		{"negative interval", Config{Interval: -time.Second}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.IsCode(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("expected INVALID_CONFIG, got %v", err)
			}
		})
	}
}

func TestSampler(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{1.0, "AlwaysOnSampler"},
		{2.0, "AlwaysOnSampler"},
		{0, "AlwaysOffSampler"},
		{-1, "AlwaysOffSampler"},
	}
	for _, tt := range tests {
		if got := sampler(tt.rate).Description(); got != tt.want {
			t.Errorf("sampler(%v) = %s, want %s", tt.rate, got, tt.want)
		}
	}
	if got := sampler(0.25).Description(); got == "AlwaysOnSampler" || got == "AlwaysOffSampler" {
		t.Errorf("expected ratio sampler, got %s", got)
	}
}

func TestNewResource(t *testing.T) {
	res, err := newResource(ServiceInfo{Name: "zipbench", Version: "1.2.3", Environment: "staging"})
	if err != nil {
		t.Fatalf("newResource: %v", err)
	}
	want := map[attribute.Key]string{
		AttrServiceName:          "zipbench",
		"service.version":        "1.2.3",
		"deployment.environment": "staging",
	}
	for k, v := range want {
		got, ok := res.Set().Value(k)
		if !ok || got.AsString() != v {
			t.Errorf("resource %s = %v, want %s", k, got.AsString(), v)
		}
	}
}

func TestEndSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := tp.Tracer(InstrumentationName)

	_, ok := tracer.Start(context.Background(), SpanLaunch)
	EndSpan(ok, nil)
	_, failed := tracer.Start(context.Background(), SpanWait)
	EndSpan(failed, fmt.Errorf("boom"))

	spans := recorder.Ended()
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	if spans[0].Status().Code != codes.Ok {
		t.Errorf("expected Ok status, got %v", spans[0].Status())
	}
	if spans[1].Status().Code != codes.Error || spans[1].Status().Description != "boom" {
		t.Errorf("expected Error status, got %v", spans[1].Status())
	}
	if len(spans[1].Events()) != 1 {
		t.Errorf("expected recorded error event, got %d events", len(spans[1].Events()))
	}
}

func TestKernelMetrics_Noop(t *testing.T) {
	m, err := NewKernelMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error creating metrics: %v", err)
	}
	ctx := context.Background()
	m.RecordSubmit(ctx, "cpu0")
	m.RecordLaunch(ctx, "cpu0", "sum3", StatusOK, 10, time.Millisecond)
}

func TestKernelMetrics_Record(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	m, err := NewKernelMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("NewKernelMetrics: %v", err)
	}

	ctx := context.Background()
	m.RecordSubmit(ctx, "cpu0")
	m.RecordSubmit(ctx, "cpu0")
	m.RecordLaunch(ctx, "cpu0", "sum3", StatusOK, 100, 2*time.Millisecond)
	m.RecordLaunch(ctx, "cpu0", "sum3", StatusFault, 50, time.Millisecond)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}
	sums := map[string]int64{}
	var histCount uint64
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			switch data := md.Data.(type) {
			case metricdata.Sum[int64]:
				for _, dp := range data.DataPoints {
					sums[md.Name] += dp.Value
				}
			case metricdata.Histogram[float64]:
				for _, dp := range data.DataPoints {
					histCount += dp.Count
				}
			}
		}
	}

	want := map[string]int64{
		"kernel.launches": 2,
		"kernel.items":    150,
		"kernel.inflight": 0,
		"kernel.faults":   1,
	}
	for name, v := range want {
		if sums[name] != v {
			t.Errorf("%s = %d, want %d", name, sums[name], v)
		}
	}
	if histCount != 2 {
		t.Errorf("kernel.duration count = %d, want 2", histCount)
	}
}

func TestSetup_Disabled(t *testing.T) {
	p, err := Setup(context.Background(), ServiceInfo{Name: "zipbench"}, Config{})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if p.Tracer != nil || p.Meter != nil {
		t.Error("disabled setup must not create providers")
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}

func TestSetup_Enabled(t *testing.T) {
	cfg := Config{Enabled: true, Insecure: true}
	cfg.ApplyDefaults()

	p, err := Setup(context.Background(), ServiceInfo{Name: "zipbench"}, cfg)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if p.Tracer == nil || p.Meter == nil {
		t.Fatal("expected both providers")
	}
	// No collector is listening; only check that shutdown returns.
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_ = p.Shutdown(ctx)
}
