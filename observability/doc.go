// Package observability wires OpenTelemetry tracing and metrics for queues
// and kernels.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, info, cfg)
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanLaunch)
//	defer observability.EndSpan(span, err)
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, info, cfg)
//	defer mp.Shutdown(ctx)
//
//	km, err := observability.NewKernelMetrics(observability.Meter())
//	km.RecordLaunch(ctx, "cpu0", "sum3", observability.StatusOK, n, d)
//
// Setup does both from a Config and returns a single shutdown.
package observability
