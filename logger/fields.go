package logger

import (
	"time"
)

// Standard field key constants for structured logging.
const (
	FieldService   = "service"
	FieldComponent = "component"
	FieldTraceID   = "trace_id"
	FieldSpanID    = "span_id"
	FieldDevice    = "device"
	FieldQueueID   = "queue_id"
	FieldLaunchID  = "launch_id"
	FieldKernel    = "kernel"
	FieldItems     = "items"
	FieldBlocks    = "blocks"
	FieldStatus    = "status"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
)

// Fields builds a map from alternating key-value pairs. Non-string keys and
// a trailing key without a value are dropped.
//
//	log.Info("launched", logger.Fields(logger.FieldKernel, "sum3", logger.FieldItems, n))
func Fields(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for a kernel that failed.
func ErrorFields(kernel string, err error) map[string]any {
	return map[string]any{
		FieldKernel: kernel,
		FieldError:  err.Error(),
	}
}

// DurationFields creates fields for a timed kernel.
func DurationFields(kernel string, d time.Duration) map[string]any {
	return map[string]any{
		FieldKernel:   kernel,
		FieldDuration: float64(d.Microseconds()) / 1000,
	}
}
