package errors

import (
	"context"
	stderrors "errors"
	"fmt"
)

// AppError is the unified error type for queue, device and configuration failures.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any, len(details))
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// --- Common Error Constructors ---

// KernelFault creates a new AppError for a kernel that panicked. The panic
// value is kept as the cause.
func KernelFault(kernel string, recovered any) *AppError {
	cause, ok := recovered.(error)
	if !ok {
		cause = fmt.Errorf("%v", recovered)
	}
	return &AppError{
		Code: ErrCodeKernelFault, Message: fmt.Sprintf("kernel %q faulted", kernel),
		Details: map[string]any{"kernel": kernel}, Cause: cause,
	}
}

// InvalidLaunch creates a new AppError for a launch rejected at submission.
func InvalidLaunch(kernel, reason string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidLaunch, Message: fmt.Sprintf("invalid launch of %q: %s", kernel, reason),
		Details: map[string]any{"kernel": kernel},
	}
}

// QueueClosed creates a new AppError for a submission to a closed queue.
func QueueClosed(queueID string) *AppError {
	return &AppError{
		Code: ErrCodeQueueClosed, Message: "queue is closed",
		Details: map[string]any{"queue_id": queueID},
	}
}

// DeviceUnavailable creates a new AppError for a device that cannot accept work.
func DeviceUnavailable(device, reason string) *AppError {
	return &AppError{
		Code: ErrCodeDeviceUnavailable, Message: fmt.Sprintf("device %s is unavailable: %s", device, reason),
		Retryable: true, Details: map[string]any{"device": device},
	}
}

// ResourceExhausted creates a new AppError for a launch exceeding a device limit.
func ResourceExhausted(resource string, requested, limit int) *AppError {
	return &AppError{
		Code: ErrCodeResourceExhausted, Message: fmt.Sprintf("%s: requested %d, limit %d", resource, requested, limit),
		Retryable: true,
		Details:   map[string]any{"resource": resource, "requested": requested, "limit": limit},
	}
}

// Timeout creates a new AppError for a wait that ran past its deadline.
func Timeout(operation string) *AppError {
	return &AppError{
		Code: ErrCodeTimeout, Message: fmt.Sprintf("%s timed out", operation),
		Retryable: true, Details: map[string]any{"operation": operation},
	}
}

// Canceled creates a new AppError for an operation canceled by the caller.
func Canceled(operation string) *AppError {
	return &AppError{
		Code: ErrCodeCanceled, Message: fmt.Sprintf("%s was canceled", operation),
		Details: map[string]any{"operation": operation},
	}
}

// InvalidConfig creates a new AppError for a configuration that failed validation.
func InvalidConfig(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidConfig, Message: message}
}

// Internal creates a new AppError for an unexpected internal failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "an unexpected error occurred", Cause: cause,
	}
}

// FromContext maps a context error to TIMEOUT or CANCELED. Other errors,
// including nil, are returned unchanged.
func FromContext(operation string, err error) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, context.DeadlineExceeded):
		return Timeout(operation).WithCause(err)
	case stderrors.Is(err, context.Canceled):
		return Canceled(operation).WithCause(err)
	default:
		return err
	}
}
