package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Execution errors
const (
	// ErrCodeKernelFault indicates a kernel panicked while running on a queue.
	ErrCodeKernelFault ErrorCode = "KERNEL_FAULT"
	// ErrCodeInvalidLaunch indicates a launch was rejected before it ran.
	ErrCodeInvalidLaunch ErrorCode = "INVALID_LAUNCH"
	// ErrCodeQueueClosed indicates work was submitted to a closed queue.
	ErrCodeQueueClosed ErrorCode = "QUEUE_CLOSED"
)

// Capacity/Availability errors (retryable)
const (
	// ErrCodeDeviceUnavailable indicates the device is not started or is stopping.
	ErrCodeDeviceUnavailable ErrorCode = "DEVICE_UNAVAILABLE"
	// ErrCodeResourceExhausted indicates a launch exceeds the device limits.
	ErrCodeResourceExhausted ErrorCode = "RESOURCE_EXHAUSTED"
	// ErrCodeTimeout indicates a wait ran past its deadline.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
)

// Caller errors
const (
	// ErrCodeCanceled indicates the caller canceled the operation.
	ErrCodeCanceled ErrorCode = "CANCELED"
	// ErrCodeInvalidConfig indicates a configuration failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeDeviceUnavailable: true,
	ErrCodeResourceExhausted: true,
	ErrCodeTimeout:           true,
	ErrCodeKernelFault:       false,
	ErrCodeInternal:          false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
