// Package errors provides the structured error type used across the module.
// Every failure reported by a queue or device carries an ErrorCode, an
// optional cause and retryable detection, so callers can branch on CodeOf
// instead of matching message text.
package errors
