package ppt

import (
	"errors"
	"fmt"
)

// Common errors returned by the client.
var (
	// ErrNotFound is returned when a lookup by id matches no card or set.
	ErrNotFound = errors.New("not found")

	// ErrRetryExhausted is returned when all retry attempts are exhausted.
	ErrRetryExhausted = errors.New("retry attempts exhausted")
)

// APIError represents a non-success response from the vendor API.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("vendor API error (status %d): %s", e.StatusCode, e.Message)
}

// Temporary reports whether the error is worth retrying. Rate limiting and
// server-side failures are temporary; other client errors are not.
func (e *APIError) Temporary() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}

// shouldRetry decides whether the batch/seed retry loop should try again.
// Network errors (no *APIError in the chain) are always retried.
func shouldRetry(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Temporary()
	}
	return true
}
