package repository

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when an operation targets a review id that does
// not resolve to an existing document. It is a normal outcome, not a store
// failure.
var ErrNotFound = errors.New("review not found")

// ValidationError carries the complete list of payload violations. No store
// write happens when it is returned.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// StoreError wraps an unexpected document-store failure. It is never
// retried at this layer; the caller decides whether to retry.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store unavailable during %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
