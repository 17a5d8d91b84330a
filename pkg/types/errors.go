package types

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/birthdays/pkg/dates"
)

// Error kinds. Callers classify failures with errors.Is against these.
var (
	// ErrValidation marks bad input: malformed dates, blank names, or
	// out-of-range search filters. Never retried.
	ErrValidation = errors.New("validation error")

	// ErrPersistence marks any failure opening, migrating, reading from or
	// writing to the storage engine. Never retried.
	ErrPersistence = errors.New("persistence error")
)

// Validation errors. Each one matches ErrValidation under errors.Is.
var (
	ErrInvalidName  = fmt.Errorf("%w: name must not be empty", ErrValidation)
	ErrInvalidID    = fmt.Errorf("%w: id must be a positive integer", ErrValidation)
	ErrInvalidMonth = fmt.Errorf("%w: month must be between 1 and 12", ErrValidation)
	ErrInvalidDay   = fmt.Errorf("%w: day must be between 1 and 31", ErrValidation)
	ErrInvalidDate  = fmt.Errorf("%w: %w", ErrValidation, dates.ErrInvalidDate)
)

// Persistf wraps err as a persistence failure with a short description of
// the operation that failed. Returns nil when err is nil.
func Persistf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrPersistence, fmt.Sprintf(format, args...), err)
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)
