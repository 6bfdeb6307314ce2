package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound means the referenced record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden means the caller is not allowed to act on the record.
	ErrForbidden = errors.New("forbidden")
	// ErrAlreadyCancelled means the booking was cancelled before. It is
	// rejected rather than overwritten so cancelled_at keeps meaning the
	// first cancellation time.
	ErrAlreadyCancelled = errors.New("booking already cancelled")
)

// ValidationError carries every violated rule of a submission, not just the
// first, so the caller can report them all at once.
type ValidationError struct {
	Rules []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Rules, " | ")
}

// ConfigurationError signals an admin-configured price that cannot be used
// for a sale. It blocks persistence.
type ConfigurationError struct {
	Key   string
	Value float64
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configured price %s is invalid: %.2f", e.Key, e.Value)
}
