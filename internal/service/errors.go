package service

import (
	"errors"
	"fmt"

	"github.com/article-mirror-api/internal/validation"
)

var (
	// ErrNotFound is returned when a requested resource does not exist,
	// or when the caller is not allowed to see that it exists.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when creating a resource that is
	// already present, e.g. a duplicate bookmark.
	ErrAlreadyExists = errors.New("already exists")

	// ErrSyncInProgress is returned when a sync run is requested while
	// a previous run is still in flight.
	ErrSyncInProgress = errors.New("sync already in progress")
)

// ValidationFailedError carries the field-level errors of a rejected payload.
type ValidationFailedError struct {
	Errors []validation.ValidationError
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("validation failed: %d field error(s)", len(e.Errors))
}
