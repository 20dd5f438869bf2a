package domain

import (
	"errors"
	"fmt"
)

// ErrProductNotFound is returned when a product lookup matches no row.
var ErrProductNotFound = errors.New("product not found")

// ValidationError reports input that failed normalization before any write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// UnknownSupplierError reports a supplier reference that names no existing
// supplier. It is raised before the write half of an operation begins, so
// no partial state results.
type UnknownSupplierError struct {
	ID int64
}

func (e *UnknownSupplierError) Error() string {
	return fmt.Sprintf("supplier ID %d does not exist", e.ID)
}

// FixtureError wraps a failure to read or apply a fixture batch. It is
// non-fatal from the system's perspective: the shell reports it and the
// session continues.
type FixtureError struct {
	Path string
	Err  error
}

func (e *FixtureError) Error() string {
	return fmt.Sprintf("fixture %s: %v", e.Path, e.Err)
}

func (e *FixtureError) Unwrap() error {
	return e.Err
}
