package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown source type or store scheme.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrNoMatchingSource indicates no registered dataset source type
	// recognises the raw reference. This is the terminal "tried every
	// entry" outcome of resolution, not a per-entry failure.
	ErrNoMatchingSource = errors.New("no matching dataset source")

	// ErrAuthRequired indicates the store requires a token but none is configured.
	ErrAuthRequired = errors.New("authentication required")
)

// InvalidParameterError is a structured, user-facing error for malformed
// persisted records. It carries the dataset source type whose record could
// not be read so callers can report which representation is corrupt.
type InvalidParameterError struct {
	// TypeName is the dataset source type the record belongs to.
	TypeName string

	// Message describes what was wrong with the record.
	Message string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter: failed to parse %s: %s", e.TypeName, e.Message)
}

// NewMissingKeyError builds an InvalidParameterError for a serialized
// dataset source missing a required key.
func NewMissingKeyError(typeName, key string) *InvalidParameterError {
	return &InvalidParameterError{
		TypeName: typeName,
		Message:  fmt.Sprintf("missing expected key: %q", key),
	}
}

// IsInvalidParameter checks if the error is a structured InvalidParameterError.
func IsInvalidParameter(err error) bool {
	var ipErr *InvalidParameterError
	return errors.As(err, &ipErr)
}
