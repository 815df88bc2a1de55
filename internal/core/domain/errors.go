package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Caller-contract errors.

	// ErrMissingSnapshot indicates a snapshot was absent or captured at the wrong stage.
	// Report generation should not have been requested yet.
	ErrMissingSnapshot = errors.New("missing snapshot")

	// ErrMissingMetadata indicates required job metadata was not supplied.
	ErrMissingMetadata = errors.New("missing job metadata")

	// ErrInvalidSignature indicates a signature image could not be decoded.
	ErrInvalidSignature = errors.New("invalid signature image")

	// Snapshot invariant errors.

	// ErrOutOfRange indicates a numeric reading outside its permitted range.
	ErrOutOfRange = errors.New("value out of range")

	// ErrUnknownValue indicates an enum field holds an unrecognised value.
	ErrUnknownValue = errors.New("unknown value")

	// ErrDuplicateID indicates a damage marker id is reused within a snapshot.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrWheelChecks indicates the snapshot does not hold exactly one check per wheel.
	ErrWheelChecks = errors.New("wheel checks incomplete")

	// ErrMissingReason indicates reasonIfMissing disagrees with the document status.
	ErrMissingReason = errors.New("reason if missing inconsistent with status")
)

// MissingSnapshotError reports which stage was absent or mismatched.
type MissingSnapshotError struct {
	// Expected is the stage the caller should have supplied.
	Expected Stage

	// Got is the stage actually found. Empty when the snapshot was nil.
	Got Stage
}

func (e *MissingSnapshotError) Error() string {
	if e.Got == "" {
		return fmt.Sprintf("%s: %s snapshot not supplied", ErrMissingSnapshot, e.Expected)
	}
	return fmt.Sprintf("%s: expected %s snapshot, got %s", ErrMissingSnapshot, e.Expected, e.Got)
}

// Unwrap lets errors.Is match ErrMissingSnapshot.
func (e *MissingSnapshotError) Unwrap() error { return ErrMissingSnapshot }

// ValidationError wraps a sentinel with the offending field.
type ValidationError struct {
	Field   string
	Value   string
	Wrapped error
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("validation: %s: %s", e.Wrapped, e.Field)
	}
	return fmt.Sprintf("validation: %s: %s (value=%q)", e.Wrapped, e.Field, e.Value)
}

func (e *ValidationError) Unwrap() error { return e.Wrapped }

// NewValidationError creates a ValidationError.
func NewValidationError(field, value string, wrapped error) *ValidationError {
	return &ValidationError{Field: field, Value: value, Wrapped: wrapped}
}
