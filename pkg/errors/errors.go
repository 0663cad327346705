// Package errors provides custom error types for the gaze system.
// These errors enable better error handling, programmatic error checking,
// and improved debugging throughout the library.
//
// Epoch construction is all-or-nothing: every error in this package is
// fatal to the construction that raised it, and no partial collection is
// ever returned alongside one.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the gaze system
var (
	// ErrInvalidInterval indicates a discrete event whose start time is not
	// strictly before its end time
	ErrInvalidInterval = errors.New("invalid interval")

	// ErrNoEpochs indicates that no event marker matched the admissible
	// codes within the bounds of the recording
	ErrNoEpochs = errors.New("no epochs")

	// ErrInconsistentLength indicates that per-epoch sample counts were not
	// uniform after truncation
	ErrInconsistentLength = errors.New("inconsistent epoch length")

	// ErrDuplicateIndex indicates a non-unique (epoch, relative time)
	// compound key in the assembled table
	ErrDuplicateIndex = errors.New("duplicate index")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")
)

// InvalidIntervalError reports a discrete event that violates the
// start < end precondition.
type InvalidIntervalError struct {
	Kind  string  // discrete-event kind (e.g. "saccades")
	Index int     // row index within the kind's table
	Start float64 // event start time in seconds
	End   float64 // event end time in seconds
}

// Error implements the error interface
func (e *InvalidIntervalError) Error() string {
	return fmt.Sprintf("%s[%d]: start time %g is not before end time %g",
		e.Kind, e.Index, e.Start, e.End)
}

// Is implements errors.Is support
func (e *InvalidIntervalError) Is(target error) bool {
	return target == ErrInvalidInterval
}

// NewInvalidIntervalError creates a new InvalidIntervalError
func NewInvalidIntervalError(kind string, index int, start, end float64) *InvalidIntervalError {
	return &InvalidIntervalError{Kind: kind, Index: index, Start: start, End: end}
}

// NoEpochsError reports that window extraction accepted zero markers.
type NoEpochsError struct {
	Codes []int // admissible event codes that were searched for
}

// Error implements the error interface
func (e *NoEpochsError) Error() string {
	if len(e.Codes) > 0 {
		codes := make([]string, len(e.Codes))
		for i, c := range e.Codes {
			codes[i] = fmt.Sprint(c)
		}
		return fmt.Sprintf("no epochs: no marker matched codes [%s] within recording bounds",
			strings.Join(codes, " "))
	}
	return "no epochs: no marker matched within recording bounds"
}

// Is implements errors.Is support
func (e *NoEpochsError) Is(target error) bool {
	return target == ErrNoEpochs
}

// NewNoEpochsError creates a new NoEpochsError
func NewNoEpochsError(codes []int) *NoEpochsError {
	return &NoEpochsError{Codes: codes}
}

// InconsistentLengthError reports an epoch whose post-truncation sample
// count deviates from the normalized count. It signals an internal bug in
// window truncation, not a data problem.
type InconsistentLengthError struct {
	Epoch int // epoch index with the deviant count
	Want  int // normalized per-epoch sample count
	Got   int // observed sample count
}

// Error implements the error interface
func (e *InconsistentLengthError) Error() string {
	return fmt.Sprintf("epoch %d has %d samples, want %d", e.Epoch, e.Got, e.Want)
}

// Is implements errors.Is support
func (e *InconsistentLengthError) Is(target error) bool {
	return target == ErrInconsistentLength
}

// NewInconsistentLengthError creates a new InconsistentLengthError
func NewInconsistentLengthError(epoch, want, got int) *InconsistentLengthError {
	return &InconsistentLengthError{Epoch: epoch, Want: want, Got: got}
}

// DuplicateIndexError reports a duplicate (epoch, relative time) compound
// key in the assembled table.
type DuplicateIndexError struct {
	Epoch int
	Time  float64 // relative time of the duplicated row
}

// Error implements the error interface
func (e *DuplicateIndexError) Error() string {
	return fmt.Sprintf("duplicate row key (epoch %d, time %g)", e.Epoch, e.Time)
}

// Is implements errors.Is support
func (e *DuplicateIndexError) Is(target error) bool {
	return target == ErrDuplicateIndex
}

// NewDuplicateIndexError creates a new DuplicateIndexError
func NewDuplicateIndexError(epoch int, time float64) *DuplicateIndexError {
	return &DuplicateIndexError{Epoch: epoch, Time: time}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// Helper functions for error checking

// IsInvalidInterval checks if an error is an invalid interval error
func IsInvalidInterval(err error) bool {
	return errors.Is(err, ErrInvalidInterval)
}

// IsNoEpochs checks if an error is a no epochs error
func IsNoEpochs(err error) bool {
	return errors.Is(err, ErrNoEpochs)
}

// IsInconsistentLength checks if an error is an inconsistent length error
func IsInconsistentLength(err error) bool {
	return errors.Is(err, ErrInconsistentLength)
}

// IsDuplicateIndex checks if an error is a duplicate index error
func IsDuplicateIndex(err error) bool {
	return errors.Is(err, ErrDuplicateIndex)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
