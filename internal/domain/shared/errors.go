// Package shared contains common domain types, errors, and value objects
// that are used across all domain packages.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// Entity errors
	ErrNotFound      = errors.New("entity not found")
	ErrAlreadyExists = errors.New("entity already exists")

	// Validation errors
	ErrValidation      = errors.New("validation error")
	ErrInvalidInput    = errors.New("invalid input")
	ErrEmptyValue      = errors.New("value cannot be empty")
	ErrValueOutOfRange = errors.New("value out of range")
	ErrInvalidFormat   = errors.New("invalid format")

	// State errors
	ErrInvalidState = errors.New("invalid state")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "person", "finance", "lesson"
	Op      string // Operation that failed, e.g., "NewAmount", "Pay"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Value object constraint violations. The messages are user-facing: parsers
// surface them verbatim when rewrapping into parse errors.
var (
	ErrInvalidName = NewDomainError("person", "NewName", ErrInvalidFormat,
		"Names should only contain alphanumeric characters and spaces, and should not be blank")
	ErrInvalidPhone = NewDomainError("person", "NewPhone", ErrInvalidFormat,
		"Phone numbers should only contain digits, and should be at least 3 digits long")
	ErrInvalidEmail = NewDomainError("person", "NewEmail", ErrInvalidFormat,
		"Emails should be of the format local-part@domain")
	ErrInvalidAddress = NewDomainError("person", "NewAddress", ErrEmptyValue,
		"Addresses can take any values, and should not be blank")
	ErrInvalidTag = NewDomainError("person", "NewTag", ErrInvalidFormat,
		"Tag names should be alphanumeric")
	ErrInvalidAmount = NewDomainError("finance", "NewAmount", ErrValueOutOfRange,
		"Amount must be a positive number up to 2 decimal places, between 0 and 1,000,000.00")
	ErrInvalidLessonName = NewDomainError("lesson", "NewLessonName", ErrInvalidFormat,
		"Lesson names should only contain alphanumeric characters and spaces, and should not be blank")
	ErrInvalidWeekDay = NewDomainError("lesson", "NewWeekDay", ErrInvalidFormat,
		"Day should be Monday, Tuesday, Wednesday, Thursday, Friday, Saturday or Sunday")
	ErrInvalidClockTime = NewDomainError("lesson", "NewClockTime", ErrInvalidFormat,
		"Lesson time should be in 24-hour format (HH:MM)")
	ErrInvalidLocation = NewDomainError("lesson", "NewLocation", ErrInvalidFormat,
		"Locations should be alphanumeric")
	ErrInvalidAttendance = NewDomainError("lesson", "NewAttendance", ErrValueOutOfRange,
		"Attendance counters must be non-negative and attended lessons cannot exceed total lessons")
	ErrInvalidAttendanceStatus = NewDomainError("lesson", "NewAttendanceStatus", ErrInvalidFormat,
		"Attendance must be either 'present' or 'absent'")
	ErrInvalidPlanCadence = NewDomainError("finance", "NewPlanCadence", ErrInvalidFormat,
		"Tuition plan cadence must be either 'lesson' or 'month'")
)

// Person domain errors
var (
	ErrPersonNotFound = NewDomainError("person", "Find", ErrNotFound, "person not found")
	ErrDuplicatePerson = NewDomainError("person", "Add", ErrAlreadyExists,
		"this person already exists in the student list")
	ErrNoLessonAssigned = NewDomainError("person", "MarkAttendance", ErrInvalidState,
		"person has no lesson assigned")
	ErrNoOutstandingBalance = NewDomainError("finance", "Pay", ErrInvalidState,
		"person has no outstanding balance to pay against")
)

// IsNotFound checks if the error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrEmptyValue) ||
		errors.Is(err, ErrValueOutOfRange) ||
		errors.Is(err, ErrInvalidFormat)
}
