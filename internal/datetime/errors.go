package datetime

import (
	"errors"
	"fmt"
)

// ValidationErrorCode categorizes invariant violations.
type ValidationErrorCode string

const (
	// ErrCodeInvalidMonth indicates a month outside 1..12.
	ErrCodeInvalidMonth ValidationErrorCode = "INVALID_MONTH"

	// ErrCodeInvalidDay indicates a day outside 1..month length.
	ErrCodeInvalidDay ValidationErrorCode = "INVALID_DAY"

	// ErrCodeInvalidHour indicates an hour outside 0..23 (24-hour form)
	// or 1..12 (12-hour form).
	ErrCodeInvalidHour ValidationErrorCode = "INVALID_HOUR"

	// ErrCodeInvalidMinute indicates a minute outside 0..59.
	ErrCodeInvalidMinute ValidationErrorCode = "INVALID_MINUTE"

	// ErrCodeInvalidPeriod indicates an unknown ClockPeriod value.
	ErrCodeInvalidPeriod ValidationErrorCode = "INVALID_PERIOD"
)

// ValidationError reports the first invariant a value violates.
type ValidationError struct {
	// Code identifies the violated invariant.
	Code ValidationErrorCode

	// Field names the offending field ("month", "day", "hour", ...).
	Field string

	// Value is the offending value.
	Value int

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (%s=%d)", e.Code, e.Message, e.Field, e.Value)
}

// IsValidationError returns true if err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// HasCode returns true if err is or wraps a *ValidationError with the given code.
func HasCode(err error, code ValidationErrorCode) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Code == code
	}
	return false
}

func newValidationError(code ValidationErrorCode, field string, value int, format string, args ...any) *ValidationError {
	return &ValidationError{
		Code:    code,
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf(format, args...),
	}
}
