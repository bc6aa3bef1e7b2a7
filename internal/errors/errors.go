// Package errors defines the failure taxonomy for the preparation pipeline.
//
// Schema, bounds, date-parse, and storage failures are fatal: the pipeline
// aborts and no output is written. Numeric coercion failures are not errors
// at all; they are absorbed per cell into the missing marker (see
// domain.ParseNullInt).
package errors

import (
	"errors"
	"fmt"
)

// ErrorType classifies an application error.
type ErrorType string

const (
	ErrTypeSchema     ErrorType = "SCHEMA"
	ErrTypeBounds     ErrorType = "BOUNDS"
	ErrTypeParsing    ErrorType = "PARSING"
	ErrTypeStorage    ErrorType = "STORAGE"
	ErrTypeConfig     ErrorType = "CONFIG"
	ErrTypeValidation ErrorType = "VALIDATION"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// IsType reports whether err is (or wraps) an AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// Helper constructors for the pipeline's failure classes

// NewSchemaError reports an expected column missing from an input table.
func NewSchemaError(column string) *AppError {
	return NewAppError(ErrTypeSchema, fmt.Sprintf("column %q not found", column), nil).
		WithContext("column", column)
}

// NewBoundsError reports a positional row removal beyond the table's row count.
func NewBoundsError(position, rowCount int) *AppError {
	return NewAppError(ErrTypeBounds,
		fmt.Sprintf("row position %d out of range for table with %d rows", position, rowCount), nil).
		WithContext("position", position).
		WithContext("row_count", rowCount)
}

// NewDateParseError reports an unparseable date cell, naming the column and
// the raw value. Date failures are fatal because duration depends on both
// endpoints.
func NewDateParseError(column, value string, cause error) *AppError {
	return NewAppError(ErrTypeParsing,
		fmt.Sprintf("cannot parse %q in column %q as a date", value, column), cause).
		WithContext("column", column).
		WithContext("value", value)
}

// NewStorageError reports a failure reading an input file or writing the
// output file.
func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, message, cause)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

// NewValidationError creates a validation error
func NewValidationError(message string) *AppError {
	return NewAppError(ErrTypeValidation, message, nil)
}
