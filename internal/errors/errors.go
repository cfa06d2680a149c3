package errors

import (
	"fmt"
	"time"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// HasCode checks whether err carries the given error code
func HasCode(err error, code string) bool {
	return GetCode(err) == code
}

// Predefined error codes
const (
	CodeConfigInvalid    = "CONFIG_INVALID"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeInsufficientData = "INSUFFICIENT_DATA"
	CodeChartGeneration  = "CHART_GENERATION_FAILED"
	CodeClassification   = "CLASSIFICATION_FAILED"
	CodeTimeout          = "ANALYSIS_TIMEOUT"
	CodeReadFailed       = "READ_FAILED"
	CodeInternalError    = "INTERNAL_ERROR"
)

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}

// InsufficientData marks a dataset that has nothing chartable in it: no
// columns, no non-missing values, or no column in a recognized type bucket.
func InsufficientData(message string) *AppError {
	return New(CodeInsufficientData, message)
}

func ChartGenerationFailed(cause error) *AppError {
	return &AppError{
		Code:    CodeChartGeneration,
		Message: "chart generation failed",
		Cause:   cause,
	}
}

func ClassificationFailed(columnName string, cause error) *AppError {
	return &AppError{
		Code:    CodeClassification,
		Message: fmt.Sprintf("classification failed for column %q", columnName),
		Cause:   cause,
	}
}

// Timeout reports that an operation exceeded its cooperative budget. The
// operation name and budget are carried in the message so callers can decide
// whether to retry with a reduced dataset.
func Timeout(operation string, budget time.Duration) *AppError {
	return New(CodeTimeout, fmt.Sprintf("%s exceeded its %s budget", operation, budget))
}

func ReadFailed(source string, cause error) *AppError {
	return &AppError{
		Code:    CodeReadFailed,
		Message: fmt.Sprintf("failed to read %s", source),
		Cause:   cause,
	}
}

func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}
