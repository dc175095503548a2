// Package errors provides structured error handling for the reader backend.
// It defines error types with codes, messages, causes, and contextual
// information so failures can be classified at every layer boundary.
package errors

import (
	"fmt"
	"log/slog"
)

// ErrorCode represents a categorized error type for structured error handling.
type ErrorCode string

// Error code constants for categorizing application errors.
const (
	ErrCodeConfiguration  ErrorCode = "CONFIG_ERROR"
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST_ERROR"
	ErrCodeNetwork        ErrorCode = "NETWORK_ERROR"
	ErrCodeHTTP           ErrorCode = "HTTP_ERROR"
	ErrCodeEmptyResponse  ErrorCode = "EMPTY_RESPONSE_ERROR"
	ErrCodeDecoding       ErrorCode = "DECODING_ERROR"
	ErrCodeStore          ErrorCode = "STORE_ERROR"
	ErrCodeValidation     ErrorCode = "VALIDATION_ERROR"
	ErrCodeUnknown        ErrorCode = "UNKNOWN_ERROR"
)

// AppError represents a structured application error with code, message,
// cause, and context. It implements the error interface and supports error
// unwrapping.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error returns a string representation of the AppError.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error for use with errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// ConfigurationError creates an AppError for a missing or unusable required setting.
func ConfigurationError(message string, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeConfiguration,
		Message: message,
		Cause:   ErrMissingCredential,
		Context: context,
	}
}

// InvalidRequestError creates an AppError for a malformed request target.
func InvalidRequestError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidRequest,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// NetworkError creates an AppError for transport-level failures, including
// timeouts and offline conditions.
func NetworkError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNetwork,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// HTTPError creates an AppError for a non-2xx upstream response. The status
// code is carried in the error context under "status_code".
func HTTPError(message string, statusCode int, context map[string]interface{}) *AppError {
	if context == nil {
		context = make(map[string]interface{})
	}
	context["status_code"] = statusCode
	return &AppError{
		Code:    ErrCodeHTTP,
		Message: message,
		Context: context,
	}
}

// EmptyResponseError creates an AppError for an empty upstream response body.
func EmptyResponseError(message string, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeEmptyResponse,
		Message: message,
		Cause:   ErrEmptyResponse,
		Context: context,
	}
}

// DecodingError creates an AppError for a response that does not match the
// expected shape.
func DecodingError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeDecoding,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// StoreError creates an AppError for durable storage read/write failures.
func StoreError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeStore,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// ValidationError creates an AppError for input validation failures.
func ValidationError(message string, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
		Cause:   ErrInvalidInput,
		Context: context,
	}
}

// UnknownError creates an AppError for unclassified errors.
func UnknownError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeUnknown,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// LogError logs an AppError with structured logging and context.
func LogError(logger *slog.Logger, err error, operation string) {
	// Handle nil logger gracefully (e.g., during tests)
	if logger == nil {
		return
	}

	if appErr, ok := err.(*AppError); ok {
		args := []any{
			"operation", operation,
			"code", string(appErr.Code),
			"message", appErr.Message,
		}
		if appErr.Cause != nil {
			args = append(args, "cause", appErr.Cause.Error())
		}
		for k, v := range appErr.Context {
			args = append(args, k, v)
		}
		logger.Error("application error", args...)
		return
	}

	logger.Error("unexpected error", "operation", operation, "error", err)
}
