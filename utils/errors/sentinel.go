package errors

import (
	"errors"
)

// Sentinel errors for use with errors.Is() across layers.
var (
	ErrMissingCredential = errors.New("required access credential absent")
	ErrArticleNotFound   = errors.New("article not found")
	ErrStoreUnavailable  = errors.New("store unavailable")
	ErrSourceUnavailable = errors.New("remote source unavailable")
	ErrEmptyResponse     = errors.New("empty response from remote source")
	ErrInvalidInput      = errors.New("invalid input")
)

// IsConfigurationError checks if an error represents a missing credential.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrMissingCredential)
}

// IsArticleNotFound checks if an error represents an "article not found" condition.
func IsArticleNotFound(err error) bool {
	return errors.Is(err, ErrArticleNotFound)
}

// IsStoreError checks if an error represents a durable storage problem.
func IsStoreError(err error) bool {
	if errors.Is(err, ErrStoreUnavailable) {
		return true
	}
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrCodeStore
}

// IsNetworkError checks if an error represents a transport-level failure.
func IsNetworkError(err error) bool {
	if errors.Is(err, ErrSourceUnavailable) {
		return true
	}
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrCodeNetwork
}

// IsDecodingError checks if an error represents an unexpected response shape.
func IsDecodingError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrCodeDecoding
}

// IsValidationError checks if an error represents rejected caller input.
func IsValidationError(err error) bool {
	if errors.Is(err, ErrInvalidInput) {
		return true
	}
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrCodeValidation
}

// IsRetryableError determines if an error represents a condition worth retrying.
// Storage and decoding failures are not retryable; transport failures are.
func IsRetryableError(err error) bool {
	return IsNetworkError(err)
}
