package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name   string
		appErr *AppError
		want   string
	}{
		{
			name: "error with cause",
			appErr: &AppError{
				Code:    ErrCodeStore,
				Message: "failed to fetch cached articles",
				Cause:   errors.New("connection timeout"),
			},
			want: "STORE_ERROR: failed to fetch cached articles (caused by: connection timeout)",
		},
		{
			name: "error without cause",
			appErr: &AppError{
				Code:    ErrCodeEmptyResponse,
				Message: "empty body",
			},
			want: "EMPTY_RESPONSE_ERROR: empty body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.appErr.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("socket closed")
	appErr := NetworkError("request failed", cause, nil)

	if !errors.Is(appErr, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
}

func TestHTTPError_CarriesStatusCode(t *testing.T) {
	appErr := HTTPError("upstream returned error", 503, nil)

	if got := appErr.Context["status_code"]; got != 503 {
		t.Errorf("status_code context = %v, want 503", got)
	}
	if appErr.Code != ErrCodeHTTP {
		t.Errorf("Code = %v, want %v", appErr.Code, ErrCodeHTTP)
	}
}

func TestAppError_HTTPStatusCode(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeInvalidRequest, http.StatusBadRequest},
		{ErrCodeNetwork, http.StatusBadGateway},
		{ErrCodeHTTP, http.StatusBadGateway},
		{ErrCodeEmptyResponse, http.StatusBadGateway},
		{ErrCodeDecoding, http.StatusBadGateway},
		{ErrCodeConfiguration, http.StatusServiceUnavailable},
		{ErrCodeStore, http.StatusInternalServerError},
		{ErrCodeUnknown, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			appErr := &AppError{Code: tt.code, Message: "test"}
			if got := appErr.HTTPStatusCode(); got != tt.want {
				t.Errorf("HTTPStatusCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSentinelHelpers(t *testing.T) {
	storeErr := StoreError("save failed", errors.New("disk full"), nil)
	if !IsStoreError(storeErr) {
		t.Error("IsStoreError should match a STORE_ERROR AppError")
	}
	if IsNetworkError(storeErr) {
		t.Error("IsNetworkError should not match a store error")
	}

	netErr := NetworkError("fetch failed", ErrSourceUnavailable, nil)
	if !IsNetworkError(netErr) {
		t.Error("IsNetworkError should match a NETWORK_ERROR AppError")
	}
	if !IsRetryableError(netErr) {
		t.Error("network errors are retryable")
	}
	if IsRetryableError(storeErr) {
		t.Error("store errors are not retryable")
	}

	confErr := ConfigurationError("api key missing", nil)
	if !IsConfigurationError(confErr) {
		t.Error("IsConfigurationError should match via the wrapped sentinel")
	}

	valErr := ValidationError("bad input", nil)
	if !IsValidationError(valErr) {
		t.Error("IsValidationError should match via the wrapped sentinel")
	}
	if !IsValidationError(InvalidRequestError("bad target", ErrInvalidInput, nil)) {
		t.Error("IsValidationError should match an invalid request carrying the sentinel")
	}

	if !errors.Is(EmptyResponseError("no body", nil), ErrEmptyResponse) {
		t.Error("EmptyResponseError should wrap its sentinel")
	}

	if !IsArticleNotFound(ErrArticleNotFound) {
		t.Error("IsArticleNotFound should match the sentinel")
	}
	if IsArticleNotFound(storeErr) {
		t.Error("IsArticleNotFound should not match a store error")
	}
}
