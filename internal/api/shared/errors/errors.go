package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/feral-file/ff-greeting-cards/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest         ErrorCode = "bad_request"
	ErrCodeNotFound           ErrorCode = "not_found"
	ErrCodeValidationFailed   ErrorCode = "validation_failed"
	ErrCodeUnauthorized       ErrorCode = "unauthorized"
	ErrCodeForbidden          ErrorCode = "forbidden"
	ErrCodeWalletDisconnected ErrorCode = "wallet_not_connected"
	ErrCodeTxRejected         ErrorCode = "transaction_rejected"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeUnavailable   ErrorCode = "collection_unavailable"
	ErrCodeServiceError  ErrorCode = "service_error"
)

// APIError represents a structured API error that carries error code and details
// This is the shared error type used by both REST and the live search socket
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return newError(ErrCodeBadRequest, message, details...)
}

func NewNotFoundError(message string, details ...string) *APIError {
	return newError(ErrCodeNotFound, message, details...)
}

func NewValidationError(details ...string) *APIError {
	return newError(ErrCodeValidationFailed, "Validation failed", details...)
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return newError(ErrCodeUnauthorized, message, details...)
}

func NewForbiddenError(message string, details ...string) *APIError {
	return newError(ErrCodeForbidden, message, details...)
}

func NewInternalError(message string, details ...string) *APIError {
	return newError(ErrCodeInternalError, message, details...)
}

func NewServiceError(message string, details ...string) *APIError {
	return newError(ErrCodeServiceError, message, details...)
}

func newError(code ErrorCode, message string, details ...string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// FromError maps an error returned by the collection or the ledger to an HTTP status and API error.
// The original error text is kept in Details.
func FromError(err error, message string) (int, *APIError) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return statusOf(apiErr.Code), apiErr
	}

	details := err.Error()
	switch {
	case errors.Is(err, domain.ErrInvalidAddress), errors.Is(err, domain.ErrInvalidWindow):
		return http.StatusBadRequest, newError(ErrCodeValidationFailed, message, details)
	case errors.Is(err, domain.ErrTokenNotFound):
		return http.StatusNotFound, newError(ErrCodeNotFound, message, details)
	case errors.Is(err, domain.ErrWalletNotConnected):
		return http.StatusConflict, newError(ErrCodeWalletDisconnected, message, details)
	case errors.Is(err, domain.ErrTxRejected):
		return http.StatusUnprocessableEntity, newError(ErrCodeTxRejected, message, details)
	case errors.Is(err, domain.ErrCollectionUnavailable):
		return http.StatusServiceUnavailable, newError(ErrCodeUnavailable, message, details)
	case errors.Is(err, domain.ErrNetwork):
		return http.StatusBadGateway, newError(ErrCodeServiceError, message, details)
	default:
		return http.StatusInternalServerError, newError(ErrCodeInternalError, message, details)
	}
}

func statusOf(code ErrorCode) int {
	switch code {
	case ErrCodeBadRequest, ErrCodeValidationFailed:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeWalletDisconnected:
		return http.StatusConflict
	case ErrCodeTxRejected:
		return http.StatusUnprocessableEntity
	case ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case ErrCodeServiceError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
