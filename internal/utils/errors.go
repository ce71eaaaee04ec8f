package utils

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorKind string

const (
	ErrKindValidation        ErrorKind = "validation"
	ErrKindAuthorization     ErrorKind = "authorization"
	ErrKindNotFound          ErrorKind = "not_found"
	ErrKindDuplicate         ErrorKind = "duplicate_operation"
	ErrKindInvalidState      ErrorKind = "invalid_state_transition"
	ErrKindAmountMismatch    ErrorKind = "amount_mismatch"
	ErrKindSignatureMismatch ErrorKind = "signature_mismatch"
	ErrKindUpstreamGateway   ErrorKind = "upstream_gateway"
	ErrKindInternal          ErrorKind = "internal"
)

// AppError is the error type surfaced by services. Each kind maps to a
// stable HTTP status and response code; upstream gateway failures keep the
// underlying error for logs but never leak it to clients.
type AppError struct {
	Kind    ErrorKind
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) *AppError {
	return &AppError{Kind: ErrKindValidation, Code: "VALIDATION_ERROR", Message: message}
}

func NewAuthorizationError(message string) *AppError {
	return &AppError{Kind: ErrKindAuthorization, Code: "FORBIDDEN", Message: message}
}

func NewNotFoundError(resource string) *AppError {
	return &AppError{Kind: ErrKindNotFound, Code: "NOT_FOUND", Message: resource + " not found"}
}

func NewDuplicateError(message string) *AppError {
	return &AppError{Kind: ErrKindDuplicate, Code: "DUPLICATE_OPERATION", Message: message}
}

func NewInvalidStateError(message string) *AppError {
	return &AppError{Kind: ErrKindInvalidState, Code: "INVALID_STATE_TRANSITION", Message: message}
}

func NewAmountMismatchError(expected, got int64) *AppError {
	return &AppError{
		Kind:    ErrKindAmountMismatch,
		Code:    "AMOUNT_MISMATCH",
		Message: fmt.Sprintf("order amount %d does not match billed amount %d", got, expected),
	}
}

func NewSignatureMismatchError() *AppError {
	return &AppError{Kind: ErrKindSignatureMismatch, Code: "SIGNATURE_MISMATCH", Message: "payment signature verification failed"}
}

func NewUpstreamGatewayError(err error) *AppError {
	return &AppError{Kind: ErrKindUpstreamGateway, Code: "GATEWAY_ERROR", Message: "payment gateway request failed", Err: err}
}

func NewInternalError(err error) *AppError {
	return &AppError{Kind: ErrKindInternal, Code: "INTERNAL_ERROR", Message: "internal server error", Err: err}
}

// AsAppError unwraps err to an *AppError if one is in the chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case ErrKindValidation:
		return http.StatusBadRequest
	case ErrKindAuthorization:
		return http.StatusForbidden
	case ErrKindNotFound:
		return http.StatusNotFound
	case ErrKindDuplicate, ErrKindInvalidState:
		return http.StatusConflict
	case ErrKindAmountMismatch, ErrKindSignatureMismatch:
		return http.StatusBadRequest
	case ErrKindUpstreamGateway:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
