package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Kind classifies an AppError for status mapping.
type Kind int

const (
	KindInternal Kind = iota
	// KindValidation marks malformed or missing input, detected before any outbound call.
	KindValidation
	// KindUpstream marks an outbound call that failed or returned an unusable body.
	KindUpstream
	// KindNotFound marks a successful scrape without the expected square footage.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "ValidationError"
	case KindUpstream:
		return "UpstreamError"
	case KindNotFound:
		return "NotFoundError"
	default:
		return "InternalError"
	}
}

// AppError represents a structured application error with user-friendly and technical details.
type AppError struct {
	Kind             Kind
	TechnicalMessage string
	UserMessage      string
	Code             string
	HTTPStatus       int
	OriginalError    error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.OriginalError != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.TechnicalMessage, e.OriginalError)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.TechnicalMessage)
}

// Unwrap returns the original error for error chaining.
func (e *AppError) Unwrap() error {
	return e.OriginalError
}

// NewAppError creates a new AppError instance.
func NewAppError(kind Kind, technicalMessage, userMessage, code string, status int, originalErr error) *AppError {
	return &AppError{
		Kind:             kind,
		TechnicalMessage: technicalMessage,
		UserMessage:      userMessage,
		Code:             code,
		HTTPStatus:       status,
		OriginalError:    originalErr,
	}
}

// Validation reports bad client input; the user message is safe to return as-is.
func Validation(code, userMessage string) *AppError {
	return NewAppError(KindValidation, userMessage, userMessage, code, http.StatusBadRequest, nil)
}

// Upstream reports a failed outbound call. Only userMessage reaches the client.
func Upstream(technicalMessage, userMessage string, err error) *AppError {
	return NewAppError(KindUpstream, technicalMessage, userMessage, ErrCodeUpstreamFailure, http.StatusInternalServerError, err)
}

// NotFound reports a lookup that completed without a result.
func NotFound(code, technicalMessage, userMessage string) *AppError {
	return NewAppError(KindNotFound, technicalMessage, userMessage, code, http.StatusNotFound, nil)
}

// IsKind reports whether err wraps an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// Common error codes
const (
	ErrCodeInvalidAddress        = "INVALID_ADDRESS"
	ErrCodeInvalidParameters     = "INVALID_PARAMETERS"
	ErrCodeInvalidSquareFootage  = "INVALID_SQUARE_FOOTAGE"
	ErrCodeSquareFootageNotFound = "SQUARE_FOOTAGE_NOT_FOUND"
	ErrCodeUpstreamFailure       = "UPSTREAM_FAILURE"
	ErrCodeInternal              = "INTERNAL_ERROR"
)
