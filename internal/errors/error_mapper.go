package errors

import (
	stderrors "errors"
	"net/http"
)

// MapError converts any error into an AppError. Errors that are not already
// typed become a generic internal error so no detail leaks to the client.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	return &AppError{
		Kind:             KindInternal,
		TechnicalMessage: err.Error(),
		UserMessage:      MsgInternalError,
		Code:             ErrCodeInternal,
		HTTPStatus:       http.StatusInternalServerError,
		OriginalError:    err,
	}
}
