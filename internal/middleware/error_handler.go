package middleware

import (
	"net/http"

	"homeinsight-sqft/internal/errors"
	"homeinsight-sqft/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ErrorHandler catches errors and returns standardized responses.
// Technical details are logged only; the client sees the user message.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		appErr := errors.MapError(c.Errors.Last().Err)

		if appErr.HTTPStatus >= http.StatusInternalServerError {
			logger.GlobalLogger.Errorf("Request failed: request_id=%s, path=%s, method=%s, client_ip=%s, kind=%s, error=%v",
				GetRequestID(c),
				c.Request.URL.Path,
				c.Request.Method,
				c.ClientIP(),
				appErr.Kind,
				appErr)
		} else {
			logger.GlobalLogger.Warnf("Request rejected: request_id=%s, path=%s, method=%s, kind=%s, error=%s",
				GetRequestID(c),
				c.Request.URL.Path,
				c.Request.Method,
				appErr.Kind,
				appErr.TechnicalMessage)
		}

		c.JSON(appErr.HTTPStatus, ErrorResponse{
			Error: appErr.UserMessage,
			Code:  appErr.Code,
		})
	}
}
