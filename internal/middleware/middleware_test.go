package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "homeinsight-sqft/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), ErrorHandler())
	r.GET("/", handler)
	return r
}

func TestRequestIDGeneratedWhenMissing(t *testing.T) {
	var seen string
	r := newRouter(func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	id := rec.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected a UUID request id, got %q", id)
	}
	if seen != id {
		t.Fatalf("handler saw %q, response carried %q", seen, id)
	}
}

func TestErrorHandlerWritesUserMessageOnly(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", apperrors.Validation(apperrors.ErrCodeInvalidAddress, apperrors.MsgAddressRequired), http.StatusBadRequest, apperrors.MsgAddressRequired},
		{"upstream", apperrors.Upstream("openai 401", apperrors.MsgCleanAddressFailed, errors.New("invalid key sk-123")), http.StatusInternalServerError, apperrors.MsgCleanAddressFailed},
		{"untyped", errors.New("panic-ish detail"), http.StatusInternalServerError, apperrors.MsgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(func(c *gin.Context) {
				_ = c.Error(tt.err)
			})

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, rec.Code)
			}
			var body ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body.Error != tt.message {
				t.Fatalf("expected %q, got %q", tt.message, body.Error)
			}
		})
	}
}
