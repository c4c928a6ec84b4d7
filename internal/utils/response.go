package utils

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/qrobotics/storefront-api/internal/apperrors"
)

// Response defines the standard API response envelope.
type Response struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Meta    Meta        `json:"meta"`
}

// ErrorInfo provides details for error responses.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Meta contains request-scoped metadata.
type Meta struct {
	RequestID string `json:"requestId"`
	Timestamp string `json:"timestamp"`
}

// Success writes a success response with the standard envelope.
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success: true,
		Code:    code,
		Message: message,
		Data:    data,
		Meta: Meta{
			RequestID: getRequestID(c),
			Timestamp: time.Now().Format(time.RFC3339),
		},
	})
}

// Error writes an error response with provided API error code and message.
func Error(c *gin.Context, code int, errCode, message string) {
	c.JSON(code, Response{
		Success: false,
		Code:    code,
		Message: message,
		Error: &ErrorInfo{
			Code:    errCode,
			Message: message,
		},
		Meta: Meta{
			RequestID: getRequestID(c),
			Timestamp: time.Now().Format(time.RFC3339),
		},
	})
}

// RespondError maps an error from the service layer to an HTTP response using
// the application error taxonomy. Conflicts render as 400 to preserve the
// original admin-panel contract. Unrecognized errors become a generic 500; the
// underlying message is exposed only outside production.
func RespondError(c *gin.Context, err error, env string) {
	switch {
	case apperrors.IsValidation(err):
		Error(c, 400, "VALIDATION_FAILED", err.Error())
	case apperrors.IsConflict(err):
		Error(c, 400, "CONFLICT", err.Error())
	case apperrors.IsNotFound(err):
		Error(c, 404, "NOT_FOUND", err.Error())
	default:
		msg := "internal server error"
		if env != "production" {
			msg = err.Error()
		}
		Error(c, 500, "INTERNAL_ERROR", msg)
	}
}

func getRequestID(c *gin.Context) string {
	if id := c.GetString("request_id"); id != "" {
		return id
	}
	return uuid.New().String()[:8]
}
