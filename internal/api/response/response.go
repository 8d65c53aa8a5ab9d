// Package response writes the JSON envelope shared by every endpoint.
package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key the logging middleware stores the request ID under.
const RequestIDKey = "X-Request-ID"

type APIResponse struct {
	Success   bool         `json:"success"`
	Data      any          `json:"data"`
	Error     *ErrorDetail `json:"error"`
	Message   string       `json:"message"`
	RequestID string       `json:"requestId"`
	Timestamp string       `json:"timestamp"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details"`
}

func Success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, APIResponse{
		Success:   true,
		Data:      data,
		Message:   message,
		RequestID: c.GetString(RequestIDKey),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

func Error(c *gin.Context, status int, errCode string, message string, details any) {
	c.JSON(status, errorBody(c, errCode, message, details))
}

// Abort writes the error envelope and stops the handler chain.
func Abort(c *gin.Context, status int, errCode string, message string, details any) {
	c.AbortWithStatusJSON(status, errorBody(c, errCode, message, details))
}

func errorBody(c *gin.Context, errCode string, message string, details any) APIResponse {
	return APIResponse{
		Success: false,
		Error: &ErrorDetail{
			Code:    errCode,
			Message: message,
			Details: details,
		},
		Message:   message,
		RequestID: c.GetString(RequestIDKey),
		Timestamp: time.Now().Format(time.RFC3339),
	}
}
