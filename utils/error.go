package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler recovers panics raised further down the chain and answers
// with a JSON 500.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Unhandled panic",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}

// JSONError logs the failure and sends a standardized JSON error response.
// Server errors are logged at Error, everything else at Warn.
func JSONError(c *gin.Context, logger *zap.Logger, status int, message string, details string) {
	fields := []zap.Field{
		zap.Int("status", status),
		zap.String("path", c.Request.URL.Path),
		zap.String("details", details),
	}
	if status >= http.StatusInternalServerError {
		logger.Error(message, fields...)
	} else {
		logger.Warn(message, fields...)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Message: message, Details: details})
}
