package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves the request-scoped logger set by middleware.RequestLogger,
// or the fallback when none is present.
func getLogger(c *gin.Context, fallback *zap.Logger) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	if fallback == nil {
		return zap.NewNop()
	}
	return fallback
}

func (h *VenueHandler) log(c *gin.Context) *zap.Logger {
	return getLogger(c, h.Logger)
}
