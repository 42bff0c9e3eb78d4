package middleware

import (
	"errors"
	"net/http"

	"contact-relay/pkg/apperror"
	"contact-relay/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns the last error attached with c.Error into a status-only
// response. Callers never receive error details.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		reqID := c.GetString(RequestIDKey)

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			// Never expose internal error details to clients.
			logger.Log.Error("Unhandled error", "error", err, "request_id", reqID)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		if appErr.Code >= http.StatusInternalServerError {
			logger.Log.Error(appErr.Message, "error", appErr.Err, "status", appErr.Code, "request_id", reqID)
		} else {
			logger.Log.Debug(appErr.Message, "error", appErr.Err, "status", appErr.Code, "request_id", reqID)
		}
		c.AbortWithStatus(appErr.Code)
	}
}
