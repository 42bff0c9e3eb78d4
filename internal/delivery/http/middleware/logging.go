package middleware

import (
	"log/slog"
	"strconv"
	"time"

	"contact-relay/pkg/logger"
	"contact-relay/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// unmatchedRoute labels requests that hit no route, keeping metric cardinality bounded.
const unmatchedRoute = "unmatched"

// RequestLogger logs one structured line per request and records RED metrics.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}

		statusLabel := strconv.Itoa(status)
		metrics.HTTPDuration.WithLabelValues(c.Request.Method, route, statusLabel).Observe(latency.Seconds())
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, route, statusLabel).Inc()

		level := slog.LevelInfo
		if status >= 500 {
			level = slog.LevelError
		}
		logger.Log.Log(c.Request.Context(), level, "HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", latency.Milliseconds(),
			"client_ip", c.ClientIP(),
			"request_id", c.GetString(RequestIDKey),
		)
	}
}
