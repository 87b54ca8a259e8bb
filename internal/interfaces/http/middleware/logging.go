package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/socialdash/internal/shared/logger"
)

// RequestLogger writes one line per request. Server errors log at error,
// client errors at warn and everything else at debug so the OAuth polling
// of the dashboard stays out of the info stream.
func RequestLogger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		fields := []any{
			"method", c.Request.Method,
			"route", route,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if id := c.GetHeader("X-Request-ID"); id != "" {
			fields = append(fields, "request_id", id)
		}
		if p := c.Param("platform"); p != "" {
			fields = append(fields, "platform", p)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "error", c.Errors.String())
		}

		switch {
		case status >= 500:
			log.Errorw("request failed", fields...)
		case status >= 400:
			log.Warnw("request rejected", fields...)
		default:
			log.Debugw("request served", fields...)
		}
	}
}
