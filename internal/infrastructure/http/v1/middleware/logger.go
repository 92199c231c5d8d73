package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"eventum/pkg/logger"
)

// Logger logs one line per request with timing and status. Health probes
// are skipped to keep the log readable.
func Logger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		if strings.HasPrefix(path, "/health/") {
			return
		}

		log.WithContext(c.Request.Context()).Infow("http request",
			"method", c.Request.Method,
			"path", path,
			"query", query,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
			"error", c.Errors.ByType(gin.ErrorTypePrivate).String(),
		)
	}
}
