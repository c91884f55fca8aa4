package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"pressmatch/internal/observability"
)

// RequestLogger logs each request and feeds the request histogram.
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		log.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     path,
			"status":   status,
			"duration": duration.String(),
			"ip":       c.ClientIP(),
			"trace_id": c.GetString("trace_id"),
		}).Info("request")

		observability.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(status),
		).Observe(duration.Seconds())
	}
}
