package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jobboardhq/jobboard/pkg/metrics"
)

// unmatchedPath folds requests that hit no registered route into one label,
// so arbitrary request paths cannot inflate the metric's cardinality.
const unmatchedPath = "unmatched"

// Metrics records request latency per route pattern and status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = unmatchedPath
		}

		status := strconv.Itoa(c.Writer.Status())
		metrics.APILatency.WithLabelValues(c.Request.Method, path, status).
			Observe(time.Since(start).Seconds())
	}
}
