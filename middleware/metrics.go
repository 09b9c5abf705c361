package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/seo-optimizer/content-analyzer/metrics"
)

// Metrics records request counts, latency and in-flight requests per route
func Metrics(collector metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		collector.IncRequestsInFlight()
		defer collector.DecRequestsInFlight()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		collector.RecordRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start).Seconds())
	}
}
