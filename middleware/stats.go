package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/seo-optimizer/content-analyzer/logging"
)

// Context keys handlers set so the statistics can describe the analysis
const (
	GradeKey   = "analysis_grade"
	PageURLKey = "analysis_url"
)

// saveEvery persists the statistics after this many analysis requests
const saveEvery = 100

// Stats tracks visitors and analysis requests
func Stats(stats *logging.Statistics, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		stats.TrackVisitor(c.ClientIP())

		c.Next()

		if c.Request.Method != http.MethodPost || !strings.HasPrefix(c.FullPath(), "/api/analyze") {
			return
		}

		loadTime := float64(time.Since(start).Milliseconds())
		stats.TrackAnalysis(c.GetString(PageURLKey), c.GetString(GradeKey), loadTime, c.Writer.Status() >= 400)

		if stats.TotalRequests()%saveEvery == 0 {
			go func() {
				if err := stats.Save(); err != nil {
					logger.Warn("failed to save statistics", "error", err)
				}
			}()
		}
	}
}
