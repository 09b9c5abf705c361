package middleware

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seo-optimizer/content-analyzer/logging"
	"github.com/seo-optimizer/content-analyzer/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler(logging.Nop()))
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	r.GET("/error", func(c *gin.Context) { c.Error(assert.AnError) })
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "fine") })

	w := serve(r, http.MethodGet, "/panic")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "unexpected error")

	w = serve(r, http.MethodGet, "/error")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = serve(r, http.MethodGet, "/ok")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fine", w.Body.String())
}

func TestRateLimiter(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(2, 3)
	rl.now = func() time.Time { return clock }

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("a"), "request %d", i)
	}
	assert.False(t, rl.Allow("a"))
	assert.True(t, rl.Allow("b"))

	clock = clock.Add(500 * time.Millisecond)
	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))

	clock = clock.Add(time.Hour)
	assert.Equal(t, 2, rl.Prune(time.Minute))

	r := gin.New()
	r.Use(NewRateLimiter(1, 1).RateLimit())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodGet, "/").Code)
	w := serve(r, http.MethodGet, "/")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, http.MethodGet, "/")
	assert.Len(t, w.Header().Get(RequestIDHeader), 16)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc123", w.Header().Get(RequestIDHeader))
}

func TestStats(t *testing.T) {
	stats := logging.NewStatistics(filepath.Join(t.TempDir(), "statistics.json"))

	r := gin.New()
	r.Use(Stats(stats, logging.Nop()))
	r.POST("/api/analyze", func(c *gin.Context) {
		c.Set(GradeKey, "B")
		c.Set(PageURLKey, "https://example.com/page?utm=1")
		c.Status(http.StatusOK)
	})
	r.GET("/api/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(r, http.MethodPost, "/api/analyze")
	serve(r, http.MethodGet, "/api/health")

	assert.Equal(t, 1, stats.TotalRequests())
	assert.Equal(t, 1, stats.GetUniqueVisitorsCount())
	assert.Equal(t, 1, stats.GetPopularURLs(5)["https://example.com/page"])
}

func TestMetrics(t *testing.T) {
	collector := metrics.NewPrometheusCollector("test")

	r := gin.New()
	r.Use(Metrics(collector))
	r.GET("/api/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(r, http.MethodGet, "/api/health")
	serve(r, http.MethodGet, "/missing")

	requests := collector.GetCollectors()[0]
	require.Equal(t, 2, testutil.CollectAndCount(requests))
}
