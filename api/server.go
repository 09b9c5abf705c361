// Package api exposes the analyzer over HTTP
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/seo-optimizer/content-analyzer/analyzer"
	"github.com/seo-optimizer/content-analyzer/content"
	"github.com/seo-optimizer/content-analyzer/logging"
	"github.com/seo-optimizer/content-analyzer/metrics"
	"github.com/seo-optimizer/content-analyzer/middleware"
	"github.com/seo-optimizer/content-analyzer/readability"
)

const (
	maxBodyBytes  = 5 << 20
	maxBatchItems = 20
)

// Deps are the collaborators of the HTTP layer. Only Analyzer is required.
type Deps struct {
	Analyzer    *analyzer.Analyzer
	Logger      logging.Logger
	Statistics  *logging.Statistics
	Metrics     *metrics.PrometheusCollector
	Registry    *prometheus.Registry
	RateLimiter *middleware.RateLimiter
	AccessLog   bool
}

// Server holds the handlers
type Server struct {
	analyzer    *analyzer.Analyzer
	parser      *content.Parser
	readability *readability.Engine
	logger      logging.Logger
	statistics  *logging.Statistics
}

// NewRouter builds the gin engine with middleware and routes
func NewRouter(deps Deps) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	s := &Server{
		analyzer:    deps.Analyzer,
		parser:      content.NewParser(logger),
		readability: readability.NewEngine(logger),
		logger:      logger,
		statistics:  deps.Statistics,
	}

	r := gin.New()
	if deps.AccessLog {
		r.Use(gin.Logger())
	}
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler(logger))
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}
	if deps.RateLimiter != nil {
		r.Use(deps.RateLimiter.RateLimit())
	}
	r.Use(cors())
	if deps.Statistics != nil {
		r.Use(middleware.Stats(deps.Statistics, logger))
	}

	api := r.Group("/api")
	{
		api.GET("/health", s.health)
		api.GET("/rules", s.listRules)
		api.GET("/statistics", s.statisticsHandler)

		api.POST("/analyze", s.analyze)
		api.POST("/analyze/raw", s.analyzeRaw)
		api.POST("/analyze/batch", s.analyzeBatch)
		api.POST("/readability", s.readabilityHandler)
		api.POST("/keywords", s.suggestKeywords)
	}

	if deps.Registry != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	return r
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
