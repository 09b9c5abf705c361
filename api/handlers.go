package api

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/net/html/charset"

	"github.com/seo-optimizer/content-analyzer/analyzer"
	"github.com/seo-optimizer/content-analyzer/keywords"
	"github.com/seo-optimizer/content-analyzer/logging"
	"github.com/seo-optimizer/content-analyzer/middleware"
	"github.com/seo-optimizer/content-analyzer/readability"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"rules":  len(s.analyzer.Rules()),
		"cache":  s.analyzer.GetCacheStats(),
	})
}

func (s *Server) listRules(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rules": s.analyzer.Rules()})
}

func (s *Server) statisticsHandler(c *gin.Context) {
	body := gin.H{"cache": s.analyzer.GetCacheStats()}
	if s.statistics != nil {
		for k, v := range s.statistics.GetStatistics() {
			body[k] = v
		}
	}
	c.JSON(http.StatusOK, body)
}

// bindJSON decodes a body of at most maxBodyBytes and answers the request itself on failure
func bindJSON(c *gin.Context, v any) bool {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	if err := c.ShouldBindJSON(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Request body too large"})
			return false
		}
		badRequest(c, "", "Invalid JSON body")
		return false
	}
	return true
}

func (s *Server) analyze(c *gin.Context) {
	var in analyzer.Input
	if !bindJSON(c, &in) {
		return
	}
	s.runAnalysis(c, in)
}

// analyzeRaw takes the HTML as the request body, decoded per its Content-Type charset,
// and the metadata from the query string
func (s *Server) analyzeRaw(c *gin.Context) {
	body := http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	reader, err := charset.NewReader(body, c.GetHeader("Content-Type"))
	if err != nil {
		badRequest(c, "html", "Unsupported character encoding")
		return
	}
	raw, err := io.ReadAll(reader)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Request body too large"})
			return
		}
		badRequest(c, "html", "Could not read request body")
		return
	}

	s.runAnalysis(c, analyzer.Input{
		HTML:        string(raw),
		Title:       c.Query("title"),
		Description: c.Query("description"),
		Keywords:    c.Query("keywords"),
		Language:    c.Query("language"),
		URL:         c.Query("url"),
	})
}

func (s *Server) runAnalysis(c *gin.Context, in analyzer.Input) {
	logger := logging.WithContext(c.Request.Context(), s.logger)
	c.Set(middleware.PageURLKey, in.URL)

	res, err := s.analyzer.Analyze(c.Request.Context(), in)
	if err != nil {
		var verr *analyzer.ValidationError
		if errors.As(err, &verr) {
			badRequest(c, verr.Field, verr.Error())
			return
		}
		logger.Warn("analysis aborted", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Analysis was cancelled"})
		return
	}

	c.Set(middleware.GradeKey, res.Grade)
	c.JSON(http.StatusOK, res)
}

type batchRequest struct {
	Items []analyzer.Input `json:"items"`
}

func (s *Server) analyzeBatch(c *gin.Context) {
	var req batchRequest
	if !bindJSON(c, &req) {
		return
	}
	if len(req.Items) == 0 || len(req.Items) > maxBatchItems {
		badRequest(c, "items", "between 1 and 20 items are required")
		return
	}

	results, err := s.analyzer.AnalyzeBatch(c.Request.Context(), req.Items)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Analysis was cancelled"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

type textRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Limit    int    `json:"limit"`
}

func (s *Server) readabilityHandler(c *gin.Context) {
	var req textRequest
	if !bindJSON(c, &req) {
		return
	}
	c.JSON(http.StatusOK, s.readability.Analyze(req.Text, readability.Options{Language: req.Language}))
}

func (s *Server) suggestKeywords(c *gin.Context) {
	var req textRequest
	if !bindJSON(c, &req) {
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		badRequest(c, "text", "text is required")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"suggestions": keywords.Suggest(s.parser.Parse(req.Text).Text, keywords.SuggestOptions{
			Language: readability.NormalizeLanguage(req.Language),
			Limit:    req.Limit,
		}),
	})
}

func badRequest(c *gin.Context, field, msg string) {
	body := gin.H{"error": msg}
	if field != "" {
		body["field"] = field
	}
	c.JSON(http.StatusBadRequest, body)
}
