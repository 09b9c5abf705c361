package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seo-optimizer/content-analyzer/analyzer"
	"github.com/seo-optimizer/content-analyzer/logging"
	"github.com/seo-optimizer/content-analyzer/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const pageHTML = `<html><head><title>Guide</title></head><body><h1>Guide</h1><p>Just a short paragraph about gardening.</p></body></html>`

type fixture struct {
	router     *gin.Engine
	statistics *logging.Statistics
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	a := analyzer.New()
	t.Cleanup(a.Close)

	registry := prometheus.NewRegistry()
	collector := metrics.NewPrometheusCollector("test")
	registry.MustRegister(collector.GetCollectors()...)

	statistics := logging.NewStatistics(filepath.Join(t.TempDir(), "statistics.json"))
	return fixture{
		router: NewRouter(Deps{
			Analyzer:   a,
			Statistics: statistics,
			Metrics:    collector,
			Registry:   registry,
		}),
		statistics: statistics,
	}
}

func (f fixture) do(t *testing.T, method, path, contentType string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f fixture) postJSON(t *testing.T, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	return f.do(t, http.MethodPost, path, "application/json", data)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func TestHealthAndRules(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, 42, body["rules"])

	w = f.do(t, http.MethodGet, "/api/rules", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["rules"], 42)
}

func TestAnalyze(t *testing.T) {
	f := newFixture(t)

	w := f.postJSON(t, "/api/analyze", analyzer.Input{
		HTML:        pageHTML,
		Description: "A short guide",
		Keywords:    "gardening",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	assert.Equal(t, "Guide", body["title"])
	assert.Equal(t, "en", body["language"])
	assert.Contains(t, []any{"A", "B", "C", "D", "F"}, body["grade"])
	assert.NotEmpty(t, body["issues"])
	assert.NotNil(t, body["enhancedRecommendations"])
	assert.Equal(t, false, body["cached"])

	w = f.postJSON(t, "/api/analyze", analyzer.Input{
		HTML:        pageHTML,
		Description: "A short guide",
		Keywords:    "gardening",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["cached"])

	assert.Equal(t, 2, f.statistics.TotalRequests())
}

func TestAnalyzeValidation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name  string
		input analyzer.Input
		field string
	}{
		{"Empty", analyzer.Input{}, "html"},
		{"Language", analyzer.Input{HTML: pageHTML, Language: "fr"}, "language"},
		{"URL", analyzer.Input{HTML: pageHTML, URL: "/relative"}, "url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.postJSON(t, "/api/analyze", tt.input)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.field, decode(t, w)["field"])
		})
	}

	w := f.do(t, http.MethodPost, "/api/analyze", "application/json", []byte("{"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBodyLimit(t *testing.T) {
	f := newFixture(t)
	huge := []byte(`{"html":"` + strings.Repeat("a", maxBodyBytes) + `"}`)

	for _, path := range []string{"/api/analyze", "/api/analyze/batch", "/api/readability", "/api/keywords"} {
		t.Run(path, func(t *testing.T) {
			w := f.do(t, http.MethodPost, path, "application/json", huge)
			assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		})
	}

	w := f.do(t, http.MethodPost, "/api/analyze/raw?title=Big", "text/html; charset=utf-8", bytes.Repeat([]byte("a"), maxBodyBytes+1))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestAnalyzeRawDecodesCharset(t *testing.T) {
	f := newFixture(t)

	// "Café" in ISO-8859-1
	page := []byte("<html><head><title>Caf\xe9 guide</title></head><body><p>Fresh coffee every day.</p></body></html>")
	query := url.Values{"description": {"Where to drink coffee"}, "keywords": {"coffee"}}

	w := f.do(t, http.MethodPost, "/api/analyze/raw?"+query.Encode(), "text/html; charset=iso-8859-1", page)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	assert.Equal(t, "Café guide", body["title"])
	assert.Equal(t, "Where to drink coffee", body["description"])
	assert.Equal(t, []any{"coffee"}, body["keywords"])
}

func TestAnalyzeBatch(t *testing.T) {
	f := newFixture(t)

	w := f.postJSON(t, "/api/analyze/batch", batchRequest{Items: []analyzer.Input{
		{HTML: pageHTML, Description: "first"},
		{HTML: pageHTML, Language: "de"},
	}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Results []analyzer.BatchResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Results, 2)
	assert.NotNil(t, body.Results[0].Results)
	assert.Empty(t, body.Results[0].Error)
	assert.Equal(t, 1, body.Results[1].Index)
	assert.Nil(t, body.Results[1].Results)
	assert.Contains(t, body.Results[1].Error, "language")

	w = f.postJSON(t, "/api/analyze/batch", batchRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.postJSON(t, "/api/analyze/batch", batchRequest{Items: make([]analyzer.Input, maxBatchItems+1)})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReadability(t *testing.T) {
	f := newFixture(t)

	w := f.postJSON(t, "/api/readability", textRequest{Text: "The cat sat on the mat. It was warm.", Language: "en"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Len(t, body["formulas"], 6)
	meta, ok := body["meta"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "en", meta["language"])
}

func TestSuggestKeywords(t *testing.T) {
	f := newFixture(t)

	text := strings.Repeat("<p>Coffee brewing tips for better coffee at home.</p> ", 4)
	w := f.postJSON(t, "/api/keywords", textRequest{Text: text, Limit: 3})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Suggestions []struct {
			Keyword string `json:"keyword"`
		} `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Suggestions)
	assert.LessOrEqual(t, len(body.Suggestions), 3)
	for _, s := range body.Suggestions {
		assert.NotContains(t, s.Keyword, "<")
	}

	w = f.postJSON(t, "/api/keywords", textRequest{Text: "  "})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "text", decode(t, w)["field"])
}

func TestCORSPreflight(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodOptions, "/api/analyze", "", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t)

	f.do(t, http.MethodGet, "/api/health", "", nil)
	f.postJSON(t, "/api/analyze", analyzer.Input{HTML: pageHTML})

	w := f.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",path="/api/health",service="test",status="2xx"} 1`)
	assert.Contains(t, w.Body.String(), "content_analysis_total")
}
