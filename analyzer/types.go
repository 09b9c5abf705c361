package analyzer

import (
	"errors"
	"fmt"
	"time"

	"github.com/seo-optimizer/content-analyzer/readability"
	"github.com/seo-optimizer/content-analyzer/recommend"
	"github.com/seo-optimizer/content-analyzer/rules"
)

// ErrValidation is matched by every ValidationError
var ErrValidation = errors.New("invalid input")

// ValidationError rejects an input before any engine runs
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Input is one piece of content to analyze. Keywords is a comma-separated list.
type Input struct {
	HTML        string `json:"html"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
	Language    string `json:"language"`
	URL         string `json:"url"`
}

// ContentSummary is the part of the parsed content worth returning to callers
type ContentSummary struct {
	WordCount        int            `json:"wordCount"`
	CharacterCount   int            `json:"characterCount"`
	Headings         map[string]int `json:"headings"`
	Paragraphs       int            `json:"paragraphs"`
	Images           int            `json:"images"`
	ImagesMissingAlt int            `json:"imagesMissingAlt"`
	InternalLinks    int            `json:"internalLinks"`
	ExternalLinks    int            `json:"externalLinks"`
	SemanticScore    int            `json:"semanticScore"`
	MainContentUsed  bool           `json:"mainContentUsed"`
}

// Results is the complete analysis of one input. Every call returns its own copy.
type Results struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Language    string   `json:"language"`
	URL         string   `json:"url,omitempty"`
	Keywords    []string `json:"keywords"`

	Score           int                                    `json:"score"`
	MaxScore        int                                    `json:"maxScore"`
	Percentage      int                                    `json:"percentage"`
	Grade           string                                 `json:"grade"`
	PassedRules     int                                    `json:"passedRules"`
	FailedRules     int                                    `json:"failedRules"`
	Warnings        int                                    `json:"warnings"`
	Issues          []rules.Issue                          `json:"issues"`
	CategoryScores  map[rules.Category]rules.CategoryScore `json:"categoryScores"`
	Recommendations []string                               `json:"recommendations"`
	SkippedRules    []string                               `json:"skippedRules"`

	KeywordDensity          map[string]float64  `json:"keywordDensity"`
	Content                 ContentSummary      `json:"content"`
	Readability             *readability.Result `json:"readability"`
	EnhancedRecommendations *recommend.Report   `json:"enhancedRecommendations"`

	Cached     bool      `json:"cached"`
	AnalyzedAt time.Time `json:"analyzedAt"`
	DurationMs float64   `json:"durationMs"`
}

// clone copies everything a caller may change, so the cached original stays untouched
func (r *Results) clone() *Results {
	c := *r
	c.Keywords = append([]string{}, r.Keywords...)
	c.Issues = append([]rules.Issue{}, r.Issues...)
	c.Recommendations = append([]string{}, r.Recommendations...)
	c.SkippedRules = append([]string{}, r.SkippedRules...)
	c.CategoryScores = make(map[rules.Category]rules.CategoryScore, len(r.CategoryScores))
	for k, v := range r.CategoryScores {
		c.CategoryScores[k] = v
	}
	c.KeywordDensity = make(map[string]float64, len(r.KeywordDensity))
	for k, v := range r.KeywordDensity {
		c.KeywordDensity[k] = v
	}
	c.Content.Headings = make(map[string]int, len(r.Content.Headings))
	for k, v := range r.Content.Headings {
		c.Content.Headings[k] = v
	}
	if r.Readability != nil {
		read := *r.Readability
		c.Readability = &read
	}
	c.EnhancedRecommendations = r.EnhancedRecommendations.Clone()
	return &c
}

// BatchResult is the outcome of one input of a batch
type BatchResult struct {
	Index   int      `json:"index"`
	Results *Results `json:"results,omitempty"`
	Err     error    `json:"-"`
	Error   string   `json:"error,omitempty"`
}

// CacheStats provides statistics about the analyzer's cache
type CacheStats struct {
	Entries       int           `json:"entries"`
	MaxSize       int           `json:"maxSize"`
	TTL           time.Duration `json:"ttl"`
	Hits          int64         `json:"hits"`
	Misses        int64         `json:"misses"`
	MonthlyHits   int           `json:"monthlyHits"`
	MonthlyMisses int           `json:"monthlyMisses"`
}
