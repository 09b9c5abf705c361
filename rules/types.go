// Package rules holds the SEO rule catalog and the engine that evaluates it
// into a weighted score, a letter grade and an ordered list of issues.
package rules

import "fmt"

// Category groups rules in the score breakdown
type Category string

const (
	CategoryMeta        Category = "meta"
	CategoryContent     Category = "content"
	CategoryTechnical   Category = "technical"
	CategoryReadability Category = "readability"
	CategoryKeywords    Category = "keywords"
)

// Categories lists the categories in evaluation order
var Categories = []Category{CategoryMeta, CategoryContent, CategoryTechnical, CategoryReadability, CategoryKeywords}

// Severity is the qualitative importance of a rule
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Rank orders severities from critical (0) to low (3); unknown severities sort with medium
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityLow:
		return 3
	default:
		return 2
	}
}

// Valid reports whether s is one of the four known severities
func (s Severity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// Outcome is the result of one rule check
type Outcome struct {
	Passed  bool   `json:"passed"`
	Message string `json:"message,omitempty"`
	Warning bool   `json:"warning,omitempty"`
}

// CheckFunc inspects a page; it must not modify it
type CheckFunc func(p *Page) Outcome

// Rule is an immutable catalog entry
type Rule struct {
	ID              string    `json:"id"`
	Category        Category  `json:"category"`
	Severity        Severity  `json:"severity"`
	Weight          int       `json:"weight"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Recommendations []string  `json:"recommendations"`
	Check           CheckFunc `json:"-"`
}

// Issue is produced for every failed rule
type Issue struct {
	ID          string   `json:"id"`
	Category    Category `json:"category"`
	Severity    Severity `json:"severity"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Message     string   `json:"message,omitempty"`
	Impact      int      `json:"impact"`
}

// CategoryScore is the per-category breakdown
type CategoryScore struct {
	Score    int `json:"score"`
	MaxScore int `json:"maxScore"`
	Passed   int `json:"passed"`
	Failed   int `json:"failed"`
}

// RuleResult is the outcome of one executed rule
type RuleResult struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	Outcome
}

// Evaluation is the aggregate of one engine run
type Evaluation struct {
	Score           int                        `json:"score"`
	MaxScore        int                        `json:"maxScore"`
	Percentage      int                        `json:"percentage"`
	Grade           string                     `json:"grade"`
	PassedRules     int                        `json:"passedRules"`
	FailedRules     int                        `json:"failedRules"`
	Warnings        int                        `json:"warnings"`
	Issues          []Issue                    `json:"issues"`
	CategoryScores  map[Category]CategoryScore `json:"categoryScores"`
	Recommendations []string                   `json:"recommendations"`
	Results         []RuleResult               `json:"results"`
	Skipped         []string                   `json:"skipped"` // rules excluded after a failing check
}

// RuleExecutionError reports a rule check that panicked; the rule is left out of the run
type RuleExecutionError struct {
	RuleID string
	Cause  error
}

func (e *RuleExecutionError) Error() string {
	return fmt.Sprintf("rule %s failed: %v", e.RuleID, e.Cause)
}

func (e *RuleExecutionError) Unwrap() error {
	return e.Cause
}

func pass(format string, args ...any) Outcome {
	return Outcome{Passed: true, Message: fmt.Sprintf(format, args...)}
}

func fail(format string, args ...any) Outcome {
	return Outcome{Passed: false, Message: fmt.Sprintf(format, args...)}
}

// warn passes the rule but flags it for attention
func warn(format string, args ...any) Outcome {
	return Outcome{Passed: true, Warning: true, Message: fmt.Sprintf(format, args...)}
}
