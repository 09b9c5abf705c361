package rules

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/seo-optimizer/content-analyzer/content"
	"github.com/seo-optimizer/content-analyzer/logging"
)

type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(msg string, args ...any) { m.Called(msg) }
func (m *MockLogger) Info(msg string, args ...any)  { m.Called(msg) }
func (m *MockLogger) Warn(msg string, args ...any)  { m.Called(msg) }
func (m *MockLogger) Error(msg string, args ...any) { m.Called(msg) }
func (m *MockLogger) With(args ...any) logging.Logger {
	return m
}

func constant(o Outcome) CheckFunc {
	return func(*Page) Outcome { return o }
}

func check(t *testing.T, id string, page *Page) Outcome {
	t.Helper()
	rule, ok := Lookup(DefaultRules(), id)
	require.True(t, ok, "rule %s", id)
	return rule.Check(page)
}

func parse(html string) *content.ParsedContent {
	return content.NewParser(nil).ParseWithBase(html, "https://example.com/")
}

func TestGrade(t *testing.T) {
	tests := []struct {
		percentage int
		want       string
	}{
		{100, "A"}, {90, "A"}, {89, "B"}, {80, "B"}, {79, "C"}, {70, "C"},
		{69, "D"}, {60, "D"}, {59, "F"}, {0, "F"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Grade(tt.percentage), "percentage %d", tt.percentage)
	}
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0, Percentage(0, 0))
	assert.Equal(t, 50, Percentage(5, 10))
	assert.Equal(t, 67, Percentage(2, 3))
	assert.Equal(t, 100, Percentage(7, 7))
}

func TestCatalog(t *testing.T) {
	catalog := DefaultRules()
	assert.Len(t, catalog, 42)

	ids := make(map[string]bool)
	categories := make(map[Category]int)
	for _, r := range catalog {
		assert.False(t, ids[r.ID], "duplicate id %s", r.ID)
		ids[r.ID] = true
		categories[r.Category]++

		assert.Positive(t, r.Weight, r.ID)
		assert.True(t, r.Severity.Valid(), r.ID)
		assert.NotEmpty(t, r.Title, r.ID)
		assert.NotEmpty(t, r.Description, r.ID)
		assert.NotEmpty(t, r.Recommendations, r.ID)
		assert.NotNil(t, r.Check, r.ID)
		assert.True(t, strings.HasPrefix(r.ID, string(r.Category)) || r.ID == "image-alt-text", r.ID)
	}
	for _, c := range Categories {
		assert.Positive(t, categories[c], c)
	}

	t.Run("CopiesAreIndependent", func(t *testing.T) {
		first := DefaultRules()
		first[0].Weight = 99
		first[0].Recommendations[0] = "changed"
		second := DefaultRules()
		assert.NotEqual(t, 99, second[0].Weight)
		assert.NotEqual(t, "changed", second[0].Recommendations[0])
	})
}

func TestEvaluateScoreBounds(t *testing.T) {
	pages := []*Page{
		nil,
		NewPage(nil, "", "", nil, "en", ""),
		NewPage(parse("<p>Tiny.</p>"), "SEO", "Short desc", []string{"seo"}, "en", "http://example.com/A_Page"),
		NewPage(parse(richPage), richTitle, richDescription, []string{"content strategy"}, "en", "https://example.com/content-strategy"),
	}

	engine := NewEngine(nil)
	for i, page := range pages {
		ev := engine.Evaluate(page)
		assert.GreaterOrEqual(t, ev.Score, 0, "page %d", i)
		assert.LessOrEqual(t, ev.Score, ev.MaxScore, "page %d", i)
		assert.GreaterOrEqual(t, ev.Percentage, 0, "page %d", i)
		assert.LessOrEqual(t, ev.Percentage, 100, "page %d", i)
		assert.Equal(t, Grade(ev.Percentage), ev.Grade)
		assert.Equal(t, len(ev.Issues), ev.FailedRules)
		assert.Equal(t, 42, ev.PassedRules+ev.FailedRules)
		assert.Equal(t, MaxScore(DefaultRules()), ev.MaxScore)

		sum := 0
		for _, cs := range ev.CategoryScores {
			sum += cs.Score
			assert.LessOrEqual(t, cs.Score, cs.MaxScore)
		}
		assert.Equal(t, ev.Score, sum)
	}
}

func TestEvaluateRuleExecutionIsolation(t *testing.T) {
	logger := new(MockLogger)
	logger.On("Warn", "rule check failed, excluding rule from score").Times(2)

	var hooked []*RuleExecutionError
	ruleSet := []Rule{
		{ID: "first", Category: CategoryMeta, Severity: SeverityHigh, Weight: 5, Check: constant(pass("ok"))},
		{ID: "broken", Category: CategoryMeta, Severity: SeverityCritical, Weight: 10, Check: func(p *Page) Outcome {
			panic("boom")
		}},
		{ID: "after", Category: CategoryMeta, Severity: SeverityLow, Weight: 3, Check: constant(fail("nope"))},
		{ID: "no-check", Category: CategoryContent, Severity: SeverityLow, Weight: 4},
	}

	engine := NewEngine(ruleSet, WithLogger(logger), WithErrorHook(func(err *RuleExecutionError) {
		hooked = append(hooked, err)
	}))

	ev := engine.Evaluate(NewPage(nil, "", "", nil, "", ""))

	assert.Equal(t, 5, ev.Score)
	assert.Equal(t, 8, ev.MaxScore)
	assert.Equal(t, 63, ev.Percentage)
	assert.Equal(t, []string{"broken", "no-check"}, ev.Skipped)
	require.Len(t, ev.Issues, 1)
	assert.Equal(t, "after", ev.Issues[0].ID)
	assert.NotContains(t, ev.CategoryScores, CategoryContent)

	require.Len(t, hooked, 2)
	assert.Equal(t, "broken", hooked[0].RuleID)
	var ruleErr *RuleExecutionError
	assert.True(t, errors.As(error(hooked[0]), &ruleErr))
	assert.Contains(t, hooked[0].Error(), "rule broken failed")
	logger.AssertExpectations(t)
}

func TestEvaluateOrdering(t *testing.T) {
	ruleSet := []Rule{
		{ID: "k1", Category: CategoryKeywords, Severity: SeverityLow, Weight: 1, Check: constant(fail(""))},
		{ID: "m1", Category: CategoryMeta, Severity: SeverityMedium, Weight: 2, Check: constant(fail(""))},
		{ID: "x1", Category: "custom", Severity: SeverityHigh, Weight: 1, Check: constant(pass(""))},
		{ID: "m2", Category: CategoryMeta, Severity: SeverityMedium, Weight: 6, Check: constant(fail(""))},
		{ID: "c1", Category: CategoryContent, Severity: SeverityCritical, Weight: 1, Check: constant(fail(""))},
		{ID: "t1", Category: CategoryTechnical, Severity: "unknown", Weight: 3, Check: constant(fail(""))},
	}
	ev := Evaluate(NewPage(nil, "", "", nil, "", ""), ruleSet)

	var executed []string
	for _, r := range ev.Results {
		executed = append(executed, r.ID)
	}
	assert.Equal(t, []string{"m1", "m2", "c1", "t1", "k1", "x1"}, executed)

	var issues []string
	for _, i := range ev.Issues {
		issues = append(issues, i.ID)
	}
	// severity first, then impact; unknown severity ranks with medium
	assert.Equal(t, []string{"c1", "m2", "t1", "m1", "k1"}, issues)

	again := Evaluate(NewPage(nil, "", "", nil, "", ""), ruleSet)
	assert.Equal(t, ev, again)
}

func TestEvaluateWarnings(t *testing.T) {
	ruleSet := []Rule{
		{ID: "a", Category: CategoryMeta, Severity: SeverityLow, Weight: 1, Check: constant(warn("passed with warning"))},
		{ID: "b", Category: CategoryMeta, Severity: SeverityLow, Weight: 1, Check: constant(Outcome{Passed: false, Warning: true})},
		{ID: "c", Category: CategoryMeta, Severity: SeverityLow, Weight: 1, Check: constant(pass(""))},
	}
	ev := Evaluate(nil, ruleSet)
	assert.Equal(t, 2, ev.Warnings)
	assert.Equal(t, 2, ev.PassedRules)
	assert.Equal(t, 1, ev.FailedRules)
}

func TestEvaluateCollectsStaticRecommendations(t *testing.T) {
	ev := NewEngine(nil).Evaluate(NewPage(nil, "", "", nil, "en", ""))
	titleRule, _ := Lookup(DefaultRules(), "meta-title-exists")
	assert.Subset(t, ev.Recommendations, titleRule.Recommendations)
	assert.Equal(t, "F", ev.Grade)
}

func TestCustomize(t *testing.T) {
	base := DefaultRules()

	custom, err := Customize(base, Overrides{
		Disabled:   []string{"meta-open-graph"},
		Weights:    map[string]int{"meta-title-length": 12},
		Severities: map[string]Severity{"content-freshness": SeverityHigh},
	})
	require.NoError(t, err)

	assert.Len(t, custom, len(base)-1)
	_, found := Lookup(custom, "meta-open-graph")
	assert.False(t, found)

	titleLength, _ := Lookup(custom, "meta-title-length")
	assert.Equal(t, 12, titleLength.Weight)
	freshness, _ := Lookup(custom, "content-freshness")
	assert.Equal(t, SeverityHigh, freshness.Severity)

	original, _ := Lookup(base, "meta-title-length")
	assert.Equal(t, 8, original.Weight)

	t.Run("Errors", func(t *testing.T) {
		_, err := Customize(base, Overrides{Disabled: []string{"nope"}})
		assert.ErrorContains(t, err, "unknown rule")
		_, err = Customize(base, Overrides{Weights: map[string]int{"meta-charset": 0}})
		assert.ErrorContains(t, err, "must be positive")
		_, err = Customize(base, Overrides{Severities: map[string]Severity{"meta-charset": "urgent"}})
		assert.ErrorContains(t, err, "unknown severity")
	})
}

func TestRichPagePassesEveryRule(t *testing.T) {
	page := NewPage(parse(richPage), richTitle, richDescription, []string{"content strategy", "editorial calendar"}, "en", "https://example.com/content-strategy")
	ev := NewEngine(nil).Evaluate(page)

	for _, issue := range ev.Issues {
		t.Errorf("unexpected issue %s: %s", issue.ID, issue.Message)
	}
	assert.Equal(t, 100, ev.Percentage)
	assert.Equal(t, "A", ev.Grade)
	assert.Zero(t, ev.Warnings)
	assert.False(t, page.Readability().Meta.IsInsufficient)
}

func TestKeywordRulesWithoutKeywords(t *testing.T) {
	page := NewPage(parse(richPage), richTitle, richDescription, nil, "en", "https://example.com/content-strategy")
	ev := NewEngine(nil).Evaluate(page)

	for _, r := range ev.Results {
		if r.Category != CategoryKeywords {
			continue
		}
		if r.ID == "keywords-defined" {
			assert.False(t, r.Passed)
			continue
		}
		assert.True(t, r.Passed, r.ID)
		assert.True(t, r.Warning, r.ID)
	}
}

func TestRuleChecks(t *testing.T) {
	t.Run("TitleLength", func(t *testing.T) {
		out := check(t, "meta-title-length", NewPage(nil, "SEO", "", nil, "en", ""))
		assert.False(t, out.Passed)
		assert.Contains(t, out.Message, "3 characters")
		assert.True(t, check(t, "meta-title-length", NewPage(nil, richTitle, "", nil, "en", "")).Passed)
	})

	t.Run("ImageAltText", func(t *testing.T) {
		page := NewPage(parse(`<img src="a.png"><img src="b.png" alt="">`), "", "", nil, "en", "")
		out := check(t, "image-alt-text", page)
		assert.False(t, out.Passed)
		assert.Contains(t, out.Message, "2 of 2")
	})

	t.Run("HTTPSWithoutURL", func(t *testing.T) {
		out := check(t, "technical-https", NewPage(nil, "", "", nil, "en", ""))
		assert.True(t, out.Passed)
		assert.True(t, out.Warning)
		assert.False(t, check(t, "technical-https", NewPage(nil, "", "", nil, "en", "http://example.com/")).Passed)
	})

	t.Run("HeadingHierarchy", func(t *testing.T) {
		assert.False(t, check(t, "content-heading-hierarchy", NewPage(parse("<h1>A</h1><h3>B</h3>"), "", "", nil, "en", "")).Passed)
		assert.True(t, check(t, "content-heading-hierarchy", NewPage(parse("<h1>A</h1><h2>B</h2><h3>C</h3>"), "", "", nil, "en", "")).Passed)
	})

	t.Run("Robots", func(t *testing.T) {
		page := NewPage(parse(`<head><meta name="robots" content="noindex, nofollow"></head>`), "", "", nil, "en", "")
		assert.False(t, check(t, "meta-robots-indexable", page).Passed)
	})

	t.Run("KeywordDensityTooHigh", func(t *testing.T) {
		page := NewPage(parse("<p>seo seo seo tips for seo</p>"), "", "", []string{"seo"}, "en", "")
		out := check(t, "keywords-density", page)
		assert.False(t, out.Passed)
		assert.Contains(t, out.Message, "above")
	})

	t.Run("GreekParagraphLimit", func(t *testing.T) {
		sentence := "Αυτή είναι μια απλή πρόταση με δέκα λέξεις εδώ μέσα. "
		html := "<p>" + strings.Repeat(sentence, 11) + "</p>"
		assert.False(t, check(t, "readability-paragraph-length", NewPage(parse(html), "", "", nil, "el", "")).Passed)
		assert.True(t, check(t, "readability-paragraph-length", NewPage(parse(html), "", "", nil, "en", "")).Passed)
	})
}
