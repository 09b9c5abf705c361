package rules

import (
	"fmt"
	"math"
	"sort"

	"github.com/seo-optimizer/content-analyzer/logging"
)

// ErrorHook receives every rule check that failed during a run
type ErrorHook func(err *RuleExecutionError)

// Engine evaluates a rule set against pages. The rule set is fixed at construction and
// shared read-only between concurrent evaluations.
type Engine struct {
	rules   []Rule
	logger  logging.Logger
	onError ErrorHook
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the logger used to report failing rule checks
func WithLogger(logger logging.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithErrorHook registers a callback for failing rule checks
func WithErrorHook(hook ErrorHook) Option {
	return func(e *Engine) {
		e.onError = hook
	}
}

// NewEngine creates an engine over rules; a nil rule set selects the default catalog
func NewEngine(rules []Rule, opts ...Option) *Engine {
	if rules == nil {
		rules = DefaultRules()
	}
	e := &Engine{
		rules:  append([]Rule(nil), rules...),
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rules returns a copy of the engine's rule set
func (e *Engine) Rules() []Rule {
	return append([]Rule(nil), e.rules...)
}

// Rule looks a rule up by id
func (e *Engine) Rule(id string) (Rule, bool) {
	return Lookup(e.rules, id)
}

// Evaluate runs the rule set against rules with a default engine
func Evaluate(page *Page, rules []Rule) *Evaluation {
	return NewEngine(rules).Evaluate(page)
}

// Evaluate runs every rule category by category, in declaration order within a category.
// A rule whose check panics is logged, reported to the error hook and left out of both
// score and maxScore; the remaining rules still run.
func (e *Engine) Evaluate(page *Page) *Evaluation {
	if page == nil {
		page = NewPage(nil, "", "", nil, "", "")
	}

	ev := &Evaluation{
		Issues:          []Issue{},
		CategoryScores:  make(map[Category]CategoryScore),
		Recommendations: []string{},
		Results:         []RuleResult{},
		Skipped:         []string{},
	}

	for _, rule := range orderByCategory(e.rules) {
		outcome, err := e.run(rule, page)
		if err != nil {
			ev.Skipped = append(ev.Skipped, rule.ID)
			continue
		}

		cs := ev.CategoryScores[rule.Category]
		ev.MaxScore += rule.Weight
		cs.MaxScore += rule.Weight

		if outcome.Passed {
			ev.Score += rule.Weight
			cs.Score += rule.Weight
			cs.Passed++
			ev.PassedRules++
		} else {
			cs.Failed++
			ev.FailedRules++
			ev.Issues = append(ev.Issues, Issue{
				ID:          rule.ID,
				Category:    rule.Category,
				Severity:    rule.Severity,
				Title:       rule.Title,
				Description: rule.Description,
				Message:     outcome.Message,
				Impact:      rule.Weight,
			})
			ev.Recommendations = append(ev.Recommendations, rule.Recommendations...)
		}
		if outcome.Warning {
			ev.Warnings++
		}

		ev.CategoryScores[rule.Category] = cs
		ev.Results = append(ev.Results, RuleResult{ID: rule.ID, Category: rule.Category, Outcome: outcome})
	}

	SortIssues(ev.Issues)
	ev.Percentage = Percentage(ev.Score, ev.MaxScore)
	ev.Grade = Grade(ev.Percentage)
	return ev
}

// run executes one check, turning a panic into a RuleExecutionError
func (e *Engine) run(rule Rule, page *Page) (outcome Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				cause = fmt.Errorf("%v", r)
			}
			ruleErr := &RuleExecutionError{RuleID: rule.ID, Cause: cause}
			e.logger.Warn("rule check failed, excluding rule from score",
				"rule_id", rule.ID, "category", string(rule.Category), "error", cause.Error())
			if e.onError != nil {
				e.onError(ruleErr)
			}
			err = ruleErr
		}
	}()

	if rule.Check == nil {
		panic(fmt.Errorf("rule has no check"))
	}
	return rule.Check(page), nil
}

// orderByCategory returns rules grouped by category in Categories order, keeping
// declaration order inside each group; unknown categories follow in first-seen order
func orderByCategory(rules []Rule) []Rule {
	order := make(map[Category]int, len(Categories))
	for i, c := range Categories {
		order[c] = i
	}
	next := len(Categories)
	for _, r := range rules {
		if _, ok := order[r.Category]; !ok {
			order[r.Category] = next
			next++
		}
	}

	ordered := append([]Rule(nil), rules...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return order[ordered[i].Category] < order[ordered[j].Category]
	})
	return ordered
}

// SortIssues orders issues by severity, then by descending impact
func SortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		ri, rj := issues[i].Severity.Rank(), issues[j].Severity.Rank()
		if ri != rj {
			return ri < rj
		}
		return issues[i].Impact > issues[j].Impact
	})
}

// Percentage returns round(score/maxScore*100), or 0 when maxScore is 0
func Percentage(score, maxScore int) int {
	if maxScore <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(maxScore) * 100))
}

// Grade maps a percentage to a letter: 90+ A, 80+ B, 70+ C, 60+ D, otherwise F
func Grade(percentage int) string {
	switch {
	case percentage >= 90:
		return "A"
	case percentage >= 80:
		return "B"
	case percentage >= 70:
		return "C"
	case percentage >= 60:
		return "D"
	default:
		return "F"
	}
}
