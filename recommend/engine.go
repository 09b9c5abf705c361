package recommend

import (
	"fmt"
	"sort"
	"sync"

	"github.com/seo-optimizer/content-analyzer/logging"
	"github.com/seo-optimizer/content-analyzer/rules"
)

// MaxQuickWins caps the quick win list
const MaxQuickWins = 5

// Engine builds recommendation reports. It is safe for concurrent use; only the
// display language is mutable.
type Engine struct {
	rules  map[string]rules.Rule
	logger logging.Logger

	mu       sync.RWMutex
	language string
}

// NewEngine creates an engine that resolves issues against ruleSet; nil selects the default catalog
func NewEngine(ruleSet []rules.Rule, logger logging.Logger) *Engine {
	if ruleSet == nil {
		ruleSet = rules.DefaultRules()
	}
	if logger == nil {
		logger = logging.Nop()
	}
	byID := make(map[string]rules.Rule, len(ruleSet))
	for _, r := range ruleSet {
		byID[r.ID] = r
	}
	return &Engine{rules: byID, logger: logger, language: English}
}

// SetLanguage switches the label table used by later reports and by Relabel
func (e *Engine) SetLanguage(lang string) error {
	if !Supported(lang) {
		return fmt.Errorf("unsupported language %q", lang)
	}
	e.mu.Lock()
	e.language = lang
	e.mu.Unlock()
	return nil
}

// Language returns the active display language
func (e *Engine) Language() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.language
}

// Relabel rewrites the display strings of an existing report in the active language
// without recomputing anything
func (e *Engine) Relabel(report *Report) {
	if report == nil {
		return
	}
	lang := e.Language()
	l := labelsFor(lang)
	for _, rec := range report.Recommendations {
		l.label(rec)
	}
	report.Language = lang
}

// Generate builds one recommendation per issue of ev. page supplies the current metadata
// for the specific actions and may be nil.
func (e *Engine) Generate(ev *rules.Evaluation, page *rules.Page) *Report {
	if ev == nil {
		ev = &rules.Evaluation{Grade: rules.Grade(0)}
	}
	lang := e.Language()
	l := labelsFor(lang)

	recs := make([]*Recommendation, 0, len(ev.Issues))
	for _, issue := range ev.Issues {
		rule, ok := e.rules[issue.ID]
		if !ok {
			e.logger.Debug("no rule for issue, skipping recommendation", "rule_id", issue.ID)
			continue
		}
		rec := e.build(rule, issue, ev, page)
		l.label(rec)
		recs = append(recs, rec)
	}

	sort.SliceStable(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if a.Priority.rank() != b.Priority.rank() {
			return a.Priority.rank() < b.Priority.rank()
		}
		return a.ImpactEstimate.ScoreIncrease > b.ImpactEstimate.ScoreIncrease
	})

	report := &Report{Language: lang, Recommendations: recs}
	report.group()
	report.Summary = summarize(ev, recs, len(report.QuickWins))
	return report
}

func isQuickWin(rec *Recommendation) bool {
	return rec.Effort == EffortQuick && (rec.Priority == PriorityCritical || rec.Priority == PriorityHigh)
}

func (e *Engine) build(rule rules.Rule, issue rules.Issue, ev *rules.Evaluation, page *rules.Page) *Recommendation {
	projected := ev.Score + rule.Weight
	projectedPct := rules.Percentage(projected, ev.MaxScore)

	return &Recommendation{
		ID:            rule.ID,
		Category:      rule.Category,
		Priority:      priorityFor(rule.Severity),
		Title:         rule.Title,
		Message:       issue.Message,
		Actions:       actionsFor(rule, page),
		Effort:        effortFor(rule),
		EstimatedTime: estimatedTime(rule.ID),
		ImpactEstimate: ImpactEstimate{
			CurrentScore:        ev.Score,
			CurrentPercentage:   ev.Percentage,
			ScoreIncrease:       rule.Weight,
			ProjectedScore:      projected,
			ProjectedPercentage: projectedPct,
			PercentageIncrease:  projectedPct - ev.Percentage,
		},
		Example:   exampleFor(rule.ID),
		Why:       whyFor(rule),
		Resources: resourcesFor(rule),
		Status:    StatusPending,
	}
}

func priorityFor(s rules.Severity) Priority {
	switch s {
	case rules.SeverityCritical:
		return PriorityCritical
	case rules.SeverityHigh:
		return PriorityHigh
	case rules.SeverityLow:
		return PriorityLow
	}
	return PriorityMedium
}

func summarize(ev *rules.Evaluation, recs []*Recommendation, quickWins int) Summary {
	s := Summary{
		Total:             len(recs),
		ByPriority:        make(map[Priority]int, len(Priorities)),
		ByEffort:          make(map[Effort]int, len(Efforts)),
		QuickWins:         quickWins,
		CurrentScore:      ev.Score,
		MaxScore:          ev.MaxScore,
		CurrentPercentage: ev.Percentage,
		CurrentGrade:      rules.Grade(ev.Percentage),
		PotentialScore:    ev.Score,
	}
	for _, p := range Priorities {
		s.ByPriority[p] = 0
	}
	for _, eff := range Efforts {
		s.ByEffort[eff] = 0
	}
	for _, rec := range recs {
		s.ByPriority[rec.Priority]++
		s.ByEffort[rec.Effort]++
		s.PotentialScore += rec.ImpactEstimate.ScoreIncrease
	}
	s.PotentialPercentage = rules.Percentage(s.PotentialScore, ev.MaxScore)
	s.PotentialGrade = rules.Grade(s.PotentialPercentage)
	return s
}
