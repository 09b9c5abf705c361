// Package recommend turns failed rules into prioritized, actionable recommendations
// with effort and impact estimates.
package recommend

import (
	"fmt"

	"github.com/seo-optimizer/content-analyzer/rules"
)

// Priority mirrors the severity of the rule that produced a recommendation
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Priorities lists priorities from most to least urgent
var Priorities = []Priority{PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow}

func (p Priority) rank() int {
	return rules.Severity(p).Rank()
}

// Effort is a coarse bucket for how much work a fix takes
type Effort string

const (
	EffortQuick       Effort = "quick"
	EffortModerate    Effort = "moderate"
	EffortSignificant Effort = "significant"
)

// Efforts lists effort buckets from cheapest to most expensive
var Efforts = []Effort{EffortQuick, EffortModerate, EffortSignificant}

// ActionType classifies an action by the verb it asks for
type ActionType string

const (
	ActionAdd      ActionType = "add"
	ActionRemove   ActionType = "remove"
	ActionUpdate   ActionType = "update"
	ActionOptimize ActionType = "optimize"
	ActionVerify   ActionType = "verify"
	ActionGeneral  ActionType = "general"
)

// Status tracks what the user did with a recommendation
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusDismissed  Status = "dismissed"
)

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusDismissed:
		return true
	}
	return false
}

// Action is one concrete step, numbered from 1. Specific actions are computed from the page itself.
type Action struct {
	Step     int        `json:"step"`
	Type     ActionType `json:"type"`
	Text     string     `json:"text"`
	Specific bool       `json:"specific"`
}

// ImpactEstimate projects the score after fixing a single issue
type ImpactEstimate struct {
	CurrentScore        int    `json:"currentScore"`
	CurrentPercentage   int    `json:"currentPercentage"`
	ScoreIncrease       int    `json:"scoreIncrease"`
	ProjectedScore      int    `json:"projectedScore"`
	ProjectedPercentage int    `json:"projectedPercentage"`
	PercentageIncrease  int    `json:"percentageIncrease"`
	RankingImpact       string `json:"rankingImpact"`
}

// Example shows a curated before/after pair
type Example struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

// Resource is a reference link
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Recommendation is built for every issue of an evaluation
type Recommendation struct {
	ID             string         `json:"id"`
	Category       rules.Category `json:"category"`
	CategoryLabel  string         `json:"categoryLabel"`
	Priority       Priority       `json:"priority"`
	PriorityLabel  string         `json:"priorityLabel"`
	Title          string         `json:"title"`
	Message        string         `json:"message,omitempty"`
	Actions        []Action       `json:"actions"`
	Effort         Effort         `json:"effort"`
	EffortLabel    string         `json:"effortLabel"`
	EstimatedTime  string         `json:"estimatedTime"`
	ImpactEstimate ImpactEstimate `json:"impactEstimate"`
	Example        *Example       `json:"example"`
	Why            string         `json:"why"`
	Resources      []Resource     `json:"resources"`
	Status         Status         `json:"status"`
	StatusLabel    string         `json:"statusLabel"`
}

// Summary aggregates a report
type Summary struct {
	Total               int              `json:"total"`
	ByPriority          map[Priority]int `json:"byPriority"`
	ByEffort            map[Effort]int   `json:"byEffort"`
	QuickWins           int              `json:"quickWins"`
	CurrentScore        int              `json:"currentScore"`
	MaxScore            int              `json:"maxScore"`
	CurrentPercentage   int              `json:"currentPercentage"`
	CurrentGrade        string           `json:"currentGrade"`
	PotentialScore      int              `json:"potentialScore"`
	PotentialPercentage int              `json:"potentialPercentage"`
	PotentialGrade      string           `json:"potentialGrade"`
}

// Report is the engine's full output. The groupings and quick wins share pointers with
// Recommendations, so status and label changes show up everywhere.
type Report struct {
	Language        string                               `json:"language"`
	Recommendations []*Recommendation                    `json:"recommendations"`
	Summary         Summary                              `json:"summary"`
	ByPriority      map[Priority][]*Recommendation       `json:"byPriority"`
	ByCategory      map[rules.Category][]*Recommendation `json:"byCategory"`
	ByEffort        map[Effort][]*Recommendation         `json:"byEffort"`
	QuickWins       []*Recommendation                    `json:"quickWins"`
}

// Clone returns a deep copy whose recommendations can change status or labels
// without affecting r
func (r *Report) Clone() *Report {
	if r == nil {
		return nil
	}
	recs := make([]*Recommendation, len(r.Recommendations))
	for i, rec := range r.Recommendations {
		c := *rec
		c.Actions = append([]Action(nil), rec.Actions...)
		c.Resources = append([]Resource{}, rec.Resources...)
		if rec.Example != nil {
			ex := *rec.Example
			c.Example = &ex
		}
		recs[i] = &c
	}

	clone := &Report{Language: r.Language, Summary: r.Summary, Recommendations: recs}
	clone.Summary.ByPriority = copyCounts(r.Summary.ByPriority)
	clone.Summary.ByEffort = copyCounts(r.Summary.ByEffort)
	clone.group()
	return clone
}

func copyCounts[K comparable](m map[K]int) map[K]int {
	out := make(map[K]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// group fills the groupings and quick wins from Recommendations, keeping their order
func (r *Report) group() {
	r.ByPriority = make(map[Priority][]*Recommendation)
	r.ByCategory = make(map[rules.Category][]*Recommendation)
	r.ByEffort = make(map[Effort][]*Recommendation)
	r.QuickWins = []*Recommendation{}

	for _, rec := range r.Recommendations {
		r.ByPriority[rec.Priority] = append(r.ByPriority[rec.Priority], rec)
		r.ByCategory[rec.Category] = append(r.ByCategory[rec.Category], rec)
		r.ByEffort[rec.Effort] = append(r.ByEffort[rec.Effort], rec)

		if len(r.QuickWins) < MaxQuickWins && isQuickWin(rec) {
			r.QuickWins = append(r.QuickWins, rec)
		}
	}
}

// Find returns the recommendation for a rule id
func (r *Report) Find(id string) (*Recommendation, bool) {
	for _, rec := range r.Recommendations {
		if rec.ID == id {
			return rec, true
		}
	}
	return nil, false
}

// SetStatus records what the user did with a recommendation
func (r *Report) SetStatus(id string, status Status) error {
	if !status.Valid() {
		return fmt.Errorf("unknown status %q", status)
	}
	rec, ok := r.Find(id)
	if !ok {
		return fmt.Errorf("no recommendation for rule %q", id)
	}
	rec.Status = status
	rec.StatusLabel = labelsFor(r.Language).status[status]
	return nil
}
