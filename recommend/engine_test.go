package recommend

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seo-optimizer/content-analyzer/content"
	"github.com/seo-optimizer/content-analyzer/rules"
)

const thinPage = `<html><body><p>Just a short paragraph.</p><img src="a.png"><img src="b.png"></body></html>`

func evaluate(t *testing.T, html, title, description string, kws []string) (*rules.Evaluation, *rules.Page) {
	t.Helper()
	page := rules.NewPage(content.NewParser(nil).Parse(html), title, description, kws, "en", "")
	return rules.NewEngine(nil).Evaluate(page), page
}

func TestGenerateThinPage(t *testing.T) {
	ev, page := evaluate(t, thinPage, "SEO", "Short desc", nil)
	report := NewEngine(nil, nil).Generate(ev, page)

	require.Len(t, report.Recommendations, len(ev.Issues))
	for _, id := range []string{"meta-title-length", "meta-description-length", "image-alt-text"} {
		_, ok := report.Find(id)
		assert.True(t, ok, id)
	}
	assert.Contains(t, []string{"D", "F"}, report.Summary.CurrentGrade)

	var quick []string
	for _, rec := range report.QuickWins {
		quick = append(quick, rec.ID)
	}
	assert.Contains(t, quick, "meta-viewport")

	title, _ := report.Find("meta-title-length")
	last := title.Actions[len(title.Actions)-1]
	assert.True(t, last.Specific)
	assert.Equal(t, ActionAdd, last.Type)
	assert.Contains(t, last.Text, "Add 27 more characters to the title")

	alt, _ := report.Find("image-alt-text")
	assert.Contains(t, alt.Actions[len(alt.Actions)-1].Text, "2 of 2 images")
}

func TestRecommendationConsistency(t *testing.T) {
	pages := []struct {
		name  string
		html  string
		title string
		desc  string
		kws   []string
	}{
		{"Empty", "", "", "", nil},
		{"Thin", thinPage, "SEO", "Short desc", []string{"seo"}},
		{"Stuffed", "<h1>seo</h1><p>seo seo seo seo seo.</p>", "seo", "", []string{"seo"}},
	}

	for _, tt := range pages {
		t.Run(tt.name, func(t *testing.T) {
			ev, page := evaluate(t, tt.html, tt.title, tt.desc, tt.kws)
			report := NewEngine(nil, nil).Generate(ev, page)

			assert.Len(t, report.Recommendations, len(ev.Issues))
			assert.Equal(t, len(ev.Issues), report.Summary.Total)

			assert.LessOrEqual(t, len(report.QuickWins), MaxQuickWins)
			for _, rec := range report.QuickWins {
				assert.Contains(t, report.Recommendations, rec)
				assert.Equal(t, EffortQuick, rec.Effort)
				assert.Contains(t, []Priority{PriorityCritical, PriorityHigh}, rec.Priority)
			}

			for i := 1; i < len(report.Recommendations); i++ {
				prev, cur := report.Recommendations[i-1], report.Recommendations[i]
				require.LessOrEqual(t, prev.Priority.rank(), cur.Priority.rank())
				if prev.Priority == cur.Priority {
					assert.GreaterOrEqual(t, prev.ImpactEstimate.ScoreIncrease, cur.ImpactEstimate.ScoreIncrease)
				}
			}

			total := 0
			for _, group := range report.ByPriority {
				total += len(group)
			}
			assert.Equal(t, len(report.Recommendations), total)
			assert.Equal(t, ev.MaxScore, report.Summary.PotentialScore)
			assert.Equal(t, 100, report.Summary.PotentialPercentage)
			assert.Equal(t, "A", report.Summary.PotentialGrade)
		})
	}
}

func TestImpactEstimate(t *testing.T) {
	ev := &rules.Evaluation{
		Score:      50,
		MaxScore:   100,
		Percentage: 50,
		Issues:     []rules.Issue{{ID: "meta-title-length", Severity: rules.SeverityHigh}},
	}
	report := NewEngine(nil, nil).Generate(ev, nil)
	require.Len(t, report.Recommendations, 1)

	impact := report.Recommendations[0].ImpactEstimate
	assert.Equal(t, 50, impact.CurrentScore)
	assert.Equal(t, 50, impact.CurrentPercentage)
	assert.Equal(t, 8, impact.ScoreIncrease)
	assert.Equal(t, 58, impact.ProjectedScore)
	assert.Equal(t, 58, impact.ProjectedPercentage)
	assert.Equal(t, 8, impact.PercentageIncrease)
	assert.NotEmpty(t, impact.RankingImpact)
}

func TestGenerateSkipsUnknownRules(t *testing.T) {
	ev := &rules.Evaluation{Issues: []rules.Issue{{ID: "no-such-rule"}}}
	report := NewEngine(nil, nil).Generate(ev, nil)
	assert.Empty(t, report.Recommendations)
	assert.NotNil(t, report.QuickWins)

	assert.NotNil(t, NewEngine(nil, nil).Generate(nil, nil))
}

func TestClassifyAction(t *testing.T) {
	tests := []struct {
		text string
		want ActionType
	}{
		{"Add a viewport meta tag", ActionAdd},
		{"Create an XML sitemap", ActionAdd},
		{"Remove duplicate headings", ActionRemove},
		{"Delete empty links", ActionRemove},
		{"Update the title", ActionUpdate},
		{"Change the slug", ActionUpdate},
		{"Optimize images", ActionOptimize},
		{"Improve readability", ActionOptimize},
		{"Verify the canonical URL", ActionVerify},
		{"Check the robots directive", ActionVerify},
		{"Use HTTPS everywhere", ActionGeneral},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyAction(tt.text), tt.text)
	}
}

func TestEffortAndTime(t *testing.T) {
	catalog := rules.DefaultRules()
	lookup := func(id string) rules.Rule {
		r, ok := rules.Lookup(catalog, id)
		require.True(t, ok, id)
		return r
	}

	assert.Equal(t, EffortSignificant, effortFor(lookup("content-word-count")))
	assert.Equal(t, EffortQuick, effortFor(lookup("meta-viewport")))
	assert.Equal(t, EffortQuick, effortFor(lookup("meta-title-exists")))
	assert.Equal(t, EffortSignificant, effortFor(lookup("readability-score")))
	assert.Equal(t, EffortModerate, effortFor(lookup("meta-title-length")))

	// the time hint is finer than the effort bucket
	assert.Equal(t, timeQuick, estimatedTime("meta-title-length"))
	assert.Equal(t, timeModerate, estimatedTime("image-alt-text"))
	assert.Equal(t, timeSignificant, estimatedTime("content-word-count"))
}

func TestRecommendationShape(t *testing.T) {
	ev, page := evaluate(t, "", "", "", []string{"seo"})
	report := NewEngine(nil, nil).Generate(ev, page)

	viewport, ok := report.Find("meta-viewport")
	require.True(t, ok)
	require.NotNil(t, viewport.Example)
	assert.NotEmpty(t, viewport.Resources)

	kw, ok := report.Find("keywords-in-title")
	require.True(t, ok)
	assert.Nil(t, kw.Example)
	assert.NotNil(t, kw.Resources)
	assert.Empty(t, kw.Resources)

	rule, _ := rules.Lookup(rules.DefaultRules(), "keywords-in-h1")
	h1, _ := report.Find("keywords-in-h1")
	assert.Equal(t, rule.Description, h1.Why)

	raw, err := json.Marshal(kw)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"example":null`)
	assert.Contains(t, string(raw), `"resources":[]`)

	readability, ok := report.Find("readability-score")
	require.True(t, ok)
	assert.Equal(t, readabilityResources, readability.Resources)

	for _, rec := range report.Recommendations {
		require.NotEmpty(t, rec.Actions, rec.ID)
		for i, action := range rec.Actions {
			assert.Equal(t, i+1, action.Step, "%s action %d", rec.ID, i)
		}
	}
	assert.Contains(t, string(raw), `"step":1`)
}

func TestLanguage(t *testing.T) {
	engine := NewEngine(nil, nil)
	ev, page := evaluate(t, thinPage, "SEO", "Short desc", nil)
	report := engine.Generate(ev, page)

	viewport, _ := report.Find("meta-viewport")
	assert.Equal(t, "High", viewport.PriorityLabel)
	assert.Equal(t, "Pending", viewport.StatusLabel)

	require.NoError(t, engine.SetLanguage(Greek))
	engine.Relabel(report)
	assert.Equal(t, Greek, report.Language)
	assert.Equal(t, "Υψηλή", viewport.PriorityLabel)
	assert.Equal(t, "Γρήγορη διόρθωση", viewport.EffortLabel)
	assert.Equal(t, "Μετα-ετικέτες", viewport.CategoryLabel)
	assert.Equal(t, "Υψηλή", report.QuickWins[0].PriorityLabel)

	assert.Error(t, engine.SetLanguage("fr"))
	assert.Equal(t, Greek, engine.Language())
}

func TestSetStatus(t *testing.T) {
	ev, page := evaluate(t, thinPage, "SEO", "Short desc", nil)
	report := NewEngine(nil, nil).Generate(ev, page)

	require.NoError(t, report.SetStatus("meta-viewport", StatusCompleted))
	rec := report.ByCategory[rules.CategoryMeta]
	var found bool
	for _, r := range rec {
		if r.ID == "meta-viewport" {
			found = true
			assert.Equal(t, StatusCompleted, r.Status)
			assert.Equal(t, "Completed", r.StatusLabel)
		}
	}
	assert.True(t, found)

	assert.Error(t, report.SetStatus("meta-viewport", "archived"))
	assert.Error(t, report.SetStatus("missing", StatusDismissed))
}

func TestReportClone(t *testing.T) {
	ev, page := evaluate(t, thinPage, "SEO", "Short desc", nil)
	report := NewEngine(nil, nil).Generate(ev, page)
	clone := report.Clone()

	require.Len(t, clone.Recommendations, len(report.Recommendations))
	assert.Len(t, clone.QuickWins, len(report.QuickWins))
	assert.Equal(t, report.Summary, clone.Summary)

	require.NoError(t, clone.SetStatus("meta-viewport", StatusDismissed))
	clone.QuickWins[0].Actions[0].Text = "changed"

	original, _ := report.Find("meta-viewport")
	assert.Equal(t, StatusPending, original.Status)
	assert.NotEqual(t, "changed", report.QuickWins[0].Actions[0].Text)

	// groupings of the clone point at the clone's recommendations
	for _, rec := range clone.ByCategory[rules.CategoryMeta] {
		if rec.ID == "meta-viewport" {
			assert.Equal(t, StatusDismissed, rec.Status)
		}
	}
	assert.Nil(t, (*Report)(nil).Clone())
}
