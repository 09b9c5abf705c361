package readability

import "sort"

// RecommendationType ranks readability recommendations
type RecommendationType string

const (
	RecommendationCritical RecommendationType = "critical"
	RecommendationWarning  RecommendationType = "warning"
	RecommendationSuccess  RecommendationType = "success"
)

const (
	targetEase       = 60
	maxLongRatio     = 0.2
	maxComplexRatio  = 0.15
	thinContentWords = 300
	maxLongSentences = 0.25
)

// Recommendation is a threshold-based readability suggestion
type Recommendation struct {
	Type    RecommendationType `json:"type"`
	Title   string             `json:"title"`
	Message string             `json:"message"`
}

// GuidanceIssue is an SEO-framed readability problem
type GuidanceIssue struct {
	Code     string `json:"code"`
	Severity string `json:"severity"` // critical, high, medium or low
	Message  string `json:"message"`
}

// Advice is an action to take, ranked by priority
type Advice struct {
	Code     string `json:"code"`
	Priority string `json:"priority"` // critical, high, medium, low or maintenance
	Message  string `json:"message"`
}

// Guidance layers SEO-oriented issues and advice over the basic recommendations
type Guidance struct {
	Issues []GuidanceIssue `json:"issues"`
	Advice []Advice        `json:"advice"`
}

var rank = map[string]int{
	"critical":    0,
	"high":        1,
	"medium":      2,
	"low":         3,
	"maintenance": 4,
}

// recommendations applies the fixed thresholds; when none triggers a single success entry is returned
func recommendations(ease float64, totals Totals, st Structure, msg messages) []Recommendation {
	var recs []Recommendation

	if ease < targetEase {
		recs = append(recs, Recommendation{
			Type:    RecommendationCritical,
			Title:   msg.get("rec.ease.title"),
			Message: msg.get("rec.ease.message", ease),
		})
	}
	if st.Sentences.LongRatio > maxLongRatio {
		recs = append(recs, Recommendation{
			Type:    RecommendationWarning,
			Title:   msg.get("rec.long-sentences.title"),
			Message: msg.get("rec.long-sentences.message", st.Sentences.LongRatio*100),
		})
	}
	if totals.ComplexWordRatio > maxComplexRatio {
		recs = append(recs, Recommendation{
			Type:    RecommendationWarning,
			Title:   msg.get("rec.complex-words.title"),
			Message: msg.get("rec.complex-words.message", totals.ComplexWordRatio*100),
		})
	}
	if st.Paragraphs.Long > 0 {
		recs = append(recs, Recommendation{
			Type:    RecommendationWarning,
			Title:   msg.get("rec.long-paragraphs.title"),
			Message: msg.get("rec.long-paragraphs.message", st.Paragraphs.Long),
		})
	}

	if len(recs) == 0 {
		recs = append(recs, Recommendation{
			Type:    RecommendationSuccess,
			Title:   msg.get("rec.success.title"),
			Message: msg.get("rec.success.message"),
		})
	}
	return recs
}

// guidance builds the SEO issues and advice. Paragraph limits come from the language table.
func guidance(lang *Language, ease float64, totals Totals, st Structure, msg messages) Guidance {
	g := Guidance{Issues: []GuidanceIssue{}, Advice: []Advice{}}

	add := func(code, severity, issue, advice string) {
		g.Issues = append(g.Issues, GuidanceIssue{Code: code, Severity: severity, Message: issue})
		g.Advice = append(g.Advice, Advice{Code: code, Priority: severity, Message: advice})
	}

	switch {
	case ease < 30:
		add("very-difficult", "critical", msg.get("seo.very-difficult", ease), msg.get("advice.very-difficult"))
	case ease < 50:
		add("difficult", "high", msg.get("seo.difficult", ease), msg.get("advice.difficult"))
	case ease < targetEase:
		add("below-standard", "medium", msg.get("seo.below-standard", ease), msg.get("advice.below-standard"))
	}

	if totals.AvgWordsPerSentence > float64(lang.SEOSentenceWords) {
		add("sentence-length", "high",
			msg.get("seo.sentence-length", totals.AvgWordsPerSentence, lang.SEOSentenceWords),
			msg.get("advice.sentence-length"))
	}

	overLimit := 0
	for _, p := range st.Paragraphs.Items {
		if p.Words > lang.SEOParagraphWords {
			overLimit++
		}
	}
	if overLimit > 0 {
		add("paragraph-length", "medium",
			msg.get("seo.paragraph-length", overLimit, lang.SEOParagraphWords),
			msg.get("advice.paragraph-length", lang.SEOParagraphWords))
	}

	if totals.ComplexWordRatio > maxComplexRatio {
		add("complex-words", "medium", msg.get("seo.complex-words", totals.ComplexWordRatio*100), msg.get("advice.complex-words"))
	}
	if st.Sentences.Count > 0 && float64(st.Sentences.Long)/float64(st.Sentences.Count) > maxLongSentences {
		add("long-sentences", "medium", msg.get("seo.long-sentences", st.Sentences.Long), msg.get("advice.long-sentences"))
	}
	if totals.Words < thinContentWords {
		add("thin-content", "low", msg.get("seo.thin-content", totals.Words), msg.get("advice.thin-content"))
	}

	g.Advice = append(g.Advice, Advice{Code: "maintenance", Priority: "maintenance", Message: msg.get("advice.maintenance")})

	sort.SliceStable(g.Issues, func(i, j int) bool {
		return rank[g.Issues[i].Severity] < rank[g.Issues[j].Severity]
	})
	sort.SliceStable(g.Advice, func(i, j int) bool {
		return rank[g.Advice[i].Priority] < rank[g.Advice[j].Priority]
	})
	return g
}
