package recommend

import (
	"strings"

	"github.com/seo-optimizer/content-analyzer/rules"
)

// quick and significant effort are keyed by rule id; everything else is moderate
var (
	quickEffort = map[string]bool{
		"meta-viewport":           true,
		"meta-canonical":          true,
		"meta-html-lang":          true,
		"meta-charset":            true,
		"meta-title-exists":       true,
		"meta-description-exists": true,
	}
	significantEffort = map[string]bool{
		"content-word-count":           true,
		"readability-paragraph-length": true,
		"readability-score":            true,
		"content-freshness":            true,
	}
)

// estimatedTime is a finer display hint and does not have to agree with the effort bucket
var (
	quickFixTime = map[string]bool{
		"meta-title-exists":       true,
		"meta-title-length":       true,
		"meta-description-exists": true,
		"meta-description-length": true,
		"meta-viewport":           true,
		"meta-canonical":          true,
		"meta-charset":            true,
		"meta-html-lang":          true,
		"meta-robots-indexable":   true,
		"meta-open-graph":         true,
		"keywords-in-title":       true,
		"keywords-in-description": true,
	}
	moderateFixTime = map[string]bool{
		"image-alt-text":              true,
		"content-h1-exists":           true,
		"content-single-h1":           true,
		"content-heading-hierarchy":   true,
		"content-subheadings":         true,
		"content-internal-links":      true,
		"content-external-links":      true,
		"content-link-text":           true,
		"content-duplicate-headings":  true,
		"keywords-in-h1":              true,
		"keywords-in-first-paragraph": true,
		"keywords-image-alt":          true,
		"technical-structured-data":   true,
		"technical-nofollow-internal": true,
		"technical-empty-links":       true,
	}
)

const (
	timeQuick       = "5-15 min"
	timeModerate    = "30-60 min"
	timeSignificant = "1-3 hours"
)

func effortFor(rule rules.Rule) Effort {
	switch {
	case rule.Severity == rules.SeverityCritical && rule.Weight >= 8:
		return EffortSignificant
	case quickEffort[rule.ID]:
		return EffortQuick
	case significantEffort[rule.ID]:
		return EffortSignificant
	}
	return EffortModerate
}

func estimatedTime(id string) string {
	switch {
	case quickFixTime[id]:
		return timeQuick
	case moderateFixTime[id]:
		return timeModerate
	}
	return timeSignificant
}

var examples = map[string]Example{
	"meta-title-length": {
		Before: "SEO",
		After:  "SEO Checklist: 12 Steps to Rank Your First Blog Post",
	},
	"meta-description-length": {
		Before: "Short desc",
		After:  "Follow this 12-step SEO checklist to write titles, headings and copy that search engines understand and readers click on.",
	},
	"image-alt-text": {
		Before: `<img src="chart.png">`,
		After:  `<img src="chart.png" alt="Organic traffic growth over twelve months">`,
	},
	"meta-viewport": {
		Before: "<head>...</head>",
		After:  `<head><meta name="viewport" content="width=device-width, initial-scale=1">...</head>`,
	},
	"content-h1-exists": {
		Before: `<div class="title">SEO checklist</div>`,
		After:  "<h1>SEO checklist</h1>",
	},
	"meta-canonical": {
		Before: "<head>...</head>",
		After:  `<head><link rel="canonical" href="https://example.com/seo-checklist">...</head>`,
	},
	"content-link-text": {
		Before: `<a href="/guide">click here</a>`,
		After:  `<a href="/guide">read the keyword research guide</a>`,
	},
}

func exampleFor(id string) *Example {
	ex, ok := examples[id]
	if !ok {
		return nil
	}
	return &ex
}

var why = map[string]string{
	"meta-title-exists":       "The title is the headline of your search result and the strongest on-page relevance signal.",
	"meta-title-length":       "Titles outside 30-60 characters are either too vague or cut off in search results.",
	"meta-description-exists": "Without a description search engines pick a random snippet, which usually earns fewer clicks.",
	"meta-description-length": "Descriptions of 120-160 characters fill the snippet without being truncated.",
	"meta-viewport":           "Google indexes the mobile version of a page first; without a viewport it renders as a shrunken desktop page.",
	"content-word-count":      "Pages with more depth can answer more of the questions behind a search.",
	"content-h1-exists":       "The H1 tells readers and crawlers what the page is about at a glance.",
	"image-alt-text":          "Alt text is read by screen readers and is how search engines understand images.",
	"keywords-in-title":       "Words in the title that match the query are bolded in results and weigh heavily in ranking.",
	"keywords-density":        "Balanced keyword use signals relevance without looking like keyword stuffing.",
	"readability-score":       "Readers leave pages that are hard to read, and engagement feeds back into rankings.",
	"technical-https":         "HTTPS is a confirmed ranking signal and browsers warn visitors about insecure pages.",
}

func whyFor(rule rules.Rule) string {
	if s, ok := why[rule.ID]; ok {
		return s
	}
	return rule.Description
}

var (
	metaResources = []Resource{
		{Title: "Google: influencing title links", URL: "https://developers.google.com/search/docs/appearance/title-link"},
		{Title: "Google: meta tags Google understands", URL: "https://developers.google.com/search/docs/crawling-indexing/special-tags"},
	}
	technicalResources = []Resource{
		{Title: "Google Search Essentials", URL: "https://developers.google.com/search/docs/essentials"},
		{Title: "Google: structured data introduction", URL: "https://developers.google.com/search/docs/appearance/structured-data/intro-structured-data"},
	}
	readabilityResources = []Resource{
		{Title: "Hemingway Editor", URL: "https://hemingwayapp.com/"},
	}
)

func resourcesFor(rule rules.Rule) []Resource {
	var src []Resource
	switch {
	case rule.Category == rules.CategoryMeta:
		src = metaResources
	case rule.Category == rules.CategoryTechnical:
		src = technicalResources
	case strings.Contains(rule.ID, "readability"):
		src = readabilityResources
	}
	return append([]Resource{}, src...)
}
