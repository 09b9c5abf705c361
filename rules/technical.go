package rules

import (
	"strings"
	"unicode"

	"github.com/seo-optimizer/content-analyzer/content"
)

const (
	MinSemanticScore  = 3
	MinTextHTMLRatio  = 0.1
	maxURLLength      = 100
	maxQueryParameter = 2
)

func technicalRules() []Rule {
	return []Rule{
		{
			ID:          "technical-semantic-html",
			Category:    CategoryTechnical,
			Severity:    SeverityMedium,
			Weight:      4,
			Title:       "Page uses semantic HTML5 landmarks",
			Description: "Landmarks such as header, nav, main, article and footer tell crawlers which part of the page is the content.",
			Recommendations: []string{
				"Add <header>, <nav>, <main>, <article> and <footer> elements around the matching parts of the page",
			},
			Check: func(p *Page) Outcome {
				score := p.content().StructuralElements.SemanticScore
				if score < MinSemanticScore {
					return fail("%d of 5 semantic landmarks used", score)
				}
				return pass("%d of 5 semantic landmarks used", score)
			},
		},
		{
			ID:          "technical-https",
			Category:    CategoryTechnical,
			Severity:    SeverityHigh,
			Weight:      5,
			Title:       "Page is served over HTTPS",
			Description: "HTTPS is a ranking signal and browsers flag plain HTTP pages as not secure.",
			Recommendations: []string{
				"Update the site to serve every page over HTTPS",
				"Check that HTTP requests redirect permanently to HTTPS",
			},
			Check: func(p *Page) Outcome {
				u, ok := p.parsedURL()
				if !ok {
					return warn("No page URL supplied; HTTPS not verified")
				}
				if strings.EqualFold(u.Scheme, "https") {
					return pass("Served over HTTPS")
				}
				return fail("Page URL uses %s", u.Scheme)
			},
		},
		{
			ID:          "technical-url-structure",
			Category:    CategoryTechnical,
			Severity:    SeverityLow,
			Weight:      2,
			Title:       "URL is short and readable",
			Description: "Short lowercase URLs with hyphens are easier to share and read in search results.",
			Recommendations: []string{
				"Change the URL to lowercase words separated by hyphens",
				"Remove unnecessary query parameters and nesting from the URL",
			},
			Check: func(p *Page) Outcome {
				u, ok := p.parsedURL()
				if !ok {
					return warn("No page URL supplied; URL structure not verified")
				}
				var problems []string
				if len(p.URL) > maxURLLength {
					problems = append(problems, "longer than 100 characters")
				}
				if strings.Contains(u.Path, "_") {
					problems = append(problems, "uses underscores")
				}
				if strings.IndexFunc(u.Path, unicode.IsUpper) >= 0 {
					problems = append(problems, "contains uppercase letters")
				}
				if len(u.Query()) > maxQueryParameter {
					problems = append(problems, "has many query parameters")
				}
				if len(problems) > 0 {
					return fail("URL %s", strings.Join(problems, ", "))
				}
				return pass("URL structure is clean")
			},
		},
		{
			ID:          "technical-nofollow-internal",
			Category:    CategoryTechnical,
			Severity:    SeverityLow,
			Weight:      2,
			Title:       "Internal links are followed",
			Description: "rel=nofollow on internal links stops crawlers from passing authority inside the site.",
			Recommendations: []string{
				"Remove rel=\"nofollow\" from links to your own pages",
			},
			Check: func(p *Page) Outcome {
				n := 0
				for _, l := range p.content().LinksOfType(content.LinkInternal) {
					if strings.Contains(l.Rel, "nofollow") {
						n++
					}
				}
				if n > 0 {
					return fail("%d internal links are nofollow", n)
				}
				return pass("No nofollow internal links")
			},
		},
		{
			ID:          "technical-structured-data",
			Category:    CategoryTechnical,
			Severity:    SeverityMedium,
			Weight:      3,
			Title:       "Structured data is present",
			Description: "Schema.org markup makes the page eligible for rich results.",
			Recommendations: []string{
				"Add JSON-LD structured data describing the page, for example Article or Product",
				"Verify the markup with a rich results testing tool",
			},
			Check: func(p *Page) Outcome {
				if p.content().HasStructuredData {
					return pass("Structured data found")
				}
				return fail("No JSON-LD or microdata found")
			},
		},
		{
			ID:          "technical-empty-links",
			Category:    CategoryTechnical,
			Severity:    SeverityLow,
			Weight:      2,
			Title:       "Links have real destinations",
			Description: "Links to \"#\" or javascript: are dead ends for crawlers.",
			Recommendations: []string{
				"Replace placeholder links with real URLs or buttons",
			},
			Check: func(p *Page) Outcome {
				n := 0
				for _, l := range p.content().Links {
					href := strings.ToLower(l.Href)
					if href == "" || href == "#" || strings.HasPrefix(href, "javascript:") {
						n++
					}
				}
				if n > 0 {
					return fail("%d links have no destination", n)
				}
				return pass("All links have destinations")
			},
		},
		{
			ID:          "technical-text-html-ratio",
			Category:    CategoryTechnical,
			Severity:    SeverityLow,
			Weight:      2,
			Title:       "Text to HTML ratio is at least 10%",
			Description: "Pages dominated by markup and scripts carry little indexable content.",
			Recommendations: []string{
				"Remove inline scripts and styles or move them to external files",
				"Add more visible text content",
			},
			Check: func(p *Page) Outcome {
				c := p.content()
				if c.HTMLLength == 0 {
					return warn("No HTML supplied; ratio not computed")
				}
				ratio := float64(len(c.Text)) / float64(c.HTMLLength)
				if ratio < MinTextHTMLRatio {
					return fail("Text is %.0f%% of the HTML", ratio*100)
				}
				return pass("Text is %.0f%% of the HTML", ratio*100)
			},
		},
	}
}
