package rules

import (
	"github.com/seo-optimizer/content-analyzer/keywords"
)

const (
	MinKeywordDensity = 0.5
	MaxKeywordDensity = 2.5
)

var noKeyword = warn("No target keyword supplied")

// withKeyword runs check against the primary keyword, passing with a warning when none was supplied
func withKeyword(check func(p *Page, kw string) Outcome) CheckFunc {
	return func(p *Page) Outcome {
		kw := p.PrimaryKeyword()
		if kw == "" {
			return noKeyword
		}
		return check(p, kw)
	}
}

func keywordRules() []Rule {
	return []Rule{
		{
			ID:          "keywords-defined",
			Category:    CategoryKeywords,
			Severity:    SeverityMedium,
			Weight:      3,
			Title:       "Target keywords are defined",
			Description: "Optimizing for an explicit keyword keeps the title, headings and copy aligned with one search intent.",
			Recommendations: []string{
				"Add one primary keyword and a few related phrases for the page",
			},
			Check: func(p *Page) Outcome {
				if p.PrimaryKeyword() == "" {
					return fail("No target keywords supplied")
				}
				return pass("%d target keywords", len(p.Keywords))
			},
		},
		{
			ID:          "keywords-in-title",
			Category:    CategoryKeywords,
			Severity:    SeverityHigh,
			Weight:      6,
			Title:       "Title contains the primary keyword",
			Description: "Search engines weigh title words heavily and bold matching words in results.",
			Recommendations: []string{
				"Update the title to include the primary keyword, ideally near the start",
			},
			Check: withKeyword(func(p *Page, kw string) Outcome {
				if keywords.Contains(p.Title, kw) {
					return pass("Title contains %q", kw)
				}
				return fail("Title does not contain %q", kw)
			}),
		},
		{
			ID:          "keywords-in-description",
			Category:    CategoryKeywords,
			Severity:    SeverityMedium,
			Weight:      4,
			Title:       "Meta description contains the primary keyword",
			Description: "Matching words in the description are highlighted in the search snippet.",
			Recommendations: []string{
				"Update the meta description to mention the primary keyword once",
			},
			Check: withKeyword(func(p *Page, kw string) Outcome {
				if keywords.Contains(p.Description, kw) {
					return pass("Meta description contains %q", kw)
				}
				return fail("Meta description does not contain %q", kw)
			}),
		},
		{
			ID:          "keywords-in-h1",
			Category:    CategoryKeywords,
			Severity:    SeverityMedium,
			Weight:      4,
			Title:       "H1 contains the primary keyword",
			Description: "The main heading confirms to readers and crawlers that the page matches the query.",
			Recommendations: []string{
				"Update the H1 heading to include the primary keyword",
			},
			Check: withKeyword(func(p *Page, kw string) Outcome {
				for _, h := range p.content().Headings[1] {
					if keywords.Contains(h, kw) {
						return pass("H1 contains %q", kw)
					}
				}
				return fail("No H1 contains %q", kw)
			}),
		},
		{
			ID:          "keywords-density",
			Category:    CategoryKeywords,
			Severity:    SeverityMedium,
			Weight:      5,
			Title:       "Keyword density is 0.5-2.5%",
			Description: "Too few mentions weaken relevance; too many look like keyword stuffing.",
			Recommendations: []string{
				"Optimize keyword usage so the primary keyword makes up 0.5-2.5% of the text",
				"Use synonyms and related phrases instead of repeating the exact keyword",
			},
			Check: withKeyword(func(p *Page, kw string) Outcome {
				d := keywords.Density(p.content().Text, kw)
				switch {
				case d < MinKeywordDensity:
					return fail("Density of %q is %.2f%%, below %.1f%%", kw, d, MinKeywordDensity)
				case d > MaxKeywordDensity:
					return fail("Density of %q is %.2f%%, above %.1f%%", kw, d, MaxKeywordDensity)
				}
				return pass("Density of %q is %.2f%%", kw, d)
			}),
		},
		{
			ID:          "keywords-in-first-paragraph",
			Category:    CategoryKeywords,
			Severity:    SeverityMedium,
			Weight:      3,
			Title:       "Primary keyword appears in the first paragraph",
			Description: "Mentioning the topic early confirms relevance to readers who scan the opening.",
			Recommendations: []string{
				"Update the opening paragraph to mention the primary keyword",
			},
			Check: withKeyword(func(p *Page, kw string) Outcome {
				first := p.FirstParagraph()
				if first == "" {
					return fail("No paragraph found")
				}
				if keywords.Contains(first, kw) {
					return pass("First paragraph contains %q", kw)
				}
				return fail("First paragraph does not contain %q", kw)
			}),
		},
		{
			ID:          "keywords-in-url",
			Category:    CategoryKeywords,
			Severity:    SeverityLow,
			Weight:      2,
			Title:       "URL contains the primary keyword",
			Description: "Keywords in the URL are a light relevance signal and make links self-describing.",
			Recommendations: []string{
				"Change the URL slug to include the primary keyword",
			},
			Check: withKeyword(func(p *Page, kw string) Outcome {
				u, ok := p.parsedURL()
				if !ok {
					return warn("No page URL supplied")
				}
				if keywords.Contains(u.Path, kw) {
					return pass("URL contains %q", kw)
				}
				return fail("URL does not contain %q", kw)
			}),
		},
		{
			ID:          "keywords-image-alt",
			Category:    CategoryKeywords,
			Severity:    SeverityLow,
			Weight:      2,
			Title:       "An image alt text mentions the keyword",
			Description: "Keyword-relevant alt text helps the page's images rank for the same topic.",
			Recommendations: []string{
				"Add the primary keyword to the alt text of the most relevant image",
			},
			Check: withKeyword(func(p *Page, kw string) Outcome {
				images := p.content().Images
				if len(images) == 0 {
					return warn("No images to check")
				}
				for _, img := range images {
					if keywords.Contains(img.Alt, kw) {
						return pass("Image alt text contains %q", kw)
					}
				}
				return fail("No image alt text contains %q", kw)
			}),
		},
	}
}
