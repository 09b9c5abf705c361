package rules

import (
	"strings"
	"unicode/utf8"
)

const (
	TitleMinLength       = 30
	TitleMaxLength       = 60
	DescriptionMinLength = 120
	DescriptionMaxLength = 160
)

func metaRules() []Rule {
	return []Rule{
		{
			ID:          "meta-title-exists",
			Category:    CategoryMeta,
			Severity:    SeverityCritical,
			Weight:      7,
			Title:       "Page title is present",
			Description: "The title tag is the headline shown in search results and browser tabs.",
			Recommendations: []string{
				"Add a unique <title> tag that describes the page",
				"Place the most important words at the start of the title",
			},
			Check: func(p *Page) Outcome {
				if p.Title == "" {
					return fail("No page title found")
				}
				return pass("Title found")
			},
		},
		{
			ID:          "meta-title-length",
			Category:    CategoryMeta,
			Severity:    SeverityHigh,
			Weight:      8,
			Title:       "Title length is 30-60 characters",
			Description: "Titles shorter than 30 characters waste space in results; longer than 60 get truncated.",
			Recommendations: []string{
				"Update the title to between 30 and 60 characters",
				"Optimize the title to include the primary keyword naturally",
			},
			Check: func(p *Page) Outcome {
				n := utf8.RuneCountInString(p.Title)
				switch {
				case n == 0:
					return fail("No title to measure")
				case n < TitleMinLength:
					return fail("Title is %d characters, below the %d minimum", n, TitleMinLength)
				case n > TitleMaxLength:
					return fail("Title is %d characters, above the %d maximum", n, TitleMaxLength)
				}
				return pass("Title is %d characters", n)
			},
		},
		{
			ID:          "meta-description-exists",
			Category:    CategoryMeta,
			Severity:    SeverityCritical,
			Weight:      6,
			Title:       "Meta description is present",
			Description: "The meta description is the snippet search engines usually show under the title.",
			Recommendations: []string{
				"Add a meta description that summarizes the page",
				"Write the description as a call to action for the searcher",
			},
			Check: func(p *Page) Outcome {
				if p.Description == "" {
					return fail("No meta description found")
				}
				return pass("Meta description found")
			},
		},
		{
			ID:          "meta-description-length",
			Category:    CategoryMeta,
			Severity:    SeverityHigh,
			Weight:      7,
			Title:       "Meta description is 120-160 characters",
			Description: "Descriptions in this range fill the snippet without being cut off.",
			Recommendations: []string{
				"Update the meta description to between 120 and 160 characters",
				"Improve the description with a clear benefit and the primary keyword",
			},
			Check: func(p *Page) Outcome {
				n := utf8.RuneCountInString(p.Description)
				switch {
				case n == 0:
					return fail("No meta description to measure")
				case n < DescriptionMinLength:
					return fail("Meta description is %d characters, below the %d minimum", n, DescriptionMinLength)
				case n > DescriptionMaxLength:
					return fail("Meta description is %d characters, above the %d maximum", n, DescriptionMaxLength)
				}
				return pass("Meta description is %d characters", n)
			},
		},
		{
			ID:          "meta-viewport",
			Category:    CategoryMeta,
			Severity:    SeverityHigh,
			Weight:      6,
			Title:       "Mobile viewport is configured",
			Description: "Without a responsive viewport the page renders as a desktop page on phones, which hurts mobile-first indexing.",
			Recommendations: []string{
				`Add <meta name="viewport" content="width=device-width, initial-scale=1"> to the head`,
			},
			Check: func(p *Page) Outcome {
				vp := strings.ToLower(strings.ReplaceAll(p.content().MetaTags.Viewport, " ", ""))
				switch {
				case vp == "":
					return fail("No viewport meta tag")
				case !strings.Contains(vp, "width=device-width"):
					return fail("Viewport does not use width=device-width")
				}
				return pass("Responsive viewport configured")
			},
		},
		{
			ID:          "meta-canonical",
			Category:    CategoryMeta,
			Severity:    SeverityMedium,
			Weight:      4,
			Title:       "Canonical URL is declared",
			Description: "A canonical link tells search engines which URL to index when the same content is reachable at several addresses.",
			Recommendations: []string{
				`Add a <link rel="canonical"> tag pointing at the preferred URL`,
			},
			Check: func(p *Page) Outcome {
				if p.content().MetaTags.Canonical == "" {
					return fail("No canonical link found")
				}
				return pass("Canonical URL declared")
			},
		},
		{
			ID:          "meta-robots-indexable",
			Category:    CategoryMeta,
			Severity:    SeverityHigh,
			Weight:      6,
			Title:       "Page can be indexed",
			Description: "A noindex robots directive removes the page from search results entirely.",
			Recommendations: []string{
				"Remove noindex from the robots meta tag if the page should rank",
				"Check that staging robots directives were not published",
			},
			Check: func(p *Page) Outcome {
				robots := strings.ToLower(p.content().MetaTags.Robots)
				switch {
				case strings.Contains(robots, "noindex") || strings.Contains(robots, "none"):
					return fail("Robots directive %q blocks indexing", robots)
				case strings.Contains(robots, "nofollow"):
					return warn("Robots directive %q stops link equity from flowing", robots)
				}
				return pass("Page is indexable")
			},
		},
		{
			ID:          "meta-charset",
			Category:    CategoryMeta,
			Severity:    SeverityLow,
			Weight:      2,
			Title:       "Character encoding is declared",
			Description: "Declaring the encoding prevents garbled characters, especially in non-Latin scripts.",
			Recommendations: []string{
				`Add <meta charset="utf-8"> as the first element of the head`,
			},
			Check: func(p *Page) Outcome {
				cs := strings.ToLower(strings.TrimSpace(p.content().MetaTags.Charset))
				switch {
				case cs == "":
					return fail("No character encoding declared")
				case cs != "utf-8" && cs != "utf8":
					return warn("Encoding %q declared; UTF-8 is recommended", cs)
				}
				return pass("UTF-8 encoding declared")
			},
		},
		{
			ID:          "meta-html-lang",
			Category:    CategoryMeta,
			Severity:    SeverityMedium,
			Weight:      3,
			Title:       "Document language is declared",
			Description: "The lang attribute helps search engines serve the page to the right audience and screen readers to pronounce it.",
			Recommendations: []string{
				`Add a lang attribute to the <html> element, for example lang="en"`,
			},
			Check: func(p *Page) Outcome {
				if p.content().MetaTags.Language == "" {
					return fail("The html element has no lang attribute")
				}
				return pass("Language %q declared", p.content().MetaTags.Language)
			},
		},
		{
			ID:          "meta-open-graph",
			Category:    CategoryMeta,
			Severity:    SeverityLow,
			Weight:      3,
			Title:       "Open Graph tags are present",
			Description: "Open Graph tags control how the page looks when shared on social networks.",
			Recommendations: []string{
				"Add og:title, og:description and og:image meta tags",
			},
			Check: func(p *Page) Outcome {
				og := p.content().OpenGraph
				present := 0
				for _, v := range []string{og.Title, og.Description, og.Image} {
					if v != "" {
						present++
					}
				}
				switch present {
				case 0:
					return fail("No Open Graph tags found")
				case 3:
					return pass("Open Graph title, description and image found")
				}
				if og.Title == "" {
					return fail("Open Graph tags lack og:title")
				}
				return warn("%d of 3 core Open Graph tags found", present)
			},
		},
	}
}
