package rules

import (
	"strings"

	"github.com/seo-optimizer/content-analyzer/content"
)

const (
	MinWordCount       = 300
	wordsPerSubheading = 300
)

// link texts that say nothing about the target
var genericLinkTexts = map[string]bool{
	"click here": true, "here": true, "read more": true, "more": true, "link": true,
	"this": true, "learn more": true, "εδώ": true, "περισσότερα": true, "κάντε κλικ εδώ": true,
}

func contentRules() []Rule {
	return []Rule{
		{
			ID:          "content-word-count",
			Category:    CategoryContent,
			Severity:    SeverityCritical,
			Weight:      8,
			Title:       "Content has at least 300 words",
			Description: "Thin pages rarely rank; search engines favour content that covers a topic in depth.",
			Recommendations: []string{
				"Add more in-depth content that answers the searcher's questions",
				"Create sections for related subtopics, examples and FAQs",
			},
			Check: func(p *Page) Outcome {
				n := p.content().WordCount
				if n < MinWordCount {
					return fail("Content has %d words, below the %d minimum", n, MinWordCount)
				}
				return pass("Content has %d words", n)
			},
		},
		{
			ID:          "content-h1-exists",
			Category:    CategoryContent,
			Severity:    SeverityCritical,
			Weight:      7,
			Title:       "Page has an H1 heading",
			Description: "The H1 is the main on-page headline and a strong relevance signal.",
			Recommendations: []string{
				"Add one H1 heading that states the topic of the page",
			},
			Check: func(p *Page) Outcome {
				if p.content().HeadingCount(1) == 0 {
					return fail("No H1 heading found")
				}
				return pass("H1 heading found")
			},
		},
		{
			ID:          "content-single-h1",
			Category:    CategoryContent,
			Severity:    SeverityMedium,
			Weight:      4,
			Title:       "Only one H1 heading",
			Description: "Several H1 headings dilute the main topic of the page.",
			Recommendations: []string{
				"Change extra H1 headings to H2 so the page has a single main heading",
			},
			Check: func(p *Page) Outcome {
				n := p.content().HeadingCount(1)
				switch {
				case n > 1:
					return fail("Found %d H1 headings", n)
				case n == 0:
					return warn("No H1 heading to compare")
				}
				return pass("Exactly one H1 heading")
			},
		},
		{
			ID:          "content-heading-hierarchy",
			Category:    CategoryContent,
			Severity:    SeverityMedium,
			Weight:      4,
			Title:       "Headings follow a logical hierarchy",
			Description: "Skipping heading levels makes the outline harder for crawlers and assistive technology to follow.",
			Recommendations: []string{
				"Update headings so no level is skipped, for example H2 before H3",
			},
			Check: func(p *Page) Outcome {
				c := p.content()
				for level := 2; level <= 6; level++ {
					if c.HeadingCount(level) > 0 && c.HeadingCount(level-1) == 0 {
						return fail("H%d headings are used without any H%d", level, level-1)
					}
				}
				return pass("No heading levels skipped")
			},
		},
		{
			ID:          "content-subheadings",
			Category:    CategoryContent,
			Severity:    SeverityMedium,
			Weight:      3,
			Title:       "Long content uses subheadings",
			Description: "Subheadings let readers scan long pages and help search engines understand their sections.",
			Recommendations: []string{
				"Add H2 subheadings to break the content into sections",
			},
			Check: func(p *Page) Outcome {
				c := p.content()
				subheadings := c.HeadingCount(2) + c.HeadingCount(3)
				if c.WordCount > MinWordCount && subheadings == 0 {
					return fail("%d words without any H2 or H3 subheading", c.WordCount)
				}
				return pass("%d subheadings found", subheadings)
			},
		},
		{
			ID:          "image-alt-text",
			Category:    CategoryContent,
			Severity:    SeverityHigh,
			Weight:      7,
			Title:       "Images have alt text",
			Description: "Alt text describes images to search engines and screen readers and makes images rank in image search.",
			Recommendations: []string{
				"Add descriptive alt attributes to every meaningful image",
				"Check that decorative images use an empty alt only where intended",
			},
			Check: func(p *Page) Outcome {
				c := p.content()
				if len(c.Images) == 0 {
					return pass("No images to check")
				}
				if missing := c.ImagesMissingAlt(); missing > 0 {
					return fail("%d of %d images have no alt text", missing, len(c.Images))
				}
				return pass("All %d images have alt text", len(c.Images))
			},
		},
		{
			ID:          "content-images-present",
			Category:    CategoryContent,
			Severity:    SeverityLow,
			Weight:      2,
			Title:       "Content includes images",
			Description: "Images break up text and add engagement and image-search visibility.",
			Recommendations: []string{
				"Add relevant images, diagrams or screenshots to support the text",
			},
			Check: func(p *Page) Outcome {
				if n := len(p.content().Images); n > 0 {
					return pass("%d images found", n)
				}
				return fail("No images found")
			},
		},
		{
			ID:          "content-internal-links",
			Category:    CategoryContent,
			Severity:    SeverityMedium,
			Weight:      5,
			Title:       "Page links to other pages of the site",
			Description: "Internal links spread authority through the site and help crawlers discover pages.",
			Recommendations: []string{
				"Add links to related pages on the same site",
			},
			Check: func(p *Page) Outcome {
				if n := len(p.content().LinksOfType(content.LinkInternal)); n > 0 {
					return pass("%d internal links found", n)
				}
				return fail("No internal links found")
			},
		},
		{
			ID:          "content-external-links",
			Category:    CategoryContent,
			Severity:    SeverityLow,
			Weight:      3,
			Title:       "Page cites external sources",
			Description: "Links to authoritative sources support the credibility of the content.",
			Recommendations: []string{
				"Add links to authoritative external sources where they support a claim",
			},
			Check: func(p *Page) Outcome {
				if n := len(p.content().LinksOfType(content.LinkExternal)); n > 0 {
					return pass("%d external links found", n)
				}
				return fail("No external links found")
			},
		},
		{
			ID:          "content-link-text",
			Category:    CategoryContent,
			Severity:    SeverityMedium,
			Weight:      3,
			Title:       "Links use descriptive anchor text",
			Description: "Anchor text tells search engines what the linked page is about; generic text wastes that signal.",
			Recommendations: []string{
				"Update generic link text such as \"click here\" to describe the target page",
			},
			Check: func(p *Page) Outcome {
				poor := 0
				for _, l := range p.content().Links {
					if l.Type == content.LinkAnchor {
						continue
					}
					if !l.HasText || genericLinkTexts[strings.ToLower(strings.TrimSpace(l.Text))] {
						poor++
					}
				}
				if poor > 0 {
					return fail("%d links have empty or generic text", poor)
				}
				return pass("Link text is descriptive")
			},
		},
		{
			ID:          "content-freshness",
			Category:    CategoryContent,
			Severity:    SeverityLow,
			Weight:      2,
			Title:       "Publication date is marked up",
			Description: "A machine-readable date lets search engines show and reward fresh content.",
			Recommendations: []string{
				"Add an article:published_time meta tag or a <time datetime> element",
				"Update the content regularly and refresh the modified date",
			},
			Check: func(p *Page) Outcome {
				if d := p.content().PublishedDate; d != "" {
					return pass("Publication date %s found", d)
				}
				return fail("No publication date found")
			},
		},
		{
			ID:          "content-duplicate-headings",
			Category:    CategoryContent,
			Severity:    SeverityLow,
			Weight:      2,
			Title:       "Headings are unique",
			Description: "Repeated headings make sections indistinguishable in the page outline.",
			Recommendations: []string{
				"Change repeated headings so each section has its own title",
			},
			Check: func(p *Page) Outcome {
				seen := make(map[string]bool)
				dupes := 0
				for level := 1; level <= 6; level++ {
					for _, h := range p.content().Headings[level] {
						key := strings.ToLower(h)
						if seen[key] {
							dupes++
						}
						seen[key] = true
					}
				}
				if dupes > 0 {
					return fail("%d headings repeat an earlier heading", dupes)
				}
				return pass("All headings are unique")
			},
		},
	}
}
