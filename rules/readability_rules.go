package rules

import (
	"fmt"

	"github.com/seo-optimizer/content-analyzer/readability"
)

const (
	MinReadingEase  = 60
	MaxComplexRatio = 0.15
)

func readabilityRules() []Rule {
	return []Rule{
		{
			ID:          "readability-score",
			Category:    CategoryReadability,
			Severity:    SeverityHigh,
			Weight:      6,
			Title:       "Content is easy to read",
			Description: "A Flesch reading ease of 60 or more keeps most visitors reading.",
			Recommendations: []string{
				"Improve readability with shorter sentences and everyday words",
				"Remove filler phrases and passive constructions",
			},
			Check: func(p *Page) Outcome {
				r := p.Readability()
				if r.Totals.Words == 0 {
					return fail("No readable text found")
				}
				ease := r.ReadingEase()
				if ease < MinReadingEase {
					return Outcome{Passed: false, Warning: r.Meta.IsInsufficient, Message: fmt.Sprintf("Reading ease is %.1f", ease)}
				}
				return Outcome{Passed: true, Warning: r.Meta.IsInsufficient, Message: fmt.Sprintf("Reading ease is %.1f", ease)}
			},
		},
		{
			ID:          "readability-sentence-length",
			Category:    CategoryReadability,
			Severity:    SeverityMedium,
			Weight:      4,
			Title:       "Sentences are short",
			Description: "Sentences averaging more than 20 words are hard to follow on screen.",
			Recommendations: []string{
				"Update long sentences by splitting them at conjunctions",
			},
			Check: func(p *Page) Outcome {
				r := p.Readability()
				limit := readability.LanguageFor(p.Language).SEOSentenceWords
				avg := r.Totals.AvgWordsPerSentence
				if avg > float64(limit) {
					return fail("Sentences average %.1f words, above %d", avg, limit)
				}
				return pass("Sentences average %.1f words", avg)
			},
		},
		{
			ID:          "readability-paragraph-length",
			Category:    CategoryReadability,
			Severity:    SeverityMedium,
			Weight:      3,
			Title:       "Paragraphs are short",
			Description: "Long paragraphs look like walls of text, especially on mobile screens.",
			Recommendations: []string{
				"Change long paragraphs into several short ones with one idea each",
			},
			Check: func(p *Page) Outcome {
				limit := readability.LanguageFor(p.Language).SEOParagraphWords
				long := 0
				for _, para := range p.Readability().Structure.Paragraphs.Items {
					if para.Words > limit {
						long++
					}
				}
				if long > 0 {
					return fail("%d paragraphs exceed %d words", long, limit)
				}
				return pass("No paragraph exceeds %d words", limit)
			},
		},
		{
			ID:          "readability-complex-words",
			Category:    CategoryReadability,
			Severity:    SeverityMedium,
			Weight:      3,
			Title:       "Few complex words",
			Description: "When more than 15% of words are complex the text reads like technical documentation.",
			Recommendations: []string{
				"Update complex words with simpler alternatives where the meaning is kept",
			},
			Check: func(p *Page) Outcome {
				ratio := p.Readability().Totals.ComplexWordRatio
				if ratio > MaxComplexRatio {
					return fail("%.0f%% of words are complex", ratio*100)
				}
				return pass("%.0f%% of words are complex", ratio*100)
			},
		},
		{
			ID:          "readability-subheading-distribution",
			Category:    CategoryReadability,
			Severity:    SeverityLow,
			Weight:      3,
			Title:       "Subheadings are spread through the text",
			Description: "A subheading every 300 words or so keeps long content scannable.",
			Recommendations: []string{
				"Add a subheading roughly every 300 words",
			},
			Check: func(p *Page) Outcome {
				c := p.content()
				words := p.Readability().Totals.Words
				subheadings := 0
				for level := 2; level <= 6; level++ {
					subheadings += c.HeadingCount(level)
				}
				needed := words / wordsPerSubheading
				if subheadings < needed {
					return fail("%d subheadings for %d words; about %d expected", subheadings, words, needed)
				}
				return pass("%d subheadings for %d words", subheadings, words)
			},
		},
	}
}
