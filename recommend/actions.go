package recommend

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/seo-optimizer/content-analyzer/content"
	"github.com/seo-optimizer/content-analyzer/keywords"
	"github.com/seo-optimizer/content-analyzer/rules"
)

// verbs are tried in order; the first match wins
var verbs = []struct {
	words []string
	typ   ActionType
}{
	{[]string{"add", "create"}, ActionAdd},
	{[]string{"remove", "delete"}, ActionRemove},
	{[]string{"update", "change", "modify"}, ActionUpdate},
	{[]string{"optimize", "improve"}, ActionOptimize},
	{[]string{"check", "verify"}, ActionVerify},
}

// ClassifyAction infers the action type from the verbs in text
func ClassifyAction(text string) ActionType {
	lower := strings.ToLower(text)
	for _, v := range verbs {
		for _, w := range v.words {
			if strings.Contains(lower, w) {
				return v.typ
			}
		}
	}
	return ActionGeneral
}

func actionsFor(rule rules.Rule, page *rules.Page) []Action {
	actions := make([]Action, 0, len(rule.Recommendations)+1)
	for _, text := range rule.Recommendations {
		actions = append(actions, Action{Type: ClassifyAction(text), Text: text})
	}
	actions = append(actions, specificActions(rule.ID, page)...)
	for i := range actions {
		actions[i].Step = i + 1
	}
	return actions
}

func specific(typ ActionType, format string, args ...any) Action {
	return Action{Type: typ, Text: fmt.Sprintf(format, args...), Specific: true}
}

// specificActions measures the page to say exactly how far it is from passing
func specificActions(id string, page *rules.Page) []Action {
	if page == nil {
		return nil
	}
	c := page.Content
	if c == nil {
		c = content.Empty()
	}

	switch id {
	case "meta-title-length":
		return lengthActions("title", utf8.RuneCountInString(page.Title), rules.TitleMinLength, rules.TitleMaxLength)
	case "meta-description-length":
		return lengthActions("meta description", utf8.RuneCountInString(page.Description), rules.DescriptionMinLength, rules.DescriptionMaxLength)
	case "image-alt-text":
		if n := c.ImagesMissingAlt(); n > 0 {
			return []Action{specific(ActionAdd, "Add alt text to %d of %d images", n, len(c.Images))}
		}
	case "content-word-count":
		if c.WordCount < rules.MinWordCount {
			return []Action{specific(ActionAdd, "Add at least %d more words (currently %d of %d)", rules.MinWordCount-c.WordCount, c.WordCount, rules.MinWordCount)}
		}
	case "content-single-h1":
		if n := c.HeadingCount(1); n > 1 {
			return []Action{specific(ActionUpdate, "Change %d of the %d H1 headings to H2", n-1, n)}
		}
	case "keywords-density":
		kw := page.PrimaryKeyword()
		if kw == "" {
			return nil
		}
		d := keywords.Density(c.Text, kw)
		switch {
		case d < rules.MinKeywordDensity:
			return []Action{specific(ActionAdd, "Add more mentions of %q: density is %.2f%%, target %.1f-%.1f%%", kw, d, rules.MinKeywordDensity, rules.MaxKeywordDensity)}
		case d > rules.MaxKeywordDensity:
			return []Action{specific(ActionRemove, "Remove some mentions of %q: density is %.2f%%, target %.1f-%.1f%%", kw, d, rules.MinKeywordDensity, rules.MaxKeywordDensity)}
		}
	}
	return nil
}

func lengthActions(field string, n, min, max int) []Action {
	switch {
	case n < min:
		return []Action{specific(ActionAdd, "Add %d more characters to the %s (currently %d, aim for %d-%d)", min-n, field, n, min, max)}
	case n > max:
		return []Action{specific(ActionRemove, "Remove %d characters from the %s (currently %d, aim for %d-%d)", n-max, field, n, min, max)}
	}
	return nil
}
