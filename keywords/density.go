// Package keywords counts keyword occurrences, computes keyword density and
// mines candidate keywords from content. Density and suggestions share one
// counting routine so a suggested keyword always reports the density the
// scoring rules will see.
package keywords

import (
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var separators = strings.NewReplacer("-", " ", "_", " ", "/", " ")

// Normalize lowercases s and turns hyphens, underscores and slashes into spaces
func Normalize(s string) string {
	return separators.Replace(strings.ToLower(s))
}

// finalSigma folds the word-final Greek sigma so that lowercased capitals (ΟΔΟΣ -> οδοσ) match
var finalSigma = strings.NewReplacer("ς", "σ")

func matchForm(s string) string {
	return finalSigma.Replace(Normalize(s))
}

// CountOccurrences counts how often keyword occurs in text after normalizing both.
//
// A single word must stand alone: the runes on either side of a match may not be
// letters, digits or combining marks, which works for Greek as well as Latin text.
// A phrase matches its words separated by any run of whitespace, with no boundary check.
// Greek final and medial sigma are treated as the same letter.
func CountOccurrences(text, keyword string) int {
	words := strings.Fields(matchForm(keyword))
	if len(words) == 0 {
		return 0
	}
	normalized := matchForm(text)

	if len(words) > 1 {
		quoted := make([]string, len(words))
		for i, w := range words {
			quoted[i] = regexp.QuoteMeta(w)
		}
		re := regexp.MustCompile(strings.Join(quoted, `\s+`))
		return len(re.FindAllStringIndex(normalized, -1))
	}

	re := regexp.MustCompile(regexp.QuoteMeta(words[0]))
	count := 0
	for _, loc := range re.FindAllStringIndex(normalized, -1) {
		if standsAlone(normalized, loc[0], loc[1]) {
			count++
		}
	}
	return count
}

// Density returns the share of text's words taken by keyword, as a percentage rounded to two decimals.
// A keyword that does not occur has a density of exactly 0.
func Density(text, keyword string) float64 {
	totalWords := len(strings.Fields(Normalize(text)))
	if totalWords == 0 {
		return 0
	}
	count := CountOccurrences(text, keyword)
	if count == 0 {
		return 0
	}
	keywordWords := len(strings.Fields(Normalize(keyword)))
	density := float64(count*keywordWords) / float64(totalWords) * 100
	return math.Round(density*100) / 100
}

// DensityMap computes the density of every keyword, keyed by the keyword as given
func DensityMap(text string, keywords []string) map[string]float64 {
	out := make(map[string]float64, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		out[kw] = Density(text, kw)
	}
	return out
}

// ParseList splits a comma-separated keyword list, trimming blanks and dropping duplicates
func ParseList(raw string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		kw := strings.TrimSpace(part)
		key := strings.ToLower(kw)
		if kw == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, kw)
	}
	return out
}

// Contains reports whether keyword occurs in text at least once
func Contains(text, keyword string) bool {
	return CountOccurrences(text, keyword) > 0
}

func standsAlone(s string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(s) {
		r, _ := utf8.DecodeRuneInString(s[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}
