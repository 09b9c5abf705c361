package readability

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var blankLine = regexp.MustCompile(`\n\s*\n`)

// minLineRunes is the length every line must exceed before single newlines are trusted as paragraph breaks
const minLineRunes = 20

// Words returns the word tokens of text for the language
func (l *Language) Words(text string) []string {
	return l.Word.FindAllString(text, -1)
}

// Sentences splits text into sentences. A terminator run followed by whitespace ends
// a sentence, and so does a blank line. Fragments without words are dropped.
func (l *Language) Sentences(text string) []string {
	var sentences []string
	for _, block := range blankLine.Split(text, -1) {
		for _, s := range splitAfter(l.SentenceEnd, block) {
			s = strings.TrimSpace(s)
			if s != "" && len(l.Words(s)) > 0 {
				sentences = append(sentences, s)
			}
		}
	}
	return sentences
}

// splitAfter splits s after every match of re, keeping the terminators with their sentence
func splitAfter(re *regexp.Regexp, s string) []string {
	var parts []string
	last := 0
	for _, loc := range re.FindAllStringIndex(s, -1) {
		parts = append(parts, s[last:loc[1]])
		last = loc[1]
	}
	if last < len(s) {
		parts = append(parts, s[last:])
	}
	return parts
}

// SplitParagraphs splits plain text on blank lines. When that leaves a single block,
// single newlines are used instead, but only if every resulting line is longer than
// 20 characters; shorter lines are treated as wrapped prose.
func SplitParagraphs(text string) []string {
	blocks := nonEmpty(blankLine.Split(text, -1))
	if len(blocks) != 1 {
		return blocks
	}

	lines := nonEmpty(strings.Split(blocks[0], "\n"))
	if len(lines) < 2 {
		return blocks
	}
	for _, line := range lines {
		if utf8.RuneCountInString(line) <= minLineRunes {
			return blocks
		}
	}
	return lines
}

func nonEmpty(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Syllables estimates the syllables of one word: vowel groups, corrected for the
// language's orthography, never less than one
func (l *Language) Syllables(word string) int {
	word = strings.ToLower(word)
	count := len(l.Vowels.FindAllStringIndex(word, -1))
	if l.syllableCorrections != nil {
		count = l.syllableCorrections(word, count)
	}
	if count < 1 {
		return 1
	}
	return count
}

// IsComplex reports whether a word reaches the language's complex-word syllable count
func (l *Language) IsComplex(word string) bool {
	return l.Syllables(word) >= l.ComplexSyllables
}

func countLetters(words []string) int {
	n := 0
	for _, w := range words {
		for _, r := range w {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				n++
			}
		}
	}
	return n
}

// preview shortens s to at most n runes for display
func preview(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:n])) + "..."
}
