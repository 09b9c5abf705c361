package readability

import (
	"regexp"
	"strings"
)

// Language codes understood by the engine
const (
	English = "en"
	Greek   = "el"
)

// FleschConstants are the a, b, c terms of a - b*wordsPerSentence - c*syllablesPerWord
type FleschConstants struct {
	Base             float64
	SentenceLength   float64
	SyllablesPerWord float64
}

// Language holds the per-language tuning of the engine
type Language struct {
	Code                string
	Vowels              *regexp.Regexp // matches one vowel group
	Word                *regexp.Regexp // matches one word token
	SentenceEnd         *regexp.Regexp // terminator run followed by whitespace
	ComplexSyllables    int            // a word with at least this many syllables is complex
	Flesch              FleschConstants
	MinWords            int
	ReadingSpeed        int // words per minute
	SEOParagraphWords   int // paragraph length flagged by the SEO guidance
	SEOSentenceWords    int // average sentence length flagged by the SEO guidance
	syllableCorrections func(word string, count int) int
}

var languages = map[string]*Language{
	English: {
		Code:              English,
		Vowels:            regexp.MustCompile(`[aeiouy]+`),
		Word:              regexp.MustCompile(`[\p{Latin}0-9]+(?:['’]\p{Latin}+)*`),
		SentenceEnd:       regexp.MustCompile(`[.!?]+\s+`),
		ComplexSyllables:  3,
		Flesch:            FleschConstants{Base: 206.835, SentenceLength: 1.015, SyllablesPerWord: 84.6},
		MinWords:          40,
		ReadingSpeed:      200,
		SEOParagraphWords: 120,
		SEOSentenceWords:  20,
		syllableCorrections: func(word string, count int) int {
			if strings.HasSuffix(word, "e") {
				count--
			}
			if strings.HasSuffix(word, "le") && len(word) > 2 {
				count++
			}
			if strings.HasPrefix(word, "mc") {
				count++
			}
			return count
		},
	},
	Greek: {
		Code:              Greek,
		Vowels:            regexp.MustCompile(`[αεηιουωάέήίόύώϊϋΐΰ]+`),
		Word:              regexp.MustCompile(`[\p{Greek}\p{Latin}0-9]+`),
		SentenceEnd:       regexp.MustCompile(`[.!?;\x{037E}]+\s+`),
		ComplexSyllables:  4,
		Flesch:            FleschConstants{Base: 206.84, SentenceLength: 1.3, SyllablesPerWord: 60},
		MinWords:          40,
		ReadingSpeed:      180,
		SEOParagraphWords: 100,
		SEOSentenceWords:  20,
		syllableCorrections: func(word string, count int) int {
			if strings.HasSuffix(word, "οι") || strings.HasSuffix(word, "ει") {
				count--
			}
			if strings.HasSuffix(word, "ια") && len([]rune(word)) > 3 {
				count++
			}
			return count
		},
	},
}

// NormalizeLanguage maps codes such as "EL", "el-GR" or "greek" to a supported code, defaulting to English
func NormalizeLanguage(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	switch {
	case code == "el", strings.HasPrefix(code, "el-"), strings.HasPrefix(code, "el_"), code == "greek":
		return Greek
	default:
		return English
	}
}

// LanguageFor returns the configuration of a language code after normalization
func LanguageFor(code string) *Language {
	return languages[NormalizeLanguage(code)]
}
