package keywords

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Suggestion is a candidate keyword mined from content
type Suggestion struct {
	Keyword   string  `json:"keyword"`
	Frequency int     `json:"frequency"`
	Density   float64 `json:"density"`
	Score     float64 `json:"score"`
	IsPhrase  bool    `json:"isPhrase"`
}

// SuggestOptions tunes Suggest; zero values select the defaults
type SuggestOptions struct {
	Language     string // "en" or "el"; English stopwords are removed for every language
	Limit        int    // default 10
	MinLength    int    // minimum rune length of a single word, default 3
	MinFrequency int    // default 2
}

const phraseBonus = 1.5

var (
	urlPattern   = regexp.MustCompile(`(?i)\b(?:https?://|www\.)\S+`)
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	codeToken    = regexp.MustCompile(`\S*[{}()\[\];=<>$#\\|` + "`" + `]\S*`)
	camelCase    = regexp.MustCompile(`\b[a-z]+[A-Z][A-Za-z0-9]*\b`)
	snakeCase    = regexp.MustCompile(`\b\w+_\w+\b`)
	dottedName   = regexp.MustCompile(`\b\w+\.\w+\(`)
	wordPattern  = regexp.MustCompile(`[\p{L}\p{N}]+`)
	onlyDigits   = regexp.MustCompile(`^\p{N}+$`)
)

// code identifiers and markup words that are never useful keywords
var codeWords = map[string]bool{
	"function": true, "var": true, "const": true, "let": true, "return": true,
	"null": true, "undefined": true, "true": true, "false": true, "html": true,
	"div": true, "span": true, "class": true, "href": true, "src": true,
	"http": true, "https": true, "www": true, "com": true, "px": true,
}

var stopwords = map[string]map[string]bool{
	"en": toSet(`a about above after again against all also am an and any are as at be because been
		before being below between both but by can could did do does doing down during each few for
		from further had has have having he her here hers him his how i if in into is it its itself
		just me more most my no nor not now of off on once only or other our ours out over own same
		she should so some such than that the their theirs them then there these they this those
		through to too under until up very was we were what when where which while who whom why will
		with would you your yours`),
	"el": toSet(`ο η το οι τα του της των τον την τους τις ένας μια ένα και σε στο στη στην στον στα
		στις στους με για από που να θα δεν μη μην είναι ήταν ή ως προς κατά μετά χωρίς όπως αλλά
		επίσης πιο πολύ τι ότι όταν εάν αν αυτό αυτή αυτός αυτά αυτές αυτοί εγώ εσύ εμείς εσείς
		μας σας μου σου του τους έχει έχουν όλα όλοι κάθε μόνο ακόμα ήδη εδώ εκεί πως πώς ενώ`),
}

func toSet(words string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(words) {
		set[w] = true
	}
	return set
}

// IsStopword reports whether w is a stopword in English or Greek
func IsStopword(w string) bool {
	w = strings.ToLower(w)
	return stopwords["en"][w] || stopwords["el"][w]
}

// Suggest mines candidate keywords and two-word phrases from text.
// Frequency and density are counted with CountOccurrences and Density, the same
// routines the keyword rules use.
func Suggest(text string, opts SuggestOptions) []Suggestion {
	opts = withDefaults(opts)

	cleaned := stripCode(text)
	tokens := wordPattern.FindAllString(Normalize(cleaned), -1)

	candidates := make(map[string]bool)
	for i, tok := range tokens {
		if !usableWord(tok, opts) {
			continue
		}
		candidates[tok] = true
		if i+1 < len(tokens) && usableWord(tokens[i+1], opts) {
			candidates[tok+" "+tokens[i+1]] = true
		}
	}

	suggestions := make([]Suggestion, 0, len(candidates))
	for kw := range candidates {
		freq := CountOccurrences(text, kw)
		if freq < opts.MinFrequency {
			continue
		}
		isPhrase := strings.Contains(kw, " ")
		suggestions = append(suggestions, Suggestion{
			Keyword:   kw,
			Frequency: freq,
			Density:   Density(text, kw),
			Score:     score(kw, freq, isPhrase),
			IsPhrase:  isPhrase,
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Score != suggestions[j].Score {
			return suggestions[i].Score > suggestions[j].Score
		}
		return suggestions[i].Keyword < suggestions[j].Keyword
	})

	if len(suggestions) > opts.Limit {
		suggestions = suggestions[:opts.Limit]
	}
	return suggestions
}

func withDefaults(opts SuggestOptions) SuggestOptions {
	if opts.Limit <= 0 {
		opts.Limit = 10
	}
	if opts.MinLength <= 0 {
		opts.MinLength = 3
	}
	if _, ok := stopwords[opts.Language]; !ok {
		opts.Language = "en"
	}
	if opts.MinFrequency <= 0 {
		opts.MinFrequency = 2
	}
	return opts
}

// score favours frequent, longer terms and gives phrases a fixed bonus
func score(kw string, freq int, isPhrase bool) float64 {
	length := utf8.RuneCountInString(kw)
	if length > 12 {
		length = 12
	}
	s := float64(freq) * (1 + float64(length)/12)
	if isPhrase {
		s *= phraseBonus
	}
	return s
}

func usableWord(w string, opts SuggestOptions) bool {
	if utf8.RuneCountInString(w) < opts.MinLength {
		return false
	}
	if onlyDigits.MatchString(w) || codeWords[w] {
		return false
	}
	return !stopwords["en"][w] && !stopwords[opts.Language][w]
}

// stripCode blanks out URLs, e-mail addresses and code-like tokens before mining
func stripCode(text string) string {
	for _, re := range []*regexp.Regexp{urlPattern, emailPattern, dottedName, codeToken, camelCase, snakeCase} {
		text = re.ReplaceAllString(text, " ")
	}
	return text
}
