// Package readability scores text with six classic readability formulas,
// language-specific constants for English and Greek, sentence and paragraph
// structure statistics, and threshold-based guidance.
package readability

import (
	"math"
	"strings"

	"github.com/seo-optimizer/content-analyzer/content"
	"github.com/seo-optimizer/content-analyzer/logging"
)

const minSentences = 3

// Options selects the language and reading speed of an analysis
type Options struct {
	Language     string `json:"language"`
	ReadingSpeed int    `json:"readingSpeed"` // words per minute; 0 uses the language default
}

// Totals are the aggregate counts of the analyzed text
type Totals struct {
	Words                int     `json:"words"`
	Sentences            int     `json:"sentences"`
	Paragraphs           int     `json:"paragraphs"`
	Syllables            int     `json:"syllables"`
	ComplexWords         int     `json:"complexWords"`
	Characters           int     `json:"characters"`
	Letters              int     `json:"letters"`
	AvgWordsPerSentence  float64 `json:"avgWordsPerSentence"`
	AvgSyllablesPerWord  float64 `json:"avgSyllablesPerWord"`
	AvgWordsPerParagraph float64 `json:"avgWordsPerParagraph"`
	ComplexWordRatio     float64 `json:"complexWordRatio"`
}

// Meta describes how the result was produced
type Meta struct {
	Language           string `json:"language"`
	IsInsufficient     bool   `json:"isInsufficient"`
	MinWords           int    `json:"minWords"`
	ReadingSpeed       int    `json:"readingSpeed"`
	ReadingTimeMinutes int    `json:"readingTimeMinutes"`
}

// Result is a complete readability snapshot. Every slice is non-nil, also for empty input.
type Result struct {
	Totals          Totals           `json:"totals"`
	Formulas        []Formula        `json:"formulas"`
	CompositeScore  float64          `json:"compositeScore"`
	Level           string           `json:"level"`
	Structure       Structure        `json:"structure"`
	Recommendations []Recommendation `json:"recommendations"`
	Guidance        Guidance         `json:"guidance"`
	Warnings        []string         `json:"warnings"`
	Meta            Meta             `json:"meta"`
}

// Formula returns the result of one formula by id
func (r *Result) Formula(id string) (Formula, bool) {
	for _, f := range r.Formulas {
		if f.ID == id {
			return f, true
		}
	}
	return Formula{}, false
}

// ReadingEase returns the Flesch reading ease score
func (r *Result) ReadingEase() float64 {
	f, _ := r.Formula(FleschReadingEase)
	return f.Score
}

// Engine runs readability analyses. It holds no per-analysis state and is safe for concurrent use.
type Engine struct {
	parser *content.Parser
	logger logging.Logger
}

// NewEngine creates an engine; a nil logger discards output
func NewEngine(logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Engine{parser: content.NewParser(logger), logger: logger}
}

var defaultEngine = NewEngine(nil)

// Analyze runs the default engine on HTML or plain text
func Analyze(input string, opts Options) *Result {
	return defaultEngine.Analyze(input, opts)
}

// AnalyzeParsed runs the default engine on already parsed content
func AnalyzeParsed(parsed *content.ParsedContent, opts Options) *Result {
	return defaultEngine.AnalyzeParsed(parsed, opts)
}

// Analyze parses HTML or plain text and scores it. Tags are stripped directly when the
// structural parse finds no text.
func (e *Engine) Analyze(input string, opts Options) *Result {
	parsed := e.parser.Parse(input)
	text := parsed.Text
	if strings.TrimSpace(text) == "" {
		text = content.StripTags(input)
	}
	return e.analyze(text, parsed.Paragraphs, opts)
}

// AnalyzeParsed scores already parsed content
func (e *Engine) AnalyzeParsed(parsed *content.ParsedContent, opts Options) *Result {
	if parsed == nil {
		parsed = content.Empty()
	}
	return e.analyze(parsed.Text, parsed.Paragraphs, opts)
}

func (e *Engine) analyze(text string, paragraphs []string, opts Options) *Result {
	lang := LanguageFor(opts.Language)
	msg := messagesFor(lang.Code)
	speed := opts.ReadingSpeed
	if speed <= 0 {
		speed = lang.ReadingSpeed
	}

	words := lang.Words(text)
	if len(words) == 0 {
		return emptyResult(lang, msg, speed)
	}

	if len(paragraphs) == 0 {
		paragraphs = SplitParagraphs(text)
	}
	sentences := lang.Sentences(text)

	s := stats{
		words:     len(words),
		sentences: len(sentences),
		letters:   countLetters(words),
	}
	for _, w := range words {
		syl := lang.Syllables(w)
		s.syllables += syl
		if syl >= lang.ComplexSyllables {
			s.complexWords++
		}
	}

	totals := Totals{
		Words:               s.words,
		Sentences:           s.sentences,
		Paragraphs:          len(paragraphs),
		Syllables:           s.syllables,
		ComplexWords:        s.complexWords,
		Characters:          len([]rune(text)),
		Letters:             s.letters,
		AvgWordsPerSentence: round2(s.wordsPerSentence()),
		AvgSyllablesPerWord: round2(s.syllablesPerWord()),
		ComplexWordRatio:    round2(s.complexRatio()),
	}
	if len(paragraphs) > 0 {
		totals.AvgWordsPerParagraph = round2(float64(s.words) / float64(len(paragraphs)))
	}

	formulas := computeFormulas(s, lang, msg)
	structure := analyzeStructure(lang, sentences, paragraphs)
	ease := formulas[0].Score
	score := composite(formulas)

	result := &Result{
		Totals:          totals,
		Formulas:        formulas,
		CompositeScore:  score,
		Level:           msg.level(levelFor(score)),
		Structure:       structure,
		Recommendations: recommendations(ease, totals, structure, msg),
		Guidance:        guidance(lang, ease, totals, structure, msg),
		Warnings:        []string{},
		Meta: Meta{
			Language:           lang.Code,
			MinWords:           lang.MinWords,
			ReadingSpeed:       speed,
			ReadingTimeMinutes: int(math.Ceil(float64(s.words) / float64(speed))),
		},
	}

	if s.words < lang.MinWords {
		result.Meta.IsInsufficient = true
		result.Warnings = append(result.Warnings, msg.get("warning.min-words", s.words, lang.MinWords))
	}
	if s.sentences < minSentences {
		result.Meta.IsInsufficient = true
		result.Warnings = append(result.Warnings, msg.get("warning.min-sentences", s.sentences))
	}
	if result.Meta.IsInsufficient {
		e.logger.Debug("readability computed on insufficient text", "words", s.words, "sentences", s.sentences, "language", lang.Code)
	}

	return result
}

// emptyResult is the zero-valued result with every collection allocated and all six formulas present
func emptyResult(lang *Language, msg messages, speed int) *Result {
	formulas := make([]Formula, 0, len(FormulaIDs))
	for _, id := range FormulaIDs {
		kind := KindGrade
		if id == FleschReadingEase {
			kind = KindEase
		}
		formulas = append(formulas, Formula{ID: id, Label: msg.formulaLabel(id), Kind: kind})
	}

	return &Result{
		Formulas:        formulas,
		Structure:       emptyStructure(),
		Recommendations: []Recommendation{},
		Guidance:        Guidance{Issues: []GuidanceIssue{}, Advice: []Advice{}},
		Warnings: []string{
			msg.get("warning.empty"),
			msg.get("warning.min-words", 0, lang.MinWords),
		},
		Meta: Meta{
			Language:       lang.Code,
			IsInsufficient: true,
			MinWords:       lang.MinWords,
			ReadingSpeed:   speed,
		},
	}
}
