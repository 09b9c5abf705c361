package readability

import "math"

// Formula identifiers, in result order
const (
	FleschReadingEase         = "flesch-reading-ease"
	FleschKincaidGrade        = "flesch-kincaid-grade"
	GunningFog                = "gunning-fog"
	SMOG                      = "smog"
	ColemanLiau               = "coleman-liau"
	AutomatedReadabilityIndex = "automated-readability-index"
)

// FormulaIDs lists every formula in the order results report them
var FormulaIDs = []string{
	FleschReadingEase, FleschKincaidGrade, GunningFog, SMOG, ColemanLiau, AutomatedReadabilityIndex,
}

const (
	minEase  = -10
	maxEase  = 120
	maxGrade = 18

	easeWeight  = 0.6
	gradeWeight = 0.4
)

// FormulaKind tells ease-type scores (higher is easier) from grade-type scores (school grade)
type FormulaKind string

const (
	KindEase  FormulaKind = "ease"
	KindGrade FormulaKind = "grade"
)

// Formula is one readability formula's result
type Formula struct {
	ID             string      `json:"id"`
	Label          string      `json:"label"`
	Kind           FormulaKind `json:"kind"`
	Score          float64     `json:"score"`
	Normalized     float64     `json:"normalized"` // 0-100, higher is easier
	GradeLevel     float64     `json:"gradeLevel"`
	Interpretation string      `json:"interpretation"`
}

// stats are the aggregate counts every formula is computed from
type stats struct {
	words        int
	sentences    int
	syllables    int
	complexWords int
	letters      int
}

func (s stats) wordsPerSentence() float64 {
	if s.sentences == 0 {
		return 0
	}
	return float64(s.words) / float64(s.sentences)
}

func (s stats) syllablesPerWord() float64 {
	if s.words == 0 {
		return 0
	}
	return float64(s.syllables) / float64(s.words)
}

func (s stats) complexRatio() float64 {
	if s.words == 0 {
		return 0
	}
	return float64(s.complexWords) / float64(s.words)
}

// readingEase is the Flesch reading ease with the language's constants, clamped to [-10, 120]
func readingEase(s stats, c FleschConstants) float64 {
	if s.words == 0 || s.sentences == 0 {
		return 0
	}
	score := c.Base - c.SentenceLength*s.wordsPerSentence() - c.SyllablesPerWord*s.syllablesPerWord()
	return clamp(score, minEase, maxEase)
}

func fleschKincaid(s stats) float64 {
	return 0.39*s.wordsPerSentence() + 11.8*s.syllablesPerWord() - 15.59
}

func gunningFog(s stats) float64 {
	return 0.4 * (s.wordsPerSentence() + 100*s.complexRatio())
}

func smog(s stats) float64 {
	if s.sentences == 0 {
		return 0
	}
	return 1.043*math.Sqrt(float64(s.complexWords)*30/float64(s.sentences)) + 3.1291
}

func colemanLiau(s stats) float64 {
	if s.words == 0 {
		return 0
	}
	l := float64(s.letters) / float64(s.words) * 100
	sent := float64(s.sentences) / float64(s.words) * 100
	return 0.0588*l - 0.296*sent - 15.8
}

func automatedReadability(s stats) float64 {
	if s.words == 0 {
		return 0
	}
	return 4.71*(float64(s.letters)/float64(s.words)) + 0.5*s.wordsPerSentence() - 21.43
}

// EaseToGrade maps a reading-ease score to an approximate school grade
func EaseToGrade(ease float64) float64 {
	switch {
	case ease >= 90:
		return 5
	case ease >= 80:
		return 6
	case ease >= 70:
		return 7
	case ease >= 60:
		return 9
	case ease >= 50:
		return 11
	case ease >= 30:
		return 14
	default:
		return 16
	}
}

// NormalizeGrade maps a grade level onto 0-100 where higher is easier
func NormalizeGrade(grade float64) float64 {
	return clamp(100-clamp(grade, 0, maxGrade)*5, 0, 100)
}

// NormalizeEase maps a reading-ease score onto 0-100
func NormalizeEase(ease float64) float64 {
	return clamp(ease, 0, 100)
}

// CompositeScore blends the normalized ease score with the average of the normalized
// grade scores, weighting ease at 60%
func CompositeScore(normalizedEase float64, normalizedGrades []float64) float64 {
	avg := 0.0
	if len(normalizedGrades) > 0 {
		for _, g := range normalizedGrades {
			avg += g
		}
		avg /= float64(len(normalizedGrades))
	}
	return round1(easeWeight*normalizedEase + gradeWeight*avg)
}

// computeFormulas evaluates all six formulas for s, labelled in the given language
func computeFormulas(s stats, lang *Language, msg messages) []Formula {
	ease := readingEase(s, lang.Flesch)
	formulas := []Formula{{
		ID:         FleschReadingEase,
		Kind:       KindEase,
		Score:      round1(ease),
		Normalized: round1(NormalizeEase(ease)),
		GradeLevel: EaseToGrade(ease),
	}}

	grades := []struct {
		id    string
		score float64
	}{
		{FleschKincaidGrade, fleschKincaid(s)},
		{GunningFog, gunningFog(s)},
		{SMOG, smog(s)},
		{ColemanLiau, colemanLiau(s)},
		{AutomatedReadabilityIndex, automatedReadability(s)},
	}
	for _, g := range grades {
		formulas = append(formulas, Formula{
			ID:         g.id,
			Kind:       KindGrade,
			Score:      round1(g.score),
			Normalized: round1(NormalizeGrade(g.score)),
			GradeLevel: round1(clamp(g.score, 0, maxGrade)),
		})
	}

	for i := range formulas {
		formulas[i].Label = msg.formulaLabel(formulas[i].ID)
		formulas[i].Interpretation = msg.level(levelFor(formulas[i].Normalized))
	}
	return formulas
}

// composite computes the composite score of a formula set
func composite(formulas []Formula) float64 {
	var ease float64
	grades := make([]float64, 0, len(formulas))
	for _, f := range formulas {
		if f.Kind == KindEase {
			ease = f.Normalized
			continue
		}
		grades = append(grades, f.Normalized)
	}
	return CompositeScore(ease, grades)
}

// levelFor buckets a 0-100 score with the reading-ease bands
func levelFor(score float64) string {
	switch {
	case score >= 90:
		return "very-easy"
	case score >= 80:
		return "easy"
	case score >= 70:
		return "fairly-easy"
	case score >= 60:
		return "standard"
	case score >= 50:
		return "fairly-difficult"
	case score >= 30:
		return "difficult"
	default:
		return "very-difficult"
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
