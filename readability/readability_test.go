package readability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repeat(sentence string, n int) string {
	return strings.TrimSpace(strings.Repeat(sentence+" ", n))
}

func TestAnalyzeEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "<div><script>var x = 1;</script></div>"} {
		r := Analyze(input, Options{Language: "en"})
		require.NotNil(t, r)

		assert.True(t, r.Meta.IsInsufficient)
		assert.NotEmpty(t, r.Warnings)
		assert.Equal(t, Totals{}, r.Totals)
		assert.Zero(t, r.CompositeScore)

		require.Len(t, r.Formulas, 6)
		for i, f := range r.Formulas {
			assert.Equal(t, FormulaIDs[i], f.ID)
			assert.Zero(t, f.Score)
			assert.NotEmpty(t, f.Label)
		}

		assert.NotNil(t, r.Recommendations)
		assert.NotNil(t, r.Guidance.Issues)
		assert.NotNil(t, r.Guidance.Advice)
		assert.Len(t, r.Structure.Sentences.Distribution, 4)
		assert.Len(t, r.Structure.Paragraphs.Distribution, 4)
		assert.NotNil(t, r.Structure.Paragraphs.Items)
	}
}

func TestAnalyzeSimpleEnglish(t *testing.T) {
	r := Analyze("The cat sat on the mat. The dog ran to the park. We all had fun in the sun.", Options{Language: "en"})

	assert.Equal(t, 19, r.Totals.Words)
	assert.Equal(t, 3, r.Totals.Sentences)
	assert.Equal(t, 19, r.Totals.Syllables)
	assert.Equal(t, 0, r.Totals.ComplexWords)

	// 206.835 - 1.015*19/3 - 84.6*1
	assert.InDelta(t, 115.8, r.ReadingEase(), 0.05)

	fk, ok := r.Formula(FleschKincaidGrade)
	require.True(t, ok)
	assert.InDelta(t, -1.3, fk.Score, 0.05)
	assert.Equal(t, 100.0, fk.Normalized)

	require.Len(t, r.Recommendations, 1)
	assert.Equal(t, RecommendationSuccess, r.Recommendations[0].Type)

	assert.True(t, r.Meta.IsInsufficient)
	require.NotEmpty(t, r.Warnings)
	assert.Contains(t, r.Warnings[0], "40")
	assert.Equal(t, 1, r.Meta.ReadingTimeMinutes)
}

func TestAnalyzeGreekInsufficient(t *testing.T) {
	r := Analyze("Η ανάλυση του κειμένου είναι σημαντική. Οι σύντομες προτάσεις βοηθούν τον αναγνώστη.", Options{Language: "el"})

	assert.Equal(t, Greek, r.Meta.Language)
	assert.True(t, r.Meta.IsInsufficient)
	require.NotEmpty(t, r.Warnings)
	assert.Contains(t, r.Warnings[0], "40")
	assert.Contains(t, r.Warnings[0], "λέξεις")
	assert.Equal(t, 180, r.Meta.ReadingSpeed)
}

func TestAnalyzeLongParagraph(t *testing.T) {
	text := repeat("This is a sentence with several plain words in it.", 13)
	r := Analyze(text, Options{Language: "en"})

	assert.Equal(t, 130, r.Totals.Words)
	assert.Equal(t, 13, r.Totals.Sentences)
	assert.False(t, r.Meta.IsInsufficient)
	assert.Empty(t, r.Warnings)

	assert.Equal(t, 1, r.Structure.Paragraphs.Count)
	assert.Equal(t, 1, r.Structure.Paragraphs.Long)
	require.Len(t, r.Structure.Paragraphs.Outliers, 1)
	assert.Contains(t, r.Structure.Paragraphs.Outliers[0].Preview, "...")
	assert.Equal(t, 1, r.Structure.Paragraphs.Distribution[3].Count)
	assert.Equal(t, 13, r.Structure.Sentences.Distribution[1].Count)

	var types []RecommendationType
	for _, rec := range r.Recommendations {
		types = append(types, rec.Type)
	}
	assert.Contains(t, types, RecommendationWarning)
	assert.NotContains(t, types, RecommendationSuccess)

	t.Run("ReadingSpeed", func(t *testing.T) {
		slow := Analyze(text, Options{Language: "en", ReadingSpeed: 100})
		assert.Equal(t, 2, slow.Meta.ReadingTimeMinutes)
		assert.Equal(t, 1, r.Meta.ReadingTimeMinutes)
	})
}

func TestGuidanceParagraphLimitIsLanguageSpecific(t *testing.T) {
	english := Analyze(repeat("This is a sentence with several plain words in it.", 11), Options{Language: "en"})
	greek := Analyze(repeat("Αυτή είναι μια απλή πρόταση με δέκα λέξεις εδώ μέσα.", 11), Options{Language: "el"})

	codes := func(r *Result) []string {
		var out []string
		for _, issue := range r.Guidance.Issues {
			out = append(out, issue.Code)
		}
		return out
	}

	assert.Equal(t, 110, english.Totals.Words)
	assert.Equal(t, 110, greek.Totals.Words)
	assert.NotContains(t, codes(english), "paragraph-length")
	assert.Contains(t, codes(greek), "paragraph-length")
}

func TestGuidanceOrdering(t *testing.T) {
	text := "Notwithstanding considerable organizational uncertainty, international collaboration initiatives " +
		"necessitate comprehensive institutional accountability mechanisms, particularly regarding environmental " +
		"sustainability considerations and intergovernmental regulatory harmonization procedures. " +
		"Administrative complexity."
	r := Analyze(text, Options{Language: "en"})

	require.NotEmpty(t, r.Guidance.Issues)
	for i := 1; i < len(r.Guidance.Issues); i++ {
		assert.LessOrEqual(t, rank[r.Guidance.Issues[i-1].Severity], rank[r.Guidance.Issues[i].Severity])
	}
	assert.Equal(t, "critical", r.Guidance.Issues[0].Severity)

	require.NotEmpty(t, r.Guidance.Advice)
	assert.Equal(t, "maintenance", r.Guidance.Advice[len(r.Guidance.Advice)-1].Priority)

	assert.Equal(t, RecommendationCritical, r.Recommendations[0].Type)
	assert.Greater(t, r.Totals.ComplexWordRatio, 0.15)
}

func TestCompositeScore(t *testing.T) {
	assert.InDelta(t, 66.0, CompositeScore(70, []float64{60, 60, 60, 60, 60}), 0.01)
	assert.InDelta(t, 60.0, CompositeScore(100, nil), 0.01)
	assert.InDelta(t, 0.0, CompositeScore(0, []float64{0, 0}), 0.01)
}

func TestNormalization(t *testing.T) {
	assert.Equal(t, 100.0, NormalizeGrade(-4))
	assert.Equal(t, 60.0, NormalizeGrade(8))
	assert.Equal(t, 10.0, NormalizeGrade(18))
	assert.Equal(t, 10.0, NormalizeGrade(25))
	assert.Equal(t, 0.0, NormalizeEase(-10))
	assert.Equal(t, 100.0, NormalizeEase(115))
}

func TestEaseToGrade(t *testing.T) {
	tests := []struct {
		ease float64
		want float64
	}{
		{95, 5}, {90, 5}, {85, 6}, {70, 7}, {60, 9}, {55, 11}, {30, 14}, {29.9, 16}, {-10, 16},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EaseToGrade(tt.ease), "ease %v", tt.ease)
	}
}

func TestSyllables(t *testing.T) {
	en := LanguageFor("en")
	el := LanguageFor("el-GR")

	tests := []struct {
		lang *Language
		word string
		want int
	}{
		{en, "the", 1},
		{en, "cake", 1},
		{en, "table", 2},
		{en, "McDonald", 3},
		{en, "beautiful", 3},
		{en, "rhythm", 1},
		{el, "και", 1},
		{el, "καλημέρα", 4},
		{el, "άνθρωποι", 2},
		{el, "σπιτια", 3},
	}
	for _, tt := range tests {
		t.Run(tt.lang.Code+"/"+tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.lang.Syllables(tt.word))
		})
	}

	assert.True(t, en.IsComplex("beautiful"))
	assert.False(t, el.IsComplex("άνθρωποι"))
}

func TestSentences(t *testing.T) {
	el := LanguageFor("el")
	assert.Len(t, el.Sentences("Τι κάνεις; Καλά είμαι. Εσύ;"), 3)
	assert.Len(t, el.Sentences("Τι κάνεις; Καλά είμαι."), 2)

	en := LanguageFor("en")
	assert.Len(t, en.Sentences("One; two. Three!! Four?"), 3)
	assert.Len(t, en.Sentences("Heading\n\nBody text follows here."), 2)
	assert.Len(t, en.Sentences("Version 2.0 is out."), 1)
}

func TestSplitParagraphs(t *testing.T) {
	assert.Equal(t, []string{"First block.", "Second block."}, SplitParagraphs("First block.\n\n  \nSecond block."))

	lines := "This line is long enough to count.\nAnd so is this second line here."
	assert.Equal(t, []string{"This line is long enough to count.", "And so is this second line here."}, SplitParagraphs(lines))

	wrapped := "This line is long enough to count.\nshort one\nAnother line that is long enough."
	assert.Len(t, SplitParagraphs(wrapped), 1)

	assert.Empty(t, SplitParagraphs("  "))
}

func TestNormalizeLanguage(t *testing.T) {
	assert.Equal(t, Greek, NormalizeLanguage("EL"))
	assert.Equal(t, Greek, NormalizeLanguage("el-GR"))
	assert.Equal(t, English, NormalizeLanguage("fr"))
	assert.Equal(t, English, NormalizeLanguage(""))
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	text := repeat("Readable content keeps visitors on the page longer.", 8)
	assert.Equal(t, Analyze(text, Options{}), Analyze(text, Options{}))
}
