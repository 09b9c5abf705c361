package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountOccurrences(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		keyword string
		want    int
	}{
		{"single word", "SEO tips: seo matters for every seo-friendly page", "seo", 3},
		{"word inside another word", "seotools and superseo are not seo", "seo", 1},
		{"phrase with flexible whitespace", "content marketing works.\nContent\tmarketing   again", "content marketing", 2},
		{"phrase from hyphenated keyword", "long-tail keywords and long tail keywords", "long-tail keywords", 2},
		{"regex metacharacters escaped", "we love c++ and c++ loves us", "c++", 2},
		{"greek word", "Η βελτιστοποίηση είναι σημαντική. Βελτιστοποίηση παντού!", "βελτιστοποίηση", 2},
		{"greek word boundary", "βελτιστοποίησης και βελτιστοποίηση", "βελτιστοποίηση", 1},
		{"greek accented prefix", "αβελτιστοποίηση", "βελτιστοποίηση", 0},
		{"greek final sigma in capitals", "ΟΔΟΣ και οδός, η οδος", "οδος", 2},
		{"greek final sigma in keyword capitals", "Η οδος είναι κλειστή", "ΟΔΟΣ", 1},
		{"greek phrase ending in sigma", "ΝΕΑ ΟΔΟΣ και νέα οδος", "νεα οδος", 1},
		{"empty keyword", "anything", "   ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountOccurrences(tt.text, tt.keyword))
		})
	}
}

func TestDensity(t *testing.T) {
	t.Run("SingleWord", func(t *testing.T) {
		// 2 occurrences in 10 words
		text := "go is fun and go is fast for all developers"
		assert.Equal(t, 20.0, Density(text, "go"))
	})

	t.Run("PhraseCountsEveryWord", func(t *testing.T) {
		// 2 occurrences * 2 words / 10 words
		text := "seo tools help; good seo tools help more people"
		assert.Equal(t, 40.0, Density(text, "seo tools"))
	})

	t.Run("AbsentKeywordIsZero", func(t *testing.T) {
		assert.Equal(t, 0.0, Density("nothing to see here", "keyword"))
		assert.Equal(t, 0.0, Density("", "keyword"))
	})

	t.Run("Idempotent", func(t *testing.T) {
		text := "Η ανάλυση περιεχομένου βοηθά την ανάλυση."
		first := Density(text, "ανάλυση")
		assert.Equal(t, first, Density(text, "ανάλυση"))
		assert.Greater(t, first, 0.0)
	})
}

func TestParseList(t *testing.T) {
	assert.Equal(t, []string{"seo", "content marketing"}, ParseList(" seo, content marketing ,, SEO "))
	assert.Empty(t, ParseList(""))
}

func TestDensityMap(t *testing.T) {
	m := DensityMap("alpha beta alpha gamma", []string{"alpha", " ", "delta"})
	assert.Equal(t, map[string]float64{"alpha": 50, "delta": 0}, m)
}

func TestSuggest(t *testing.T) {
	text := `Keyword research guides content strategy. Good keyword research starts with intent.
	Content strategy needs keyword research and measurable goals. Visit https://example.com/keyword-research
	or call getKeywordResearch() from your_code_here; the function returns null.`

	suggestions := Suggest(text, SuggestOptions{Language: "en"})
	require.NotEmpty(t, suggestions)

	t.Run("PhrasesRankFirst", func(t *testing.T) {
		assert.Equal(t, "keyword research", suggestions[0].Keyword)
		assert.True(t, suggestions[0].IsPhrase)
	})

	t.Run("NoStopwordsOrCode", func(t *testing.T) {
		for _, s := range suggestions {
			assert.False(t, IsStopword(s.Keyword), s.Keyword)
			assert.NotContains(t, []string{"function", "null", "getkeywordresearch", "https"}, s.Keyword)
		}
	})

	t.Run("SortedByScore", func(t *testing.T) {
		for i := 1; i < len(suggestions); i++ {
			assert.GreaterOrEqual(t, suggestions[i-1].Score, suggestions[i].Score)
		}
	})

	t.Run("DensityMatchesDensityHelper", func(t *testing.T) {
		for _, s := range suggestions {
			assert.Equal(t, Density(text, s.Keyword), s.Density, s.Keyword)
			assert.Equal(t, CountOccurrences(text, s.Keyword), s.Frequency, s.Keyword)
		}
	})

	t.Run("Limit", func(t *testing.T) {
		assert.Len(t, Suggest(text, SuggestOptions{Limit: 2}), 2)
	})
}

func TestSuggestGreek(t *testing.T) {
	text := "Η ψηφιακή στρατηγική είναι σημαντική. Η ψηφιακή στρατηγική και η ψηφιακή παρουσία χρειάζονται χρόνο."
	suggestions := Suggest(text, SuggestOptions{Language: "el"})
	require.NotEmpty(t, suggestions)

	keywords := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		keywords = append(keywords, s.Keyword)
		assert.Equal(t, Density(text, s.Keyword), s.Density)
	}
	assert.Contains(t, keywords, "ψηφιακή στρατηγική")
	assert.Contains(t, keywords, "ψηφιακή")
	assert.NotContains(t, keywords, "και")
}
