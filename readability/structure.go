package readability

const (
	longSentenceWords   = 25
	shortSentenceWords  = 8
	longParagraphWords  = 120
	shortParagraphWords = 40
	maxOutliers         = 5
	previewRunes        = 80
)

// Bucket is one bar of a length distribution
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Outlier points at a sentence or paragraph that is unusually long
type Outlier struct {
	Index   int    `json:"index"`
	Words   int    `json:"words"`
	Preview string `json:"preview"`
}

// SentenceStructure summarizes sentence lengths
type SentenceStructure struct {
	Count        int       `json:"count"`
	Long         int       `json:"long"`
	Short        int       `json:"short"`
	LongRatio    float64   `json:"longRatio"`
	AverageWords float64   `json:"averageWords"`
	Distribution []Bucket  `json:"distribution"`
	Outliers     []Outlier `json:"outliers"`
}

// ParagraphStat describes one paragraph
type ParagraphStat struct {
	Index       int     `json:"index"`
	Words       int     `json:"words"`
	Sentences   int     `json:"sentences"`
	ReadingEase float64 `json:"readingEase"`
	Long        bool    `json:"long"`
	Short       bool    `json:"short"`
}

// ParagraphStructure summarizes paragraph lengths
type ParagraphStructure struct {
	Count        int             `json:"count"`
	Long         int             `json:"long"`
	Short        int             `json:"short"`
	AverageWords float64         `json:"averageWords"`
	Items        []ParagraphStat `json:"items"`
	Distribution []Bucket        `json:"distribution"`
	Outliers     []Outlier       `json:"outliers"`
}

// Structure is the sentence and paragraph breakdown of a text
type Structure struct {
	Sentences  SentenceStructure  `json:"sentences"`
	Paragraphs ParagraphStructure `json:"paragraphs"`
}

func emptyStructure() Structure {
	return Structure{
		Sentences: SentenceStructure{
			Distribution: sentenceBuckets(),
			Outliers:     []Outlier{},
		},
		Paragraphs: ParagraphStructure{
			Items:        []ParagraphStat{},
			Distribution: paragraphBuckets(),
			Outliers:     []Outlier{},
		},
	}
}

func sentenceBuckets() []Bucket {
	return []Bucket{{Label: "0-8"}, {Label: "9-15"}, {Label: "16-25"}, {Label: "26+"}}
}

func paragraphBuckets() []Bucket {
	return []Bucket{{Label: "0-39"}, {Label: "40-80"}, {Label: "81-120"}, {Label: "121+"}}
}

func sentenceBucket(words int) int {
	switch {
	case words <= 8:
		return 0
	case words <= 15:
		return 1
	case words <= 25:
		return 2
	default:
		return 3
	}
}

func paragraphBucket(words int) int {
	switch {
	case words < 40:
		return 0
	case words <= 80:
		return 1
	case words <= 120:
		return 2
	default:
		return 3
	}
}

// analyzeStructure measures every sentence and paragraph of the text
func analyzeStructure(lang *Language, sentences, paragraphs []string) Structure {
	st := emptyStructure()

	totalWords := 0
	for i, s := range sentences {
		words := len(lang.Words(s))
		totalWords += words
		st.Sentences.Distribution[sentenceBucket(words)].Count++

		switch {
		case words > longSentenceWords:
			st.Sentences.Long++
			if len(st.Sentences.Outliers) < maxOutliers {
				st.Sentences.Outliers = append(st.Sentences.Outliers, Outlier{Index: i, Words: words, Preview: preview(s, previewRunes)})
			}
		case words <= shortSentenceWords:
			st.Sentences.Short++
		}
	}
	st.Sentences.Count = len(sentences)
	if st.Sentences.Count > 0 {
		st.Sentences.LongRatio = round2(float64(st.Sentences.Long) / float64(st.Sentences.Count))
		st.Sentences.AverageWords = round1(float64(totalWords) / float64(st.Sentences.Count))
	}

	totalWords = 0
	for i, p := range paragraphs {
		ps := measure(lang, p)
		stat := ParagraphStat{
			Index:       i,
			Words:       ps.words,
			Sentences:   ps.sentences,
			ReadingEase: round1(readingEase(ps, lang.Flesch)),
			Long:        ps.words > longParagraphWords,
			Short:       ps.words < shortParagraphWords,
		}
		totalWords += ps.words
		st.Paragraphs.Items = append(st.Paragraphs.Items, stat)
		st.Paragraphs.Distribution[paragraphBucket(ps.words)].Count++

		if stat.Long {
			st.Paragraphs.Long++
			if len(st.Paragraphs.Outliers) < maxOutliers {
				st.Paragraphs.Outliers = append(st.Paragraphs.Outliers, Outlier{Index: i, Words: ps.words, Preview: preview(p, previewRunes)})
			}
		}
		if stat.Short {
			st.Paragraphs.Short++
		}
	}
	st.Paragraphs.Count = len(paragraphs)
	if st.Paragraphs.Count > 0 {
		st.Paragraphs.AverageWords = round1(float64(totalWords) / float64(st.Paragraphs.Count))
	}

	return st
}

// measure computes the formula inputs of a block of text
func measure(lang *Language, text string) stats {
	words := lang.Words(text)
	s := stats{
		words:     len(words),
		sentences: len(lang.Sentences(text)),
		letters:   countLetters(words),
	}
	for _, w := range words {
		syl := lang.Syllables(w)
		s.syllables += syl
		if syl >= lang.ComplexSyllables {
			s.complexWords++
		}
	}
	return s
}
