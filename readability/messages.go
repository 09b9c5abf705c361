package readability

import "fmt"

// messages looks up display text for one language, falling back to English
type messages struct {
	table map[string]string
}

func messagesFor(lang string) messages {
	if t, ok := catalog[lang]; ok {
		return messages{table: t}
	}
	return messages{table: catalog[English]}
}

func (m messages) get(key string, args ...any) string {
	format, ok := m.table[key]
	if !ok {
		format, ok = catalog[English][key]
	}
	if !ok {
		return key
	}
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

func (m messages) formulaLabel(id string) string {
	return m.get("formula." + id)
}

func (m messages) level(key string) string {
	return m.get("level." + key)
}

var catalog = map[string]map[string]string{
	English: {
		"formula.flesch-reading-ease":         "Flesch Reading Ease",
		"formula.flesch-kincaid-grade":        "Flesch-Kincaid Grade Level",
		"formula.gunning-fog":                 "Gunning Fog Index",
		"formula.smog":                        "SMOG Index",
		"formula.coleman-liau":                "Coleman-Liau Index",
		"formula.automated-readability-index": "Automated Readability Index",

		"level.very-easy":        "Very easy to read",
		"level.easy":             "Easy to read",
		"level.fairly-easy":      "Fairly easy to read",
		"level.standard":         "Plain language",
		"level.fairly-difficult": "Fairly difficult to read",
		"level.difficult":        "Difficult to read",
		"level.very-difficult":   "Very difficult to read",

		"warning.empty":         "No readable text was found; all readability metrics are zero.",
		"warning.min-words":     "The text has only %d words; at least %d words are needed for reliable readability scores.",
		"warning.min-sentences": "The text has only %d sentences; at least 3 sentences are needed for reliable readability scores.",

		"rec.ease.title":              "Improve readability",
		"rec.ease.message":            "The reading ease score is %.1f. Aim for 60 or higher by using shorter sentences and simpler words.",
		"rec.long-sentences.title":    "Shorten long sentences",
		"rec.long-sentences.message":  "%.0f%% of sentences have more than 25 words. Split them so no more than 20%% are long.",
		"rec.complex-words.title":     "Use simpler words",
		"rec.complex-words.message":   "%.0f%% of words are complex. Replace jargon and long words where a shorter one works.",
		"rec.long-paragraphs.title":   "Break up long paragraphs",
		"rec.long-paragraphs.message": "%d paragraphs have more than 120 words. Split them into shorter blocks.",
		"rec.success.title":           "Readability looks good",
		"rec.success.message":         "The text is easy to follow. Keep sentences short and paragraphs focused.",

		"seo.very-difficult":   "The text is very hard to read (reading ease %.1f); most visitors will leave before finishing it.",
		"seo.difficult":        "The text is hard to read (reading ease %.1f), which hurts engagement signals.",
		"seo.below-standard":   "Reading ease %.1f is below the recommended 60 for web content.",
		"seo.sentence-length":  "Sentences average %.1f words; keep them under %d for scannable web copy.",
		"seo.paragraph-length": "%d paragraphs exceed %d words; long blocks are skipped on mobile screens.",
		"seo.complex-words":    "%.0f%% of words are complex; search snippets and voice answers favour plain wording.",
		"seo.thin-content":     "Only %d words; pages under 300 words rarely rank for competitive queries.",
		"seo.long-sentences":   "%d sentences are longer than 25 words; rewrite the longest ones first.",

		"advice.very-difficult":   "Rewrite the introduction and key sections in short, direct sentences.",
		"advice.difficult":        "Replace long words with common alternatives and split compound sentences.",
		"advice.below-standard":   "Trim filler words and prefer active voice to raise the reading ease above 60.",
		"advice.sentence-length":  "Split sentences at conjunctions and keep one idea per sentence.",
		"advice.paragraph-length": "Limit paragraphs to %d words and open each with its main point.",
		"advice.complex-words":    "Explain technical terms once and use plain words elsewhere.",
		"advice.thin-content":     "Expand the page with examples, answers to common questions and supporting detail.",
		"advice.long-sentences":   "Break the flagged sentences into two or three shorter ones.",
		"advice.maintenance":      "Recheck readability whenever the content is updated to keep it consistent.",
	},
	Greek: {
		"formula.flesch-reading-ease":         "Ευκολία Ανάγνωσης Flesch",
		"formula.flesch-kincaid-grade":        "Βαθμίδα Flesch-Kincaid",
		"formula.gunning-fog":                 "Δείκτης Gunning Fog",
		"formula.smog":                        "Δείκτης SMOG",
		"formula.coleman-liau":                "Δείκτης Coleman-Liau",
		"formula.automated-readability-index": "Αυτοματοποιημένος Δείκτης Αναγνωσιμότητας",

		"level.very-easy":        "Πολύ εύκολο στην ανάγνωση",
		"level.easy":             "Εύκολο στην ανάγνωση",
		"level.fairly-easy":      "Σχετικά εύκολο στην ανάγνωση",
		"level.standard":         "Απλή γλώσσα",
		"level.fairly-difficult": "Σχετικά δύσκολο στην ανάγνωση",
		"level.difficult":        "Δύσκολο στην ανάγνωση",
		"level.very-difficult":   "Πολύ δύσκολο στην ανάγνωση",

		"warning.empty":         "Δεν βρέθηκε κείμενο προς ανάλυση· όλοι οι δείκτες αναγνωσιμότητας είναι μηδέν.",
		"warning.min-words":     "Το κείμενο έχει μόνο %d λέξεις· χρειάζονται τουλάχιστον %d λέξεις για αξιόπιστα αποτελέσματα αναγνωσιμότητας.",
		"warning.min-sentences": "Το κείμενο έχει μόνο %d προτάσεις· χρειάζονται τουλάχιστον 3 προτάσεις για αξιόπιστα αποτελέσματα αναγνωσιμότητας.",

		"rec.ease.title":              "Βελτιώστε την αναγνωσιμότητα",
		"rec.ease.message":            "Η ευκολία ανάγνωσης είναι %.1f. Στοχεύστε σε 60 ή περισσότερο με μικρότερες προτάσεις και απλούστερες λέξεις.",
		"rec.long-sentences.title":    "Συντομεύστε τις μεγάλες προτάσεις",
		"rec.long-sentences.message":  "Το %.0f%% των προτάσεων έχει πάνω από 25 λέξεις. Χωρίστε τες ώστε να μην ξεπερνούν το 20%%.",
		"rec.complex-words.title":     "Χρησιμοποιήστε απλούστερες λέξεις",
		"rec.complex-words.message":   "Το %.0f%% των λέξεων είναι σύνθετες. Αντικαταστήστε την ορολογία όπου υπάρχει απλούστερη λέξη.",
		"rec.long-paragraphs.title":   "Χωρίστε τις μεγάλες παραγράφους",
		"rec.long-paragraphs.message": "%d παράγραφοι έχουν πάνω από 120 λέξεις. Χωρίστε τες σε μικρότερα τμήματα.",
		"rec.success.title":           "Η αναγνωσιμότητα είναι καλή",
		"rec.success.message":         "Το κείμενο διαβάζεται εύκολα. Διατηρήστε τις προτάσεις σύντομες και τις παραγράφους εστιασμένες.",

		"seo.very-difficult":   "Το κείμενο διαβάζεται πολύ δύσκολα (ευκολία ανάγνωσης %.1f)· οι περισσότεροι επισκέπτες θα φύγουν νωρίς.",
		"seo.difficult":        "Το κείμενο διαβάζεται δύσκολα (ευκολία ανάγνωσης %.1f), κάτι που βλάπτει την αλληλεπίδραση.",
		"seo.below-standard":   "Η ευκολία ανάγνωσης %.1f είναι κάτω από το προτεινόμενο 60 για περιεχόμενο ιστού.",
		"seo.sentence-length":  "Οι προτάσεις έχουν κατά μέσο όρο %.1f λέξεις· κρατήστε τες κάτω από %d.",
		"seo.paragraph-length": "%d παράγραφοι ξεπερνούν τις %d λέξεις· τα μεγάλα τμήματα παραλείπονται σε κινητά.",
		"seo.complex-words":    "Το %.0f%% των λέξεων είναι σύνθετες· τα αποσπάσματα αναζήτησης προτιμούν απλή διατύπωση.",
		"seo.thin-content":     "Μόνο %d λέξεις· σελίδες κάτω από 300 λέξεις σπάνια κατατάσσονται ψηλά.",
		"seo.long-sentences":   "%d προτάσεις έχουν πάνω από 25 λέξεις· ξαναγράψτε πρώτα τις μεγαλύτερες.",

		"advice.very-difficult":   "Ξαναγράψτε την εισαγωγή και τις βασικές ενότητες με σύντομες, άμεσες προτάσεις.",
		"advice.difficult":        "Αντικαταστήστε τις μεγάλες λέξεις με κοινές εναλλακτικές και χωρίστε τις σύνθετες προτάσεις.",
		"advice.below-standard":   "Αφαιρέστε περιττές λέξεις και προτιμήστε την ενεργητική φωνή.",
		"advice.sentence-length":  "Χωρίστε τις προτάσεις στους συνδέσμους και κρατήστε μία ιδέα ανά πρόταση.",
		"advice.paragraph-length": "Περιορίστε τις παραγράφους στις %d λέξεις και ξεκινήστε με το κύριο σημείο.",
		"advice.complex-words":    "Εξηγήστε τους τεχνικούς όρους μία φορά και χρησιμοποιήστε απλές λέξεις αλλού.",
		"advice.thin-content":     "Εμπλουτίστε τη σελίδα με παραδείγματα, απαντήσεις σε συχνές ερωτήσεις και λεπτομέρειες.",
		"advice.long-sentences":   "Χωρίστε τις επισημασμένες προτάσεις σε δύο ή τρεις μικρότερες.",
		"advice.maintenance":      "Ελέγχετε ξανά την αναγνωσιμότητα σε κάθε ενημέρωση του περιεχομένου.",
	},
}
