package recommend

import (
	"github.com/seo-optimizer/content-analyzer/rules"
)

const (
	English = "en"
	Greek   = "el"
)

type labels struct {
	priority map[Priority]string
	effort   map[Effort]string
	category map[rules.Category]string
	status   map[Status]string
	ranking  map[Priority]string
}

var translations = map[string]labels{
	English: {
		priority: map[Priority]string{
			PriorityCritical: "Critical",
			PriorityHigh:     "High",
			PriorityMedium:   "Medium",
			PriorityLow:      "Low",
		},
		effort: map[Effort]string{
			EffortQuick:       "Quick fix",
			EffortModerate:    "Moderate effort",
			EffortSignificant: "Significant effort",
		},
		category: map[rules.Category]string{
			rules.CategoryMeta:        "Meta tags",
			rules.CategoryContent:     "Content",
			rules.CategoryTechnical:   "Technical SEO",
			rules.CategoryReadability: "Readability",
			rules.CategoryKeywords:    "Keywords",
		},
		status: map[Status]string{
			StatusPending:    "Pending",
			StatusInProgress: "In progress",
			StatusCompleted:  "Completed",
			StatusDismissed:  "Dismissed",
		},
		ranking: map[Priority]string{
			PriorityCritical: "Major ranking factor; fixing it can noticeably improve visibility",
			PriorityHigh:     "Strong ranking signal; likely to improve positions",
			PriorityMedium:   "Moderate effect on rankings and user engagement",
			PriorityLow:      "Minor effect; improves overall page quality",
		},
	},
	Greek: {
		priority: map[Priority]string{
			PriorityCritical: "Κρίσιμη",
			PriorityHigh:     "Υψηλή",
			PriorityMedium:   "Μεσαία",
			PriorityLow:      "Χαμηλή",
		},
		effort: map[Effort]string{
			EffortQuick:       "Γρήγορη διόρθωση",
			EffortModerate:    "Μέτρια προσπάθεια",
			EffortSignificant: "Σημαντική προσπάθεια",
		},
		category: map[rules.Category]string{
			rules.CategoryMeta:        "Μετα-ετικέτες",
			rules.CategoryContent:     "Περιεχόμενο",
			rules.CategoryTechnical:   "Τεχνικό SEO",
			rules.CategoryReadability: "Αναγνωσιμότητα",
			rules.CategoryKeywords:    "Λέξεις-κλειδιά",
		},
		status: map[Status]string{
			StatusPending:    "Σε αναμονή",
			StatusInProgress: "Σε εξέλιξη",
			StatusCompleted:  "Ολοκληρώθηκε",
			StatusDismissed:  "Απορρίφθηκε",
		},
		ranking: map[Priority]string{
			PriorityCritical: "Σημαντικός παράγοντας κατάταξης· η διόρθωση μπορεί να βελτιώσει αισθητά την ορατότητα",
			PriorityHigh:     "Ισχυρό σήμα κατάταξης· πιθανή βελτίωση θέσεων",
			PriorityMedium:   "Μέτρια επίδραση στην κατάταξη και στην αλληλεπίδραση",
			PriorityLow:      "Μικρή επίδραση· βελτιώνει τη συνολική ποιότητα της σελίδας",
		},
	},
}

// Supported reports whether labels exist for lang
func Supported(lang string) bool {
	_, ok := translations[lang]
	return ok
}

func labelsFor(lang string) labels {
	if l, ok := translations[lang]; ok {
		return l
	}
	return translations[English]
}

func (l labels) categoryLabel(c rules.Category) string {
	if s, ok := l.category[c]; ok {
		return s
	}
	return string(c)
}

// label writes the display strings of rec for l
func (l labels) label(rec *Recommendation) {
	rec.PriorityLabel = l.priority[rec.Priority]
	rec.EffortLabel = l.effort[rec.Effort]
	rec.CategoryLabel = l.categoryLabel(rec.Category)
	rec.StatusLabel = l.status[rec.Status]
	rec.ImpactEstimate.RankingImpact = l.ranking[rec.Priority]
}
