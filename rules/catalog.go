package rules

import "fmt"

// catalog is built once and never modified; DefaultRules hands out copies
var catalog = buildCatalog()

func buildCatalog() []Rule {
	var all []Rule
	all = append(all, metaRules()...)
	all = append(all, contentRules()...)
	all = append(all, technicalRules()...)
	all = append(all, readabilityRules()...)
	all = append(all, keywordRules()...)

	seen := make(map[string]bool, len(all))
	for _, r := range all {
		if seen[r.ID] {
			panic(fmt.Sprintf("duplicate rule id %q", r.ID))
		}
		seen[r.ID] = true
	}
	return all
}

// DefaultRules returns a copy of the built-in catalog in declaration order
func DefaultRules() []Rule {
	out := make([]Rule, len(catalog))
	for i, r := range catalog {
		out[i] = r.clone()
	}
	return out
}

// Lookup finds a rule by id
func Lookup(rules []Rule, id string) (Rule, bool) {
	for _, r := range rules {
		if r.ID == id {
			return r, true
		}
	}
	return Rule{}, false
}

// MaxScore sums the weights of rules
func MaxScore(rules []Rule) int {
	total := 0
	for _, r := range rules {
		total += r.Weight
	}
	return total
}

func (r Rule) clone() Rule {
	r.Recommendations = append([]string(nil), r.Recommendations...)
	return r
}
