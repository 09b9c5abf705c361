package rules

import (
	"fmt"
	"sort"
)

// Overrides adjusts a rule set without touching its checks
type Overrides struct {
	Disabled   []string
	Weights    map[string]int
	Severities map[string]Severity
}

// Empty reports whether the overrides change nothing
func (o Overrides) Empty() bool {
	return len(o.Disabled) == 0 && len(o.Weights) == 0 && len(o.Severities) == 0
}

// Customize returns a new rule set with overrides applied; the input is never modified.
// Unknown rule ids, non-positive weights and unknown severities are errors.
func Customize(rules []Rule, o Overrides) ([]Rule, error) {
	known := make(map[string]bool, len(rules))
	for _, r := range rules {
		known[r.ID] = true
	}

	disabled := make(map[string]bool, len(o.Disabled))
	for _, id := range o.Disabled {
		if !known[id] {
			return nil, fmt.Errorf("disable rule %q: unknown rule", id)
		}
		disabled[id] = true
	}
	for _, id := range sortedKeys(o.Weights) {
		if !known[id] {
			return nil, fmt.Errorf("set weight of %q: unknown rule", id)
		}
		if o.Weights[id] <= 0 {
			return nil, fmt.Errorf("set weight of %q: weight must be positive, got %d", id, o.Weights[id])
		}
	}
	for _, id := range sortedKeys(o.Severities) {
		if !known[id] {
			return nil, fmt.Errorf("set severity of %q: unknown rule", id)
		}
		if !o.Severities[id].Valid() {
			return nil, fmt.Errorf("set severity of %q: unknown severity %q", id, o.Severities[id])
		}
	}

	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if disabled[r.ID] {
			continue
		}
		r = r.clone()
		if w, ok := o.Weights[r.ID]; ok {
			r.Weight = w
		}
		if s, ok := o.Severities[r.ID]; ok {
			r.Severity = s
		}
		out = append(out, r)
	}
	return out, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
