package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/seo-optimizer/content-analyzer/rules"
)

// RulesFile is the YAML layout of a rule overrides file
type RulesFile struct {
	Disabled   []string          `yaml:"disabled"`
	Weights    map[string]int    `yaml:"weights"`
	Severities map[string]string `yaml:"severities"`
}

// Overrides converts the file into rule overrides
func (f RulesFile) Overrides() rules.Overrides {
	o := rules.Overrides{
		Disabled: f.Disabled,
		Weights:  f.Weights,
	}
	if len(f.Severities) > 0 {
		o.Severities = make(map[string]rules.Severity, len(f.Severities))
		for id, s := range f.Severities {
			o.Severities[id] = rules.Severity(s)
		}
	}
	return o
}

// LoadRules reads a rule overrides file and applies it to the default catalog
func LoadRules(path string) ([]rules.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	return ParseRules(data)
}

// ParseRules applies YAML overrides to the default catalog
func ParseRules(data []byte) ([]rules.Rule, error) {
	var f RulesFile
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("parse rules file: %w", err)
	}
	ruleSet, err := rules.Customize(rules.DefaultRules(), f.Overrides())
	if err != nil {
		return nil, fmt.Errorf("apply rules file: %w", err)
	}
	return ruleSet, nil
}
