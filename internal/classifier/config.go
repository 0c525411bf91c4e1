package classifier

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AccountRuleConfig is an exact-name rule in the YAML rule file.
type AccountRuleConfig struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Role     string `yaml:"role"`
}

// PrefixRuleConfig is a prefix rule in the YAML rule file.
type PrefixRuleConfig struct {
	Prefix   string `yaml:"prefix"`
	Category string `yaml:"category"`
	Role     string `yaml:"role"`
}

// RulesConfig is the structure of the classifier YAML file.
//
//	accounts:
//	  - name: Cash
//	    category: asset
//	    role: cash
//	prefixes:
//	  - prefix: "4"
//	    category: revenue
type RulesConfig struct {
	Accounts []AccountRuleConfig `yaml:"accounts"`
	Prefixes []PrefixRuleConfig  `yaml:"prefixes"`
}

// LoadFile reads a YAML rule file and builds a classifier from it.
func LoadFile(path string) (Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("classifier: read rules: %w", err)
	}
	return Parse(data)
}

// Parse builds a classifier from YAML. Exact-name rules take precedence over prefixes.
func Parse(data []byte) (Classifier, error) {
	var cfg RulesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("classifier: parse rules: %w", err)
	}
	return cfg.Build()
}

// Build validates the configuration and returns the composed classifier.
func (cfg RulesConfig) Build() (Classifier, error) {
	table := make(RuleTable, len(cfg.Accounts))
	for i, rule := range cfg.Accounts {
		if rule.Name == "" {
			return nil, fmt.Errorf("classifier: account rule %d has no name", i)
		}
		cl, err := parseClassification(rule.Category, rule.Role)
		if err != nil {
			return nil, fmt.Errorf("classifier: account %q: %w", rule.Name, err)
		}
		if _, dup := table[rule.Name]; dup {
			return nil, fmt.Errorf("classifier: account %q listed twice", rule.Name)
		}
		table[rule.Name] = cl
	}

	prefixes := make([]PrefixRule, 0, len(cfg.Prefixes))
	for i, rule := range cfg.Prefixes {
		if rule.Prefix == "" {
			return nil, fmt.Errorf("classifier: prefix rule %d has no prefix", i)
		}
		cl, err := parseClassification(rule.Category, rule.Role)
		if err != nil {
			return nil, fmt.Errorf("classifier: prefix %q: %w", rule.Prefix, err)
		}
		prefixes = append(prefixes, PrefixRule{Prefix: rule.Prefix, Classification: cl})
	}

	if len(prefixes) == 0 {
		return table, nil
	}
	return Chain{table, NewPrefixRules(prefixes...)}, nil
}

func parseClassification(category, role string) (Classification, error) {
	c, err := ParseCategory(category)
	if err != nil {
		return Classification{}, err
	}
	r, err := ParseRole(role)
	if err != nil {
		return Classification{}, err
	}
	return Classification{Category: c, Role: r}, nil
}
