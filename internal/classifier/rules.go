package classifier

import (
	"sort"
	"strings"
)

// RuleTable classifies accounts by exact, case-sensitive name lookup.
type RuleTable map[string]Classification

func (t RuleTable) Classify(account string) Classification {
	return t[account]
}

// PrefixRule classifies every account whose name starts with Prefix.
type PrefixRule struct {
	Prefix         string
	Classification Classification
}

// PrefixRules classifies by the longest matching prefix, for charts of
// accounts that encode the category in a numeric code ("1000 Cash").
type PrefixRules struct {
	rules []PrefixRule
}

// NewPrefixRules sorts the rules so the longest prefix is tried first.
// Ties keep their configured order.
func NewPrefixRules(rules ...PrefixRule) *PrefixRules {
	sorted := make([]PrefixRule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Prefix) > len(sorted[j].Prefix)
	})
	return &PrefixRules{rules: sorted}
}

func (p *PrefixRules) Classify(account string) Classification {
	if p == nil {
		return Classification{}
	}
	for _, rule := range p.rules {
		if rule.Prefix != "" && strings.HasPrefix(account, rule.Prefix) {
			return rule.Classification
		}
	}
	return Classification{}
}

// Chain tries each classifier in order and returns the first match.
type Chain []Classifier

func (c Chain) Classify(account string) Classification {
	for _, cl := range c {
		if cl == nil {
			continue
		}
		if got := cl.Classify(account); got.Classified() {
			return got
		}
	}
	return Classification{}
}

var (
	_ Classifier = RuleTable(nil)
	_ Classifier = (*PrefixRules)(nil)
	_ Classifier = Chain(nil)
)
