package pattern

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/Veraticus/pocket-ledger/internal/model"
)

// Matcher evaluates entries against category rules.
type Matcher struct {
	compiled map[int]*regexp.Regexp
	rules    []Rule
}

// NewMatcher validates rules and compiles their regular expressions.
func NewMatcher(rules []Rule) (*Matcher, error) {
	m := &Matcher{
		rules:    rules,
		compiled: make(map[int]*regexp.Regexp),
	}

	for i, rule := range rules {
		if err := checkRule(rule); err != nil {
			return nil, fmt.Errorf("%s: %w", rule.label(i), err)
		}
		if rule.IsRegex {
			re, err := regexp.Compile("(?i)" + rule.Pattern)
			if err != nil {
				return nil, fmt.Errorf("%s: %w: %w", rule.label(i), ErrInvalidRule, err)
			}
			m.compiled[i] = re
		}
	}

	return m, nil
}

// Len returns the number of rules.
func (m *Matcher) Len() int {
	return len(m.rules)
}

// Match returns the rules entry satisfies, highest priority first.
// Rules of equal priority keep their configured order.
func (m *Matcher) Match(entry model.Entry) []Rule {
	var matches []Rule
	for i, rule := range m.rules {
		if m.matchesRule(i, rule, entry) {
			matches = append(matches, rule)
		}
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Priority > matches[b].Priority
	})
	return matches
}

func (m *Matcher) matchesRule(index int, rule Rule, entry model.Entry) bool {
	if rule.Type != "" && rule.Type != entry.Type {
		return false
	}
	return m.matchesName(index, rule, entry.Name) && matchesAmount(rule, entry.Amount)
}

func (m *Matcher) matchesName(index int, rule Rule, name string) bool {
	if rule.Pattern == "" {
		return true
	}
	if rule.IsRegex {
		return m.compiled[index].MatchString(name)
	}
	// Exact match (case-insensitive)
	return strings.EqualFold(strings.TrimSpace(rule.Pattern), strings.TrimSpace(name))
}

func matchesAmount(rule Rule, amount float64) bool {
	switch rule.AmountCondition {
	case "", AmountAny:
		return true
	case AmountLess:
		return amount < *rule.AmountValue
	case AmountAtMost:
		return amount <= *rule.AmountValue
	case AmountEqual:
		return amount == *rule.AmountValue
	case AmountAtLeast:
		return amount >= *rule.AmountValue
	case AmountMore:
		return amount > *rule.AmountValue
	case AmountRange:
		if rule.AmountMin != nil && amount < *rule.AmountMin {
			return false
		}
		if rule.AmountMax != nil && amount > *rule.AmountMax {
			return false
		}
		return true
	}
	return false
}
