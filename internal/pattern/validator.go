package pattern

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/pocket-ledger/internal/model"
	"github.com/Veraticus/pocket-ledger/internal/tui/viewmodel"
)

// ErrInvalidRule reports a rule that can never be applied.
var ErrInvalidRule = errors.New("invalid category rule")

// checkRule validates a rule on its own.
func checkRule(rule Rule) error {
	if strings.TrimSpace(rule.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidRule)
	}
	if rule.Type != "" && !rule.Type.IsValid() {
		return fmt.Errorf("%w: type %q", ErrInvalidRule, rule.Type)
	}

	switch rule.AmountCondition {
	case "", AmountAny:
	case AmountLess, AmountAtMost, AmountEqual, AmountAtLeast, AmountMore:
		if rule.AmountValue == nil {
			return fmt.Errorf("%w: amount condition %q needs an amount", ErrInvalidRule, rule.AmountCondition)
		}
	case AmountRange:
		if rule.AmountMin == nil && rule.AmountMax == nil {
			return fmt.Errorf("%w: range needs amount_min or amount_max", ErrInvalidRule)
		}
	default:
		return fmt.Errorf("%w: unknown amount condition %q", ErrInvalidRule, rule.AmountCondition)
	}
	return nil
}

// allowedCategory reports the canonical name of category when it is offered
// for entryType among categories.
func allowedCategory(categories []model.Category, entryType model.EntryType, category string) (string, bool) {
	for _, c := range viewmodel.SelectCategories(categories, entryType.CategoryType()) {
		if strings.EqualFold(c.Name, strings.TrimSpace(category)) {
			return c.Name, true
		}
	}
	return "", false
}
