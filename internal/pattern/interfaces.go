// Package pattern assigns categories to imported entries using configured rules.
package pattern

import (
	"strconv"

	"github.com/Veraticus/pocket-ledger/internal/model"
)

// Amount conditions a rule can test.
const (
	AmountAny     = "any"
	AmountLess    = "lt"
	AmountAtMost  = "le"
	AmountEqual   = "eq"
	AmountAtLeast = "ge"
	AmountMore    = "gt"
	AmountRange   = "range"
)

// Rule maps entries whose name matches Pattern to Category.
// An empty Type matches both income and expense entries.
type Rule struct {
	AmountValue     *float64        `mapstructure:"amount"`
	AmountMin       *float64        `mapstructure:"amount_min"`
	AmountMax       *float64        `mapstructure:"amount_max"`
	Name            string          `mapstructure:"name"`
	Pattern         string          `mapstructure:"pattern"`
	Category        string          `mapstructure:"category"`
	AmountCondition string          `mapstructure:"amount_condition"`
	Type            model.EntryType `mapstructure:"type"`
	Priority        int             `mapstructure:"priority"`
	IsRegex         bool            `mapstructure:"regex"`
}

// label identifies the rule in errors and logs.
func (r Rule) label(index int) string {
	if r.Name != "" {
		return r.Name
	}
	return "rule " + strconv.Itoa(index+1)
}
