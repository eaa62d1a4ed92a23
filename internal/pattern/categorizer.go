package pattern

import (
	"log/slog"

	"github.com/Veraticus/pocket-ledger/internal/model"
)

// Categorizer applies matching rules to entries.
type Categorizer struct {
	matcher    *Matcher
	categories []model.Category
}

// NewCategorizer creates a categorizer offering the given merged categories.
func NewCategorizer(matcher *Matcher, categories []model.Category) *Categorizer {
	return &Categorizer{matcher: matcher, categories: categories}
}

// Categorize returns the category of the highest-priority matching rule
// whose category exists for the entry's type.
func (c *Categorizer) Categorize(entry model.Entry) (string, bool) {
	for _, rule := range c.matcher.Match(entry) {
		if name, ok := allowedCategory(c.categories, entry.Type, rule.Category); ok {
			return name, true
		}
		slog.Debug("skipping rule with category unavailable for entry type",
			"rule", rule.Name,
			"category", rule.Category,
			"type", entry.Type)
	}
	return "", false
}

// Apply categorizes entries in place and returns how many changed.
func (c *Categorizer) Apply(entries []model.Entry) int {
	changed := 0
	for i := range entries {
		name, ok := c.Categorize(entries[i])
		if !ok || name == entries[i].Category {
			continue
		}
		entries[i].Category = name
		changed++
	}
	return changed
}
