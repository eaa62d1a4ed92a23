package viewmodel

import (
	"sort"
	"strings"

	"github.com/Veraticus/pocket-ledger/internal/model"
)

// SelectCategories returns the categories of type t sorted by name,
// case-insensitively. Names equal ignoring case keep their input order.
// The input slice is never modified.
func SelectCategories(categories []model.Category, t model.CategoryType) []model.Category {
	selected := make([]model.Category, 0, len(categories))
	for _, c := range categories {
		if c.Type == t {
			selected = append(selected, c)
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return compareCategoryNames(selected[i].Name, selected[j].Name) < 0
	})
	return selected
}

// compareCategoryNames orders names by their upper-cased bytes.
func compareCategoryNames(a, b string) int {
	return strings.Compare(strings.ToUpper(a), strings.ToUpper(b))
}

// CategoryNames extracts the display names of categories.
func CategoryNames(categories []model.Category) []string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	return names
}
