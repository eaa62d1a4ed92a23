package viewmodel

import (
	"testing"

	"github.com/Veraticus/pocket-ledger/internal/model"
	"github.com/stretchr/testify/assert"
)

func cats(t model.CategoryType, names ...string) []model.Category {
	out := make([]model.Category, len(names))
	for i, n := range names {
		out[i] = model.Category{Name: n, Type: t}
	}
	return out
}

func TestSelectCategories(t *testing.T) {
	income := cats(model.CategoryTypeIncome, "Salary", "allowance")
	expense := cats(model.CategoryTypeExpense, "bills", "Allowance", "food")

	tests := []struct {
		name       string
		categories []model.Category
		target     model.CategoryType
		want       []string
	}{
		{
			name:       "case-insensitive sort",
			categories: expense,
			target:     model.CategoryTypeExpense,
			want:       []string{"Allowance", "bills", "food"},
		},
		{
			name:       "filters by type",
			categories: append(append([]model.Category{}, income...), expense...),
			target:     model.CategoryTypeIncome,
			want:       []string{"allowance", "Salary"},
		},
		{
			name:       "case-only duplicates keep input order",
			categories: cats(model.CategoryTypeExpense, "food", "Bills", "Food"),
			target:     model.CategoryTypeExpense,
			want:       []string{"Bills", "food", "Food"},
		},
		{
			name:       "case-only duplicates keep input order reversed",
			categories: cats(model.CategoryTypeExpense, "Food", "food"),
			target:     model.CategoryTypeExpense,
			want:       []string{"Food", "food"},
		},
		{
			name:       "empty names sort first",
			categories: cats(model.CategoryTypeExpense, "Rent", ""),
			target:     model.CategoryTypeExpense,
			want:       []string{"", "Rent"},
		},
		{
			name:       "empty input",
			categories: nil,
			target:     model.CategoryTypeExpense,
			want:       []string{},
		},
		{
			name:       "no matches",
			categories: income,
			target:     model.CategoryTypeExpense,
			want:       []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectCategories(tt.categories, tt.target)
			assert.Equal(t, tt.want, CategoryNames(got))
		})
	}
}

func TestSelectCategories_Idempotent(t *testing.T) {
	merged := model.MergeCategories(model.DefaultCategories(), cats(model.CategoryTypeExpense, "coffee", "Zoo", "food"))

	first := SelectCategories(merged, model.CategoryTypeExpense)
	second := SelectCategories(merged, model.CategoryTypeExpense)

	assert.Equal(t, first, second)
}

func TestSelectCategories_DoesNotMutateInput(t *testing.T) {
	input := cats(model.CategoryTypeExpense, "zeta", "alpha")

	_ = SelectCategories(input, model.CategoryTypeExpense)

	assert.Equal(t, []string{"zeta", "alpha"}, CategoryNames(input))
}

func TestSelectCategories_DefaultsAndUserCoexist(t *testing.T) {
	id := 3
	user := []model.Category{{ID: &id, Name: "food", Type: model.CategoryTypeExpense}}
	merged := model.MergeCategories(
		[]model.Category{{Name: "Food", Type: model.CategoryTypeExpense}},
		user,
	)

	got := SelectCategories(merged, model.CategoryTypeExpense)

	assert.Len(t, got, 2)
	assert.True(t, got[0].IsDefault())
	assert.False(t, got[1].IsDefault())
}
