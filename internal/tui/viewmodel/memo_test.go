package viewmodel

import (
	"testing"

	"github.com/Veraticus/pocket-ledger/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestMemo_RecomputesOnlyOnChange(t *testing.T) {
	calls := 0
	m := NewMemo(func(n int) int {
		calls++
		return n * 2
	}, func(a, b int) bool { return a == b })

	assert.Equal(t, 4, m.Get(2))
	assert.Equal(t, 4, m.Get(2))
	assert.Equal(t, 1, calls)

	assert.Equal(t, 6, m.Get(3))
	assert.Equal(t, 2, m.Runs())
}

func TestEntryViews(t *testing.T) {
	views := NewEntryViews()
	entries := []model.Entry{
		entry("1", model.EntryTypeIncome, 10),
		entry("2", model.EntryTypeExpense, 5),
	}

	first := views.Get(EntryViewInput{Entries: entries, Tab: TabIncome})
	assert.Equal(t, []string{"1"}, ids(first.Entries))

	// A fresh but equal slice does not trigger a recompute.
	copied := append([]model.Entry(nil), entries...)
	_ = views.Get(EntryViewInput{Entries: copied, Tab: TabIncome})
	assert.Equal(t, 1, views.Runs())

	_ = views.Get(EntryViewInput{Entries: copied, Tab: TabExpense})
	assert.Equal(t, 2, views.Runs())

	copied[0].Amount = 11
	_ = views.Get(EntryViewInput{Entries: copied, Tab: TabExpense})
	assert.Equal(t, 3, views.Runs())
}

func TestCategoryOptions(t *testing.T) {
	options := NewCategoryOptions()
	merged := cats(model.CategoryTypeExpense, "b", "A")

	got := options.Get(CategoryOptionsInput{Categories: merged, Type: model.CategoryTypeExpense})
	assert.Equal(t, []string{"A", "b"}, CategoryNames(got))

	_ = options.Get(CategoryOptionsInput{Categories: cats(model.CategoryTypeExpense, "b", "A"), Type: model.CategoryTypeExpense})
	assert.Equal(t, 1, options.Runs())

	id := 1
	withUser := append(cats(model.CategoryTypeExpense, "b", "A"), model.Category{ID: &id, Name: "c", Type: model.CategoryTypeExpense})
	got = options.Get(CategoryOptionsInput{Categories: withUser, Type: model.CategoryTypeExpense})
	assert.Equal(t, []string{"A", "b", "c"}, CategoryNames(got))
	assert.Equal(t, 2, options.Runs())
}
