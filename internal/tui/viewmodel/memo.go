package viewmodel

import (
	"slices"

	"github.com/Veraticus/pocket-ledger/internal/model"
)

// Memo caches the result of a derivation and recomputes it only when the
// inputs differ from the previous call according to equal.
type Memo[In, Out any] struct {
	derive func(In) Out
	equal  func(a, b In) bool
	last   In
	out    Out
	valid  bool
	runs   int
}

// NewMemo creates a memoized derivation.
func NewMemo[In, Out any](derive func(In) Out, equal func(a, b In) bool) *Memo[In, Out] {
	return &Memo[In, Out]{derive: derive, equal: equal}
}

// Get returns the derived value for in, recomputing only on input change.
func (m *Memo[In, Out]) Get(in In) Out {
	if m.valid && m.equal(m.last, in) {
		return m.out
	}
	m.last = in
	m.out = m.derive(in)
	m.valid = true
	m.runs++
	return m.out
}

// Runs reports how many times the derivation has been computed.
func (m *Memo[In, Out]) Runs() int {
	return m.runs
}

// EntryViewInput is the declared input of the entry list derivation.
type EntryViewInput struct {
	Entries []model.Entry
	Tab     Tab
}

// CategoryOptionsInput is the declared input of the category options derivation.
type CategoryOptionsInput struct {
	Categories []model.Category
	Type       model.CategoryType
}

// NewEntryViews memoizes BuildEntryListView.
func NewEntryViews() *Memo[EntryViewInput, EntryListView] {
	return NewMemo(
		func(in EntryViewInput) EntryListView {
			return BuildEntryListView(in.Entries, in.Tab)
		},
		func(a, b EntryViewInput) bool {
			return a.Tab == b.Tab && slices.EqualFunc(a.Entries, b.Entries, entriesEqual)
		},
	)
}

// NewCategoryOptions memoizes SelectCategories.
func NewCategoryOptions() *Memo[CategoryOptionsInput, []model.Category] {
	return NewMemo(
		func(in CategoryOptionsInput) []model.Category {
			return SelectCategories(in.Categories, in.Type)
		},
		func(a, b CategoryOptionsInput) bool {
			return a.Type == b.Type && slices.EqualFunc(a.Categories, b.Categories, categoriesEqual)
		},
	)
}

func entriesEqual(a, b model.Entry) bool {
	return a.ID == b.ID &&
		a.Name == b.Name &&
		a.Amount == b.Amount &&
		a.Type == b.Type &&
		a.Category == b.Category &&
		a.Date.Equal(b.Date) &&
		a.Time.Equal(b.Time)
}

func categoriesEqual(a, b model.Category) bool {
	if a.Name != b.Name || a.Type != b.Type {
		return false
	}
	if a.ID == nil || b.ID == nil {
		return a.ID == nil && b.ID == nil
	}
	return *a.ID == *b.ID
}
