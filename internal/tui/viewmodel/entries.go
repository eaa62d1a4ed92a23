// Package viewmodel holds the pure derivations that back the terminal UI:
// tab filtering of entries, category option lists and the entry form session.
package viewmodel

import (
	"fmt"
	"strings"

	"github.com/Veraticus/pocket-ledger/internal/model"
)

// Tab selects which entries the list shows.
type Tab string

const (
	// TabAll shows every entry.
	TabAll Tab = "all"
	// TabIncome shows income entries only.
	TabIncome Tab = "income"
	// TabExpense shows expense entries only.
	TabExpense Tab = "expense"
)

// Tabs lists the tabs in display order.
var Tabs = []Tab{TabAll, TabIncome, TabExpense}

// ErrUnknownTab is returned by ParseTab for unrecognized names.
var ErrUnknownTab = fmt.Errorf("unknown tab")

// ParseTab converts user input into a Tab.
func ParseTab(s string) (Tab, error) {
	switch Tab(strings.ToLower(strings.TrimSpace(s))) {
	case TabAll, "":
		return TabAll, nil
	case TabIncome:
		return TabIncome, nil
	case TabExpense:
		return TabExpense, nil
	default:
		return TabAll, fmt.Errorf("%w: %q (want all, income or expense)", ErrUnknownTab, s)
	}
}

// Label returns the tab's display title.
func (t Tab) Label() string {
	switch t {
	case TabIncome:
		return "Income"
	case TabExpense:
		return "Expense"
	default:
		return "All"
	}
}

// Next returns the tab to the right, wrapping around.
func (t Tab) Next() Tab {
	return Tabs[(t.index()+1)%len(Tabs)]
}

// Prev returns the tab to the left, wrapping around.
func (t Tab) Prev() Tab {
	return Tabs[(t.index()+len(Tabs)-1)%len(Tabs)]
}

func (t Tab) index() int {
	for i, tab := range Tabs {
		if tab == t {
			return i
		}
	}
	return 0
}

// ClassifyEntries returns the entries visible under tab.
// TabAll returns entries unchanged. The income and expense tabs keep the input
// order of matching entries; entries of any other type appear only under TabAll.
func ClassifyEntries(entries []model.Entry, tab Tab) []model.Entry {
	if tab == TabAll {
		return entries
	}

	want := model.EntryType(tab)
	filtered := make([]model.Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.Type == want {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// EntryListView is the render-ready summary of the entry list.
type EntryListView struct {
	Entries       []model.Entry
	Counts        map[Tab]int
	Tab           Tab
	TotalIncome   float64
	TotalExpenses float64
}

// BuildEntryListView classifies entries for tab and computes the per-tab counts
// and totals over the whole collection.
func BuildEntryListView(entries []model.Entry, tab Tab) EntryListView {
	view := EntryListView{
		Entries: ClassifyEntries(entries, tab),
		Tab:     tab,
		Counts:  map[Tab]int{TabAll: len(entries)},
	}

	for _, entry := range entries {
		switch entry.Type {
		case model.EntryTypeIncome:
			view.Counts[TabIncome]++
			view.TotalIncome += entry.Amount
		case model.EntryTypeExpense:
			view.Counts[TabExpense]++
			view.TotalExpenses += entry.Amount
		}
	}

	return view
}

// IsEmpty reports whether the visible list has no rows.
func (v EntryListView) IsEmpty() bool {
	return len(v.Entries) == 0
}

// Balance is income minus expenses across all entries.
func (v EntryListView) Balance() float64 {
	return v.TotalIncome - v.TotalExpenses
}
