package viewmodel

import (
	"testing"

	"github.com/Veraticus/pocket-ledger/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id string, t model.EntryType, amount float64) model.Entry {
	return model.Entry{ID: id, Name: "entry " + id, Type: t, Amount: amount}
}

func ids(entries []model.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestClassifyEntries(t *testing.T) {
	mixed := []model.Entry{
		entry("1", model.EntryTypeIncome, 100),
		entry("2", model.EntryTypeExpense, 20),
		entry("3", model.EntryTypeIncome, 50),
		entry("4", "transfer", 10),
		entry("5", "", 5),
		entry("6", model.EntryTypeExpense, 7),
	}

	tests := []struct {
		name    string
		entries []model.Entry
		tab     Tab
		want    []string
	}{
		{name: "all is identity", entries: mixed, tab: TabAll, want: []string{"1", "2", "3", "4", "5", "6"}},
		{name: "income keeps order", entries: mixed, tab: TabIncome, want: []string{"1", "3"}},
		{name: "expense keeps order", entries: mixed, tab: TabExpense, want: []string{"2", "6"}},
		{name: "empty income", entries: nil, tab: TabIncome, want: []string{}},
		{name: "empty expense", entries: []model.Entry{}, tab: TabExpense, want: []string{}},
		{name: "empty all", entries: []model.Entry{}, tab: TabAll, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyEntries(tt.entries, tt.tab)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestClassifyEntries_EndToEnd(t *testing.T) {
	list := []model.Entry{
		{ID: "1", Type: model.EntryTypeIncome},
		{ID: "2", Type: model.EntryTypeExpense},
		{ID: "3", Type: model.EntryTypeIncome},
	}

	got := ClassifyEntries(list, TabIncome)
	assert.Equal(t, []model.Entry{list[0], list[2]}, got)
}

func TestClassifyEntries_PartitionsReconstructInput(t *testing.T) {
	input := []model.Entry{
		entry("a", model.EntryTypeExpense, 1),
		entry("b", "other", 1),
		entry("c", model.EntryTypeIncome, 1),
		entry("d", model.EntryTypeExpense, 1),
		entry("e", model.EntryTypeIncome, 1),
	}

	income := ClassifyEntries(input, TabIncome)
	expense := ClassifyEntries(input, TabExpense)

	seen := map[string]int{}
	for _, e := range income {
		seen[e.ID]++
	}
	for _, e := range expense {
		seen[e.ID]++
	}

	var rebuilt []string
	for _, e := range input {
		switch seen[e.ID] {
		case 0:
			assert.False(t, e.Type.IsValid(), "%s should only be missing when its type is unknown", e.ID)
		case 1:
		default:
			t.Fatalf("entry %s appears in more than one partition", e.ID)
		}
		rebuilt = append(rebuilt, e.ID)
	}

	assert.Equal(t, ids(input), rebuilt)
	assert.Len(t, income, 2)
	assert.Len(t, expense, 2)
}

func TestClassifyEntries_DoesNotMutateInput(t *testing.T) {
	input := []model.Entry{
		entry("1", model.EntryTypeExpense, 1),
		entry("2", model.EntryTypeIncome, 1),
	}
	before := append([]model.Entry(nil), input...)

	_ = ClassifyEntries(input, TabIncome)
	assert.Equal(t, before, input)
}

func TestParseTab(t *testing.T) {
	tests := []struct {
		in      string
		want    Tab
		wantErr bool
	}{
		{in: "all", want: TabAll},
		{in: "", want: TabAll},
		{in: "Income", want: TabIncome},
		{in: " expense ", want: TabExpense},
		{in: "transfers", want: TabAll, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTab(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownTab)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTab_Cycle(t *testing.T) {
	assert.Equal(t, TabIncome, TabAll.Next())
	assert.Equal(t, TabExpense, TabIncome.Next())
	assert.Equal(t, TabAll, TabExpense.Next())
	assert.Equal(t, TabExpense, TabAll.Prev())
	assert.Equal(t, "Income", TabIncome.Label())
}

func TestBuildEntryListView(t *testing.T) {
	entries := []model.Entry{
		entry("1", model.EntryTypeIncome, 1000),
		entry("2", model.EntryTypeExpense, 250.5),
		entry("3", model.EntryTypeExpense, 49.5),
		entry("4", "other", 99),
	}

	view := BuildEntryListView(entries, TabExpense)

	assert.Equal(t, []string{"2", "3"}, ids(view.Entries))
	assert.Equal(t, 4, view.Counts[TabAll])
	assert.Equal(t, 1, view.Counts[TabIncome])
	assert.Equal(t, 2, view.Counts[TabExpense])
	assert.InDelta(t, 1000, view.TotalIncome, 0.001)
	assert.InDelta(t, 300, view.TotalExpenses, 0.001)
	assert.InDelta(t, 700, view.Balance(), 0.001)
	assert.False(t, view.IsEmpty())

	assert.True(t, BuildEntryListView(nil, TabIncome).IsEmpty())
}
