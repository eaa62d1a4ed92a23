package components

import (
	"testing"
	"time"

	"github.com/Veraticus/pocket-ledger/internal/model"
	tuitest "github.com/Veraticus/pocket-ledger/internal/tui/testing"
	"github.com/Veraticus/pocket-ledger/internal/tui/themes"
	"github.com/Veraticus/pocket-ledger/internal/tui/viewmodel"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2024, time.March, 10, 9, 30, 0, 0, time.Local)
}

func newTestForm(t *testing.T) EntryFormModel {
	t.Helper()
	m := NewEntryForm(themes.Default, fixedNow, false)
	m.SetCategories(model.DefaultCategories())
	return m
}

func typeInto(m EntryFormModel, text string) EntryFormModel {
	for _, msg := range tuitest.TypeText(text) {
		m, _ = m.Update(msg)
	}
	return m
}

func TestEntryForm_CreateFlow(t *testing.T) {
	m := newTestForm(t)

	_, err := m.OpenCreate(model.EntryTypeExpense)
	require.NoError(t, err)
	assert.True(t, m.IsOpen())
	assert.Equal(t, "Add an Expense", m.Session().Title())

	m = typeInto(m, "Lunch")
	m, _ = m.Update(tuitest.KeyTab())
	m = typeInto(m, "12.5")
	m, _ = m.Update(tuitest.KeyTab())
	m, _ = m.Update(tuitest.KeyRight())
	assert.Equal(t, "Bills", m.Session().Values().Category)

	m, cmd := m.Update(tuitest.KeyEnter())
	require.NotNil(t, cmd)
	assert.False(t, m.IsOpen())

	msg, ok := cmd().(EntryFormSubmittedMsg)
	require.True(t, ok)
	sub := msg.Submission
	assert.Equal(t, viewmodel.FormCreate, sub.Mode)
	assert.Empty(t, sub.ID)
	assert.Equal(t, "Lunch", sub.Entry.Name)
	assert.InDelta(t, 12.5, sub.Entry.Amount, 0.001)
	assert.Equal(t, "Bills", sub.Entry.Category)
	assert.Equal(t, model.EntryTypeExpense, sub.Entry.Type)
	assert.Equal(t, "2024-03-10", viewmodel.FormatDate(sub.Entry.Date))
	assert.Equal(t, "09:30", viewmodel.FormatTime(sub.Entry.Time))
}

func TestEntryForm_CategoryCycling(t *testing.T) {
	m := newTestForm(t)
	m.SetCategories(model.MergeCategories(model.DefaultCategories(), []model.Category{
		{Name: "zebra fund", Type: model.CategoryTypeIncome},
	}))

	_, err := m.OpenCreate(model.EntryTypeIncome)
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"Allowance", "Bonus", "Other", "Petty cash", "Salary", "zebra fund"},
		viewmodel.CategoryNames(m.CategoryOptions()),
	)

	m, _ = m.Update(tuitest.KeyTab())
	m, _ = m.Update(tuitest.KeyTab())

	m, _ = m.Update(tuitest.KeyLeft())
	assert.Equal(t, "zebra fund", m.Session().Values().Category)
	m, _ = m.Update(tuitest.KeyRight())
	assert.Equal(t, "Allowance", m.Session().Values().Category)
	m, _ = m.Update(tuitest.KeyRight())
	assert.Equal(t, "Bonus", m.Session().Values().Category)
}

func TestEntryForm_ValidationKeepsFormOpen(t *testing.T) {
	m := newTestForm(t)
	_, err := m.OpenCreate(model.EntryTypeIncome)
	require.NoError(t, err)

	m, cmd := m.Update(tuitest.KeyCtrlS())
	assert.Nil(t, cmd)
	assert.True(t, m.IsOpen())
	assert.Equal(t, "Enter an entry name", m.Err())
	assert.Contains(t, tuitest.StripANSI(m.View()), "Enter an entry name")

	m = typeInto(m, "Tips")
	m, _ = m.Update(tuitest.KeyTab())
	m = typeInto(m, "abc")
	m, cmd = m.Update(tuitest.KeyCtrlS())
	assert.Nil(t, cmd)
	assert.Equal(t, "Enter a numeric amount", m.Err())
}

func TestEntryForm_EditFlow(t *testing.T) {
	m := newTestForm(t)
	entry := model.Entry{
		ID:       "abc",
		Name:     "Bonus",
		Category: "Bonus",
		Amount:   250,
		Type:     model.EntryTypeIncome,
		Date:     time.Date(2024, time.February, 1, 0, 0, 0, 0, time.Local),
		Time:     time.Date(0, time.January, 1, 17, 5, 0, 0, time.Local),
	}

	_, err := m.OpenEdit(entry)
	require.NoError(t, err)
	assert.Equal(t, "Edit an Income", m.Session().Title())

	view := tuitest.StripANSI(m.View())
	assert.Contains(t, view, "2024-02-01")
	assert.Contains(t, view, "17:05")

	m = typeInto(m, " Q1")
	m, cmd := m.Update(tuitest.KeyCtrlS())
	require.NotNil(t, cmd)

	msg, ok := cmd().(EntryFormSubmittedMsg)
	require.True(t, ok)
	assert.Equal(t, viewmodel.FormEdit, msg.Submission.Mode)
	assert.Equal(t, "abc", msg.Submission.ID)
	assert.Equal(t, "Bonus Q1", msg.Submission.Entry.Name)
	assert.Equal(t, model.EntryTypeIncome, msg.Submission.Entry.Type)
}

func TestEntryForm_EscapeAndCategoryRequest(t *testing.T) {
	tests := []struct {
		key  tea.KeyMsg
		want tea.Msg
		name string
		open bool
	}{
		{name: "esc closes", key: tuitest.KeyEsc(), want: EntryFormClosedMsg{}, open: false},
		{name: "ctrl+n requests category form", key: tuitest.KeyCtrlN(), want: CategoryFormRequestedMsg{Type: model.CategoryTypeExpense}, open: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestForm(t)
			_, err := m.OpenCreate(model.EntryTypeExpense)
			require.NoError(t, err)

			m, cmd := m.Update(tt.key)
			require.NotNil(t, cmd)
			assert.Equal(t, tt.want, cmd())
			assert.Equal(t, tt.open, m.IsOpen())
		})
	}
}

func TestEntryForm_SelectCategory(t *testing.T) {
	m := newTestForm(t)
	_, err := m.OpenCreate(model.EntryTypeExpense)
	require.NoError(t, err)

	assert.False(t, m.SelectCategory("Gifts"))

	m.SetCategories(model.MergeCategories(model.DefaultCategories(), []model.Category{
		{Name: "Gifts", Type: model.CategoryTypeExpense},
	}))
	assert.True(t, m.SelectCategory("Gifts"))
	assert.Equal(t, "Gifts", m.Session().Values().Category)
}

func TestEntryForm_ClosedIgnoresInput(t *testing.T) {
	m := newTestForm(t)

	m, cmd := m.Update(tuitest.KeyEnter())
	assert.Nil(t, cmd)
	assert.False(t, m.IsOpen())
	assert.Empty(t, m.View())
	assert.Nil(t, m.CategoryOptions())
}
