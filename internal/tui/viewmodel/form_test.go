package viewmodel

import (
	"testing"
	"time"

	"github.com/Veraticus/pocket-ledger/internal/common"
	"github.com/Veraticus/pocket-ledger/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2024, 6, 1, 9, 30, 0, 0, time.Local)
}

func fillValid(t *testing.T, s *FormSession) {
	t.Helper()
	require.NoError(t, s.SetField(FieldName, "Paycheck"))
	require.NoError(t, s.SetField(FieldAmount, "1500.75"))
	require.NoError(t, s.SetField(FieldCategory, "Salary"))
}

func TestFormSession_CreateLifecycle(t *testing.T) {
	s := NewFormSession(fixedNow)
	assert.False(t, s.IsOpen())

	require.NoError(t, s.OpenCreate(model.EntryTypeIncome))
	assert.True(t, s.IsOpen())
	assert.Equal(t, FormCreate, s.Mode())
	assert.Equal(t, "Add an Income", s.Title())
	assert.Equal(t, "2024-06-01", s.Values().Date)
	assert.Equal(t, "09:30", s.Values().Time)

	fillValid(t, s)
	sub, err := s.Submit()
	require.NoError(t, err)

	assert.Equal(t, FormCreate, sub.Mode)
	assert.Empty(t, sub.ID)
	assert.Equal(t, "Paycheck", sub.Entry.Name)
	assert.InDelta(t, 1500.75, sub.Entry.Amount, 0.0001)
	assert.Equal(t, model.EntryTypeIncome, sub.Entry.Type)
	assert.Equal(t, 9, sub.Entry.Time.Hour())

	assert.False(t, s.IsOpen())
	assert.Equal(t, FormValues{}, s.Values())
}

func TestFormSession_EditLoadsEntry(t *testing.T) {
	s := NewFormSession(fixedNow)
	existing := model.Entry{
		ID:       "abc",
		Name:     "Rent",
		Amount:   800,
		Type:     model.EntryTypeExpense,
		Category: "Bills",
		Date:     time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local),
		Time:     time.Date(0, 1, 1, 8, 5, 0, 0, time.Local),
	}

	require.NoError(t, s.OpenEdit(existing))
	assert.Equal(t, FormEdit, s.Mode())
	assert.Equal(t, "Edit an Expense", s.Title())
	assert.Equal(t, FormValues{Name: "Rent", Amount: "800", Category: "Bills", Date: "2024-05-01", Time: "08:05"}, s.Values())

	require.NoError(t, s.SetField(FieldAmount, "825"))
	sub, err := s.Submit()
	require.NoError(t, err)
	assert.Equal(t, FormEdit, sub.Mode)
	assert.Equal(t, "abc", sub.ID)
	assert.Equal(t, "abc", sub.Entry.ID)
	assert.InDelta(t, 825, sub.Entry.Amount, 0.0001)
}

func TestFormSession_TypeLocked(t *testing.T) {
	s := NewFormSession(fixedNow)
	require.NoError(t, s.OpenCreate(model.EntryTypeExpense))

	assert.ErrorIs(t, s.SetType(model.EntryTypeIncome), ErrTypeLocked)
	assert.NoError(t, s.SetType(model.EntryTypeExpense))
	assert.Equal(t, model.EntryTypeExpense, s.Type())
}

func TestFormSession_InvalidTransitions(t *testing.T) {
	s := NewFormSession(fixedNow)

	assert.ErrorIs(t, s.SetField(FieldName, "x"), ErrSessionClosed)
	_, err := s.Submit()
	assert.ErrorIs(t, err, ErrSessionClosed)

	assert.ErrorIs(t, s.OpenCreate("transfer"), common.ErrInvalidEntry)

	require.NoError(t, s.OpenCreate(model.EntryTypeIncome))
	assert.ErrorIs(t, s.OpenCreate(model.EntryTypeExpense), ErrSessionOpen)
	assert.ErrorIs(t, s.OpenEdit(model.Entry{Type: model.EntryTypeIncome}), ErrSessionOpen)
	assert.ErrorIs(t, s.SetField(FormField(99), "x"), ErrUnknownField)
}

func TestFormSession_Validation(t *testing.T) {
	tests := []struct {
		name    string
		field   FormField
		value   string
		message string
	}{
		{name: "missing name", field: FieldName, value: "  ", message: "Enter an entry name"},
		{name: "bad amount", field: FieldAmount, value: "ten", message: "Enter a numeric amount"},
		{name: "missing category", field: FieldCategory, value: "", message: "Select a category"},
		{name: "bad date", field: FieldDate, value: "06/01/2024", message: "Date must look like 2024-01-31"},
		{name: "bad time", field: FieldTime, value: "9am", message: "Time must look like 13:45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewFormSession(fixedNow)
			require.NoError(t, s.OpenCreate(model.EntryTypeIncome))
			fillValid(t, s)
			require.NoError(t, s.SetField(tt.field, tt.value))

			_, err := s.Submit()
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidEntry)
			assert.Equal(t, tt.message, common.UserMessage(err))
			assert.True(t, s.IsOpen(), "failed submit keeps the form open")
		})
	}
}

func TestFormSession_CloseClears(t *testing.T) {
	s := NewFormSession(fixedNow)
	require.NoError(t, s.OpenCreate(model.EntryTypeExpense))
	fillValid(t, s)

	s.Close()

	assert.False(t, s.IsOpen())
	assert.Equal(t, FormValues{}, s.Values())
	assert.Empty(t, s.Type())
	require.NoError(t, s.OpenCreate(model.EntryTypeIncome))
	assert.Empty(t, s.Values().Name)
}

func TestFormSession_CategoryOptions(t *testing.T) {
	s := NewFormSession(fixedNow)
	merged := append(cats(model.CategoryTypeIncome, "salary", "Bonus"), cats(model.CategoryTypeExpense, "Food")...)

	assert.Nil(t, s.CategoryOptions(merged))

	require.NoError(t, s.OpenCreate(model.EntryTypeIncome))
	assert.Equal(t, []string{"Bonus", "salary"}, CategoryNames(s.CategoryOptions(merged)))
}
