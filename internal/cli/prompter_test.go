package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/pocket-ledger/internal/model"
	"github.com/Veraticus/pocket-ledger/internal/tui/viewmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, time.March, 10, 9, 30, 0, 0, time.Local)
}

func TestPrompter_Ask(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		defaultValue string
		want         string
	}{
		{name: "answer", input: "Coffee\n", want: "Coffee"},
		{name: "default on empty", input: "\n", defaultValue: "2024-03-10", want: "2024-03-10"},
		{name: "answer overrides default", input: "2024-03-01\n", defaultValue: "2024-03-10", want: "2024-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.input), &out)

			got, err := p.Ask(context.Background(), "Field", tt.defaultValue)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Field")
		})
	}
}

func TestPrompter_ChooseCategory(t *testing.T) {
	options := viewmodel.SelectCategories(model.DefaultCategories(), model.CategoryTypeExpense)

	tests := []struct {
		wantErr error
		name    string
		input   string
		want    string
	}{
		{name: "by number", input: "1\n", want: "Bills"},
		{name: "by name any case", input: "food\n", want: "Food"},
		{name: "retry after bad answer", input: "99\nHealth\n", want: "Health"},
		{name: "gives up", input: "x\ny\nz\n", wantErr: ErrNoChoice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.input), &out)

			got, err := p.ChooseCategory(context.Background(), options, "")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "[1] Bills")
		})
	}

	t.Run("no options", func(t *testing.T) {
		p := NewPrompter(strings.NewReader(""), &bytes.Buffer{})
		_, err := p.ChooseCategory(context.Background(), nil, "")
		assert.ErrorIs(t, err, ErrNoChoice)
	})
}

func TestPrompter_FillForm(t *testing.T) {
	session := viewmodel.NewFormSession(fixedClock)
	require.NoError(t, session.OpenCreate(model.EntryTypeExpense))

	// Keep date and time, then name, amount and category #4 (Food).
	input := "\n\nCoffee\n4.5\n4\n"
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(input), &out)

	require.NoError(t, p.FillForm(context.Background(), session, model.DefaultCategories()))

	sub, err := session.Submit()
	require.NoError(t, err)
	assert.Equal(t, "Coffee", sub.Entry.Name)
	assert.InDelta(t, 4.5, sub.Entry.Amount, 0.001)
	assert.Equal(t, "Food", sub.Entry.Category)
	assert.Equal(t, 10, sub.Entry.Date.Day())
	assert.Contains(t, out.String(), "Add an Expense")
}

func TestPrompter_FillFormSkipsProvidedFields(t *testing.T) {
	session := viewmodel.NewFormSession(fixedClock)
	require.NoError(t, session.OpenCreate(model.EntryTypeIncome))
	require.NoError(t, session.SetField(viewmodel.FieldName, "Paycheck"))
	require.NoError(t, session.SetField(viewmodel.FieldCategory, "Salary"))

	// Date, time, then only the amount is asked.
	p := NewPrompter(strings.NewReader("2024-03-01\n\n3000\n"), &bytes.Buffer{})
	require.NoError(t, p.FillForm(context.Background(), session, model.DefaultCategories()))

	values := session.Values()
	assert.Equal(t, "Paycheck", values.Name)
	assert.Equal(t, "3000", values.Amount)
	assert.Equal(t, "2024-03-01", values.Date)
	assert.Equal(t, "09:30", values.Time)
}

func TestPrompter_FillFormClosedSession(t *testing.T) {
	p := NewPrompter(strings.NewReader(""), &bytes.Buffer{})
	err := p.FillForm(context.Background(), viewmodel.NewFormSession(fixedClock), nil)
	assert.ErrorIs(t, err, viewmodel.ErrSessionClosed)
}

func TestPrompter_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPrompter(strings.NewReader("ignored\n"), &bytes.Buffer{})
	_, err := p.Ask(ctx, "Name", "")
	assert.ErrorIs(t, err, ErrInputCancelled)
}
