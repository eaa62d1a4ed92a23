package testutil

import (
	"time"

	"github.com/Veraticus/pocket-ledger/internal/model"
)

// Day returns midnight of the given local calendar day.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

// Clock returns the given local time of day on the zero date.
func Clock(hour, minute int) time.Time {
	return time.Date(0, time.January, 1, hour, minute, 0, 0, time.Local)
}

// Income builds an income entry on 2024-03-<day> at noon.
func Income(name, category string, amount float64, day int) model.Entry {
	return model.Entry{
		Name:     name,
		Category: category,
		Amount:   amount,
		Type:     model.EntryTypeIncome,
		Date:     Day(2024, time.March, day),
		Time:     Clock(12, 0),
	}
}

// Expense builds an expense entry on 2024-03-<day> at noon.
func Expense(name, category string, amount float64, day int) model.Entry {
	e := Income(name, category, amount, day)
	e.Type = model.EntryTypeExpense
	return e
}

// SampleEntries is a small mixed ledger, oldest first.
func SampleEntries() []model.Entry {
	return []model.Entry{
		Income("March salary", "Salary", 3000, 1),
		Expense("Groceries", "Food", 82.5, 2),
		Expense("Electricity", "Bills", 64, 3),
		Income("Birthday money", "Allowance", 50, 4),
	}
}
