// Package model defines the core domain models used throughout the application.
package model

import (
	"time"
)

// EntryType indicates whether an entry brings money in or takes it out.
type EntryType string

const (
	// EntryTypeIncome represents money coming in ("cash in").
	EntryTypeIncome EntryType = "income"
	// EntryTypeExpense represents money going out ("cash out").
	EntryTypeExpense EntryType = "expense"
)

// IsValid reports whether t is one of the known entry types.
func (t EntryType) IsValid() bool {
	return t == EntryTypeIncome || t == EntryTypeExpense
}

// Label returns the capitalized display label for the type.
func (t EntryType) Label() string {
	switch t {
	case EntryTypeIncome:
		return "Income"
	case EntryTypeExpense:
		return "Expense"
	default:
		return "Unknown"
	}
}

// CategoryType returns the category partition entries of this type draw from.
func (t EntryType) CategoryType() CategoryType {
	return CategoryType(t)
}

// Entry represents a single income or expense transaction entered by the user.
type Entry struct {
	Date     time.Time // Calendar day of the entry
	Time     time.Time // Time of day of the entry
	ID       string
	Name     string
	Category string // Name of a category with the same type
	Type     EntryType
	Amount   float64
}

// When combines the entry's date and time of day into a single instant.
func (e Entry) When() time.Time {
	y, mo, d := e.Date.Date()
	h, mi, s := e.Time.Clock()
	loc := e.Date.Location()
	return time.Date(y, mo, d, h, mi, s, 0, loc)
}
