package model

import "time"

// CategoryType indicates which entry type a category applies to.
type CategoryType string

const (
	// CategoryTypeIncome represents categories for income entries.
	CategoryTypeIncome CategoryType = "income"
	// CategoryTypeExpense represents categories for expense entries.
	CategoryTypeExpense CategoryType = "expense"
)

// IsValid reports whether t is one of the known category types.
func (t CategoryType) IsValid() bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense
}

// Category represents a label describing an entry's purpose, scoped to one type.
// Built-in defaults carry a nil ID because they are not user-owned.
type Category struct {
	CreatedAt time.Time
	ID        *int
	Name      string
	Type      CategoryType
}

// IsDefault reports whether the category is a built-in one.
func (c Category) IsDefault() bool {
	return c.ID == nil
}
