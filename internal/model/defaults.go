package model

var defaultCategories = []Category{
	{Name: "Allowance", Type: CategoryTypeIncome},
	{Name: "Salary", Type: CategoryTypeIncome},
	{Name: "Bonus", Type: CategoryTypeIncome},
	{Name: "Petty cash", Type: CategoryTypeIncome},
	{Name: "Other", Type: CategoryTypeIncome},
	{Name: "Food", Type: CategoryTypeExpense},
	{Name: "Bills", Type: CategoryTypeExpense},
	{Name: "Transportation", Type: CategoryTypeExpense},
	{Name: "Shopping", Type: CategoryTypeExpense},
	{Name: "Health", Type: CategoryTypeExpense},
	{Name: "Entertainment", Type: CategoryTypeExpense},
	{Name: "Education", Type: CategoryTypeExpense},
	{Name: "Other", Type: CategoryTypeExpense},
}

// DefaultCategories returns the built-in categories available without user creation.
// The returned slice is a fresh copy and may be modified by the caller.
func DefaultCategories() []Category {
	out := make([]Category, len(defaultCategories))
	copy(out, defaultCategories)
	return out
}

// MergeCategories returns the working category set: defaults followed by user categories.
// Names are not deduplicated; a user category sharing a default's name coexists with it.
func MergeCategories(defaults, user []Category) []Category {
	merged := make([]Category, 0, len(defaults)+len(user))
	merged = append(merged, defaults...)
	return append(merged, user...)
}
