package components

import (
	"github.com/Veraticus/pocket-ledger/internal/model"
	"github.com/Veraticus/pocket-ledger/internal/tui/viewmodel"
)

// EntrySelectedMsg requests editing the selected entry.
type EntrySelectedMsg struct {
	Entry model.Entry
}

// EntryFormSubmittedMsg carries a validated entry form.
type EntryFormSubmittedMsg struct {
	Submission viewmodel.Submission
}

// EntryFormClosedMsg is sent when the entry form is dismissed without saving.
type EntryFormClosedMsg struct{}

// CategoryFormRequestedMsg asks to open the category form for a type.
type CategoryFormRequestedMsg struct {
	Type model.CategoryType
}

// CategorySubmittedMsg carries a new category name.
type CategorySubmittedMsg struct {
	Name string
	Type model.CategoryType
}

// CategoryFormClosedMsg is sent when the category form is dismissed.
type CategoryFormClosedMsg struct{}
