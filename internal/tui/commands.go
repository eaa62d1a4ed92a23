package tui

import (
	"context"

	"github.com/Veraticus/pocket-ledger/internal/common"
	"github.com/Veraticus/pocket-ledger/internal/model"
	"github.com/Veraticus/pocket-ledger/internal/tui/viewmodel"
	tea "github.com/charmbracelet/bubbletea"
)

// Effects report failures through the store's notice, so commands only log
// them and always answer with the latest snapshot.

// loadAll fetches entries and categories.
func (m Model) loadAll() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if err := m.effects.FetchEntries(ctx); err != nil {
			common.LogDebug("entry fetch failed", common.Fields{"error": err})
		}
		if err := m.effects.FetchCategories(ctx); err != nil {
			common.LogDebug("category fetch failed", common.Fields{"error": err})
		}
		return stateChangedMsg{}
	}
}

// loadCategories refreshes the user's categories.
func (m Model) loadCategories() tea.Cmd {
	return func() tea.Msg {
		if err := m.effects.FetchCategories(context.Background()); err != nil {
			common.LogDebug("category fetch failed", common.Fields{"error": err})
		}
		return stateChangedMsg{}
	}
}

// saveEntry persists a submitted form and refetches.
func (m Model) saveEntry(sub viewmodel.Submission) tea.Cmd {
	return func() tea.Msg {
		if err := m.effects.SaveEntry(context.Background(), sub.ID, sub.Entry); err != nil {
			common.LogDebug("entry save failed", common.Fields{"id": sub.ID, "error": err})
		}
		return stateChangedMsg{}
	}
}

// saveCategory creates a category and refetches categories.
func (m Model) saveCategory(name string, categoryType model.CategoryType) tea.Cmd {
	return func() tea.Msg {
		if err := m.effects.SaveCategory(context.Background(), name, categoryType); err != nil {
			common.LogDebug("category save failed", common.Fields{"name": name, "error": err})
		}
		return stateChangedMsg{}
	}
}
