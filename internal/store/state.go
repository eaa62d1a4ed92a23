// Package store holds the application's canonical entries and categories and
// applies dispatched actions to them.
package store

import (
	"time"

	"github.com/Veraticus/pocket-ledger/internal/model"
)

// NoticeLevel grades a user-visible notification.
type NoticeLevel int

const (
	// NoticeInfo confirms a completed save.
	NoticeInfo NoticeLevel = iota
	// NoticeError reports a failed data-access call.
	NoticeError
)

// Notice is a message the UI shows until dismissed.
type Notice struct {
	At      time.Time
	Message string
	Level   NoticeLevel
}

// State is an immutable snapshot of the store.
type State struct {
	Notice            *Notice
	Entries           []model.Entry
	Categories        []model.Category // user-owned only
	EntriesLoaded     bool
	CategoriesLoaded  bool
	PendingOperations int
}

// MergedCategories returns the built-in defaults followed by the user's categories.
func (s State) MergedCategories() []model.Category {
	return model.MergeCategories(model.DefaultCategories(), s.Categories)
}

// FindEntry returns the entry with id, if loaded.
func (s State) FindEntry(id string) (model.Entry, bool) {
	for _, e := range s.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return model.Entry{}, false
}
