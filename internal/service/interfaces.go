// Package service defines the interfaces shared between the store, the UI and persistence.
package service

import (
	"context"

	"github.com/Veraticus/pocket-ledger/internal/model"
)

// DataAccess is the contract the presentation layer relies on for entries and categories.
// Every mutation is followed by a full ListEntries/ListCategories refetch; there is no
// incremental patching.
type DataAccess interface {
	// ListEntries returns the full current collection of entries.
	ListEntries(ctx context.Context) ([]model.Entry, error)
	// CreateEntry stores a new entry and returns it with its assigned ID.
	CreateEntry(ctx context.Context, entry model.Entry) (*model.Entry, error)
	// UpdateEntry replaces the fields of the entry identified by id.
	UpdateEntry(ctx context.Context, id string, entry model.Entry) (*model.Entry, error)

	// ListCategories returns user-owned categories only; built-ins are compiled in.
	ListCategories(ctx context.Context) ([]model.Category, error)
	// CreateCategory stores a user-owned category.
	CreateCategory(ctx context.Context, name string, categoryType model.CategoryType) (*model.Category, error)
}

// Storage is DataAccess plus database lifecycle management.
type Storage interface {
	DataAccess

	Migrate(ctx context.Context) error
	Close() error
}

// EntryWriter exports a snapshot of entries to an external destination.
type EntryWriter interface {
	Write(ctx context.Context, entries []model.Entry) error
}
