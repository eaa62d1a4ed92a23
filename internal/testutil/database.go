// Package testutil provides an in-memory ledger database and entry fixtures for tests.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/pocket-ledger/internal/model"
	"github.com/Veraticus/pocket-ledger/internal/storage"
)

// TestDB represents a test database with the records it was seeded with.
type TestDB struct {
	Storage    *storage.SQLiteStorage
	t          *testing.T
	Entries    []model.Entry
	Categories []model.Category
}

// TestDBOptions provides configuration options for test database setup.
type TestDBOptions struct {
	CustomSetup    func(context.Context, *storage.SQLiteStorage) error
	Entries        []model.Entry
	Categories     []model.Category
	SkipMigrations bool
}

// SetupTestDB creates a migrated in-memory database with no records.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	return SetupTestDBWithOptions(t, TestDBOptions{})
}

// SetupTestDBWithOptions creates a test database with custom options.
// Seeded entries are returned with the IDs storage assigned them.
func SetupTestDBWithOptions(t *testing.T, opts TestDBOptions) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	ctx := context.Background()

	if !opts.SkipMigrations {
		if err := store.Migrate(ctx); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}
	}

	db := &TestDB{Storage: store, t: t}

	for _, cat := range opts.Categories {
		created, err := store.CreateCategory(ctx, cat.Name, cat.Type)
		if err != nil {
			t.Fatalf("failed to seed category %q: %v", cat.Name, err)
		}
		db.Categories = append(db.Categories, *created)
	}

	for _, entry := range opts.Entries {
		created, err := store.CreateEntry(ctx, entry)
		if err != nil {
			t.Fatalf("failed to seed entry %q: %v", entry.Name, err)
		}
		db.Entries = append(db.Entries, *created)
	}

	if opts.CustomSetup != nil {
		if err := opts.CustomSetup(ctx, store); err != nil {
			t.Fatalf("custom setup failed: %v", err)
		}
	}

	return db
}

// MustGetEntry returns the seeded entry with the given name or fails the test.
func (db *TestDB) MustGetEntry(name string) model.Entry {
	db.t.Helper()
	for _, e := range db.Entries {
		if e.Name == name {
			return e
		}
	}
	db.t.Fatalf("entry %q was not seeded", name)
	return model.Entry{}
}
