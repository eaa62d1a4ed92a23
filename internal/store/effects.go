package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/Veraticus/pocket-ledger/internal/common"
	"github.com/Veraticus/pocket-ledger/internal/model"
	"github.com/Veraticus/pocket-ledger/internal/service"
)

// Operation names used in failure notices.
const (
	OpFetchEntries    = "load entries"
	OpFetchCategories = "load categories"
	OpSaveEntry       = "save entry"
	OpSaveCategory    = "add category"
)

// Effects runs data-access calls and dispatches their outcome.
// Calls are not retried, cancelled on overlap, or deduplicated: a slower
// response may overwrite a fresher one.
type Effects struct {
	data    service.DataAccess
	store   Store
	now     func() time.Time
	timeout time.Duration
}

// NewEffects binds data access to a store.
func NewEffects(data service.DataAccess, st Store) *Effects {
	return &Effects{
		data:    data,
		store:   st,
		now:     time.Now,
		timeout: 10 * time.Second,
	}
}

func (e *Effects) fail(op string, err error) {
	common.LogError(err, "data access failed", common.Fields{"operation": op})
	e.store.Dispatch(RequestFailed{Operation: op, Err: err, At: e.now()})
}

// FetchEntries loads the full entry list.
func (e *Effects) FetchEntries(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	e.store.Dispatch(RequestStarted{Operation: OpFetchEntries})
	entries, err := e.data.ListEntries(ctx)
	if err != nil {
		e.fail(OpFetchEntries, err)
		return err
	}
	e.store.Dispatch(EntriesFetched{Entries: entries})
	return nil
}

// FetchCategories loads the user's categories.
func (e *Effects) FetchCategories(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	e.store.Dispatch(RequestStarted{Operation: OpFetchCategories})
	categories, err := e.data.ListCategories(ctx)
	if err != nil {
		e.fail(OpFetchCategories, err)
		return err
	}
	e.store.Dispatch(CategoriesFetched{Categories: categories})
	return nil
}

// SaveEntry creates the entry when id is empty and updates it otherwise,
// then refetches the entry and category collections.
func (e *Effects) SaveEntry(ctx context.Context, id string, entry model.Entry) error {
	saveCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	e.store.Dispatch(RequestStarted{Operation: OpSaveEntry})

	var (
		saved *model.Entry
		err   error
	)
	if id == "" {
		saved, err = e.data.CreateEntry(saveCtx, entry)
	} else {
		saved, err = e.data.UpdateEntry(saveCtx, id, entry)
	}
	if err != nil {
		e.fail(OpSaveEntry, err)
		return err
	}

	slog.Debug("entry saved", "id", saved.ID, "created", id == "")
	e.store.Dispatch(EntrySaved{Entry: *saved, Created: id == ""})

	if err := e.FetchEntries(ctx); err != nil {
		return err
	}
	return e.FetchCategories(ctx)
}

// SaveCategory creates a user category and refetches the category collection.
func (e *Effects) SaveCategory(ctx context.Context, name string, categoryType model.CategoryType) error {
	saveCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	e.store.Dispatch(RequestStarted{Operation: OpSaveCategory})
	saved, err := e.data.CreateCategory(saveCtx, name, categoryType)
	if err != nil {
		e.fail(OpSaveCategory, err)
		return err
	}
	e.store.Dispatch(CategorySaved{Category: *saved})

	return e.FetchCategories(ctx)
}
