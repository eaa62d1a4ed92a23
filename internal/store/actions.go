package store

import (
	"time"

	"github.com/Veraticus/pocket-ledger/internal/common"
	"github.com/Veraticus/pocket-ledger/internal/model"
)

// Action is anything that can be dispatched to the store.
type Action interface {
	isAction()
}

// RequestStarted marks a data-access call in flight.
type RequestStarted struct {
	Operation string
}

// EntriesFetched replaces the entry collection with a fresh full list.
type EntriesFetched struct {
	Entries []model.Entry
}

// CategoriesFetched replaces the user category collection.
type CategoriesFetched struct {
	Categories []model.Category
}

// EntrySaved reports a completed create or update.
type EntrySaved struct {
	Entry   model.Entry
	Created bool
}

// CategorySaved reports a created category.
type CategorySaved struct {
	Category model.Category
}

// RequestFailed reports a data-access failure to be surfaced to the user.
type RequestFailed struct {
	At        time.Time
	Err       error
	Operation string
}

// NoticeDismissed clears the current notice.
type NoticeDismissed struct{}

func (RequestStarted) isAction()    {}
func (EntriesFetched) isAction()    {}
func (CategoriesFetched) isAction() {}
func (EntrySaved) isAction()        {}
func (CategorySaved) isAction()     {}
func (RequestFailed) isAction()     {}
func (NoticeDismissed) isAction()   {}

// Reduce applies action to state and returns the new state. It never mutates state's slices.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case RequestStarted:
		state.PendingOperations++

	case EntriesFetched:
		state.Entries = append([]model.Entry(nil), a.Entries...)
		state.EntriesLoaded = true
		state.PendingOperations = max(0, state.PendingOperations-1)

	case CategoriesFetched:
		state.Categories = append([]model.Category(nil), a.Categories...)
		state.CategoriesLoaded = true
		state.PendingOperations = max(0, state.PendingOperations-1)

	case EntrySaved:
		verb := "Updated"
		if a.Created {
			verb = "Added"
		}
		state.Notice = &Notice{Level: NoticeInfo, Message: verb + " " + a.Entry.Name}
		state.PendingOperations = max(0, state.PendingOperations-1)

	case CategorySaved:
		state.Notice = &Notice{Level: NoticeInfo, Message: "Added category " + a.Category.Name}
		state.PendingOperations = max(0, state.PendingOperations-1)

	case RequestFailed:
		msg := common.UserMessage(a.Err)
		if a.Operation != "" {
			msg = "Could not " + a.Operation + ": " + msg
		}
		state.Notice = &Notice{Level: NoticeError, Message: msg, At: a.At}
		// A failed first fetch still ends the loading state.
		if a.Operation == OpFetchEntries {
			state.EntriesLoaded = true
		}
		state.PendingOperations = max(0, state.PendingOperations-1)

	case NoticeDismissed:
		state.Notice = nil
	}

	return state
}
