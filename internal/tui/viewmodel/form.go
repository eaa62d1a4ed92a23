package viewmodel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/pocket-ledger/internal/common"
	"github.com/Veraticus/pocket-ledger/internal/model"
)

// Form session errors.
var (
	ErrSessionOpen   = errors.New("form is already open")
	ErrSessionClosed = errors.New("form is not open")
	ErrTypeLocked    = errors.New("entry type cannot change while editing")
	ErrUnknownField  = errors.New("unknown form field")
)

// FormMode says whether a submission creates or updates an entry.
type FormMode int

const (
	// FormCreate adds a new entry.
	FormCreate FormMode = iota
	// FormEdit updates an existing entry.
	FormEdit
)

// FormField names an editable field of the entry form.
type FormField int

const (
	// FieldName is the entry name.
	FieldName FormField = iota
	// FieldAmount is the positive amount as typed.
	FieldAmount
	// FieldCategory is a category name of the entry's type.
	FieldCategory
	// FieldDate is the day, as YYYY-MM-DD.
	FieldDate
	// FieldTime is the time of day, as HH:MM.
	FieldTime
)

// FormFields lists the editable fields in tab order.
var FormFields = []FormField{FieldDate, FieldTime, FieldName, FieldAmount, FieldCategory}

// String returns the field's label.
func (f FormField) String() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldAmount:
		return "Amount"
	case FieldCategory:
		return "Category"
	case FieldDate:
		return "Date"
	case FieldTime:
		return "Time"
	default:
		return fmt.Sprintf("Unknown(%d)", int(f))
	}
}

// FormValues holds the raw text of each field.
type FormValues struct {
	Name     string
	Amount   string
	Category string
	Date     string
	Time     string
}

// Submission is the validated result of a form session.
type Submission struct {
	ID    string // empty for FormCreate
	Entry model.Entry
	Mode  FormMode
}

// FormSession is the entry editor's state machine:
// closed -> open(type, mode) -> closed. The type is fixed while open.
type FormSession struct {
	now       func() time.Time
	editingID string
	values    FormValues
	entryType model.EntryType
	mode      FormMode
	open      bool
}

// NewFormSession creates a closed session. now supplies default date and time.
func NewFormSession(now func() time.Time) *FormSession {
	if now == nil {
		now = time.Now
	}
	return &FormSession{now: now}
}

// OpenCreate opens the form for a new entry of the given type.
func (s *FormSession) OpenCreate(entryType model.EntryType) error {
	if s.open {
		return ErrSessionOpen
	}
	if !entryType.IsValid() {
		return fmt.Errorf("%w: type %q", common.ErrInvalidEntry, entryType)
	}

	now := s.now()
	s.open = true
	s.mode = FormCreate
	s.entryType = entryType
	s.editingID = ""
	s.values = FormValues{
		Date: FormatDate(now),
		Time: FormatTime(now),
	}
	return nil
}

// OpenEdit opens the form preloaded with entry's fields. The type comes from the entry.
func (s *FormSession) OpenEdit(entry model.Entry) error {
	if s.open {
		return ErrSessionOpen
	}
	if !entry.Type.IsValid() {
		return fmt.Errorf("%w: type %q", common.ErrInvalidEntry, entry.Type)
	}

	s.open = true
	s.mode = FormEdit
	s.entryType = entry.Type
	s.editingID = entry.ID
	s.values = FormValues{
		Name:     entry.Name,
		Amount:   strconv.FormatFloat(entry.Amount, 'f', -1, 64),
		Category: entry.Category,
		Date:     FormatDate(entry.Date),
		Time:     FormatTime(entry.Time),
	}
	return nil
}

// IsOpen reports whether the form is showing.
func (s *FormSession) IsOpen() bool { return s.open }

// Mode returns the current mode; meaningful only while open.
func (s *FormSession) Mode() FormMode { return s.mode }

// Type returns the entry type fixed for this session.
func (s *FormSession) Type() model.EntryType { return s.entryType }

// EditingID returns the ID of the entry under edit.
func (s *FormSession) EditingID() string { return s.editingID }

// Values returns a copy of the current field text.
func (s *FormSession) Values() FormValues { return s.values }

// Title is the dialog heading, e.g. "Add an Income" or "Edit an Expense".
func (s *FormSession) Title() string {
	verb := "Add"
	if s.mode == FormEdit {
		verb = "Edit"
	}
	return fmt.Sprintf("%s an %s", verb, s.entryType.Label())
}

// SetField updates one field's text.
func (s *FormSession) SetField(field FormField, value string) error {
	if !s.open {
		return ErrSessionClosed
	}

	switch field {
	case FieldName:
		s.values.Name = value
	case FieldAmount:
		s.values.Amount = value
	case FieldCategory:
		s.values.Category = value
	case FieldDate:
		s.values.Date = value
	case FieldTime:
		s.values.Time = value
	default:
		return fmt.Errorf("%w: %d", ErrUnknownField, int(field))
	}
	return nil
}

// SetType rejects any change of type while open. Setting the same type is a no-op.
func (s *FormSession) SetType(entryType model.EntryType) error {
	if !s.open {
		return ErrSessionClosed
	}
	if entryType != s.entryType {
		return ErrTypeLocked
	}
	return nil
}

// CategoryOptions returns the categories offered for this session's type.
func (s *FormSession) CategoryOptions(merged []model.Category) []model.Category {
	if !s.open {
		return nil
	}
	return SelectCategories(merged, s.entryType.CategoryType())
}

// Validate parses the current values into an entry without closing the session.
func (s *FormSession) Validate() (model.Entry, error) {
	if !s.open {
		return model.Entry{}, ErrSessionClosed
	}

	name := strings.TrimSpace(s.values.Name)
	if name == "" {
		return model.Entry{}, common.NewUserError("Enter an entry name", common.ErrInvalidEntry)
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(s.values.Amount), 64)
	if err != nil {
		return model.Entry{}, common.NewUserError("Enter a numeric amount", fmt.Errorf("%w: amount %q", common.ErrInvalidEntry, s.values.Amount))
	}

	category := strings.TrimSpace(s.values.Category)
	if category == "" {
		return model.Entry{}, common.NewUserError("Select a category", common.ErrInvalidEntry)
	}

	date, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s.values.Date), time.Local)
	if err != nil {
		return model.Entry{}, common.NewUserError("Date must look like 2024-01-31", fmt.Errorf("%w: date %q", common.ErrInvalidEntry, s.values.Date))
	}

	clock, err := time.ParseInLocation(TimeLayout, strings.TrimSpace(s.values.Time), time.Local)
	if err != nil {
		return model.Entry{}, common.NewUserError("Time must look like 13:45", fmt.Errorf("%w: time %q", common.ErrInvalidEntry, s.values.Time))
	}

	return model.Entry{
		ID:       s.editingID,
		Name:     name,
		Amount:   amount,
		Type:     s.entryType,
		Category: category,
		Date:     date,
		Time:     clock,
	}, nil
}

// Submit validates the form, then closes it and clears all values.
// On a validation error the session stays open so the user can correct it.
func (s *FormSession) Submit() (Submission, error) {
	entry, err := s.Validate()
	if err != nil {
		return Submission{}, err
	}

	sub := Submission{Mode: s.mode, ID: s.editingID, Entry: entry}
	s.Close()
	return sub, nil
}

// Close discards the session and clears all values.
func (s *FormSession) Close() {
	s.open = false
	s.mode = FormCreate
	s.entryType = ""
	s.editingID = ""
	s.values = FormValues{}
}
