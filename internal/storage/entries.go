package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/pocket-ledger/internal/common"
	"github.com/Veraticus/pocket-ledger/internal/model"
	"github.com/google/uuid"
)

const entryColumns = `id, name, amount, type, category, entry_date, entry_time`

// ListEntries returns every entry, most recent first.
func (s *SQLiteStorage) ListEntries(ctx context.Context) ([]model.Entry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT ` + entryColumns + `
		FROM entries
		ORDER BY entry_date DESC, entry_time DESC, created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	entries := []model.Entry{}
	for rows.Next() {
		entry, scanErr := scanEntry(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		entries = append(entries, *entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entries: %w", err)
	}

	slog.Debug("retrieved entries", "count", len(entries))
	return entries, nil
}

// GetEntry returns a single entry by ID.
func (s *SQLiteStorage) GetEntry(ctx context.Context, id string) (*model.Entry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM entries WHERE id = ?`, id)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("entry %q: %w", id, common.ErrNotFound)
	}
	return entry, err
}

// CreateEntry stores a new entry, assigning it a fresh ID.
func (s *SQLiteStorage) CreateEntry(ctx context.Context, entry model.Entry) (*model.Entry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateEntry(&entry); err != nil {
		return nil, err
	}

	entry.ID = uuid.NewString()
	now := s.now()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entries (`+entryColumns+`, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		strings.TrimSpace(entry.Name),
		entry.Amount,
		string(entry.Type),
		entry.Category,
		entry.Date.Format(dateLayout),
		entry.Time.Format(timeLayout),
		now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	slog.Info("created entry", "id", entry.ID, "type", entry.Type, "amount", entry.Amount)
	return s.GetEntry(ctx, entry.ID)
}

// UpdateEntry replaces the editable fields of an existing entry.
func (s *SQLiteStorage) UpdateEntry(ctx context.Context, id string, entry model.Entry) (*model.Entry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}
	if err := validateEntry(&entry); err != nil {
		return nil, err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE entries
		SET name = ?, amount = ?, type = ?, category = ?, entry_date = ?, entry_time = ?, updated_at = ?
		WHERE id = ?`,
		strings.TrimSpace(entry.Name),
		entry.Amount,
		string(entry.Type),
		entry.Category,
		entry.Date.Format(dateLayout),
		entry.Time.Format(timeLayout),
		s.now(),
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("entry %q: %w", id, common.ErrNotFound)
	}

	slog.Info("updated entry", "id", id)
	return s.GetEntry(ctx, id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*model.Entry, error) {
	var (
		entry     model.Entry
		entryType string
		date      string
		clock     string
	)

	if err := row.Scan(&entry.ID, &entry.Name, &entry.Amount, &entryType, &entry.Category, &date, &clock); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan entry: %w", err)
	}

	entry.Type = model.EntryType(entryType)

	var err error
	if entry.Date, err = time.ParseInLocation(dateLayout, date, time.Local); err != nil {
		return nil, fmt.Errorf("%w: entry %s date %q", ErrInvalidValue, entry.ID, date)
	}
	if entry.Time, err = time.ParseInLocation(timeLayout, clock, time.Local); err != nil {
		return nil, fmt.Errorf("%w: entry %s time %q", ErrInvalidValue, entry.ID, clock)
	}

	return &entry, nil
}
