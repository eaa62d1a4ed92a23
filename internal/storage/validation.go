// Package storage provides the SQLite data-access layer for entries and categories.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/pocket-ledger/internal/common"
	"github.com/Veraticus/pocket-ledger/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrInvalidType  = errors.New("invalid type")
	ErrMissingDate  = errors.New("missing date")
	ErrInvalidValue = errors.New("invalid value")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateEntry checks the fields an entry must carry to be stored.
func validateEntry(entry *model.Entry) error {
	if !entry.Type.IsValid() {
		return fmt.Errorf("%w: %w %q", common.ErrInvalidEntry, ErrInvalidType, entry.Type)
	}
	if strings.TrimSpace(entry.Name) == "" {
		return fmt.Errorf("%w: %w: name", common.ErrInvalidEntry, ErrEmptyString)
	}
	if entry.Date.IsZero() {
		return fmt.Errorf("%w: %w", common.ErrInvalidEntry, ErrMissingDate)
	}
	return nil
}

// validateCategory checks a new category's name and type.
func validateCategory(name string, categoryType model.CategoryType) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: %w: name", common.ErrInvalidCategory, ErrEmptyString)
	}
	if !categoryType.IsValid() {
		return fmt.Errorf("%w: %w %q", common.ErrInvalidCategory, ErrInvalidType, categoryType)
	}
	return nil
}
