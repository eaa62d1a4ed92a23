package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/pocket-ledger/internal/common"
	"github.com/Veraticus/pocket-ledger/internal/model"
	sqlite3 "github.com/mattn/go-sqlite3"
)

// ListCategories returns all user-owned categories in creation order.
func (s *SQLiteStorage) ListCategories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, type, created_at
		FROM categories
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		var (
			cat          model.Category
			id           int
			categoryType string
		)
		if err := rows.Scan(&id, &cat.Name, &categoryType, &cat.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		cat.ID = &id
		cat.Type = model.CategoryType(categoryType)
		categories = append(categories, cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	slog.Debug("retrieved categories", "count", len(categories))
	return categories, nil
}

// CreateCategory creates a user-owned category. Names are unique within a type.
func (s *SQLiteStorage) CreateCategory(ctx context.Context, name string, categoryType model.CategoryType) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateCategory(name, categoryType); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	now := s.now()

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (name, type, created_at)
		VALUES (?, ?, ?)`, name, string(categoryType), now)
	if err != nil {
		if sqliteErr, ok := err.(sqlite3.Error); ok && sqliteErr.Code == sqlite3.ErrConstraint {
			return nil, fmt.Errorf("category %q (%s): %w", name, categoryType, common.ErrDuplicateEntry)
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	id64, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get category ID: %w", err)
	}
	id := int(id64)

	slog.Info("created new category", "name", name, "type", categoryType, "id", id)
	return &model.Category{
		ID:        &id,
		Name:      name,
		Type:      categoryType,
		CreatedAt: now,
	}, nil
}
