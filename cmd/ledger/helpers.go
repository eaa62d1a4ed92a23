package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/pocket-ledger/internal/cli"
	"github.com/Veraticus/pocket-ledger/internal/config"
	"github.com/Veraticus/pocket-ledger/internal/model"
	"github.com/Veraticus/pocket-ledger/internal/storage"
	"github.com/Veraticus/pocket-ledger/internal/tui/viewmodel"
	"github.com/spf13/viper"
)

// initStorage opens the configured database and brings its schema up to date.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath
	}

	store, err := storage.NewSQLiteStorage(config.ExpandPath(dbPath))
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// parseEntryType accepts income/expense and the in/out shorthands.
func parseEntryType(s string) (model.EntryType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income", "in":
		return model.EntryTypeIncome, nil
	case "expense", "out":
		return model.EntryTypeExpense, nil
	default:
		return "", fmt.Errorf("invalid type %q: use income or expense", s)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func writeEntryTable(w io.Writer, entries []model.Entry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
		cli.TableHeaderStyle.Render("ID"),
		cli.TableHeaderStyle.Render("Date"),
		cli.TableHeaderStyle.Render("Time"),
		cli.TableHeaderStyle.Render("Entry Name"),
		cli.TableHeaderStyle.Render("Category"),
		cli.TableHeaderStyle.Render("Amount"))

	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(e.ID),
			viewmodel.FormatDate(e.Date),
			viewmodel.FormatTime(e.Time),
			viewmodel.TruncateString(viewmodel.SanitizeForDisplay(e.Name), 40),
			e.Category,
			cli.FormatAmount(e.Amount, e.Type == model.EntryTypeIncome))
	}

	return tw.Flush()
}

// resolveCategory returns the canonical spelling of name among the
// categories offered for entryType.
func resolveCategory(merged []model.Category, entryType model.EntryType, name string) (string, error) {
	for _, c := range viewmodel.SelectCategories(merged, entryType.CategoryType()) {
		if strings.EqualFold(c.Name, strings.TrimSpace(name)) {
			return c.Name, nil
		}
	}
	return "", fmt.Errorf("unknown %s category %q: add it with 'ledger categories add'", strings.ToLower(entryType.Label()), name)
}
