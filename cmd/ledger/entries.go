package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/pocket-ledger/internal/cli"
	"github.com/Veraticus/pocket-ledger/internal/common"
	"github.com/Veraticus/pocket-ledger/internal/model"
	"github.com/Veraticus/pocket-ledger/internal/storage"
	"github.com/Veraticus/pocket-ledger/internal/tui/viewmodel"
	"github.com/spf13/cobra"
)

func entriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "entries",
		Aliases: []string{"entry"},
		Short:   "List, add and edit entries",
	}

	cmd.AddCommand(listEntriesCmd())
	cmd.AddCommand(addEntryCmd())
	cmd.AddCommand(editEntryCmd())

	return cmd
}

func listEntriesCmd() *cobra.Command {
	var tabName string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tab, err := viewmodel.ParseTab(tabName)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			entries, err := store.ListEntries(ctx)
			if err != nil {
				return fmt.Errorf("failed to list entries: %w", err)
			}

			out := cmd.OutOrStdout()
			view := viewmodel.BuildEntryListView(entries, tab)
			if len(entries) == 0 {
				fmt.Fprintln(out, cli.InfoStyle.Render("No entries yet. Add one with 'ledger entries add'."))
				return nil
			}
			if view.IsEmpty() {
				fmt.Fprintln(out, cli.InfoStyle.Render(fmt.Sprintf("No %s entries.", tab)))
				return nil
			}

			fmt.Fprintln(out, cli.SubtitleStyle.Render(fmt.Sprintf("%s: %d of %d entries", tab.Label(), len(view.Entries), len(entries))))
			if err := writeEntryTable(out, view.Entries); err != nil {
				return err
			}

			fmt.Fprintln(out, cli.RenderBox(cli.ChartIcon+" Totals", fmt.Sprintf("In %s  Out %s  Balance %s",
				viewmodel.FormatAmount(view.TotalIncome),
				viewmodel.FormatAmount(view.TotalExpenses),
				viewmodel.FormatAmount(view.Balance()))))
			return nil
		},
	}

	cmd.Flags().StringVar(&tabName, "tab", string(viewmodel.TabAll), "which entries to show (all, income, expense)")
	return cmd
}

// entryFlags holds the field flags shared by add and edit.
type entryFlags struct {
	name     string
	amount   string
	category string
	date     string
	clock    string
}

func (f *entryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "entry name")
	cmd.Flags().StringVarP(&f.amount, "amount", "a", "", "amount, e.g. 12.50")
	cmd.Flags().StringVarP(&f.category, "category", "c", "", "category name")
	cmd.Flags().StringVar(&f.date, "date", "", "date as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&f.clock, "time", "", "time as HH:MM (default: now)")
}

// apply copies the flags the user set onto the session.
func (f *entryFlags) apply(cmd *cobra.Command, session *viewmodel.FormSession) error {
	fields := []struct {
		flag  string
		value string
		field viewmodel.FormField
	}{
		{"name", f.name, viewmodel.FieldName},
		{"amount", f.amount, viewmodel.FieldAmount},
		{"category", f.category, viewmodel.FieldCategory},
		{"date", f.date, viewmodel.FieldDate},
		{"time", f.clock, viewmodel.FieldTime},
	}
	for _, fl := range fields {
		if !cmd.Flags().Changed(fl.flag) {
			continue
		}
		if err := session.SetField(fl.field, fl.value); err != nil {
			return err
		}
	}
	return nil
}

// submitSession validates the session and checks its category against
// the categories offered for the entry's type.
func submitSession(session *viewmodel.FormSession, merged []model.Category) (viewmodel.Submission, error) {
	if category := session.Values().Category; category != "" {
		canonical, err := resolveCategory(merged, session.Type(), category)
		if err != nil {
			return viewmodel.Submission{}, err
		}
		if err := session.SetField(viewmodel.FieldCategory, canonical); err != nil {
			return viewmodel.Submission{}, err
		}
	}
	return session.Submit()
}

func mergedCategories(cmd *cobra.Command, store *storage.SQLiteStorage) ([]model.Category, error) {
	user, err := store.ListCategories(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return model.MergeCategories(model.DefaultCategories(), user), nil
}

func addEntryCmd() *cobra.Command {
	var (
		flags       entryFlags
		typeName    string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an entry (cash in or cash out)",
		Long: `Add an income or expense entry.

Examples:
  ledger entries add --type out --name Coffee --amount 4.50 --category Food
  ledger entries add --type in -i`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entryType, err := parseEntryType(typeName)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			merged, err := mergedCategories(cmd, store)
			if err != nil {
				return err
			}

			session := viewmodel.NewFormSession(time.Now)
			if err := session.OpenCreate(entryType); err != nil {
				return err
			}
			if err := flags.apply(cmd, session); err != nil {
				return err
			}
			if interactive {
				prompter := cli.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
				if err := prompter.FillForm(ctx, session, merged); err != nil {
					return err
				}
			}

			sub, err := submitSession(session, merged)
			if err != nil {
				return err
			}

			created, err := store.CreateEntry(ctx, sub.Entry)
			if err != nil {
				return fmt.Errorf("failed to add entry: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Added %s %s (%s)",
				created.Name,
				viewmodel.FormatSignedAmount(created.Amount, created.Type == model.EntryTypeIncome),
				shortID(created.ID))))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&typeName, "type", "t", "", "income (in) or expense (out)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "prompt for fields not given as flags")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func editEntryCmd() *cobra.Command {
	var flags entryFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an entry; its type cannot change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			entry, err := findEntry(cmd, store, args[0])
			if err != nil {
				return err
			}

			merged, err := mergedCategories(cmd, store)
			if err != nil {
				return err
			}

			session := viewmodel.NewFormSession(time.Now)
			if err := session.OpenEdit(*entry); err != nil {
				return err
			}
			if err := flags.apply(cmd, session); err != nil {
				return err
			}

			sub, err := submitSession(session, merged)
			if err != nil {
				return err
			}

			updated, err := store.UpdateEntry(ctx, sub.ID, sub.Entry)
			if err != nil {
				return fmt.Errorf("failed to update entry: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Updated %s %s",
				updated.Name,
				viewmodel.FormatSignedAmount(updated.Amount, updated.Type == model.EntryTypeIncome))))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

var errAmbiguousID = errors.New("ambiguous entry id")

// findEntry looks up an entry by full ID or by the short prefix shown in lists.
func findEntry(cmd *cobra.Command, store *storage.SQLiteStorage, id string) (*model.Entry, error) {
	ctx := cmd.Context()
	entry, err := store.GetEntry(ctx, id)
	if err == nil {
		return entry, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	entries, err := store.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	var match *model.Entry
	for i := range entries {
		if len(id) >= 4 && strings.HasPrefix(entries[i].ID, id) {
			if match != nil {
				return nil, fmt.Errorf("%w: %q", errAmbiguousID, id)
			}
			match = &entries[i]
		}
	}
	if match == nil {
		return nil, fmt.Errorf("entry %q: %w", id, common.ErrNotFound)
	}
	return match, nil
}
