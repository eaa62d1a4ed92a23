package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Veraticus/pocket-ledger/internal/cli"
	"github.com/Veraticus/pocket-ledger/internal/model"
	"github.com/Veraticus/pocket-ledger/internal/ofx"
	"github.com/Veraticus/pocket-ledger/internal/pattern"
	"github.com/Veraticus/pocket-ledger/internal/storage"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import entries from bank statements",
	}
	cmd.AddCommand(importOFXCmd())
	return cmd
}

func importOFXCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "ofx [files...]",
		Short: "Import entries from OFX/QFX files",
		Long: `Import statement lines from OFX or QFX (Quicken) files exported from your bank.
Credits become income and debits become expenses. Lines already in the
ledger are skipped, so importing the same file twice is safe.

Examples:
  ledger import ofx ~/Downloads/checking_jan_2024.qfx
  ledger import ofx ~/Downloads/*.qfx --dry-run`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImportOFX(cmd, args, dryRun)
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "preview import without saving")
	return cmd
}

// expandFiles resolves glob patterns, keeping literal paths that exist.
func expandFiles(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, statErr := os.Stat(pattern); statErr == nil {
				files = append(files, pattern)
			} else {
				slog.Warn("no files found matching pattern", "pattern", pattern)
			}
			continue
		}
		files = append(files, matches...)
	}
	return files, nil
}

// parseFiles parses each file, skipping unreadable ones with a warning.
func parseFiles(ctx context.Context, files []string) ([]model.Entry, error) {
	parser := ofx.NewParser()

	var all []model.Entry
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		f, err := os.Open(path) // #nosec G304
		if err != nil {
			slog.Error("failed to open file", "file", path, "error", err)
			continue
		}

		entries, err := parser.ParseFile(ctx, f)
		_ = f.Close()
		if err != nil {
			slog.Error("failed to parse OFX file", "file", path, "error", err)
			continue
		}

		slog.Info("parsed file", "file", filepath.Base(path), "entries", len(entries))
		all = append(all, entries...)
	}
	return all, nil
}

func runImportOFX(cmd *cobra.Command, args []string, dryRun bool) error {
	out := cmd.OutOrStdout()

	files, err := expandFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files found to import")
	}

	interrupts := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx := interrupts.HandleInterrupts(cmd.Context(), "Import", "Run the same import again; entries already saved are skipped.")

	parsed, err := parseFiles(ctx, files)
	if err != nil {
		return err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	existing, err := store.ListEntries(ctx)
	if err != nil {
		return fmt.Errorf("failed to list entries: %w", err)
	}

	fresh := ofx.FilterNew(existing, parsed)
	fmt.Fprintln(out, cli.FormatInfo(fmt.Sprintf("%d entries found in %d file(s), %d new", len(parsed), len(files), len(fresh))))

	if err := applyCategoryRules(cmd, store, fresh); err != nil {
		return err
	}

	if dryRun {
		if len(fresh) > 0 {
			if err := writeEntryTable(out, fresh); err != nil {
				return err
			}
		}
		fmt.Fprintln(out, cli.FormatInfo("Dry run complete: nothing saved"))
		return nil
	}
	if len(fresh) == 0 {
		return nil
	}

	imported, err := saveImported(ctx, store, fresh, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("imported %d of %d entries: %w", imported, len(fresh), err)
	}

	fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Imported %d entries", imported)))
	return nil
}

// applyCategoryRules recategorizes entries using the rules under import.rules.
func applyCategoryRules(cmd *cobra.Command, store *storage.SQLiteStorage, entries []model.Entry) error {
	var rules []pattern.Rule
	if err := viper.UnmarshalKey("import.rules", &rules); err != nil {
		return fmt.Errorf("failed to read import.rules: %w", err)
	}
	if len(rules) == 0 || len(entries) == 0 {
		return nil
	}

	matcher, err := pattern.NewMatcher(rules)
	if err != nil {
		return fmt.Errorf("import.rules: %w", err)
	}
	merged, err := mergedCategories(cmd, store)
	if err != nil {
		return err
	}

	changed := pattern.NewCategorizer(matcher, merged).Apply(entries)
	slog.Info("applied category rules", "rules", matcher.Len(), "recategorized", changed)
	return nil
}

type entryCreator interface {
	CreateEntry(ctx context.Context, entry model.Entry) (*model.Entry, error)
}

func saveImported(ctx context.Context, store entryCreator, entries []model.Entry, progress io.Writer) (int, error) {
	bar := progressbar.NewOptions(len(entries),
		progressbar.OptionSetWriter(progress),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan]Importing entries...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			_, _ = fmt.Fprintln(progress)
		}),
	)

	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if _, err := store.CreateEntry(ctx, entry); err != nil {
			return i, err
		}
		_ = bar.Add(1)
	}
	return len(entries), nil
}
