package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/pocket-ledger/internal/cli"
	"github.com/Veraticus/pocket-ledger/internal/model"
	"github.com/Veraticus/pocket-ledger/internal/tui/viewmodel"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category"},
		Short:   "List and add categories",
		Long: `Categories group entries. Built-in categories are always available;
custom categories are stored alongside your entries.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())

	return cmd
}

func parseCategoryType(s string) (model.CategoryType, error) {
	entryType, err := parseEntryType(s)
	if err != nil {
		return "", err
	}
	return entryType.CategoryType(), nil
}

func listCategoriesCmd() *cobra.Command {
	var typeName string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List built-in and custom categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			types := []model.CategoryType{model.CategoryTypeIncome, model.CategoryTypeExpense}
			if typeName != "" {
				t, err := parseCategoryType(typeName)
				if err != nil {
					return err
				}
				types = []model.CategoryType{t}
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

			out := cmd.OutOrStdout()
			for _, t := range types {
				var table strings.Builder
				w := tabwriter.NewWriter(&table, 0, 0, 2, ' ', 0)
				fmt.Fprintf(w, "%s\t%s\n",
					cli.TableHeaderStyle.Render("Name"),
					cli.TableHeaderStyle.Render("Source"))

				for _, c := range viewmodel.SelectCategories(merged, t) {
					source := "custom"
					if c.IsDefault() {
						source = cli.SubtleStyle.Render("built-in")
					}
					fmt.Fprintf(w, "%s\t%s\n", c.Name, source)
				}
				if err := w.Flush(); err != nil {
					return err
				}

				title := fmt.Sprintf("%s %s categories", cli.FolderIcon, model.EntryType(t).Label())
				fmt.Fprintln(out, cli.RenderBox(title, strings.TrimRight(table.String(), "\n")))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "", "only income (in) or expense (out) categories")
	return cmd
}

func addCategoryCmd() *cobra.Command {
	var typeName string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a custom category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			categoryType, err := parseCategoryType(typeName)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			created, err := store.CreateCategory(ctx, args[0], categoryType)
			if err != nil {
				return fmt.Errorf("failed to add category: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Added %s category %s", created.Type, created.Name)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "", "income (in) or expense (out)")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}
