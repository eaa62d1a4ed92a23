package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/pocket-ledger/internal/cli"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Initialize or update the database schema to the latest version.

Other commands migrate automatically; this one only reports the result.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initStorage(cmd.Context())
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			defer func() { _ = store.Close() }()

			slog.Info("database migrations completed", "database", store.Path())
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Database is up to date: "+store.Path()))
			return nil
		},
	}
}
