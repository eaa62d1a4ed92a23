package main

import (
	"fmt"

	"github.com/Veraticus/pocket-ledger/internal/cli"
	"github.com/Veraticus/pocket-ledger/internal/config"
	"github.com/Veraticus/pocket-ledger/internal/service"
	"github.com/Veraticus/pocket-ledger/internal/sheets"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export entries",
	}
	cmd.AddCommand(exportSheetsCmd())
	return cmd
}

func exportSheetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheets",
		Short: "Write entries, monthly flow and category totals to Google Sheets",
		Long: `Replace the contents of the configured spreadsheet with your entries.

Authenticate once with 'ledger export sheets auth', or configure a
service account with sheets.service_account_path.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			useSavedToken()
			cfg, err := config.LoadSheetsConfig(viper.GetViper())
			if err != nil {
				return fmt.Errorf("google sheets is not configured: %w", err)
			}

			writer, err := sheets.NewWriter(ctx, *cfg, nil)
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			count, err := exportEntries(cmd, store, writer)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Exported %d entries to Google Sheets", count)))
			return nil
		},
	}

	cmd.AddCommand(sheetsAuthCmd())
	return cmd
}

func exportEntries(cmd *cobra.Command, data service.DataAccess, writer service.EntryWriter) (int, error) {
	entries, err := data.ListEntries(cmd.Context())
	if err != nil {
		return 0, fmt.Errorf("failed to list entries: %w", err)
	}
	if err := writer.Write(cmd.Context(), entries); err != nil {
		return 0, fmt.Errorf("failed to export: %w", err)
	}
	return len(entries), nil
}

// useSavedToken fills sheets.refresh_token from the token file written by
// the auth command when it is not configured directly.
func useSavedToken() {
	if viper.GetString("sheets.refresh_token") != "" {
		return
	}
	token, err := sheets.LoadToken(config.ExpandPath(viper.GetString("sheets.token_file")))
	if err != nil || token.RefreshToken == "" {
		return
	}
	viper.Set("sheets.refresh_token", token.RefreshToken)
}

func sheetsAuthCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authorize access to Google Sheets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientID := viper.GetString("sheets.client_id")
			clientSecret := viper.GetString("sheets.client_secret")
			if clientID == "" || clientSecret == "" {
				return fmt.Errorf("set sheets.client_id and sheets.client_secret first")
			}

			out := cmd.OutOrStdout()
			tokenFile := config.ExpandPath(viper.GetString("sheets.token_file"))
			token, err := sheets.GetOrCreateToken(cmd.Context(), sheets.OAuth2Config{
				ClientID:     clientID,
				ClientSecret: clientSecret,
				TokenFile:    tokenFile,
				CallbackAddr: addr,
			}, func(url string) {
				fmt.Fprintln(out, cli.FormatInfo("Open this URL to authorize Google Sheets access:"))
				fmt.Fprintln(out, url)
			})
			if err != nil {
				return err
			}
			if token.RefreshToken == "" {
				return fmt.Errorf("no refresh token received; revoke access and try again")
			}

			fmt.Fprintln(out, cli.FormatSuccess("Google Sheets authorized; token saved to "+tokenFile))
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "listen", sheets.DefaultCallbackAddr, "address for the OAuth2 callback server")
	return cmd
}
