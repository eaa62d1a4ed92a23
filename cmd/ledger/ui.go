package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Veraticus/pocket-ledger/internal/common"
	"github.com/Veraticus/pocket-ledger/internal/config"
	"github.com/Veraticus/pocket-ledger/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func uiCmd() *cobra.Command {
	var (
		recordDir    string
		noStats      bool
		noAnimations bool
		mouse        bool
	)

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive ledger",
		Long: `Browse entries by tab, cash in with 'i', cash out with 'o',
and press enter on a row to edit it. Press '?' for all keys.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			closeLog, err := logToFile()
			if err != nil {
				return err
			}
			defer closeLog()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			opts := []tui.Option{
				tui.WithFeatures(!noStats, !noAnimations, mouse),
			}
			if recordDir != "" {
				opts = append(opts, tui.WithRecording(config.ExpandPath(recordDir)))
			}

			common.LogInfo("starting ui", common.Fields{"database": store.Path()})
			return tui.Run(ctx, store, opts...)
		},
	}

	cmd.Flags().StringVar(&recordDir, "record", "", "record every frame to this directory for debugging")
	cmd.Flags().BoolVar(&noStats, "no-stats", false, "hide the spending summary panel")
	cmd.Flags().BoolVar(&noAnimations, "no-animations", false, "disable spinner and cursor blink")
	cmd.Flags().BoolVar(&mouse, "mouse", false, "enable mouse support")

	return cmd
}

// logToFile redirects logging to logging.file while the UI owns the terminal.
// The returned func restores the previous logger and closes the file.
func logToFile() (func(), error) {
	path := config.ExpandPath(viper.GetString("logging.file"))
	if path == "" {
		path = config.ExpandPath(config.DefaultLogFile)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	level, err := common.ParseLevel(viper.GetString("logging.level"))
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	previous := slog.Default()
	if err := common.SetupLogger(f, level, viper.GetString("logging.format")); err != nil {
		_ = f.Close()
		return nil, err
	}

	return func() {
		slog.SetDefault(previous)
		_ = f.Close()
	}, nil
}
