// Package config loads and normalizes the application's configuration.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultDatabasePath is used when database.path is not configured.
const DefaultDatabasePath = "$HOME/.local/share/ledger/ledger.db"

// DefaultTokenFile stores the Google Sheets OAuth2 token.
const DefaultTokenFile = "$HOME/.config/ledger/sheets-token.json"

// DefaultLogFile receives logs while the terminal UI owns the screen.
const DefaultLogFile = "$HOME/.local/state/ledger/ledger.log"

// ExpandPath expands a leading ~ and $VAR references in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	switch {
	case path == "~":
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	case strings.HasPrefix(path, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}

	return os.ExpandEnv(path)
}
