package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/pocket-ledger/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("LEDGER_TEST_DIR", "/tmp/ledger")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "tilde only", in: "~", want: home},
		{name: "tilde prefix", in: "~/data/ledger.db", want: filepath.Join(home, "data/ledger.db")},
		{name: "env var", in: "$LEDGER_TEST_DIR/ledger.db", want: "/tmp/ledger/ledger.db"},
		{name: "absolute", in: "/var/lib/ledger.db", want: "/var/lib/ledger.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		v := viper.New()
		SetDefaults(v)

		cfg, err := Load(v)
		require.NoError(t, err)
		assert.Equal(t, ExpandPath(DefaultDatabasePath), cfg.DatabasePath)
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Equal(t, "console", cfg.Logging.Format)
	})

	t.Run("invalid level", func(t *testing.T) {
		v := viper.New()
		SetDefaults(v)
		v.Set("logging.level", "verbose")

		_, err := Load(v)
		assert.ErrorIs(t, err, common.ErrInvalidConfig)
	})

	t.Run("invalid format", func(t *testing.T) {
		v := viper.New()
		SetDefaults(v)
		v.Set("logging.format", "xml")

		_, err := Load(v)
		assert.ErrorIs(t, err, common.ErrInvalidConfig)
	})
}

func TestLoadSheetsConfig(t *testing.T) {
	t.Setenv("GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH", "")
	t.Setenv("GOOGLE_SHEETS_CLIENT_ID", "env-client")
	t.Setenv("GOOGLE_SHEETS_CLIENT_SECRET", "env-secret")
	t.Setenv("GOOGLE_SHEETS_REFRESH_TOKEN", "env-token")
	t.Setenv("GOOGLE_SHEETS_SPREADSHEET_ID", "")
	t.Setenv("GOOGLE_SHEETS_SPREADSHEET_NAME", "")

	v := viper.New()
	v.Set("sheets.client_id", "viper-client")

	cfg, err := LoadSheetsConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "viper-client", cfg.ClientID)
	assert.Equal(t, "env-secret", cfg.ClientSecret)
	assert.Equal(t, "Ledger Entries", cfg.SpreadsheetName)
}
