package tui

import (
	"time"

	"github.com/Veraticus/pocket-ledger/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme            themes.Theme
	Now              func() time.Time
	RecordDir        string
	Width            int
	Height           int
	ShowStats        bool
	EnableAnimations bool
	MouseSupport     bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:            themes.Default,
		Now:              time.Now,
		Width:            80,
		Height:           24,
		ShowStats:        true,
		EnableAnimations: true,
		MouseSupport:     false,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithClock sets the clock used for default form dates.
func WithClock(now func() time.Time) Option {
	return func(c *Config) {
		c.Now = now
	}
}

// WithRecording writes every frame and message to dir for debugging.
func WithRecording(dir string) Option {
	return func(c *Config) {
		c.RecordDir = dir
	}
}

// WithFeatures configures UI features.
func WithFeatures(stats, animations, mouse bool) Option {
	return func(c *Config) {
		c.ShowStats = stats
		c.EnableAnimations = animations
		c.MouseSupport = mouse
	}
}
