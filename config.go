package hjkl

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all configuration options for the pager.
type Config struct {
	Scroll        ScrollConfig `mapstructure:"scroll"`
	Theme         string       `mapstructure:"theme"`          // "dark" (default) or "light"
	MarkdownStyle string       `mapstructure:"markdown_style"` // "dark", "light" or "auto"
	UI            UIConfig     `mapstructure:"ui"`
	Follow        FollowConfig `mapstructure:"follow"`
	Log           LogConfig    `mapstructure:"log"`
}

// ScrollConfig sets the distance of one h/j/k/l step.
type ScrollConfig struct {
	Horizontal int `mapstructure:"horizontal"` // columns per h/l
	Vertical   int `mapstructure:"vertical"`   // rows per j/k
}

// Step returns the configured distances as a Step.
func (c ScrollConfig) Step() Step {
	return Step{X: c.Horizontal, Y: c.Vertical}
}

// UIConfig holds user interface options.
type UIConfig struct {
	LineNumbers bool `mapstructure:"line_numbers"`
	StatusBar   bool `mapstructure:"status_bar"`
}

// FollowConfig controls reloading the document when its file changes.
type FollowConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Debounce time.Duration `mapstructure:"debounce"`
}

// LogConfig controls the debug log.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the configuration used when no file overrides it.
// Terminal rows are much taller than columns, so vertical steps default to one row.
func DefaultConfig() Config {
	return Config{
		Scroll:        ScrollConfig{Horizontal: DefaultStep, Vertical: 1},
		Theme:         "dark",
		MarkdownStyle: "auto",
		UI:            UIConfig{StatusBar: true},
		Follow:        FollowConfig{Debounce: 100 * time.Millisecond},
		Log:           LogConfig{File: "debug.log", Level: "debug"},
	}
}

// Validate checks option values.
func (c Config) Validate() error {
	if c.Scroll.Horizontal <= 0 {
		return fmt.Errorf("%w: scroll.horizontal must be positive, got %d", ErrInvalidConfig, c.Scroll.Horizontal)
	}
	if c.Scroll.Vertical <= 0 {
		return fmt.Errorf("%w: scroll.vertical must be positive, got %d", ErrInvalidConfig, c.Scroll.Vertical)
	}
	switch c.Theme {
	case "dark", "light":
	default:
		return fmt.Errorf("%w: theme must be dark or light, got %q", ErrInvalidConfig, c.Theme)
	}
	switch c.MarkdownStyle {
	case "dark", "light", "auto":
	default:
		return fmt.Errorf("%w: markdown_style must be dark, light or auto, got %q", ErrInvalidConfig, c.MarkdownStyle)
	}
	if c.Follow.Debounce < 0 {
		return fmt.Errorf("%w: follow.debounce must not be negative", ErrInvalidConfig)
	}
	return nil
}
