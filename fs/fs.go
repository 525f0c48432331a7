// Package fs provides file system access: document loading, change watching
// and default locations.
package fs

import (
	"os"
	"path/filepath"
)

// DefaultConfigDir returns the directory holding hjkl's config file.
// Uses XDG_CONFIG_HOME if set, otherwise falls back to ~/.config/hjkl,
// or the working directory if home is unavailable.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hjkl")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".hjkl"
	}
	return filepath.Join(home, ".config", "hjkl")
}
