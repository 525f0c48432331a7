// Package lipgloss provides theme implementations using the Lipgloss styling library.
package lipgloss

import (
	"fmt"

	"github.com/fwojciec/hjkl"
)

// Compile-time interface verification.
var _ hjkl.Theme = (*Theme)(nil)

// Theme implements hjkl.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles  hjkl.Styles
	palette hjkl.Palette
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() hjkl.Styles {
	return t.styles
}

// Palette returns the semantic color palette for this theme.
func (t *Theme) Palette() hjkl.Palette {
	return t.palette
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// ThemeByName returns the theme for a config value ("dark" or "light").
func ThemeByName(name string) (*Theme, error) {
	switch name {
	case "", "dark":
		return DarkTheme(), nil
	case "light":
		return LightTheme(), nil
	default:
		return nil, fmt.Errorf("unknown theme %q", name)
	}
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
func DarkTheme() *Theme {
	return &Theme{
		styles: hjkl.Styles{
			Text: hjkl.ColorPair{
				Foreground: "#cdd6f4",
			},
			LineNumber: hjkl.ColorPair{
				Foreground: "#6c7086", // Muted gray
			},
			StatusBar: hjkl.ColorPair{
				Foreground: "#a6adc8",
				Background: "#313244", // Dark surface
			},
			StatusKey: hjkl.ColorPair{
				Foreground: "#1e1e2e",
				Background: "#89b4fa", // Blue accent
			},
			SearchMatch: hjkl.ColorPair{
				Foreground: "#1e1e2e",
				Background: "#f9e2af", // Yellow
			},
			Prompt: hjkl.ColorPair{
				Foreground: "#89dceb",
			},
			Error: hjkl.ColorPair{
				Foreground: "#f38ba8", // Red
			},
		},
		palette: hjkl.Palette{
			// Base colors (Catppuccin Mocha)
			Background: "#1e1e2e",
			Foreground: "#cdd6f4",

			Keyword:     "#cba6f7",
			String:      "#a6e3a1",
			Number:      "#fab387",
			Comment:     "#6c7086",
			Operator:    "#89dceb",
			Function:    "#89b4fa",
			Type:        "#f9e2af",
			Constant:    "#fab387",
			Punctuation: "#9399b2",
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		styles: hjkl.Styles{
			Text: hjkl.ColorPair{
				Foreground: "#4c4f69",
			},
			LineNumber: hjkl.ColorPair{
				Foreground: "#9ca0b0",
			},
			StatusBar: hjkl.ColorPair{
				Foreground: "#6c6f85",
				Background: "#e6e9ef", // Light surface
			},
			StatusKey: hjkl.ColorPair{
				Foreground: "#ffffff",
				Background: "#1e66f5",
			},
			SearchMatch: hjkl.ColorPair{
				Foreground: "#4c4f69",
				Background: "#f5e0a3",
			},
			Prompt: hjkl.ColorPair{
				Foreground: "#04a5e5",
			},
			Error: hjkl.ColorPair{
				Foreground: "#d20f39",
			},
		},
		palette: hjkl.Palette{
			// Base colors (Catppuccin Latte)
			Background: "#eff1f5",
			Foreground: "#4c4f69",

			Keyword:     "#8839ef",
			String:      "#40a02b",
			Number:      "#fe640b",
			Comment:     "#9ca0b0",
			Operator:    "#04a5e5",
			Function:    "#1e66f5",
			Type:        "#df8e1d",
			Constant:    "#fe640b",
			Punctuation: "#6c6f85",
		},
	}
}
