// Package ui provides terminal presentation helpers for react-cli:
// TTY detection, copy progress and markdown rendering.
package ui

import "os"

// Theme mode values.
const (
	ModeDark  = "dark"
	ModeLight = "light"
)

// ThemeColors is the palette used by progress and markdown output.
type ThemeColors struct {
	Primary   string
	Secondary string
	Success   string
	Error     string
	Muted     string
}

// Theme controls colors for terminal output.
type Theme struct {
	NoColor bool
	Mode    string
	Colors  ThemeColors
}

// ThemeConfig configures NewTheme.
type ThemeConfig struct {
	NoColor bool
	Mode    string
}

// NewTheme returns a Theme for cfg. The NO_COLOR environment variable
// disables colors regardless of cfg.
func NewTheme(cfg ThemeConfig) *Theme {
	mode := cfg.Mode
	if mode != ModeLight {
		mode = ModeDark
	}
	_, noColorEnv := os.LookupEnv("NO_COLOR")
	return &Theme{
		NoColor: cfg.NoColor || noColorEnv,
		Mode:    mode,
		Colors: ThemeColors{
			Primary:   "#61DAFB",
			Secondary: "#2B6CB0",
			Success:   "#10B981",
			Error:     "#EF4444",
			Muted:     "#6B7280",
		},
	}
}
