// Package lipgloss provides the color themes and styles shared by the
// renderers. Styles are built from an explicit *lipgloss.Renderer so no
// component carries global formatting state.
package lipgloss

import "github.com/charmbracelet/lipgloss"

// Theme names accepted on the command line.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Theme is a named set of colors for rendering JSON trees and diff reports.
type Theme struct {
	Name string

	Key       lipgloss.Color
	String    lipgloss.Color
	Number    lipgloss.Color
	Bool      lipgloss.Color
	Null      lipgloss.Color
	Container lipgloss.Color

	Muted  lipgloss.Color
	Accent lipgloss.Color
	Error  lipgloss.Color

	CursorFg lipgloss.Color
	CursorBg lipgloss.Color
	MatchBg  lipgloss.Color

	Added   lipgloss.Color
	Removed lipgloss.Color
	Changed lipgloss.Color
}

// Dark is the default theme (Catppuccin Mocha palette, matching the web
// renderer).
func Dark() Theme {
	return Theme{
		Name:      ThemeDark,
		Key:       lipgloss.Color("#89b4fa"),
		String:    lipgloss.Color("#a6e3a1"),
		Number:    lipgloss.Color("#fab387"),
		Bool:      lipgloss.Color("#cba6f7"),
		Null:      lipgloss.Color("#6c7086"),
		Container: lipgloss.Color("#f5c2e7"),
		Muted:     lipgloss.Color("#a6adc8"),
		Accent:    lipgloss.Color("#89b4fa"),
		Error:     lipgloss.Color("#f38ba8"),
		CursorFg:  lipgloss.Color("#1e1e2e"),
		CursorBg:  lipgloss.Color("#89b4fa"),
		MatchBg:   lipgloss.Color("#45475a"),
		Added:     lipgloss.Color("#a6e3a1"),
		Removed:   lipgloss.Color("#f38ba8"),
		Changed:   lipgloss.Color("#f9e2af"),
	}
}

// Light is the light-background theme.
func Light() Theme {
	return Theme{
		Name:      ThemeLight,
		Key:       lipgloss.Color("#1e66f5"),
		String:    lipgloss.Color("#40a02b"),
		Number:    lipgloss.Color("#fe640b"),
		Bool:      lipgloss.Color("#8839ef"),
		Null:      lipgloss.Color("#9ca0b0"),
		Container: lipgloss.Color("#ea76cb"),
		Muted:     lipgloss.Color("#6c6f85"),
		Accent:    lipgloss.Color("#1e66f5"),
		Error:     lipgloss.Color("#d20f39"),
		CursorFg:  lipgloss.Color("#eff1f5"),
		CursorBg:  lipgloss.Color("#1e66f5"),
		MatchBg:   lipgloss.Color("#ccd0da"),
		Added:     lipgloss.Color("#40a02b"),
		Removed:   lipgloss.Color("#d20f39"),
		Changed:   lipgloss.Color("#df8e1d"),
	}
}

// ThemeByName resolves a theme name, defaulting to dark.
func ThemeByName(name string) Theme {
	if name == ThemeLight {
		return Light()
	}
	return Dark()
}

// Styles is the rendering context passed to whichever component needs theme
// information.
type Styles struct {
	Key       lipgloss.Style
	String    lipgloss.Style
	Number    lipgloss.Style
	Bool      lipgloss.Style
	Null      lipgloss.Style
	Container lipgloss.Style

	Muted  lipgloss.Style
	Accent lipgloss.Style
	Error  lipgloss.Style

	Cursor lipgloss.Style
	Match  lipgloss.Style

	Added   lipgloss.Style
	Removed lipgloss.Style
	Changed lipgloss.Style
}

// NewStyles builds styles for a theme on the given renderer. If renderer is
// nil, the default renderer is used.
func NewStyles(renderer *lipgloss.Renderer, theme Theme) Styles {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	return Styles{
		Key:       renderer.NewStyle().Foreground(theme.Key).Bold(true),
		String:    renderer.NewStyle().Foreground(theme.String),
		Number:    renderer.NewStyle().Foreground(theme.Number),
		Bool:      renderer.NewStyle().Foreground(theme.Bool),
		Null:      renderer.NewStyle().Foreground(theme.Null).Italic(true),
		Container: renderer.NewStyle().Foreground(theme.Container).Bold(true),
		Muted:     renderer.NewStyle().Foreground(theme.Muted),
		Accent:    renderer.NewStyle().Foreground(theme.Accent),
		Error:     renderer.NewStyle().Foreground(theme.Error),
		Cursor:    renderer.NewStyle().Foreground(theme.CursorFg).Background(theme.CursorBg).Bold(true),
		Match:     renderer.NewStyle().Background(theme.MatchBg),
		Added:     renderer.NewStyle().Foreground(theme.Added),
		Removed:   renderer.NewStyle().Foreground(theme.Removed),
		Changed:   renderer.NewStyle().Foreground(theme.Changed),
	}
}
