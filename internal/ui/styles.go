package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/weidesh/docdeck/internal/prefs"
	"github.com/weidesh/docdeck/internal/ui/components"
)

// Styles is the theme-dependent style set. The app rebuilds it whenever the
// resolved theme changes, so every frame renders with the active palette.
type Styles struct {
	Theme prefs.Theme

	Banner      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Selected    lipgloss.Style
	Normal      lipgloss.Style
	Muted       lipgloss.Style
	Accent      lipgloss.Style
	ErrorText   lipgloss.Style

	Boxes components.Palette
	Hints components.HintPalette
}

// NewStyles builds the style set for a resolved theme.
func NewStyles(theme prefs.Theme) Styles {
	if theme == prefs.ThemeLight {
		return lightStyles()
	}
	return darkStyles()
}

func darkStyles() Styles {
	var (
		primary    = lipgloss.Color("#7f57b4")
		background = lipgloss.Color("#16161d")
		text       = lipgloss.Color("#d7d9da")
		muted      = lipgloss.Color("#9ba0bf")
		accent     = lipgloss.Color("#a7754e")
		errorFG    = lipgloss.Color("#e06c75")
	)
	return Styles{
		Theme:       prefs.ThemeDark,
		Banner:      lipgloss.NewStyle().Foreground(primary).Bold(true),
		TabActive:   lipgloss.NewStyle().Foreground(background).Background(primary).Bold(true).Padding(0, 1),
		TabInactive: lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		Selected:    lipgloss.NewStyle().Foreground(primary).Bold(true),
		Normal:      lipgloss.NewStyle().Foreground(text),
		Muted:       lipgloss.NewStyle().Foreground(muted),
		Accent:      lipgloss.NewStyle().Foreground(accent),
		ErrorText:   lipgloss.NewStyle().Foreground(errorFG).Bold(true),
		Boxes:       components.DarkPalette,
		Hints:       components.DarkHints,
	}
}

func lightStyles() Styles {
	var (
		primary    = lipgloss.Color("#5a3d8a")
		background = lipgloss.Color("#f4f4f6")
		text       = lipgloss.Color("#2b2f36")
		muted      = lipgloss.Color("#5a6170")
		accent     = lipgloss.Color("#8a5a2e")
		errorFG    = lipgloss.Color("#9e2f3f")
	)
	return Styles{
		Theme:       prefs.ThemeLight,
		Banner:      lipgloss.NewStyle().Foreground(primary).Bold(true),
		TabActive:   lipgloss.NewStyle().Foreground(background).Background(primary).Bold(true).Padding(0, 1),
		TabInactive: lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		Selected:    lipgloss.NewStyle().Foreground(primary).Bold(true),
		Normal:      lipgloss.NewStyle().Foreground(text),
		Muted:       lipgloss.NewStyle().Foreground(muted),
		Accent:      lipgloss.NewStyle().Foreground(accent),
		ErrorText:   lipgloss.NewStyle().Foreground(errorFG).Bold(true),
		Boxes:       components.LightPalette,
		Hints:       components.LightHints,
	}
}
