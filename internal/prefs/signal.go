package prefs

import "github.com/charmbracelet/lipgloss"

// TermSignal adapts the terminal background to the SchemeSignal contract.
// Terminals do not broadcast scheme changes, so the value is sampled once at
// startup and Subscribe never fires; the acquire/release pair still runs so
// the store's mode transitions behave identically with any signal source.
type TermSignal struct {
	dark bool
}

// NewTermSignal samples the terminal background.
func NewTermSignal() *TermSignal {
	return &TermSignal{dark: lipgloss.HasDarkBackground()}
}

func (t *TermSignal) Dark() bool { return t.dark }

func (t *TermSignal) Subscribe(func(dark bool)) (release func()) {
	return func() {}
}
