package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/weidesh/docdeck/internal/catalog"
	"github.com/weidesh/docdeck/internal/cmd"
	"github.com/weidesh/docdeck/internal/content"
	"github.com/weidesh/docdeck/internal/prefs"
	"github.com/weidesh/docdeck/internal/ui"
)

func main() {
	root := &cobra.Command{
		Use:   "docdeck",
		Short: "docdeck - terminal documentation workspace",
		Long:  "docdeck: browse, search, and read the documentation catalog from the terminal.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(cmd.PrefsCmd())
	root.AddCommand(cmd.ListCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func runTUI() error {
	docs, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	store := prefs.Open(prefs.Path(), prefs.NewTermSignal())
	defer store.Close()

	loader := content.NewLoader(content.DefaultContentBaseURL, content.DefaultSourceBaseURL)
	defer loader.Close()

	app := ui.NewApp(docs, store, loader)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
