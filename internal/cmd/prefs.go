package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/weidesh/docdeck/internal/catalog"
	"github.com/weidesh/docdeck/internal/prefs"
)

// PrefsCmd returns the `docdeck prefs` command group.
func PrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Inspect and change workspace preferences",
	}
	cmd.AddCommand(prefsShowCmd())
	cmd.AddCommand(prefsSetCmd())
	return cmd
}

func prefsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the stored preferences",
		RunE: func(_ *cobra.Command, _ []string) error {
			store := prefs.Open(prefs.Path(), prefs.NewTermSignal())
			defer store.Close()

			fmt.Printf("language: %s\n", store.Language())
			fmt.Printf("theme:    %s (resolved: %s)\n", store.ThemeMode(), store.ResolvedTheme())
			fmt.Printf("file:     %s\n", prefs.Path())
			return nil
		},
	}
}

func prefsSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set a preference",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "language <code>",
		Short: "Set the display language",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			lang := catalog.Language(args[0])
			if !lang.Valid() {
				return fmt.Errorf("unsupported language %q (supported: %v)", args[0], catalog.Languages)
			}
			store := prefs.Open(prefs.Path(), prefs.NewTermSignal())
			defer store.Close()

			store.SetLanguage(lang)
			fmt.Printf("language set to %s\n", lang)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "theme <system|dark|light>",
		Short: "Set the theme mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			mode := prefs.ThemeMode(args[0])
			switch mode {
			case prefs.ModeSystem, prefs.ModeDark, prefs.ModeLight:
			default:
				return fmt.Errorf("unsupported theme mode %q", args[0])
			}
			store := prefs.Open(prefs.Path(), prefs.NewTermSignal())
			defer store.Close()

			store.SetThemeMode(mode)
			fmt.Printf("theme set to %s (resolved: %s)\n", mode, store.ResolvedTheme())
			return nil
		},
	})
	return cmd
}
