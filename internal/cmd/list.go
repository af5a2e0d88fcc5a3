package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/weidesh/docdeck/internal/catalog"
	"github.com/weidesh/docdeck/internal/prefs"
)

// ListCmd returns the `docdeck list` command: the catalog filter without
// the TUI, for scripting and quick lookups.
func ListCmd() *cobra.Command {
	var category string
	var query string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog documents",
		RunE: func(_ *cobra.Command, _ []string) error {
			docs, err := catalog.Load()
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
			store := prefs.Open(prefs.Path(), prefs.NewTermSignal())
			defer store.Close()
			lang := store.Language()

			cat := catalog.CategoryAll
			if category != "" {
				cat = catalog.Category(category)
			}
			visible := catalog.Filter(docs, cat, query, lang)
			if len(visible) == 0 {
				fmt.Println("no matching documents")
				return nil
			}
			for _, d := range visible {
				fmt.Printf("  %-24s %-10s %s\n", d.ID, d.Category, d.TitleIn(lang))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "restrict to one category")
	cmd.Flags().StringVarP(&query, "query", "q", "", "filter query")
	return cmd
}
