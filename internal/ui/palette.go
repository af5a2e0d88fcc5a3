package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/weidesh/docdeck/internal/ui/components"
)

// maxPaletteDocs caps the dynamic document entries offered by the palette.
const maxPaletteDocs = 10

// paletteEntry is one actionable palette item: a static workspace command
// or a shortcut to a currently visible document. The action is an opaque
// invokable run exactly once on invocation.
type paletteEntry struct {
	id     string
	label  string
	hint   string
	action func(a *App) tea.Cmd
}

// paletteEntries rebuilds the flat entry sequence on demand: static actions
// in registration order, then one entry per visible document in catalog
// order, capped at maxPaletteDocs. The dynamic entries track the active
// filter, not the full catalog.
func (a *App) paletteEntries() []paletteEntry {
	lang := a.store.Language()
	entries := []paletteEntry{
		{
			id:    "workspace:search",
			label: a.text.actionSearchLabel,
			hint:  a.text.actionSearchHint,
			action: func(app *App) tea.Cmd {
				return app.focusSearch()
			},
		},
		{
			id:    "workspace:top",
			label: a.text.actionTopLabel,
			hint:  a.text.actionTopHint,
			action: func(app *App) tea.Cmd {
				app.viewport.GotoTop()
				return nil
			},
		},
		{
			id:    "theme:cycle",
			label: a.text.actionThemeLabel,
			hint:  a.text.actionThemeHint,
			action: func(app *App) tea.Cmd {
				return app.cycleTheme()
			},
		},
		{
			id:    "lang:toggle",
			label: a.text.actionLangLabel,
			hint:  a.text.actionLangHint,
			action: func(app *App) tea.Cmd {
				return app.toggleLanguage()
			},
		},
		{
			id:    "source:copy",
			label: a.text.actionCopyLabel,
			hint:  a.text.actionCopyHint,
			action: func(app *App) tea.Cmd {
				return app.copySourceLink()
			},
		},
		{
			id:    "workspace:quit",
			label: a.text.actionQuitLabel,
			hint:  a.text.actionQuitHint,
			action: func(app *App) tea.Cmd {
				return tea.Quit
			},
		},
	}

	for i, d := range a.visible {
		if i == maxPaletteDocs {
			break
		}
		doc := d
		entries = append(entries, paletteEntry{
			id:    "doc:" + doc.ID,
			label: doc.TitleIn(lang),
			hint:  doc.SummaryIn(lang),
			action: func(app *App) tea.Cmd {
				return app.jumpToDoc(doc.ID)
			},
		})
	}
	return entries
}

// filterPaletteEntries matches the query against label + " " + hint,
// case-insensitive substring, keeping registration order. An empty query
// returns everything.
func filterPaletteEntries(entries []paletteEntry, query string) []paletteEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return entries
	}
	filtered := make([]paletteEntry, 0, len(entries))
	for _, e := range entries {
		haystack := strings.ToLower(e.label + " " + e.hint)
		if strings.Contains(haystack, q) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// openPalette resets the query so the palette never opens with leftover
// text, then shows the full entry set.
func (a *App) openPalette() {
	a.paletteOpen = true
	a.paletteQuery = ""
	a.paletteIndex = 0
	a.paletteFiltered = a.paletteEntries()
}

// closePalette clears the query on every exit path.
func (a *App) closePalette() {
	a.paletteOpen = false
	a.paletteQuery = ""
	a.paletteIndex = 0
	a.paletteFiltered = nil
}

func (a *App) refreshPaletteFiltered() {
	a.paletteFiltered = filterPaletteEntries(a.paletteEntries(), a.paletteQuery)
	if a.paletteIndex >= len(a.paletteFiltered) {
		a.paletteIndex = 0
	}
}

func (a App) handlePaletteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isBack(msg):
		a.closePalette()
		return a, nil
	case isEnter(msg):
		if len(a.paletteFiltered) == 0 {
			return a, nil
		}
		entry := a.paletteFiltered[a.paletteIndex]
		a.closePalette()
		return a, entry.action(&a)
	case isUp(msg):
		if a.paletteIndex > 0 {
			a.paletteIndex--
		}
	case isDown(msg):
		if a.paletteIndex < len(a.paletteFiltered)-1 {
			a.paletteIndex++
		}
	case isKey(msg, "backspace"):
		if a.paletteQuery != "" {
			runes := []rune(a.paletteQuery)
			a.paletteQuery = string(runes[:len(runes)-1])
			a.refreshPaletteFiltered()
		}
	default:
		switch msg.Type {
		case tea.KeyRunes:
			a.paletteQuery += string(msg.Runes)
			a.refreshPaletteFiltered()
		case tea.KeySpace:
			a.paletteQuery += " "
			a.refreshPaletteFiltered()
		}
	}
	return a, nil
}

func (a App) renderPalette() string {
	var b strings.Builder
	b.WriteString("  > " + components.SanitizeOneLine(a.paletteQuery))
	b.WriteString(a.styles.Accent.Render("█"))
	b.WriteString("\n\n")

	if len(a.paletteFiltered) == 0 {
		b.WriteString(a.styles.Muted.Render(a.text.noMatches))
	} else {
		for i, entry := range a.paletteFiltered {
			label := components.SanitizeOneLine(entry.label)
			hint := components.SanitizeOneLine(entry.hint)
			line := fmt.Sprintf("%s  %s", label, a.styles.Muted.Render(hint))
			if i == a.paletteIndex {
				b.WriteString(a.styles.Selected.Render("  > " + line))
			} else {
				b.WriteString(a.styles.Normal.Render("    " + line))
			}
			if i < len(a.paletteFiltered)-1 {
				b.WriteString("\n")
			}
		}
	}

	return a.styles.Boxes.TitledBox(a.text.paletteTitle, b.String(), a.width)
}
