package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weidesh/docdeck/internal/content"
	"github.com/weidesh/docdeck/internal/ui/components"
)

func TestViewShowsLoadingState(t *testing.T) {
	app := testApp(t, nil)
	out := app.View()
	assert.Contains(t, out, "docdeck")
	assert.Contains(t, out, "Loading document...")
	assert.Contains(t, out, "Getting Started")
}

func TestViewShowsRenderedContent(t *testing.T) {
	app := testApp(t, nil)
	model, _ := app.Update(contentLoadedMsg{outcome: content.Outcome{
		Path:    app.loadPath,
		Content: "# Getting Started\n\nWelcome aboard.\n",
	}})
	app = model.(App)

	// Glamour styles each word in its own escape-sequence span, so strip
	// the ANSI codes before looking for the prose.
	plain := components.SanitizeText(app.View())
	assert.Contains(t, plain, "Welcome aboard.")
	assert.NotContains(t, plain, "Loading document...")
}

func TestViewShowsOutlineForReadyDocument(t *testing.T) {
	app := testApp(t, nil)
	model, _ := app.Update(contentLoadedMsg{outcome: content.Outcome{
		Path:    app.loadPath,
		Content: "# Overview\n\n## First Steps\n\n### Too Deep\n",
	}})
	app = model.(App)

	outline := app.renderOutline()
	assert.Contains(t, outline, "Overview")
	assert.Contains(t, outline, "First Steps")
	assert.NotContains(t, outline, "Too Deep")
}

func TestViewShowsErrorWithSourceLink(t *testing.T) {
	app := testApp(t, nil)
	model, _ := app.Update(contentLoadedMsg{outcome: content.Outcome{
		Path: app.loadPath,
		Err:  assert.AnError,
	}})
	app = model.(App)

	out := app.View()
	assert.Contains(t, out, "Could not load")
	assert.Contains(t, out, app.loader.SourceURL(app.loadPath))
}

func TestViewPaletteReplacesContentPane(t *testing.T) {
	app := testApp(t, nil)
	app, _ = press(t, app, "ctrl+k")

	out := app.View()
	assert.Contains(t, out, "Command Palette")
	assert.Contains(t, out, "Open search")
}

func TestViewNoMatchesMessage(t *testing.T) {
	app := testApp(t, nil)
	app, _ = press(t, app, "/")
	app = typeRunes(t, app, "zzz-no-match")

	out := app.View()
	assert.Contains(t, out, "No matches.")
}

func TestViewStatusBarListsCoreHints(t *testing.T) {
	app := testApp(t, nil)
	out := app.View()
	for _, hint := range []string{"ctrl+k", "tab", "q"} {
		assert.Contains(t, out, hint)
	}
}

func TestViewFrenchCopy(t *testing.T) {
	app := testApp(t, nil)
	app, _ = press(t, app, "L")

	out := app.View()
	assert.Contains(t, out, "Premiers pas")
	require.True(t, strings.Contains(out, "Chargement du document...") || strings.Contains(out, "Tout"))
}
