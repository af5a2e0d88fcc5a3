package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weidesh/docdeck/internal/catalog"
	"github.com/weidesh/docdeck/internal/content"
	"github.com/weidesh/docdeck/internal/prefs"
)

func TestNewAppStartsOnFallbackDocument(t *testing.T) {
	app := testApp(t, nil)
	assert.Equal(t, catalog.FallbackID, app.activeID)
	assert.Equal(t, catalog.CategoryAll, app.category)
	assert.Len(t, app.visible, 10)
	assert.NotNil(t, app.Init())
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		app := testApp(t, nil)
		_, cmd := press(t, app, k)
		require.NotNil(t, cmd, "key %s", k)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestSlashFocusesSearchAndTypingFilters(t *testing.T) {
	app := testApp(t, nil)
	app, cmd := press(t, app, "/")
	assert.True(t, app.search.Focused())
	assert.NotNil(t, cmd)

	// While focused, "q" is input, not quit.
	app = typeRunes(t, app, "bootstrap")
	assert.Equal(t, "bootstrap", app.search.Value())
	require.Len(t, app.visible, 1)
	assert.Equal(t, "getting-started", app.visible[0].ID)

	app, _ = press(t, app, "enter")
	assert.False(t, app.search.Focused())
}

func TestSearchNarrowingReassignsSelection(t *testing.T) {
	app := testApp(t, nil)

	// Select a document the next query will exclude.
	app, _ = press(t, app, "down", "down", "down")
	require.Equal(t, "theming", app.activeID)

	app, _ = press(t, app, "/")
	app = typeRunes(t, app, "token")
	require.Len(t, app.visible, 1)
	assert.Equal(t, "api-tokens", app.visible[0].ID)
	assert.Equal(t, "api-tokens", app.activeID)
}

func TestEmptyVisibleSetKeepsPriorSelection(t *testing.T) {
	app := testApp(t, nil)
	prior := app.activeID

	app, _ = press(t, app, "/")
	app = typeRunes(t, app, "zzz-no-match")
	assert.Empty(t, app.visible)
	assert.Equal(t, prior, app.activeID)

	// Relaxing the query restores the selection without a reload.
	app, _ = press(t, app, "backspace", "backspace", "backspace", "backspace",
		"backspace", "backspace", "backspace", "backspace", "backspace",
		"backspace", "backspace", "backspace")
	assert.Len(t, app.visible, 10)
	assert.Equal(t, prior, app.activeID)
}

func TestCategoryCycling(t *testing.T) {
	app := testApp(t, nil)

	app, _ = press(t, app, "tab")
	assert.Equal(t, catalog.CategorySetup, app.category)
	assert.Len(t, app.visible, 3)

	app, _ = press(t, app, "shift+tab")
	assert.Equal(t, catalog.CategoryAll, app.category)

	app, _ = press(t, app, "shift+tab")
	assert.Equal(t, catalog.CategoryReference, app.category)
}

func TestArrowKeysChangeSelectionAndStartLoad(t *testing.T) {
	app := testApp(t, nil)

	app, cmd := press(t, app, "down")
	assert.Equal(t, "installation", app.activeID)
	assert.NotNil(t, cmd)
	assert.Equal(t, contentLoading, app.status)

	app, _ = press(t, app, "up")
	assert.Equal(t, "getting-started", app.activeID)
}

func TestContentOutcomeApplied(t *testing.T) {
	app := testApp(t, nil)
	require.Equal(t, contentLoading, app.status)

	model, _ := app.Update(contentLoadedMsg{outcome: content.Outcome{
		Path:    app.loadPath,
		Content: "# Getting Started\n\n## Install\n",
	}})
	app = model.(App)

	assert.Equal(t, contentReady, app.status)
	require.Len(t, app.outline, 2)
	assert.Equal(t, "getting-started", app.outline[0].Anchor)
}

func TestStaleOutcomeDiscarded(t *testing.T) {
	app := testApp(t, nil)

	model, _ := app.Update(contentLoadedMsg{outcome: content.Outcome{
		Path:  app.loadPath,
		Stale: true,
	}})
	app = model.(App)
	assert.Equal(t, contentLoading, app.status)
}

func TestOutcomeForSupersededPathDiscarded(t *testing.T) {
	app := testApp(t, nil)

	model, _ := app.Update(contentLoadedMsg{outcome: content.Outcome{
		Path:    "docs/some-older-doc.md",
		Content: "old",
	}})
	app = model.(App)
	assert.Equal(t, contentLoading, app.status)
	assert.Empty(t, app.raw)
}

func TestErrorOutcomeEntersErrorState(t *testing.T) {
	app := testApp(t, nil)

	model, _ := app.Update(contentLoadedMsg{outcome: content.Outcome{
		Path: app.loadPath,
		Err:  assert.AnError,
	}})
	app = model.(App)
	assert.Equal(t, contentError, app.status)
	assert.NotEmpty(t, app.errText)

	// Re-selecting the same document retries rather than showing a cached error.
	app, cmd := press(t, app, "down")
	_ = cmd
	app, _ = press(t, app, "up")
	assert.Equal(t, contentLoading, app.status)
}

func TestReselectingLoadedDocumentUsesCacheWithoutRefetch(t *testing.T) {
	app := testApp(t, nil)

	// Settle the first document straight into the cache.
	thunk := app.loader.Begin(app.loadPath)
	out := thunk()
	require.NoError(t, out.Err)
	model, _ := app.Update(contentLoadedMsg{outcome: out})
	app = model.(App)
	require.Equal(t, contentReady, app.status)

	// Navigate away, then back: the cached document is ready immediately
	// and no fetch command is issued.
	app, _ = press(t, app, "down")
	app, cmd := press(t, app, "up")
	assert.Nil(t, cmd)
	assert.Equal(t, contentReady, app.status)
	assert.Equal(t, "getting-started", app.activeID)
}

func TestCacheHitRetiresInFlightFetch(t *testing.T) {
	app := testApp(t, nil)

	// Cache the first document.
	out := app.loader.Begin(app.loadPath)()
	require.NoError(t, out.Err)
	model, _ := app.Update(contentLoadedMsg{outcome: out})
	app = model.(App)

	// Moving down starts a fetch; moving back up is answered by the cache
	// and must retire that fetch, which then settles stale and uncached.
	app, fetchCmd := press(t, app, "down")
	require.NotNil(t, fetchCmd)
	app, cmd := press(t, app, "up")
	require.Nil(t, cmd)

	msg := fetchCmd().(contentLoadedMsg)
	assert.True(t, msg.outcome.Stale)
	_, ok := app.loader.Cached("docs/installation.md")
	assert.False(t, ok)
}

func TestArrowSelectionScrollsContentToTop(t *testing.T) {
	app := testApp(t, nil)
	app.viewport.YOffset = 7

	app, _ = press(t, app, "down")
	assert.Equal(t, "installation", app.activeID)
	assert.Equal(t, 0, app.viewport.YOffset)
}

func TestThemeKeyCyclesModeAndRestyles(t *testing.T) {
	app := testApp(t, nil)
	require.Equal(t, prefs.ThemeDark, app.styles.Theme)

	app, _ = press(t, app, "t")
	assert.Equal(t, prefs.ModeDark, app.store.ThemeMode())

	app, _ = press(t, app, "t")
	assert.Equal(t, prefs.ModeLight, app.store.ThemeMode())
	assert.Equal(t, prefs.ThemeLight, app.styles.Theme)
	assert.NotEmpty(t, app.notice)
}

func TestLanguageToggleSwitchesCopyAndResolvedPath(t *testing.T) {
	app := testApp(t, nil)

	// Select a document with a French path override.
	app, _ = press(t, app, "down")
	require.Equal(t, "installation", app.activeID)
	require.Equal(t, "docs/installation.md", app.loadPath)

	app, cmd := press(t, app, "L")
	assert.Equal(t, catalog.LangFR, app.store.Language())
	assert.Equal(t, "Filtrer les documents", app.search.Placeholder)
	assert.Equal(t, "docs/fr/installation.md", app.loadPath)
	assert.NotNil(t, cmd)

	// Titles in the sidebar follow the language.
	assert.Equal(t, "Premiers pas", app.visible[0].TitleIn(app.store.Language()))
}

func TestJumpToUnknownDocIsInert(t *testing.T) {
	app := testApp(t, nil)
	before := app.activeID
	cmd := app.jumpToDoc("no-such-doc")
	assert.Nil(t, cmd)
	assert.Equal(t, before, app.activeID)
}

func TestWindowResizeRerendersContent(t *testing.T) {
	app := testApp(t, nil)
	model, _ := app.Update(contentLoadedMsg{outcome: content.Outcome{
		Path:    app.loadPath,
		Content: "# Doc\n",
	}})
	app = model.(App)

	model, _ = app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	app = model.(App)
	assert.Equal(t, 80, app.width)
	assert.Equal(t, app.contentWidth(), app.viewport.Width)
}

func TestClearNoticeMsg(t *testing.T) {
	app := testApp(t, nil)
	app, _ = press(t, app, "t")
	require.NotEmpty(t, app.notice)

	model, _ := app.Update(clearNoticeMsg{})
	app = model.(App)
	assert.Empty(t, app.notice)
}
