package ui

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/weidesh/docdeck/internal/catalog"
	"github.com/weidesh/docdeck/internal/content"
	"github.com/weidesh/docdeck/internal/prefs"
)

// fakeSignal is a fixed scheme signal for tests.
type fakeSignal struct{ dark bool }

func (f *fakeSignal) Dark() bool                       { return f.dark }
func (f *fakeSignal) Subscribe(func(dark bool)) func() { return func() {} }

func testStore(t *testing.T) *prefs.Store {
	t.Helper()
	s := prefs.Open(filepath.Join(t.TempDir(), "config"), &fakeSignal{dark: true})
	t.Cleanup(s.Close)
	return s
}

func testApp(t *testing.T, handler http.HandlerFunc) App {
	t.Helper()
	if handler == nil {
		handler = func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("# Stub\n"))
		}
	}
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	docs, err := catalog.Load()
	require.NoError(t, err)

	loader := content.NewLoader(srv.URL, srv.URL+"/blob", 5*time.Second)
	t.Cleanup(loader.Close)

	app := NewApp(docs, testStore(t), loader)
	model, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return model.(App)
}

func key(k string) tea.KeyMsg {
	switch k {
	case "ctrl+k":
		return tea.KeyMsg{Type: tea.KeyCtrlK}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, app App, keys ...string) (App, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var model tea.Model
		model, cmd = app.Update(key(k))
		app = model.(App)
	}
	return app, cmd
}

func typeRunes(t *testing.T, app App, s string) App {
	t.Helper()
	for _, r := range s {
		model, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		app = model.(App)
	}
	return app
}
