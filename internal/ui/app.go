package ui

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/weidesh/docdeck/internal/catalog"
	"github.com/weidesh/docdeck/internal/content"
	"github.com/weidesh/docdeck/internal/prefs"
	"github.com/weidesh/docdeck/internal/ui/components"
)

// The content pane is always in exactly one of these states.
type contentStatus int

const (
	contentLoading contentStatus = iota
	contentReady
	contentError
)

const (
	sidebarWidth      = 34
	listPageSize      = 14
	maxOutlineEntries = 6
)

// --- Messages ---

type contentLoadedMsg struct{ outcome content.Outcome }
type clearNoticeMsg struct{}

// App is the root workspace model: catalog sidebar, content pane, search
// field, command palette, and the global keyboard dispatcher.
type App struct {
	store  *prefs.Store
	loader *content.Loader
	docs   []catalog.Document

	width  int
	height int

	styles Styles
	text   uiCopy

	category catalog.Category
	search   textinput.Model
	visible  []catalog.Document
	list     *components.List

	activeID string
	loadPath string
	status   contentStatus
	raw      string
	errText  string
	outline  []content.Heading
	viewport viewport.Model

	notice  string
	initCmd tea.Cmd

	paletteOpen     bool
	paletteQuery    string
	paletteIndex    int
	paletteFiltered []paletteEntry
}

// NewApp builds the workspace model over a loaded catalog.
func NewApp(docs []catalog.Document, store *prefs.Store, loader *content.Loader) App {
	lang := store.Language()
	text := copyFor(lang)

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = text.searchPrompt
	search.CharLimit = 64
	search.Width = 40

	a := App{
		store:    store,
		loader:   loader,
		docs:     docs,
		styles:   NewStyles(store.ResolvedTheme()),
		text:     text,
		category: catalog.CategoryAll,
		search:   search,
		list:     components.NewList(listPageSize),
		viewport: viewport.New(80, 20),
		status:   contentLoading,
		activeID: catalog.InitialSelection(docs),
	}
	a.refreshVisible()
	if a.activeID != "" {
		a.initCmd = a.startLoad()
	}
	return a
}

func (a App) Init() tea.Cmd {
	return a.initCmd
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.viewport.Width = a.contentWidth()
		a.viewport.Height = a.contentHeight()
		a.renderContent()
		return a, nil

	case contentLoadedMsg:
		return a.applyOutcome(msg.outcome)

	case clearNoticeMsg:
		a.notice = ""
		return a, nil

	case tea.KeyMsg:
		// Global dispatcher: the palette toggle works from any state, and
		// escape only ever closes an open palette.
		if isPaletteToggle(msg) {
			if a.paletteOpen {
				a.closePalette()
			} else {
				a.search.Blur()
				a.openPalette()
			}
			return a, nil
		}
		if a.paletteOpen {
			return a.handlePaletteKeys(msg)
		}
		if isBack(msg) {
			return a, nil
		}

		if a.search.Focused() {
			if isEnter(msg) || isDown(msg) {
				a.search.Blur()
				return a, nil
			}
			var inputCmd tea.Cmd
			a.search, inputCmd = a.search.Update(msg)
			loadCmd := a.refilter()
			return a, tea.Batch(inputCmd, loadCmd)
		}

		switch {
		case isQuit(msg):
			return a, tea.Quit
		case isKey(msg, "/"):
			return a, a.focusSearch()
		case isKey(msg, "tab"):
			a.category = nextCategory(a.category)
			return a, a.refilter()
		case isKey(msg, "shift+tab"):
			a.category = prevCategory(a.category)
			return a, a.refilter()
		case isKey(msg, "t"):
			return a, a.cycleTheme()
		case isKey(msg, "L"):
			return a, a.toggleLanguage()
		case isKey(msg, "o"):
			return a, a.openSource()
		case isKey(msg, "c"):
			return a, a.copySourceLink()
		case isKey(msg, "g"):
			a.viewport.GotoTop()
			return a, nil
		case isUp(msg):
			a.list.Up()
			return a, a.selectCursor()
		case isDown(msg):
			a.list.Down()
			return a, a.selectCursor()
		}
	}

	// Everything else (pgup/pgdn, mouse wheel) scrolls the content pane.
	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	return a, cmd
}

// --- Content loading ---

// startLoad reconciles the loader with the active selection: cache hits
// render immediately, misses cancel any in-flight fetch and start a new one.
func (a *App) startLoad() tea.Cmd {
	doc, ok := catalog.FindByID(a.docs, a.activeID)
	if !ok {
		return nil
	}
	path := doc.ResolvePath(a.store.Language())
	a.loadPath = path
	if raw, cached := a.loader.Cached(path); cached {
		// The cached document supersedes whatever is still being fetched.
		a.loader.CancelInFlight()
		a.raw = raw
		a.errText = ""
		a.status = contentReady
		a.outline = content.Outline(raw)
		a.renderContent()
		return nil
	}
	a.status = contentLoading
	a.raw = ""
	a.errText = ""
	thunk := a.loader.Begin(path)
	return func() tea.Msg {
		return contentLoadedMsg{outcome: thunk()}
	}
}

// applyOutcome applies a settled fetch, discarding anything stale or aimed
// at a path the user has already navigated away from.
func (a App) applyOutcome(out content.Outcome) (tea.Model, tea.Cmd) {
	if out.Stale || out.Path != a.loadPath {
		return a, nil
	}
	if out.Err != nil {
		a.status = contentError
		a.errText = out.Err.Error()
		return a, nil
	}
	a.status = contentReady
	a.raw = out.Content
	a.errText = ""
	a.outline = content.Outline(out.Content)
	a.renderContent()
	return a, nil
}

func (a *App) renderContent() {
	if a.status != contentReady {
		return
	}
	a.viewport.Width = a.contentWidth()
	a.viewport.Height = a.contentHeight()
	a.viewport.SetContent(content.Render(a.raw, a.store.ResolvedTheme(), a.contentWidth()))
}

// --- Filtering and selection ---

// refreshVisible recomputes the visible set and keeps the selection valid,
// without touching the loader.
func (a *App) refreshVisible() {
	lang := a.store.Language()
	a.visible = catalog.Filter(a.docs, a.category, a.search.Value(), lang)
	labels := make([]string, len(a.visible))
	for i, d := range a.visible {
		labels[i] = d.TitleIn(lang)
	}
	a.list.SetItems(labels)
	a.activeID = reconcileSelection(a.visible, a.activeID)
	a.list.SetCursor(visibleIndex(a.visible, a.activeID))
}

// refilter recomputes the visible set and reloads content if the selection
// moved.
func (a *App) refilter() tea.Cmd {
	prev := a.activeID
	a.refreshVisible()
	if a.activeID != prev {
		return a.startLoad()
	}
	return nil
}

// selectCursor makes the sidebar cursor the active selection.
func (a *App) selectCursor() tea.Cmd {
	idx := a.list.Selected()
	if idx < 0 || idx >= len(a.visible) {
		return nil
	}
	id := a.visible[idx].ID
	if id == a.activeID {
		return nil
	}
	a.activeID = id
	a.viewport.GotoTop()
	return a.startLoad()
}

// jumpToDoc selects a document by id and scrolls the content pane to the
// top. Unknown ids leave the prior selection unchanged.
func (a *App) jumpToDoc(id string) tea.Cmd {
	if _, ok := catalog.FindByID(a.docs, id); !ok {
		return nil
	}
	a.activeID = id
	a.list.SetCursor(visibleIndex(a.visible, id))
	a.viewport.GotoTop()
	return a.startLoad()
}

// --- Workspace actions ---

func (a *App) focusSearch() tea.Cmd {
	a.search.Focus()
	return textinput.Blink
}

func (a *App) cycleTheme() tea.Cmd {
	mode := a.store.CycleThemeMode()
	a.styles = NewStyles(a.store.ResolvedTheme())
	a.renderContent()
	return a.setNotice(fmt.Sprintf("%s: %s", a.text.hintTheme, mode))
}

func (a *App) toggleLanguage() tea.Cmd {
	lang := a.store.ToggleLanguage()
	a.text = copyFor(lang)
	a.search.Placeholder = a.text.searchPrompt
	a.refreshVisible()
	// The resolved path may change with the language override.
	return a.startLoad()
}

func (a *App) copySourceLink() tea.Cmd {
	url := a.loader.SourceURL(a.loadPath)
	if err := clipboard.WriteAll(url); err != nil {
		return a.setNotice(url)
	}
	return a.setNotice(a.text.linkCopied)
}

func (a *App) openSource() tea.Cmd {
	url := a.loader.SourceURL(a.loadPath)
	_ = openBrowser(url)
	return a.setNotice(url)
}

func (a *App) setNotice(text string) tea.Cmd {
	a.notice = components.SanitizeOneLine(text)
	return tea.Tick(2500*time.Millisecond, func(time.Time) tea.Msg {
		return clearNoticeMsg{}
	})
}

// --- View ---

func (a App) View() string {
	banner := a.styles.Banner.Render(a.text.appTitle)
	tabs := a.renderTabs()
	searchLine := a.search.View()

	header := banner + "  " + tabs + "\n" + searchLine + "\n"

	var body string
	if a.paletteOpen {
		body = a.renderPalette()
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, a.renderSidebar(), " ", a.renderContentPane())
	}

	bar := a.styles.Hints.StatusBar(a.statusHints(), a.width)

	feedback := ""
	if a.notice != "" {
		feedback = "\n" + a.styles.Muted.Render("  "+a.notice)
	}

	return header + "\n" + body + "\n" + bar + feedback
}

func (a App) renderTabs() string {
	cats := append([]catalog.Category{catalog.CategoryAll}, catalog.Categories...)
	segments := make([]string, 0, len(cats))
	for _, c := range cats {
		label := a.text.categoryLabel(c)
		if c == a.category {
			segments = append(segments, a.styles.TabActive.Render(label))
		} else {
			segments = append(segments, a.styles.TabInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, segments...)
}

func (a App) renderSidebar() string {
	if len(a.visible) == 0 {
		msg := a.text.noMatches
		if len(a.docs) == 0 {
			msg = a.text.noDocuments
		}
		return lipgloss.NewStyle().Width(sidebarWidth).Render(a.styles.Muted.Render(msg))
	}
	var b strings.Builder
	visible := a.list.Visible()
	for i, label := range visible {
		absIdx := a.list.RelToAbs(i)
		label = components.ClampTextWidthEllipsis(label, sidebarWidth-4)
		if a.list.IsSelected(absIdx) {
			b.WriteString(a.styles.Selected.Render("> " + label))
		} else {
			b.WriteString(a.styles.Normal.Render("  " + label))
		}
		if i < len(visible)-1 {
			b.WriteString("\n")
		}
	}
	if section := a.renderOutline(); section != "" {
		b.WriteString("\n\n")
		b.WriteString(section)
	}
	return lipgloss.NewStyle().Width(sidebarWidth).Render(b.String())
}

// renderOutline shows the active document's top headings under the list.
func (a App) renderOutline() string {
	if a.status != contentReady || len(a.outline) == 0 {
		return ""
	}
	var b strings.Builder
	shown := 0
	for _, h := range a.outline {
		if h.Level > 2 {
			continue
		}
		if shown == maxOutlineEntries {
			break
		}
		indent := strings.Repeat("  ", h.Level-1)
		line := components.ClampTextWidthEllipsis(indent+h.Text, sidebarWidth-4)
		b.WriteString(a.styles.Muted.Render("  " + line))
		b.WriteString("\n")
		shown++
	}
	return strings.TrimRight(b.String(), "\n")
}

func (a App) renderContentPane() string {
	switch a.status {
	case contentLoading:
		return a.styles.Muted.Render(a.text.loading)
	case contentError:
		body := components.SanitizeText(a.errText) + "\n\n" +
			a.text.errorFallback + "\n" +
			a.text.openAtSource + ": " + a.loader.SourceURL(a.loadPath)
		return a.styles.Boxes.ErrorBox(a.text.errorTitle, body, a.contentWidth())
	default:
		return a.viewport.View()
	}
}

func (a App) statusHints() []string {
	h := a.styles.Hints
	return []string{
		h.Hint("ctrl+k", a.text.hintPalette),
		h.Hint("/", a.text.hintSearch),
		h.Hint("tab", a.text.hintCat),
		h.Hint("t", a.text.hintTheme),
		h.Hint("L", a.text.hintLang),
		h.Hint("o", a.text.hintSource),
		h.Hint("pgup/pgdn", a.text.hintScroll),
		h.Hint("q", a.text.hintQuit),
	}
}

func (a App) contentWidth() int {
	w := a.width - sidebarWidth - 3
	if w < 20 {
		w = 20
	}
	return w
}

func (a App) contentHeight() int {
	h := a.height - 8
	if h < 5 {
		h = 5
	}
	return h
}

func nextCategory(c catalog.Category) catalog.Category {
	cats := append([]catalog.Category{catalog.CategoryAll}, catalog.Categories...)
	for i, known := range cats {
		if known == c {
			return cats[(i+1)%len(cats)]
		}
	}
	return catalog.CategoryAll
}

func prevCategory(c catalog.Category) catalog.Category {
	cats := append([]catalog.Category{catalog.CategoryAll}, catalog.Categories...)
	for i, known := range cats {
		if known == c {
			return cats[(i+len(cats)-1)%len(cats)]
		}
	}
	return catalog.CategoryAll
}

func openBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
