package prefs

import (
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/weidesh/docdeck/internal/catalog"
)

// ThemeMode is the stored theme preference.
type ThemeMode string

const (
	ModeSystem ThemeMode = "system"
	ModeDark   ThemeMode = "dark"
	ModeLight  ThemeMode = "light"
)

// Theme is the concrete dark/light value currently applied.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// SchemeSignal is the environment's live "prefers dark" boolean. Subscribe
// registers a listener and returns its release func; the store only holds a
// subscription while the theme mode is system.
type SchemeSignal interface {
	Dark() bool
	Subscribe(fn func(dark bool)) (release func())
}

type fileFormat struct {
	Language string `yaml:"language"`
	Theme    string `yaml:"theme"`
}

// Store owns the two persisted workspace preferences. Reads happen once at
// Open; every mutation is written through immediately. Persistence is best
// effort: an unreadable or unwritable file degrades to in-memory operation
// for the session and is never surfaced as an error.
type Store struct {
	mu      sync.Mutex
	path    string
	signal  SchemeSignal
	lang    catalog.Language
	mode    ThemeMode
	sysDark bool
	release func()
}

// Path returns the default preference file location.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".docdeck", "config")
}

// Open builds a store from the preference file at path. Absent files and
// unrecognized values fall back to defaults (primary language, system mode).
func Open(path string, signal SchemeSignal) *Store {
	s := &Store{
		path:   path,
		signal: signal,
		lang:   catalog.DefaultLanguage,
		mode:   ModeSystem,
	}
	if data, err := os.ReadFile(path); err == nil {
		var f fileFormat
		if yaml.Unmarshal(data, &f) == nil {
			if l := catalog.Language(f.Language); l.Valid() {
				s.lang = l
			}
			switch m := ThemeMode(f.Theme); m {
			case ModeSystem, ModeDark, ModeLight:
				s.mode = m
			}
		}
	}
	s.sysDark = signal.Dark()
	if s.mode == ModeSystem {
		s.acquire()
	}
	return s
}

// Language returns the active display language.
func (s *Store) Language() catalog.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// SetLanguage switches the display language and persists it.
func (s *Store) SetLanguage(lang catalog.Language) {
	if !lang.Valid() {
		return
	}
	s.mu.Lock()
	s.lang = lang
	s.mu.Unlock()
	s.persist()
}

// ToggleLanguage advances to the next supported language and returns it.
func (s *Store) ToggleLanguage() catalog.Language {
	s.mu.Lock()
	next := s.lang
	for i, l := range catalog.Languages {
		if l == s.lang {
			next = catalog.Languages[(i+1)%len(catalog.Languages)]
			break
		}
	}
	s.lang = next
	s.mu.Unlock()
	s.persist()
	return next
}

// ThemeMode returns the stored theme preference.
func (s *Store) ThemeMode() ThemeMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// SetThemeMode switches the theme mode and persists it. The scheme-signal
// subscription exists only while the mode is system: leaving system releases
// it, entering system re-reads the current signal and re-acquires it.
func (s *Store) SetThemeMode(mode ThemeMode) {
	switch mode {
	case ModeSystem, ModeDark, ModeLight:
	default:
		return
	}
	s.mu.Lock()
	prev := s.mode
	s.mode = mode
	if prev == ModeSystem && mode != ModeSystem {
		s.releaseLocked()
	}
	if prev != ModeSystem && mode == ModeSystem {
		s.sysDark = s.signal.Dark()
		s.acquireLocked()
	}
	s.mu.Unlock()
	s.persist()
}

// CycleThemeMode advances system -> dark -> light -> system and returns the
// new mode.
func (s *Store) CycleThemeMode() ThemeMode {
	var next ThemeMode
	switch s.ThemeMode() {
	case ModeSystem:
		next = ModeDark
	case ModeDark:
		next = ModeLight
	default:
		next = ModeSystem
	}
	s.SetThemeMode(next)
	return next
}

// ResolvedTheme derives the concrete theme: explicit modes win directly,
// system mode tracks the environment signal.
func (s *Store) ResolvedTheme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.mode {
	case ModeDark:
		return ThemeDark
	case ModeLight:
		return ThemeLight
	}
	if s.sysDark {
		return ThemeDark
	}
	return ThemeLight
}

// Close releases the scheme-signal subscription, if held.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.releaseLocked()
}

func (s *Store) acquire() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.acquireLocked()
}

func (s *Store) acquireLocked() {
	if s.release != nil {
		return
	}
	s.release = s.signal.Subscribe(func(dark bool) {
		s.mu.Lock()
		s.sysDark = dark
		s.mu.Unlock()
	})
}

func (s *Store) releaseLocked() {
	if s.release != nil {
		s.release()
		s.release = nil
	}
}

func (s *Store) persist() {
	s.mu.Lock()
	f := fileFormat{Language: string(s.lang), Theme: string(s.mode)}
	path := s.path
	s.mu.Unlock()

	if path == "" {
		return
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return
	}
	// Best effort: a failed write leaves this session in-memory only.
	_ = os.WriteFile(path, data, 0600)
}
