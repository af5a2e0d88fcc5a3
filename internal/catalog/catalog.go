package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Language is a supported display language code.
type Language string

const (
	LangEN Language = "en"
	LangFR Language = "fr"
)

// DefaultLanguage is used when a stored preference is absent or unknown.
const DefaultLanguage = LangEN

// Languages lists every supported display language, primary first.
var Languages = []Language{LangEN, LangFR}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	for _, known := range Languages {
		if l == known {
			return true
		}
	}
	return false
}

// Category is one of the fixed catalog categories.
type Category string

const (
	CategoryAll       Category = "All"
	CategorySetup     Category = "Setup"
	CategoryGuides    Category = "Guides"
	CategorySecurity  Category = "Security"
	CategoryReference Category = "Reference"
)

// Categories lists the real categories, excluding the All pseudo-category.
var Categories = []Category{CategorySetup, CategoryGuides, CategorySecurity, CategoryReference}

// FallbackID is the document selected when no prior selection exists.
const FallbackID = "getting-started"

// Document is a single catalog entry. Entries are immutable and compiled in.
type Document struct {
	ID       string              `yaml:"id"`
	Category Category            `yaml:"category"`
	Path     string              `yaml:"path"`
	PathBy   map[Language]string `yaml:"path_overrides"`
	Title    map[Language]string `yaml:"title"`
	Summary  map[Language]string `yaml:"summary"`
	Keywords []string            `yaml:"keywords"`
}

// TitleIn returns the title for lang, falling back to the default language.
func (d Document) TitleIn(lang Language) string {
	if t, ok := d.Title[lang]; ok && t != "" {
		return t
	}
	return d.Title[DefaultLanguage]
}

// SummaryIn returns the summary for lang, falling back to the default language.
func (d Document) SummaryIn(lang Language) string {
	if s, ok := d.Summary[lang]; ok && s != "" {
		return s
	}
	return d.Summary[DefaultLanguage]
}

// ResolvePath returns the content path to fetch for lang. A per-language
// override wins over the default path; a missing override is not an error.
func (d Document) ResolvePath(lang Language) string {
	if p, ok := d.PathBy[lang]; ok && p != "" {
		return p
	}
	return d.Path
}

//go:embed catalog.yaml
var rawCatalog []byte

type catalogFile struct {
	Docs []Document `yaml:"docs"`
}

// Load parses and validates the embedded catalog. Declaration order is
// preserved and authoritative for every downstream consumer.
func Load() ([]Document, error) {
	var file catalogFile
	if err := yaml.Unmarshal(rawCatalog, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	seen := make(map[string]struct{}, len(file.Docs))
	for _, d := range file.Docs {
		if d.ID == "" {
			return nil, fmt.Errorf("catalog entry missing id")
		}
		if _, dup := seen[d.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate id %q", d.ID)
		}
		seen[d.ID] = struct{}{}
		if d.Path == "" {
			return nil, fmt.Errorf("catalog %q: missing path", d.ID)
		}
		if !validCategory(d.Category) {
			return nil, fmt.Errorf("catalog %q: unknown category %q", d.ID, d.Category)
		}
		for _, lang := range Languages {
			if d.Title[lang] == "" {
				return nil, fmt.Errorf("catalog %q: missing %s title", d.ID, lang)
			}
			if d.Summary[lang] == "" {
				return nil, fmt.Errorf("catalog %q: missing %s summary", d.ID, lang)
			}
		}
	}
	return file.Docs, nil
}

// FindByID returns the document with the given id, if present.
func FindByID(docs []Document, id string) (Document, bool) {
	for _, d := range docs {
		if d.ID == id {
			return d, true
		}
	}
	return Document{}, false
}

// InitialSelection picks the starting document: the fixed fallback entry
// when present, otherwise the first entry. Empty catalogs yield "".
func InitialSelection(docs []Document) string {
	if len(docs) == 0 {
		return ""
	}
	if _, ok := FindByID(docs, FallbackID); ok {
		return FallbackID
	}
	return docs[0].ID
}

func validCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
