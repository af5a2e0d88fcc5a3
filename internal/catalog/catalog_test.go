package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	docs, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, docs)

	seen := map[string]bool{}
	for _, d := range docs {
		assert.False(t, seen[d.ID], "duplicate id %s", d.ID)
		seen[d.ID] = true
		assert.NotEmpty(t, d.Path, "%s has no path", d.ID)
		assert.Contains(t, Categories, d.Category, "%s has unknown category", d.ID)
		for _, lang := range Languages {
			assert.NotEmpty(t, d.Title[lang], "%s missing %s title", d.ID, lang)
			assert.NotEmpty(t, d.Summary[lang], "%s missing %s summary", d.ID, lang)
		}
	}
}

func TestTitleAndSummaryFallBackToDefaultLanguage(t *testing.T) {
	d := Document{
		Title:   map[Language]string{LangEN: "Getting Started"},
		Summary: map[Language]string{LangEN: "First steps"},
	}
	assert.Equal(t, "Getting Started", d.TitleIn(LangFR))
	assert.Equal(t, "First steps", d.SummaryIn(LangFR))
}

func TestResolvePathPrefersLanguageOverride(t *testing.T) {
	d := Document{
		Path:   "guides/install.md",
		PathBy: map[Language]string{LangFR: "guides/install.fr.md"},
	}
	assert.Equal(t, "guides/install.fr.md", d.ResolvePath(LangFR))
	assert.Equal(t, "guides/install.md", d.ResolvePath(LangEN))
}

func TestInitialSelection(t *testing.T) {
	assert.Equal(t, "", InitialSelection(nil))

	docs := []Document{{ID: "alpha"}, {ID: "beta"}}
	assert.Equal(t, "alpha", InitialSelection(docs))

	docs = append(docs, Document{ID: FallbackID})
	assert.Equal(t, FallbackID, InitialSelection(docs))
}

func TestFindByID(t *testing.T) {
	docs := []Document{{ID: "alpha"}, {ID: "beta"}}

	d, ok := FindByID(docs, "beta")
	require.True(t, ok)
	assert.Equal(t, "beta", d.ID)

	_, ok = FindByID(docs, "missing")
	assert.False(t, ok)
}
