package ui

import "github.com/weidesh/docdeck/internal/catalog"

// uiCopy holds the localized workspace strings. Document titles and
// summaries come from the catalog; everything else comes from here.
type uiCopy struct {
	appTitle       string
	searchPrompt   string
	loading        string
	errorTitle     string
	errorFallback  string
	openAtSource   string
	noDocuments    string
	noMatches      string
	paletteTitle   string
	categoryAll    string
	linkCopied     string

	actionSearchLabel string
	actionSearchHint  string
	actionTopLabel    string
	actionTopHint     string
	actionThemeLabel  string
	actionThemeHint   string
	actionLangLabel   string
	actionLangHint    string
	actionCopyLabel   string
	actionCopyHint    string
	actionQuitLabel   string
	actionQuitHint    string

	hintPalette string
	hintSearch  string
	hintCat     string
	hintTheme   string
	hintLang    string
	hintSource  string
	hintScroll  string
	hintQuit    string
}

func copyFor(lang catalog.Language) uiCopy {
	if lang == catalog.LangFR {
		return uiCopy{
			appTitle:      "docdeck",
			searchPrompt:  "Filtrer les documents",
			loading:       "Chargement du document...",
			errorTitle:    "Chargement impossible",
			errorFallback: "Le document n'a pas pu être chargé.",
			openAtSource:  "Ouvrir à la source",
			noDocuments:   "Aucun document dans le catalogue.",
			noMatches:     "Aucun résultat.",
			paletteTitle:  "Palette de commandes",
			categoryAll:   "Tout",
			linkCopied:    "Lien copié.",

			actionSearchLabel: "Ouvrir la recherche",
			actionSearchHint:  "Placer le curseur dans le filtre",
			actionTopLabel:    "Revenir en haut",
			actionTopHint:     "Faire défiler le document au début",
			actionThemeLabel:  "Changer de thème",
			actionThemeHint:   "système, sombre, clair",
			actionLangLabel:   "Changer de langue",
			actionLangHint:    "Basculer entre les langues",
			actionCopyLabel:   "Copier le lien source",
			actionCopyHint:    "Copier l'URL du document actif",
			actionQuitLabel:   "Quitter",
			actionQuitHint:    "Fermer l'espace de travail",

			hintPalette: "Palette",
			hintSearch:  "Recherche",
			hintCat:     "Catégorie",
			hintTheme:   "Thème",
			hintLang:    "Langue",
			hintSource:  "Source",
			hintScroll:  "Défiler",
			hintQuit:    "Quitter",
		}
	}
	return uiCopy{
		appTitle:      "docdeck",
		searchPrompt:  "Filter documents",
		loading:       "Loading document...",
		errorTitle:    "Could not load",
		errorFallback: "The document could not be loaded.",
		openAtSource:  "Open at source",
		noDocuments:   "No documents in the catalog.",
		noMatches:     "No matches.",
		paletteTitle:  "Command Palette",
		categoryAll:   "All",
		linkCopied:    "Link copied.",

		actionSearchLabel: "Open search",
		actionSearchHint:  "Focus the filter query",
		actionTopLabel:    "Scroll to top",
		actionTopHint:     "Jump back to the document start",
		actionThemeLabel:  "Cycle theme",
		actionThemeHint:   "system, dark, light",
		actionLangLabel:   "Toggle language",
		actionLangHint:    "Switch the display language",
		actionCopyLabel:   "Copy source link",
		actionCopyHint:    "Copy the active document URL",
		actionQuitLabel:   "Quit",
		actionQuitHint:    "Close the workspace",

		hintPalette: "Palette",
		hintSearch:  "Search",
		hintCat:     "Category",
		hintTheme:   "Theme",
		hintLang:    "Language",
		hintSource:  "Source",
		hintScroll:  "Scroll",
		hintQuit:    "Quit",
	}
}

// categoryLabel localizes the pseudo-category All; real category names are
// part of the catalog's fixed vocabulary and stay as declared.
func (c uiCopy) categoryLabel(cat catalog.Category) string {
	if cat == catalog.CategoryAll {
		return c.categoryAll
	}
	return string(cat)
}
