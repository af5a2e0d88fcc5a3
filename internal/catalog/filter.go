package catalog

import "strings"

// Filter returns the subsequence of docs visible under the given category,
// free-text query, and display language. It is pure and order-preserving:
// results keep catalog declaration order and are never ranked. Matching is
// plain case-insensitive substring containment, so it is safe to call on
// every keystroke.
func Filter(docs []Document, category Category, query string, lang Language) []Document {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Document, 0, len(docs))
	for _, d := range docs {
		if category != CategoryAll && d.Category != category {
			continue
		}
		if q != "" && !strings.Contains(d.searchText(lang), q) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// searchText is the haystack for query matching: active-language title,
// titles in every language, active-language summary, the default path,
// and the keywords.
func (d Document) searchText(lang Language) string {
	parts := make([]string, 0, len(Languages)+3+len(d.Keywords))
	parts = append(parts, d.TitleIn(lang))
	for _, l := range Languages {
		parts = append(parts, d.Title[l])
	}
	parts = append(parts, d.SummaryIn(lang), d.Path)
	parts = append(parts, d.Keywords...)
	return strings.ToLower(strings.Join(parts, " "))
}
