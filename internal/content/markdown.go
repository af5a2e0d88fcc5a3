package content

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/weidesh/docdeck/internal/prefs"
)

// Render renders raw markdown for the resolved theme, word-wrapped to
// width. Rendering failures fall back to the raw text rather than erroring:
// a document that fetched successfully is always displayable.
func Render(raw string, theme prefs.Theme, width int) string {
	style := styles.DarkStyle
	if theme == prefs.ThemeLight {
		style = styles.LightStyle
	}
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return raw
	}
	out, err := r.Render(raw)
	if err != nil {
		return raw
	}
	return out
}

var (
	slugStrip  = regexp.MustCompile(`[^\w\p{Han}\p{Hiragana}\p{Katakana}\p{Hangul}\s-]`)
	slugSpaces = regexp.MustCompile(`\s+`)
)

// HeadingSlug derives a stable anchor id from heading text: lowercase,
// strip everything that is not a word, CJK, space, or hyphen rune, then
// collapse whitespace runs to single hyphens.
func HeadingSlug(heading string) string {
	s := strings.ToLower(strings.TrimSpace(heading))
	s = slugStrip.ReplaceAllString(s, "")
	return slugSpaces.ReplaceAllString(s, "-")
}

// Heading is one entry of a document outline.
type Heading struct {
	Level  int
	Text   string
	Anchor string
}

var outlineMarkdown = goldmark.New()

// Outline extracts the headings of raw markdown, in document order, with
// anchors derived by HeadingSlug.
func Outline(raw string) []Heading {
	src := []byte(raw)
	doc := outlineMarkdown.Parser().Parse(text.NewReader(src))

	var out []Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		title := headingText(h, src)
		out = append(out, Heading{Level: h.Level, Text: title, Anchor: HeadingSlug(title)})
		return ast.WalkSkipChildren, nil
	})
	return out
}

func headingText(h *ast.Heading, src []byte) string {
	var b strings.Builder
	for c := h.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(src))
			continue
		}
		b.Write(c.Text(src))
	}
	return strings.TrimSpace(b.String())
}
