package components

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds the colors the box primitives need. The workspace rebuilds
// it whenever the resolved theme changes.
type Palette struct {
	Border      lipgloss.Color
	Header      lipgloss.Color
	ErrorBorder lipgloss.Color
	ErrorHeader lipgloss.Color
	ErrorBody   lipgloss.Color
}

// DarkPalette matches a dark terminal background.
var DarkPalette = Palette{
	Border:      lipgloss.Color("#273540"),
	Header:      lipgloss.Color("#7f57b4"),
	ErrorBorder: lipgloss.Color("#7a2f3a"),
	ErrorHeader: lipgloss.Color("#e06c75"),
	ErrorBody:   lipgloss.Color("#d6b5b5"),
}

// LightPalette matches a light terminal background.
var LightPalette = Palette{
	Border:      lipgloss.Color("#b9c2cc"),
	Header:      lipgloss.Color("#5a3d8a"),
	ErrorBorder: lipgloss.Color("#c46a78"),
	ErrorHeader: lipgloss.Color("#9e2f3f"),
	ErrorBody:   lipgloss.Color("#6d4a4a"),
}

func boxWidth(width int) int {
	// Use ~70% of terminal width, capped at 100
	if width <= 0 {
		return 0
	}
	w := width * 70 / 100
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func safeBoxWidth(width int) int {
	if width <= 0 {
		return boxWidth(width)
	}
	// Style width is content width; the rounded border adds two columns.
	w := boxWidth(width)
	if w > width-2 {
		w = width - 2
	}
	if w < 0 {
		w = 0
	}
	return w
}

// BoxContentWidth returns the inner content width excluding border and padding.
func BoxContentWidth(width int) int {
	w := safeBoxWidth(width)
	if w <= 0 {
		return 0
	}
	// Border adds 2, padding adds 4 (left+right).
	inner := w - 6
	if inner < 0 {
		return 0
	}
	return inner
}

// ClampTextWidth truncates text to the given visual width (ANSI-aware).
func ClampTextWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	cleaned := SanitizeOneLine(text)
	if lipgloss.Width(cleaned) <= width {
		return cleaned
	}
	return truncateRunes(cleaned, width)
}

// ClampTextWidthEllipsis truncates like ClampTextWidth but marks the cut.
func ClampTextWidthEllipsis(text string, width int) string {
	cleaned := SanitizeOneLine(text)
	if width <= 0 || lipgloss.Width(cleaned) <= width {
		return cleaned
	}
	if width <= 1 {
		return truncateRunes(cleaned, width)
	}
	return truncateRunes(cleaned, width-1) + "…"
}

// Box renders content inside a bordered box.
func (p Palette) Box(content string, width int) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1, 2)
	return style.Width(safeBoxWidth(width)).Render(content)
}

// ErrorBox renders a red bordered box for errors.
func (p Palette) ErrorBox(title, message string, width int) string {
	header := ""
	if title != "" {
		header = lipgloss.NewStyle().Foreground(p.ErrorHeader).Bold(true).Render(title) + "\n\n"
	}
	body := lipgloss.NewStyle().Foreground(p.ErrorBody).Render(message)
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.ErrorBorder).
		Padding(1, 2)
	return style.Width(safeBoxWidth(width)).Render(header + body)
}

// TitledBox renders a box with a header title woven into the top border.
func (p Palette) TitledBox(title, content string, width int) string {
	boxed := p.Box(content, width)
	if title == "" {
		return boxed
	}
	lines := strings.Split(boxed, "\n")
	if len(lines) == 0 {
		return boxed
	}

	lineWidth := lipgloss.Width(lines[0])
	if lineWidth < 4 {
		return boxed
	}

	border := lipgloss.RoundedBorder()
	middleLen := lineWidth - 2
	titleText := fmt.Sprintf(" [ %s ] ", title)
	if lipgloss.Width(titleText) > middleLen {
		titleText = truncateRunes(titleText, middleLen)
	}

	titleWidth := lipgloss.Width(titleText)
	left := (middleLen - titleWidth) / 2
	if left < 0 {
		left = 0
	}
	right := middleLen - titleWidth - left
	if right < 0 {
		right = 0
	}

	borderStyle := lipgloss.NewStyle().Foreground(p.Border)
	headerStyle := lipgloss.NewStyle().Foreground(p.Header).Bold(true)
	leftSeg := borderStyle.Render(border.TopLeft + strings.Repeat(border.Top, left))
	rightSeg := borderStyle.Render(strings.Repeat(border.Top, right) + border.TopRight)
	line := leftSeg + headerStyle.Render(titleText) + rightSeg
	if w := lipgloss.Width(line); w < lineWidth {
		line += borderStyle.Render(strings.Repeat(border.Top, lineWidth-w))
	} else if w > lineWidth {
		line = truncateRunes(line, lineWidth)
	}

	lines[0] = line
	return strings.Join(lines, "\n")
}

func truncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	var b strings.Builder
	b.Grow(max)
	n := 0
	for _, r := range s {
		if n >= max {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

// Indent adds left padding to every line of a multi-line string.
func Indent(s string, spaces int) string {
	pad := strings.Repeat(" ", spaces)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}
