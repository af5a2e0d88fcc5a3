package components

import "github.com/charmbracelet/lipgloss"

// HintPalette styles the bottom hint bar for the active theme.
type HintPalette struct {
	Desc   lipgloss.Color
	KeyFG  lipgloss.Color
	KeyBG  lipgloss.Color
	Border lipgloss.Color
}

// DarkHints matches a dark terminal background.
var DarkHints = HintPalette{
	Desc:   lipgloss.Color("#9ba0bf"),
	KeyFG:  lipgloss.Color("#16161d"),
	KeyBG:  lipgloss.Color("#888ba4"),
	Border: lipgloss.Color("#273540"),
}

// LightHints matches a light terminal background.
var LightHints = HintPalette{
	Desc:   lipgloss.Color("#5a6170"),
	KeyFG:  lipgloss.Color("#f4f4f6"),
	KeyBG:  lipgloss.Color("#5a6170"),
	Border: lipgloss.Color("#b9c2cc"),
}

// StatusBar renders the bottom hint bar, wrapping segments to the width.
func (p HintPalette) StatusBar(hints []string, width int) string {
	segmentStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(p.Border).
		Padding(0, 1).
		MarginRight(1)
	barStyle := lipgloss.NewStyle().PaddingLeft(2)

	segments := make([]string, 0, len(hints))
	for _, h := range hints {
		segments = append(segments, segmentStyle.Render(h))
	}
	if width <= 0 {
		content := lipgloss.JoinHorizontal(lipgloss.Top, segments...)
		return barStyle.Render(content)
	}

	rows := wrapSegments(segments, width)
	if len(rows) == 0 {
		return ""
	}
	maxRowWidth := 0
	for _, row := range rows {
		if w := lipgloss.Width(row); w > maxRowWidth {
			maxRowWidth = w
		}
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, lipgloss.NewStyle().Width(maxRowWidth).Align(lipgloss.Center).Render(row))
	}
	block := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return barStyle.Width(width).Align(lipgloss.Center).Render(block)
}

// Hint formats a single keybind hint like "Palette ctrl+k".
func (p HintPalette) Hint(key, desc string) string {
	keyText := lipgloss.NewStyle().
		Foreground(p.KeyFG).
		Background(p.KeyBG).
		Bold(true).
		Padding(0, 1).
		Render(key)
	return lipgloss.NewStyle().Foreground(p.Desc).Render(desc+" ") + keyText
}

func wrapSegments(segments []string, width int) []string {
	if width <= 0 {
		return []string{lipgloss.JoinHorizontal(lipgloss.Top, segments...)}
	}
	rows := make([]string, 0, 2)
	var current []string
	currentWidth := 0
	for _, seg := range segments {
		segWidth := lipgloss.Width(seg)
		if currentWidth > 0 && currentWidth+segWidth > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = []string{seg}
			currentWidth = segWidth
			continue
		}
		current = append(current, seg)
		currentWidth += segWidth
	}
	if len(current) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
	}
	return rows
}
