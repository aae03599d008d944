// Package components provides reusable TUI widgets for the mealtab dashboard.
package components

import (
	"github.com/theirongolddev/mealtab/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// LayoutRow distributes totalWidth into n widths that sum to exactly
// totalWidth. Earlier items absorb the remainder.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	widths := make([]int, n)
	for i := range widths {
		widths[i] = totalWidth / n
		if i < totalWidth%n {
			widths[i]++
		}
	}
	return widths
}

// MetricCard renders a small card with a label, a prominent value, and
// an optional caption line. outerWidth includes the border.
func MetricCard(label, value, caption string, outerWidth int) string {
	t := theme.Active

	contentWidth := outerWidth - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(contentWidth).
		Padding(0, 1)

	body := lipgloss.NewStyle().Foreground(t.TextMuted).Render(label) + "\n" +
		lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render(value)
	if caption != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(t.TextDim).Render(caption)
	}

	return card.Render(body)
}

// MetricCardRow renders a row of metric cards that together span
// totalWidth exactly.
func MetricCardRow(cards []struct{ Label, Value, Caption string }, totalWidth int) string {
	if len(cards) == 0 {
		return ""
	}

	widths := LayoutRow(totalWidth, len(cards))
	rendered := make([]string, 0, len(cards))
	for i, c := range cards {
		rendered = append(rendered, MetricCard(c.Label, c.Value, c.Caption, widths[i]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// ContentCard renders a bordered card with an optional title line.
func ContentCard(title, body string, outerWidth int) string {
	t := theme.Active

	contentWidth := outerWidth - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(contentWidth).
		Padding(0, 1)

	content := body
	if title != "" {
		content = lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true).Render(title) + "\n" + body
	}

	return card.Render(content)
}

// CardRow joins pre-rendered card strings horizontally.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// CardInnerWidth returns the usable text width inside a ContentCard
// given its outer width (border + padding subtracted).
func CardInnerWidth(outerWidth int) int {
	w := outerWidth - 4
	if w < 10 {
		w = 10
	}
	return w
}
