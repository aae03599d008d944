package components

import (
	"strings"

	"github.com/theirongolddev/mealtab/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab is one entry in the tab bar.
type Tab struct {
	Name string
	Key  rune
}

// Tabs defines all dashboard tabs in display order.
var Tabs = []Tab{
	{Name: "Balance", Key: 'b'},
	{Name: "Spending", Key: 's'},
	{Name: "History", Key: 'h'},
	{Name: "Staff", Key: 'f'},
	{Name: "Settings", Key: 'x'},
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	parts := make([]string, 0, len(Tabs))
	for i, tab := range Tabs {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(tab.Name))
			continue
		}
		parts = append(parts, inactiveStyle.Render(tab.Name)+
			dimStyle.Render("[")+keyStyle.Render(string(tab.Key))+dimStyle.Render("]"))
	}

	return " " + strings.Join(parts, "  ")
}

// TabIdxByKey returns the tab index for a key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
