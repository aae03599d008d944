package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/mealtab/internal/cli"
	"github.com/theirongolddev/mealtab/internal/config"
	"github.com/theirongolddev/mealtab/internal/tui/components"
	"github.com/theirongolddev/mealtab/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// settingsState tracks the theme selection cursor.
type settingsState struct {
	cursor  int
	saveErr error
	saved   bool
}

func (a App) updateSettings(key string) (bool, tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.settings.cursor < len(theme.All)-1 {
			a.settings.cursor++
			a.settings.saved = false
		}
		return true, a, nil
	case "k", "up":
		if a.settings.cursor > 0 {
			a.settings.cursor--
			a.settings.saved = false
		}
		return true, a, nil
	case "enter":
		chosen := theme.All[a.settings.cursor]
		theme.SetActive(chosen.Name)

		cfg, err := config.Load()
		if err != nil {
			cfg = config.DefaultConfig()
		}
		cfg.Appearance.Theme = chosen.Name
		a.settings.saveErr = config.Save(cfg)
		a.settings.saved = a.settings.saveErr == nil
		return true, a, nil
	}
	return false, a, nil
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	cursorStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	// Theme picker
	var themeBody strings.Builder
	for i, th := range theme.All {
		marker := "( )"
		if th.Name == theme.Active.Name {
			marker = "(o)"
		}
		line := fmt.Sprintf("%s %s", marker, th.Name)
		if i == a.settings.cursor {
			themeBody.WriteString(cursorStyle.Render("▸ "))
			themeBody.WriteString(rowStyle.Bold(true).Render(line))
		} else {
			themeBody.WriteString("  ")
			themeBody.WriteString(rowStyle.Render(line))
		}
		themeBody.WriteString("\n")
	}
	themeBody.WriteString("\n")
	themeBody.WriteString(dimStyle.Render("  j/k to select, Enter to apply and save"))
	if a.settings.saved {
		themeBody.WriteString("\n")
		themeBody.WriteString(lipgloss.NewStyle().Foreground(t.Green).Render("  Saved"))
	}
	if a.settings.saveErr != nil {
		themeBody.WriteString("\n")
		themeBody.WriteString(lipgloss.NewStyle().Foreground(t.Orange).Render(
			"  Could not save: " + a.settings.saveErr.Error()))
	}
	b.WriteString(components.ContentCard("Theme", themeBody.String(), cw))
	b.WriteString("\n")

	// Account summary, read-only
	acct := a.sess.Account()
	sem := a.sess.Catalog().Semester
	var acctBody strings.Builder
	fmt.Fprintf(&acctBody, "%s %s\n",
		labelStyle.Render("Username:         "), valueStyle.Render(acct.Username))
	fmt.Fprintf(&acctBody, "%s %s\n",
		labelStyle.Render("Starting balance: "), valueStyle.Render(cli.FormatMoney(acct.StartingBalance)))
	fmt.Fprintf(&acctBody, "%s %s\n",
		labelStyle.Render("Semester:         "), valueStyle.Render(sem.Name))
	fmt.Fprintf(&acctBody, "%s %s",
		labelStyle.Render("Dates:            "),
		valueStyle.Render(sem.StartDate+" to "+sem.EndDate))
	b.WriteString(components.ContentCard("Account", acctBody.String(), cw))

	return b.String()
}
