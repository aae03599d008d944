package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/mealtab/internal/cli"
	"github.com/theirongolddev/mealtab/internal/tui/components"
	"github.com/theirongolddev/mealtab/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// staffState tracks the closed-day list cursor and the add-day input.
type staffState struct {
	cursor  int
	editing bool
	input   textinput.Model
	notice  string
}

func newClosedDayInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = 10
	ti.Width = 14
	return ti
}

func (a App) updateStaff(key string) (bool, tea.Model, tea.Cmd) {
	days := a.sess.ClosedDays().All()

	switch key {
	case "j", "down":
		if a.staffState.cursor < len(days)-1 {
			a.staffState.cursor++
		}
		return true, a, nil
	case "k", "up":
		if a.staffState.cursor > 0 {
			a.staffState.cursor--
		}
		return true, a, nil
	case "n":
		a.staffState.editing = true
		a.staffState.notice = ""
		a.staffState.input = newClosedDayInput()
		a.staffState.input.Focus()
		return true, a, a.staffState.input.Cursor.BlinkCmd()
	case "d":
		if a.staffState.cursor < len(days) {
			day := days[a.staffState.cursor]
			if a.sess.RemoveClosedDay(day) {
				a.staffState.notice = "Reopened " + day
				if a.staffState.cursor > 0 {
					a.staffState.cursor--
				}
				a.recompute()
			}
		}
		return true, a, nil
	}
	return false, a, nil
}

func (a App) updateStaffInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		day := strings.TrimSpace(a.staffState.input.Value())
		a.staffState.editing = false
		if a.sess.AddClosedDay(day) {
			a.staffState.notice = "Closed " + day
			a.recompute()
		} else {
			a.staffState.notice = "Not a valid new date: " + day
		}
		return a, nil
	case "esc":
		a.staffState.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.staffState.input, cmd = a.staffState.input.Update(msg)
	return a, cmd
}

func (a App) renderStaffTab(cw int) string {
	t := theme.Active
	days := a.sess.ClosedDays().All()
	var b strings.Builder

	cursorStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	noticeStyle := lipgloss.NewStyle().Foreground(t.Green)

	// Closed-day registry
	var closedBody strings.Builder
	if len(days) == 0 {
		closedBody.WriteString(dimStyle.Render("No closed days on record."))
		closedBody.WriteString("\n")
	}
	for i, day := range days {
		line := fmt.Sprintf("%s  %s", day, cli.FormatDayOfWeek(day))
		if i == a.staffState.cursor && !a.staffState.editing {
			closedBody.WriteString(cursorStyle.Render("▸ "))
			closedBody.WriteString(rowStyle.Bold(true).Render(line))
		} else {
			closedBody.WriteString("  ")
			closedBody.WriteString(rowStyle.Render(line))
		}
		closedBody.WriteString("\n")
	}
	closedBody.WriteString("\n")
	if a.staffState.editing {
		closedBody.WriteString("  Close dining hall on: ")
		closedBody.WriteString(a.staffState.input.View())
		closedBody.WriteString("\n")
		closedBody.WriteString(dimStyle.Render("  Enter to save, Esc to cancel"))
	} else {
		closedBody.WriteString(dimStyle.Render("  n to close a day, d to reopen the selected day"))
	}
	if a.staffState.notice != "" {
		closedBody.WriteString("\n")
		closedBody.WriteString(noticeStyle.Render("  " + a.staffState.notice))
	}
	b.WriteString(components.ContentCard("Closed Days", closedBody.String(), cw))
	b.WriteString("\n")

	// Item trend log, most useful for spotting price drift
	var trendBody strings.Builder
	trends := a.trends
	if len(trends) > 12 {
		trends = trends[len(trends)-12:]
	}
	for _, tr := range trends {
		fmt.Fprintf(&trendBody, "%s  %-26s %s\n",
			tr.Date,
			trimTo(tr.ItemName, 26),
			cli.FormatMoney(tr.Amount))
	}
	if len(trends) == 0 {
		trendBody.WriteString(dimStyle.Render("No item activity yet."))
	}
	b.WriteString(components.ContentCard("Item Trends", trendBody.String(), cw))

	return b.String()
}
