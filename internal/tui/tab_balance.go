package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/mealtab/internal/cli"
	"github.com/theirongolddev/mealtab/internal/tui/components"
	"github.com/theirongolddev/mealtab/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderBalanceTab(cw int) string {
	t := theme.Active
	sum := a.summary
	var b strings.Builder

	// Row 1: Metric cards
	cards := []struct{ Label, Value, Caption string }{
		{"Remaining", cli.FormatMoney(sum.RemainingBalance),
			"of " + cli.FormatMoney(sum.StartingBalance)},
		{"Spent", cli.FormatMoney(sum.TotalSpent),
			fmt.Sprintf("%d purchases", len(a.sess.Transactions()))},
		{"Avg / Day", cli.FormatMoney(sum.AverageDailySpend), "since semester start"},
		{"Budget / Day", cli.FormatMoney(sum.RecommendedDailySpend),
			fmt.Sprintf("%d open days left", sum.OpenDaysLeft)},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Balance utilization bar
	used := 0.0
	if sum.StartingBalance > 0 {
		used = sum.TotalSpent / sum.StartingBalance
	}
	innerW := components.CardInnerWidth(cw)
	barW := innerW - 20
	if barW < 10 {
		barW = 10
	}
	b.WriteString(components.ContentCard("Balance Used",
		components.BalanceBar("Spent", used, 8, barW), cw))
	b.WriteString("\n")

	// Row 3: Daily spending chart (last 30 active days)
	if len(a.daily) > 0 {
		daily := a.daily
		if len(daily) > 30 {
			daily = daily[len(daily)-30:]
		}
		vals := make([]float64, len(daily))
		labels := make([]string, len(daily))
		for i, d := range daily {
			vals[i] = d.Amount
			labels[i] = dayLabel(d.Date, i == 0)
		}
		b.WriteString(components.ContentCard("Daily Spending",
			components.BarChart(vals, labels, t.Blue, innerW, 8), cw))
		b.WriteString("\n")
	}

	// Row 4: Projection card
	var proj strings.Builder
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)

	fmt.Fprintf(&proj, "%s %s\n",
		labelStyle.Render("Semester:       "),
		valueStyle.Render(a.sess.Catalog().Semester.Name))
	fmt.Fprintf(&proj, "%s %s\n",
		labelStyle.Render("Open days left: "),
		valueStyle.Render(cli.FormatNumber(int64(sum.OpenDaysLeft))))

	if sum.RunOutDate != "" {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Bold(true)
		fmt.Fprintf(&proj, "%s %s",
			labelStyle.Render("Runs out:       "),
			warnStyle.Render(cli.FormatDate(sum.RunOutDate)))
	} else {
		okStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)
		fmt.Fprintf(&proj, "%s %s",
			labelStyle.Render("Runs out:       "),
			okStyle.Render("not this semester"))
	}

	b.WriteString(components.ContentCard("Projection", proj.String(), cw))

	return b.String()
}

// dayLabel builds a compact chart label: "Jan 5" for the first bar and
// month boundaries, bare day number otherwise.
func dayLabel(date string, first bool) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}
	if first || d.Day() == 1 {
		return d.Format("Jan 2")
	}
	return fmt.Sprintf("%d", d.Day())
}
