package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/mealtab/internal/catalog"
	"github.com/theirongolddev/mealtab/internal/cli"
	"github.com/theirongolddev/mealtab/internal/ledger"
	"github.com/theirongolddev/mealtab/internal/model"
	"github.com/theirongolddev/mealtab/internal/tui/components"
	"github.com/theirongolddev/mealtab/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// historyState tracks cursor position in the purchase list.
type historyState struct {
	cursor int
	offset int
}

// recentTransactions returns transactions most recent first.
func (a App) recentTransactions() []model.Transaction {
	txs := a.sess.Transactions()
	out := make([]model.Transaction, len(txs))
	for i, tx := range txs {
		out[len(txs)-1-i] = tx
	}
	return out
}

func (a App) updateHistory(key string) (bool, tea.Model, tea.Cmd) {
	n := len(a.sess.Transactions())

	switch key {
	case "j", "down":
		if a.histState.cursor < n-1 {
			a.histState.cursor++
		}
		return true, a, nil
	case "k", "up":
		if a.histState.cursor > 0 {
			a.histState.cursor--
		}
		return true, a, nil
	case "g":
		a.histState.cursor = 0
		a.histState.offset = 0
		return true, a, nil
	case "G":
		a.histState.cursor = n - 1
		if a.histState.cursor < 0 {
			a.histState.cursor = 0
		}
		return true, a, nil
	}
	return false, a, nil
}

func (a App) renderHistoryTab(cw, contentH int) string {
	t := theme.Active
	txs := a.recentTransactions()
	cat := a.sess.Catalog()

	if len(txs) == 0 {
		return components.ContentCard("Purchases", "No purchases yet. Press a to add one.", cw)
	}

	// Visible window follows the cursor.
	visible := contentH - 5
	if visible < 3 {
		visible = 3
	}
	if a.histState.cursor < a.histState.offset {
		a.histState.offset = a.histState.cursor
	}
	if a.histState.cursor >= a.histState.offset+visible {
		a.histState.offset = a.histState.cursor - visible + 1
	}

	cursorStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	amtStyle := lipgloss.NewStyle().Foreground(t.Green)

	var b strings.Builder
	end := a.histState.offset + visible
	if end > len(txs) {
		end = len(txs)
	}
	for i := a.histState.offset; i < end; i++ {
		tx := txs[i]
		total := ledger.TransactionTotal(tx, cat)

		line := fmt.Sprintf("%-16s %-22s %-26s %s",
			tx.Datetime,
			trimTo(cat.VendorLabel(tx.VendorID), 22),
			trimTo(lineSummary(tx, cat), 26),
			amtStyle.Render(fmt.Sprintf("%9s", cli.FormatMoney(total))))

		if i == a.histState.cursor {
			b.WriteString(cursorStyle.Render("▸ "))
			b.WriteString(rowStyle.Bold(true).Render(line))
		} else {
			b.WriteString("  ")
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d of %d purchases · j/k to move",
		a.histState.cursor+1, len(txs))))

	return components.ContentCard("Purchases", b.String(), cw)
}

// lineSummary condenses a transaction's lines into one cell.
func lineSummary(tx model.Transaction, cat *catalog.Catalog) string {
	if len(tx.Lines) == 0 {
		return ""
	}
	first := tx.Lines[0]
	s := cat.ItemLabel(first.ItemID)
	if first.Quantity > 1 {
		s = fmt.Sprintf("%s ×%d", s, first.Quantity)
	}
	if len(tx.Lines) > 1 {
		s = fmt.Sprintf("%s +%d more", s, len(tx.Lines)-1)
	}
	return s
}

func trimTo(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
