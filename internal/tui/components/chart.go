package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/mealtab/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var b strings.Builder
	for _, v := range values {
		idx := int(v / peak * float64(len(sparkBlocks)-1))
		if idx >= len(sparkBlocks) {
			idx = len(sparkBlocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(sparkBlocks[idx])
	}

	return style.Render(b.String())
}

// BarChart renders labeled vertical bars scaled to the tallest value.
// Falls back to a sparkline when the area is too small.
func BarChart(values []float64, labels []string, color lipgloss.Color, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	if width < 12 || height < 3 {
		return Sparkline(values, color)
	}

	t := theme.Active

	peak := 0.0
	for _, v := range values {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	// Keep bars at least two cells wide; drop oldest values if they
	// don't fit.
	n := len(values)
	barW := 2
	gap := 1
	maxBars := (width + gap) / (barW + gap)
	if maxBars < 1 {
		maxBars = 1
	}
	if n > maxBars {
		values = values[n-maxBars:]
		if len(labels) == n {
			labels = labels[n-maxBars:]
		}
		n = maxBars
	}
	if n > 0 && width/n > 6 {
		barW = 6
	} else if n > 0 && (width-(n-1)*gap)/n > barW {
		barW = (width - (n-1)*gap) / n
	}

	barStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	fillStyle := lipgloss.NewStyle().Background(t.Surface)
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	for row := height; row >= 1; row-- {
		rowTop := peak * float64(row) / float64(height)
		rowBottom := peak * float64(row-1) / float64(height)
		for i, v := range values {
			if i > 0 {
				b.WriteString(fillStyle.Render(strings.Repeat(" ", gap)))
			}
			switch {
			case v >= rowTop:
				b.WriteString(barStyle.Render(strings.Repeat("█", barW)))
			case v > rowBottom:
				frac := (v - rowBottom) / (rowTop - rowBottom)
				idx := int(frac * float64(len(sparkBlocks)))
				if idx < 0 {
					idx = 0
				}
				if idx >= len(sparkBlocks) {
					idx = len(sparkBlocks) - 1
				}
				b.WriteString(barStyle.Render(strings.Repeat(string(sparkBlocks[idx]), barW)))
			default:
				b.WriteString(fillStyle.Render(strings.Repeat(" ", barW)))
			}
		}
		b.WriteString("\n")
	}

	axisLen := n*barW + (n-1)*gap
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))

	if len(labels) == n {
		b.WriteString("\n")
		b.WriteString(axisStyle.Render(barLabels(labels, barW, gap, axisLen)))
	}

	return b.String()
}

// barLabels lays labels under their bars, skipping any that would
// collide with an earlier one.
func barLabels(labels []string, barW, gap, axisLen int) string {
	buf := make([]byte, axisLen)
	for i := range buf {
		buf[i] = ' '
	}

	lastEnd := -2
	for i, lbl := range labels {
		pos := i * (barW + gap)
		end := pos + len(lbl)
		if pos <= lastEnd || end > axisLen {
			continue
		}
		copy(buf[pos:end], lbl)
		lastEnd = end
	}
	return strings.TrimRight(string(buf), " ")
}

// HorizontalBar renders a label, amount, and proportional bar on one line.
func HorizontalBar(label, amount string, value, maxValue float64, labelW, barMax int, color lipgloss.Color) string {
	t := theme.Active

	barLen := 0
	if maxValue > 0 {
		barLen = int(value / maxValue * float64(barMax))
	}
	if barLen > barMax {
		barLen = barMax
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	amtStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	barStyle := lipgloss.NewStyle().Foreground(color)

	return fmt.Sprintf("%s %s %s",
		nameStyle.Render(fmt.Sprintf("%-*s", labelW, truncate(label, labelW))),
		amtStyle.Render(fmt.Sprintf("%9s", amount)),
		barStyle.Render(strings.Repeat("█", barLen)))
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
