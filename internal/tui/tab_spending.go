package tui

import (
	"strings"

	"github.com/theirongolddev/mealtab/internal/cli"
	"github.com/theirongolddev/mealtab/internal/tui/components"
	"github.com/theirongolddev/mealtab/internal/tui/theme"
)

func (a App) renderSpendingTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	// Row 1: Category split, full width
	innerW := components.CardInnerWidth(cw)
	labelW := innerW / 3
	if labelW > 24 {
		labelW = 24
	}
	barMax := innerW - labelW - 12
	if barMax < 1 {
		barMax = 1
	}

	maxCat := 0.0
	for _, c := range a.categories {
		if c.Amount > maxCat {
			maxCat = c.Amount
		}
	}
	var catBody strings.Builder
	for _, c := range a.categories {
		catBody.WriteString(components.HorizontalBar(
			c.Label, cli.FormatMoney(c.Amount), c.Amount, maxCat, labelW, barMax, t.Accent))
		catBody.WriteString("\n")
	}
	if len(a.categories) == 0 {
		catBody.WriteString("No purchases yet. Press a to add one.")
	}
	b.WriteString(components.ContentCard("By Category", catBody.String(), cw))
	b.WriteString("\n")

	// Row 2: Vendors and items side by side
	halves := components.LayoutRow(cw, 2)
	halfInnerW := components.CardInnerWidth(halves[0])
	halfLabelW := halfInnerW / 2
	if halfLabelW > 20 {
		halfLabelW = 20
	}
	halfBarMax := halfInnerW - halfLabelW - 12
	if halfBarMax < 1 {
		halfBarMax = 1
	}

	maxVendor := 0.0
	for _, v := range a.vendors {
		if v.Amount > maxVendor {
			maxVendor = v.Amount
		}
	}
	var vendorBody strings.Builder
	for i, v := range a.vendors {
		if i >= 8 {
			break
		}
		vendorBody.WriteString(components.HorizontalBar(
			v.Label, cli.FormatMoney(v.Amount), v.Amount, maxVendor, halfLabelW, halfBarMax, t.Blue))
		vendorBody.WriteString("\n")
	}

	maxItem := 0.0
	for _, it := range a.items {
		if it.Amount > maxItem {
			maxItem = it.Amount
		}
	}
	var itemBody strings.Builder
	for i, it := range a.items {
		if i >= 8 {
			break
		}
		itemBody.WriteString(components.HorizontalBar(
			it.Label, cli.FormatMoney(it.Amount), it.Amount, maxItem, halfLabelW, halfBarMax, t.Green))
		itemBody.WriteString("\n")
	}

	vendorCard := components.ContentCard("By Vendor", vendorBody.String(), halves[0])
	itemCard := components.ContentCard("By Item", itemBody.String(), halves[1])
	b.WriteString(components.CardRow([]string{vendorCard, itemCard}))

	return b.String()
}
