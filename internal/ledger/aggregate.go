// Package ledger is the analytics core: pure aggregation and projection
// functions over an account's transaction list and the catalog. Every
// function here is deterministic in its inputs; nothing reads a clock or
// touches storage.
package ledger

import (
	"sort"

	"github.com/theirongolddev/mealtab/internal/catalog"
	"github.com/theirongolddev/mealtab/internal/model"
)

// LineAmount computes the spend for one transaction line. The effective
// unit price resolves in three tiers: explicit line price, then the
// catalog item's default price, then zero. An explicit price of 0 is a
// real price and does not fall through to the default.
func LineAmount(line model.TransactionLine, cat *catalog.Catalog) float64 {
	price := 0.0
	if line.Price != nil {
		price = *line.Price
	} else if item, ok := cat.Item(line.ItemID); ok {
		price = item.DefaultPrice
	}
	return price * float64(line.Quantity)
}

// TransactionTotal sums LineAmount over all lines of a transaction.
func TransactionTotal(tx model.Transaction, cat *catalog.Catalog) float64 {
	var total float64
	for _, line := range tx.Lines {
		total += LineAmount(line, cat)
	}
	return total
}

// TotalSpent sums TransactionTotal over all transactions.
func TotalSpent(txs []model.Transaction, cat *catalog.Catalog) float64 {
	var total float64
	for _, tx := range txs {
		total += TransactionTotal(tx, cat)
	}
	return total
}

// DailySpending groups transaction totals by calendar date. Dates with no
// transactions are omitted; the result is sorted ascending by date.
func DailySpending(txs []model.Transaction, cat *catalog.Catalog) []model.DailySpend {
	byDay := make(map[string]float64)
	for _, tx := range txs {
		byDay[tx.Date()] += TransactionTotal(tx, cat)
	}

	days := make([]model.DailySpend, 0, len(byDay))
	for date, amount := range byDay {
		days = append(days, model.DailySpend{Date: date, Amount: amount})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})
	return days
}

// CategorySpending groups line spend by the item's category. Lines whose
// item is not in the catalog are skipped (they resolve to no category).
// Output order is unspecified.
func CategorySpending(txs []model.Transaction, cat *catalog.Catalog) []model.CategorySpend {
	byCategory := make(map[string]float64)
	for _, tx := range txs {
		for _, line := range tx.Lines {
			item, ok := cat.Item(line.ItemID)
			if !ok {
				continue
			}
			byCategory[item.CategoryID] += LineAmount(line, cat)
		}
	}

	out := make([]model.CategorySpend, 0, len(byCategory))
	for id, amount := range byCategory {
		out = append(out, model.CategorySpend{
			CategoryID: id,
			Label:      cat.CategoryLabel(id),
			Amount:     amount,
		})
	}
	return out
}

// VendorTotals groups transaction totals by vendor. Output order is
// unspecified; unknown vendors keep their id with a fallback label.
func VendorTotals(txs []model.Transaction, cat *catalog.Catalog) []model.VendorTotal {
	byVendor := make(map[int]float64)
	for _, tx := range txs {
		byVendor[tx.VendorID] += TransactionTotal(tx, cat)
	}

	out := make([]model.VendorTotal, 0, len(byVendor))
	for id, amount := range byVendor {
		out = append(out, model.VendorTotal{
			VendorID: id,
			Label:    cat.VendorLabel(id),
			Amount:   amount,
		})
	}
	return out
}

// ItemTotals groups line spend by item. Lines whose item is not in the
// catalog are skipped. Output order is unspecified.
func ItemTotals(txs []model.Transaction, cat *catalog.Catalog) []model.ItemTotal {
	byItem := make(map[int]float64)
	for _, tx := range txs {
		for _, line := range tx.Lines {
			if _, ok := cat.Item(line.ItemID); !ok {
				continue
			}
			byItem[line.ItemID] += LineAmount(line, cat)
		}
	}

	out := make([]model.ItemTotal, 0, len(byItem))
	for id, amount := range byItem {
		out = append(out, model.ItemTotal{
			ItemID: id,
			Label:  cat.ItemLabel(id),
			Amount: amount,
		})
	}
	return out
}

// ItemTrends groups line spend by (item, date), sorted ascending by date
// with stable ties. Lines whose item is not in the catalog are skipped.
func ItemTrends(txs []model.Transaction, cat *catalog.Catalog) []model.ItemTrend {
	type key struct {
		itemID int
		date   string
	}
	byKey := make(map[key]float64)
	order := make([]key, 0)
	for _, tx := range txs {
		for _, line := range tx.Lines {
			if _, ok := cat.Item(line.ItemID); !ok {
				continue
			}
			k := key{itemID: line.ItemID, date: tx.Date()}
			if _, seen := byKey[k]; !seen {
				order = append(order, k)
			}
			byKey[k] += LineAmount(line, cat)
		}
	}

	out := make([]model.ItemTrend, 0, len(order))
	for _, k := range order {
		out = append(out, model.ItemTrend{
			ItemID:   k.itemID,
			ItemName: cat.ItemLabel(k.itemID),
			Date:     k.date,
			Amount:   byKey[k],
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}
