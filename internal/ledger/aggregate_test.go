package ledger

import (
	"math"
	"sort"
	"testing"

	"github.com/theirongolddev/mealtab/internal/catalog"
	"github.com/theirongolddev/mealtab/internal/model"
)

func testCatalog() *catalog.Catalog {
	sem := model.Semester{ID: 1, Name: "Fall 2025", StartDate: "2025-08-25", EndDate: "2025-12-14"}
	vendors := []model.Vendor{
		{ID: 1, Name: "Mozzie's"},
		{ID: 2, Name: "Starbucks"},
	}
	categories := []model.Category{
		{ID: "meal", Label: "Meals / Entrees"},
		{ID: "drink", Label: "Drinks"},
	}
	items := []model.Item{
		{ID: 1, Name: "Pizza", CategoryID: "meal", DefaultPrice: 11.5},
		{ID: 2, Name: "Coffee", CategoryID: "drink", DefaultPrice: 5.0},
	}
	return catalog.New(sem, vendors, categories, items)
}

func price(v float64) *float64 {
	return &v
}

func tx(id, vendorID int, datetime string, lines ...model.TransactionLine) model.Transaction {
	return model.Transaction{ID: id, VendorID: vendorID, Datetime: datetime, Lines: lines}
}

func line(itemID, qty int, p *float64) model.TransactionLine {
	return model.TransactionLine{ItemID: itemID, Quantity: qty, Price: p}
}

func approxEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLineAmount_PriceFallback(t *testing.T) {
	cat := testCatalog()

	cases := []struct {
		name string
		line model.TransactionLine
		want float64
	}{
		{"explicit price wins", line(1, 2, price(3.0)), 6.0},
		{"default price when absent", line(1, 2, nil), 23.0},
		{"explicit zero does not fall back", line(1, 3, price(0)), 0},
		{"unknown item without price is zero", line(99, 5, nil), 0},
		{"unknown item with explicit price", line(99, 2, price(4.0)), 8.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := LineAmount(tc.line, cat)
			if !approxEq(got, tc.want) {
				t.Fatalf("LineAmount = %.2f, want %.2f", got, tc.want)
			}
		})
	}
}

func TestGroupingTotalsAgree(t *testing.T) {
	cat := testCatalog()
	txs := []model.Transaction{
		tx(1, 1, "2025-09-01T12:00", line(1, 1, nil), line(2, 2, nil)),
		tx(2, 2, "2025-09-01T15:30", line(2, 1, price(4.25))),
		tx(3, 1, "2025-09-03T12:00", line(1, 2, price(10.0))),
		tx(4, 7, "2025-09-04T12:00", line(99, 1, price(2.5))),
	}

	total := TotalSpent(txs, cat)

	var dailySum float64
	for _, d := range DailySpending(txs, cat) {
		dailySum += d.Amount
	}
	if !approxEq(total, dailySum) {
		t.Fatalf("dailySpending sum = %.2f, totalSpent = %.2f", dailySum, total)
	}

	var vendorSum float64
	for _, v := range VendorTotals(txs, cat) {
		vendorSum += v.Amount
	}
	if !approxEq(total, vendorSum) {
		t.Fatalf("vendorTotals sum = %.2f, totalSpent = %.2f", vendorSum, total)
	}

	// Item and category groupings skip the unknown-item line, so they
	// agree with the total minus that line's contribution.
	var itemSum float64
	for _, it := range ItemTotals(txs, cat) {
		itemSum += it.Amount
	}
	if !approxEq(total-2.5, itemSum) {
		t.Fatalf("itemTotals sum = %.2f, want %.2f", itemSum, total-2.5)
	}

	var categorySum float64
	for _, c := range CategorySpending(txs, cat) {
		categorySum += c.Amount
	}
	if !approxEq(total-2.5, categorySum) {
		t.Fatalf("categorySpending sum = %.2f, want %.2f", categorySum, total-2.5)
	}
}

func TestDailySpending_GroupsAndSorts(t *testing.T) {
	cat := testCatalog()
	txs := []model.Transaction{
		tx(1, 1, "2025-09-02T12:00", line(1, 1, price(20.0))),
		tx(2, 1, "2025-09-01T12:00", line(1, 1, price(10.0))),
		tx(3, 2, "2025-09-01T18:00", line(2, 1, price(5.0))),
	}

	days := DailySpending(txs, cat)
	want := []model.DailySpend{
		{Date: "2025-09-01", Amount: 15.0},
		{Date: "2025-09-02", Amount: 20.0},
	}

	if len(days) != len(want) {
		t.Fatalf("got %d days, want %d", len(days), len(want))
	}
	for i := range want {
		if days[i].Date != want[i].Date || !approxEq(days[i].Amount, want[i].Amount) {
			t.Fatalf("day[%d] = %+v, want %+v", i, days[i], want[i])
		}
	}
}

func TestVendorTotals_LabelFallback(t *testing.T) {
	cat := testCatalog()
	txs := []model.Transaction{
		tx(1, 2, "2025-09-01T12:00", line(2, 1, nil)),
		tx(2, 42, "2025-09-01T12:00", line(2, 1, nil)),
	}

	totals := VendorTotals(txs, cat)
	sort.Slice(totals, func(i, j int) bool { return totals[i].VendorID < totals[j].VendorID })

	if len(totals) != 2 {
		t.Fatalf("got %d vendors, want 2", len(totals))
	}
	if totals[0].Label != "Starbucks" {
		t.Fatalf("known vendor label = %q, want Starbucks", totals[0].Label)
	}
	if totals[1].Label != "Vendor 42" {
		t.Fatalf("unknown vendor label = %q, want \"Vendor 42\"", totals[1].Label)
	}
}

func TestItemGroupings_SkipUnknownItems(t *testing.T) {
	cat := testCatalog()
	txs := []model.Transaction{
		tx(1, 1, "2025-09-01T12:00", line(99, 1, price(2.5))),
	}

	if totals := ItemTotals(txs, cat); len(totals) != 0 {
		t.Fatalf("itemTotals = %+v, want empty", totals)
	}
	if trends := ItemTrends(txs, cat); len(trends) != 0 {
		t.Fatalf("itemTrends = %+v, want empty", trends)
	}

	// The unknown line still counts toward the transaction total.
	if got := TotalSpent(txs, cat); !approxEq(got, 2.5) {
		t.Fatalf("totalSpent = %.2f, want 2.50", got)
	}
}

func TestItemTrends_SortedByDate(t *testing.T) {
	cat := testCatalog()
	txs := []model.Transaction{
		tx(1, 1, "2025-09-05T12:00", line(1, 1, nil)),
		tx(2, 1, "2025-09-01T12:00", line(2, 1, nil)),
		tx(3, 1, "2025-09-03T12:00", line(1, 1, nil), line(2, 1, nil)),
		tx(4, 1, "2025-09-03T18:00", line(1, 1, nil)),
	}

	trends := ItemTrends(txs, cat)
	for i := 1; i < len(trends); i++ {
		if trends[i].Date < trends[i-1].Date {
			t.Fatalf("trends not sorted: %q after %q", trends[i].Date, trends[i-1].Date)
		}
	}

	// Same item on the same date merges into one entry.
	merged := 0
	for _, tr := range trends {
		if tr.ItemID == 1 && tr.Date == "2025-09-03" {
			merged++
			if !approxEq(tr.Amount, 23.0) {
				t.Fatalf("merged trend amount = %.2f, want 23.00", tr.Amount)
			}
		}
	}
	if merged != 1 {
		t.Fatalf("got %d entries for item 1 on 2025-09-03, want 1", merged)
	}
}
