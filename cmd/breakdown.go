package cmd

import (
	"fmt"

	"github.com/theirongolddev/mealtab/internal/cli"
	"github.com/theirongolddev/mealtab/internal/ledger"
	"github.com/theirongolddev/mealtab/internal/model"

	"github.com/spf13/cobra"
)

var vendorsCmd = &cobra.Command{
	Use:   "vendors",
	Short: "Spending by vendor",
	RunE:  runVendors,
}

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Spending by item",
	RunE:  runItems,
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Spending by category",
	RunE:  runCategories,
}

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Item spending over time",
	RunE:  runTrends,
}

func init() {
	rootCmd.AddCommand(vendorsCmd)
	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(trendsCmd)
}

func runVendors(_ *cobra.Command, _ []string) error {
	s, st, err := openSession()
	if err != nil {
		return err
	}
	defer st.Close()

	totals := ledger.VendorTotals(s.Transactions(), s.Catalog())
	if len(totals) == 0 {
		fmt.Println("\n  No purchases recorded yet.")
		return nil
	}
	totals = sortedByAmountDesc(totals, func(v model.VendorTotal) float64 { return v.Amount })

	fmt.Println()
	fmt.Println(cli.RenderTitle("SPENDING BY VENDOR"))
	fmt.Println()

	rows := make([][]string, 0, len(totals))
	for _, v := range totals {
		rows = append(rows, []string{v.Label, cli.FormatMoney(v.Amount)})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Vendor", "Spent"},
		Rows:    rows,
	}))

	return nil
}

func runItems(_ *cobra.Command, _ []string) error {
	s, st, err := openSession()
	if err != nil {
		return err
	}
	defer st.Close()

	totals := ledger.ItemTotals(s.Transactions(), s.Catalog())
	if len(totals) == 0 {
		fmt.Println("\n  No purchases recorded yet.")
		return nil
	}
	totals = sortedByAmountDesc(totals, func(i model.ItemTotal) float64 { return i.Amount })

	fmt.Println()
	fmt.Println(cli.RenderTitle("SPENDING BY ITEM"))
	fmt.Println()

	rows := make([][]string, 0, len(totals))
	for _, it := range totals {
		rows = append(rows, []string{it.Label, cli.FormatMoney(it.Amount)})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Item", "Spent"},
		Rows:    rows,
	}))

	return nil
}

func runCategories(_ *cobra.Command, _ []string) error {
	s, st, err := openSession()
	if err != nil {
		return err
	}
	defer st.Close()

	totals := ledger.CategorySpending(s.Transactions(), s.Catalog())
	if len(totals) == 0 {
		fmt.Println("\n  No purchases recorded yet.")
		return nil
	}
	totals = sortedByAmountDesc(totals, func(c model.CategorySpend) float64 { return c.Amount })

	fmt.Println()
	fmt.Println(cli.RenderTitle("SPENDING BY CATEGORY"))
	fmt.Println()

	rows := make([][]string, 0, len(totals))
	for _, c := range totals {
		rows = append(rows, []string{c.Label, cli.FormatMoney(c.Amount)})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Spent"},
		Rows:    rows,
	}))

	return nil
}

func runTrends(_ *cobra.Command, _ []string) error {
	s, st, err := openSession()
	if err != nil {
		return err
	}
	defer st.Close()

	trends := ledger.ItemTrends(s.Transactions(), s.Catalog())
	if len(trends) == 0 {
		fmt.Println("\n  No purchases recorded yet.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("ITEM TRENDS"))
	fmt.Println()

	rows := make([][]string, 0, len(trends))
	for _, tr := range trends {
		rows = append(rows, []string{tr.Date, tr.ItemName, cli.FormatMoney(tr.Amount)})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Item", "Spent"},
		Rows:    rows,
	}))

	return nil
}
