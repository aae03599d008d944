package cmd

import (
	"fmt"

	"github.com/theirongolddev/mealtab/internal/cli"
	"github.com/theirongolddev/mealtab/internal/ledger"

	"github.com/spf13/cobra"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Spending by day",
	RunE:  runDaily,
}

func init() {
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(_ *cobra.Command, _ []string) error {
	s, st, err := openSession()
	if err != nil {
		return err
	}
	defer st.Close()

	days := ledger.DailySpending(s.Transactions(), s.Catalog())
	if len(days) == 0 {
		fmt.Println("\n  No purchases recorded yet.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("DAILY SPENDING"))
	fmt.Println()

	rows := make([][]string, 0, len(days))
	for _, d := range days {
		rows = append(rows, []string{
			d.Date,
			cli.FormatDayOfWeek(d.Date),
			cli.FormatMoney(d.Amount),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Spent"},
		Rows:    rows,
	}))

	amounts := make([]float64, len(days))
	for i, d := range days {
		amounts[i] = d.Amount
	}
	fmt.Printf("\n  %s\n", cli.RenderSparkline(amounts))

	return nil
}
