package cmd

import (
	"fmt"

	"github.com/theirongolddev/mealtab/internal/cli"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Balance summary and projections",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	s, st, err := openSession()
	if err != nil {
		return err
	}
	defer st.Close()

	sum := s.Summary()
	sem := s.Catalog().Semester

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("MEALTAB  %s · %s", s.Account().Username, sem.Name)))
	fmt.Println()

	runOut := "not this semester"
	if sum.RunOutDate != "" {
		runOut = fmt.Sprintf("%s (%s)", sum.RunOutDate, cli.FormatDate(sum.RunOutDate))
	}

	spent := cli.FormatMoney(sum.TotalSpent)
	if sum.StartingBalance > 0 {
		spent = fmt.Sprintf("%s (%s)", spent, cli.FormatPercent(sum.TotalSpent/sum.StartingBalance))
	}

	rows := [][]string{
		{"Starting balance", cli.FormatMoney(sum.StartingBalance)},
		{"Total spent", spent},
		{"Remaining", cli.FormatMoney(sum.RemainingBalance)},
		{"Average spend per day", cli.FormatMoney(sum.AverageDailySpend)},
		{"Recommended per day", cli.FormatMoney(sum.RecommendedDailySpend)},
		{"Open days left", cli.FormatNumber(int64(sum.OpenDaysLeft))},
		{"Projected run-out", runOut},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	return nil
}
