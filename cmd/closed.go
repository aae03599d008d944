package cmd

import (
	"fmt"

	"github.com/theirongolddev/mealtab/internal/cli"
	"github.com/theirongolddev/mealtab/internal/ledger"

	"github.com/spf13/cobra"
)

var closedCmd = &cobra.Command{
	Use:   "closed",
	Short: "Manage dining-hall closed days",
	RunE:  runClosedList,
}

var closedAddCmd = &cobra.Command{
	Use:   "add <date>",
	Short: "Mark a date as closed",
	Args:  cobra.ExactArgs(1),
	RunE:  runClosedAdd,
}

var closedRemoveCmd = &cobra.Command{
	Use:   "remove <date>",
	Short: "Reopen a closed date",
	Args:  cobra.ExactArgs(1),
	RunE:  runClosedRemove,
}

func init() {
	closedCmd.AddCommand(closedAddCmd)
	closedCmd.AddCommand(closedRemoveCmd)
	rootCmd.AddCommand(closedCmd)
}

func runClosedList(_ *cobra.Command, _ []string) error {
	s, st, err := openSession()
	if err != nil {
		return err
	}
	defer st.Close()

	days := s.ClosedDays().All()
	if len(days) == 0 {
		fmt.Println("\n  No closed days on record.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("CLOSED DAYS"))
	fmt.Println()

	rows := make([][]string, 0, len(days))
	for _, d := range days {
		rows = append(rows, []string{d, cli.FormatDate(d)})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day"},
		Rows:    rows,
	}))

	return nil
}

func runClosedAdd(_ *cobra.Command, args []string) error {
	s, st, err := openSession()
	if err != nil {
		return err
	}
	defer st.Close()

	date := args[0]
	if !ledger.ValidDate(date) {
		return fmt.Errorf("invalid date %q: want YYYY-MM-DD", date)
	}

	if s.AddClosedDay(date) {
		note("Marked %s closed.", date)
	} else {
		note("%s was already closed.", date)
	}
	return nil
}

func runClosedRemove(_ *cobra.Command, args []string) error {
	s, st, err := openSession()
	if err != nil {
		return err
	}
	defer st.Close()

	date := args[0]
	if s.RemoveClosedDay(date) {
		note("Reopened %s.", date)
	} else {
		note("%s was not closed.", date)
	}
	return nil
}
