package cmd

import (
	"fmt"

	"github.com/theirongolddev/mealtab/internal/cli"
	"github.com/theirongolddev/mealtab/internal/ledger"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Transaction history",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	s, st, err := openSession()
	if err != nil {
		return err
	}
	defer st.Close()

	txs := s.Transactions()
	if len(txs) == 0 {
		fmt.Println("\n  No purchases recorded yet.")
		return nil
	}

	cat := s.Catalog()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("HISTORY  %s", s.Account().Username)))
	fmt.Println()

	// Most recent first
	rows := make([][]string, 0, len(txs))
	for i := len(txs) - 1; i >= 0; i-- {
		tx := txs[i]
		itemLabel := ""
		qty := 0
		if len(tx.Lines) > 0 {
			itemLabel = cat.ItemLabel(tx.Lines[0].ItemID)
			qty = tx.Lines[0].Quantity
			if len(tx.Lines) > 1 {
				itemLabel = fmt.Sprintf("%s +%d more", itemLabel, len(tx.Lines)-1)
			}
		}
		rows = append(rows, []string{
			fmt.Sprintf("#%d", tx.ID),
			tx.Datetime,
			cat.VendorLabel(tx.VendorID),
			itemLabel,
			cli.FormatNumber(int64(qty)),
			cli.FormatMoney(ledger.TransactionTotal(tx, cat)),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Id", "When", "Vendor", "Item", "Qty", "Total"},
		Rows:    rows,
	}))

	return nil
}
