package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/theirongolddev/mealtab/internal/cli"
	"github.com/theirongolddev/mealtab/internal/ledger"

	"github.com/spf13/cobra"
)

var (
	flagAddVendor int
	flagAddItem   int
	flagAddQty    int
	flagAddPrice  float64
	flagAddDate   string
	flagAddTime   string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a purchase",
	Long:  "Record a purchase against your account. Price defaults to the item's catalog price.",
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().IntVar(&flagAddVendor, "vendor", 0, "Vendor id (see `mealtab vendors`)")
	addCmd.Flags().IntVar(&flagAddItem, "item", 0, "Item id (see `mealtab items`)")
	addCmd.Flags().IntVar(&flagAddQty, "qty", 1, "Quantity")
	addCmd.Flags().Float64Var(&flagAddPrice, "price", -1, "Unit price override (omit for catalog price)")
	addCmd.Flags().StringVar(&flagAddDate, "on", "", "Purchase date YYYY-MM-DD (default today)")
	addCmd.Flags().StringVar(&flagAddTime, "at", "", "Purchase time HH:MM (default 12:00)")
	_ = addCmd.MarkFlagRequired("vendor")
	_ = addCmd.MarkFlagRequired("item")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, _ []string) error {
	s, st, err := openSession()
	if err != nil {
		return err
	}
	defer st.Close()

	date := flagAddDate
	if date == "" {
		date = s.Today()
	}
	if !ledger.ValidDate(date) {
		return fmt.Errorf("invalid date %q: want YYYY-MM-DD", date)
	}
	if flagAddTime != "" {
		if _, err := time.Parse("15:04", flagAddTime); err != nil {
			return fmt.Errorf("invalid time %q: want HH:MM", flagAddTime)
		}
	}
	if flagAddQty < 1 {
		return errors.New("quantity must be at least 1")
	}

	var price *float64
	if flagAddPrice >= 0 {
		price = &flagAddPrice
	}

	txn, ok := s.AddTransaction(flagAddVendor, date, flagAddTime, flagAddItem, flagAddQty, price)
	if !ok {
		return errors.New("purchase was not recorded")
	}

	cat := s.Catalog()
	total := ledger.TransactionTotal(txn, cat)
	note("Recorded #%d: %dx %s at %s for %s",
		txn.ID, flagAddQty, cat.ItemLabel(flagAddItem), cat.VendorLabel(flagAddVendor), cli.FormatMoney(total))

	sum := s.Summary()
	fmt.Printf("Remaining balance: %s\n", cli.FormatMoney(sum.RemainingBalance))

	return nil
}
