package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/mealtab/internal/catalog"
	"github.com/theirongolddev/mealtab/internal/ledger"
	"github.com/theirongolddev/mealtab/internal/session"
	"github.com/theirongolddev/mealtab/internal/store"

	"github.com/charmbracelet/huh"
)

// setupValues holds first-run form state.
type setupValues struct {
	username string
	balance  string
}

func newSetupForm(vals *setupValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to mealtab").
				Description("Set up your dining account to start tracking."),
			huh.NewInput().
				Title("Username").
				Placeholder("netid").
				Value(&vals.username).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("username is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Starting balance").
				Placeholder("500.00").
				Value(&vals.balance).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil || v <= 0 {
						return errors.New("enter a positive amount")
					}
					return nil
				}),
		),
	)
}

// createAccount persists the account from validated form values.
func (v setupValues) createAccount(st *store.Store, cat *catalog.Catalog) (*session.Session, error) {
	balance, err := strconv.ParseFloat(strings.TrimSpace(v.balance), 64)
	if err != nil {
		return nil, fmt.Errorf("parse balance: %w", err)
	}
	return session.Create(st, cat, strings.TrimSpace(v.username), balance)
}

// addValues holds add-purchase form state.
type addValues struct {
	vendorID int
	itemID   int
	qty      string
	price    string
	date     string
	time     string
}

func newAddForm(cat *catalog.Catalog, vals *addValues) *huh.Form {
	vendorOpts := make([]huh.Option[int], 0, len(cat.Vendors))
	for _, v := range cat.Vendors {
		vendorOpts = append(vendorOpts, huh.NewOption(v.Name, v.ID))
	}

	itemOpts := make([]huh.Option[int], 0, len(cat.Items))
	for _, it := range cat.Items {
		itemOpts = append(itemOpts, huh.NewOption(
			fmt.Sprintf("%s ($%.2f)", it.Name, it.DefaultPrice), it.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Vendor").
				Options(vendorOpts...).
				Value(&vals.vendorID),
			huh.NewSelect[int]().
				Title("Item").
				Options(itemOpts...).
				Value(&vals.itemID),
			huh.NewInput().
				Title("Quantity").
				Value(&vals.qty).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n < 1 {
						return errors.New("enter a whole number of 1 or more")
					}
					return nil
				}),
			huh.NewInput().
				Title("Price override").
				Placeholder("blank for menu price").
				Value(&vals.price).
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return nil
					}
					v, err := strconv.ParseFloat(s, 64)
					if err != nil || v < 0 {
						return errors.New("enter a price of 0 or more, or leave blank")
					}
					return nil
				}),
			huh.NewInput().
				Title("Date").
				Value(&vals.date).
				Validate(func(s string) error {
					if !ledger.ValidDate(strings.TrimSpace(s)) {
						return errors.New("use YYYY-MM-DD")
					}
					return nil
				}),
			huh.NewInput().
				Title("Time").
				Value(&vals.time).
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return nil
					}
					if _, err := time.Parse("15:04", s); err != nil {
						return errors.New("use HH:MM")
					}
					return nil
				}),
		),
	)
}

// record applies validated form values to the session.
func (v addValues) record(sess *session.Session) {
	qty, err := strconv.Atoi(strings.TrimSpace(v.qty))
	if err != nil {
		return
	}

	var price *float64
	if s := strings.TrimSpace(v.price); s != "" {
		p, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return
		}
		price = &p
	}

	sess.AddTransaction(v.vendorID, strings.TrimSpace(v.date), strings.TrimSpace(v.time), v.itemID, qty, price)
}
