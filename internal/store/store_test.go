package store

import (
	"path/filepath"
	"testing"

	"github.com/theirongolddev/mealtab/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "mealtab.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestAccountRoundTrip(t *testing.T) {
	s := openTestStore(t)

	if _, found, err := s.LoadAccount("sam"); err != nil || found {
		t.Fatalf("LoadAccount on empty store = found=%v err=%v, want absent", found, err)
	}

	if err := s.SaveAccount(model.Account{Username: "Sam", StartingBalance: 250.0}); err != nil {
		t.Fatalf("save account: %v", err)
	}

	// Usernames are case-insensitive keys
	acct, found, err := s.LoadAccount("SAM")
	if err != nil {
		t.Fatalf("load account: %v", err)
	}
	if !found {
		t.Fatal("account not found after save")
	}
	if acct.Username != "sam" || acct.StartingBalance != 250.0 {
		t.Fatalf("account = %+v, want sam/250.00", acct)
	}
}

func TestTransactionRoundTrip(t *testing.T) {
	s := openTestStore(t)

	p := 4.25
	want := []model.Transaction{
		{ID: 1, VendorID: 2, Datetime: "2025-09-01T12:00", Lines: []model.TransactionLine{
			{ItemID: 3, Quantity: 1, Price: nil},
		}},
		{ID: 2, VendorID: 10, Datetime: "2025-09-02T08:15", Lines: []model.TransactionLine{
			{ItemID: 3, Quantity: 2, Price: &p},
			{ItemID: 4, Quantity: 1, Price: nil},
		}},
	}

	for _, txn := range want {
		if err := s.SaveTransaction("sam", txn); err != nil {
			t.Fatalf("save transaction %d: %v", txn.ID, err)
		}
	}

	got, err := s.LoadTransactions("sam")
	if err != nil {
		t.Fatalf("load transactions: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d transactions, want %d", len(got), len(want))
	}
	for i, txn := range got {
		if txn.ID != want[i].ID || txn.VendorID != want[i].VendorID || txn.Datetime != want[i].Datetime {
			t.Fatalf("tx[%d] = %+v, want %+v", i, txn, want[i])
		}
		if len(txn.Lines) != len(want[i].Lines) {
			t.Fatalf("tx[%d] has %d lines, want %d", i, len(txn.Lines), len(want[i].Lines))
		}
	}

	// Explicit price survives; nil price stays nil
	if got[1].Lines[0].Price == nil || *got[1].Lines[0].Price != 4.25 {
		t.Fatalf("explicit price lost: %+v", got[1].Lines[0])
	}
	if got[1].Lines[1].Price != nil {
		t.Fatalf("nil price became %v", *got[1].Lines[1].Price)
	}

	// Other users see nothing
	other, err := s.LoadTransactions("alex")
	if err != nil {
		t.Fatalf("load other user: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("other user has %d transactions, want 0", len(other))
	}
}

func TestClosedDaysSeedOnce(t *testing.T) {
	s := openTestStore(t)

	seed := []string{"2025-11-27", "2025-11-28"}
	if err := s.SeedClosedDays(seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	days, err := s.LoadClosedDays()
	if err != nil {
		t.Fatalf("load closed days: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("got %d closed days, want 2", len(days))
	}

	// A staff deletion must not be resurrected by a second seed
	if err := s.RemoveClosedDay("2025-11-27"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := s.SeedClosedDays(seed); err != nil {
		t.Fatalf("re-seed: %v", err)
	}
	days, err = s.LoadClosedDays()
	if err != nil {
		t.Fatalf("load closed days: %v", err)
	}
	if len(days) != 1 || days[0] != "2025-11-28" {
		t.Fatalf("closed days after re-seed = %v, want [2025-11-28]", days)
	}
}
