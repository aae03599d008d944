package session

import (
	"testing"
	"time"

	"github.com/theirongolddev/mealtab/internal/catalog"
	"github.com/theirongolddev/mealtab/internal/model"
)

func fixedClock(t *testing.T, day string) func() time.Time {
	t.Helper()
	tm, err := time.Parse("2006-01-02", day)
	if err != nil {
		t.Fatalf("parse day %q: %v", day, err)
	}
	return func() time.Time { return tm }
}

func newTestSession(t *testing.T, txs []model.Transaction) *Session {
	t.Helper()
	s := New(catalog.Default(), model.Account{Username: "sam", StartingBalance: 100.0}, txs, nil)
	s.SetLogger(nil)
	return s
}

func TestAddTransaction_AssignsMonotonicIDs(t *testing.T) {
	existing := []model.Transaction{
		{ID: 3, VendorID: 1, Datetime: "2025-09-01T12:00"},
		{ID: 7, VendorID: 2, Datetime: "2025-09-02T12:00"},
	}
	s := newTestSession(t, existing)

	txn, ok := s.AddTransaction(1, "2025-09-03", "", 1, 1, nil)
	if !ok {
		t.Fatal("AddTransaction rejected valid input")
	}
	if txn.ID != 8 {
		t.Fatalf("first id = %d, want 8 (max existing + 1)", txn.ID)
	}

	txn2, ok := s.AddTransaction(1, "2025-09-04", "", 1, 1, nil)
	if !ok {
		t.Fatal("AddTransaction rejected valid input")
	}
	if txn2.ID != 9 {
		t.Fatalf("second id = %d, want 9", txn2.ID)
	}
}

func TestAddTransaction_DefaultsTimeToNoon(t *testing.T) {
	s := newTestSession(t, nil)

	txn, ok := s.AddTransaction(1, "2025-09-03", "", 1, 1, nil)
	if !ok {
		t.Fatal("AddTransaction rejected valid input")
	}
	if txn.Datetime != "2025-09-03T12:00" {
		t.Fatalf("datetime = %q, want noon default", txn.Datetime)
	}

	txn, ok = s.AddTransaction(1, "2025-09-03", "08:45", 1, 1, nil)
	if !ok {
		t.Fatal("AddTransaction rejected valid input")
	}
	if txn.Datetime != "2025-09-03T08:45" {
		t.Fatalf("datetime = %q, want explicit time kept", txn.Datetime)
	}
}

func TestAddTransaction_MalformedInputIsNoOp(t *testing.T) {
	s := newTestSession(t, nil)

	cases := []struct {
		name      string
		date      string
		timeOfDay string
		qty       int
	}{
		{"bad date", "09/03/2025", "", 1},
		{"empty date", "", "", 1},
		{"zero quantity", "2025-09-03", "", 0},
		{"negative quantity", "2025-09-03", "", -2},
		{"bad time", "2025-09-03", "99:99", 1},
		{"non-numeric time", "2025-09-03", "noon", 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := s.AddTransaction(1, tc.date, tc.timeOfDay, 1, tc.qty, nil); ok {
				t.Fatal("AddTransaction accepted malformed input")
			}
		})
	}
	if len(s.Transactions()) != 0 {
		t.Fatalf("transaction list grew to %d after rejected adds", len(s.Transactions()))
	}
}

func TestTransactions_ReturnsCopy(t *testing.T) {
	s := newTestSession(t, nil)
	if _, ok := s.AddTransaction(1, "2025-09-03", "", 1, 1, nil); !ok {
		t.Fatal("AddTransaction rejected valid input")
	}

	got := s.Transactions()
	got[0].VendorID = 42

	fresh := s.Transactions()
	if fresh[0].VendorID != 1 {
		t.Fatalf("session vendor id = %d after caller mutation, want 1", fresh[0].VendorID)
	}
}

func TestClosedDayMutationsThroughSession(t *testing.T) {
	s := newTestSession(t, nil)

	if !s.AddClosedDay("2025-10-01") {
		t.Fatal("adding a new closed day reported no change")
	}
	if s.AddClosedDay("2025-10-01") {
		t.Fatal("re-adding a closed day reported a change")
	}
	if s.AddClosedDay("") {
		t.Fatal("empty date accepted")
	}
	if s.RemoveClosedDay("2025-10-02") {
		t.Fatal("removing an absent day reported a change")
	}
	if !s.RemoveClosedDay("2025-10-01") {
		t.Fatal("removing a present day reported no change")
	}
}

func TestSummary_UsesInjectedClock(t *testing.T) {
	s := newTestSession(t, nil)
	s.SetClock(fixedClock(t, "2025-12-14"))

	p := 25.0
	if _, ok := s.AddTransaction(1, "2025-12-14", "", 1, 1, &p); !ok {
		t.Fatal("AddTransaction rejected valid input")
	}

	sum := s.Summary()
	if sum.RemainingBalance != 75.0 {
		t.Fatalf("remaining = %.2f, want 75.00", sum.RemainingBalance)
	}
	if sum.OpenDaysLeft != 1 {
		t.Fatalf("open days on the last semester day = %d, want 1", sum.OpenDaysLeft)
	}
	if sum.RecommendedDailySpend != 75.0 {
		t.Fatalf("recommended = %.2f, want 75.00", sum.RecommendedDailySpend)
	}
}
