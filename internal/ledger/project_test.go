package ledger

import (
	"testing"

	"github.com/theirongolddev/mealtab/internal/model"
)

func TestAverageDailySpending(t *testing.T) {
	cat := testCatalog()
	sem := cat.Semester

	t.Run("zero without transactions", func(t *testing.T) {
		got := AverageDailySpending(nil, cat, sem, "2025-09-10")
		if got != 0 {
			t.Fatalf("avg = %.2f, want 0", got)
		}
	})

	t.Run("first day divides by one", func(t *testing.T) {
		txs := []model.Transaction{
			tx(1, 1, sem.StartDate+"T12:00", line(1, 1, price(10.0))),
		}
		got := AverageDailySpending(txs, cat, sem, sem.StartDate)
		if !approxEq(got, 10.0) {
			t.Fatalf("avg = %.2f, want 10.00", got)
		}
	})

	t.Run("divides by elapsed days inclusive", func(t *testing.T) {
		txs := []model.Transaction{
			tx(1, 1, "2025-08-25T12:00", line(1, 1, price(30.0))),
		}
		// Aug 25 through Aug 27 inclusive is 3 days.
		got := AverageDailySpending(txs, cat, sem, "2025-08-27")
		if !approxEq(got, 10.0) {
			t.Fatalf("avg = %.2f, want 10.00", got)
		}
	})
}

func TestOpenFutureDays_Bounds(t *testing.T) {
	cat := testCatalog()
	closed := NewClosedDays([]string{"2025-12-12"})

	open := OpenFutureDays("2025-12-10", cat.Semester, closed)

	want := []string{"2025-12-10", "2025-12-11", "2025-12-13", "2025-12-14"}
	if len(open) != len(want) {
		t.Fatalf("got %d open days %v, want %d", len(open), open, len(want))
	}
	for i := range want {
		if open[i] != want[i] {
			t.Fatalf("open[%d] = %q, want %q", i, open[i], want[i])
		}
	}
	for _, d := range open {
		if closed.Contains(d) {
			t.Fatalf("open days include closed date %q", d)
		}
		if d < "2025-12-10" || d > cat.Semester.EndDate {
			t.Fatalf("open day %q outside [today, semester end]", d)
		}
	}
}

func TestOpenFutureDays_EmptyAfterSemester(t *testing.T) {
	cat := testCatalog()
	open := OpenFutureDays("2025-12-15", cat.Semester, NewClosedDays(nil))
	if len(open) != 0 {
		t.Fatalf("got %d open days past semester end, want 0", len(open))
	}
}

func TestRecommendedDailySpend(t *testing.T) {
	days := []string{"2025-12-13", "2025-12-14"}

	if got := RecommendedDailySpend(50.0, days); !approxEq(got, 25.0) {
		t.Fatalf("recommended = %.2f, want 25.00", got)
	}
	if got := RecommendedDailySpend(0, days); got != 0 {
		t.Fatalf("recommended with zero balance = %.2f, want 0", got)
	}
	if got := RecommendedDailySpend(-12.0, days); got != 0 {
		t.Fatalf("recommended with negative balance = %.2f, want 0", got)
	}
	if got := RecommendedDailySpend(50.0, nil); got != 0 {
		t.Fatalf("recommended with no open days = %.2f, want 0", got)
	}
}

func TestPredictedRunOutDate(t *testing.T) {
	days := []string{"d1", "d2", "d3", "d4", "d5"}

	// 45 -> 35 -> 25 -> 15 -> 5 -> -5 at d5.
	if got := PredictedRunOutDate(45.0, 10.0, days); got != "d5" {
		t.Fatalf("run-out = %q, want d5", got)
	}
	if got := PredictedRunOutDate(10.0, 10.0, days); got != "d1" {
		t.Fatalf("exact exhaustion run-out = %q, want d1", got)
	}
	if got := PredictedRunOutDate(1000.0, 10.0, days); got != "" {
		t.Fatalf("run-out = %q, want no prediction", got)
	}
	if got := PredictedRunOutDate(-5.0, 10.0, days); got != "" {
		t.Fatalf("run-out with negative balance = %q, want no prediction", got)
	}
	if got := PredictedRunOutDate(45.0, 0, days); got != "" {
		t.Fatalf("run-out with zero average = %q, want no prediction", got)
	}
}

func TestSummarize_OneDayRemaining(t *testing.T) {
	cat := testCatalog()
	acct := model.Account{Username: "sam", StartingBalance: 100.0}
	txs := []model.Transaction{
		tx(1, 1, cat.Semester.StartDate+"T12:00", line(1, 1, price(25.0))),
	}

	// One open day left: today is the semester's final day.
	today := cat.Semester.EndDate
	sum := Summarize(acct, txs, cat, NewClosedDays(nil), today)

	if !approxEq(sum.RemainingBalance, 75.0) {
		t.Fatalf("remaining = %.2f, want 75.00", sum.RemainingBalance)
	}
	if sum.OpenDaysLeft != 1 {
		t.Fatalf("open days = %d, want 1", sum.OpenDaysLeft)
	}
	if !approxEq(sum.RecommendedDailySpend, 75.0) {
		t.Fatalf("recommended = %.2f, want 75.00", sum.RecommendedDailySpend)
	}
}

func TestSummarize_OverspentAccount(t *testing.T) {
	cat := testCatalog()
	acct := model.Account{Username: "sam", StartingBalance: 20.0}
	txs := []model.Transaction{
		tx(1, 1, "2025-09-01T12:00", line(1, 1, price(35.0))),
	}

	sum := Summarize(acct, txs, cat, NewClosedDays(nil), "2025-09-02")

	if !approxEq(sum.RemainingBalance, -15.0) {
		t.Fatalf("remaining = %.2f, want -15.00 (negative not clamped)", sum.RemainingBalance)
	}
	if sum.RecommendedDailySpend != 0 {
		t.Fatalf("recommended = %.2f, want 0 when overspent", sum.RecommendedDailySpend)
	}
	if sum.RunOutDate != "" {
		t.Fatalf("run-out = %q, want no prediction when overspent", sum.RunOutDate)
	}
}
