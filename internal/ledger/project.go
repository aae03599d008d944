package ledger

import (
	"github.com/theirongolddev/mealtab/internal/catalog"
	"github.com/theirongolddev/mealtab/internal/model"
)

// RemainingBalance subtracts total spend from the starting balance.
// May go negative; overspending is representable, not clamped.
func RemainingBalance(startingBalance float64, txs []model.Transaction, cat *catalog.Catalog) float64 {
	return startingBalance - TotalSpent(txs, cat)
}

// AverageDailySpending divides total spend by the number of calendar days
// from semester start through today inclusive (floored at 1). Zero when
// there are no transactions. today is an ISO date supplied by the caller's
// clock; the engine never reads one itself.
func AverageDailySpending(txs []model.Transaction, cat *catalog.Catalog, sem model.Semester, today string) float64 {
	if len(txs) == 0 {
		return 0
	}
	diffDays := daysBetween(sem.StartDate, today) + 1
	if diffDays < 1 {
		diffDays = 1
	}
	return TotalSpent(txs, cat) / float64(diffDays)
}

// OpenFutureDays lists every date from today through the semester end
// inclusive that is not in the closed-day registry.
func OpenFutureDays(today string, sem model.Semester, closed *ClosedDays) []string {
	var open []string
	for _, d := range datesBetween(today, sem.EndDate) {
		if closed.Contains(d) {
			continue
		}
		open = append(open, d)
	}
	return open
}

// RecommendedDailySpend spreads the remaining balance evenly over the
// remaining open days. Zero when the balance is exhausted or no open
// days remain.
func RecommendedDailySpend(remaining float64, openDays []string) float64 {
	if remaining <= 0 || len(openDays) == 0 {
		return 0
	}
	return remaining / float64(len(openDays))
}

// PredictedRunOutDate walks the open days in order, subtracting the
// average daily spend from a running balance, and returns the first date
// at which the balance reaches zero or below. Returns "" (no prediction)
// when the average is zero, the balance is already exhausted, or the
// balance outlasts the semester.
func PredictedRunOutDate(remaining, avgDaily float64, openDays []string) string {
	if avgDaily <= 0 || remaining <= 0 {
		return ""
	}
	running := remaining
	for _, d := range openDays {
		running -= avgDaily
		if running <= 0 {
			return d
		}
	}
	return ""
}

// Summarize composes the projection engine into a single BalanceSummary
// for the given account state as of today.
func Summarize(acct model.Account, txs []model.Transaction, cat *catalog.Catalog, closed *ClosedDays, today string) model.BalanceSummary {
	spent := TotalSpent(txs, cat)
	remaining := acct.StartingBalance - spent
	avg := AverageDailySpending(txs, cat, cat.Semester, today)
	open := OpenFutureDays(today, cat.Semester, closed)

	return model.BalanceSummary{
		StartingBalance:       acct.StartingBalance,
		TotalSpent:            spent,
		RemainingBalance:      remaining,
		AverageDailySpend:     avg,
		RecommendedDailySpend: RecommendedDailySpend(remaining, open),
		OpenDaysLeft:          len(open),
		RunOutDate:            PredictedRunOutDate(remaining, avg, open),
	}
}
