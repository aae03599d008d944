package model

// DailySpend is the summed spend for one calendar date.
type DailySpend struct {
	Date   string
	Amount float64
}

// CategorySpend is the summed line spend for one category.
type CategorySpend struct {
	CategoryID string
	Label      string
	Amount     float64
}

// VendorTotal is the summed transaction spend at one vendor.
type VendorTotal struct {
	VendorID int
	Label    string
	Amount   float64
}

// ItemTotal is the summed line spend for one item.
type ItemTotal struct {
	ItemID int
	Label  string
	Amount float64
}

// ItemTrend is the spend on one item on one date.
type ItemTrend struct {
	ItemID   int
	ItemName string
	Date     string
	Amount   float64
}

// BalanceSummary holds the projection outputs for one account.
// RunOutDate is empty when no run-out is predicted this semester.
type BalanceSummary struct {
	StartingBalance       float64
	TotalSpent            float64
	RemainingBalance      float64
	AverageDailySpend     float64
	RecommendedDailySpend float64
	OpenDaysLeft          int
	RunOutDate            string
}
