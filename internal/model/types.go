// Package model defines domain types for mealtab accounts and transactions.
package model

// Semester is a closed, inclusive date interval of dining operation.
// StartDate and EndDate are ISO dates (YYYY-MM-DD), StartDate <= EndDate.
type Semester struct {
	ID        int
	Name      string
	StartDate string
	EndDate   string
}

// Vendor is a dining location students purchase from.
type Vendor struct {
	ID   int
	Name string
}

// Category groups items for spending breakdowns. ID is a string tag.
type Category struct {
	ID    string
	Label string
}

// Item is a purchasable catalog entry. DefaultPrice applies when a
// transaction line carries no explicit price.
type Item struct {
	ID           int
	Name         string
	CategoryID   string
	DefaultPrice float64
}

// TransactionLine is one item purchase within a transaction.
// Price nil means "use the item's default price"; an explicit 0 is a
// real price and does not fall back.
type TransactionLine struct {
	ItemID   int
	Quantity int
	Price    *float64
}

// Transaction is one purchase event. IDs are assigned monotonically per
// account and never reused; transactions are never deleted.
// Datetime is "YYYY-MM-DDTHH:MM".
type Transaction struct {
	ID       int
	VendorID int
	Datetime string
	Lines    []TransactionLine
}

// Date returns the calendar-date portion of the transaction datetime.
func (t Transaction) Date() string {
	if len(t.Datetime) < 10 {
		return t.Datetime
	}
	return t.Datetime[:10]
}

// Account holds one student's identity and starting balance.
// StartingBalance is captured once at first use and immutable after.
type Account struct {
	Username        string
	StartingBalance float64
}
