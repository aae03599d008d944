// Package session ties one student's account, transaction history, and
// the shared closed-day registry to the persistence layer. All mutations
// enter through here; analytics stay pure in the ledger package.
package session

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/theirongolddev/mealtab/internal/catalog"
	"github.com/theirongolddev/mealtab/internal/ledger"
	"github.com/theirongolddev/mealtab/internal/model"
	"github.com/theirongolddev/mealtab/internal/store"
)

// ErrNoAccount signals that a username has no stored account yet and the
// one-time starting-balance capture must run first.
var ErrNoAccount = errors.New("no account for user")

// Session is one student's live state. Writes are fire-and-forget: a
// persistence failure is logged and the in-memory state stays
// authoritative for the rest of the process.
type Session struct {
	st      *store.Store // nil for in-memory sessions
	catalog *catalog.Catalog
	account model.Account
	txs     []model.Transaction
	closed  *ledger.ClosedDays
	nextID  int

	now  func() time.Time
	logf func(format string, args ...any)
}

// New builds an in-memory session with no persistence. The transaction
// id counter seeds from max(existing ids) + 1.
func New(cat *catalog.Catalog, acct model.Account, txs []model.Transaction, closedDays []string) *Session {
	return &Session{
		catalog: cat,
		account: acct,
		txs:     txs,
		closed:  ledger.NewClosedDays(closedDays),
		nextID:  nextTransactionID(txs),
		now:     time.Now,
		logf:    stderrLogf,
	}
}

// Open loads an existing account and its transactions from the store.
// Returns ErrNoAccount for a username with no stored account.
func Open(st *store.Store, cat *catalog.Catalog, username string) (*Session, error) {
	acct, found, err := st.LoadAccount(username)
	if err != nil {
		return nil, fmt.Errorf("loading account: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrNoAccount, username)
	}

	txs, err := st.LoadTransactions(username)
	if err != nil {
		return nil, fmt.Errorf("loading transactions: %w", err)
	}

	closed, err := loadClosedDays(st)
	if err != nil {
		return nil, err
	}

	s := New(cat, acct, txs, closed)
	s.st = st
	return s, nil
}

// Create stores a new account with its one-time starting balance and
// returns a session for it.
func Create(st *store.Store, cat *catalog.Catalog, username string, startingBalance float64) (*Session, error) {
	acct := model.Account{Username: username, StartingBalance: startingBalance}
	if err := st.SaveAccount(acct); err != nil {
		return nil, fmt.Errorf("saving account: %w", err)
	}

	closed, err := loadClosedDays(st)
	if err != nil {
		return nil, err
	}

	s := New(cat, acct, nil, closed)
	s.st = st
	return s, nil
}

func loadClosedDays(st *store.Store) ([]string, error) {
	if err := st.SeedClosedDays(catalog.DefaultClosedDays); err != nil {
		return nil, fmt.Errorf("seeding closed days: %w", err)
	}
	days, err := st.LoadClosedDays()
	if err != nil {
		return nil, fmt.Errorf("loading closed days: %w", err)
	}
	return days, nil
}

func nextTransactionID(txs []model.Transaction) int {
	next := 1
	for _, t := range txs {
		if t.ID >= next {
			next = t.ID + 1
		}
	}
	return next
}

func stderrLogf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "mealtab: "+format+"\n", args...)
}

// SetClock injects the clock used for "today". Projections become a pure
// function of this value.
func (s *Session) SetClock(now func() time.Time) {
	s.now = now
}

// SetLogger replaces the persistence-failure logger (nil silences it).
func (s *Session) SetLogger(logf func(format string, args ...any)) {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	s.logf = logf
}

// Account returns the session's account.
func (s *Session) Account() model.Account {
	return s.account
}

// Catalog returns the reference data the session was opened with.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// Transactions returns a copy of the transaction list, oldest first.
func (s *Session) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(s.txs))
	copy(out, s.txs)
	return out
}

// ClosedDays returns the shared closed-day registry.
func (s *Session) ClosedDays() *ledger.ClosedDays {
	return s.closed
}

// Today returns the clock's current day as an ISO date.
func (s *Session) Today() string {
	return s.now().Format("2006-01-02")
}

// AddTransaction records a purchase: one line of itemID x qty at the
// given explicit price (nil = catalog default). Empty timeOfDay defaults
// to 12:00. Malformed input (bad date, bad time, qty < 1) is a silent
// no-op and returns false. The new transaction gets the next monotonic id.
func (s *Session) AddTransaction(vendorID int, date, timeOfDay string, itemID, qty int, price *float64) (model.Transaction, bool) {
	if !ledger.ValidDate(date) || qty < 1 {
		return model.Transaction{}, false
	}
	if timeOfDay == "" {
		timeOfDay = "12:00"
	}
	if _, err := time.Parse("15:04", timeOfDay); err != nil {
		return model.Transaction{}, false
	}

	txn := model.Transaction{
		ID:       s.nextID,
		VendorID: vendorID,
		Datetime: date + "T" + timeOfDay,
		Lines: []model.TransactionLine{
			{ItemID: itemID, Quantity: qty, Price: price},
		},
	}
	s.nextID++
	s.txs = append(s.txs, txn)

	if s.st != nil {
		if err := s.st.SaveTransaction(s.account.Username, txn); err != nil {
			s.logf("could not persist transaction %d: %v", txn.ID, err)
		}
	}

	return txn, true
}

// AddClosedDay adds a date to the registry and persists the change.
// Invalid or duplicate dates are silent no-ops.
func (s *Session) AddClosedDay(date string) bool {
	if !s.closed.Add(date) {
		return false
	}
	if s.st != nil {
		if err := s.st.AddClosedDay(date); err != nil {
			s.logf("could not persist closed day %s: %v", date, err)
		}
	}
	return true
}

// RemoveClosedDay removes a date from the registry and persists the
// change. Absent dates are silent no-ops.
func (s *Session) RemoveClosedDay(date string) bool {
	if !s.closed.Remove(date) {
		return false
	}
	if s.st != nil {
		if err := s.st.RemoveClosedDay(date); err != nil {
			s.logf("could not persist closed day removal %s: %v", date, err)
		}
	}
	return true
}

// Summary runs the projection engine over the current state as of the
// session clock's today.
func (s *Session) Summary() model.BalanceSummary {
	return ledger.Summarize(s.account, s.txs, s.catalog, s.closed, s.Today())
}
