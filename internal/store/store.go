// Package store provides SQLite-backed persistence for accounts,
// transactions, and the closed-day registry.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/theirongolddev/mealtab/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store wraps the SQLite database. One store serves all accounts on the
// device; the closed-day registry is a single shared copy.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Usernames are case-insensitive keys.
func userKey(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// LoadAccount reads the account for a username. The second return value
// is false when no account exists (a new user).
func (s *Store) LoadAccount(username string) (model.Account, bool, error) {
	var acct model.Account
	err := s.db.QueryRow(
		"SELECT username, starting_balance FROM accounts WHERE username = ?",
		userKey(username),
	).Scan(&acct.Username, &acct.StartingBalance)
	if err == sql.ErrNoRows {
		return model.Account{}, false, nil
	}
	if err != nil {
		return model.Account{}, false, err
	}
	return acct, true, nil
}

// SaveAccount writes the account row (last write wins).
func (s *Store) SaveAccount(acct model.Account) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT OR REPLACE INTO accounts (username, starting_balance, created_at)
		VALUES (?, ?, COALESCE((SELECT created_at FROM accounts WHERE username = ?), ?))`,
		userKey(acct.Username), acct.StartingBalance, userKey(acct.Username), now,
	)
	return err
}

// SaveTransaction writes one transaction and its lines atomically.
func (s *Store) SaveTransaction(username string, txn model.Transaction) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	key := userKey(username)

	_, err = tx.Exec(`INSERT OR REPLACE INTO transactions (username, id, vendor_id, datetime)
		VALUES (?, ?, ?, ?)`,
		key, txn.ID, txn.VendorID, txn.Datetime,
	)
	if err != nil {
		return err
	}

	// Replace any lines from a previous write of the same id
	_, err = tx.Exec("DELETE FROM transaction_lines WHERE username = ? AND tx_id = ?", key, txn.ID)
	if err != nil {
		return err
	}

	for i, line := range txn.Lines {
		var p sql.NullFloat64
		if line.Price != nil {
			p = sql.NullFloat64{Float64: *line.Price, Valid: true}
		}
		_, err = tx.Exec(`INSERT INTO transaction_lines (username, tx_id, line_no, item_id, quantity, price)
			VALUES (?, ?, ?, ?, ?, ?)`,
			key, txn.ID, i, line.ItemID, line.Quantity, p,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadTransactions reads all transactions for a username ordered by id.
func (s *Store) LoadTransactions(username string) ([]model.Transaction, error) {
	key := userKey(username)

	rows, err := s.db.Query(
		"SELECT id, vendor_id, datetime FROM transactions WHERE username = ? ORDER BY id",
		key,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var txs []model.Transaction
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(&t.ID, &t.VendorID, &t.Datetime); err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Batch-load lines and attach via an id index
	lineRows, err := s.db.Query(
		"SELECT tx_id, item_id, quantity, price FROM transaction_lines WHERE username = ? ORDER BY tx_id, line_no",
		key,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = lineRows.Close() }()

	txIdx := make(map[int]int, len(txs))
	for i, t := range txs {
		txIdx[t.ID] = i
	}

	for lineRows.Next() {
		var txID int
		var line model.TransactionLine
		var p sql.NullFloat64
		if err := lineRows.Scan(&txID, &line.ItemID, &line.Quantity, &p); err != nil {
			return nil, err
		}
		if p.Valid {
			v := p.Float64
			line.Price = &v
		}
		if i, ok := txIdx[txID]; ok {
			txs[i].Lines = append(txs[i].Lines, line)
		}
	}

	return txs, lineRows.Err()
}

// LoadClosedDays reads the closed-day registry sorted ascending.
func (s *Store) LoadClosedDays() ([]string, error) {
	rows, err := s.db.Query("SELECT day FROM closed_days ORDER BY day")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var days []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

// AddClosedDay inserts a closed day (no-op if already present).
func (s *Store) AddClosedDay(day string) error {
	_, err := s.db.Exec("INSERT OR IGNORE INTO closed_days (day) VALUES (?)", day)
	return err
}

// RemoveClosedDay deletes a closed day (no-op if absent).
func (s *Store) RemoveClosedDay(day string) error {
	_, err := s.db.Exec("DELETE FROM closed_days WHERE day = ?", day)
	return err
}

// SeedClosedDays inserts the default closures exactly once per database.
// A meta flag keeps staff deletions from being resurrected on restart.
func (s *Store) SeedClosedDays(days []string) error {
	var flag string
	err := s.db.QueryRow("SELECT value FROM meta WHERE key = 'closed_days_seeded'").Scan(&flag)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, d := range days {
		if _, err := tx.Exec("INSERT OR IGNORE INTO closed_days (day) VALUES (?)", d); err != nil {
			return err
		}
	}
	if _, err := tx.Exec("INSERT INTO meta (key, value) VALUES ('closed_days_seeded', '1')"); err != nil {
		return err
	}
	return tx.Commit()
}

// AccountCount returns the number of stored accounts.
func (s *Store) AccountCount() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM accounts").Scan(&count)
	return count, err
}
