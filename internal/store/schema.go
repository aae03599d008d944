package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS accounts (
    username          TEXT PRIMARY KEY,
    starting_balance  REAL NOT NULL,
    created_at        TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
    username   TEXT NOT NULL,
    id         INTEGER NOT NULL,
    vendor_id  INTEGER NOT NULL,
    datetime   TEXT NOT NULL,
    PRIMARY KEY (username, id)
);

CREATE TABLE IF NOT EXISTS transaction_lines (
    username   TEXT NOT NULL,
    tx_id      INTEGER NOT NULL,
    line_no    INTEGER NOT NULL,
    item_id    INTEGER NOT NULL,
    quantity   INTEGER NOT NULL,
    price      REAL,
    PRIMARY KEY (username, tx_id, line_no)
);

CREATE TABLE IF NOT EXISTS closed_days (
    day TEXT PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS meta (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_datetime ON transactions(username, datetime);
`
