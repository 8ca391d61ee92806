package logs

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite" // SQLite driver (pure Go)
)

// Ledger records which log files already had their preamble trimmed.
// Trimming is destructive, so without the ledger a second `trim` pass
// would eat real epoch output.
type Ledger struct {
	db *sql.DB
}

// OpenLedger opens (creating if needed) the trim ledger database.
func OpenLedger(path string) (*Ledger, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Ledger{db: db}, nil
}

func initSchema(db *sql.DB) error {
	const createTrimmed = `
CREATE TABLE IF NOT EXISTS trimmed_files (
  file       TEXT PRIMARY KEY,
  lines      INTEGER,
  trimmed_at TEXT
);`
	_, err := db.Exec(createTrimmed)
	return err
}

// Seen reports whether file is already recorded as trimmed.
func (l *Ledger) Seen(file string) (bool, error) {
	var one int
	err := l.db.QueryRow(`SELECT 1 FROM trimmed_files WHERE file = ?`, file).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Record marks file as trimmed by n lines.
func (l *Ledger) Record(file string, n int) error {
	_, err := l.db.Exec(
		`INSERT OR REPLACE INTO trimmed_files (file, lines, trimmed_at) VALUES (?, ?, ?)`,
		file, n, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// Close closes the underlying database.
func (l *Ledger) Close() error {
	return l.db.Close()
}
