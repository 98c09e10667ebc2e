// Package store provides a SQLite-backed history of saved projection runs.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// History provides SQLite-backed scenario persistence.
type History struct {
	db *sql.DB
}

// Run is one saved projection scenario with its outcome.
type Run struct {
	ID           int64
	SavedAt      time.Time
	Contribution float64
	Frequency    int
	Years        int
	ReturnPct    float64
	Benchmark    string
	Total        float64
	Contributed  float64
	Earnings     float64
}

// Open opens or creates the history database at the given path.
func Open(dbPath string) (*History, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &History{db: db}, nil
}

// Close closes the history database.
func (h *History) Close() error {
	return h.db.Close()
}

// SaveRun stores a projection run and returns its row ID.
func (h *History) SaveRun(r Run) (int64, error) {
	savedAt := r.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}

	res, err := h.db.Exec(`INSERT INTO runs
		(saved_at, contribution, frequency, years, return_pct, benchmark,
		 total, contributed, earnings)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		savedAt.UTC().Format(time.RFC3339), r.Contribution, r.Frequency, r.Years,
		r.ReturnPct, r.Benchmark, r.Total, r.Contributed, r.Earnings,
	)
	if err != nil {
		return 0, fmt.Errorf("saving run: %w", err)
	}
	return res.LastInsertId()
}

// ListRuns returns saved runs, newest first, up to limit (0 = all).
func (h *History) ListRuns(limit int) ([]Run, error) {
	q := `SELECT id, saved_at, contribution, frequency, years, return_pct,
		benchmark, total, contributed, earnings
		FROM runs ORDER BY saved_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := h.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var r Run
		var savedStr string
		err := rows.Scan(&r.ID, &savedStr, &r.Contribution, &r.Frequency, &r.Years,
			&r.ReturnPct, &r.Benchmark, &r.Total, &r.Contributed, &r.Earnings)
		if err != nil {
			return nil, err
		}
		r.SavedAt, _ = time.Parse(time.RFC3339, savedStr)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Count returns the number of saved runs.
func (h *History) Count() (int, error) {
	var count int
	err := h.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&count)
	return count, err
}

// Clear deletes all saved runs.
func (h *History) Clear() error {
	_, err := h.db.Exec("DELETE FROM runs")
	return err
}
