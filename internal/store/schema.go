package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    saved_at      TEXT NOT NULL,
    contribution  REAL NOT NULL,
    frequency     INTEGER NOT NULL,
    years         INTEGER NOT NULL,
    return_pct    REAL NOT NULL,
    benchmark     TEXT,
    total         REAL NOT NULL,
    contributed   REAL NOT NULL,
    earnings      REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_saved_at ON runs(saved_at);
`
