package database

// migrationsSQL contains all database migrations, applied in version order.
var migrationsSQL = map[int]string{
	1: migrationV1Observances,
}

// migrationV1Observances stores yearly observance rules. Rules are kept
// undated; occurrences are computed per year at request time.
//
// Column use per kind:
//   - fixed:         month, day (civil)
//   - nth_weekday:   month, nth (1-5, 5 = last), weekday (0 = Sunday)
//   - easter_offset: offset_days from Easter Sunday
//   - hijri:         month, day (Hijri)
const migrationV1Observances = `
CREATE TABLE IF NOT EXISTS observances (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    kind TEXT NOT NULL CHECK (kind IN (
        'fixed',
        'nth_weekday',
        'easter_offset',
        'hijri'
    )),
    month INTEGER NOT NULL DEFAULT 0,
    day INTEGER NOT NULL DEFAULT 0,
    nth INTEGER NOT NULL DEFAULT 0,
    weekday INTEGER NOT NULL DEFAULT 0,
    offset_days INTEGER NOT NULL DEFAULT 0,
    description TEXT,
    created_at TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_observances_kind
    ON observances(kind);
`
