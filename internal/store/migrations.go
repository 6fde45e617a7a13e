package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// One row per analyzed workout, in insertion order
		`CREATE TABLE IF NOT EXISTS decisions (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			date TEXT NOT NULL,
			duration_min INTEGER NOT NULL,
			avg_drift_bpm REAL NOT NULL,
			fitness_category TEXT NOT NULL,
			decision TEXT NOT NULL,
			next_duration_min INTEGER NOT NULL,
			notes TEXT NOT NULL,
			recorded_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		// Per-bucket drift used for each decision
		`CREATE TABLE IF NOT EXISTS decision_buckets (
			decision_id TEXT NOT NULL,
			bucket REAL NOT NULL,
			drift_bpm REAL NOT NULL,
			bin_count INTEGER NOT NULL,
			PRIMARY KEY (decision_id, bucket),
			FOREIGN KEY (decision_id) REFERENCES decisions(id) ON DELETE CASCADE
		)`,

		`CREATE INDEX IF NOT EXISTS idx_decisions_date ON decisions(date)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}
