package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/Sillem/zone2-polar-flow-analyzer/internal/analysis"
)

// SQLiteHistory stores decisions in SQLite
type SQLiteHistory struct {
	db *sql.DB
}

func newSQLiteHistory(db *sql.DB) *SQLiteHistory {
	return &SQLiteHistory{db: db}
}

// Close closes the underlying database connection.
func (h *SQLiteHistory) Close() error {
	return h.db.Close()
}

// Append inserts a decision and its bucket details in one transaction
func (h *SQLiteHistory) Append(d analysis.Decision) error {
	tx, err := h.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	id := uuid.NewString()
	_, err = tx.Exec(`
		INSERT INTO decisions (
			id, date, duration_min, avg_drift_bpm, fitness_category,
			decision, next_duration_min, notes
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		id, d.Date, d.DurationMin, d.AvgDriftBPM, string(d.FitnessCategory),
		string(d.Action), d.NextDurationMin, d.Notes,
	)
	if err != nil {
		return fmt.Errorf("inserting decision: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO decision_buckets (decision_id, bucket, drift_bpm, bin_count)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for b, detail := range d.DriftDetails {
		if _, err := stmt.Exec(id, float64(b), detail.DriftBPM, detail.Count); err != nil {
			return fmt.Errorf("inserting bucket %s: %w", b, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// List returns all decisions in insertion order
func (h *SQLiteHistory) List() ([]analysis.Decision, error) {
	rows, err := h.db.Query(`
		SELECT id, date, duration_min, avg_drift_bpm, fitness_category,
			decision, next_duration_min, notes
		FROM decisions
		ORDER BY seq
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	var decisions []analysis.Decision
	byID := make(map[string]int)
	for rows.Next() {
		var id, category, action string
		var d analysis.Decision
		err := rows.Scan(
			&id, &d.Date, &d.DurationMin, &d.AvgDriftBPM, &category,
			&action, &d.NextDurationMin, &d.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning decision: %v", ErrCorruptHistory, err)
		}
		d.FitnessCategory = analysis.Category(category)
		d.Action = analysis.Action(action)
		d.DriftDetails = make(map[analysis.Bucket]analysis.BucketDetail)
		d.PacesAnalyzed = []analysis.Bucket{}

		byID[id] = len(decisions)
		ids = append(ids, id)
		decisions = append(decisions, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	if err := h.attachBuckets(decisions, byID); err != nil {
		return nil, err
	}

	return decisions, nil
}

// attachBuckets fills DriftDetails and PacesAnalyzed for loaded decisions
func (h *SQLiteHistory) attachBuckets(decisions []analysis.Decision, byID map[string]int) error {
	rows, err := h.db.Query(`
		SELECT decision_id, bucket, drift_bpm, bin_count
		FROM decision_buckets
		ORDER BY decision_id, bucket
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var bucket float64
		var detail analysis.BucketDetail
		if err := rows.Scan(&id, &bucket, &detail.DriftBPM, &detail.Count); err != nil {
			return fmt.Errorf("%w: scanning bucket: %v", ErrCorruptHistory, err)
		}

		i, ok := byID[id]
		if !ok {
			continue
		}
		b := analysis.Bucket(bucket)
		decisions[i].DriftDetails[b] = detail
		decisions[i].PacesAnalyzed = append(decisions[i].PacesAnalyzed, b)
	}

	return rows.Err()
}
