package storage

import (
	"context"
	"fmt"
	"time"
)

// ImportLog records one run of the workout importer.
type ImportLog struct {
	ID         int       `json:"id"`
	UserID     int       `json:"-"`
	Source     string    `json:"source"`
	Status     string    `json:"status"`
	Error      *string   `json:"error,omitempty"`
	Workouts   int       `json:"workouts"`
	DurationMs int       `json:"durationMs"`
	CreatedAt  time.Time `json:"createdAt"`
}

// InsertImportLog records an import operation's result.
func (db *DB) InsertImportLog(ctx context.Context, l ImportLog) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO import_logs (user_id, source, status, error, workouts, duration_ms)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		l.UserID, l.Source, l.Status, l.Error, l.Workouts, l.DurationMs)
	if err != nil {
		return fmt.Errorf("inserting import log: %w", err)
	}
	return nil
}

// QueryImportLogs returns the most recent import runs for a user.
func (db *DB) QueryImportLogs(ctx context.Context, userID, limit int) ([]ImportLog, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, source, status, error, workouts, duration_ms, created_at
		 FROM import_logs
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying import logs: %w", err)
	}
	defer rows.Close()

	var result []ImportLog
	for rows.Next() {
		var l ImportLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Source, &l.Status, &l.Error,
			&l.Workouts, &l.DurationMs, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning import log: %w", err)
		}
		result = append(result, l)
	}
	return result, rows.Err()
}
