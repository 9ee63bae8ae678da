package storage

import (
	"context"
	"fmt"
	"time"
)

// DataStats holds aggregate statistics about a user's logged data. These are
// lifetime counters for the profile page, not dashboard aggregates; the
// dashboard is built in-process by the training package.
type DataStats struct {
	TotalWorkouts   int64      `json:"totalWorkouts"`
	TotalSets       int64      `json:"totalSets"`
	TotalReps       int64      `json:"totalReps"`
	TotalWeight     float64    `json:"totalWeight"`
	CustomExercises int64      `json:"customExercises"`
	FirstWorkout    *time.Time `json:"firstWorkout"`
	LatestWorkout   *time.Time `json:"latestWorkout"`
}

// GetDataStats returns lifetime statistics for a user's stored data.
func (db *DB) GetDataStats(ctx context.Context, userID int) (*DataStats, error) {
	stats := &DataStats{}

	err := db.Pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(total_sets), 0),
		        COALESCE(SUM(total_reps), 0),
		        COALESCE(SUM(total_weight), 0),
		        MIN(date), MAX(date)
		 FROM workouts WHERE user_id = $1`, userID,
	).Scan(&stats.TotalWorkouts, &stats.TotalSets, &stats.TotalReps, &stats.TotalWeight,
		&stats.FirstWorkout, &stats.LatestWorkout)
	if err != nil {
		return nil, fmt.Errorf("aggregating workout stats: %w", err)
	}

	err = db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM exercises WHERE user_id = $1`, userID,
	).Scan(&stats.CustomExercises)
	if err != nil {
		return nil, fmt.Errorf("counting custom exercises: %w", err)
	}

	return stats, nil
}
