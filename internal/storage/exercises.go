package storage

import (
	"context"
	"fmt"

	"github.com/antonKrizmanic/gymlogger/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ListMuscleGroups returns the muscle-group catalog.
func (db *DB) ListMuscleGroups(ctx context.Context) ([]models.MuscleGroup, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, name FROM muscle_groups ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying muscle groups: %w", err)
	}
	defer rows.Close()

	var result []models.MuscleGroup
	for rows.Next() {
		var g models.MuscleGroup
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("scanning muscle group: %w", err)
		}
		result = append(result, g)
	}
	return result, rows.Err()
}

// ListExercises returns the seeded global catalog plus the user's own
// exercises, ordered by name.
func (db *DB) ListExercises(ctx context.Context, userID int) ([]models.Exercise, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, name, muscle_group_id, logging_mode, description, created_at
		 FROM exercises
		 WHERE user_id IS NULL OR user_id = $1
		 ORDER BY name`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("querying exercises: %w", err)
	}
	defer rows.Close()

	return scanExercises(rows)
}

// CreateExercise inserts a user-defined catalog exercise.
func (db *DB) CreateExercise(ctx context.Context, e models.Exercise) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO exercises (id, user_id, name, muscle_group_id, logging_mode, description)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID, e.UserID, e.Name, e.MuscleGroupID, int(e.Mode), e.Description)
	if err != nil {
		return fmt.Errorf("inserting exercise: %w", err)
	}
	return nil
}

// GetExercisesByIDs resolves catalog exercises visible to the user, keyed by
// ID. Workout writes use this to look up each entry's logging mode.
func (db *DB) GetExercisesByIDs(ctx context.Context, ids []uuid.UUID, userID int) (map[uuid.UUID]models.Exercise, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]models.Exercise{}, nil
	}

	idStrs := make([]string, len(ids))
	for i, id := range ids {
		idStrs[i] = id.String()
	}

	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, name, muscle_group_id, logging_mode, description, created_at
		 FROM exercises
		 WHERE id = ANY($1::uuid[]) AND (user_id IS NULL OR user_id = $2)`,
		idStrs, userID)
	if err != nil {
		return nil, fmt.Errorf("querying exercises by ids: %w", err)
	}
	defer rows.Close()

	exercises, err := scanExercises(rows)
	if err != nil {
		return nil, err
	}

	result := make(map[uuid.UUID]models.Exercise, len(exercises))
	for _, e := range exercises {
		result[e.ID] = e
	}
	return result, nil
}

func scanExercises(rows pgx.Rows) ([]models.Exercise, error) {
	var result []models.Exercise
	for rows.Next() {
		var e models.Exercise
		var mode int
		if err := rows.Scan(&e.ID, &e.UserID, &e.Name, &e.MuscleGroupID, &mode, &e.Description, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		e.Mode = models.ParseLoggingMode(mode)
		result = append(result, e)
	}
	return result, rows.Err()
}
