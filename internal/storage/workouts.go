package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/antonKrizmanic/gymlogger/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ListOptions controls pagination, search, and sort for workout listings.
type ListOptions struct {
	Page     int
	PageSize int
	Search   string
	SortAsc  bool
}

func (o ListOptions) normalized() ListOptions {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.PageSize < 1 || o.PageSize > 100 {
		o.PageSize = 20
	}
	return o
}

// CreateWorkout persists a workout with its entries, sets, and precomputed
// totals in one transaction, so readers never observe a workout whose stored
// totals disagree with its sets. Totals must already be applied by the
// caller (training.ApplyTotals).
func (db *DB) CreateWorkout(ctx context.Context, w *models.WorkoutRecord) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO workouts (id, user_id, name, date, description, user_weight,
		 total_sets, total_reps, total_weight)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		w.ID, w.UserID, w.Name, w.Date, w.Description, w.UserWeight,
		w.TotalSets, w.TotalReps, w.TotalWeight)
	if err != nil {
		return fmt.Errorf("inserting workout: %w", err)
	}

	if err := insertEntries(ctx, tx, w); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing workout: %w", err)
	}
	return nil
}

// UpdateWorkout replaces a workout's entries and sets wholesale and rewrites
// all totals, in one transaction. Partial edits do not exist; an edit is a
// full recompute.
func (db *DB) UpdateWorkout(ctx context.Context, w *models.WorkoutRecord) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE workouts
		 SET name = $3, date = $4, description = $5,
		     total_sets = $6, total_reps = $7, total_weight = $8, updated_at = NOW()
		 WHERE id = $1 AND user_id = $2`,
		w.ID, w.UserID, w.Name, w.Date, w.Description,
		w.TotalSets, w.TotalReps, w.TotalWeight)
	if err != nil {
		return fmt.Errorf("updating workout: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	// Sets cascade with their entries.
	if _, err := tx.Exec(ctx,
		`DELETE FROM workout_exercises WHERE workout_id = $1`, w.ID); err != nil {
		return fmt.Errorf("clearing workout entries: %w", err)
	}

	if err := insertEntries(ctx, tx, w); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing workout update: %w", err)
	}
	return nil
}

func insertEntries(ctx context.Context, tx pgx.Tx, w *models.WorkoutRecord) error {
	for seq, entry := range w.Entries {
		entryID := entry.ID
		if entryID == uuid.Nil {
			entryID = uuid.New()
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO workout_exercises (id, workout_id, exercise_id, sequence,
			 total_sets, total_reps, total_weight)
			 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			entryID, w.ID, entry.ExerciseID, seq,
			entry.TotalSets, entry.TotalReps, entry.TotalWeight)
		if err != nil {
			return fmt.Errorf("inserting workout entry: %w", err)
		}

		for setSeq, set := range entry.Sets {
			_, err := tx.Exec(ctx,
				`INSERT INTO exercise_sets (id, workout_exercise_id, sequence, reps, weight, time_sec, note)
				 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
				uuid.New(), entryID, setSeq, set.Reps, set.Weight, set.TimeSec, set.Note)
			if err != nil {
				return fmt.Errorf("inserting set: %w", err)
			}
		}
	}
	return nil
}

// GetWorkout retrieves one workout with its entries and sets. Stored totals
// are returned as-is; plain reads never recompute them.
func (db *DB) GetWorkout(ctx context.Context, id uuid.UUID, userID int) (*models.WorkoutRecord, error) {
	var w models.WorkoutRecord
	err := db.Pool.QueryRow(ctx,
		`SELECT id, user_id, name, date, description, user_weight,
		 total_sets, total_reps, total_weight, created_at, updated_at
		 FROM workouts
		 WHERE id = $1 AND user_id = $2`,
		id, userID).Scan(&w.ID, &w.UserID, &w.Name, &w.Date, &w.Description, &w.UserWeight,
		&w.TotalSets, &w.TotalReps, &w.TotalWeight, &w.CreatedAt, &w.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying workout: %w", err)
	}

	entryRows, err := db.Pool.Query(ctx,
		`SELECT we.id, we.exercise_id, e.name, e.muscle_group_id, mg.name, e.logging_mode,
		 we.total_sets, we.total_reps, we.total_weight
		 FROM workout_exercises we
		 JOIN exercises e ON e.id = we.exercise_id
		 JOIN muscle_groups mg ON mg.id = e.muscle_group_id
		 WHERE we.workout_id = $1
		 ORDER BY we.sequence`,
		id)
	if err != nil {
		return nil, fmt.Errorf("querying workout entries: %w", err)
	}
	defer entryRows.Close()

	entryIndex := make(map[uuid.UUID]int)
	for entryRows.Next() {
		var e models.ExerciseEntry
		var mode int
		if err := entryRows.Scan(&e.ID, &e.ExerciseID, &e.ExerciseName, &e.MuscleGroupID, &e.MuscleGroupName,
			&mode, &e.TotalSets, &e.TotalReps, &e.TotalWeight); err != nil {
			return nil, fmt.Errorf("scanning workout entry: %w", err)
		}
		e.Mode = models.ParseLoggingMode(mode)
		entryIndex[e.ID] = len(w.Entries)
		w.Entries = append(w.Entries, e)
	}
	if err := entryRows.Err(); err != nil {
		return nil, err
	}

	setRows, err := db.Pool.Query(ctx,
		`SELECT es.workout_exercise_id, es.reps, es.weight, es.time_sec, es.note
		 FROM exercise_sets es
		 JOIN workout_exercises we ON we.id = es.workout_exercise_id
		 WHERE we.workout_id = $1
		 ORDER BY we.sequence, es.sequence`,
		id)
	if err != nil {
		return nil, fmt.Errorf("querying sets: %w", err)
	}
	defer setRows.Close()

	for setRows.Next() {
		var entryID uuid.UUID
		var s models.LoggedSet
		if err := setRows.Scan(&entryID, &s.Reps, &s.Weight, &s.TimeSec, &s.Note); err != nil {
			return nil, fmt.Errorf("scanning set: %w", err)
		}
		if i, ok := entryIndex[entryID]; ok {
			w.Entries[i].Sets = append(w.Entries[i].Sets, s)
		}
	}
	return &w, setRows.Err()
}

// ListWorkouts returns one page of workout summaries plus the total count
// for the filter. Totals come from storage untouched.
func (db *DB) ListWorkouts(ctx context.Context, userID int, opts ListOptions) ([]models.WorkoutSummary, int, error) {
	opts = opts.normalized()

	where := `WHERE user_id = $1`
	args := []any{userID}
	if opts.Search != "" {
		where += ` AND name ILIKE $2`
		args = append(args, "%"+opts.Search+"%")
	}

	var total int
	if err := db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM workouts `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting workouts: %w", err)
	}

	order := "DESC"
	if opts.SortAsc {
		order = "ASC"
	}
	query := fmt.Sprintf(
		`SELECT id, name, date, description, total_sets, total_reps, total_weight
		 FROM workouts %s
		 ORDER BY date %s
		 LIMIT %d OFFSET %d`,
		where, order, opts.PageSize, (opts.Page-1)*opts.PageSize)

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying workouts: %w", err)
	}
	defer rows.Close()

	summaries, err := scanSummaries(rows)
	if err != nil {
		return nil, 0, err
	}

	if err := db.attachMuscleGroups(ctx, summaries); err != nil {
		return nil, 0, err
	}
	return summaries, total, nil
}

// AllWorkoutSummaries returns every workout summary for a user, newest
// first. The dashboard rollup consumes this and does all aggregation
// in-process; no window math lives in SQL.
func (db *DB) AllWorkoutSummaries(ctx context.Context, userID int) ([]models.WorkoutSummary, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, name, date, description, total_sets, total_reps, total_weight
		 FROM workouts
		 WHERE user_id = $1
		 ORDER BY date DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("querying workouts: %w", err)
	}
	defer rows.Close()

	summaries, err := scanSummaries(rows)
	if err != nil {
		return nil, err
	}

	if err := db.attachMuscleGroups(ctx, summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

// DeleteWorkout removes a workout; entries and sets cascade.
func (db *DB) DeleteWorkout(ctx context.Context, id uuid.UUID, userID int) error {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM workouts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting workout: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanSummaries(rows pgx.Rows) ([]models.WorkoutSummary, error) {
	var result []models.WorkoutSummary
	for rows.Next() {
		var s models.WorkoutSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Date, &s.Description,
			&s.TotalSets, &s.TotalReps, &s.TotalWeight); err != nil {
			return nil, fmt.Errorf("scanning workout summary: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// attachMuscleGroups fills in each summary's distinct muscle groups with a
// single query over the summaries' IDs.
func (db *DB) attachMuscleGroups(ctx context.Context, summaries []models.WorkoutSummary) error {
	if len(summaries) == 0 {
		return nil
	}

	ids := make([]string, len(summaries))
	index := make(map[uuid.UUID]int, len(summaries))
	for i, s := range summaries {
		ids[i] = s.ID.String()
		index[s.ID] = i
	}

	rows, err := db.Pool.Query(ctx,
		`SELECT DISTINCT we.workout_id, mg.id, mg.name
		 FROM workout_exercises we
		 JOIN exercises e ON e.id = we.exercise_id
		 JOIN muscle_groups mg ON mg.id = e.muscle_group_id
		 WHERE we.workout_id = ANY($1::uuid[])
		 ORDER BY we.workout_id, mg.id`,
		ids)
	if err != nil {
		return fmt.Errorf("querying workout muscle groups: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var workoutID uuid.UUID
		var g models.MuscleGroupRef
		if err := rows.Scan(&workoutID, &g.ID, &g.Name); err != nil {
			return fmt.Errorf("scanning workout muscle group: %w", err)
		}
		if i, ok := index[workoutID]; ok {
			summaries[i].MuscleGroups = append(summaries[i].MuscleGroups, g)
		}
	}
	return rows.Err()
}
