package mcp

import (
	"context"

	"github.com/antonKrizmanic/gymlogger/internal/models"
	"github.com/antonKrizmanic/gymlogger/internal/storage"
	"github.com/google/uuid"
)

// DataSource abstracts the data layer for MCP tools so they can be tested
// against fabricated data.
type DataSource interface {
	AllWorkoutSummaries(ctx context.Context, userID int) ([]models.WorkoutSummary, error)
	GetWorkout(ctx context.Context, id uuid.UUID, userID int) (*models.WorkoutRecord, error)
	ListExercises(ctx context.Context, userID int) ([]models.Exercise, error)
	ListMuscleGroups(ctx context.Context) ([]models.MuscleGroup, error)
	GetDataStats(ctx context.Context, userID int) (*storage.DataStats, error)
}

// Compile-time check: *storage.DB satisfies DataSource.
var _ DataSource = (*storage.DB)(nil)
