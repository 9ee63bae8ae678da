package models

import (
	"time"

	"github.com/google/uuid"
)

// LoggedSet is one performed set within an exercise entry. All numeric fields
// are optional; the meaning of Weight depends on the exercise's logging mode
// (raw weight, additional weight, or assistance weight).
type LoggedSet struct {
	Reps    *int     `json:"reps,omitempty"`
	Weight  *float64 `json:"weight,omitempty"`
	TimeSec *int     `json:"time,omitempty"`
	Note    string   `json:"note,omitempty"`
}

// ExerciseEntry is a named exercise performed within one workout, with its
// ordered sets and stored totals. Totals are recomputed wholesale on every
// write; they are never patched incrementally.
type ExerciseEntry struct {
	ID              uuid.UUID   `json:"id"`
	ExerciseID      uuid.UUID   `json:"exerciseId"`
	ExerciseName    string      `json:"exerciseName"`
	MuscleGroupID   int         `json:"muscleGroupId"`
	MuscleGroupName string      `json:"muscleGroupName"`
	Mode            LoggingMode `json:"loggingMode"`
	Sets            []LoggedSet `json:"sets"`
	TotalSets       int         `json:"totalSets"`
	TotalReps       int         `json:"totalReps"`
	TotalWeight     float64     `json:"totalWeight"`
}

// WorkoutRecord is a dated collection of exercise entries belonging to one
// user. UserWeight is the bodyweight snapshot captured when the workout was
// created; later changes to the user's current weight must never alter the
// stored totals of a past workout.
type WorkoutRecord struct {
	ID          uuid.UUID       `json:"id"`
	UserID      int             `json:"-"`
	Name        string          `json:"name"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description,omitempty"`
	UserWeight  *float64        `json:"userWeight,omitempty"`
	Entries     []ExerciseEntry `json:"exercises,omitempty"`
	TotalSets   int             `json:"totalSets"`
	TotalReps   int             `json:"totalReps"`
	TotalWeight float64         `json:"totalWeight"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// MuscleGroupRef is a lightweight (id, name) pair attached to workout
// summaries so the dashboard can rank groups without another lookup.
type MuscleGroupRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// WorkoutSummary is a workout row without its sets, as returned by list and
// dashboard queries. Totals are read from storage as-is, never recomputed.
type WorkoutSummary struct {
	ID           uuid.UUID        `json:"id"`
	Name         string           `json:"name"`
	Date         time.Time        `json:"date"`
	Description  string           `json:"description,omitempty"`
	TotalSets    int              `json:"totalSets"`
	TotalReps    int              `json:"totalReps"`
	TotalWeight  float64          `json:"totalWeight"`
	MuscleGroups []MuscleGroupRef `json:"muscleGroups,omitempty"`
}
