package models

import (
	"time"

	"github.com/google/uuid"
)

// MuscleGroup is one entry in the fixed muscle-group catalog.
type MuscleGroup struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Exercise is a catalog exercise definition. UserID is nil for the seeded
// global catalog and set for user-created exercises. The logging mode is
// immutable once sets reference the exercise.
type Exercise struct {
	ID            uuid.UUID   `json:"id"`
	UserID        *int        `json:"-"`
	Name          string      `json:"name"`
	MuscleGroupID int         `json:"muscleGroupId"`
	Mode          LoggingMode `json:"loggingMode"`
	Description   string      `json:"description,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// User is an account row. CurrentWeight is the user's present bodyweight,
// copied onto workouts as a snapshot at creation time.
type User struct {
	ID            int       `json:"id"`
	Email         string    `json:"email"`
	DisplayName   string    `json:"displayName"`
	PasswordHash  string    `json:"-"`
	CurrentWeight *float64  `json:"currentWeight,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
