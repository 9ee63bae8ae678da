package training

import (
	"testing"

	"github.com/antonKrizmanic/gymlogger/internal/models"
)

func iptr(v int) *int         { return &v }
func fptr(v float64) *float64 { return &v }

// TestSetLoadModeCoverage verifies the exact per-mode formula for each
// logging mode with known reps, weight, and bodyweight.
func TestSetLoadModeCoverage(t *testing.T) {
	set := models.LoggedSet{Reps: iptr(8), Weight: fptr(20)}
	bw := fptr(70)

	tests := []struct {
		name       string
		mode       models.LoggingMode
		wantReps   int
		wantWeight float64
	}{
		{"weight_and_reps", models.LoggingModeWeightAndReps, 8, 160},
		{"time_only", models.LoggingModeTimeOnly, 0, 0},
		{"reps_only", models.LoggingModeRepsOnly, 8, 0},
		{"body_weight", models.LoggingModeBodyWeight, 8, 560},
		{"body_weight_plus_extra", models.LoggingModeBodyWeightPlusExtra, 8, 720},
		{"body_weight_with_assistance", models.LoggingModeBodyWeightWithAssistance, 8, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reps, weight := SetLoad(set, tt.mode, bw)
			if reps != tt.wantReps {
				t.Errorf("reps = %d, want %d", reps, tt.wantReps)
			}
			if weight != tt.wantWeight {
				t.Errorf("effectiveWeight = %v, want %v", weight, tt.wantWeight)
			}
		})
	}
}

// TestSetLoadUnknownModeFallsBack verifies that Unknown and out-of-range
// modes use the weight×reps formula instead of failing. Legacy rows with a
// bad mode must still aggregate.
func TestSetLoadUnknownModeFallsBack(t *testing.T) {
	set := models.LoggedSet{Reps: iptr(10), Weight: fptr(50)}

	reps, weight := SetLoad(set, models.LoggingModeUnknown, nil)
	if reps != 10 || weight != 500 {
		t.Errorf("unknown mode: got (%d, %v), want (10, 500)", reps, weight)
	}

	reps, weight = SetLoad(set, models.LoggingMode(99), nil)
	if reps != 10 || weight != 500 {
		t.Errorf("out-of-range mode: got (%d, %v), want (10, 500)", reps, weight)
	}
}

// TestSetLoadMissingFieldsAreZero verifies that absent reps, weight, and
// bodyweight default to zero instead of producing an error.
func TestSetLoadMissingFieldsAreZero(t *testing.T) {
	reps, weight := SetLoad(models.LoggedSet{}, models.LoggingModeWeightAndReps, nil)
	if reps != 0 || weight != 0 {
		t.Errorf("empty set: got (%d, %v), want (0, 0)", reps, weight)
	}

	// Bodyweight mode with no recorded bodyweight: load is zero by product
	// decision, reps still count.
	reps, weight = SetLoad(models.LoggedSet{Reps: iptr(12)}, models.LoggingModeBodyWeight, nil)
	if reps != 12 {
		t.Errorf("reps = %d, want 12", reps)
	}
	if weight != 0 {
		t.Errorf("effectiveWeight = %v, want 0 without bodyweight snapshot", weight)
	}
}

// TestSetLoadAssistanceCanGoNegative verifies that assistance exceeding
// bodyweight yields a negative load. The calculator does not clamp.
func TestSetLoadAssistanceCanGoNegative(t *testing.T) {
	set := models.LoggedSet{Reps: iptr(5), Weight: fptr(80)}
	_, weight := SetLoad(set, models.LoggingModeBodyWeightWithAssistance, fptr(70))
	if weight != -50 {
		t.Errorf("effectiveWeight = %v, want -50", weight)
	}
}

// TestSetLoadWeightIgnoredForBodyWeight verifies that a recorded set weight
// plays no role in the plain body_weight formula.
func TestSetLoadWeightIgnoredForBodyWeight(t *testing.T) {
	set := models.LoggedSet{Reps: iptr(10), Weight: fptr(25)}
	_, weight := SetLoad(set, models.LoggingModeBodyWeight, fptr(80))
	if weight != 800 {
		t.Errorf("effectiveWeight = %v, want 800 (set weight must be ignored)", weight)
	}
}
