package training

import (
	"reflect"
	"testing"

	"github.com/antonKrizmanic/gymlogger/internal/models"
)

// TestAggregateEndToEnd verifies the worked example: one weight_and_reps
// exercise with sets {10×50} and {8×55} totals 2 sets, 18 reps, 940 weight,
// and the workout totals equal the single entry's totals.
func TestAggregateEndToEnd(t *testing.T) {
	entries := []models.ExerciseEntry{{
		Mode: models.LoggingModeWeightAndReps,
		Sets: []models.LoggedSet{
			{Reps: iptr(10), Weight: fptr(50)},
			{Reps: iptr(8), Weight: fptr(55)},
		},
	}}

	workout, perEntry := Aggregate(entries, nil)

	want := Totals{Sets: 2, Reps: 18, Weight: 940}
	if workout != want {
		t.Errorf("workout totals = %+v, want %+v", workout, want)
	}
	if len(perEntry) != 1 || perEntry[0] != want {
		t.Errorf("entry totals = %+v, want %+v", perEntry, want)
	}
}

// TestAggregateDeterminism verifies that two calls with identical input
// yield identical output. Stored totals and any later recomputation must
// agree exactly.
func TestAggregateDeterminism(t *testing.T) {
	entries := []models.ExerciseEntry{
		{
			Mode: models.LoggingModeBodyWeightPlusExtra,
			Sets: []models.LoggedSet{
				{Reps: iptr(8), Weight: fptr(20)},
				{Reps: iptr(6), Weight: fptr(22.5)},
			},
		},
		{
			Mode: models.LoggingModeRepsOnly,
			Sets: []models.LoggedSet{{Reps: iptr(15)}},
		},
	}
	bw := fptr(71.3)

	w1, e1 := Aggregate(entries, bw)
	w2, e2 := Aggregate(entries, bw)

	if w1 != w2 {
		t.Errorf("workout totals differ: %+v vs %+v", w1, w2)
	}
	if !reflect.DeepEqual(e1, e2) {
		t.Errorf("entry totals differ: %+v vs %+v", e1, e2)
	}
}

// TestAggregateAdditivity verifies that the workout total is the sum of the
// per-entry totals across mixed logging modes.
func TestAggregateAdditivity(t *testing.T) {
	entries := []models.ExerciseEntry{
		{Mode: models.LoggingModeWeightAndReps, Sets: []models.LoggedSet{{Reps: iptr(10), Weight: fptr(60)}}},
		{Mode: models.LoggingModeBodyWeight, Sets: []models.LoggedSet{{Reps: iptr(12)}}},
		{Mode: models.LoggingModeTimeOnly, Sets: []models.LoggedSet{{TimeSec: iptr(60)}, {TimeSec: iptr(45)}}},
	}

	workout, perEntry := Aggregate(entries, fptr(75))

	var sum Totals
	for _, e := range perEntry {
		sum.add(e)
	}
	if workout != sum {
		t.Errorf("workout totals %+v != sum of entry totals %+v", workout, sum)
	}
	// Sanity: time_only contributes set count but no reps or weight.
	if perEntry[2].Sets != 2 || perEntry[2].Reps != 0 || perEntry[2].Weight != 0 {
		t.Errorf("time_only entry totals = %+v, want {2 0 0}", perEntry[2])
	}
}

// TestAggregateEmpty verifies that a workout with no entries produces
// all-zero totals rather than an error.
func TestAggregateEmpty(t *testing.T) {
	workout, perEntry := Aggregate(nil, nil)
	if workout != (Totals{}) {
		t.Errorf("workout totals = %+v, want zero", workout)
	}
	if len(perEntry) != 0 {
		t.Errorf("perEntry length = %d, want 0", len(perEntry))
	}
}

// TestApplyTotals verifies that ApplyTotals overwrites stored totals on the
// workout and each entry from the current sets.
func TestApplyTotals(t *testing.T) {
	w := &models.WorkoutRecord{
		UserWeight: fptr(70),
		Entries: []models.ExerciseEntry{
			{
				Mode: models.LoggingModeBodyWeight,
				Sets: []models.LoggedSet{{Reps: iptr(10)}},
				// Stale totals that must be replaced, not merged.
				TotalSets: 99, TotalReps: 99, TotalWeight: 9999,
			},
		},
		TotalSets: 99, TotalReps: 99, TotalWeight: 9999,
	}

	ApplyTotals(w)

	if w.Entries[0].TotalSets != 1 || w.Entries[0].TotalReps != 10 || w.Entries[0].TotalWeight != 700 {
		t.Errorf("entry totals = {%d %d %v}, want {1 10 700}",
			w.Entries[0].TotalSets, w.Entries[0].TotalReps, w.Entries[0].TotalWeight)
	}
	if w.TotalSets != 1 || w.TotalReps != 10 || w.TotalWeight != 700 {
		t.Errorf("workout totals = {%d %d %v}, want {1 10 700}", w.TotalSets, w.TotalReps, w.TotalWeight)
	}
}
