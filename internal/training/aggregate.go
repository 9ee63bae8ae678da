package training

import "github.com/antonKrizmanic/gymlogger/internal/models"

// Totals is the summed contribution of a set collection: set count, rep
// count, and effective weight.
type Totals struct {
	Sets   int     `json:"totalSets"`
	Reps   int     `json:"totalReps"`
	Weight float64 `json:"totalWeight"`
}

func (t *Totals) add(o Totals) {
	t.Sets += o.Sets
	t.Reps += o.Reps
	t.Weight += o.Weight
}

// EntryTotals sums SetLoad over one exercise entry's sets. Every set counts
// toward Sets, including sets with no numbers recorded.
func EntryTotals(entry models.ExerciseEntry, bodyweight *float64) Totals {
	t := Totals{Sets: len(entry.Sets)}
	for _, set := range entry.Sets {
		reps, weight := SetLoad(set, entry.Mode, bodyweight)
		t.Reps += reps
		t.Weight += weight
	}
	return t
}

// Aggregate computes workout-level and per-entry totals for a workout's
// entries against the given bodyweight snapshot. It is pure and
// deterministic: identical input always yields identical output, so stored
// totals written at creation time and any later recomputation agree exactly.
// The workout total is by construction the sum of the entry totals.
func Aggregate(entries []models.ExerciseEntry, bodyweight *float64) (workout Totals, perEntry []Totals) {
	perEntry = make([]Totals, len(entries))
	for i, entry := range entries {
		perEntry[i] = EntryTotals(entry, bodyweight)
		workout.add(perEntry[i])
	}
	return workout, perEntry
}

// ApplyTotals runs Aggregate and writes the results back onto the workout
// and its entries, replacing whatever stored totals were there. This is the
// single mutation path for totals; nothing patches them incrementally.
func ApplyTotals(w *models.WorkoutRecord) {
	workout, perEntry := Aggregate(w.Entries, w.UserWeight)
	for i := range w.Entries {
		w.Entries[i].TotalSets = perEntry[i].Sets
		w.Entries[i].TotalReps = perEntry[i].Reps
		w.Entries[i].TotalWeight = perEntry[i].Weight
	}
	w.TotalSets = workout.Sets
	w.TotalReps = workout.Reps
	w.TotalWeight = workout.Weight
}
