// Package training is the load-aggregation engine: per-set effective load,
// per-workout totals, and the calendar rollup behind the dashboard. Every
// call site that needs a total goes through this package; the per-mode
// formula is never re-derived in SQL or in a handler.
package training

import "github.com/antonKrizmanic/gymlogger/internal/models"

// SetLoad computes one set's contribution: its rep count and its effective
// weight (weight × reps after applying the logging-mode formula).
//
// Missing numeric fields count as zero, never as errors — a blank set
// contributes nothing instead of aborting the aggregate. A nil bodyweight
// behaves as zero for the bodyweight-derived modes, which yields a zero load;
// that is the documented behavior for users who never recorded a weight.
// Unrecognized modes fall back to the weight×reps formula so that legacy
// rows keep aggregating.
func SetLoad(set models.LoggedSet, mode models.LoggingMode, bodyweight *float64) (reps int, effectiveWeight float64) {
	r := intOrZero(set.Reps)
	w := floatOrZero(set.Weight)
	bw := floatOrZero(bodyweight)

	switch mode {
	case models.LoggingModeTimeOnly:
		return 0, 0
	case models.LoggingModeRepsOnly:
		return r, 0
	case models.LoggingModeBodyWeight:
		return r, bw * float64(r)
	case models.LoggingModeBodyWeightPlusExtra:
		return r, (bw + w) * float64(r)
	case models.LoggingModeBodyWeightWithAssistance:
		// Assistance above bodyweight legitimately yields a negative load;
		// this is a pass-through arithmetic contract, not a plausibility check.
		return r, (bw - w) * float64(r)
	default:
		// WeightAndReps, Unknown, and anything out of range.
		return r, w * float64(r)
	}
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
