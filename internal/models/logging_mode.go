package models

import "fmt"

// LoggingMode is the fixed scheme an exercise uses to record performance.
// It is a property of the exercise definition, not of an individual workout
// entry, and it decides how a set's effective load is computed.
type LoggingMode int

const (
	// LoggingModeUnknown is the "not yet selected" placeholder. It is never
	// valid for a catalog exercise and never used to compute load directly.
	LoggingModeUnknown LoggingMode = iota
	// LoggingModeWeightAndReps records an absolute weight and a rep count.
	LoggingModeWeightAndReps
	// LoggingModeTimeOnly records a duration; no load, no reps.
	LoggingModeTimeOnly
	// LoggingModeRepsOnly records reps without any weight.
	LoggingModeRepsOnly
	// LoggingModeBodyWeight derives load from the bodyweight snapshot alone.
	LoggingModeBodyWeight
	// LoggingModeBodyWeightPlusExtra derives load from bodyweight plus an
	// additional recorded weight (e.g. weighted pull-ups).
	LoggingModeBodyWeightPlusExtra
	// LoggingModeBodyWeightWithAssistance derives load from bodyweight minus
	// a recorded assistance weight (e.g. assisted dips).
	LoggingModeBodyWeightWithAssistance
)

var loggingModeNames = map[LoggingMode]string{
	LoggingModeUnknown:                  "unknown",
	LoggingModeWeightAndReps:            "weight_and_reps",
	LoggingModeTimeOnly:                 "time_only",
	LoggingModeRepsOnly:                 "reps_only",
	LoggingModeBodyWeight:               "body_weight",
	LoggingModeBodyWeightPlusExtra:      "body_weight_plus_extra",
	LoggingModeBodyWeightWithAssistance: "body_weight_with_assistance",
}

func (m LoggingMode) String() string {
	if name, ok := loggingModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("LoggingMode(%d)", int(m))
}

// Valid reports whether m is a concrete logging mode. Unknown is a UI
// placeholder only and is rejected for catalog exercises.
func (m LoggingMode) Valid() bool {
	return m >= LoggingModeWeightAndReps && m <= LoggingModeBodyWeightWithAssistance
}

// ParseLoggingMode maps a stored integer to a LoggingMode. Out-of-range
// values come back as LoggingModeUnknown rather than an error so that legacy
// rows still aggregate (the calculator falls back to the weight×reps formula).
func ParseLoggingMode(v int) LoggingMode {
	m := LoggingMode(v)
	if m.Valid() {
		return m
	}
	return LoggingModeUnknown
}
