package training

import (
	"time"

	"github.com/antonKrizmanic/gymlogger/internal/models"
)

// Dashboard is the request-time view of a user's training history. It is
// never persisted; every dashboard request rebuilds it from current workout
// rows.
type Dashboard struct {
	LastWorkout             *models.WorkoutSummary `json:"lastWorkout"`
	FavoriteMuscleGroupName string                 `json:"favoriteMuscleGroupName"`
	WorkoutsCount           int                    `json:"workoutsCount"`
	WorkoutsThisWeek        int                    `json:"workoutsThisWeek"`
	WorkoutsThisMonth       int                    `json:"workoutsThisMonth"`
	WorkoutsThisYear        int                    `json:"workoutsThisYear"`
	SeriesThisWeek          int                    `json:"seriesThisWeek"`
	SeriesThisMonth         int                    `json:"seriesThisMonth"`
	SeriesThisYear          int                    `json:"seriesThisYear"`
	WeightThisWeek          float64                `json:"weightThisWeek"`
	WeightThisMonth         float64                `json:"weightThisMonth"`
	WeightThisYear          float64                `json:"weightThisYear"`
	WorkoutsByDate          []DaySummary           `json:"workoutsByDate"`
}

// DaySummary is one calendar day of the current month's daily series.
type DaySummary struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
	Series int     `json:"series"`
	Reps   int     `json:"reps"`
}

// WeekStart returns the most recent Monday at 00:00:00 in ref's location.
// If ref itself is a Monday, that Monday is the start.
func WeekStart(ref time.Time) time.Time {
	daysSinceMonday := (int(ref.Weekday()) + 6) % 7
	return time.Date(ref.Year(), ref.Month(), ref.Day()-daysSinceMonday, 0, 0, 0, 0, ref.Location())
}

// MonthStart returns the first day of ref's calendar month at 00:00:00.
func MonthStart(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
}

// YearStart returns January 1 of ref's calendar year at 00:00:00.
func YearStart(ref time.Time) time.Time {
	return time.Date(ref.Year(), 1, 1, 0, 0, 0, 0, ref.Location())
}

// BuildDashboard rolls a user's workouts up into the dashboard view for the
// given reference date. Returns nil when there are no workouts at all, so
// callers can distinguish "no data yet" from totals that sum to zero.
//
// The week/month/year windows are open-ended upward (date >= window start);
// a future-dated workout counts toward all of them. The daily series covers
// every calendar day of ref's month, zero-filled, in ascending order.
func BuildDashboard(workouts []models.WorkoutSummary, ref time.Time) *Dashboard {
	if len(workouts) == 0 {
		return nil
	}

	d := &Dashboard{
		WorkoutsCount:           len(workouts),
		FavoriteMuscleGroupName: favoriteMuscleGroup(workouts),
	}

	weekStart := WeekStart(ref)
	monthStart := MonthStart(ref)
	yearStart := YearStart(ref)

	for i, w := range workouts {
		if d.LastWorkout == nil || w.Date.After(d.LastWorkout.Date) {
			d.LastWorkout = &workouts[i]
		}
		if !w.Date.Before(weekStart) {
			d.WorkoutsThisWeek++
			d.SeriesThisWeek += w.TotalSets
			d.WeightThisWeek += w.TotalWeight
		}
		if !w.Date.Before(monthStart) {
			d.WorkoutsThisMonth++
			d.SeriesThisMonth += w.TotalSets
			d.WeightThisMonth += w.TotalWeight
		}
		if !w.Date.Before(yearStart) {
			d.WorkoutsThisYear++
			d.SeriesThisYear += w.TotalSets
			d.WeightThisYear += w.TotalWeight
		}
	}

	d.WorkoutsByDate = dailySeries(workouts, ref)
	return d
}

// dailySeries partitions workouts by exact calendar day across ref's month.
// The result always has one entry per day of the month, never sparse.
func dailySeries(workouts []models.WorkoutSummary, ref time.Time) []DaySummary {
	daysInMonth := time.Date(ref.Year(), ref.Month()+1, 0, 0, 0, 0, 0, ref.Location()).Day()

	series := make([]DaySummary, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		dayStart := time.Date(ref.Year(), ref.Month(), day, 0, 0, 0, 0, ref.Location())
		dayEnd := dayStart.AddDate(0, 0, 1)

		entry := DaySummary{Date: dayStart.Format("2006-01-02")}
		for _, w := range workouts {
			if !w.Date.Before(dayStart) && w.Date.Before(dayEnd) {
				entry.Weight += w.TotalWeight
				entry.Series += w.TotalSets
				entry.Reps += w.TotalReps
			}
		}
		series[day-1] = entry
	}
	return series
}

// favoriteMuscleGroup returns the muscle group appearing in the most
// workouts, over the user's whole history. Ties go to the group encountered
// first, which is stable for a fixed input order.
func favoriteMuscleGroup(workouts []models.WorkoutSummary) string {
	counts := make(map[int]int)
	names := make(map[int]string)
	var order []int

	for _, w := range workouts {
		inWorkout := make(map[int]bool, len(w.MuscleGroups))
		for _, g := range w.MuscleGroups {
			if inWorkout[g.ID] {
				continue
			}
			inWorkout[g.ID] = true
			if _, seen := counts[g.ID]; !seen {
				order = append(order, g.ID)
				names[g.ID] = g.Name
			}
			counts[g.ID]++
		}
	}

	best := ""
	bestCount := 0
	for _, id := range order {
		if counts[id] > bestCount {
			best = names[id]
			bestCount = counts[id]
		}
	}
	return best
}
