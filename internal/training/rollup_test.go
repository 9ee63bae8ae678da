package training

import (
	"testing"
	"time"

	"github.com/antonKrizmanic/gymlogger/internal/models"
	"github.com/google/uuid"
)

func summary(date time.Time, sets, reps int, weight float64) models.WorkoutSummary {
	return models.WorkoutSummary{
		ID: uuid.New(), Name: "w", Date: date,
		TotalSets: sets, TotalReps: reps, TotalWeight: weight,
	}
}

// TestBuildDashboardNoData verifies the no-data sentinel: zero workouts
// yield nil, not an all-zero snapshot. The UI renders onboarding from this.
func TestBuildDashboardNoData(t *testing.T) {
	if d := BuildDashboard(nil, time.Now()); d != nil {
		t.Fatalf("BuildDashboard(nil) = %+v, want nil", d)
	}
	if d := BuildDashboard([]models.WorkoutSummary{}, time.Now()); d != nil {
		t.Fatalf("BuildDashboard(empty) = %+v, want nil", d)
	}
}

// TestWeekStart verifies the Monday-start week boundary: from a Wednesday
// reference, the window starts the Monday two days prior at midnight; a
// Monday reference is its own week start; Sunday goes six days back.
func TestWeekStart(t *testing.T) {
	loc := time.Local
	tests := []struct {
		name string
		ref  time.Time
		want time.Time
	}{
		{"wednesday", time.Date(2025, 6, 18, 15, 30, 0, 0, loc), time.Date(2025, 6, 16, 0, 0, 0, 0, loc)},
		{"monday", time.Date(2025, 6, 16, 9, 0, 0, 0, loc), time.Date(2025, 6, 16, 0, 0, 0, 0, loc)},
		{"sunday", time.Date(2025, 6, 22, 23, 59, 0, 0, loc), time.Date(2025, 6, 16, 0, 0, 0, 0, loc)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekStart(tt.ref); !got.Equal(tt.want) {
				t.Errorf("WeekStart(%v) = %v, want %v", tt.ref, got, tt.want)
			}
		})
	}
}

// TestWeekWindowBoundary verifies inclusion at exactly Monday midnight and
// exclusion a moment earlier.
func TestWeekWindowBoundary(t *testing.T) {
	loc := time.Local
	ref := time.Date(2025, 6, 18, 12, 0, 0, 0, loc) // Wednesday
	monday := time.Date(2025, 6, 16, 0, 0, 0, 0, loc)

	onBoundary := BuildDashboard([]models.WorkoutSummary{summary(monday, 3, 30, 500)}, ref)
	if onBoundary.WorkoutsThisWeek != 1 {
		t.Errorf("workout at Monday midnight: workoutsThisWeek = %d, want 1", onBoundary.WorkoutsThisWeek)
	}

	justBefore := BuildDashboard([]models.WorkoutSummary{summary(monday.Add(-time.Millisecond), 3, 30, 500)}, ref)
	if justBefore.WorkoutsThisWeek != 0 {
		t.Errorf("workout 1ms before Monday: workoutsThisWeek = %d, want 0", justBefore.WorkoutsThisWeek)
	}
}

// TestWindowsOpenEndedUpward verifies that future-dated workouts count
// toward the week, month, and year windows. This mirrors the reference
// behavior of filtering only on the lower bound.
func TestWindowsOpenEndedUpward(t *testing.T) {
	ref := time.Date(2025, 6, 18, 12, 0, 0, 0, time.Local)
	future := summary(ref.AddDate(0, 0, 3), 4, 40, 800)

	d := BuildDashboard([]models.WorkoutSummary{future}, ref)
	if d.WorkoutsThisWeek != 1 || d.WorkoutsThisMonth != 1 || d.WorkoutsThisYear != 1 {
		t.Errorf("future workout counts = (%d, %d, %d), want (1, 1, 1)",
			d.WorkoutsThisWeek, d.WorkoutsThisMonth, d.WorkoutsThisYear)
	}
}

// TestWindowSums verifies the per-window count/series/weight sums with
// workouts spread across week, month, and year boundaries.
func TestWindowSums(t *testing.T) {
	loc := time.Local
	ref := time.Date(2025, 6, 18, 12, 0, 0, 0, loc) // Wednesday, week starts Jun 16

	workouts := []models.WorkoutSummary{
		summary(time.Date(2025, 6, 17, 10, 0, 0, 0, loc), 3, 30, 500),   // this week
		summary(time.Date(2025, 6, 2, 10, 0, 0, 0, loc), 4, 40, 700),    // this month, not this week
		summary(time.Date(2025, 2, 10, 10, 0, 0, 0, loc), 5, 50, 900),   // this year only
		summary(time.Date(2024, 12, 30, 10, 0, 0, 0, loc), 6, 60, 1100), // previous year
	}

	d := BuildDashboard(workouts, ref)

	if d.WorkoutsCount != 4 {
		t.Errorf("workoutsCount = %d, want 4", d.WorkoutsCount)
	}
	if d.WorkoutsThisWeek != 1 || d.SeriesThisWeek != 3 || d.WeightThisWeek != 500 {
		t.Errorf("week = (%d, %d, %v), want (1, 3, 500)", d.WorkoutsThisWeek, d.SeriesThisWeek, d.WeightThisWeek)
	}
	if d.WorkoutsThisMonth != 2 || d.SeriesThisMonth != 7 || d.WeightThisMonth != 1200 {
		t.Errorf("month = (%d, %d, %v), want (2, 7, 1200)", d.WorkoutsThisMonth, d.SeriesThisMonth, d.WeightThisMonth)
	}
	if d.WorkoutsThisYear != 3 || d.SeriesThisYear != 12 || d.WeightThisYear != 2100 {
		t.Errorf("year = (%d, %d, %v), want (3, 12, 2100)", d.WorkoutsThisYear, d.SeriesThisYear, d.WeightThisYear)
	}
}

// TestDailySeriesZeroFill verifies the daily series covers every day of a
// 30-day month with zero-filled gaps: workouts on 2 days leave 28 all-zero
// entries, in ascending date order.
func TestDailySeriesZeroFill(t *testing.T) {
	loc := time.Local
	ref := time.Date(2025, 6, 15, 12, 0, 0, 0, loc) // June has 30 days

	workouts := []models.WorkoutSummary{
		summary(time.Date(2025, 6, 3, 18, 0, 0, 0, loc), 3, 30, 500),
		summary(time.Date(2025, 6, 12, 7, 30, 0, 0, loc), 4, 40, 700),
	}

	d := BuildDashboard(workouts, ref)

	if len(d.WorkoutsByDate) != 30 {
		t.Fatalf("series length = %d, want 30", len(d.WorkoutsByDate))
	}

	zero := 0
	for i, day := range d.WorkoutsByDate {
		wantDate := time.Date(2025, 6, i+1, 0, 0, 0, 0, loc).Format("2006-01-02")
		if day.Date != wantDate {
			t.Errorf("series[%d].date = %q, want %q", i, day.Date, wantDate)
		}
		if day.Weight == 0 && day.Series == 0 && day.Reps == 0 {
			zero++
		}
	}
	if zero != 28 {
		t.Errorf("zero-filled days = %d, want 28", zero)
	}

	if got := d.WorkoutsByDate[2]; got.Weight != 500 || got.Series != 3 || got.Reps != 30 {
		t.Errorf("series[2] = %+v, want weight 500, series 3, reps 30", got)
	}
	if got := d.WorkoutsByDate[11]; got.Weight != 700 || got.Series != 4 || got.Reps != 40 {
		t.Errorf("series[11] = %+v, want weight 700, series 4, reps 40", got)
	}
}

// TestDailySeriesSumsSameDay verifies that two workouts on one calendar day
// sum into a single bucket.
func TestDailySeriesSumsSameDay(t *testing.T) {
	loc := time.Local
	ref := time.Date(2025, 2, 10, 12, 0, 0, 0, loc)

	workouts := []models.WorkoutSummary{
		summary(time.Date(2025, 2, 10, 7, 0, 0, 0, loc), 3, 30, 500),
		summary(time.Date(2025, 2, 10, 19, 0, 0, 0, loc), 2, 20, 300),
	}

	d := BuildDashboard(workouts, ref)
	if len(d.WorkoutsByDate) != 28 {
		t.Fatalf("series length = %d, want 28 for February 2025", len(d.WorkoutsByDate))
	}
	got := d.WorkoutsByDate[9]
	if got.Weight != 800 || got.Series != 5 || got.Reps != 50 {
		t.Errorf("series[9] = %+v, want weight 800, series 5, reps 50", got)
	}
}

// TestLastWorkout verifies the last workout is the most recent by date
// regardless of input order.
func TestLastWorkout(t *testing.T) {
	loc := time.Local
	older := summary(time.Date(2025, 6, 1, 10, 0, 0, 0, loc), 1, 10, 100)
	newer := summary(time.Date(2025, 6, 14, 10, 0, 0, 0, loc), 2, 20, 200)

	d := BuildDashboard([]models.WorkoutSummary{newer, older}, time.Date(2025, 6, 15, 0, 0, 0, 0, loc))
	if d.LastWorkout == nil || d.LastWorkout.ID != newer.ID {
		t.Errorf("lastWorkout = %+v, want the June 14 workout", d.LastWorkout)
	}
}

// TestFavoriteMuscleGroup verifies the favorite is the group with the most
// workouts over the whole history (not window-scoped), with ties broken by
// first encounter, and that duplicate entries within one workout count once.
func TestFavoriteMuscleGroup(t *testing.T) {
	loc := time.Local
	back := models.MuscleGroupRef{ID: 1, Name: "Back"}
	legs := models.MuscleGroupRef{ID: 2, Name: "Legs"}

	w1 := summary(time.Date(2024, 1, 5, 0, 0, 0, 0, loc), 1, 1, 1)
	w1.MuscleGroups = []models.MuscleGroupRef{back, legs}
	w2 := summary(time.Date(2024, 2, 5, 0, 0, 0, 0, loc), 1, 1, 1)
	w2.MuscleGroups = []models.MuscleGroupRef{legs, legs} // dedup within workout
	w3 := summary(time.Date(2025, 6, 5, 0, 0, 0, 0, loc), 1, 1, 1)
	w3.MuscleGroups = []models.MuscleGroupRef{back}

	d := BuildDashboard([]models.WorkoutSummary{w1, w2, w3}, time.Date(2025, 6, 15, 0, 0, 0, 0, loc))
	// Back: 2 workouts, Legs: 2 workouts — tie goes to Back (seen first).
	if d.FavoriteMuscleGroupName != "Back" {
		t.Errorf("favoriteMuscleGroupName = %q, want %q", d.FavoriteMuscleGroupName, "Back")
	}
}
