package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/antonKrizmanic/gymlogger/internal/models"
	"github.com/antonKrizmanic/gymlogger/internal/storage"
	"github.com/antonKrizmanic/gymlogger/internal/training"
	"github.com/google/uuid"
)

// Stats tracks import progress.
type Stats struct {
	FilesProcessed int
	FilesSkipped   int
	FilesErrored   int

	WorkoutsInserted   int
	WorkoutsDuplicated int

	UnknownExercises []string
}

// exportWorkout is the on-disk shape of one exported workout file. Exercises
// are referenced by name; the importer resolves them against the catalog.
type exportWorkout struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Date        time.Time     `json:"date"`
	Description string        `json:"description"`
	UserWeight  *float64      `json:"userWeight"`
	Exercises   []exportEntry `json:"exercises"`
}

type exportEntry struct {
	Exercise string             `json:"exercise"`
	Sets     []models.LoggedSet `json:"sets"`
}

// Importer reads exported workout JSON files and inserts them into the DB.
type Importer struct {
	db     *storage.DB
	log    *slog.Logger
	userID int
	dryRun bool
	stats  Stats
}

// New creates a new Importer. All imported workouts are attributed to userID.
func New(db *storage.DB, log *slog.Logger, userID int, dryRun bool) *Importer {
	return &Importer{db: db, log: log, userID: userID, dryRun: dryRun}
}

// Import processes all .json files under dir. The state database is used to
// skip files that were already imported with identical content.
func (imp *Importer) Import(ctx context.Context, dir string, state *StateDB) (*Stats, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return &imp.stats, err
	}

	catalog, err := imp.loadCatalog(ctx)
	if err != nil {
		return &imp.stats, fmt.Errorf("loading exercise catalog: %w", err)
	}

	unknownSet := map[string]bool{}

	for _, f := range files {
		info, err := os.Stat(f)
		if err != nil {
			imp.stats.FilesErrored++
			continue
		}
		hash, err := HashFile(f)
		if err != nil {
			imp.log.Warn("hashing failed", "file", f, "error", err)
			imp.stats.FilesErrored++
			continue
		}

		rel := filepath.Base(f)
		if state != nil {
			done, err := state.IsImported(rel, info.Size(), hash)
			if err != nil {
				return &imp.stats, fmt.Errorf("checking state for %s: %w", rel, err)
			}
			if done {
				imp.stats.FilesSkipped++
				continue
			}
		}

		data, err := os.ReadFile(f)
		if err != nil {
			imp.log.Warn("read failed", "file", f, "error", err)
			imp.stats.FilesErrored++
			continue
		}

		var export exportWorkout
		if err := json.Unmarshal(data, &export); err != nil {
			imp.log.Warn("parse failed", "file", f, "error", err)
			imp.stats.FilesErrored++
			continue
		}

		workout, unknown, err := buildRecord(export, imp.userID, catalog)
		if err != nil {
			imp.log.Warn("invalid export", "file", f, "error", err)
			imp.stats.FilesErrored++
			continue
		}
		for _, name := range unknown {
			if !unknownSet[name] {
				imp.stats.UnknownExercises = append(imp.stats.UnknownExercises, name)
				unknownSet[name] = true
			}
			imp.log.Info("skipping entry (exercise not in catalog)", "exercise", name, "file", rel)
		}

		imp.stats.FilesProcessed++
		if imp.dryRun {
			imp.stats.WorkoutsInserted++
			continue
		}

		inserted, err := imp.insertWorkout(ctx, workout)
		if err != nil {
			return &imp.stats, fmt.Errorf("inserting workout from %s: %w", rel, err)
		}
		if inserted {
			imp.stats.WorkoutsInserted++
		} else {
			imp.stats.WorkoutsDuplicated++
		}

		if state != nil {
			if err := state.MarkImported(rel, info.Size(), hash); err != nil {
				return &imp.stats, fmt.Errorf("marking %s imported: %w", rel, err)
			}
		}
	}

	return &imp.stats, nil
}

// loadCatalog maps lowercased exercise names to catalog entries.
func (imp *Importer) loadCatalog(ctx context.Context) (map[string]models.Exercise, error) {
	exercises, err := imp.db.ListExercises(ctx, imp.userID)
	if err != nil {
		return nil, err
	}
	catalog := make(map[string]models.Exercise, len(exercises))
	for _, e := range exercises {
		catalog[strings.ToLower(e.Name)] = e
	}
	return catalog, nil
}

// buildRecord converts an export file into a WorkoutRecord with computed
// totals. Entries whose exercise name is not in the catalog are skipped and
// their names returned.
func buildRecord(export exportWorkout, userID int, catalog map[string]models.Exercise) (*models.WorkoutRecord, []string, error) {
	if strings.TrimSpace(export.Name) == "" {
		return nil, nil, errors.New("workout has no name")
	}
	if export.Date.IsZero() {
		return nil, nil, errors.New("workout has no date")
	}

	id := uuid.New()
	if export.ID != "" {
		parsed, err := uuid.Parse(export.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid workout id %q: %w", export.ID, err)
		}
		id = parsed
	}

	w := &models.WorkoutRecord{
		ID:          id,
		UserID:      userID,
		Name:        export.Name,
		Date:        export.Date,
		Description: export.Description,
		UserWeight:  export.UserWeight,
	}

	var unknown []string
	for _, entry := range export.Exercises {
		ex, ok := catalog[strings.ToLower(entry.Exercise)]
		if !ok {
			unknown = append(unknown, entry.Exercise)
			continue
		}
		w.Entries = append(w.Entries, models.ExerciseEntry{
			ExerciseID:    ex.ID,
			ExerciseName:  ex.Name,
			MuscleGroupID: ex.MuscleGroupID,
			Mode:          ex.Mode,
			Sets:          entry.Sets,
		})
	}

	training.ApplyTotals(w)
	return w, unknown, nil
}

// insertWorkout stores the workout unless one with the same ID already
// exists for this user.
func (imp *Importer) insertWorkout(ctx context.Context, w *models.WorkoutRecord) (bool, error) {
	_, err := imp.db.GetWorkout(ctx, w.ID, imp.userID)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return false, err
	}
	if err := imp.db.CreateWorkout(ctx, w); err != nil {
		return false, err
	}
	return true, nil
}
