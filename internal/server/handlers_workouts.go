package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/antonKrizmanic/gymlogger/internal/models"
	"github.com/antonKrizmanic/gymlogger/internal/storage"
	"github.com/antonKrizmanic/gymlogger/internal/training"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// workoutPayload is the request body for creating or updating a workout.
// Logging modes and names are resolved from the exercise catalog server-side;
// clients only send exercise IDs and raw sets.
type workoutPayload struct {
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Exercises   []struct {
		ExerciseID uuid.UUID          `json:"exerciseId"`
		Sets       []models.LoggedSet `json:"sets"`
	} `json:"exercises"`
}

// buildWorkout resolves the payload's exercise IDs against the catalog and
// assembles a WorkoutRecord without totals. Unknown exercise IDs are a client
// error.
func (s *Server) buildWorkout(r *http.Request, userID int, p workoutPayload) (*models.WorkoutRecord, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, errors.New("name is required")
	}
	if p.Date.IsZero() {
		return nil, errors.New("date is required")
	}

	ids := make([]uuid.UUID, 0, len(p.Exercises))
	for _, e := range p.Exercises {
		ids = append(ids, e.ExerciseID)
	}
	catalog, err := s.store.GetExercisesByIDs(r.Context(), ids, userID)
	if err != nil {
		return nil, err
	}

	w := &models.WorkoutRecord{
		UserID:      userID,
		Name:        strings.TrimSpace(p.Name),
		Date:        p.Date,
		Description: p.Description,
		Entries:     make([]models.ExerciseEntry, 0, len(p.Exercises)),
	}
	for _, e := range p.Exercises {
		ex, ok := catalog[e.ExerciseID]
		if !ok {
			return nil, errors.New("unknown exercise: " + e.ExerciseID.String())
		}
		w.Entries = append(w.Entries, models.ExerciseEntry{
			ExerciseID:    ex.ID,
			ExerciseName:  ex.Name,
			MuscleGroupID: ex.MuscleGroupID,
			Mode:          ex.Mode,
			Sets:          e.Sets,
		})
	}
	return w, nil
}

func (s *Server) handleCreateWorkout(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	var p workoutPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	workout, err := s.buildWorkout(r, uid, p)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	// Snapshot the user's current bodyweight so later profile edits never
	// change this workout's totals.
	user, err := s.store.GetUserByID(r.Context(), uid)
	if err != nil {
		s.log.Error("loading user for bodyweight snapshot", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "create failed"})
		return
	}
	workout.ID = uuid.New()
	workout.UserWeight = user.CurrentWeight
	training.ApplyTotals(workout)

	if err := s.store.CreateWorkout(r.Context(), workout); err != nil {
		s.log.Error("creating workout", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "create failed"})
		return
	}

	created, err := s.store.GetWorkout(r.Context(), workout.ID, uid)
	if err != nil {
		s.log.Error("reloading created workout", "error", err)
		writeJSON(w, http.StatusCreated, workout)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateWorkout(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid workout id"})
		return
	}

	existing, err := s.store.GetWorkout(r.Context(), id, uid)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
		return
	}
	if err != nil {
		s.log.Error("loading workout", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "update failed"})
		return
	}

	var p workoutPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	workout, err := s.buildWorkout(r, uid, p)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	// Edits recompute totals against the bodyweight snapshot stored at
	// creation, not the user's current weight.
	workout.ID = existing.ID
	workout.UserWeight = existing.UserWeight
	workout.CreatedAt = existing.CreatedAt
	training.ApplyTotals(workout)

	if err := s.store.UpdateWorkout(r.Context(), workout); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
			return
		}
		s.log.Error("updating workout", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "update failed"})
		return
	}

	updated, err := s.store.GetWorkout(r.Context(), id, uid)
	if err != nil {
		s.log.Error("reloading updated workout", "error", err)
		writeJSON(w, http.StatusOK, workout)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid workout id"})
		return
	}

	workout, err := s.store.GetWorkout(r.Context(), id, uid)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
		return
	}
	if err != nil {
		s.log.Error("loading workout", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "load failed"})
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	opts := storage.ListOptions{
		Search:  q.Get("search"),
		SortAsc: q.Get("sort") == "asc",
	}
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		opts.Page = v
	}
	if v, err := strconv.Atoi(q.Get("pageSize")); err == nil {
		opts.PageSize = v
	}

	workouts, total, err := s.store.ListWorkouts(r.Context(), uid, opts)
	if err != nil {
		s.log.Error("listing workouts", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "list failed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items": workouts,
		"total": total,
	})
}

func (s *Server) handleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid workout id"})
		return
	}

	if err := s.store.DeleteWorkout(r.Context(), id, uid); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
			return
		}
		s.log.Error("deleting workout", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "delete failed"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
