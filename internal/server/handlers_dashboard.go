package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/antonKrizmanic/gymlogger/internal/models"
	"github.com/antonKrizmanic/gymlogger/internal/training"
	"github.com/google/uuid"
)

// handleDashboard builds the aggregate dashboard from all of the user's
// workout summaries. No workouts means 204, not an empty dashboard.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	workouts, err := s.store.AllWorkoutSummaries(r.Context(), uid)
	if err != nil {
		s.log.Error("loading workout summaries", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "dashboard failed"})
		return
	}

	dash := training.BuildDashboard(workouts, s.now())
	if dash == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, dash)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	stats, err := s.store.GetDataStats(r.Context(), uid)
	if err != nil {
		s.log.Error("loading stats", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "stats failed"})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleImportLogs(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	limit := 50
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	logs, err := s.store.QueryImportLogs(r.Context(), uid, limit)
	if err != nil {
		s.log.Error("loading import logs", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "import logs failed"})
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

func (s *Server) handleListMuscleGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := s.store.ListMuscleGroups(r.Context())
	if err != nil {
		s.log.Error("loading muscle groups", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "list failed"})
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	exercises, err := s.store.ListExercises(r.Context(), uid)
	if err != nil {
		s.log.Error("loading exercises", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "list failed"})
		return
	}
	writeJSON(w, http.StatusOK, exercises)
}

func (s *Server) handleCreateExercise(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	var req struct {
		Name          string `json:"name"`
		MuscleGroupID int    `json:"muscleGroupId"`
		LoggingMode   int    `json:"loggingMode"`
		Description   string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	mode := models.ParseLoggingMode(req.LoggingMode)
	if !mode.Valid() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid logging mode"})
		return
	}

	e := models.Exercise{
		ID:            uuid.New(),
		UserID:        &uid,
		Name:          req.Name,
		MuscleGroupID: req.MuscleGroupID,
		Mode:          mode,
		Description:   req.Description,
	}
	if err := s.store.CreateExercise(r.Context(), e); err != nil {
		s.log.Error("creating exercise", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "create failed"})
		return
	}
	writeJSON(w, http.StatusCreated, e)
}
