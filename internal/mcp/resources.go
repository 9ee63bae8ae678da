package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/antonKrizmanic/gymlogger/internal/training"
	"github.com/mark3labs/mcp-go/mcp"
)

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) dashboardResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uid := UserIDFromContext(ctx)

	workouts, err := h.ds.AllWorkoutSummaries(ctx, uid)
	if err != nil {
		return nil, err
	}

	dash := training.BuildDashboard(workouts, time.Now())
	if dash == nil {
		return jsonResource(req.Params.URI, map[string]any{"workouts": 0})
	}
	return jsonResource(req.Params.URI, dash)
}

func (h *handlers) recentWorkouts(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uid := UserIDFromContext(ctx)
	end := time.Now()
	start := end.AddDate(0, 0, -14)

	workouts, err := h.ds.AllWorkoutSummaries(ctx, uid)
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, filterByDate(workouts, start, end))
}

func (h *handlers) exerciseCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uid := UserIDFromContext(ctx)

	groups, err := h.ds.ListMuscleGroups(ctx)
	if err != nil {
		return nil, err
	}
	exercises, err := h.ds.ListExercises(ctx, uid)
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, map[string]any{
		"muscleGroups": groups,
		"exercises":    exercises,
	})
}
