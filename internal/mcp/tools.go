package mcp

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/zacharyschulte/ironlog/internal/models"
	"github.com/zacharyschulte/ironlog/internal/progress"
)

// defaultTimeRange returns start/end defaulting to the last 30 days.
func defaultTimeRange(startStr, endStr string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if endStr != "" {
		end, err = parseFlexTime(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		end = time.Now()
	}

	if startStr != "" {
		start, err = parseFlexTime(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		start = end.AddDate(0, 0, -30)
	}

	return start, end, nil
}

func parseFlexTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse("2006-01-02", s)
	if err == nil {
		return t, nil
	}
	return time.Time{}, err
}

// --- Tool definitions ---

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List exercises in the catalog with their working weights, estimated 1RMs and trend."),
	mcp.WithString("category", mcp.Description("Filter by category"), mcp.Enum("strength", "cardio")),
	mcp.WithBoolean("favorites_only", mcp.Description("Only return favorited exercises")),
)

var toolGetExerciseProgress = mcp.NewTool("get_exercise_progress",
	mcp.WithDescription("Strength-level classification for one exercise: current level, progress to the next level, the full standards table, and any active progression plan."),
	mcp.WithString("exercise_id", mcp.Required(), mcp.Description("Exercise id (e.g. bench-press, back-squat)")),
)

var toolGetWorkoutHistory = mcp.NewTool("get_workout_history",
	mcp.WithDescription("Finished workouts, newest first, including exercises performed, sets, notes, and personal records achieved."),
	mcp.WithString("start", mcp.Description("Start date (ISO 8601 or YYYY-MM-DD). Defaults to 30 days ago.")),
	mcp.WithString("end", mcp.Description("End date (ISO 8601 or YYYY-MM-DD). Defaults to now.")),
	mcp.WithString("template", mcp.Description("Filter by template name (exact match)")),
)

var toolGetPersonalRecords = mcp.NewTool("get_personal_records",
	mcp.WithDescription("Personal records: max 1RM and max weight for strength exercises, longest time and highest resistance for cardio."),
	mcp.WithString("exercise_id", mcp.Description("Limit to one exercise. Omit for all exercises with records.")),
)

var toolSuggestGoals = mcp.NewTool("suggest_goals",
	mcp.WithDescription("Suggested working-weight goals for an exercise: next increment, plate milestones, and strength-level thresholds."),
	mcp.WithString("exercise_id", mcp.Required(), mcp.Description("Exercise id")),
)

// --- Tool handlers ---

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercises, err := h.ds.Exercises(ctx)
	if err != nil {
		h.log.Error("mcp list_exercises", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	category := req.GetString("category", "")
	favoritesOnly := req.GetBool("favorites_only", false)

	filtered := exercises[:0]
	for _, ex := range exercises {
		if category != "" && string(ex.Category) != category {
			continue
		}
		if favoritesOnly && !ex.IsFavorite {
			continue
		}
		filtered = append(filtered, ex)
	}

	result, err := mcp.NewToolResultJSON(filtered)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getExerciseProgress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("exercise_id")
	if err != nil {
		return mcp.NewToolResultError("exercise_id parameter is required"), nil
	}

	ex, err := h.ds.Exercise(ctx, id)
	if err != nil {
		return mcp.NewToolResultError("exercise not found: " + id), nil
	}
	profile, err := h.ds.Profile(ctx)
	if err != nil {
		h.log.Error("mcp get_exercise_progress", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	plan, err := h.ds.ActivePlan(ctx, id)
	if err != nil {
		h.log.Error("mcp get_exercise_progress", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	view := map[string]any{"exercise": ex}
	if lvl, ok := progress.Classify(ex, profile); ok {
		view["level"] = lvl
	}
	if rows, ok := progress.StandardsTable(ex, profile); ok {
		view["standards"] = rows
	}
	if plan != nil {
		view["plan"] = plan
	}

	result, err := mcp.NewToolResultJSON(view)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkoutHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}
	template := req.GetString("template", "")

	history, err := h.ds.History(ctx)
	if err != nil {
		h.log.Error("mcp get_workout_history", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	out := []models.HistoryEntry{}
	for i := len(history) - 1; i >= 0; i-- {
		entry := history[i]
		if entry.Date.Before(start) || entry.Date.After(end) {
			continue
		}
		if template != "" && entry.TemplateName != template {
			continue
		}
		out = append(out, entry)
	}

	result, err := mcp.NewToolResultJSON(out)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// exerciseRecords pairs an exercise with its records for output.
type exerciseRecords struct {
	ExerciseID string                 `json:"exerciseId"`
	Name       string                 `json:"name"`
	Records    models.PersonalRecords `json:"records"`
}

func (h *handlers) getPersonalRecords(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("exercise_id", "")

	exercises, err := h.ds.Exercises(ctx)
	if err != nil {
		h.log.Error("mcp get_personal_records", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	out := []exerciseRecords{}
	for _, ex := range exercises {
		if id != "" && ex.ID != id {
			continue
		}
		if id == "" && !hasRecords(ex.PR) {
			continue
		}
		out = append(out, exerciseRecords{ExerciseID: ex.ID, Name: ex.Name, Records: ex.PR})
	}
	if id != "" && len(out) == 0 {
		return mcp.NewToolResultError("exercise not found: " + id), nil
	}

	result, err := mcp.NewToolResultJSON(out)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func hasRecords(pr models.PersonalRecords) bool {
	return pr.Max1RM != nil || pr.MaxWeight != nil || pr.LongestTime != nil || pr.HighestResistance != nil
}

func (h *handlers) suggestGoals(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("exercise_id")
	if err != nil {
		return mcp.NewToolResultError("exercise_id parameter is required"), nil
	}

	ex, err := h.ds.Exercise(ctx, id)
	if err != nil {
		return mcp.NewToolResultError("exercise not found: " + id), nil
	}
	profile, err := h.ds.Profile(ctx)
	if err != nil {
		h.log.Error("mcp suggest_goals", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	goals := progress.SuggestGoals(ex, profile)
	if goals == nil {
		goals = []progress.Goal{}
	}

	result, err := mcp.NewToolResultJSON(goals)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
