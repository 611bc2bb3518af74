package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/zacharyschulte/ironlog/internal/models"
	"github.com/zacharyschulte/ironlog/internal/progress"
	"github.com/zacharyschulte/ironlog/internal/storage"
)

// progressView is everything the progress screen needs for one exercise.
type progressView struct {
	Exercise  models.Exercise         `json:"exercise"`
	Level     *progress.Level         `json:"level,omitempty"`
	Standards []progress.StandardsRow `json:"standards,omitempty"`
	Goals     []progress.Goal         `json:"goals,omitempty"`
	Plan      *models.ProgressionPlan `json:"plan,omitempty"`
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	ex, err := s.catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, err)
		return
	}
	profile, _, err := storage.Profile(r.Context(), s.store)
	if err != nil {
		s.fail(w, err)
		return
	}
	plan, err := s.planner.Active(r.Context(), ex.ID)
	if err != nil {
		s.fail(w, err)
		return
	}

	view := progressView{Exercise: ex, Plan: plan}
	if lvl, ok := progress.Classify(ex, profile); ok {
		view.Level = &lvl
	}
	if rows, ok := progress.StandardsTable(ex, profile); ok {
		view.Standards = rows
	}
	view.Goals = progress.SuggestGoals(ex, profile)

	writeJSON(w, http.StatusOK, view)
}

// handleOneRepMax is the stateless calculator: it computes an estimate from
// query parameters without touching any stored exercise.
func (s *Server) handleOneRepMax(w http.ResponseWriter, r *http.Request) {
	weight, err := strconv.ParseFloat(r.URL.Query().Get("weight"), 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "weight parameter required"})
		return
	}
	reps, err := strconv.Atoi(r.URL.Query().Get("reps"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "reps parameter required"})
		return
	}
	oneRM, err := progress.OneRepMax(weight, reps)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"oneRepMax": oneRM})
}

func (s *Server) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ExerciseID      string  `json:"exerciseId"`
		CurrentWeight   float64 `json:"currentWeight"`
		GoalWeight      float64 `json:"goalWeight"`
		Frequency       int     `json:"frequencyPerWeek"`
		WeeklyIncrement float64 `json:"weeklyIncrement"`
	}
	if !decode(w, r, &req) {
		return
	}
	plan, err := s.planner.Generate(r.Context(), req.ExerciseID, req.CurrentWeight, req.GoalWeight, req.Frequency, req.WeeklyIncrement)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, plan)
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := s.planner.Active(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, err)
		return
	}
	if plan == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no active plan"})
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleAdvancePlan(w http.ResponseWriter, r *http.Request) {
	plan, err := s.planner.AdvanceWeek(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleCancelPlan(w http.ResponseWriter, r *http.Request) {
	if err := s.planner.Cancel(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
