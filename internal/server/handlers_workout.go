package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleStartWorkout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TemplateID string `json:"templateId"`
	}
	if !decode(w, r, &req) {
		return
	}
	session, err := s.workout.Start(r.Context(), req.TemplateID)
	if err != nil {
		s.fail(w, err)
		return
	}
	if session == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "template not found"})
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

func (s *Server) handleWorkoutState(w http.ResponseWriter, r *http.Request) {
	session, elapsed, ok := s.workout.State()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no active workout"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"session": session,
		"elapsed": elapsed,
	})
}

func (s *Server) handleWorkoutNotes(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Notes string `json:"notes"`
	}
	if !decode(w, r, &req) {
		return
	}
	if err := s.workout.SetNotes(req.Notes); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddSet(w http.ResponseWriter, r *http.Request) {
	idx, ok := indexParam(w, r, "idx")
	if !ok {
		return
	}
	if err := s.workout.AddSet(idx); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUpdateSet(w http.ResponseWriter, r *http.Request) {
	idx, ok := indexParam(w, r, "idx")
	if !ok {
		return
	}
	set, ok := indexParam(w, r, "set")
	if !ok {
		return
	}
	var req struct {
		Weight *float64 `json:"weight"`
		Reps   *float64 `json:"reps"`
	}
	if !decode(w, r, &req) {
		return
	}
	if err := s.workout.UpdateSet(idx, set, req.Weight, req.Reps); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleToggleSet(w http.ResponseWriter, r *http.Request) {
	idx, ok := indexParam(w, r, "idx")
	if !ok {
		return
	}
	set, ok := indexParam(w, r, "set")
	if !ok {
		return
	}
	if err := s.workout.ToggleSet(idx, set); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAdjustWeight(w http.ResponseWriter, r *http.Request) {
	idx, ok := indexParam(w, r, "idx")
	if !ok {
		return
	}
	set, ok := indexParam(w, r, "set")
	if !ok {
		return
	}
	var req struct {
		Delta float64 `json:"delta"`
	}
	if !decode(w, r, &req) {
		return
	}
	if err := s.workout.AdjustWeight(idx, set, req.Delta); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUpdateCardio(w http.ResponseWriter, r *http.Request) {
	idx, ok := indexParam(w, r, "idx")
	if !ok {
		return
	}
	var req struct {
		Time       *float64 `json:"time"`
		Resistance *float64 `json:"resistance"`
	}
	if !decode(w, r, &req) {
		return
	}
	if err := s.workout.UpdateCardio(idx, req.Time, req.Resistance); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAdjustCardio(w http.ResponseWriter, r *http.Request) {
	idx, ok := indexParam(w, r, "idx")
	if !ok {
		return
	}
	var req struct {
		TimeDelta       float64 `json:"timeDelta"`
		ResistanceDelta float64 `json:"resistanceDelta"`
	}
	if !decode(w, r, &req) {
		return
	}
	if err := s.workout.AdjustCardio(idx, req.TimeDelta, req.ResistanceDelta); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleToggleCardio(w http.ResponseWriter, r *http.Request) {
	idx, ok := indexParam(w, r, "idx")
	if !ok {
		return
	}
	if err := s.workout.ToggleCardio(idx); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleFinishWorkout(w http.ResponseWriter, r *http.Request) {
	entry, err := s.workout.Finish(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleCancelWorkout(w http.ResponseWriter, r *http.Request) {
	s.workout.Cancel()
	w.WriteHeader(http.StatusNoContent)
}

func indexParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid " + name + " parameter"})
		return 0, false
	}
	return v, true
}
