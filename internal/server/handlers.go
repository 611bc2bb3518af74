package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zacharyschulte/ironlog/internal/catalog"
	"github.com/zacharyschulte/ironlog/internal/models"
	"github.com/zacharyschulte/ironlog/internal/progress"
	"github.com/zacharyschulte/ironlog/internal/session"
	"github.com/zacharyschulte/ironlog/internal/storage"
	"github.com/zacharyschulte/ironlog/internal/templates"
)

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := s.catalog.All(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, exercises)
}

func (s *Server) handleGetExercise(w http.ResponseWriter, r *http.Request) {
	ex, err := s.catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ex)
}

func (s *Server) handleCreateExercise(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string           `json:"name"`
		Category    models.Category  `json:"category"`
		Equipment   models.Equipment `json:"equipment"`
		MuscleGroup string           `json:"muscleGroup"`
	}
	if !decode(w, r, &req) {
		return
	}
	ex, err := s.catalog.CreateCustom(r.Context(), req.Name, req.Category, req.Equipment, req.MuscleGroup)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ex)
}

func (s *Server) handleSetFavorite(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Favorite bool `json:"favorite"`
	}
	if !decode(w, r, &req) {
		return
	}
	if err := s.catalog.SetFavorite(r.Context(), chi.URLParam(r, "id"), req.Favorite); err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"favorite": req.Favorite})
}

// handleRecordEstimate records a manually tested set: the estimated 1RM is
// computed from the weight/rep pair and the working weight set to the weight
// lifted.
func (s *Server) handleRecordEstimate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Weight float64 `json:"weight"`
		Reps   int     `json:"reps"`
	}
	if !decode(w, r, &req) {
		return
	}
	oneRM, err := progress.OneRepMax(req.Weight, req.Reps)
	if err != nil {
		s.fail(w, err)
		return
	}
	ex, err := s.catalog.RecordEstimate(r.Context(), chi.URLParam(r, "id"), oneRM, req.Weight)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ex)
}

type templateRequest struct {
	Name      string                    `json:"name"`
	Exercises []models.TemplateExercise `json:"exercises"`
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	ts, err := s.templates.List(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	if ts == nil {
		ts = []models.Template{}
	}
	writeJSON(w, http.StatusOK, ts)
}

func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	t, err := s.templates.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req templateRequest
	if !decode(w, r, &req) {
		return
	}
	t, err := s.templates.Create(r.Context(), req.Name, req.Exercises)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (s *Server) handleUpdateTemplate(w http.ResponseWriter, r *http.Request) {
	var req templateRequest
	if !decode(w, r, &req) {
		return
	}
	t, err := s.templates.Update(r.Context(), chi.URLParam(r, "id"), req.Name, req.Exercises)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	if err := s.templates.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDuplicateTemplate(w http.ResponseWriter, r *http.Request) {
	t, err := s.templates.Duplicate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, _, err := storage.Profile(r.Context(), s.store)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, progress.NormalizeProfile(p))
}

func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	var p models.Profile
	if !decode(w, r, &p) {
		return
	}
	if p.BodyWeight <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bodyWeight must be positive"})
		return
	}
	if p.Sex != models.SexMale && p.Sex != models.SexFemale {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "sex must be male or female"})
		return
	}
	if err := storage.SaveProfile(r.Context(), s.store, p); err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	history, err := storage.History(r.Context(), s.store)
	if err != nil {
		s.fail(w, err)
		return
	}
	// Stored oldest-first, served newest-first.
	out := make([]models.HistoryEntry, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		out = append(out, history[i])
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	history, err := storage.History(r.Context(), s.store)
	if err != nil {
		s.fail(w, err)
		return
	}
	id := chi.URLParam(r, "id")
	for _, entry := range history {
		if entry.ID == id {
			writeJSON(w, http.StatusOK, entry)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
}

func (s *Server) handleDeleteHistory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := s.store.Update(r.Context(), func(tx *storage.Tx) error {
		history, err := storage.History(r.Context(), tx)
		if err != nil {
			return err
		}
		kept := history[:0]
		for _, entry := range history {
			if entry.ID != id {
				kept = append(kept, entry)
			}
		}
		if len(kept) == len(history) {
			return nil
		}
		return storage.SaveHistory(r.Context(), tx, kept)
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	backup, err := storage.Export(r.Context(), s.store)
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="ironlog-backup.json"`)
	writeJSON(w, http.StatusOK, backup)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "reading body: " + err.Error()})
		return
	}
	if err := storage.Import(r.Context(), s.store, data); err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "imported"})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := storage.Reset(r.Context(), s.store); err != nil {
		s.fail(w, err)
		return
	}
	// Reseed the built-in catalog so the app stays usable.
	if err := s.catalog.Init(r.Context()); err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// decode reads the request body into v, answering 400 on malformed JSON.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return false
	}
	return true
}

// fail maps domain errors to HTTP statuses.
func (s *Server) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, templates.ErrNotFound),
		errors.Is(err, session.ErrNoSession),
		errors.Is(err, progress.ErrNoActivePlan):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, progress.ErrValidation),
		errors.Is(err, templates.ErrInvalid),
		errors.Is(err, session.ErrOutOfRange),
		errors.Is(err, session.ErrWrongKind),
		errors.Is(err, storage.ErrBadBackup):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, session.ErrSessionActive):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		s.log.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
