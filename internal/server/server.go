// Package server exposes the application over a JSON HTTP API.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zacharyschulte/ironlog/internal/catalog"
	"github.com/zacharyschulte/ironlog/internal/progress"
	"github.com/zacharyschulte/ironlog/internal/session"
	"github.com/zacharyschulte/ironlog/internal/storage"
	"github.com/zacharyschulte/ironlog/internal/templates"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store     *storage.Store
	catalog   *catalog.Service
	templates *templates.Service
	planner   *progress.Planner
	workout   *session.Controller
	log       *slog.Logger
	apiKey    string
	router    chi.Router
}

// New creates a new Server with all routes configured.
func New(store *storage.Store, cat *catalog.Service, tpl *templates.Service, planner *progress.Planner, workout *session.Controller, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		store:     store,
		catalog:   cat,
		templates: tpl,
		planner:   planner,
		workout:   workout,
		log:       log,
		apiKey:    apiKey,
		router:    chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		// API key auth is optional; a loopback-only install runs open.
		if s.apiKey != "" {
			r.Use(APIKeyAuth(s.apiKey))
		}

		r.Get("/exercises", s.handleListExercises)
		r.Post("/exercises", s.handleCreateExercise)
		r.Get("/exercises/{id}", s.handleGetExercise)
		r.Put("/exercises/{id}/favorite", s.handleSetFavorite)
		r.Post("/exercises/{id}/estimate", s.handleRecordEstimate)

		r.Get("/templates", s.handleListTemplates)
		r.Post("/templates", s.handleCreateTemplate)
		r.Get("/templates/{id}", s.handleGetTemplate)
		r.Put("/templates/{id}", s.handleUpdateTemplate)
		r.Delete("/templates/{id}", s.handleDeleteTemplate)
		r.Post("/templates/{id}/duplicate", s.handleDuplicateTemplate)

		r.Get("/profile", s.handleGetProfile)
		r.Put("/profile", s.handleSaveProfile)

		r.Post("/workout/start", s.handleStartWorkout)
		r.Get("/workout", s.handleWorkoutState)
		r.Put("/workout/notes", s.handleWorkoutNotes)
		r.Post("/workout/exercises/{idx}/sets", s.handleAddSet)
		r.Put("/workout/exercises/{idx}/sets/{set}", s.handleUpdateSet)
		r.Post("/workout/exercises/{idx}/sets/{set}/toggle", s.handleToggleSet)
		r.Post("/workout/exercises/{idx}/sets/{set}/adjust", s.handleAdjustWeight)
		r.Put("/workout/exercises/{idx}/cardio", s.handleUpdateCardio)
		r.Post("/workout/exercises/{idx}/cardio/adjust", s.handleAdjustCardio)
		r.Post("/workout/exercises/{idx}/cardio/toggle", s.handleToggleCardio)
		r.Post("/workout/finish", s.handleFinishWorkout)
		r.Post("/workout/cancel", s.handleCancelWorkout)

		r.Get("/history", s.handleListHistory)
		r.Get("/history/{id}", s.handleGetHistory)
		r.Delete("/history/{id}", s.handleDeleteHistory)

		r.Get("/progress/{id}", s.handleProgress)
		r.Get("/onerepmax", s.handleOneRepMax)

		r.Post("/plans", s.handleGeneratePlan)
		r.Get("/plans/{id}", s.handleGetPlan)
		r.Post("/plans/{id}/advance", s.handleAdvancePlan)
		r.Delete("/plans/{id}", s.handleCancelPlan)

		r.Get("/export", s.handleExport)
		r.Post("/import", s.handleImport)
		r.Post("/reset", s.handleReset)
	})
}

