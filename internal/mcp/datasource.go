package mcp

import (
	"context"

	"github.com/zacharyschulte/ironlog/internal/catalog"
	"github.com/zacharyschulte/ironlog/internal/models"
	"github.com/zacharyschulte/ironlog/internal/progress"
	"github.com/zacharyschulte/ironlog/internal/storage"
)

// DataSource is what the MCP handlers need from the application. Tests
// substitute a fake.
type DataSource interface {
	Exercises(ctx context.Context) ([]models.Exercise, error)
	Exercise(ctx context.Context, id string) (models.Exercise, error)
	History(ctx context.Context) ([]models.HistoryEntry, error)
	Profile(ctx context.Context) (models.Profile, error)
	ActivePlan(ctx context.Context, exerciseID string) (*models.ProgressionPlan, error)
}

// storeSource serves MCP queries straight from the local store.
type storeSource struct {
	store   *storage.Store
	catalog *catalog.Service
	planner *progress.Planner
}

// NewStoreSource wraps the store as a DataSource.
func NewStoreSource(store *storage.Store, cat *catalog.Service, planner *progress.Planner) DataSource {
	return &storeSource{store: store, catalog: cat, planner: planner}
}

func (s *storeSource) Exercises(ctx context.Context) ([]models.Exercise, error) {
	return s.catalog.All(ctx)
}

func (s *storeSource) Exercise(ctx context.Context, id string) (models.Exercise, error) {
	return s.catalog.Get(ctx, id)
}

func (s *storeSource) History(ctx context.Context) ([]models.HistoryEntry, error) {
	return storage.History(ctx, s.store)
}

func (s *storeSource) Profile(ctx context.Context) (models.Profile, error) {
	p, _, err := storage.Profile(ctx, s.store)
	if err != nil {
		return models.Profile{}, err
	}
	return progress.NormalizeProfile(p), nil
}

func (s *storeSource) ActivePlan(ctx context.Context, exerciseID string) (*models.ProgressionPlan, error) {
	return s.planner.Active(ctx, exerciseID)
}
