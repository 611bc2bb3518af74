package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/zacharyschulte/ironlog/internal/models"
	"github.com/zacharyschulte/ironlog/internal/storage"
)

// ErrNotFound is returned when an exercise id is not in the catalog.
var ErrNotFound = errors.New("exercise not found")

// Service manages the persisted exercise catalog: the seeded library merged
// with per-exercise user state, plus user-created custom exercises.
type Service struct {
	store *storage.Store
}

func NewService(store *storage.Store) *Service {
	return &Service{store: store}
}

// Categories maps every library exercise id to its category. Used by the
// legacy store migration to decide record shapes.
func Categories() map[string]models.Category {
	out := make(map[string]models.Category, len(Library))
	for _, e := range Library {
		out[e.ID] = e.Category
	}
	return out
}

// Init seeds the catalog on first run and, on later runs, adds any library
// exercises missing from the stored map. Existing user state is never
// touched; running Init repeatedly is safe.
func (s *Service) Init(ctx context.Context) error {
	return s.store.Update(ctx, func(tx *storage.Tx) error {
		exercises, err := storage.Exercises(ctx, tx)
		if err != nil {
			return err
		}
		for _, e := range Library {
			if _, ok := exercises[e.ID]; ok {
				continue
			}
			e.Trend = models.TrendStable
			exercises[e.ID] = e
		}
		return storage.SaveExercises(ctx, tx, exercises)
	})
}

// All returns every exercise, sorted by name.
func (s *Service) All(ctx context.Context) ([]models.Exercise, error) {
	exercises, err := storage.Exercises(ctx, s.store)
	if err != nil {
		return nil, err
	}
	out := make([]models.Exercise, 0, len(exercises))
	for _, e := range exercises {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Get returns one exercise by id.
func (s *Service) Get(ctx context.Context, id string) (models.Exercise, error) {
	exercises, err := storage.Exercises(ctx, s.store)
	if err != nil {
		return models.Exercise{}, err
	}
	e, ok := exercises[id]
	if !ok {
		return models.Exercise{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return e, nil
}

// CreateCustom adds a user-defined exercise. Custom exercises never have a
// standards table and use the default 5 lb increment.
func (s *Service) CreateCustom(ctx context.Context, name string, category models.Category, equipment models.Equipment, muscleGroup string) (models.Exercise, error) {
	if name == "" {
		return models.Exercise{}, errors.New("exercise name is required")
	}
	e := models.Exercise{
		ID:              "custom-" + uuid.NewString(),
		Name:            name,
		Category:        category,
		Equipment:       equipment,
		MuscleGroup:     muscleGroup,
		TrackingType:    models.TrackWeightReps,
		WeightIncrement: 5,
		IsCustom:        true,
		Trend:           models.TrendStable,
	}
	if category == models.CategoryCardio {
		e.TrackingType = models.TrackCardio
		e.CardioFields = []string{"time", "resistance"}
	}
	err := s.store.Update(ctx, func(tx *storage.Tx) error {
		exercises, err := storage.Exercises(ctx, tx)
		if err != nil {
			return err
		}
		exercises[e.ID] = e
		return storage.SaveExercises(ctx, tx, exercises)
	})
	if err != nil {
		return models.Exercise{}, err
	}
	return e, nil
}

// SetFavorite flips the favorite flag.
func (s *Service) SetFavorite(ctx context.Context, id string, favorite bool) error {
	return s.apply(ctx, id, func(e *models.Exercise) {
		e.IsFavorite = favorite
	})
}

// RecordEstimate overwrites the estimated 1RM and working weight, updating
// the trend against the previous estimate. Used by the manual 1RM update.
func (s *Service) RecordEstimate(ctx context.Context, id string, oneRM, workingWeight float64) (models.Exercise, error) {
	var updated models.Exercise
	err := s.store.Update(ctx, func(tx *storage.Tx) error {
		exercises, err := storage.Exercises(ctx, tx)
		if err != nil {
			return err
		}
		e, ok := exercises[id]
		if !ok {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		e.Trend = models.TrendOf(e.Estimated1RM, oneRM)
		e.Estimated1RM = &oneRM
		e.WorkingWeight = &workingWeight
		exercises[id] = e
		updated = e
		return storage.SaveExercises(ctx, tx, exercises)
	})
	if err != nil {
		return models.Exercise{}, err
	}
	return updated, nil
}

func (s *Service) apply(ctx context.Context, id string, mutate func(*models.Exercise)) error {
	return s.store.Update(ctx, func(tx *storage.Tx) error {
		exercises, err := storage.Exercises(ctx, tx)
		if err != nil {
			return err
		}
		e, ok := exercises[id]
		if !ok {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		mutate(&e)
		exercises[id] = e
		return storage.SaveExercises(ctx, tx, exercises)
	})
}
