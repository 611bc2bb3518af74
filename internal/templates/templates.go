// Package templates manages reusable workout templates.
package templates

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zacharyschulte/ironlog/internal/models"
	"github.com/zacharyschulte/ironlog/internal/storage"
)

var (
	// ErrNotFound is returned when a template id does not exist.
	ErrNotFound = errors.New("template not found")
	// ErrInvalid marks a template that cannot be saved.
	ErrInvalid = errors.New("invalid template")
)

type Service struct {
	store *storage.Store
}

func NewService(store *storage.Store) *Service {
	return &Service{store: store}
}

// List returns all templates in creation order.
func (s *Service) List(ctx context.Context) ([]models.Template, error) {
	return storage.Templates(ctx, s.store)
}

func (s *Service) Get(ctx context.Context, id string) (models.Template, error) {
	ts, err := storage.Templates(ctx, s.store)
	if err != nil {
		return models.Template{}, err
	}
	for _, t := range ts {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Template{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Create saves a new template. A template needs a name and at least one
// exercise.
func (s *Service) Create(ctx context.Context, name string, exercises []models.TemplateExercise) (models.Template, error) {
	t := models.Template{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		CreatedAt: time.Now(),
		Exercises: exercises,
	}
	if err := validate(t); err != nil {
		return models.Template{}, err
	}
	err := s.store.Update(ctx, func(tx *storage.Tx) error {
		ts, err := storage.Templates(ctx, tx)
		if err != nil {
			return err
		}
		return storage.SaveTemplates(ctx, tx, append(ts, t))
	})
	if err != nil {
		return models.Template{}, err
	}
	return t, nil
}

// Update replaces a template's name and exercises, keeping its id and
// creation date.
func (s *Service) Update(ctx context.Context, id, name string, exercises []models.TemplateExercise) (models.Template, error) {
	var updated models.Template
	err := s.store.Update(ctx, func(tx *storage.Tx) error {
		ts, err := storage.Templates(ctx, tx)
		if err != nil {
			return err
		}
		for i := range ts {
			if ts[i].ID != id {
				continue
			}
			ts[i].Name = strings.TrimSpace(name)
			ts[i].Exercises = exercises
			if err := validate(ts[i]); err != nil {
				return err
			}
			updated = ts[i]
			return storage.SaveTemplates(ctx, tx, ts)
		}
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	})
	if err != nil {
		return models.Template{}, err
	}
	return updated, nil
}

// Duplicate copies a template under a new id with " (Copy)" appended to the
// name.
func (s *Service) Duplicate(ctx context.Context, id string) (models.Template, error) {
	src, err := s.Get(ctx, id)
	if err != nil {
		return models.Template{}, err
	}
	return s.Create(ctx, src.Name+" (Copy)", append([]models.TemplateExercise(nil), src.Exercises...))
}

// Delete removes a template. Deleting an unknown id is a no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Update(ctx, func(tx *storage.Tx) error {
		ts, err := storage.Templates(ctx, tx)
		if err != nil {
			return err
		}
		kept := ts[:0]
		for _, t := range ts {
			if t.ID != id {
				kept = append(kept, t)
			}
		}
		if len(kept) == len(ts) {
			return nil
		}
		return storage.SaveTemplates(ctx, tx, kept)
	})
}

func validate(t models.Template) error {
	if t.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if len(t.Exercises) == 0 {
		return fmt.Errorf("%w: at least one exercise is required", ErrInvalid)
	}
	for _, e := range t.Exercises {
		if e.ExerciseID == "" {
			return fmt.Errorf("%w: exercise id is required", ErrInvalid)
		}
	}
	return nil
}
