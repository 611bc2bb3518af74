package templates

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/zacharyschulte/ironlog/internal/models"
	"github.com/zacharyschulte/ironlog/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewService(store)
}

func benchOnly() []models.TemplateExercise {
	return []models.TemplateExercise{{
		ExerciseID: "bench-press",
		Kind:       models.KindStrength,
		Strength:   &models.StrengthTarget{Sets: 3, Reps: 8},
	}}
}

// TestCreateAndGet verifies creation assigns an id, trims the name, and the
// template reads back.
func TestCreateAndGet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "  Push Day  ", benchOnly())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Error("created template has no id")
	}
	if created.Name != "Push Day" {
		t.Errorf("name = %q, want trimmed Push Day", created.Name)
	}
	if created.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Push Day" || len(got.Exercises) != 1 {
		t.Errorf("Get = %+v", got)
	}
}

// TestCreateInvalid verifies name and exercise requirements.
func TestCreateInvalid(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		desc      string
		name      string
		exercises []models.TemplateExercise
	}{
		{"empty name", "", benchOnly()},
		{"whitespace name", "   ", benchOnly()},
		{"no exercises", "Push Day", nil},
		{"blank exercise id", "Push Day", []models.TemplateExercise{{Kind: models.KindStrength}}},
	}
	for _, tt := range tests {
		if _, err := svc.Create(ctx, tt.name, tt.exercises); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: Create = %v, want ErrInvalid", tt.desc, err)
		}
	}

	ts, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ts) != 0 {
		t.Errorf("invalid creates persisted: %+v", ts)
	}
}

// TestUpdate verifies id and creation date survive an update.
func TestUpdate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Push Day", benchOnly())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	newExercises := []models.TemplateExercise{{
		ExerciseID: "back-squat",
		Kind:       models.KindStrength,
		Strength:   &models.StrengthTarget{Sets: 5, Reps: 5},
	}}
	updated, err := svc.Update(ctx, created.ID, "Leg Day", newExercises)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("id changed: %q -> %q", created.ID, updated.ID)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("CreatedAt changed: %v -> %v", created.CreatedAt, updated.CreatedAt)
	}
	if updated.Name != "Leg Day" || updated.Exercises[0].ExerciseID != "back-squat" {
		t.Errorf("Update = %+v", updated)
	}

	if _, err := svc.Update(ctx, "nope", "X", benchOnly()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update(nope) = %v, want ErrNotFound", err)
	}
	if _, err := svc.Update(ctx, created.ID, "", benchOnly()); !errors.Is(err, ErrInvalid) {
		t.Errorf("Update with empty name = %v, want ErrInvalid", err)
	}
}

// TestDuplicate verifies the copy gets a fresh id and the suffixed name.
func TestDuplicate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Push Day", benchOnly())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	dup, err := svc.Duplicate(ctx, created.ID)
	if err != nil {
		t.Fatalf("Duplicate: %v", err)
	}
	if dup.ID == created.ID {
		t.Error("duplicate shares the original id")
	}
	if dup.Name != "Push Day (Copy)" {
		t.Errorf("name = %q, want Push Day (Copy)", dup.Name)
	}
	if len(dup.Exercises) != 1 || dup.Exercises[0].ExerciseID != "bench-press" {
		t.Errorf("exercises = %+v", dup.Exercises)
	}

	if _, err := svc.Duplicate(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Duplicate(nope) = %v, want ErrNotFound", err)
	}
}

// TestDelete verifies removal and that unknown ids are a no-op.
func TestDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	a, _ := svc.Create(ctx, "A", benchOnly())
	b, _ := svc.Create(ctx, "B", benchOnly())

	if err := svc.Delete(ctx, a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	ts, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ts) != 1 || ts[0].ID != b.ID {
		t.Errorf("List after delete = %+v, want only B", ts)
	}

	if err := svc.Delete(ctx, "nope"); err != nil {
		t.Errorf("Delete(nope) = %v, want nil", err)
	}
}
