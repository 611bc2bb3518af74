package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/zacharyschulte/ironlog/internal/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCategories() map[string]models.Category {
	return map[string]models.Category{
		"bench-press": models.CategoryStrength,
		"back-squat":  models.CategoryStrength,
		"treadmill":   models.CategoryCardio,
	}
}

// TestMigrateLegacyTemplates verifies that pre-v4 templates are rebuilt into
// the tagged shape: ids remapped, strength targets carried over with the
// weight pointer only set when positive, and cardio exercises given the
// default target.
func TestMigrateLegacyTemplates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	legacy := `[{
		"id": "t1", "name": "Push Day",
		"exercises": [
			{"id": "bench", "sets": 5, "reps": 5, "weight": 155},
			{"id": "squat", "sets": 3, "reps": 8, "weight": 0},
			{"id": "treadmill", "sets": 1, "reps": 20}
		]
	}]`
	if err := s.Put(ctx, legacyKeyTemplates, []byte(legacy)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	if err := MigrateLegacy(ctx, s, testCategories(), discardLogger()); err != nil {
		t.Fatalf("MigrateLegacy: %v", err)
	}

	ts, err := Templates(ctx, s)
	if err != nil {
		t.Fatalf("Templates: %v", err)
	}
	if len(ts) != 1 {
		t.Fatalf("len(templates) = %d, want 1", len(ts))
	}
	tpl := ts[0]
	if tpl.ID != "t1" || tpl.Name != "Push Day" {
		t.Errorf("template = %q %q, want t1 Push Day", tpl.ID, tpl.Name)
	}
	if len(tpl.Exercises) != 3 {
		t.Fatalf("len(exercises) = %d, want 3", len(tpl.Exercises))
	}

	bench := tpl.Exercises[0]
	if bench.ExerciseID != "bench-press" {
		t.Errorf("remapped id = %q, want bench-press", bench.ExerciseID)
	}
	if bench.Kind != models.KindStrength || bench.Strength == nil {
		t.Fatalf("bench kind = %q, strength = %v", bench.Kind, bench.Strength)
	}
	if bench.Strength.Sets != 5 || bench.Strength.Reps != 5 {
		t.Errorf("bench target = %dx%d, want 5x5", bench.Strength.Sets, bench.Strength.Reps)
	}
	if bench.Strength.Weight == nil || *bench.Strength.Weight != 155 {
		t.Errorf("bench target weight = %v, want 155", bench.Strength.Weight)
	}

	squat := tpl.Exercises[1]
	if squat.ExerciseID != "back-squat" {
		t.Errorf("remapped id = %q, want back-squat", squat.ExerciseID)
	}
	if squat.Strength == nil || squat.Strength.Weight != nil {
		t.Errorf("zero-weight target should leave weight unset, got %v", squat.Strength)
	}

	cardio := tpl.Exercises[2]
	if cardio.Kind != models.KindCardio || cardio.Cardio == nil {
		t.Fatalf("treadmill kind = %q, cardio = %v", cardio.Kind, cardio.Cardio)
	}
	if cardio.Cardio.Time != 10 || cardio.Cardio.Resistance != 8 {
		t.Errorf("cardio target = %v/%v, want 10/8", cardio.Cardio.Time, cardio.Cardio.Resistance)
	}
}

// TestMigrateLegacyHistory verifies pre-v4 workouts convert to history
// entries: strength sets verbatim, cardio minutes recovered from the pseudo
// set's rep count, and the legacy name kept as the template name.
func TestMigrateLegacyHistory(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	legacy := `[{
		"id": "w1", "name": "Leg Day",
		"date": "2023-05-10T18:00:00Z",
		"duration": 2700000, "notes": "felt strong",
		"exercises": [
			{"id": "squat", "sets": [{"weight": "225", "reps": 5, "completed": true}]},
			{"id": "treadmill", "sets": [{"weight": 0, "reps": 15, "completed": true}]}
		]
	}, {
		"id": "w2", "name": "Cardio Only",
		"date": "2023-05-12T18:00:00Z",
		"exercises": [{"id": "treadmill", "sets": []}]
	}]`
	if err := s.Put(ctx, legacyKeyHistory, []byte(legacy)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	if err := MigrateLegacy(ctx, s, testCategories(), discardLogger()); err != nil {
		t.Fatalf("MigrateLegacy: %v", err)
	}

	hs, err := History(ctx, s)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(hs) != 2 {
		t.Fatalf("len(history) = %d, want 2", len(hs))
	}

	w1 := hs[0]
	if w1.TemplateName != "Leg Day" || w1.DurationMS != 2700000 || w1.Notes != "felt strong" {
		t.Errorf("entry header = %+v", w1)
	}
	squat := w1.Exercises[0]
	if squat.ExerciseID != "back-squat" || squat.Strength == nil {
		t.Fatalf("squat = %+v", squat)
	}
	if len(squat.Strength.Sets) != 1 || squat.Strength.Sets[0].Weight != 225 {
		t.Errorf("squat sets = %+v, want one 225 lb set", squat.Strength.Sets)
	}
	tread := w1.Exercises[1]
	if tread.Cardio == nil {
		t.Fatal("treadmill cardio work missing")
	}
	if tread.Cardio.ActualTime != 15 || tread.Cardio.ActualResistance != 8 || !tread.Cardio.Completed {
		t.Errorf("cardio work = %+v, want 15 min at resistance 8, completed", tread.Cardio)
	}

	// No sets at all falls back to the 10 minute default.
	w2 := hs[1].Exercises[0]
	if w2.Cardio == nil || w2.Cardio.ActualTime != 10 {
		t.Errorf("empty-set cardio = %+v, want 10 min default", w2.Cardio)
	}
}

// TestMigrateLegacyProfileAndPlans verifies profile and plans docs are copied
// to the new keys unchanged.
func TestMigrateLegacyProfileAndPlans(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, legacyKeyTemplates, []byte(`[]`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Put(ctx, legacyKeyProfile, []byte(`{"bodyWeight":175,"sex":"female"}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Put(ctx, legacyKeyPlans, []byte(`[{"id":"p1","exerciseId":"bench-press","status":"active"}]`)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	if err := MigrateLegacy(ctx, s, testCategories(), discardLogger()); err != nil {
		t.Fatalf("MigrateLegacy: %v", err)
	}

	p, ok, err := Profile(ctx, s)
	if err != nil || !ok {
		t.Fatalf("Profile: ok = %v, err = %v", ok, err)
	}
	if p.BodyWeight != 175 || p.Sex != models.SexFemale {
		t.Errorf("profile = %+v, want 175/female", p)
	}
	plans, err := Plans(ctx, s)
	if err != nil {
		t.Fatalf("Plans: %v", err)
	}
	if len(plans) != 1 || plans[0].ID != "p1" {
		t.Errorf("plans = %+v, want the single copied plan", plans)
	}
}

// TestMigrateLegacyNoOpWhenCurrent verifies the migration does nothing once
// the current-schema exercises key exists, so it cannot clobber live data.
func TestMigrateLegacyNoOpWhenCurrent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, KeyExercises, []byte(`{}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Put(ctx, legacyKeyTemplates, []byte(`[{"id":"t1","name":"Old"}]`)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	if err := MigrateLegacy(ctx, s, testCategories(), discardLogger()); err != nil {
		t.Fatalf("MigrateLegacy: %v", err)
	}

	ts, err := Templates(ctx, s)
	if err != nil {
		t.Fatalf("Templates: %v", err)
	}
	if len(ts) != 0 {
		t.Errorf("templates = %+v, want none migrated", ts)
	}
}

// TestMigrateLegacyNothingToDo verifies a fresh store with no legacy keys
// stays untouched.
func TestMigrateLegacyNothingToDo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := MigrateLegacy(ctx, s, testCategories(), discardLogger()); err != nil {
		t.Fatalf("MigrateLegacy: %v", err)
	}
	raw, err := s.Get(ctx, KeyTemplates)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if raw != nil {
		t.Errorf("templates key = %q, want absent", raw)
	}
}

// TestMigrateLegacyCorruptDoc verifies an unparseable legacy document is
// skipped without aborting the rest of the migration.
func TestMigrateLegacyCorruptDoc(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, legacyKeyTemplates, []byte("{not json")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Put(ctx, legacyKeyHistory, []byte(`[{"id":"w1","name":"Ok","exercises":[]}]`)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	if err := MigrateLegacy(ctx, s, testCategories(), discardLogger()); err != nil {
		t.Fatalf("MigrateLegacy: %v", err)
	}

	hs, err := History(ctx, s)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(hs) != 1 || hs[0].ID != "w1" {
		t.Errorf("history = %+v, want the one valid entry", hs)
	}
}
