package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/zacharyschulte/ironlog/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// TestGetMissing verifies that a never-written key reads as nil without
// error.
func TestGetMissing(t *testing.T) {
	s := newTestStore(t)
	raw, err := s.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if raw != nil {
		t.Errorf("Get(absent) = %q, want nil", raw)
	}
}

// TestPutGetRoundTrip verifies basic write/read and overwrite semantics.
func TestPutGetRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, "k", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	raw, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(raw) != `{"a":1}` {
		t.Errorf("Get = %q, want %q", raw, `{"a":1}`)
	}

	if err := s.Put(ctx, "k", []byte(`{"a":2}`)); err != nil {
		t.Fatalf("overwrite Put: %v", err)
	}
	raw, _ = s.Get(ctx, "k")
	if string(raw) != `{"a":2}` {
		t.Errorf("Get after overwrite = %q, want %q", raw, `{"a":2}`)
	}
}

// TestDelete verifies deletion and that deleting a missing key is a no-op.
func TestDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	raw, _ := s.Get(ctx, "k")
	if raw != nil {
		t.Errorf("Get after delete = %q, want nil", raw)
	}
	if err := s.Delete(ctx, "never-existed"); err != nil {
		t.Errorf("Delete(missing) = %v, want nil", err)
	}
}

// TestUpdateRollback verifies that an error inside Update leaves earlier
// writes in the same transaction unapplied.
func TestUpdateRollback(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.Update(ctx, func(tx *Tx) error {
		if err := tx.Put(ctx, "k", []byte("v")); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Update err = %v, want boom", err)
	}

	raw, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if raw != nil {
		t.Errorf("Get after rollback = %q, want nil", raw)
	}
}

// TestReadDocCorrupt verifies that an unparseable document degrades to the
// zero value instead of failing the read.
func TestReadDocCorrupt(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, KeyTemplates, []byte("{not json")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	ts, err := Templates(ctx, s)
	if err != nil {
		t.Fatalf("Templates: %v", err)
	}
	if len(ts) != 0 {
		t.Errorf("Templates from corrupt doc = %v, want empty", ts)
	}
}

// TestExercisesNeverNil verifies the exercises map reads as an empty map
// when nothing was stored.
func TestExercisesNeverNil(t *testing.T) {
	s := newTestStore(t)
	ex, err := Exercises(context.Background(), s)
	if err != nil {
		t.Fatalf("Exercises: %v", err)
	}
	if ex == nil {
		t.Fatal("Exercises = nil, want empty map")
	}
}

// TestProfileRoundTrip verifies profile save/load and the not-yet-saved
// signal.
func TestProfileRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, ok, err := Profile(ctx, s); err != nil || ok {
		t.Fatalf("Profile before save: ok = %v, err = %v; want false, nil", ok, err)
	}

	want := models.Profile{BodyWeight: 205, Sex: models.SexFemale}
	if err := SaveProfile(ctx, s, want); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	got, ok, err := Profile(ctx, s)
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if !ok {
		t.Fatal("Profile ok = false after save")
	}
	if got != want {
		t.Errorf("Profile = %+v, want %+v", got, want)
	}
}

// TestProfileLegacyWeightField verifies that a profile written by the old
// schema, which only carried weight, still reads.
func TestProfileLegacyWeightField(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, KeyProfile, []byte(`{"weight":190,"sex":"male"}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok, err := Profile(ctx, s)
	if err != nil || !ok {
		t.Fatalf("Profile: ok = %v, err = %v", ok, err)
	}
	if got.BodyWeight != 190 {
		t.Errorf("bodyWeight = %v, want 190", got.BodyWeight)
	}
}

// TestOpenReopens verifies data persists across close/reopen of the same
// file.
func TestOpenReopens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Put(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	raw, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(raw) != "v" {
		t.Errorf("Get after reopen = %q, want v", raw)
	}
}
