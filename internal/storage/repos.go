package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/zacharyschulte/ironlog/internal/models"
)

// readDoc decodes the document at key into out. An absent or unparseable
// value leaves out at its zero value: corrupt data degrades to empty rather
// than wedging the application.
func readDoc(ctx context.Context, kv KV, key string, out any) error {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if raw == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return nil
	}
	return nil
}

func writeDoc(ctx context.Context, kv KV, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return kv.Put(ctx, key, raw)
}

// Templates returns all templates, oldest first.
func Templates(ctx context.Context, kv KV) ([]models.Template, error) {
	var ts []models.Template
	if err := readDoc(ctx, kv, KeyTemplates, &ts); err != nil {
		return nil, err
	}
	return ts, nil
}

func SaveTemplates(ctx context.Context, kv KV, ts []models.Template) error {
	return writeDoc(ctx, kv, KeyTemplates, ts)
}

// Exercises returns the full exercise map keyed by exercise id. Never nil.
func Exercises(ctx context.Context, kv KV) (map[string]models.Exercise, error) {
	ex := map[string]models.Exercise{}
	if err := readDoc(ctx, kv, KeyExercises, &ex); err != nil {
		return nil, err
	}
	return ex, nil
}

func SaveExercises(ctx context.Context, kv KV, ex map[string]models.Exercise) error {
	return writeDoc(ctx, kv, KeyExercises, ex)
}

// History returns all finished workouts in stored (append) order.
func History(ctx context.Context, kv KV) ([]models.HistoryEntry, error) {
	var hs []models.HistoryEntry
	if err := readDoc(ctx, kv, KeyHistory, &hs); err != nil {
		return nil, err
	}
	return hs, nil
}

func SaveHistory(ctx context.Context, kv KV, hs []models.HistoryEntry) error {
	return writeDoc(ctx, kv, KeyHistory, hs)
}

// Plans returns all progression plans, active and cancelled.
func Plans(ctx context.Context, kv KV) ([]models.ProgressionPlan, error) {
	var ps []models.ProgressionPlan
	if err := readDoc(ctx, kv, KeyPlans, &ps); err != nil {
		return nil, err
	}
	return ps, nil
}

func SavePlans(ctx context.Context, kv KV, ps []models.ProgressionPlan) error {
	return writeDoc(ctx, kv, KeyPlans, ps)
}

// profileDoc is the on-disk profile shape. The redundant weight field mirrors
// bodyWeight for compatibility with pre-v4 exports, which only carried weight.
type profileDoc struct {
	BodyWeight float64    `json:"bodyWeight,omitempty"`
	Weight     float64    `json:"weight,omitempty"`
	Sex        models.Sex `json:"sex,omitempty"`
}

// Profile returns the stored profile. ok is false when no profile has ever
// been saved; callers apply their own defaults.
func Profile(ctx context.Context, kv KV) (p models.Profile, ok bool, err error) {
	raw, err := kv.Get(ctx, KeyProfile)
	if err != nil {
		return models.Profile{}, false, err
	}
	if raw == nil {
		return models.Profile{}, false, nil
	}
	var doc profileDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return models.Profile{}, false, nil
	}
	bw := doc.BodyWeight
	if bw == 0 {
		bw = doc.Weight
	}
	if bw == 0 && doc.Sex == "" {
		return models.Profile{}, false, nil
	}
	return models.Profile{BodyWeight: bw, Sex: doc.Sex}, true, nil
}

func SaveProfile(ctx context.Context, kv KV, p models.Profile) error {
	return writeDoc(ctx, kv, KeyProfile, profileDoc{
		BodyWeight: p.BodyWeight,
		Weight:     p.BodyWeight,
		Sex:        p.Sex,
	})
}
