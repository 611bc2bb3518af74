package storage

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/zacharyschulte/ironlog/internal/models"
)

// legacyIDMap renames pre-v4 exercise ids to their catalog ids.
var legacyIDMap = map[string]string{
	"bench":       "bench-press",
	"squat":       "back-squat",
	"deadlift":    "deadlift",
	"ohp":         "overhead-press",
	"row":         "barbell-row",
	"front-squat": "front-squat",
}

type legacyTemplateExercise struct {
	ID     string        `json:"id"`
	Sets   int           `json:"sets"`
	Reps   int           `json:"reps"`
	Weight models.Number `json:"weight"`
}

type legacyTemplate struct {
	ID        string                   `json:"id"`
	Name      string                   `json:"name"`
	CreatedAt time.Time                `json:"createdAt"`
	Exercises []legacyTemplateExercise `json:"exercises"`
}

type legacyWorkoutExercise struct {
	ID   string       `json:"id"`
	Sets []models.Set `json:"sets"`
}

type legacyWorkout struct {
	ID        string                  `json:"id"`
	Name      string                  `json:"name"`
	Date      time.Time               `json:"date"`
	Duration  int64                   `json:"duration"`
	Notes     string                  `json:"notes"`
	Exercises []legacyWorkoutExercise `json:"exercises"`
}

// MigrateLegacy upgrades a pre-v4 store to the current schema: exercise ids
// are remapped, template and history records are rebuilt into the tagged
// strength/cardio shape, and profile and plans are copied verbatim. The
// categories map (exercise id → category) decides which shape each record
// takes. Once the current-schema exercises key exists this is a no-op, so
// the migration runs at most once.
func MigrateLegacy(ctx context.Context, s *Store, categories map[string]models.Category, log *slog.Logger) error {
	current, err := s.Get(ctx, KeyExercises)
	if err != nil {
		return err
	}
	if current != nil {
		return nil
	}

	oldTemplates, err := s.Get(ctx, legacyKeyTemplates)
	if err != nil {
		return err
	}
	oldHistory, err := s.Get(ctx, legacyKeyHistory)
	if err != nil {
		return err
	}
	if oldTemplates == nil && oldHistory == nil {
		return nil
	}

	log.Info("migrating legacy store to v4 schema")

	return s.Update(ctx, func(tx *Tx) error {
		if oldTemplates != nil {
			var ts []legacyTemplate
			if err := json.Unmarshal(oldTemplates, &ts); err != nil {
				log.Warn("legacy template migration skipped", "error", err)
			} else {
				migrated := make([]models.Template, 0, len(ts))
				for _, t := range ts {
					migrated = append(migrated, migrateTemplate(t, categories))
				}
				if err := SaveTemplates(ctx, tx, migrated); err != nil {
					return err
				}
			}
		}

		if oldHistory != nil {
			var ws []legacyWorkout
			if err := json.Unmarshal(oldHistory, &ws); err != nil {
				log.Warn("legacy history migration skipped", "error", err)
			} else {
				migrated := make([]models.HistoryEntry, 0, len(ws))
				for _, w := range ws {
					migrated = append(migrated, migrateWorkout(w, categories))
				}
				if err := SaveHistory(ctx, tx, migrated); err != nil {
					return err
				}
			}
		}

		for _, pair := range [][2]string{
			{legacyKeyProfile, KeyProfile},
			{legacyKeyPlans, KeyPlans},
		} {
			raw, err := s.Get(ctx, pair[0])
			if err != nil {
				return err
			}
			if raw != nil {
				if err := tx.Put(ctx, pair[1], raw); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func migrateTemplate(t legacyTemplate, categories map[string]models.Category) models.Template {
	out := models.Template{ID: t.ID, Name: t.Name, CreatedAt: t.CreatedAt}
	for _, e := range t.Exercises {
		id := remapID(e.ID)
		te := models.TemplateExercise{ExerciseID: id}
		if categories[id] == models.CategoryCardio {
			te.Kind = models.KindCardio
			te.Cardio = &models.CardioTarget{Time: 10, Resistance: 8}
		} else {
			te.Kind = models.KindStrength
			target := &models.StrengthTarget{Sets: e.Sets, Reps: e.Reps}
			if e.Weight > 0 {
				w := float64(e.Weight)
				target.Weight = &w
			}
			te.Strength = target
		}
		out.Exercises = append(out.Exercises, te)
	}
	return out
}

func migrateWorkout(w legacyWorkout, categories map[string]models.Category) models.HistoryEntry {
	out := models.HistoryEntry{
		ID:           w.ID,
		TemplateName: w.Name,
		Date:         w.Date,
		DurationMS:   w.Duration,
		Notes:        w.Notes,
	}
	for _, e := range w.Exercises {
		id := remapID(e.ID)
		se := models.SessionExercise{ExerciseID: id}
		if categories[id] == models.CategoryCardio {
			// Pre-v4 cardio was logged as a single pseudo-set whose rep
			// count held the minutes.
			minutes := 10.0
			if len(e.Sets) > 0 && e.Sets[0].Reps > 0 {
				minutes = float64(e.Sets[0].Reps)
			}
			se.Kind = models.KindCardio
			se.Cardio = &models.CardioWork{ActualTime: minutes, ActualResistance: 8, Completed: true}
		} else {
			se.Kind = models.KindStrength
			se.Strength = &models.StrengthWork{Sets: e.Sets}
		}
		out.Exercises = append(out.Exercises, se)
	}
	return out
}

func remapID(id string) string {
	if mapped, ok := legacyIDMap[id]; ok {
		return mapped
	}
	return id
}
