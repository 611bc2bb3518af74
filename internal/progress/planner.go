package progress

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/zacharyschulte/ironlog/internal/models"
	"github.com/zacharyschulte/ironlog/internal/storage"
)

// ErrNoActivePlan is returned when an operation needs an active progression
// plan for an exercise and none exists.
var ErrNoActivePlan = errors.New("no active plan for exercise")

// Planner manages weight-progression plans. At most one plan per exercise is
// active at a time; generating a new one cancels the previous.
type Planner struct {
	store *storage.Store
}

func NewPlanner(store *storage.Store) *Planner {
	return &Planner{store: store}
}

// Generate creates and activates a progression plan taking currentWeight to
// goalWeight at weeklyIncrement pounds per week, training frequencyPerWeek
// times. Total duration is the number of increments needed, spread over
// calendar weeks: ceil(ceil((goal-current)/increment) × 7/frequency).
func (p *Planner) Generate(ctx context.Context, exerciseID string, currentWeight, goalWeight float64, frequencyPerWeek int, weeklyIncrement float64) (models.ProgressionPlan, error) {
	if currentWeight <= 0 {
		return models.ProgressionPlan{}, fmt.Errorf("%w: current weight must be positive", ErrValidation)
	}
	if goalWeight <= currentWeight {
		return models.ProgressionPlan{}, fmt.Errorf("%w: goal weight must exceed current weight", ErrValidation)
	}
	if frequencyPerWeek <= 0 {
		return models.ProgressionPlan{}, fmt.Errorf("%w: frequency must be positive", ErrValidation)
	}
	if weeklyIncrement <= 0 {
		return models.ProgressionPlan{}, fmt.Errorf("%w: weekly increment must be positive", ErrValidation)
	}

	exercises, err := storage.Exercises(ctx, p.store)
	if err != nil {
		return models.ProgressionPlan{}, err
	}
	ex, ok := exercises[exerciseID]
	if !ok {
		return models.ProgressionPlan{}, fmt.Errorf("%w: unknown exercise %q", ErrValidation, exerciseID)
	}

	sessions := math.Ceil((goalWeight - currentWeight) / weeklyIncrement)
	totalWeeks := int(math.Ceil(sessions * 7 / float64(frequencyPerWeek)))

	plan := models.ProgressionPlan{
		ID:               uuid.NewString(),
		ExerciseID:       exerciseID,
		Name:             ex.Name,
		StartWeight:      currentWeight,
		CurrentWeight:    currentWeight,
		GoalWeight:       goalWeight,
		FrequencyPerWeek: frequencyPerWeek,
		WeeklyIncrement:  weeklyIncrement,
		CurrentWeek:      1,
		TotalWeeks:       totalWeeks,
		Status:           models.PlanActive,
		CreatedAt:        time.Now(),
	}

	err = p.store.Update(ctx, func(tx *storage.Tx) error {
		plans, err := storage.Plans(ctx, tx)
		if err != nil {
			return err
		}
		for i := range plans {
			if plans[i].ExerciseID == exerciseID && plans[i].Status == models.PlanActive {
				plans[i].Status = models.PlanCancelled
			}
		}
		plans = append(plans, plan)
		return storage.SavePlans(ctx, tx, plans)
	})
	if err != nil {
		return models.ProgressionPlan{}, err
	}
	return plan, nil
}

// Active returns the active plan for an exercise, or nil when none exists.
func (p *Planner) Active(ctx context.Context, exerciseID string) (*models.ProgressionPlan, error) {
	plans, err := storage.Plans(ctx, p.store)
	if err != nil {
		return nil, err
	}
	for i := range plans {
		if plans[i].ExerciseID == exerciseID && plans[i].Status == models.PlanActive {
			return &plans[i], nil
		}
	}
	return nil, nil
}

// Cancel marks the active plan for an exercise as cancelled. Cancelling when
// no plan is active is a no-op.
func (p *Planner) Cancel(ctx context.Context, exerciseID string) error {
	return p.store.Update(ctx, func(tx *storage.Tx) error {
		plans, err := storage.Plans(ctx, tx)
		if err != nil {
			return err
		}
		changed := false
		for i := range plans {
			if plans[i].ExerciseID == exerciseID && plans[i].Status == models.PlanActive {
				plans[i].Status = models.PlanCancelled
				changed = true
			}
		}
		if !changed {
			return nil
		}
		return storage.SavePlans(ctx, tx, plans)
	})
}

// AdvanceWeek moves the active plan for an exercise forward one week,
// bumping the prescribed weight by the weekly increment, capped at the goal.
func (p *Planner) AdvanceWeek(ctx context.Context, exerciseID string) (models.ProgressionPlan, error) {
	var advanced models.ProgressionPlan
	err := p.store.Update(ctx, func(tx *storage.Tx) error {
		plans, err := storage.Plans(ctx, tx)
		if err != nil {
			return err
		}
		for i := range plans {
			if plans[i].ExerciseID != exerciseID || plans[i].Status != models.PlanActive {
				continue
			}
			if plans[i].CurrentWeek < plans[i].TotalWeeks {
				plans[i].CurrentWeek++
			}
			plans[i].CurrentWeight = math.Min(plans[i].GoalWeight, plans[i].CurrentWeight+plans[i].WeeklyIncrement)
			advanced = plans[i]
			return storage.SavePlans(ctx, tx, plans)
		}
		return ErrNoActivePlan
	})
	if err != nil {
		return models.ProgressionPlan{}, err
	}
	return advanced, nil
}
