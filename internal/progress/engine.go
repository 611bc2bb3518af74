// Package progress computes strength-progress analytics: estimated one-rep
// maxes, strength-level classification against bodyweight-ratio standards,
// goal suggestions, and weight-progression plans.
package progress

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/zacharyschulte/ironlog/internal/catalog"
	"github.com/zacharyschulte/ironlog/internal/models"
)

// ErrValidation marks failures caused by missing or out-of-range user input.
var ErrValidation = errors.New("invalid input")

// Profile defaults applied when the user never saved one.
const (
	DefaultBodyWeight = 180.0
	DefaultSex        = models.SexMale
)

// NormalizeProfile fills in defaults for an unset or partial profile.
func NormalizeProfile(p models.Profile) models.Profile {
	if p.BodyWeight <= 0 {
		p.BodyWeight = DefaultBodyWeight
	}
	if p.Sex != models.SexMale && p.Sex != models.SexFemale {
		p.Sex = DefaultSex
	}
	return p
}

// OneRepMax estimates a one-rep max from a weight/rep pair using the Epley
// formula. A single rep is its own max; otherwise weight × (1 + reps/30),
// rounded to the nearest pound.
func OneRepMax(weight float64, reps int) (float64, error) {
	if weight <= 0 {
		return 0, fmt.Errorf("%w: weight must be positive", ErrValidation)
	}
	if reps <= 0 {
		return 0, fmt.Errorf("%w: reps must be positive", ErrValidation)
	}
	if reps == 1 {
		return weight, nil
	}
	return math.Round(weight * (1 + float64(reps)/30)), nil
}

// Level is a strength-level classification. Achieved counts how many of the
// five standards thresholds the current estimated 1RM clears (0 = below the
// Beginner standard, 5 = Elite). Percent is progress through the current
// band; at Elite it is pinned to 100 and the Next fields are empty.
type Level struct {
	Achieved      int     `json:"achieved"`
	Name          string  `json:"name"`
	Percent       float64 `json:"percent"`
	NextName      string  `json:"nextName,omitempty"`
	NextTarget1RM float64 `json:"nextTarget1RM,omitempty"`
	PoundsToNext  float64 `json:"poundsToNext,omitempty"`
}

// Classify places an exercise's estimated 1RM on its standards ladder.
// Returns false when the exercise has no standards table or no estimate yet;
// no classification is shown in that case.
func Classify(ex models.Exercise, p models.Profile) (Level, bool) {
	standards := standardsIfApplicable(ex, p)
	if standards == nil {
		return Level{}, false
	}
	p = NormalizeProfile(p)

	ratio := *ex.Estimated1RM / p.BodyWeight
	achieved := 0
	for _, threshold := range standards {
		if ratio >= threshold {
			achieved++
		}
	}

	lvl := Level{Achieved: achieved, Name: levelName(achieved)}
	if achieved == len(standards) {
		lvl.Percent = 100
		return lvl, true
	}

	lower := 0.0
	if achieved > 0 {
		lower = standards[achieved-1]
	}
	upper := standards[achieved]
	lvl.Percent = math.Min(100, math.Max(0, (ratio-lower)/(upper-lower)*100))
	lvl.NextName = catalog.Levels[achieved]
	lvl.NextTarget1RM = math.Round(upper * p.BodyWeight)
	lvl.PoundsToNext = math.Round(lvl.NextTarget1RM - *ex.Estimated1RM)
	return lvl, true
}

// StandardsRow is one line of the standards table for an exercise: the
// 1RM required for a level and the working weight (70% of it) that usually
// corresponds.
type StandardsRow struct {
	Level         string  `json:"level"`
	OneRM         float64 `json:"oneRM"`
	WorkingWeight float64 `json:"workingWeight"`
	Current       bool    `json:"current"`
}

// StandardsTable renders the five-level table for an exercise. The row whose
// band contains the current estimated 1RM (if any) is marked Current.
// Returns false when the exercise has no standards for the profile's sex.
func StandardsTable(ex models.Exercise, p models.Profile) ([]StandardsRow, bool) {
	p = NormalizeProfile(p)
	standards := catalog.StandardsFor(p.Sex, ex.ID)
	if !ex.HasStandards || standards == nil {
		return nil, false
	}

	current := -1
	if ex.Estimated1RM != nil {
		ratio := *ex.Estimated1RM / p.BodyWeight
		for i, threshold := range standards {
			if ratio >= threshold {
				current = i
			}
		}
	}

	rows := make([]StandardsRow, len(standards))
	for i, threshold := range standards {
		oneRM := math.Round(threshold * p.BodyWeight)
		rows[i] = StandardsRow{
			Level:         catalog.Levels[i],
			OneRM:         oneRM,
			WorkingWeight: math.Round(oneRM * 0.7),
			Current:       i == current,
		}
	}
	return rows, true
}

// GoalKind tags where a suggested goal weight comes from.
type GoalKind string

const (
	GoalNextIncrement  GoalKind = "next-increment"
	GoalPlateMilestone GoalKind = "plate-milestone"
	GoalNextLevel      GoalKind = "next-level"
)

// Goal is one suggested working-weight target.
type Goal struct {
	Weight float64  `json:"weight"`
	Label  string   `json:"label"`
	Kind   GoalKind `json:"kind"`
}

// plateMilestones are the classic barbell loadings people chase.
var plateMilestones = []float64{100, 135, 185, 225, 275, 315, 365, 405, 495}

// reachableSpan bounds suggestions to goals within reach of the current
// working weight.
const reachableSpan = 100.0

// SuggestGoals proposes up to six working-weight goals for an exercise: the
// next increment jump, plate milestones, and per-level working-weight
// thresholds, all strictly above the current working weight and within
// reach. Duplicate weights collapse to the first suggestion that produced
// them. Empty when the exercise has no standards or no 1RM estimate yet.
func SuggestGoals(ex models.Exercise, p models.Profile) []Goal {
	standards := standardsIfApplicable(ex, p)
	if standards == nil {
		return nil
	}
	p = NormalizeProfile(p)

	current := 0.0
	if ex.WorkingWeight != nil {
		current = *ex.WorkingWeight
	}
	increment := ex.WeightIncrement
	if increment <= 0 {
		increment = 5
	}

	var goals []Goal
	seen := map[float64]bool{}
	add := func(weight float64, label string, kind GoalKind) {
		if seen[weight] {
			return
		}
		seen[weight] = true
		goals = append(goals, Goal{Weight: weight, Label: label, Kind: kind})
	}

	add(current+increment, "Next increment", GoalNextIncrement)

	for _, milestone := range plateMilestones {
		if milestone > current && milestone <= current+reachableSpan {
			add(milestone, "Plate milestone", GoalPlateMilestone)
		}
	}

	for i, threshold := range standards {
		oneRM := math.Round(threshold * p.BodyWeight)
		working := math.Round(oneRM * 0.7)
		if working > current && working <= current+reachableSpan {
			add(working, catalog.Levels[i]+" working weight", GoalNextLevel)
		}
	}

	sort.Slice(goals, func(i, j int) bool { return goals[i].Weight < goals[j].Weight })
	if len(goals) > 6 {
		goals = goals[:6]
	}
	return goals
}

func standardsIfApplicable(ex models.Exercise, p models.Profile) []float64 {
	if !ex.HasStandards || ex.Estimated1RM == nil {
		return nil
	}
	return catalog.StandardsFor(NormalizeProfile(p).Sex, ex.ID)
}

func levelName(achieved int) string {
	if achieved == 0 {
		return catalog.Levels[0]
	}
	return catalog.Levels[achieved-1]
}
