package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// Kind discriminates the strength/cardio variants of template and session
// exercises.
type Kind string

const (
	KindStrength Kind = "strength"
	KindCardio   Kind = "cardio"
)

// Number is a float64 that tolerates string-encoded values when decoding.
// Exports written by older versions of the app carry set weights and reps as
// strings ("145", ""); empty strings and null decode to zero.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*n = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*n = 0
			return nil
		}
		*n = Number(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

// StrengthTarget is the planned prescription for a strength exercise.
type StrengthTarget struct {
	Sets   int      `json:"targetSets"`
	Reps   int      `json:"targetReps"`
	Weight *float64 `json:"targetWeight,omitempty"`
}

// CardioTarget is the planned prescription for a cardio exercise.
type CardioTarget struct {
	Time       float64 `json:"targetTime"`
	Resistance float64 `json:"targetResistance"`
}

// TemplateExercise is one planned exercise inside a template. Exactly one of
// Strength or Cardio is set, matching Kind.
type TemplateExercise struct {
	ExerciseID string          `json:"exerciseId"`
	IsWarmup   bool            `json:"isWarmup"`
	Kind       Kind            `json:"type"`
	Strength   *StrengthTarget `json:"strength,omitempty"`
	Cardio     *CardioTarget   `json:"cardio,omitempty"`
}

// Template is a named, reusable workout plan.
type Template struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	CreatedAt time.Time          `json:"createdAt"`
	Exercises []TemplateExercise `json:"exercises"`
}

// Set is one performed (or planned) set within a strength exercise.
type Set struct {
	Weight    Number `json:"weight"`
	Reps      Number `json:"reps"`
	Completed bool   `json:"completed"`
}

// StrengthWork is the in-session state of a strength exercise.
type StrengthWork struct {
	Target StrengthTarget `json:"target"`
	Sets   []Set          `json:"sets"`
}

// CardioWork is the in-session state of a cardio exercise.
type CardioWork struct {
	Target           CardioTarget `json:"target"`
	ActualTime       float64      `json:"actualTime"`
	ActualResistance float64      `json:"actualResistance"`
	Completed        bool         `json:"completed"`
}

// LastPerformance is a read-only snapshot of the most recent prior
// performance of the same exercise, attached for display when a session
// starts.
type LastPerformance struct {
	Date       time.Time `json:"date"`
	Sets       []Set     `json:"sets,omitempty"`
	Time       float64   `json:"time,omitempty"`
	Resistance float64   `json:"resistance,omitempty"`
}

// SessionExercise is one exercise inside an active session or a finished
// history entry. Exactly one of Strength or Cardio is set, matching Kind.
type SessionExercise struct {
	ExerciseID string           `json:"exerciseId"`
	IsWarmup   bool             `json:"isWarmup"`
	Kind       Kind             `json:"type"`
	Strength   *StrengthWork    `json:"strength,omitempty"`
	Cardio     *CardioWork      `json:"cardio,omitempty"`
	Last       *LastPerformance `json:"lastPerformed,omitempty"`
}

// ActiveSession is the singleton in-progress workout.
type ActiveSession struct {
	TemplateID   string            `json:"templateId"`
	TemplateName string            `json:"templateName"`
	Notes        string            `json:"notes"`
	StartedAt    time.Time         `json:"startedAt"`
	Exercises    []SessionExercise `json:"exercises"`
}

// HistoryEntry is an immutable record of a finished session.
type HistoryEntry struct {
	ID           string            `json:"id"`
	TemplateID   string            `json:"templateId"`
	TemplateName string            `json:"templateName"`
	Date         time.Time         `json:"date"`
	DurationMS   int64             `json:"duration"`
	Notes        string            `json:"notes"`
	Exercises    []SessionExercise `json:"exercises"`
	PRsAchieved  []string          `json:"prsAchieved"`
}

// PlanStatus is the lifecycle state of a progression plan.
type PlanStatus string

const (
	PlanActive    PlanStatus = "active"
	PlanCancelled PlanStatus = "cancelled"
)

// ProgressionPlan schedules a weight increase for one exercise over a number
// of weeks. At most one active plan exists per exercise; superseded plans are
// kept with status cancelled.
type ProgressionPlan struct {
	ID               string     `json:"id"`
	ExerciseID       string     `json:"exerciseId"`
	Name             string     `json:"name"`
	StartWeight      float64    `json:"startWeight"`
	GoalWeight       float64    `json:"goalWeight"`
	CurrentWeight    float64    `json:"currentWeight"`
	WeeklyIncrement  float64    `json:"weeklyIncrement"`
	FrequencyPerWeek int        `json:"frequencyPerWeek"`
	CurrentWeek      int        `json:"currentWeek"`
	TotalWeeks       int        `json:"totalWeeks"`
	CreatedAt        time.Time  `json:"createdAt"`
	Status           PlanStatus `json:"status"`
}
