package models

import "time"

// Category classifies an exercise as strength or cardio work.
type Category string

const (
	CategoryStrength Category = "strength"
	CategoryCardio   Category = "cardio"
)

// Equipment identifies what an exercise is performed with.
type Equipment string

const (
	EquipmentBarbell    Equipment = "barbell"
	EquipmentDumbbell   Equipment = "dumbbell"
	EquipmentKettlebell Equipment = "kettlebell"
	EquipmentCable      Equipment = "cable"
	EquipmentMachine    Equipment = "machine"
	EquipmentBodyweight Equipment = "bodyweight"
)

// TrackingType determines which fields a session records for an exercise.
type TrackingType string

const (
	TrackWeightReps TrackingType = "weight-reps"
	TrackWeightTime TrackingType = "weight-time"
	TrackCardio     TrackingType = "cardio"
)

// Trend summarizes the direction of the estimated 1RM since the last update.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// PersonalRecords holds per-exercise bests. Each field is nil until a value
// has been recorded; once set, values only ever increase (barring an explicit
// data reset or import).
type PersonalRecords struct {
	Max1RM            *float64 `json:"max1RM,omitempty"`
	MaxWeight         *float64 `json:"maxWeight,omitempty"`
	LongestTime       *float64 `json:"longestTime,omitempty"`
	HighestResistance *float64 `json:"highestResistance,omitempty"`
}

// Exercise is a catalog entry: immutable reference data seeded from the
// library plus mutable per-user state accumulated from finished sessions.
type Exercise struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Category        Category     `json:"category"`
	Equipment       Equipment    `json:"equipment"`
	MuscleGroup     string       `json:"muscleGroup"`
	HasStandards    bool         `json:"hasStandards"`
	TrackingType    TrackingType `json:"trackingType"`
	WeightIncrement float64      `json:"weightIncrement"`
	CardioFields    []string     `json:"cardioFields,omitempty"`
	IsCustom        bool         `json:"isCustom"`

	// User state.
	IsFavorite    bool            `json:"isFavorite"`
	WorkingWeight *float64        `json:"workingWeight"`
	Estimated1RM  *float64        `json:"estimated1RM"`
	PR            PersonalRecords `json:"pr"`
	LastPerformed *time.Time      `json:"lastPerformed"`
	Trend         Trend           `json:"trend"`
}

// TrendOf reports the direction of a fresh estimated 1RM relative to the
// previous one. A nil previous value (never estimated) reads as stable.
func TrendOf(prev *float64, next float64) Trend {
	switch {
	case prev == nil || *prev == next:
		return TrendStable
	case next > *prev:
		return TrendUp
	default:
		return TrendDown
	}
}

// Profile is the single user profile read by the progress engine.
type Profile struct {
	BodyWeight float64 `json:"bodyWeight"`
	Sex        Sex     `json:"sex"`
}

// Sex selects which standards table applies.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)
