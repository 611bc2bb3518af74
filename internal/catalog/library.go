package catalog

import "github.com/zacharyschulte/ironlog/internal/models"

// Levels are the five strength-standard names, in ascending order. An
// estimated 1RM below the first bodyweight-ratio threshold has not reached
// Beginner standard yet and is still labeled Beginner.
var Levels = [5]string{"Beginner", "Novice", "Intermediate", "Advanced", "Elite"}

// Library is the seeded exercise catalog. User state (working weight, PRs,
// favorites) is layered on top when the store is initialized; entries here
// never carry it.
var Library = []models.Exercise{
	// Barbell
	{ID: "bench-press", Name: "Bench Press", Category: models.CategoryStrength, Equipment: models.EquipmentBarbell, MuscleGroup: "chest", HasStandards: true, TrackingType: models.TrackWeightReps, WeightIncrement: 5},
	{ID: "incline-bench", Name: "Incline Bench Press", Category: models.CategoryStrength, Equipment: models.EquipmentBarbell, MuscleGroup: "chest", HasStandards: true, TrackingType: models.TrackWeightReps, WeightIncrement: 5},
	{ID: "back-squat", Name: "Back Squat", Category: models.CategoryStrength, Equipment: models.EquipmentBarbell, MuscleGroup: "legs", HasStandards: true, TrackingType: models.TrackWeightReps, WeightIncrement: 10},
	{ID: "front-squat", Name: "Front Squat", Category: models.CategoryStrength, Equipment: models.EquipmentBarbell, MuscleGroup: "legs", HasStandards: true, TrackingType: models.TrackWeightReps, WeightIncrement: 5},
	{ID: "deadlift", Name: "Deadlift", Category: models.CategoryStrength, Equipment: models.EquipmentBarbell, MuscleGroup: "back", HasStandards: true, TrackingType: models.TrackWeightReps, WeightIncrement: 10},
	{ID: "romanian-deadlift", Name: "Romanian Deadlift", Category: models.CategoryStrength, Equipment: models.EquipmentBarbell, MuscleGroup: "legs", HasStandards: true, TrackingType: models.TrackWeightReps, WeightIncrement: 10},
	{ID: "overhead-press", Name: "Overhead Press", Category: models.CategoryStrength, Equipment: models.EquipmentBarbell, MuscleGroup: "shoulders", HasStandards: true, TrackingType: models.TrackWeightReps, WeightIncrement: 2.5},
	{ID: "barbell-row", Name: "Barbell Row", Category: models.CategoryStrength, Equipment: models.EquipmentBarbell, MuscleGroup: "back", HasStandards: true, TrackingType: models.TrackWeightReps, WeightIncrement: 5},
	{ID: "barbell-curl", Name: "Barbell Curl", Category: models.CategoryStrength, Equipment: models.EquipmentBarbell, MuscleGroup: "arms", HasStandards: true, TrackingType: models.TrackWeightReps, WeightIncrement: 2.5},

	// Dumbbell
	{ID: "db-bench", Name: "Dumbbell Bench Press", Category: models.CategoryStrength, Equipment: models.EquipmentDumbbell, MuscleGroup: "chest", HasStandards: true, TrackingType: models.TrackWeightReps, WeightIncrement: 5},
	{ID: "db-row", Name: "Dumbbell Row", Category: models.CategoryStrength, Equipment: models.EquipmentDumbbell, MuscleGroup: "back", HasStandards: true, TrackingType: models.TrackWeightReps, WeightIncrement: 5},
	{ID: "lateral-raise", Name: "Lateral Raises", Category: models.CategoryStrength, Equipment: models.EquipmentDumbbell, MuscleGroup: "shoulders", HasStandards: true, TrackingType: models.TrackWeightReps, WeightIncrement: 2.5},
	{ID: "db-curl", Name: "Dumbbell Curls", Category: models.CategoryStrength, Equipment: models.EquipmentDumbbell, MuscleGroup: "arms", HasStandards: true, TrackingType: models.TrackWeightReps, WeightIncrement: 2.5},
	{ID: "tricep-extension", Name: "Tricep Extensions", Category: models.CategoryStrength, Equipment: models.EquipmentDumbbell, MuscleGroup: "arms", HasStandards: true, TrackingType: models.TrackWeightReps, WeightIncrement: 2.5},
	{ID: "db-lunge", Name: "Dumbbell Lunges", Category: models.CategoryStrength, Equipment: models.EquipmentDumbbell, MuscleGroup: "legs", HasStandards: true, TrackingType: models.TrackWeightReps, WeightIncrement: 5},
	{ID: "goblet-squat", Name: "Goblet Squat", Category: models.CategoryStrength, Equipment: models.EquipmentDumbbell, MuscleGroup: "legs", HasStandards: true, TrackingType: models.TrackWeightReps, WeightIncrement: 5},
	{ID: "db-shoulder-press", Name: "Dumbbell Shoulder Press", Category: models.CategoryStrength, Equipment: models.EquipmentDumbbell, MuscleGroup: "shoulders", HasStandards: true, TrackingType: models.TrackWeightReps, WeightIncrement: 2.5},
	{ID: "db-chest-fly", Name: "Dumbbell Chest Fly", Category: models.CategoryStrength, Equipment: models.EquipmentDumbbell, MuscleGroup: "chest", HasStandards: true, TrackingType: models.TrackWeightReps, WeightIncrement: 2.5},

	// Kettlebell
	{ID: "kb-swing", Name: "Kettlebell Swing", Category: models.CategoryStrength, Equipment: models.EquipmentKettlebell, MuscleGroup: "fullbody", TrackingType: models.TrackWeightReps, WeightIncrement: 5},
	{ID: "kb-goblet-squat", Name: "Kettlebell Goblet Squat", Category: models.CategoryStrength, Equipment: models.EquipmentKettlebell, MuscleGroup: "legs", TrackingType: models.TrackWeightReps, WeightIncrement: 5},
	{ID: "turkish-getup", Name: "Turkish Get-up", Category: models.CategoryStrength, Equipment: models.EquipmentKettlebell, MuscleGroup: "fullbody", TrackingType: models.TrackWeightReps, WeightIncrement: 5},
	{ID: "farmers-walk", Name: "Farmers Walk", Category: models.CategoryStrength, Equipment: models.EquipmentKettlebell, MuscleGroup: "fullbody", TrackingType: models.TrackWeightTime, WeightIncrement: 5},
	{ID: "kb-clean-press", Name: "Kettlebell Clean & Press", Category: models.CategoryStrength, Equipment: models.EquipmentKettlebell, MuscleGroup: "fullbody", TrackingType: models.TrackWeightReps, WeightIncrement: 5},

	// Cable / machine
	{ID: "lat-pulldown", Name: "Lat Pulldown", Category: models.CategoryStrength, Equipment: models.EquipmentCable, MuscleGroup: "back", HasStandards: true, TrackingType: models.TrackWeightReps, WeightIncrement: 5},
	{ID: "cable-row", Name: "Cable Row", Category: models.CategoryStrength, Equipment: models.EquipmentCable, MuscleGroup: "back", HasStandards: true, TrackingType: models.TrackWeightReps, WeightIncrement: 5},
	{ID: "leg-press", Name: "Leg Press", Category: models.CategoryStrength, Equipment: models.EquipmentMachine, MuscleGroup: "legs", HasStandards: true, TrackingType: models.TrackWeightReps, WeightIncrement: 10},
	{ID: "leg-curl", Name: "Leg Curl", Category: models.CategoryStrength, Equipment: models.EquipmentMachine, MuscleGroup: "legs", HasStandards: true, TrackingType: models.TrackWeightReps, WeightIncrement: 5},
	{ID: "leg-extension", Name: "Leg Extension", Category: models.CategoryStrength, Equipment: models.EquipmentMachine, MuscleGroup: "legs", HasStandards: true, TrackingType: models.TrackWeightReps, WeightIncrement: 5},
	{ID: "cable-fly", Name: "Cable Fly", Category: models.CategoryStrength, Equipment: models.EquipmentCable, MuscleGroup: "chest", HasStandards: true, TrackingType: models.TrackWeightReps, WeightIncrement: 2.5},
	{ID: "tricep-pushdown", Name: "Tricep Pushdown", Category: models.CategoryStrength, Equipment: models.EquipmentCable, MuscleGroup: "arms", HasStandards: true, TrackingType: models.TrackWeightReps, WeightIncrement: 2.5},

	// Bodyweight
	{ID: "pullup", Name: "Pull-ups", Category: models.CategoryStrength, Equipment: models.EquipmentBodyweight, MuscleGroup: "back", TrackingType: models.TrackWeightReps, WeightIncrement: 5},
	{ID: "pushup", Name: "Push-ups", Category: models.CategoryStrength, Equipment: models.EquipmentBodyweight, MuscleGroup: "chest", TrackingType: models.TrackWeightReps, WeightIncrement: 0},
	{ID: "dip", Name: "Dips", Category: models.CategoryStrength, Equipment: models.EquipmentBodyweight, MuscleGroup: "chest", TrackingType: models.TrackWeightReps, WeightIncrement: 5},
	{ID: "plank", Name: "Plank", Category: models.CategoryStrength, Equipment: models.EquipmentBodyweight, MuscleGroup: "core", TrackingType: models.TrackWeightTime, WeightIncrement: 0},

	// Cardio
	{ID: "treadmill", Name: "Treadmill", Category: models.CategoryCardio, Equipment: models.EquipmentMachine, MuscleGroup: "fullbody", TrackingType: models.TrackCardio, CardioFields: []string{"time", "speed", "incline"}},
	{ID: "elliptical", Name: "Elliptical", Category: models.CategoryCardio, Equipment: models.EquipmentMachine, MuscleGroup: "fullbody", TrackingType: models.TrackCardio, CardioFields: []string{"time", "resistance"}},
	{ID: "stationary-bike", Name: "Stationary Bike", Category: models.CategoryCardio, Equipment: models.EquipmentMachine, MuscleGroup: "fullbody", TrackingType: models.TrackCardio, CardioFields: []string{"time", "resistance"}},
	{ID: "rowing-machine", Name: "Rowing Machine", Category: models.CategoryCardio, Equipment: models.EquipmentMachine, MuscleGroup: "fullbody", TrackingType: models.TrackCardio, CardioFields: []string{"time", "distance"}},
	{ID: "stair-climber", Name: "Stair Climber", Category: models.CategoryCardio, Equipment: models.EquipmentMachine, MuscleGroup: "fullbody", TrackingType: models.TrackCardio, CardioFields: []string{"time", "resistance"}},
	{ID: "jump-rope", Name: "Jump Rope", Category: models.CategoryCardio, Equipment: models.EquipmentBodyweight, MuscleGroup: "fullbody", TrackingType: models.TrackCardio, CardioFields: []string{"time"}},
}

// Standards maps sex and exercise id to the five ascending bodyweight-ratio
// thresholds for that lift. Exercises without an entry have no standards.
var Standards = map[models.Sex]map[string][]float64{
	models.SexMale: {
		"bench-press":       {0.50, 0.75, 1.00, 1.50, 2.00},
		"incline-bench":     {0.50, 0.75, 1.00, 1.50, 2.00},
		"back-squat":        {0.75, 1.00, 1.50, 2.00, 2.75},
		"front-squat":       {0.60, 0.85, 1.15, 1.50, 1.90},
		"deadlift":          {1.00, 1.25, 1.75, 2.25, 3.00},
		"overhead-press":    {0.35, 0.50, 0.75, 1.00, 1.25},
		"barbell-row":       {0.40, 0.55, 0.75, 1.00, 1.25},
		"romanian-deadlift": {0.75, 1.00, 1.35, 1.75, 2.25},
		"barbell-curl":      {0.30, 0.40, 0.55, 0.70, 0.90},
		"db-bench":          {0.20, 0.30, 0.40, 0.60, 0.80},
		"db-row":            {0.20, 0.30, 0.40, 0.55, 0.70},
		"db-shoulder-press": {0.15, 0.20, 0.30, 0.40, 0.50},
		"lateral-raise":     {0.05, 0.08, 0.12, 0.17, 0.22},
		"db-curl":           {0.08, 0.12, 0.17, 0.23, 0.30},
		"lat-pulldown":      {0.50, 0.70, 0.90, 1.20, 1.50},
		"cable-row":         {0.50, 0.70, 0.90, 1.20, 1.50},
		"leg-press":         {1.50, 2.00, 2.75, 3.50, 4.50},
		"leg-curl":          {0.25, 0.35, 0.50, 0.65, 0.85},
		"leg-extension":     {0.30, 0.40, 0.55, 0.75, 1.00},
		"cable-fly":         {0.15, 0.20, 0.30, 0.40, 0.55},
		"tricep-pushdown":   {0.20, 0.30, 0.45, 0.60, 0.80},
	},
	models.SexFemale: {
		"bench-press":       {0.25, 0.40, 0.60, 0.85, 1.15},
		"incline-bench":     {0.25, 0.40, 0.60, 0.85, 1.15},
		"back-squat":        {0.50, 0.75, 1.00, 1.35, 1.75},
		"front-squat":       {0.40, 0.55, 0.75, 1.00, 1.30},
		"deadlift":          {0.65, 0.90, 1.25, 1.65, 2.10},
		"overhead-press":    {0.20, 0.30, 0.45, 0.60, 0.80},
		"barbell-row":       {0.25, 0.40, 0.55, 0.70, 0.90},
		"romanian-deadlift": {0.50, 0.70, 0.95, 1.25, 1.60},
		"barbell-curl":      {0.20, 0.25, 0.35, 0.45, 0.60},
		"db-bench":          {0.10, 0.15, 0.25, 0.35, 0.45},
		"db-row":            {0.10, 0.18, 0.25, 0.35, 0.45},
		"db-shoulder-press": {0.08, 0.12, 0.18, 0.25, 0.32},
		"lateral-raise":     {0.03, 0.05, 0.08, 0.11, 0.15},
		"db-curl":           {0.05, 0.08, 0.11, 0.15, 0.20},
		"lat-pulldown":      {0.35, 0.50, 0.65, 0.85, 1.10},
		"cable-row":         {0.35, 0.50, 0.65, 0.85, 1.10},
		"leg-press":         {1.00, 1.50, 2.00, 2.75, 3.50},
		"leg-curl":          {0.15, 0.25, 0.35, 0.50, 0.65},
		"leg-extension":     {0.20, 0.30, 0.40, 0.55, 0.75},
		"cable-fly":         {0.08, 0.12, 0.18, 0.25, 0.35},
		"tricep-pushdown":   {0.12, 0.18, 0.28, 0.40, 0.55},
	},
}

// StandardsFor returns the threshold table for an exercise, or nil when the
// exercise has none for the given sex.
func StandardsFor(sex models.Sex, exerciseID string) []float64 {
	table, ok := Standards[sex]
	if !ok {
		return nil
	}
	return table[exerciseID]
}
