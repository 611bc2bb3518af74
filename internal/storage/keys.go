package storage

// Logical keys for the five persisted documents. The names carry the schema
// version suffix so a future schema bump can live alongside the old data.
const (
	KeyTemplates = "iron_templates_v4"
	KeyHistory   = "iron_history_v4"
	KeyProfile   = "iron_profile_v4"
	KeyExercises = "iron_exercises_v4"
	KeyPlans     = "iron_plans_v4"
)

// Pre-v4 keys, read only by the one-time legacy migration.
const (
	legacyKeyTemplates = "iron_templates"
	legacyKeyHistory   = "iron_history"
	legacyKeyProfile   = "iron_profile"
	legacyKeyPlans     = "iron_plans"
)

// AllKeys lists every current-schema key, in export order.
var AllKeys = []string{KeyTemplates, KeyHistory, KeyProfile, KeyExercises, KeyPlans}
