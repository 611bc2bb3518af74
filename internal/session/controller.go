// Package session drives the lifecycle of the single active workout: start
// from a template, record sets as they happen, and finish into history with
// personal-record detection.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zacharyschulte/ironlog/internal/models"
	"github.com/zacharyschulte/ironlog/internal/progress"
	"github.com/zacharyschulte/ironlog/internal/storage"
)

var (
	// ErrNoSession is returned by mutators when no workout is in progress.
	ErrNoSession = errors.New("no active workout")
	// ErrSessionActive is returned by Start while a workout is in progress.
	ErrSessionActive = errors.New("a workout is already in progress")
	// ErrOutOfRange is returned for exercise or set indexes outside the
	// active session.
	ErrOutOfRange = errors.New("index out of range")
	// ErrWrongKind is returned when a strength mutation targets a cardio
	// exercise or vice versa.
	ErrWrongKind = errors.New("operation does not match exercise type")
)

// Defaults applied when a template leaves a prescription blank.
const (
	defaultSets       = 3
	defaultReps       = 8
	defaultCardioTime = 10.0
	defaultResistance = 8.0
)

// Controller owns the singleton active session. All methods are safe for
// concurrent use; mutations happen in memory and nothing touches the store
// until Finish.
type Controller struct {
	store *storage.Store
	log   *slog.Logger

	mu     sync.Mutex
	active *models.ActiveSession
}

func NewController(store *storage.Store, log *slog.Logger) *Controller {
	return &Controller{store: store, log: log}
}

// Start begins a workout from a template. Exercises are seeded from the
// template prescriptions with defaults filled in, the target weight falling
// back to the exercise's working weight, and each exercise carries a
// snapshot of its most recent prior performance. Exercises missing from the
// catalog are skipped. Starting from an unknown template is a no-op and
// returns nil.
func (c *Controller) Start(ctx context.Context, templateID string) (*models.ActiveSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active != nil {
		return nil, ErrSessionActive
	}

	templates, err := storage.Templates(ctx, c.store)
	if err != nil {
		return nil, err
	}
	var tpl *models.Template
	for i := range templates {
		if templates[i].ID == templateID {
			tpl = &templates[i]
			break
		}
	}
	if tpl == nil {
		c.log.Warn("start ignored, template not found", "template_id", templateID)
		return nil, nil
	}

	exercises, err := storage.Exercises(ctx, c.store)
	if err != nil {
		return nil, err
	}
	history, err := storage.History(ctx, c.store)
	if err != nil {
		return nil, err
	}

	session := &models.ActiveSession{
		TemplateID:   tpl.ID,
		TemplateName: tpl.Name,
		StartedAt:    time.Now(),
	}
	for _, te := range tpl.Exercises {
		ex, ok := exercises[te.ExerciseID]
		if !ok {
			c.log.Warn("skipping unknown exercise in template", "exercise_id", te.ExerciseID, "template_id", tpl.ID)
			continue
		}
		session.Exercises = append(session.Exercises, seedExercise(te, ex, history))
	}

	c.active = session
	c.log.Info("workout started", "template", tpl.Name, "exercises", len(session.Exercises))
	return snapshot(session), nil
}

// seedExercise builds the in-session state for one template exercise.
func seedExercise(te models.TemplateExercise, ex models.Exercise, history []models.HistoryEntry) models.SessionExercise {
	se := models.SessionExercise{
		ExerciseID: te.ExerciseID,
		IsWarmup:   te.IsWarmup,
		Last:       lastPerformance(history, te.ExerciseID),
	}

	if te.Kind == models.KindCardio || ex.Category == models.CategoryCardio {
		target := models.CardioTarget{Time: defaultCardioTime, Resistance: defaultResistance}
		if te.Cardio != nil {
			if te.Cardio.Time > 0 {
				target.Time = te.Cardio.Time
			}
			if te.Cardio.Resistance > 0 {
				target.Resistance = te.Cardio.Resistance
			}
		}
		se.Kind = models.KindCardio
		se.Cardio = &models.CardioWork{
			Target:           target,
			ActualTime:       target.Time,
			ActualResistance: target.Resistance,
		}
		return se
	}

	target := models.StrengthTarget{Sets: defaultSets, Reps: defaultReps}
	if te.Strength != nil {
		if te.Strength.Sets > 0 {
			target.Sets = te.Strength.Sets
		}
		if te.Strength.Reps > 0 {
			target.Reps = te.Strength.Reps
		}
		target.Weight = te.Strength.Weight
	}
	if target.Weight == nil {
		target.Weight = ex.WorkingWeight
	}

	seedWeight := models.Number(0)
	if target.Weight != nil {
		seedWeight = models.Number(*target.Weight)
	}
	sets := make([]models.Set, target.Sets)
	for i := range sets {
		sets[i] = models.Set{Weight: seedWeight, Reps: models.Number(target.Reps)}
	}

	se.Kind = models.KindStrength
	se.Strength = &models.StrengthWork{Target: target, Sets: sets}
	return se
}

// lastPerformance scans history newest-first for the most recent occurrence
// of an exercise and returns a display snapshot of it.
func lastPerformance(history []models.HistoryEntry, exerciseID string) *models.LastPerformance {
	for i := len(history) - 1; i >= 0; i-- {
		for _, se := range history[i].Exercises {
			if se.ExerciseID != exerciseID {
				continue
			}
			last := &models.LastPerformance{Date: history[i].Date}
			if se.Strength != nil {
				last.Sets = se.Strength.Sets
			}
			if se.Cardio != nil {
				last.Time = se.Cardio.ActualTime
				last.Resistance = se.Cardio.ActualResistance
			}
			return last
		}
	}
	return nil
}

// State returns a copy of the active session and its elapsed time rendered
// as mm:ss. ok is false when no workout is in progress.
func (c *Controller) State() (session *models.ActiveSession, elapsed string, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil {
		return nil, "", false
	}
	return snapshot(c.active), formatElapsed(time.Since(c.active.StartedAt)), true
}

func formatElapsed(d time.Duration) string {
	secs := int(d.Seconds())
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// SetNotes replaces the session notes.
func (c *Controller) SetNotes(notes string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil {
		return ErrNoSession
	}
	c.active.Notes = notes
	return nil
}

// UpdateSet overwrites the weight and/or reps of one set. Nil fields are
// left unchanged.
func (c *Controller) UpdateSet(exercise, set int, weight, reps *float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, err := c.set(exercise, set)
	if err != nil {
		return err
	}
	if weight != nil {
		s.Weight = models.Number(*weight)
	}
	if reps != nil {
		s.Reps = models.Number(*reps)
	}
	return nil
}

// ToggleSet flips a set's completed flag.
func (c *Controller) ToggleSet(exercise, set int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, err := c.set(exercise, set)
	if err != nil {
		return err
	}
	s.Completed = !s.Completed
	return nil
}

// AddSet appends a set to a strength exercise, cloning the last set's weight
// and reps and resetting completion.
func (c *Controller) AddSet(exercise int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	work, err := c.strength(exercise)
	if err != nil {
		return err
	}
	next := models.Set{Reps: models.Number(work.Target.Reps)}
	if n := len(work.Sets); n > 0 {
		next.Weight = work.Sets[n-1].Weight
		next.Reps = work.Sets[n-1].Reps
	}
	work.Sets = append(work.Sets, next)
	return nil
}

// AdjustWeight nudges a set's weight by delta, clamped at zero.
func (c *Controller) AdjustWeight(exercise, set int, delta float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, err := c.set(exercise, set)
	if err != nil {
		return err
	}
	next := float64(s.Weight) + delta
	if next < 0 {
		next = 0
	}
	s.Weight = models.Number(next)
	return nil
}

// UpdateCardio overwrites the actual time and/or resistance of a cardio
// exercise. Nil fields are left unchanged.
func (c *Controller) UpdateCardio(exercise int, actualTime, resistance *float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	work, err := c.cardio(exercise)
	if err != nil {
		return err
	}
	if actualTime != nil {
		work.ActualTime = *actualTime
	}
	if resistance != nil {
		work.ActualResistance = *resistance
	}
	return nil
}

// AdjustCardio nudges a cardio exercise's time and resistance by the given
// deltas, each clamped at one.
func (c *Controller) AdjustCardio(exercise int, timeDelta, resistanceDelta float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	work, err := c.cardio(exercise)
	if err != nil {
		return err
	}
	if timeDelta != 0 {
		work.ActualTime = floorOne(work.ActualTime + timeDelta)
	}
	if resistanceDelta != 0 {
		work.ActualResistance = floorOne(work.ActualResistance + resistanceDelta)
	}
	return nil
}

func floorOne(v float64) float64 {
	if v < 1 {
		return 1
	}
	return v
}

// ToggleCardio flips a cardio exercise's completed flag.
func (c *Controller) ToggleCardio(exercise int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	work, err := c.cardio(exercise)
	if err != nil {
		return err
	}
	work.Completed = !work.Completed
	return nil
}

// Finish closes the active session: detects personal records across
// non-warmup exercises, updates each exercise's estimate, working weight,
// records, trend and last-performed date, appends the finished workout to
// history, and clears the session. The exercise and history writes happen in
// a single transaction.
func (c *Controller) Finish(ctx context.Context) (models.HistoryEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil {
		return models.HistoryEntry{}, ErrNoSession
	}

	now := time.Now()
	session := c.active
	entry := models.HistoryEntry{
		ID:           uuid.NewString(),
		TemplateID:   session.TemplateID,
		TemplateName: session.TemplateName,
		Date:         now,
		DurationMS:   now.Sub(session.StartedAt).Milliseconds(),
		Notes:        session.Notes,
		Exercises:    session.Exercises,
	}

	err := c.store.Update(ctx, func(tx *storage.Tx) error {
		exercises, err := storage.Exercises(ctx, tx)
		if err != nil {
			return err
		}

		for _, se := range session.Exercises {
			ex, ok := exercises[se.ExerciseID]
			if !ok || se.IsWarmup {
				continue
			}
			switch {
			case se.Strength != nil:
				entry.PRsAchieved = append(entry.PRsAchieved, finishStrength(&ex, se.Strength, now)...)
			case se.Cardio != nil:
				entry.PRsAchieved = append(entry.PRsAchieved, finishCardio(&ex, se.Cardio, now)...)
			}
			exercises[se.ExerciseID] = ex
		}
		if entry.PRsAchieved == nil {
			entry.PRsAchieved = []string{}
		}

		if err := storage.SaveExercises(ctx, tx, exercises); err != nil {
			return err
		}
		history, err := storage.History(ctx, tx)
		if err != nil {
			return err
		}
		return storage.SaveHistory(ctx, tx, append(history, entry))
	})
	if err != nil {
		return models.HistoryEntry{}, err
	}

	c.active = nil
	c.log.Info("workout finished", "template", entry.TemplateName,
		"duration_ms", entry.DurationMS, "prs", len(entry.PRsAchieved))
	return entry, nil
}

// finishStrength folds a completed strength exercise into the exercise
// record: best estimated 1RM and heaviest completed set become the new
// estimate and working weight, and any new records produce PR strings.
func finishStrength(ex *models.Exercise, work *models.StrengthWork, now time.Time) []string {
	var completed []models.Set
	for _, s := range work.Sets {
		if s.Completed {
			completed = append(completed, s)
		}
	}
	if len(completed) == 0 {
		return nil
	}

	maxWeight, best1RM := 0.0, 0.0
	for _, s := range completed {
		weight, reps := float64(s.Weight), int(s.Reps)
		if weight > maxWeight {
			maxWeight = weight
		}
		if weight <= 0 || reps <= 0 {
			continue
		}
		rm, err := progress.OneRepMax(weight, reps)
		if err == nil && rm > best1RM {
			best1RM = rm
		}
	}

	var prs []string
	if ex.PR.Max1RM == nil || best1RM > *ex.PR.Max1RM {
		ex.PR.Max1RM = &best1RM
		prs = append(prs, fmt.Sprintf("%s: %s lbs 1RM", ex.Name, formatWeight(best1RM)))
	}
	if ex.PR.MaxWeight == nil || maxWeight > *ex.PR.MaxWeight {
		ex.PR.MaxWeight = &maxWeight
		prs = append(prs, fmt.Sprintf("%s: %s lbs max weight", ex.Name, formatWeight(maxWeight)))
	}

	ex.Trend = models.TrendOf(ex.Estimated1RM, best1RM)
	ex.Estimated1RM = &best1RM
	ex.WorkingWeight = &maxWeight
	ex.LastPerformed = &now
	return prs
}

// finishCardio folds a completed cardio exercise into the exercise record.
// A longest-time record produces a PR string; a resistance record is stored
// silently.
func finishCardio(ex *models.Exercise, work *models.CardioWork, now time.Time) []string {
	if !work.Completed {
		return nil
	}

	var prs []string
	if ex.PR.LongestTime == nil || work.ActualTime > *ex.PR.LongestTime {
		t := work.ActualTime
		ex.PR.LongestTime = &t
		prs = append(prs, fmt.Sprintf("%s: %smin longest time", ex.Name, formatWeight(t)))
	}
	if work.ActualResistance > 0 && (ex.PR.HighestResistance == nil || work.ActualResistance > *ex.PR.HighestResistance) {
		r := work.ActualResistance
		ex.PR.HighestResistance = &r
	}

	ex.LastPerformed = &now
	return prs
}

// Cancel discards the active session without writing anything. Cancelling
// with no session in progress is a no-op.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil {
		return
	}
	c.log.Info("workout cancelled", "template", c.active.TemplateName)
	c.active = nil
}

func (c *Controller) exercise(i int) (*models.SessionExercise, error) {
	if c.active == nil {
		return nil, ErrNoSession
	}
	if i < 0 || i >= len(c.active.Exercises) {
		return nil, fmt.Errorf("%w: exercise %d", ErrOutOfRange, i)
	}
	return &c.active.Exercises[i], nil
}

func (c *Controller) strength(i int) (*models.StrengthWork, error) {
	se, err := c.exercise(i)
	if err != nil {
		return nil, err
	}
	if se.Strength == nil {
		return nil, fmt.Errorf("%w: exercise %d is not strength", ErrWrongKind, i)
	}
	return se.Strength, nil
}

func (c *Controller) cardio(i int) (*models.CardioWork, error) {
	se, err := c.exercise(i)
	if err != nil {
		return nil, err
	}
	if se.Cardio == nil {
		return nil, fmt.Errorf("%w: exercise %d is not cardio", ErrWrongKind, i)
	}
	return se.Cardio, nil
}

func (c *Controller) set(exercise, set int) (*models.Set, error) {
	work, err := c.strength(exercise)
	if err != nil {
		return nil, err
	}
	if set < 0 || set >= len(work.Sets) {
		return nil, fmt.Errorf("%w: set %d", ErrOutOfRange, set)
	}
	return &work.Sets[set], nil
}

// snapshot deep-copies a session so callers can marshal it outside the lock.
func snapshot(s *models.ActiveSession) *models.ActiveSession {
	out := *s
	out.Exercises = make([]models.SessionExercise, len(s.Exercises))
	for i, se := range s.Exercises {
		cp := se
		if se.Strength != nil {
			work := *se.Strength
			work.Sets = append([]models.Set(nil), se.Strength.Sets...)
			cp.Strength = &work
		}
		if se.Cardio != nil {
			work := *se.Cardio
			cp.Cardio = &work
		}
		out.Exercises[i] = cp
	}
	return &out
}

// formatWeight renders a weight the way a person writes it: no trailing
// zeros, no exponent.
func formatWeight(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
