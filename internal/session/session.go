// Package session runs the workout in progress: it builds an active session
// from a plan and the workout history, applies edits to its sets and
// exercises, and either commits it to the history or discards it
package session

import (
	"errors"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/ayoisaiah/lift/internal/history"
	"github.com/ayoisaiah/lift/internal/ids"
	"github.com/ayoisaiah/lift/internal/models"
	"github.com/ayoisaiah/lift/internal/recommend"
)

// seededSets is the number of sets every new exercise starts with.
const seededSets = 3

// End appends an exercise when passed as the position to InsertExercise.
const End = -1

// ErrEmptyPlan is returned when starting a custom plan that has no
// exercises.
var ErrEmptyPlan = errors.New("the selected plan has no exercises")

// Field names an editable attribute of a set.
type Field string

const (
	Weight Field = "weight"
	Reps   Field = "reps"
)

// State is either NoSession or InSession.
type State interface {
	isState()
}

// NoSession means no workout is in progress.
type NoSession struct{}

// InSession carries the workout in progress.
type InSession struct {
	Session *models.ActiveSession
}

func (NoSession) isState() {}

func (InSession) isState() {}

// Snapshotter persists the workout in progress.
type Snapshotter interface {
	SaveActiveSession(sess *models.ActiveSession) error
	DeleteActiveSession() error
	CommitWorkout(history []models.WorkoutRecord) error
}

// Engine owns the active session.
type Engine struct {
	history *history.Store
	db      Snapshotter
	ids     ids.Generator
	now     func() time.Time
	log     *slog.Logger
	current *models.ActiveSession
	rules   recommend.Rules
}

// Option configures an Engine.
type Option func(e *Engine)

// WithIDGenerator sets the source of session and exercise IDs.
func WithIDGenerator(g ids.Generator) Option {
	return func(e *Engine) {
		e.ids = g
	}
}

// WithClock sets the function used to read the current time.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithLogger sets the logger used to report persistence failures.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// WithRecommender sets the progressive overload rules used by Recommend.
func WithRecommender(r recommend.Rules) Option {
	return func(e *Engine) {
		e.rules = r
	}
}

// Restore resumes a previously persisted session.
func Restore(sess *models.ActiveSession) Option {
	return func(e *Engine) {
		e.current = sess.Clone()
	}
}

// New returns an Engine reading from and committing to h.
func New(h *history.Store, db Snapshotter, opts ...Option) *Engine {
	e := &Engine{
		history: h,
		db:      db,
		ids:     ids.UUID{},
		now:     time.Now,
		log:     slog.Default(),
		rules:   recommend.DefaultRules(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// State reports whether a workout is in progress. The returned session is a
// copy.
func (e *Engine) State() State {
	if e.current == nil {
		return NoSession{}
	}

	return InSession{Session: e.current.Clone()}
}

// Active reports whether a workout is in progress.
func (e *Engine) Active() bool {
	return e.current != nil
}

// Start begins a new session of plan with one exercise per name, replacing
// any session already in progress. A zero date means now.
func (e *Engine) Start(
	plan models.PlanType,
	names []string,
	date time.Time,
) error {
	if len(names) == 0 && !plan.IsBuiltin() {
		return ErrEmptyPlan
	}

	if date.IsZero() {
		date = e.now()
	}

	sess := &models.ActiveSession{
		ID:        e.ids.NewID(),
		Type:      plan,
		Date:      date,
		Exercises: make([]models.ExerciseEntry, 0, len(names)),
	}

	for _, name := range names {
		sess.Exercises = append(sess.Exercises, e.BuildEntry(name, plan))
	}

	e.current = sess

	e.log.Info(
		"session started",
		slog.String("id", sess.ID),
		slog.String("type", string(plan)),
		slog.Int("exercises", len(names)),
	)

	e.persist()

	return nil
}

// BuildEntry creates an exercise seeded from the last time it was performed
// as part of plan. An empty plan matches workouts of any type.
func (e *Engine) BuildEntry(name string, plan models.PlanType) models.ExerciseEntry {
	records := e.history.Records()

	var (
		last  []models.SetRecord
		found bool
	)

	if plan != "" {
		last, found = recommend.LastSets(records, plan, name)
	} else {
		last, found = recommend.LastSetsAnyType(records, name)
	}

	sets := make([]models.SetRecord, seededSets)
	for i := range sets {
		if i < len(last) {
			sets[i] = last[i]
		}
	}

	entry := models.ExerciseEntry{
		ID:   e.ids.NewID(),
		Name: name,
		Sets: sets,
	}

	if found {
		entry.LastSets = last
	}

	return entry
}

// ParseValue converts user input to a set value. Anything that is not a
// finite non-negative number becomes zero.
func ParseValue(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}

	return v
}

func (e *Engine) exercise(exID string) int {
	if e.current == nil {
		return -1
	}

	return slices.IndexFunc(e.current.Exercises, func(x models.ExerciseEntry) bool {
		return x.ID == exID
	})
}

// UpdateSet sets one field of a set from raw user input.
func (e *Engine) UpdateSet(exID string, idx int, field Field, raw string) bool {
	i := e.exercise(exID)
	if i < 0 {
		return false
	}

	ex := &e.current.Exercises[i]
	if idx < 0 || idx >= len(ex.Sets) {
		return false
	}

	v := ParseValue(raw)

	switch field {
	case Weight:
		ex.Sets[idx].Weight = v
	case Reps:
		ex.Sets[idx].Reps = models.RoundReps(v)
	default:
		return false
	}

	e.persist()

	return true
}

// AddSet appends a copy of the last set of an exercise.
func (e *Engine) AddSet(exID string) bool {
	i := e.exercise(exID)
	if i < 0 {
		return false
	}

	ex := &e.current.Exercises[i]

	var next models.SetRecord
	if n := len(ex.Sets); n > 0 {
		next = ex.Sets[n-1]
	}

	ex.Sets = append(ex.Sets, next)

	e.persist()

	return true
}

// RemoveSet deletes a set. The last remaining set of an exercise is never
// removed.
func (e *Engine) RemoveSet(exID string, idx int) bool {
	i := e.exercise(exID)
	if i < 0 {
		return false
	}

	ex := &e.current.Exercises[i]
	if len(ex.Sets) <= 1 || idx < 0 || idx >= len(ex.Sets) {
		return false
	}

	ex.Sets = slices.Delete(ex.Sets, idx, idx+1)

	e.persist()

	return true
}

// InsertExercise adds an exercise at pos, or at the end when pos is End.
func (e *Engine) InsertExercise(name string, pos int) bool {
	if e.current == nil {
		return false
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}

	n := len(e.current.Exercises)
	if pos == End {
		pos = n
	}

	if pos < 0 || pos > n {
		return false
	}

	entry := e.BuildEntry(name, e.current.Type)
	e.current.Exercises = slices.Insert(e.current.Exercises, pos, entry)

	e.persist()

	return true
}

// RemoveExercise deletes an exercise from the session.
func (e *Engine) RemoveExercise(exID string) bool {
	i := e.exercise(exID)
	if i < 0 {
		return false
	}

	e.current.Exercises = slices.Delete(e.current.Exercises, i, i+1)

	e.persist()

	return true
}

// Finish moves the session to the front of the history and ends it.
func (e *Engine) Finish() (models.WorkoutRecord, bool) {
	if e.current == nil {
		return models.WorkoutRecord{}, false
	}

	rec := e.current.ToRecord()
	records := e.history.Push(rec)
	e.current = nil

	err := e.db.CommitWorkout(records)
	if err != nil {
		e.log.Error(
			"saving finished workout failed",
			slog.String("id", rec.ID),
			slog.Any("error", err),
		)
	}

	e.log.Info("session finished", slog.String("id", rec.ID))

	return rec, true
}

// Cancel discards the session without recording it.
func (e *Engine) Cancel() bool {
	if e.current == nil {
		return false
	}

	e.log.Info("session cancelled", slog.String("id", e.current.ID))

	e.current = nil
	e.persist()

	return true
}

// Recommend returns the suggestion for an exercise of the current session.
func (e *Engine) Recommend(name string) (recommend.Recommendation, bool) {
	if e.current == nil {
		return recommend.Recommendation{}, false
	}

	return e.rules.Recommend(e.history.Records(), name, e.current.Type)
}

func (e *Engine) persist() {
	var err error

	if e.current == nil {
		err = e.db.DeleteActiveSession()
	} else {
		err = e.db.SaveActiveSession(e.current)
	}

	if err != nil {
		e.log.Error("saving session snapshot failed", slog.Any("error", err))
	}
}
