// Package models defines the records that lift stores and operates on
package models

import (
	"math"
	"slices"
	"strings"
	"time"
)

// PlanType identifies a workout plan. It is either one of the built-in plans
// or the ID of a custom plan.
type PlanType string

const (
	Push PlanType = "push"
	Pull PlanType = "pull"
)

// CustomPlanPrefix is prepended to the IDs of user-defined plans.
const CustomPlanPrefix = "custom_"

// BuiltinPlans lists the plans that ship with lift.
var BuiltinPlans = []PlanType{Push, Pull}

// IsBuiltin reports whether the plan is push or pull.
func (p PlanType) IsBuiltin() bool {
	return p == Push || p == Pull
}

// IsCustom reports whether the plan refers to a user-defined plan.
func (p PlanType) IsCustom() bool {
	return strings.HasPrefix(string(p), CustomPlanPrefix)
}

// SetRecord is one set of an exercise. A zero value means the set has not
// been filled in yet.
type SetRecord struct {
	Weight float64 `json:"weight" yaml:"weight"`
	Reps   int     `json:"reps"   yaml:"reps"`
}

// RoundReps rounds v to the nearest whole rep. Negative and NaN values give
// zero and values beyond the range of int are clamped.
func RoundReps(v float64) int {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= float64(math.MaxInt):
		return math.MaxInt
	default:
		return int(math.Round(v))
	}
}

// ExerciseEntry is an exercise inside an active session.
type ExerciseEntry struct {
	ID       string      `json:"id"       yaml:"id"`
	Name     string      `json:"name"     yaml:"name"`
	Sets     []SetRecord `json:"sets"     yaml:"sets"`
	LastSets []SetRecord `json:"lastSets" yaml:"lastSets"`
}

// ExerciseLog is the persisted form of an exercise inside a workout.
type ExerciseLog struct {
	Name string      `json:"name" yaml:"name"`
	Sets []SetRecord `json:"sets" yaml:"sets"`
}

// WorkoutRecord is a completed workout.
type WorkoutRecord struct {
	Date      time.Time     `json:"date"      yaml:"date"`
	ID        string        `json:"id"        yaml:"id"`
	Type      PlanType      `json:"type"      yaml:"type"`
	Exercises []ExerciseLog `json:"exercises" yaml:"exercises"`
}

// Exercise returns the first logged exercise with the given name.
func (w *WorkoutRecord) Exercise(name string) (ExerciseLog, bool) {
	for _, e := range w.Exercises {
		if e.Name == name {
			return e, true
		}
	}

	return ExerciseLog{}, false
}

// HasExercise reports whether the workout contains the named exercise.
func (w *WorkoutRecord) HasExercise(name string) bool {
	_, ok := w.Exercise(name)
	return ok
}

// Clone returns a deep copy of the workout.
func (w WorkoutRecord) Clone() WorkoutRecord {
	c := w

	c.Exercises = make([]ExerciseLog, len(w.Exercises))
	for i, e := range w.Exercises {
		c.Exercises[i] = ExerciseLog{
			Name: e.Name,
			Sets: slices.Clone(e.Sets),
		}
	}

	return c
}

// ActiveSession is a workout in progress.
type ActiveSession struct {
	Date      time.Time       `json:"date"      yaml:"date"`
	ID        string          `json:"id"        yaml:"id"`
	Type      PlanType        `json:"type"      yaml:"type"`
	Exercises []ExerciseEntry `json:"exercises" yaml:"exercises"`
}

// ToRecord converts the session to its persisted form. Session-only data
// (exercise IDs and the previous sets) is dropped.
func (s *ActiveSession) ToRecord() WorkoutRecord {
	exercises := make([]ExerciseLog, len(s.Exercises))

	for i, e := range s.Exercises {
		exercises[i] = ExerciseLog{
			Name: e.Name,
			Sets: slices.Clone(e.Sets),
		}
	}

	return WorkoutRecord{
		ID:        s.ID,
		Type:      s.Type,
		Date:      s.Date,
		Exercises: exercises,
	}
}

// Clone returns a deep copy of the session.
func (s *ActiveSession) Clone() *ActiveSession {
	if s == nil {
		return nil
	}

	c := *s

	c.Exercises = make([]ExerciseEntry, len(s.Exercises))
	for i, e := range s.Exercises {
		c.Exercises[i] = ExerciseEntry{
			ID:       e.ID,
			Name:     e.Name,
			Sets:     slices.Clone(e.Sets),
			LastSets: slices.Clone(e.LastSets),
		}
	}

	return &c
}

// CustomPlan is a user-defined workout plan.
type CustomPlan struct {
	ID        PlanType `json:"id"        yaml:"id"`
	Name      string   `json:"name"      yaml:"name"`
	Exercises []string `json:"exercises" yaml:"exercises"`
}

// ExerciseCatalog holds the exercise lists of the built-in plans.
type ExerciseCatalog struct {
	Push []string `json:"push" yaml:"push"`
	Pull []string `json:"pull" yaml:"pull"`
}

// DefaultCatalog returns the exercise lists used when none have been saved.
func DefaultCatalog() ExerciseCatalog {
	return ExerciseCatalog{
		Pull: []string{
			"Lat Pulldowns",
			"T-Bar Row",
			"Row",
			"Assisted Pull Ups",
			"Pec Rear Delts",
			"Bicep Curls",
			"Preacher Curls",
		},
		Push: []string{
			"Smith Machine",
			"Chest Press Machine",
			"Cable Chest Exercise",
			"Chest Press (Hands Touch)",
			"Flys",
			"Lat Raises",
			"Shoulder Press",
			"Barbell Skull Crushers",
			"Tricep Extensions",
			"Seatbelts",
		},
	}
}

// Clone returns a deep copy of the catalog.
func (c ExerciseCatalog) Clone() ExerciseCatalog {
	return ExerciseCatalog{
		Push: slices.Clone(c.Push),
		Pull: slices.Clone(c.Pull),
	}
}
