// Package recommend derives previous performance and progressive overload
// suggestions from the workout history
package recommend

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strconv"

	"github.com/ayoisaiah/lift/internal/models"
)

// Tone is the qualitative colour of a recommendation.
type Tone string

const (
	Good    Tone = "good"
	Bad     Tone = "bad"
	Neutral Tone = "neutral"
)

// windowSize is the number of recent sessions gathered for a recommendation.
const windowSize = 3

// Rules holds the thresholds of the progressive overload rule.
type Rules struct {
	Unit      string
	Increment float64
	HighReps  float64
	LowReps   float64
}

// DefaultRules returns the stock progressive overload rule.
func DefaultRules() Rules {
	return Rules{
		Increment: 2.5,
		HighReps:  10,
		LowReps:   6,
		Unit:      "kg",
	}
}

// Recommendation is an advisory suggestion for the next session of an
// exercise.
type Recommendation struct {
	Message      string
	Tone         Tone
	Window       []models.WorkoutRecord
	LastSets     []models.SetRecord
	AvgReps      float64
	LastWeight   float64
	TargetWeight float64
	TargetReps   int
}

// Predicate selects workouts from the history.
type Predicate func(w *models.WorkoutRecord) bool

// sortedMatches returns the workouts matching pred, most recent first.
// Workouts sharing a date keep their order in history.
func sortedMatches(
	history []models.WorkoutRecord,
	pred Predicate,
) []models.WorkoutRecord {
	var matches []models.WorkoutRecord

	for i := range history {
		if pred(&history[i]) {
			matches = append(matches, history[i])
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Date.After(matches[j].Date)
	})

	return matches
}

// MostRecent returns the latest workout that satisfies pred.
func MostRecent(
	history []models.WorkoutRecord,
	pred Predicate,
) (models.WorkoutRecord, bool) {
	matches := sortedMatches(history, pred)
	if len(matches) == 0 {
		return models.WorkoutRecord{}, false
	}

	return matches[0], true
}

// ForExercise matches workouts of the given plan that contain name.
func ForExercise(plan models.PlanType, name string) Predicate {
	return func(w *models.WorkoutRecord) bool {
		return w.Type == plan && w.HasExercise(name)
	}
}

// ForExerciseAnyType matches workouts of any plan that contain name.
func ForExerciseAnyType(name string) Predicate {
	return func(w *models.WorkoutRecord) bool {
		return w.HasExercise(name)
	}
}

func setsOf(
	history []models.WorkoutRecord,
	pred Predicate,
	name string,
) ([]models.SetRecord, bool) {
	w, ok := MostRecent(history, pred)
	if !ok {
		return nil, false
	}

	e, ok := w.Exercise(name)
	if !ok {
		return nil, false
	}

	return slices.Clone(e.Sets), true
}

// LastSets returns the sets performed for name in the latest workout of the
// given plan that included it.
func LastSets(
	history []models.WorkoutRecord,
	plan models.PlanType,
	name string,
) ([]models.SetRecord, bool) {
	return setsOf(history, ForExercise(plan, name), name)
}

// LastSetsAnyType is like LastSets but ignores the plan.
func LastSetsAnyType(
	history []models.WorkoutRecord,
	name string,
) ([]models.SetRecord, bool) {
	return setsOf(history, ForExerciseAnyType(name), name)
}

// FormatWeight prints a weight without trailing zeros.
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

// Recommend suggests the next target for an exercise based on the most recent
// session of the same plan. Up to three recent sessions are gathered into
// Window but only the latest one drives the suggestion.
func (r Rules) Recommend(
	history []models.WorkoutRecord,
	name string,
	plan models.PlanType,
) (Recommendation, bool) {
	matches := sortedMatches(history, ForExercise(plan, name))
	if len(matches) == 0 {
		return Recommendation{}, false
	}

	window := matches[:min(windowSize, len(matches))]

	last, _ := window[0].Exercise(name)
	if len(last.Sets) == 0 {
		return Recommendation{}, false
	}

	var total float64
	for _, s := range last.Sets {
		total += float64(s.Reps)
	}

	avg := total / float64(len(last.Sets))
	rounded := int(math.Round(avg))
	lastWeight := last.Sets[0].Weight

	rec := Recommendation{
		Window:       window,
		LastSets:     slices.Clone(last.Sets),
		AvgReps:      avg,
		LastWeight:   lastWeight,
		TargetWeight: lastWeight,
	}

	switch {
	case avg >= r.HighReps:
		rec.TargetWeight = lastWeight + r.Increment
		rec.Tone = Good
		rec.Message = fmt.Sprintf(
			"%d reps — try %s%s",
			rounded,
			FormatWeight(rec.TargetWeight),
			r.Unit,
		)
	case avg <= r.LowReps:
		rec.TargetWeight = math.Max(0, lastWeight-r.Increment)
		rec.Tone = Bad
		rec.Message = fmt.Sprintf(
			"%d reps — drop to %s%s",
			rounded,
			FormatWeight(rec.TargetWeight),
			r.Unit,
		)
	default:
		rec.TargetReps = rounded + 2
		rec.Tone = Neutral
		rec.Message = fmt.Sprintf(
			"%d reps — push for %d",
			rounded,
			rec.TargetReps,
		)
	}

	return rec, true
}

// Recommend applies the default rules.
func Recommend(
	history []models.WorkoutRecord,
	name string,
	plan models.PlanType,
) (Recommendation, bool) {
	return DefaultRules().Recommend(history, name, plan)
}
