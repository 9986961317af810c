// Package insights derives the calendar, rolling counts and the list of known
// exercises from the workout history
package insights

import (
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/ayoisaiah/lift/internal/models"
	"github.com/ayoisaiah/lift/internal/timeutil"
)

// DefaultWindowDays is the length of the rolling insights window.
const DefaultWindowDays = 28

// Month holds the plan types practiced on each day of a calendar month.
type Month struct {
	// Days maps a day of the month to the plan types in the order they were
	// first seen
	Days         map[int][]models.PlanType
	Year         int
	Month        time.Month
	DaysInMonth  int
	StartWeekday time.Weekday
}

// Calendar groups the workouts of a month by local calendar day.
func Calendar(
	history []models.WorkoutRecord,
	year int,
	month time.Month,
	loc *time.Location,
) Month {
	if loc == nil {
		loc = time.Local
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)

	m := Month{
		Days:         make(map[int][]models.PlanType),
		Year:         year,
		Month:        month,
		DaysInMonth:  timeutil.DaysIn(first),
		StartWeekday: first.Weekday(),
	}

	for i := range history {
		d := history[i].Date.In(loc)
		if d.Year() != year || d.Month() != month {
			continue
		}

		day := d.Day()
		if !slices.Contains(m.Days[day], history[i].Type) {
			m.Days[day] = append(m.Days[day], history[i].Type)
		}
	}

	return m
}

// Summary counts workouts by built-in plan. Custom plans only count towards
// Total.
type Summary struct {
	Push  int
	Pull  int
	Total int
}

// Rolling counts the workouts in [now-windowDays, now].
func Rolling(
	history []models.WorkoutRecord,
	now time.Time,
	windowDays int,
) Summary {
	var s Summary

	start := now.AddDate(0, 0, -windowDays)

	for i := range history {
		d := history[i].Date
		if d.Before(start) || d.After(now) {
			continue
		}

		s.Total++

		switch history[i].Type {
		case models.Push:
			s.Push++
		case models.Pull:
			s.Pull++
		}
	}

	return s
}

// KnownExerciseNames returns every exercise name found in the catalog, the
// history and the custom plans, sorted and without duplicates.
func KnownExerciseNames(
	catalog models.ExerciseCatalog,
	history []models.WorkoutRecord,
	plans []models.CustomPlan,
) []string {
	seen := make(map[string]struct{})

	add := func(names ...string) {
		for _, n := range names {
			seen[n] = struct{}{}
		}
	}

	add(catalog.Push...)
	add(catalog.Pull...)

	for i := range history {
		for _, e := range history[i].Exercises {
			add(e.Name)
		}
	}

	for i := range plans {
		add(plans[i].Exercises...)
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}

	sort.Strings(names)

	return names
}

// Filter returns the names containing query, ignoring case.
func Filter(names []string, query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]string, 0, len(names))

	for _, n := range names {
		if strings.Contains(strings.ToLower(n), q) {
			out = append(out, n)
		}
	}

	return out
}

// LastWorkout returns the most recent workout.
func LastWorkout(history []models.WorkoutRecord) (models.WorkoutRecord, bool) {
	var (
		last  models.WorkoutRecord
		found bool
	)

	for i := range history {
		if !found || history[i].Date.After(last.Date) {
			last = history[i]
			found = true
		}
	}

	return last, found
}

// Volume returns the total weight lifted in a workout.
func Volume(w *models.WorkoutRecord) float64 {
	var v float64

	for _, e := range w.Exercises {
		for _, s := range e.Sets {
			v += s.Weight * float64(s.Reps)
		}
	}

	return v
}
