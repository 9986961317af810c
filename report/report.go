// Package report prints workouts, sessions, the calendar and insights to the
// terminal
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/lift/internal/models"
	"github.com/ayoisaiah/lift/internal/osutil"
)

const (
	dateFormat   = "Mon, Jan 02 2006"
	noWorkoutMsg = "No workouts found"
)

// Labeler returns the display name of a plan.
type Labeler interface {
	Label(plan models.PlanType) string
}

// Options controls how reports are printed.
type Options struct {
	Labels     Labeler
	Unit       string
	TimeFormat string
}

func (o Options) label(plan models.PlanType) string {
	if o.Labels == nil {
		return string(plan)
	}

	return o.Labels.Label(plan)
}

func (o Options) timeFormat() string {
	if o.TimeFormat == "" {
		return "15:04"
	}

	return o.TimeFormat
}

func (o Options) unit() string {
	if o.Unit == "" {
		return "kg"
	}

	return o.Unit
}

func WorkoutSaved(w models.WorkoutRecord) {
	pterm.Success.Printfln(
		"workout saved: %d exercises",
		len(w.Exercises),
	)
}

func Info(msg string, args ...any) {
	pterm.Info.Printfln(msg, args...)
}

func Error(err error) {
	pterm.Error.Println(err)
}

// Quit prints err and exits with a non-zero status.
func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(int(osutil.ExitError))
}
