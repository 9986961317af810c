package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/lift/internal/ids"
	"github.com/ayoisaiah/lift/internal/insights"
	"github.com/ayoisaiah/lift/internal/models"
	"github.com/ayoisaiah/lift/internal/recommend"
	"github.com/ayoisaiah/lift/internal/ui"
)

// History prints a table of workouts.
func History(w io.Writer, records []models.WorkoutRecord, opts Options) {
	if len(records) == 0 {
		fmt.Fprintln(w, pterm.Info.Sprint(noWorkoutMsg))
		return
	}

	data := [][]string{
		{"ID", "DATE", "PLAN", "EXERCISES", "SETS", "VOLUME"},
	}

	for i := range records {
		r := &records[i]

		var sets int
		for _, e := range r.Exercises {
			sets += len(e.Sets)
		}

		data = append(data, []string{
			ids.Short(r.ID),
			r.Date.Local().Format(dateFormat + " " + opts.timeFormat()),
			ui.Plan(string(r.Type), opts.label(r.Type)),
			fmt.Sprintf("%d", len(r.Exercises)),
			fmt.Sprintf("%d", sets),
			recommend.FormatWeight(insights.Volume(r)) + opts.unit(),
		})
	}

	ui.PrintTable(data, w)
}

// FormatSets prints sets as "60x10, 60x9".
func FormatSets(sets []models.SetRecord) string {
	parts := make([]string, len(sets))
	for i, s := range sets {
		parts[i] = fmt.Sprintf("%sx%d", recommend.FormatWeight(s.Weight), s.Reps)
	}

	return strings.Join(parts, ", ")
}

// Workout prints every exercise of a workout.
func Workout(w io.Writer, r *models.WorkoutRecord, opts Options) {
	header := pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintfln(
			"%s workout on %s",
			opts.label(r.Type),
			r.Date.Local().Format(dateFormat+" "+opts.timeFormat()),
		)

	fmt.Fprint(w, header)

	data := [][]string{{"#", "EXERCISE", "SETS"}}

	for i, e := range r.Exercises {
		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			e.Name,
			FormatSets(e.Sets),
		})
	}

	ui.PrintTable(data, w)

	fmt.Fprintf(
		w,
		"Volume: %s\n",
		ui.Green(recommend.FormatWeight(insights.Volume(r))+opts.unit()),
	)
}
