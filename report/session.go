package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/lift/internal/models"
	"github.com/ayoisaiah/lift/internal/recommend"
	"github.com/ayoisaiah/lift/internal/session"
	"github.com/ayoisaiah/lift/internal/ui"
)

// Recommender suggests the next target of an exercise.
type Recommender func(name string) (recommend.Recommendation, bool)

// Session prints the workout in progress. Each set shows how it compares with
// the same set last time.
func Session(
	w io.Writer,
	sess *models.ActiveSession,
	rec Recommender,
	opts Options,
) {
	header := pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgGreen)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintfln(
			"%s workout in progress (started %s)",
			opts.label(sess.Type),
			sess.Date.Local().Format(dateFormat+" "+opts.timeFormat()),
		)

	fmt.Fprint(w, header)

	if len(sess.Exercises) == 0 {
		fmt.Fprintln(w, pterm.Info.Sprint("No exercises yet. Add one with 'lift insert <name>'"))
		return
	}

	data := [][]string{{"#", "EXERCISE", "SETS", "LAST TIME", "SUGGESTION"}}

	for i, e := range sess.Exercises {
		var suggestion string

		if rec != nil {
			if r, ok := rec(e.Name); ok {
				suggestion = ui.Tone(string(r.Tone), r.Message)
			}
		}

		last := ui.Gray("-")
		if e.LastSets != nil {
			last = FormatSets(e.LastSets)
		}

		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			e.Name,
			formatTrendSets(e, opts.unit()),
			last,
			suggestion,
		})
	}

	ui.PrintTable(data, w)
}

func formatTrendSets(e models.ExerciseEntry, unit string) string {
	parts := make([]string, len(e.Sets))

	for i, s := range e.Sets {
		weight := ui.Trend(
			string(session.Trend(e.Sets, e.LastSets, i, session.Weight)),
			recommend.FormatWeight(s.Weight)+unit,
		)

		reps := ui.Trend(
			string(session.Trend(e.Sets, e.LastSets, i, session.Reps)),
			s.Reps,
		)

		parts[i] = fmt.Sprintf("%d: %s x %s", i+1, weight, reps)
	}

	return strings.Join(parts, "\n")
}

// Recommendation prints the suggestion for an exercise and the sessions it
// was derived from.
func Recommendation(
	w io.Writer,
	name string,
	r recommend.Recommendation,
) {
	fmt.Fprintf(w, "%s %s\n", ui.Blue(name+":"), ui.Tone(string(r.Tone), r.Message))

	for i := range r.Window {
		e, _ := r.Window[i].Exercise(name)

		fmt.Fprintf(
			w,
			"  %s  %s\n",
			ui.Gray(r.Window[i].Date.Local().Format(dateFormat)),
			FormatSets(e.Sets),
		)
	}
}
