package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/lift/internal/models"
	"github.com/ayoisaiah/lift/internal/ui"
)

// Exercises prints a numbered list of exercise names under a title.
func Exercises(w io.Writer, title string, names []string) {
	fmt.Fprintln(w, ui.Blue(title))

	if len(names) == 0 {
		fmt.Fprintln(w, pterm.Info.Sprint("No exercises"))
		return
	}

	for i, n := range names {
		fmt.Fprintf(w, "%3d. %s\n", i+1, n)
	}
}

// Plans prints a table of custom plans.
func Plans(w io.Writer, plans []models.CustomPlan) {
	if len(plans) == 0 {
		fmt.Fprintln(w, pterm.Info.Sprint("No custom plans. Create one with 'lift plans create'"))
		return
	}

	data := [][]string{{"ID", "NAME", "EXERCISES"}}

	for _, p := range plans {
		data = append(data, []string{
			string(p.ID),
			ui.Plan(string(p.ID), p.Name),
			strings.Join(p.Exercises, "\n"),
		})
	}

	ui.PrintTable(data, w)
}
