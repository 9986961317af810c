package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/lift/internal/insights"
	"github.com/ayoisaiah/lift/internal/models"
	"github.com/ayoisaiah/lift/internal/ui"
)

const barChartChar = "▇"

// WeekdayCounts counts the workouts done on each day of the week.
func WeekdayCounts(history []models.WorkoutRecord, start, end time.Time) [7]int {
	var counts [7]int

	for i := range history {
		d := history[i].Date
		if d.Before(start) || d.After(end) {
			continue
		}

		counts[d.Local().Weekday()]++
	}

	return counts
}

func getBarChart(title string, labels []string, values []int) string {
	var bars pterm.Bars

	for i := range labels {
		bars = append(bars, pterm.Bar{
			Label: labels[i],
			Value: values[i],
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return ui.Blue("\n"+title+"\n") + chart
}

// getSummary prints the rolling counts.
func getSummary(s insights.Summary, days int) string {
	header := fmt.Sprintf("%s\n", ui.Blue(fmt.Sprintf("Last %d days", days)))

	return header +
		fmt.Sprintln("Workouts:", ui.Green(s.Total)) +
		fmt.Sprintln("Push:", ui.Plan(string(models.Push), s.Push)) +
		fmt.Sprintln("Pull:", ui.Plan(string(models.Pull), s.Pull)) +
		fmt.Sprintln("Custom:", ui.Plan("custom", s.Total-s.Push-s.Pull))
}

// Insights prints the rolling summary, a breakdown per plan and per weekday,
// and the latest workout.
func Insights(
	w io.Writer,
	history []models.WorkoutRecord,
	now time.Time,
	days int,
	opts Options,
) {
	summary := insights.Rolling(history, now, days)

	header := pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintfln(
			"Reporting period: %s - %s",
			now.AddDate(0, 0, -days).Format("January 02, 2006"),
			now.Format("January 02, 2006"),
		)

	output := header + getSummary(summary, days)

	if summary.Total > 0 {
		output += getBarChart(
			"Plans",
			[]string{"Push", "Pull", "Custom"},
			[]int{summary.Push, summary.Pull, summary.Total - summary.Push - summary.Pull},
		)

		counts := WeekdayCounts(history, now.AddDate(0, 0, -days), now)

		labels := make([]string, 0, len(counts))
		for d := time.Sunday; d <= time.Saturday; d++ {
			labels = append(labels, d.String())
		}

		output += getBarChart("Weekdays", labels, counts[:])
	}

	if last, ok := insights.LastWorkout(history); ok {
		output += fmt.Sprintf(
			"\n%s\n%s on %s\n",
			ui.Blue("Last workout"),
			ui.Plan(string(last.Type), opts.label(last.Type)),
			last.Date.Local().Format(dateFormat+" "+opts.timeFormat()),
		)
	}

	fmt.Fprintln(w, strings.TrimSpace(output))
}
