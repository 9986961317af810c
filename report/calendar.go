package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ayoisaiah/lift/internal/insights"
	"github.com/ayoisaiah/lift/internal/models"
	"github.com/ayoisaiah/lift/internal/ui"
)

const (
	cellWidth   = 5
	daysPerWeek = 7
)

// marker returns the glyph shown under a day for the plans done on it.
func marker(types []models.PlanType) string {
	var b strings.Builder

	for _, t := range types {
		switch t {
		case models.Push:
			b.WriteString(ui.Plan(string(t), "P"))
		case models.Pull:
			b.WriteString(ui.Plan(string(t), "L"))
		default:
			b.WriteString(ui.Plan(string(t), "C"))
		}
	}

	return b.String()
}

// CalendarGrid lays out a month as weeks of seven cells, Sunday first. Empty
// cells are zero.
func CalendarGrid(m insights.Month) [][]int {
	var (
		weeks [][]int
		week  = make([]int, daysPerWeek)
	)

	col := int(m.StartWeekday)

	for day := 1; day <= m.DaysInMonth; day++ {
		week[col] = day
		col++

		if col == daysPerWeek {
			weeks = append(weeks, week)
			week = make([]int, daysPerWeek)
			col = 0
		}
	}

	if col > 0 {
		weeks = append(weeks, week)
	}

	return weeks
}

// Calendar prints a month with a marker under every day that has a workout:
// P for push, L for pull and C for custom plans.
func Calendar(w io.Writer, m insights.Month, today time.Time) {
	title := fmt.Sprintf("%s %d", m.Month, m.Year)
	fmt.Fprintln(w, ui.Blue(title))

	var header strings.Builder
	for d := time.Sunday; d <= time.Saturday; d++ {
		fmt.Fprintf(&header, "%-*s", cellWidth, d.String()[:2])
	}

	fmt.Fprintln(w, strings.TrimRight(header.String(), " "))

	isCurrentMonth := today.Year() == m.Year && today.Month() == m.Month

	for _, week := range CalendarGrid(m) {
		var days, marks strings.Builder

		for _, day := range week {
			if day == 0 {
				days.WriteString(strings.Repeat(" ", cellWidth))
				marks.WriteString(strings.Repeat(" ", cellWidth))

				continue
			}

			label := fmt.Sprintf("%2d", day)
			if isCurrentMonth && today.Day() == day {
				label = ui.Highlight(label)
			}

			days.WriteString(label + strings.Repeat(" ", cellWidth-2))

			types := m.Days[day]
			marks.WriteString(marker(types))
			marks.WriteString(strings.Repeat(" ", max(0, cellWidth-len(types))))
		}

		fmt.Fprintln(w, strings.TrimRight(days.String(), " "))
		fmt.Fprintln(w, strings.TrimRight(marks.String(), " "))
	}

	fmt.Fprintf(
		w,
		"\n%s push  %s pull  %s custom\n",
		ui.Plan(string(models.Push), "P"),
		ui.Plan(string(models.Pull), "L"),
		ui.Plan("custom", "C"),
	)
}
