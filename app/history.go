package app

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/lift/internal/insights"
	"github.com/ayoisaiah/lift/internal/models"
	"github.com/ayoisaiah/lift/internal/recommend"
	"github.com/ayoisaiah/lift/internal/timeutil"
	"github.com/ayoisaiah/lift/report"
)

func parsePeriod(raw string) (timeutil.Period, error) {
	if raw == "" {
		return timeutil.PeriodAllTime, nil
	}

	p := timeutil.Period(strings.ToLower(strings.TrimSpace(raw)))
	if !slices.Contains(timeutil.PeriodCollection, p) {
		names := make([]string, len(timeutil.PeriodCollection))
		for i, c := range timeutil.PeriodCollection {
			names[i] = string(c)
		}

		return "", errInvalidPeriod.Fmt(strings.Join(names, ", "), raw)
	}

	return p, nil
}

// filterHistory keeps the workouts of plan (any plan when empty) dated within
// start and end. A zero end has no upper bound.
func filterHistory(
	records []models.WorkoutRecord,
	plan models.PlanType,
	start, end time.Time,
) []models.WorkoutRecord {
	out := make([]models.WorkoutRecord, 0, len(records))

	for _, r := range records {
		if plan != "" && r.Type != plan {
			continue
		}

		if r.Date.Before(start) || (!end.IsZero() && r.Date.After(end)) {
			continue
		}

		out = append(out, r)
	}

	return out
}

// findWorkout returns the only workout whose ID starts with prefix.
func findWorkout(
	records []models.WorkoutRecord,
	prefix string,
) (models.WorkoutRecord, error) {
	prefix = strings.TrimSpace(prefix)

	var found []models.WorkoutRecord

	for _, r := range records {
		if r.ID == prefix {
			return r, nil
		}

		if prefix != "" && strings.HasPrefix(r.ID, prefix) {
			found = append(found, r)
		}
	}

	switch len(found) {
	case 0:
		return models.WorkoutRecord{}, errWorkoutNotFound.Fmt(prefix)
	case 1:
		return found[0], nil
	default:
		return models.WorkoutRecord{}, errAmbiguousID.Fmt(prefix, len(found))
	}
}

func historyAction(ctx *cli.Context, a *liftApp) error {
	var plan models.PlanType

	if t := ctx.String("type"); t != "" {
		p, err := resolvePlan(a, t)
		if err != nil {
			return err
		}

		plan = p
	}

	period, err := parsePeriod(ctx.String("period"))
	if err != nil {
		return err
	}

	start, end := period.Bounds(a.now())
	if period == timeutil.PeriodAllTime {
		end = time.Time{}
	}

	records := filterHistory(a.root.History.Records(), plan, start, end)

	report.History(ctx.App.Writer, records, a.reportOpts())

	return nil
}

func showAction(ctx *cli.Context, a *liftApp) error {
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}

	w, err := findWorkout(a.root.History.Records(), ctx.Args().First())
	if err != nil {
		return err
	}

	report.Workout(ctx.App.Writer, &w, a.reportOpts())

	return nil
}

func deleteAction(ctx *cli.Context, a *liftApp) error {
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}

	w, err := findWorkout(a.root.History.Records(), ctx.Args().First())
	if err != nil {
		return err
	}

	report.Workout(ctx.App.Writer, &w, a.reportOpts())

	if !ctx.Bool("yes") {
		ok, err := confirm("The workout above will be deleted permanently. Proceed?")
		if err != nil || !ok {
			return err
		}
	}

	if a.root.History.Delete(w.ID) {
		report.Info("Workout deleted")
	}

	return nil
}

func calendarAction(ctx *cli.Context, a *liftApp) error {
	now := a.now()

	year, month, err := timeutil.ParseMonth(ctx.String("month"), now)
	if err != nil {
		return err
	}

	m := insights.Calendar(a.root.History.Records(), year, month, now.Location())

	report.Calendar(ctx.App.Writer, m, now)

	return nil
}

func insightsAction(ctx *cli.Context, a *liftApp) error {
	report.Insights(
		ctx.App.Writer,
		a.root.History.Records(),
		a.now(),
		a.cfg.Insights.WindowDays,
		a.reportOpts(),
	)

	return nil
}

// recommendPlan picks the plan a recommendation is computed for: the --type
// flag, then the workout in progress, then the latest workout that included
// the exercise.
func recommendPlan(
	ctx *cli.Context,
	a *liftApp,
	name string,
) (models.PlanType, error) {
	if t := ctx.String("type"); t != "" {
		return resolvePlan(a, t)
	}

	if sess, err := activeSession(a); err == nil {
		return sess.Type, nil
	}

	w, ok := recommend.MostRecent(
		a.root.History.Records(),
		recommend.ForExerciseAnyType(name),
	)
	if !ok {
		return "", nil
	}

	return w.Type, nil
}

func recommendAction(ctx *cli.Context, a *liftApp) error {
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}

	name := strings.Join(ctx.Args().Slice(), " ")

	plan, err := recommendPlan(ctx, a, name)
	if err != nil {
		return err
	}

	r, ok := a.root.Rules.Recommend(a.root.History.Records(), name, plan)
	if !ok {
		report.Info("No history for %s", name)
		return nil
	}

	fmt.Fprintln(ctx.App.Writer)
	report.Recommendation(ctx.App.Writer, name, r)

	return nil
}
