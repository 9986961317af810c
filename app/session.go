package app

import (
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/lift/internal/models"
	"github.com/ayoisaiah/lift/internal/session"
	"github.com/ayoisaiah/lift/internal/timeutil"
	"github.com/ayoisaiah/lift/report"
	"github.com/ayoisaiah/lift/tracker"
)

// recentWorkouts is the number of workouts listed on the home screen.
const recentWorkouts = 5

// requireArgs checks that the command received at least n arguments.
func requireArgs(ctx *cli.Context, n int) error {
	if ctx.Args().Len() < n {
		return errMissingArgs.Fmt(ctx.Command.ArgsUsage)
	}

	return nil
}

// parsePosition converts a 1-based position from the command line to an
// index into a list of n items.
func parsePosition(what, raw string, n int) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || i < 1 || i > n {
		return 0, errInvalidPosition.Fmt(what, n, raw)
	}

	return i - 1, nil
}

func parseField(raw string) (session.Field, error) {
	switch session.Field(strings.ToLower(strings.TrimSpace(raw))) {
	case session.Weight:
		return session.Weight, nil
	case session.Reps:
		return session.Reps, nil
	}

	return "", errInvalidField.Fmt(raw)
}

func activeSession(a *liftApp) (*models.ActiveSession, error) {
	st, ok := a.root.Session.State().(session.InSession)
	if !ok {
		return nil, errNoSession
	}

	return st.Session, nil
}

// selectExercise returns the exercise at the 1-based position in the first
// argument.
func selectExercise(
	ctx *cli.Context,
	a *liftApp,
) (*models.ActiveSession, models.ExerciseEntry, error) {
	sess, err := activeSession(a)
	if err != nil {
		return nil, models.ExerciseEntry{}, err
	}

	i, err := parsePosition("exercise", ctx.Args().Get(0), len(sess.Exercises))
	if err != nil {
		return nil, models.ExerciseEntry{}, err
	}

	return sess, sess.Exercises[i], nil
}

func printSession(ctx *cli.Context, a *liftApp) error {
	sess, err := activeSession(a)
	if err != nil {
		return err
	}

	report.Session(ctx.App.Writer, sess, a.root.Session.Recommend, a.reportOpts())

	return nil
}

func runTracker(a *liftApp) error {
	m := tracker.New(a.root.Session, tracker.Options{
		Labels:    a.root.Resolver(),
		Unit:      a.cfg.Display.Unit,
		DarkTheme: a.cfg.Display.DarkTheme,
		Known:     a.root.KnownExercises(),
	})

	res, err := tracker.Run(m)
	if err != nil {
		return err
	}

	switch {
	case res.Workout != nil:
		a.workoutSaved(*res.Workout)
	case res.Cancelled:
		report.Info("Workout discarded")
	}

	return nil
}

// startAction starts a workout of the plan named in the first argument, or
// of the plan picked from a list.
func startAction(ctx *cli.Context, a *liftApp) error {
	if a.root.Session.Active() && !ctx.Bool("yes") {
		ok, err := confirm("A workout is already in progress. Discard it and start over?")
		if err != nil || !ok {
			return err
		}
	}

	var (
		plan models.PlanType
		err  error
	)

	if ctx.Args().Present() {
		plan, err = resolvePlan(a, strings.Join(ctx.Args().Slice(), " "))
	} else {
		plan, err = selectPlan(a)
	}

	if err != nil {
		return err
	}

	date, err := timeutil.FromStr(ctx.String("date"), a.now())
	if err != nil {
		return err
	}

	if err := a.root.Start(plan, date); err != nil {
		return err
	}

	if ctx.Bool("no-tui") {
		return printSession(ctx, a)
	}

	return runTracker(a)
}

func resumeAction(_ *cli.Context, a *liftApp) error {
	if !a.root.Session.Active() {
		return errNoSession
	}

	return runTracker(a)
}

func statusAction(ctx *cli.Context, a *liftApp) error {
	if !a.root.Session.Active() {
		report.Info("No workout in progress")
		return nil
	}

	return printSession(ctx, a)
}

func setAction(ctx *cli.Context, a *liftApp) error {
	if err := requireArgs(ctx, 4); err != nil {
		return err
	}

	_, ex, err := selectExercise(ctx, a)
	if err != nil {
		return err
	}

	idx, err := parsePosition("set", ctx.Args().Get(1), len(ex.Sets))
	if err != nil {
		return err
	}

	field, err := parseField(ctx.Args().Get(2))
	if err != nil {
		return err
	}

	if !a.root.Session.UpdateSet(ex.ID, idx, field, ctx.Args().Get(3)) {
		return errEditRejected
	}

	return printSession(ctx, a)
}

func addSetAction(ctx *cli.Context, a *liftApp) error {
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}

	_, ex, err := selectExercise(ctx, a)
	if err != nil {
		return err
	}

	if !a.root.Session.AddSet(ex.ID) {
		return errEditRejected
	}

	return printSession(ctx, a)
}

func removeSetAction(ctx *cli.Context, a *liftApp) error {
	if err := requireArgs(ctx, 2); err != nil {
		return err
	}

	_, ex, err := selectExercise(ctx, a)
	if err != nil {
		return err
	}

	idx, err := parsePosition("set", ctx.Args().Get(1), len(ex.Sets))
	if err != nil {
		return err
	}

	if !a.root.Session.RemoveSet(ex.ID, idx) {
		return errEditRejected.Wrap(errLastSet)
	}

	return printSession(ctx, a)
}

func insertAction(ctx *cli.Context, a *liftApp) error {
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}

	sess, err := activeSession(a)
	if err != nil {
		return err
	}

	pos := session.End

	if ctx.IsSet("at") {
		pos, err = parsePosition(
			"position",
			strconv.Itoa(ctx.Int("at")),
			len(sess.Exercises)+1,
		)
		if err != nil {
			return err
		}
	}

	name := strings.Join(ctx.Args().Slice(), " ")

	if !a.root.Session.InsertExercise(name, pos) {
		return errEditRejected
	}

	return printSession(ctx, a)
}

func removeAction(ctx *cli.Context, a *liftApp) error {
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}

	_, ex, err := selectExercise(ctx, a)
	if err != nil {
		return err
	}

	if !a.root.Session.RemoveExercise(ex.ID) {
		return errEditRejected
	}

	return printSession(ctx, a)
}

func finishAction(_ *cli.Context, a *liftApp) error {
	rec, ok := a.root.Session.Finish()
	if !ok {
		return errNoSession
	}

	a.workoutSaved(rec)

	return nil
}

func cancelAction(ctx *cli.Context, a *liftApp) error {
	if !a.root.Session.Active() {
		return errNoSession
	}

	if !ctx.Bool("yes") {
		ok, err := confirm("Discard the workout in progress?")
		if err != nil || !ok {
			return err
		}
	}

	a.root.Session.Cancel()

	report.Info("Workout discarded")

	return nil
}
