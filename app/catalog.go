package app

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/lift/internal/insights"
	"github.com/ayoisaiah/lift/internal/models"
	"github.com/ayoisaiah/lift/report"
)

func builtinPlan(raw string) (models.PlanType, error) {
	p := models.PlanType(strings.ToLower(strings.TrimSpace(raw)))
	if !p.IsBuiltin() {
		return "", errNotBuiltin.Fmt(raw)
	}

	return p, nil
}

func exercisesListAction(ctx *cli.Context, a *liftApp) error {
	plans := models.BuiltinPlans

	if ctx.Args().Present() {
		p, err := builtinPlan(ctx.Args().First())
		if err != nil {
			return err
		}

		plans = []models.PlanType{p}
	}

	resolver := a.root.Resolver()

	for _, p := range plans {
		report.Exercises(ctx.App.Writer, resolver.Label(p), a.root.Catalog.Exercises(p))
	}

	return nil
}

func exercisesAddAction(ctx *cli.Context, a *liftApp) error {
	if err := requireArgs(ctx, 2); err != nil {
		return err
	}

	p, err := builtinPlan(ctx.Args().First())
	if err != nil {
		return err
	}

	name := strings.Join(ctx.Args().Tail(), " ")

	if !a.root.Catalog.Add(p, name) {
		report.Info("%s is already part of the %s plan", name, p)
		return nil
	}

	report.Exercises(ctx.App.Writer, a.root.Resolver().Label(p), a.root.Catalog.Exercises(p))

	return nil
}

func exercisesRemoveAction(ctx *cli.Context, a *liftApp) error {
	if err := requireArgs(ctx, 2); err != nil {
		return err
	}

	p, err := builtinPlan(ctx.Args().First())
	if err != nil {
		return err
	}

	name := strings.Join(ctx.Args().Tail(), " ")

	if !a.root.Catalog.Remove(p, name) {
		report.Info("%s is not part of the %s plan", name, p)
		return nil
	}

	report.Exercises(ctx.App.Writer, a.root.Resolver().Label(p), a.root.Catalog.Exercises(p))

	return nil
}

func knownAction(ctx *cli.Context, a *liftApp) error {
	names := insights.Filter(
		a.root.KnownExercises(),
		strings.Join(ctx.Args().Slice(), " "),
	)

	report.Exercises(ctx.App.Writer, "Known exercises", names)

	return nil
}

func plansListAction(ctx *cli.Context, a *liftApp) error {
	report.Plans(ctx.App.Writer, sortedPlans(a.root.Plans.List()))

	return nil
}

// pickExercises asks which known exercises make up a plan.
func pickExercises(a *liftApp, selected []string) ([]string, error) {
	err := huh.NewMultiSelect[string]().
		Title("Pick the exercises of this plan").
		Options(huh.NewOptions(a.root.KnownExercises()...)...).
		Value(&selected).
		Run()

	return selected, err
}

func plansCreateAction(ctx *cli.Context, a *liftApp) error {
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}

	exercises := ctx.Args().Tail()

	if len(exercises) == 0 {
		var err error

		exercises, err = pickExercises(a, nil)
		if err != nil {
			return err
		}
	}

	plan, err := a.root.Plans.Create(ctx.Args().First(), exercises)
	if err != nil {
		return err
	}

	report.Plans(ctx.App.Writer, []models.CustomPlan{plan})

	return nil
}

func plansEditAction(ctx *cli.Context, a *liftApp) error {
	if err := requireArgs(ctx, 2); err != nil {
		return err
	}

	id, err := resolvePlan(a, ctx.Args().First())
	if err != nil {
		return err
	}

	current, ok := a.root.Plans.Find(id)
	if !ok {
		return errUnknownPlan.Fmt(ctx.Args().First())
	}

	exercises := ctx.Args().Slice()[2:]
	if len(exercises) == 0 {
		exercises = current.Exercises
	}

	if err := a.root.Plans.Update(id, ctx.Args().Get(1), exercises); err != nil {
		return err
	}

	updated, _ := a.root.Plans.Find(id)
	report.Plans(ctx.App.Writer, []models.CustomPlan{updated})

	return nil
}

func plansDeleteAction(ctx *cli.Context, a *liftApp) error {
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}

	id, err := resolvePlan(a, ctx.Args().First())
	if err != nil {
		return err
	}

	current, ok := a.root.Plans.Find(id)
	if !ok {
		return errUnknownPlan.Fmt(ctx.Args().First())
	}

	if !ctx.Bool("yes") {
		ok, err := confirm("Delete the " + current.Name + " plan?")
		if err != nil || !ok {
			return err
		}
	}

	a.root.Plans.Delete(id)

	report.Info("Plan deleted")

	return nil
}
