package app

import (
	"errors"
	"slices"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/maruel/natural"

	"github.com/ayoisaiah/lift/internal/models"
)

// confirm asks a yes/no question. Aborting the prompt counts as no.
func confirm(question string) (bool, error) {
	var ok bool

	err := huh.NewConfirm().
		Title(question).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}

	return ok, err
}

// sortedPlans returns the custom plans in natural order of their names, so
// that "Day 2" comes before "Day 10".
func sortedPlans(plans []models.CustomPlan) []models.CustomPlan {
	sorted := slices.Clone(plans)

	slices.SortStableFunc(sorted, func(a, b models.CustomPlan) int {
		x, y := strings.ToLower(a.Name), strings.ToLower(b.Name)

		switch {
		case natural.Less(x, y):
			return -1
		case natural.Less(y, x):
			return 1
		default:
			return 0
		}
	})

	return sorted
}

// planOptions lists the built-in plans followed by the custom plans.
func planOptions(a *liftApp) []huh.Option[models.PlanType] {
	resolver := a.root.Resolver()

	opts := make([]huh.Option[models.PlanType], 0, len(models.BuiltinPlans))

	for _, p := range models.BuiltinPlans {
		opts = append(opts, huh.NewOption(resolver.Label(p), p))
	}

	for _, p := range sortedPlans(a.root.Plans.List()) {
		opts = append(opts, huh.NewOption(p.Name, p.ID))
	}

	return opts
}

// selectPlan asks which plan to start.
func selectPlan(a *liftApp) (models.PlanType, error) {
	var plan models.PlanType

	err := huh.NewSelect[models.PlanType]().
		Title("Which workout are you doing?").
		Options(planOptions(a)...).
		Value(&plan).
		Run()

	return plan, err
}

// resolvePlan matches a plan by its ID, or its name ignoring case.
func resolvePlan(a *liftApp, arg string) (models.PlanType, error) {
	arg = strings.TrimSpace(arg)

	p := models.PlanType(strings.ToLower(arg))
	if p.IsBuiltin() {
		return p, nil
	}

	for _, c := range a.root.Plans.List() {
		if string(c.ID) == arg || strings.EqualFold(c.Name, arg) {
			return c.ID, nil
		}
	}

	return "", errUnknownPlan.Fmt(arg)
}
