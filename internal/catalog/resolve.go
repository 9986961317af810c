package catalog

import (
	"github.com/ayoisaiah/lift/internal/models"
)

// Resolver turns a plan identifier into its exercises.
type Resolver struct {
	Catalog *Catalog
	Plans   *Plans
}

// Resolve returns the ordered exercises of a built-in or custom plan. An
// unknown plan has no exercises.
func (r Resolver) Resolve(plan models.PlanType) []string {
	if plan.IsBuiltin() {
		return r.Catalog.Exercises(plan)
	}

	c, ok := r.Plans.Find(plan)
	if !ok {
		return nil
	}

	return c.Exercises
}

// Label returns the display name of a plan.
func (r Resolver) Label(plan models.PlanType) string {
	switch plan {
	case models.Push:
		return "Push"
	case models.Pull:
		return "Pull"
	}

	if c, ok := r.Plans.Find(plan); ok {
		return c.Name
	}

	return "Custom"
}
