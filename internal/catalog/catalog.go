// Package catalog manages the exercise lists of the built-in plans and the
// user-defined plans
package catalog

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/ayoisaiah/lift/internal/apperr"
	"github.com/ayoisaiah/lift/internal/ids"
	"github.com/ayoisaiah/lift/internal/models"
)

// ErrInvalidPlan is returned when a custom plan has no name or no exercises.
var ErrInvalidPlan = &apperr.Error{
	Message: "a plan needs a name and at least one exercise",
}

var errPlanNotFound = &apperr.Error{
	Message: "no plan found with id %q",
}

// CatalogSaver persists the built-in exercise lists.
type CatalogSaver interface {
	SaveCatalog(catalog models.ExerciseCatalog) error
}

// PlanSaver persists the custom plans.
type PlanSaver interface {
	SaveCustomPlans(plans []models.CustomPlan) error
}

// Catalog is the editable list of exercises of each built-in plan.
type Catalog struct {
	db   CatalogSaver
	log  *slog.Logger
	data models.ExerciseCatalog
}

// New returns a Catalog seeded with c.
func New(db CatalogSaver, c models.ExerciseCatalog, log *slog.Logger) *Catalog {
	if log == nil {
		log = slog.Default()
	}

	return &Catalog{
		db:   db,
		log:  log,
		data: c.Clone(),
	}
}

// Data returns a copy of the catalog.
func (c *Catalog) Data() models.ExerciseCatalog {
	return c.data.Clone()
}

func (c *Catalog) list(plan models.PlanType) *[]string {
	switch plan {
	case models.Push:
		return &c.data.Push
	case models.Pull:
		return &c.data.Pull
	default:
		return nil
	}
}

// Exercises returns the exercises of a built-in plan.
func (c *Catalog) Exercises(plan models.PlanType) []string {
	l := c.list(plan)
	if l == nil {
		return nil
	}

	return slices.Clone(*l)
}

// Add appends an exercise to a built-in plan. Blank and duplicate names are
// rejected.
func (c *Catalog) Add(plan models.PlanType, name string) bool {
	l := c.list(plan)
	name = strings.TrimSpace(name)

	if l == nil || name == "" || slices.Contains(*l, name) {
		return false
	}

	*l = append(*l, name)
	c.persist()

	return true
}

// Remove deletes an exercise from a built-in plan.
func (c *Catalog) Remove(plan models.PlanType, name string) bool {
	l := c.list(plan)
	if l == nil {
		return false
	}

	i := slices.Index(*l, name)
	if i < 0 {
		return false
	}

	*l = slices.Delete(*l, i, i+1)
	c.persist()

	return true
}

func (c *Catalog) persist() {
	data := c.Data()

	if data.Push == nil {
		data.Push = []string{}
	}

	if data.Pull == nil {
		data.Pull = []string{}
	}

	if err := c.db.SaveCatalog(data); err != nil {
		c.log.Error("saving catalog failed", slog.Any("error", err))
	}
}

// Plans is the list of user-defined plans.
type Plans struct {
	db    PlanSaver
	ids   ids.Generator
	log   *slog.Logger
	plans []models.CustomPlan
}

// NewPlans returns Plans seeded with p.
func NewPlans(
	db PlanSaver,
	p []models.CustomPlan,
	gen ids.Generator,
	log *slog.Logger,
) *Plans {
	if log == nil {
		log = slog.Default()
	}

	if gen == nil {
		gen = ids.UUID{}
	}

	return &Plans{
		db:    db,
		ids:   gen,
		log:   log,
		plans: clonePlans(p),
	}
}

func clonePlans(p []models.CustomPlan) []models.CustomPlan {
	out := make([]models.CustomPlan, len(p))
	for i := range p {
		out[i] = p[i]
		out[i].Exercises = slices.Clone(p[i].Exercises)
	}

	return out
}

// List returns a copy of the custom plans.
func (p *Plans) List() []models.CustomPlan {
	return clonePlans(p.plans)
}

func (p *Plans) index(id models.PlanType) int {
	return slices.IndexFunc(p.plans, func(c models.CustomPlan) bool {
		return c.ID == id
	})
}

// Find returns the plan with the given ID.
func (p *Plans) Find(id models.PlanType) (models.CustomPlan, bool) {
	i := p.index(id)
	if i < 0 {
		return models.CustomPlan{}, false
	}

	c := p.plans[i]
	c.Exercises = slices.Clone(c.Exercises)

	return c, true
}

func clean(name string, exercises []string) (string, []string, error) {
	name = strings.TrimSpace(name)

	out := make([]string, 0, len(exercises))

	for _, e := range exercises {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}

	if name == "" || len(out) == 0 {
		return "", nil, ErrInvalidPlan
	}

	return name, out, nil
}

// Create adds a new custom plan.
func (p *Plans) Create(name string, exercises []string) (models.CustomPlan, error) {
	name, exercises, err := clean(name, exercises)
	if err != nil {
		return models.CustomPlan{}, err
	}

	plan := models.CustomPlan{
		ID:        models.PlanType(models.CustomPlanPrefix + p.ids.NewID()),
		Name:      name,
		Exercises: exercises,
	}

	p.plans = append(p.plans, plan)
	p.persist()

	return plan, nil
}

// Update renames a custom plan and replaces its exercises.
func (p *Plans) Update(id models.PlanType, name string, exercises []string) error {
	i := p.index(id)
	if i < 0 {
		return errPlanNotFound.Fmt(id)
	}

	name, exercises, err := clean(name, exercises)
	if err != nil {
		return err
	}

	p.plans[i].Name = name
	p.plans[i].Exercises = exercises
	p.persist()

	return nil
}

// Delete removes a custom plan.
func (p *Plans) Delete(id models.PlanType) bool {
	i := p.index(id)
	if i < 0 {
		return false
	}

	p.plans = slices.Delete(p.plans, i, i+1)
	p.persist()

	return true
}

func (p *Plans) persist() {
	if err := p.db.SaveCustomPlans(p.List()); err != nil {
		p.log.Error("saving custom plans failed", slog.Any("error", err))
	}
}
