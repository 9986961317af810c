// Package state loads the persisted data once at startup and owns every
// component that operates on it
package state

import (
	"errors"
	"log/slog"
	"time"

	"github.com/ayoisaiah/lift/internal/catalog"
	"github.com/ayoisaiah/lift/internal/history"
	"github.com/ayoisaiah/lift/internal/ids"
	"github.com/ayoisaiah/lift/internal/insights"
	"github.com/ayoisaiah/lift/internal/models"
	"github.com/ayoisaiah/lift/internal/recommend"
	"github.com/ayoisaiah/lift/internal/session"
	"github.com/ayoisaiah/lift/store"
)

// Root is the application state.
type Root struct {
	DB       store.DB
	History  *history.Store
	Catalog  *catalog.Catalog
	Plans    *catalog.Plans
	Session  *session.Engine
	Log      *slog.Logger
	Rules    recommend.Rules
	opts     []Option
	resuming bool
}

type options struct {
	ids   ids.Generator
	now   func() time.Time
	log   *slog.Logger
	rules recommend.Rules
}

// Option configures Load.
type Option func(o *options)

// WithIDGenerator sets the generator shared by sessions and plans.
func WithIDGenerator(g ids.Generator) Option {
	return func(o *options) {
		o.ids = g
	}
}

// WithClock sets the function used to read the current time.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithLogger sets the logger handed to every component.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// WithRules sets the progressive overload rules.
func WithRules(r recommend.Rules) Option {
	return func(o *options) {
		o.rules = r
	}
}

// fallback logs why a stored value could not be used.
func fallback(log *slog.Logger, key string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		log.Debug("no saved value, using default", slog.String("key", key))
		return
	}

	log.Warn(
		"unable to read saved value, using default",
		slog.String("key", key),
		slog.Any("error", err),
	)
}

// Load reads each key from db once. Missing or unreadable values fall back to
// their defaults.
func Load(db store.DB, opts ...Option) *Root {
	o := options{
		ids:   ids.UUID{},
		now:   time.Now,
		log:   slog.Default(),
		rules: recommend.DefaultRules(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	records, err := db.History()
	if err != nil {
		fallback(o.log, store.KeyHistory, err)

		records = nil
	}

	cat, err := db.Catalog()
	if err != nil {
		fallback(o.log, store.KeyCatalog, err)

		cat = models.DefaultCatalog()
	}

	plans, err := db.CustomPlans()
	if err != nil {
		fallback(o.log, store.KeyCustomPlans, err)

		plans = nil
	}

	snapshot, err := db.ActiveSession()
	if err != nil {
		fallback(o.log, store.KeyActiveSession, err)

		snapshot = nil
	}

	h := history.New(db, records, o.log)

	engineOpts := []session.Option{
		session.WithIDGenerator(o.ids),
		session.WithClock(o.now),
		session.WithLogger(o.log),
		session.WithRecommender(o.rules),
	}

	if snapshot != nil {
		engineOpts = append(engineOpts, session.Restore(snapshot))
	}

	return &Root{
		DB:       db,
		History:  h,
		Catalog:  catalog.New(db, cat, o.log),
		Plans:    catalog.NewPlans(db, plans, o.ids, o.log),
		Session:  session.New(h, db, engineOpts...),
		Log:      o.log,
		Rules:    o.rules,
		opts:     opts,
		resuming: snapshot != nil,
	}
}

// Resuming reports whether a workout in progress was restored.
func (r *Root) Resuming() bool {
	return r.resuming
}

// Resolver returns a resolver for plan exercises and labels.
func (r *Root) Resolver() catalog.Resolver {
	return catalog.Resolver{Catalog: r.Catalog, Plans: r.Plans}
}

// KnownExercises returns every exercise name the user has used.
func (r *Root) KnownExercises() []string {
	return insights.KnownExerciseNames(
		r.Catalog.Data(),
		r.History.Records(),
		r.Plans.List(),
	)
}

// Start begins a session of plan using its configured exercises.
func (r *Root) Start(plan models.PlanType, date time.Time) error {
	return r.Session.Start(plan, r.Resolver().Resolve(plan), date)
}

// Import replaces the stored data with the contents of a dump and reloads
// the state from it. The current catalog is kept when the dump has none.
func (r *Root) Import(d *store.Dump) error {
	if d.Catalog == nil {
		c := r.Catalog.Data()
		d.Catalog = &c
	}

	if err := r.DB.Import(d); err != nil {
		return err
	}

	*r = *Load(r.DB, r.opts...)

	return nil
}
