package state

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ayoisaiah/lift/internal/ids"
	"github.com/ayoisaiah/lift/internal/models"
	"github.com/ayoisaiah/lift/internal/testutil"
	"github.com/ayoisaiah/lift/internal/session"
	"github.com/ayoisaiah/lift/store"
)

var fixedNow = time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)

func load(db store.DB) *Root {
	return Load(db,
		WithLogger(testutil.Discard),
		WithIDGenerator(&ids.Sequence{Prefix: "id"}),
		WithClock(func() time.Time { return fixedNow }),
	)
}

func TestLoadDefaults(t *testing.T) {
	r := load(store.NewMemory())

	if r.History.Len() != 0 {
		t.Errorf("expected an empty history, got %d", r.History.Len())
	}

	if diff := cmp.Diff(models.DefaultCatalog(), r.Catalog.Data()); diff != "" {
		t.Errorf("catalog mismatch (-want +got):\n%s", diff)
	}

	if len(r.Plans.List()) != 0 {
		t.Errorf("expected no plans, got %v", r.Plans.List())
	}

	if r.Resuming() {
		t.Error("nothing to resume")
	}

	if _, ok := r.Session.State().(session.NoSession); !ok {
		t.Error("expected no session")
	}
}

func TestLoadCorruptValues(t *testing.T) {
	db := store.NewMemory()

	for _, key := range []string{
		store.KeyHistory,
		store.KeyCatalog,
		store.KeyCustomPlans,
		store.KeyActiveSession,
	} {
		db.SetRaw(key, []byte("not json"))
	}

	r := load(db)

	if r.History.Len() != 0 || len(r.Plans.List()) != 0 || r.Resuming() {
		t.Fatal("unreadable values must fall back to defaults")
	}

	if diff := cmp.Diff(models.DefaultCatalog(), r.Catalog.Data()); diff != "" {
		t.Errorf("catalog mismatch (-want +got):\n%s", diff)
	}
}

func TestResume(t *testing.T) {
	db := store.NewMemory()

	snap := &models.ActiveSession{
		ID:   "s1",
		Type: models.Push,
		Date: fixedNow,
		Exercises: []models.ExerciseEntry{
			{ID: "e1", Name: "Bench", Sets: []models.SetRecord{{Weight: 60, Reps: 5}}},
		},
	}

	_ = db.SaveActiveSession(snap)

	r := load(db)

	if !r.Resuming() {
		t.Fatal("expected the session to be resumed")
	}

	in, ok := r.Session.State().(session.InSession)
	if !ok {
		t.Fatal("expected a session in progress")
	}

	if diff := cmp.Diff(snap, in.Session); diff != "" {
		t.Fatalf("session mismatch (-want +got):\n%s", diff)
	}
}

func TestStartCustomPlan(t *testing.T) {
	r := load(store.NewMemory())

	plan, err := r.Plans.Create("Legs", []string{"Squat", "Lunge"})
	if err != nil {
		t.Fatal(err)
	}

	if err := r.Start(plan.ID, time.Time{}); err != nil {
		t.Fatal(err)
	}

	in := r.Session.State().(session.InSession)
	if len(in.Session.Exercises) != 2 || in.Session.Type != plan.ID {
		t.Fatalf("unexpected session: %+v", in.Session)
	}

	if err := r.Start("custom_unknown", time.Time{}); err == nil {
		t.Fatal("expected an error for a plan without exercises")
	}
}

func TestFinishIsVisibleEverywhere(t *testing.T) {
	db := store.NewMemory()
	r := load(db)

	_ = r.Start(models.Pull, time.Time{})
	r.Session.InsertExercise("Shrugs", session.End)

	if _, ok := r.Session.Finish(); !ok {
		t.Fatal("expected the workout to be saved")
	}

	if r.History.Len() != 1 {
		t.Fatalf("expected one workout, got %d", r.History.Len())
	}

	names := r.KnownExercises()
	found := false

	for _, n := range names {
		if n == "Shrugs" {
			found = true
		}
	}

	if !found {
		t.Fatal("a finished exercise must become a known name")
	}

	reloaded := load(db)
	if reloaded.History.Len() != 1 || reloaded.Resuming() {
		t.Fatal("the finished workout must survive a restart")
	}
}

func TestImport(t *testing.T) {
	db := store.NewMemory()
	r := load(db)

	_ = r.Catalog.Add(models.Push, "Dips")

	dump := &store.Dump{
		History: []models.WorkoutRecord{
			{ID: "w1", Type: models.Push, Date: fixedNow},
		},
		CustomPlans: []models.CustomPlan{
			{ID: "custom_1", Name: "Arms", Exercises: []string{"Curl"}},
		},
	}

	if err := r.Import(dump); err != nil {
		t.Fatal(err)
	}

	if r.History.Len() != 1 || len(r.Plans.List()) != 1 {
		t.Fatal("expected the imported data to be loaded")
	}

	push := r.Catalog.Exercises(models.Push)
	if push[len(push)-1] != "Dips" {
		t.Fatal("the current catalog must be kept when the dump has none")
	}
}
