package session

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ayoisaiah/lift/internal/history"
	"github.com/ayoisaiah/lift/internal/ids"
	"github.com/ayoisaiah/lift/internal/models"
	"github.com/ayoisaiah/lift/internal/testutil"
	"github.com/ayoisaiah/lift/store"
)

var fixedNow = time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)

func benchWorkout(sets ...models.SetRecord) models.WorkoutRecord {
	return models.WorkoutRecord{
		ID:   "prev",
		Type: models.Push,
		Date: fixedNow.AddDate(0, 0, -3),
		Exercises: []models.ExerciseLog{
			{Name: "Bench", Sets: sets},
		},
	}
}

func newEngine(
	t *testing.T,
	records []models.WorkoutRecord,
) (*Engine, *history.Store, *store.Memory) {
	t.Helper()

	db := store.NewMemory()
	h := history.New(db, records, testutil.Discard)

	e := New(h, db,
		WithIDGenerator(&ids.Sequence{Prefix: "id"}),
		WithClock(func() time.Time { return fixedNow }),
		WithLogger(testutil.Discard),
	)

	return e, h, db
}

func current(t *testing.T, e *Engine) *models.ActiveSession {
	t.Helper()

	s, ok := e.State().(InSession)
	if !ok {
		t.Fatalf("expected a session in progress, got %T", e.State())
	}

	return s.Session
}

func TestStartSeedsFromHistory(t *testing.T) {
	e, _, db := newEngine(t, []models.WorkoutRecord{
		benchWorkout(models.SetRecord{Weight: 60, Reps: 10}),
	})

	date := time.Date(2026, time.October, 18, 17, 0, 0, 0, time.UTC)

	if err := e.Start(models.Push, []string{"Bench", "Flys"}, date); err != nil {
		t.Fatal(err)
	}

	want := &models.ActiveSession{
		ID:   "id-1",
		Type: models.Push,
		Date: date,
		Exercises: []models.ExerciseEntry{
			{
				ID:       "id-2",
				Name:     "Bench",
				Sets:     []models.SetRecord{{Weight: 60, Reps: 10}, {}, {}},
				LastSets: []models.SetRecord{{Weight: 60, Reps: 10}},
			},
			{
				ID:   "id-3",
				Name: "Flys",
				Sets: []models.SetRecord{{}, {}, {}},
			},
		},
	}

	if diff := cmp.Diff(want, current(t, e)); diff != "" {
		t.Fatalf("session mismatch (-want +got):\n%s", diff)
	}

	snap, err := db.ActiveSession()
	if err != nil {
		t.Fatalf("expected a snapshot: %v", err)
	}

	if diff := cmp.Diff(want, snap); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestStartOnlyMatchesSamePlan(t *testing.T) {
	e, _, _ := newEngine(t, []models.WorkoutRecord{
		benchWorkout(models.SetRecord{Weight: 60, Reps: 10}),
	})

	if err := e.Start(models.Pull, []string{"Bench"}, time.Time{}); err != nil {
		t.Fatal(err)
	}

	sess := current(t, e)

	if sess.Exercises[0].LastSets != nil {
		t.Errorf("expected no previous sets, got %v", sess.Exercises[0].LastSets)
	}

	if !sess.Date.Equal(fixedNow) {
		t.Errorf("expected the session to default to now, got %v", sess.Date)
	}
}

func TestBuildEntryAnyType(t *testing.T) {
	e, _, _ := newEngine(t, []models.WorkoutRecord{
		benchWorkout(
			models.SetRecord{Weight: 60, Reps: 10},
			models.SetRecord{Weight: 60, Reps: 9},
			models.SetRecord{Weight: 60, Reps: 8},
			models.SetRecord{Weight: 55, Reps: 8},
		),
	})

	entry := e.BuildEntry("Bench", "")

	want := []models.SetRecord{
		{Weight: 60, Reps: 10},
		{Weight: 60, Reps: 9},
		{Weight: 60, Reps: 8},
	}

	if diff := cmp.Diff(want, entry.Sets); diff != "" {
		t.Errorf("sets mismatch (-want +got):\n%s", diff)
	}

	if len(entry.LastSets) != 4 {
		t.Errorf("expected all previous sets, got %v", entry.LastSets)
	}
}

func TestStartEmptyPlans(t *testing.T) {
	e, _, db := newEngine(t, nil)

	err := e.Start("custom_abc", nil, time.Time{})
	if !errors.Is(err, ErrEmptyPlan) {
		t.Fatalf("expected ErrEmptyPlan, got %v", err)
	}

	if _, ok := e.State().(NoSession); !ok {
		t.Fatal("a rejected start must not create a session")
	}

	if db.Has(store.KeyActiveSession) {
		t.Fatal("a rejected start must not write a snapshot")
	}

	if err := e.Start(models.Pull, nil, time.Time{}); err != nil {
		t.Fatalf("an empty built-in plan must start: %v", err)
	}

	if n := len(current(t, e).Exercises); n != 0 {
		t.Fatalf("expected no exercises, got %d", n)
	}
}

func TestStartReplacesSession(t *testing.T) {
	e, _, _ := newEngine(t, nil)

	_ = e.Start(models.Push, []string{"Bench"}, time.Time{})
	_ = e.Start(models.Pull, []string{"Row"}, time.Time{})

	sess := current(t, e)
	if sess.Type != models.Pull || sess.Exercises[0].Name != "Row" {
		t.Fatalf("expected the pull session, got %+v", sess)
	}
}

func TestUpdateSet(t *testing.T) {
	testCases := []struct {
		name  string
		field Field
		raw   string
		want  models.SetRecord
	}{
		{name: "weight", field: Weight, raw: "62.5", want: models.SetRecord{Weight: 62.5}},
		{name: "padded", field: Weight, raw: " 40 ", want: models.SetRecord{Weight: 40}},
		{name: "reps", field: Reps, raw: "8", want: models.SetRecord{Reps: 8}},
		{name: "fractional reps", field: Reps, raw: "7.6", want: models.SetRecord{Reps: 8}},
		{name: "not a number", field: Weight, raw: "abc", want: models.SetRecord{}},
		{name: "empty", field: Reps, raw: "", want: models.SetRecord{}},
		{name: "negative", field: Weight, raw: "-5", want: models.SetRecord{}},
		{name: "infinity", field: Weight, raw: "Inf", want: models.SetRecord{}},
		{name: "nan", field: Reps, raw: "NaN", want: models.SetRecord{}},
		{name: "huge reps", field: Reps, raw: "1e19", want: models.SetRecord{Reps: math.MaxInt}},
		{name: "huge weight", field: Weight, raw: "1e300", want: models.SetRecord{Weight: 1e300}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, _, _ := newEngine(t, nil)
			_ = e.Start(models.Push, []string{"Bench", "Flys"}, time.Time{})

			exID := current(t, e).Exercises[0].ID

			if !e.UpdateSet(exID, 1, tc.field, tc.raw) {
				t.Fatal("expected the update to apply")
			}

			sess := current(t, e)

			if diff := cmp.Diff(tc.want, sess.Exercises[0].Sets[1]); diff != "" {
				t.Errorf("set mismatch (-want +got):\n%s", diff)
			}

			for i, s := range sess.Exercises[0].Sets {
				if i != 1 && s != (models.SetRecord{}) {
					t.Errorf("set %d changed: %+v", i, s)
				}
			}

			for _, s := range sess.Exercises[1].Sets {
				if s != (models.SetRecord{}) {
					t.Errorf("another exercise changed: %+v", s)
				}
			}
		})
	}
}

func TestUpdateSetNonNumericEqualsZero(t *testing.T) {
	a, _, _ := newEngine(t, nil)
	b, _, _ := newEngine(t, nil)

	for _, e := range []*Engine{a, b} {
		_ = e.Start(models.Push, []string{"Bench"}, time.Time{})
		id := current(t, e).Exercises[0].ID
		e.UpdateSet(id, 0, Weight, "80")
	}

	a.UpdateSet("id-2", 0, Weight, "heavy")
	b.UpdateSet("id-2", 0, Weight, "0")

	if diff := cmp.Diff(current(t, a), current(t, b)); diff != "" {
		t.Fatalf("sessions differ (-a +b):\n%s", diff)
	}
}

func TestRejectedEdits(t *testing.T) {
	e, _, _ := newEngine(t, nil)

	if e.UpdateSet("id-2", 0, Weight, "10") || e.AddSet("id-2") ||
		e.RemoveSet("id-2", 0) || e.RemoveExercise("id-2") ||
		e.InsertExercise("Bench", End) || e.Cancel() {
		t.Fatal("edits without a session must be rejected")
	}

	if _, ok := e.Finish(); ok {
		t.Fatal("finish without a session must be rejected")
	}

	_ = e.Start(models.Push, []string{"Bench"}, time.Time{})
	before := current(t, e)

	rejected := []bool{
		e.UpdateSet("missing", 0, Weight, "10"),
		e.UpdateSet("id-2", 3, Weight, "10"),
		e.UpdateSet("id-2", -1, Reps, "10"),
		e.UpdateSet("id-2", 0, Field("tempo"), "10"),
		e.AddSet("missing"),
		e.RemoveSet("id-2", 7),
		e.RemoveExercise("missing"),
		e.InsertExercise("  ", End),
		e.InsertExercise("Flys", 5),
		e.InsertExercise("Flys", -2),
	}

	for i, ok := range rejected {
		if ok {
			t.Errorf("edit %d should have been rejected", i)
		}
	}

	if diff := cmp.Diff(before, current(t, e)); diff != "" {
		t.Fatalf("rejected edits changed the session (-want +got):\n%s", diff)
	}
}

func TestSetsNeverEmpty(t *testing.T) {
	e, _, _ := newEngine(t, nil)
	_ = e.Start(models.Push, []string{"Bench"}, time.Time{})

	id := current(t, e).Exercises[0].ID

	ops := []func(){
		func() { e.RemoveSet(id, 0) },
		func() { e.RemoveSet(id, 0) },
		func() { e.RemoveSet(id, 0) },
		func() { e.AddSet(id) },
		func() { e.RemoveSet(id, 1) },
		func() { e.RemoveSet(id, 0) },
		func() { e.RemoveSet(id, 0) },
	}

	for i, op := range ops {
		op()

		if n := len(current(t, e).Exercises[0].Sets); n < 1 {
			t.Fatalf("after op %d the exercise has %d sets", i, n)
		}
	}

	before := current(t, e)

	if e.RemoveSet(id, 0) {
		t.Fatal("removing the only set must be rejected")
	}

	if diff := cmp.Diff(before, current(t, e)); diff != "" {
		t.Fatalf("exercise changed (-want +got):\n%s", diff)
	}
}

func TestAddSetCopiesLast(t *testing.T) {
	e, _, _ := newEngine(t, nil)
	_ = e.Start(models.Push, []string{"Bench"}, time.Time{})

	id := current(t, e).Exercises[0].ID
	e.UpdateSet(id, 2, Weight, "70")
	e.UpdateSet(id, 2, Reps, "6")

	if !e.AddSet(id) {
		t.Fatal("expected the set to be added")
	}

	sets := current(t, e).Exercises[0].Sets
	if len(sets) != 4 || sets[3] != (models.SetRecord{Weight: 70, Reps: 6}) {
		t.Fatalf("unexpected sets: %v", sets)
	}
}

func TestInsertAndRemoveExercise(t *testing.T) {
	e, _, _ := newEngine(t, []models.WorkoutRecord{
		benchWorkout(models.SetRecord{Weight: 60, Reps: 10}),
	})

	_ = e.Start(models.Push, []string{"Flys", "Dips"}, time.Time{})

	if !e.InsertExercise("Bench", 1) {
		t.Fatal("expected the insert to apply")
	}

	if !e.InsertExercise("Bench", End) {
		t.Fatal("duplicate names are allowed")
	}

	if !e.InsertExercise("Press", 0) {
		t.Fatal("expected the insert at the front to apply")
	}

	sess := current(t, e)

	var names []string
	for _, x := range sess.Exercises {
		names = append(names, x.Name)
	}

	want := []string{"Press", "Flys", "Bench", "Dips", "Bench"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}

	if sess.Exercises[2].Sets[0] != (models.SetRecord{Weight: 60, Reps: 10}) {
		t.Errorf("inserted exercise was not seeded: %v", sess.Exercises[2].Sets)
	}

	if sess.Exercises[2].ID == sess.Exercises[4].ID {
		t.Error("each inserted exercise needs its own ID")
	}

	if !e.RemoveExercise(sess.Exercises[2].ID) {
		t.Fatal("expected the exercise to be removed")
	}

	if n := len(current(t, e).Exercises); n != 4 {
		t.Fatalf("expected 4 exercises, got %d", n)
	}
}

func TestFinish(t *testing.T) {
	prev := benchWorkout(models.SetRecord{Weight: 60, Reps: 10})
	e, h, db := newEngine(t, []models.WorkoutRecord{prev})

	date := time.Date(2026, time.October, 18, 17, 0, 0, 0, time.UTC)
	_ = e.Start(models.Push, []string{"Bench"}, date)

	id := current(t, e).Exercises[0].ID
	e.UpdateSet(id, 0, Reps, "11")
	e.RemoveSet(id, 2)

	inSession := current(t, e).Exercises[0].Sets

	rec, ok := e.Finish()
	if !ok {
		t.Fatal("expected the workout to be saved")
	}

	want := models.WorkoutRecord{
		ID:   "id-1",
		Type: models.Push,
		Date: date,
		Exercises: []models.ExerciseLog{
			{Name: "Bench", Sets: inSession},
		},
	}

	if diff := cmp.Diff(want, rec); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}

	if _, ok := e.State().(NoSession); !ok {
		t.Fatal("expected the session to end")
	}

	wantHistory := []models.WorkoutRecord{want, prev}

	if diff := cmp.Diff(wantHistory, h.Records()); diff != "" {
		t.Fatalf("history mismatch (-want +got):\n%s", diff)
	}

	saved, err := db.History()
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(wantHistory, saved); diff != "" {
		t.Fatalf("saved history mismatch (-want +got):\n%s", diff)
	}

	if db.Has(store.KeyActiveSession) {
		t.Fatal("expected the snapshot to be removed")
	}
}

func TestCancelLeavesHistoryUntouched(t *testing.T) {
	e, h, db := newEngine(t, []models.WorkoutRecord{
		benchWorkout(models.SetRecord{Weight: 60, Reps: 10}),
	})

	if err := db.SaveHistory(h.Records()); err != nil {
		t.Fatal(err)
	}

	before := db.Raw(store.KeyHistory)

	_ = e.Start(models.Push, []string{"Bench"}, time.Time{})
	e.UpdateSet("id-2", 0, Weight, "100")

	if !e.Cancel() {
		t.Fatal("expected the session to be cancelled")
	}

	if diff := cmp.Diff(before, db.Raw(store.KeyHistory)); diff != "" {
		t.Fatalf("history changed (-want +got):\n%s", diff)
	}

	if h.Len() != 1 {
		t.Fatalf("expected 1 workout, got %d", h.Len())
	}

	if db.Has(store.KeyActiveSession) {
		t.Fatal("expected the snapshot to be removed")
	}
}

func TestPersistenceFailuresAreIgnored(t *testing.T) {
	e, h, db := newEngine(t, nil)
	db.FailWrites(errors.New("disk full"))

	if err := e.Start(models.Push, []string{"Bench"}, time.Time{}); err != nil {
		t.Fatalf("save failures must not surface: %v", err)
	}

	if !e.UpdateSet("id-2", 0, Weight, "50") {
		t.Fatal("the edit must apply in memory")
	}

	if _, ok := e.Finish(); !ok {
		t.Fatal("finish must succeed in memory")
	}

	if h.Len() != 1 {
		t.Fatalf("expected the workout in memory, got %d", h.Len())
	}
}

func TestRestore(t *testing.T) {
	snap := &models.ActiveSession{
		ID:   "s1",
		Type: models.Pull,
		Date: fixedNow,
		Exercises: []models.ExerciseEntry{
			{ID: "e1", Name: "Row", Sets: []models.SetRecord{{Weight: 40, Reps: 8}}},
		},
	}

	db := store.NewMemory()
	e := New(history.New(db, nil, testutil.Discard), db, Restore(snap), WithLogger(testutil.Discard))

	if diff := cmp.Diff(snap, current(t, e)); diff != "" {
		t.Fatalf("restored session mismatch (-want +got):\n%s", diff)
	}

	e.AddSet("e1")

	if len(snap.Exercises[0].Sets) != 1 {
		t.Fatal("the engine must not alias the restored snapshot")
	}
}

func TestStateIsACopy(t *testing.T) {
	e, _, _ := newEngine(t, nil)
	_ = e.Start(models.Push, []string{"Bench"}, time.Time{})

	current(t, e).Exercises[0].Sets[0].Weight = 999

	if current(t, e).Exercises[0].Sets[0].Weight != 0 {
		t.Fatal("callers must not be able to mutate the session")
	}
}

func TestRecommend(t *testing.T) {
	e, _, _ := newEngine(t, []models.WorkoutRecord{
		benchWorkout(
			models.SetRecord{Weight: 60, Reps: 12},
			models.SetRecord{Weight: 60, Reps: 11},
		),
	})

	if _, ok := e.Recommend("Bench"); ok {
		t.Fatal("no recommendation without a session")
	}

	_ = e.Start(models.Push, []string{"Bench"}, time.Time{})

	rec, ok := e.Recommend("Bench")
	if !ok || rec.TargetWeight != 62.5 {
		t.Fatalf("unexpected recommendation: %+v (%v)", rec, ok)
	}
}
