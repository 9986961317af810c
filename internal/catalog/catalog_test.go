package catalog

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ayoisaiah/lift/internal/ids"
	"github.com/ayoisaiah/lift/internal/models"
	"github.com/ayoisaiah/lift/internal/testutil"
	"github.com/ayoisaiah/lift/store"
)

func TestCatalogAddRemove(t *testing.T) {
	db := store.NewMemory()
	c := New(db, models.ExerciseCatalog{Push: []string{"Bench"}}, testutil.Discard)

	testCases := []struct {
		name string
		plan models.PlanType
		ex   string
		want bool
	}{
		{name: "new", plan: models.Push, ex: "  Flys ", want: true},
		{name: "duplicate", plan: models.Push, ex: "Bench", want: false},
		{name: "blank", plan: models.Push, ex: "   ", want: false},
		{name: "same name other plan", plan: models.Pull, ex: "Bench", want: true},
		{name: "custom plan", plan: "custom_1", ex: "Squat", want: false},
	}

	for _, tc := range testCases {
		if got := c.Add(tc.plan, tc.ex); got != tc.want {
			t.Errorf("%s: Add() = %v, want %v", tc.name, got, tc.want)
		}
	}

	want := models.ExerciseCatalog{
		Push: []string{"Bench", "Flys"},
		Pull: []string{"Bench"},
	}

	if diff := cmp.Diff(want, c.Data()); diff != "" {
		t.Fatalf("catalog mismatch (-want +got):\n%s", diff)
	}

	if c.Remove(models.Push, "Missing") {
		t.Fatal("removing an unknown exercise must be rejected")
	}

	if !c.Remove(models.Pull, "Bench") {
		t.Fatal("expected the exercise to be removed")
	}

	saved, err := db.Catalog()
	if err != nil {
		t.Fatalf("an emptied catalog must still be saved: %v", err)
	}

	want.Pull = []string{}

	if diff := cmp.Diff(want, saved); diff != "" {
		t.Fatalf("saved catalog mismatch (-want +got):\n%s", diff)
	}
}

func TestExercisesIsACopy(t *testing.T) {
	c := New(store.NewMemory(), models.DefaultCatalog(), testutil.Discard)

	l := c.Exercises(models.Pull)
	l[0] = "changed"

	if c.Exercises(models.Pull)[0] == "changed" {
		t.Fatal("the catalog was mutated through a copy")
	}

	if c.Exercises("custom_x") != nil {
		t.Fatal("custom plans have no catalog entry")
	}
}

func TestPlans(t *testing.T) {
	db := store.NewMemory()
	p := NewPlans(db, nil, &ids.Sequence{Prefix: "p"}, testutil.Discard)

	if _, err := p.Create("  ", []string{"Squat"}); !errors.Is(err, ErrInvalidPlan) {
		t.Fatalf("expected ErrInvalidPlan, got %v", err)
	}

	if _, err := p.Create("Legs", []string{" ", ""}); !errors.Is(err, ErrInvalidPlan) {
		t.Fatalf("expected ErrInvalidPlan, got %v", err)
	}

	legs, err := p.Create(" Legs ", []string{"Squat", "Lunge", "Squat"})
	if err != nil {
		t.Fatal(err)
	}

	want := models.CustomPlan{
		ID:        "custom_p-1",
		Name:      "Legs",
		Exercises: []string{"Squat", "Lunge", "Squat"},
	}

	if diff := cmp.Diff(want, legs); diff != "" {
		t.Fatalf("plan mismatch (-want +got):\n%s", diff)
	}

	if err := p.Update(legs.ID, "Leg day", []string{"Deadlift"}); err != nil {
		t.Fatal(err)
	}

	if err := p.Update("custom_missing", "x", []string{"y"}); err == nil {
		t.Fatal("expected an error for an unknown plan")
	}

	if err := p.Update(legs.ID, "", []string{"y"}); !errors.Is(err, ErrInvalidPlan) {
		t.Fatalf("expected ErrInvalidPlan, got %v", err)
	}

	got, ok := p.Find(legs.ID)
	if !ok || got.Name != "Leg day" || len(got.Exercises) != 1 {
		t.Fatalf("unexpected plan after update: %+v", got)
	}

	saved, err := db.CustomPlans()
	if err != nil || len(saved) != 1 || saved[0].Name != "Leg day" {
		t.Fatalf("unexpected saved plans: %+v (%v)", saved, err)
	}

	if !p.Delete(legs.ID) || p.Delete(legs.ID) {
		t.Fatal("expected exactly one successful delete")
	}

	saved, err = db.CustomPlans()
	if err != nil || len(saved) != 0 {
		t.Fatalf("an empty plan list must still be saved: %+v (%v)", saved, err)
	}
}

func TestResolver(t *testing.T) {
	db := store.NewMemory()
	c := New(db, models.ExerciseCatalog{Push: []string{"Bench"}, Pull: []string{"Row"}}, testutil.Discard)
	p := NewPlans(db, []models.CustomPlan{
		{ID: "custom_1", Name: "Arms", Exercises: []string{"Curl", "Curl"}},
	}, nil, testutil.Discard)

	r := Resolver{Catalog: c, Plans: p}

	testCases := []struct {
		plan      models.PlanType
		exercises []string
		label     string
	}{
		{plan: models.Push, exercises: []string{"Bench"}, label: "Push"},
		{plan: models.Pull, exercises: []string{"Row"}, label: "Pull"},
		{plan: "custom_1", exercises: []string{"Curl", "Curl"}, label: "Arms"},
		{plan: "custom_gone", exercises: nil, label: "Custom"},
	}

	for _, tc := range testCases {
		if diff := cmp.Diff(tc.exercises, r.Resolve(tc.plan)); diff != "" {
			t.Errorf("Resolve(%s) mismatch (-want +got):\n%s", tc.plan, diff)
		}

		if got := r.Label(tc.plan); got != tc.label {
			t.Errorf("Label(%s) = %q, want %q", tc.plan, got, tc.label)
		}
	}
}
