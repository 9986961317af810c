package store

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ayoisaiah/lift/internal/models"
)

const browserDump = `{
  "gymWorkouts": "[{\"id\":1712345678901,\"type\":\"push\",\"date\":\"2024-04-05T18:00:00.000Z\",\"exercises\":[{\"id\":1712345678901.25,\"name\":\"Flys\",\"sets\":[{\"weight\":20,\"reps\":12},{\"weight\":20,\"reps\":9.6}],\"lastSets\":null}]}]",
  "gymExercises": "{\"push\":[\"Flys\"],\"pull\":[\"Row\"]}",
  "gymCustomPlans": "[]",
  "theme": "dark"
}`

func TestParseBrowserDump(t *testing.T) {
	d, err := ParseDump([]byte(browserDump))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []models.WorkoutRecord{
		{
			ID:   "1712345678901",
			Type: models.Push,
			Date: time.Date(2024, time.April, 5, 18, 0, 0, 0, time.UTC),
			Exercises: []models.ExerciseLog{
				{
					Name: "Flys",
					Sets: []models.SetRecord{
						{Weight: 20, Reps: 12},
						{Weight: 20, Reps: 10},
					},
				},
			},
		},
	}

	if diff := cmp.Diff(want, d.History); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}

	wantCatalog := &models.ExerciseCatalog{
		Push: []string{"Flys"},
		Pull: []string{"Row"},
	}

	if diff := cmp.Diff(wantCatalog, d.Catalog); diff != "" {
		t.Errorf("catalog mismatch (-want +got):\n%s", diff)
	}

	if d.ActiveSession != nil {
		t.Errorf("expected no active session, got %+v", d.ActiveSession)
	}
}

func TestParseYAMLDump(t *testing.T) {
	input := `
history:
  - id: w1
    type: pull
    date: 2026-10-01T07:30:00Z
    exercises:
      - name: Row
        sets:
          - weight: 40
            reps: 8
customPlans:
  - id: custom_1
    name: Legs
    exercises: [Squat, Lunge]
`

	d, err := ParseDump([]byte(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(d.History) != 1 || d.History[0].Exercises[0].Sets[0].Weight != 40 {
		t.Fatalf("unexpected history: %+v", d.History)
	}

	if len(d.CustomPlans) != 1 || d.CustomPlans[0].Name != "Legs" {
		t.Fatalf("unexpected plans: %+v", d.CustomPlans)
	}
}

func TestParseDumpWithNullValues(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "export of an empty database", input: `{"history":null,"customPlans":null}`},
		{name: "browser dump", input: `{"gymWorkouts":"[]","gymCustomPlans":null,"activeWorkout":"null"}`},
		{name: "empty string", input: `{"gymWorkouts":""}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := ParseDump([]byte(tc.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(d.History) != 0 || len(d.CustomPlans) != 0 || d.ActiveSession != nil {
				t.Fatalf("expected an empty dump, got %+v", d)
			}
		})
	}
}

func TestEmptyExportRoundTrip(t *testing.T) {
	d, err := NewMemory().Export()
	if err != nil {
		t.Fatal(err)
	}

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParseDump(b); err != nil {
		t.Fatalf("parsing an exported empty database: %v", err)
	}
}

func TestParseDumpClampsReps(t *testing.T) {
	input := `{"history":[{"id":"w1","type":"push","date":"2026-10-01T07:30:00Z",` +
		`"exercises":[{"name":"Dips","sets":[{"weight":0,"reps":1e19},{"weight":0,"reps":-3}]}]}]}`

	d, err := ParseDump([]byte(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []models.SetRecord{{Reps: math.MaxInt}, {Reps: 0}}

	if diff := cmp.Diff(want, d.History[0].Exercises[0].Sets); diff != "" {
		t.Errorf("sets mismatch (-want +got):\n%s", diff)
	}
}

func TestParseInvalidDump(t *testing.T) {
	if _, err := ParseDump([]byte("{broken")); err == nil {
		t.Fatal("expected an error")
	}
}
