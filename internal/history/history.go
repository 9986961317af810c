// Package history holds the log of completed workouts
package history

import (
	"log/slog"
	"slices"

	"github.com/ayoisaiah/lift/internal/models"
)

// Saver persists the workout history.
type Saver interface {
	SaveHistory(history []models.WorkoutRecord) error
	DeleteHistory() error
}

// Store is the in-memory workout history, most recently added first.
type Store struct {
	db      Saver
	log     *slog.Logger
	records []models.WorkoutRecord
}

// New returns a Store seeded with previously saved records.
func New(db Saver, records []models.WorkoutRecord, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}

	return &Store{
		db:      db,
		log:     log,
		records: slices.Clone(records),
	}
}

// Records returns a copy of the history.
func (s *Store) Records() []models.WorkoutRecord {
	out := make([]models.WorkoutRecord, len(s.records))
	for i := range s.records {
		out[i] = s.records[i].Clone()
	}

	return out
}

// Len returns the number of workouts in the history.
func (s *Store) Len() int {
	return len(s.records)
}

// Get returns the workout with the given ID.
func (s *Store) Get(id string) (models.WorkoutRecord, bool) {
	i := s.index(id)
	if i < 0 {
		return models.WorkoutRecord{}, false
	}

	return s.records[i].Clone(), true
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.records, func(w models.WorkoutRecord) bool {
		return w.ID == id
	})
}

// Push places a workout at the front of the history without persisting it.
// It returns the resulting history for the caller to save.
func (s *Store) Push(w models.WorkoutRecord) []models.WorkoutRecord {
	s.records = slices.Insert(s.records, 0, w.Clone())

	return s.Records()
}

// Delete removes the workout with the given ID.
func (s *Store) Delete(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}

	s.records = slices.Delete(s.records, i, i+1)
	s.persist()

	return true
}

func (s *Store) persist() {
	var err error

	if len(s.records) == 0 {
		err = s.db.DeleteHistory()
	} else {
		err = s.db.SaveHistory(s.Records())
	}

	if err != nil {
		s.log.Error("saving history failed", slog.Any("error", err))
	}
}
