package store

import (
	"github.com/ayoisaiah/lift/internal/models"
)

// DB is the database storage interface.
type DB interface {
	// History returns the saved workouts, most recently added first
	History() ([]models.WorkoutRecord, error)
	// SaveHistory overwrites the saved workouts
	SaveHistory(history []models.WorkoutRecord) error
	// DeleteHistory removes the saved workouts
	DeleteHistory() error
	// Catalog returns the exercise lists of the built-in plans
	Catalog() (models.ExerciseCatalog, error)
	// SaveCatalog overwrites the exercise lists of the built-in plans
	SaveCatalog(catalog models.ExerciseCatalog) error
	// CustomPlans returns the user-defined plans
	CustomPlans() ([]models.CustomPlan, error)
	// SaveCustomPlans overwrites the user-defined plans
	SaveCustomPlans(plans []models.CustomPlan) error
	// ActiveSession returns the snapshot of the workout in progress
	ActiveSession() (*models.ActiveSession, error)
	// SaveActiveSession stores a snapshot of the workout in progress
	SaveActiveSession(sess *models.ActiveSession) error
	// DeleteActiveSession removes the snapshot of the workout in progress
	DeleteActiveSession() error
	// CommitWorkout saves the history and removes the active session
	// snapshot in a single transaction
	CommitWorkout(history []models.WorkoutRecord) error
	// Export returns everything in the database
	Export() (*Dump, error)
	// Import replaces everything in the database
	Import(dump *Dump) error
	// Close ends the database connection
	Close() error
}

// Dump is the portable representation of the database.
type Dump struct {
	Catalog       *models.ExerciseCatalog `json:"catalog,omitempty"               yaml:"catalog,omitempty"`
	ActiveSession *models.ActiveSession   `json:"activeSessionSnapshot,omitempty" yaml:"activeSessionSnapshot,omitempty"`
	History       []models.WorkoutRecord  `json:"history"                         yaml:"history"`
	CustomPlans   []models.CustomPlan     `json:"customPlans"                     yaml:"customPlans"`
}
