// Package ids generates identifiers for workouts, exercises and plans
package ids

import (
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// Generator produces unique identifiers.
type Generator interface {
	NewID() string
}

// UUID generates random version 4 UUIDs.
type UUID struct{}

func (UUID) NewID() string {
	return uuid.NewString()
}

// Sequence generates predictable IDs of the form prefix-1, prefix-2, ...
type Sequence struct {
	Prefix string

	mu sync.Mutex
	n  int
}

func (s *Sequence) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.n++

	if s.Prefix == "" {
		return strconv.Itoa(s.n)
	}

	return s.Prefix + "-" + strconv.Itoa(s.n)
}

// Short returns the abbreviated form of an ID used in listings.
func Short(id string) string {
	const n = 8

	if len(id) <= n {
		return id
	}

	return id[:n]
}
