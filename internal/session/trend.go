package session

import "github.com/ayoisaiah/lift/internal/models"

// Direction compares a value with the one recorded last time.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
	Same Direction = "same"
	None Direction = "none"
)

// Trend compares field of the set at idx with the same set of last. Unfilled
// sets and sets without a counterpart have no trend.
func Trend(
	sets, last []models.SetRecord,
	idx int,
	field Field,
) Direction {
	if idx < 0 || idx >= len(sets) || idx >= len(last) {
		return None
	}

	cur, prev := value(sets[idx], field), value(last[idx], field)

	switch {
	case cur == 0:
		return None
	case cur > prev:
		return Up
	case cur < prev:
		return Down
	default:
		return Same
	}
}

func value(s models.SetRecord, field Field) float64 {
	if field == Reps {
		return float64(s.Reps)
	}

	return s.Weight
}
