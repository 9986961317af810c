package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/lift/internal/apperr"
	"github.com/ayoisaiah/lift/internal/models"
)

// legacyKeys maps the keys used by the browser version of the app to the
// current ones.
var legacyKeys = map[string]string{
	"gymWorkouts":    KeyHistory,
	"gymExercises":   KeyCatalog,
	"gymCustomPlans": KeyCustomPlans,
	"activeWorkout":  KeyActiveSession,
}

var currentKeys = map[string]bool{
	KeyHistory:       true,
	KeyCatalog:       true,
	KeyCustomPlans:   true,
	KeyActiveSession: true,
}

var errUnknownDumpFormat = &apperr.Error{
	Message: "unrecognised export file: expected JSON or YAML",
}

// ParseDump decodes an export produced by `lift export` (JSON or YAML) or a
// dump of the browser storage of the web version of the app.
func ParseDump(b []byte) (*Dump, error) {
	trimmed := bytes.TrimSpace(b)

	if len(trimmed) > 0 && trimmed[0] == '{' {
		return parseJSONDump(trimmed)
	}

	var d Dump

	if err := yaml.Unmarshal(trimmed, &d); err != nil {
		return nil, errUnknownDumpFormat.Wrap(err)
	}

	return &d, nil
}

func parseJSONDump(b []byte) (*Dump, error) {
	var raw map[string]json.RawMessage

	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, errUnknownDumpFormat.Wrap(err)
	}

	migrated := make(map[string]any, len(raw))

	for key, value := range raw {
		if newKey, ok := legacyKeys[key]; ok {
			key = newKey
		}

		if !currentKeys[key] {
			continue
		}

		v, err := decodeLegacyValue(value)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", key, err)
		}

		if v == nil {
			continue
		}

		migrated[key] = stringifyIDs(v)
	}

	normalised, err := json.Marshal(migrated)
	if err != nil {
		return nil, err
	}

	var d Dump

	if err := json.Unmarshal(normalised, &d); err != nil {
		return nil, errUnknownDumpFormat.Wrap(err)
	}

	return &d, nil
}

// decodeLegacyValue decodes a value that may itself be a JSON document
// stored as a string, as browser storage does. Null and empty values decode
// to nil.
func decodeLegacyValue(value json.RawMessage) (any, error) {
	value = bytes.TrimSpace(value)

	if len(value) > 0 && value[0] == '"' {
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return nil, err
		}

		value = bytes.TrimSpace([]byte(s))
	}

	if len(value) == 0 || bytes.Equal(value, []byte("null")) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(value))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}

	return v, nil
}

// stringifyIDs converts numeric "id" fields, as generated by the browser
// version, to strings. Fractional reps are rounded.
func stringifyIDs(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			n, ok := val.(json.Number)
			if ok && k == "id" {
				t[k] = n.String()
				continue
			}

			if ok && k == "reps" {
				f, err := n.Float64()
				if err == nil {
					t[k] = json.Number(strconv.Itoa(models.RoundReps(f)))
				}

				continue
			}

			t[k] = stringifyIDs(val)
		}

		return t
	case []any:
		for i := range t {
			t[i] = stringifyIDs(t[i])
		}

		return t
	default:
		return v
	}
}
