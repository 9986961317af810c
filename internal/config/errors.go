package config

import "github.com/ayoisaiah/lift/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidIncrement = &apperr.Error{
		Message: "weight increment must be greater than 0 and at most %v, got %v",
	}

	errInvalidRepRange = &apperr.Error{
		Message: "high reps threshold (%v) must be greater than low reps threshold (%v)",
	}

	errNegativeReps = &apperr.Error{
		Message: "low reps threshold cannot be negative, got %v",
	}

	errInvalidUnit = &apperr.Error{
		Message: "unit must be kg or lb, got %q",
	}

	errInvalidWindow = &apperr.Error{
		Message: "insights window must be between %d and %d days, got %d",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "log level must be one of debug, info, warn or error, got %q",
	}

	errInvalidFinishCmd = &apperr.Error{
		Message: "unable to parse finish_cmd option",
	}
)
