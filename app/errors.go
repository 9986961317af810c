package app

import "github.com/ayoisaiah/lift/internal/apperr"

var (
	errMissingArgs = &apperr.Error{
		Message: "missing arguments: expected %s",
	}

	errInvalidPosition = &apperr.Error{
		Message: "%s must be a number between 1 and %d, got %q",
	}

	errInvalidField = &apperr.Error{
		Message: "field must be weight or reps, got %q",
	}

	errEditRejected = &apperr.Error{
		Message: "unable to update the workout in progress",
	}

	errLastSet = &apperr.Error{
		Message: "an exercise keeps at least one set",
	}

	errUnknownPlan = &apperr.Error{
		Message: "no plan matches %q",
	}

	errNotBuiltin = &apperr.Error{
		Message: "exercises can only be managed for the push and pull plans, got %q",
	}

	errInvalidPeriod = &apperr.Error{
		Message: "period must be one of %s, got %q",
	}

	errWorkoutNotFound = &apperr.Error{
		Message: "no workout has an ID starting with %q",
	}

	errAmbiguousID = &apperr.Error{
		Message: "%q matches %d workouts: use more characters",
	}

	errFinishCmd = &apperr.Error{
		Message: "finish command failed",
	}

	errUnknownFormat = &apperr.Error{
		Message: "format must be json or yaml, got %q",
	}

	errReadImport = &apperr.Error{
		Message: "reading import file failed",
	}
)
