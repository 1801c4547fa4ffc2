package openingtimes

import (
	"errors"
	"fmt"
)

// Error kinds returned (wrapped in a *ValidationError) by New.
var (
	ErrMissingParameter = errors.New("missing parameter")
	ErrInvalidSchedule  = errors.New("invalid schedule")
	ErrInvalidTimeZone  = errors.New("invalid time zone")
)

// ValidationError describes why an OpeningTimes could not be constructed.
// Use errors.Is against the Err* kinds to classify it.
type ValidationError struct {
	Kind      error
	Parameter string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("parameter '%s' %s", e.Parameter, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func newValidationError(kind error, parameter, format string, args ...any) error {
	return &ValidationError{
		Kind:      kind,
		Parameter: parameter,
		Message:   fmt.Sprintf(format, args...),
	}
}
