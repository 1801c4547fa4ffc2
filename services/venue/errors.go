package venue

import (
	venueRepo "openinghours/database/repository/venue"
)

// ErrVenueNotFound is returned when no venue matches the requested id.
var ErrVenueNotFound = venueRepo.ErrVenueNotFound

// InvalidVenueError signals a request whose schedule or time zone was rejected.
type InvalidVenueError struct {
	Err error
}

func (e *InvalidVenueError) Error() string {
	return "invalid venue: " + e.Err.Error()
}

func (e *InvalidVenueError) Unwrap() error {
	return e.Err
}
