package venueRepo

import (
	"context"
	"errors"

	"openinghours/models"
)

// ErrVenueNotFound is returned when no venue matches the given id.
var ErrVenueNotFound = errors.New("venue not found")

// VenueRepository defines methods for venue data access.
type VenueRepository interface {
	// GetByID retrieves a venue by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Venue, error)
	// GetByCategory lists venues in a category. An empty category lists all.
	GetByCategory(ctx context.Context, category string) ([]models.Venue, error)
	// GetWithAlterations lists venues that carry at least one alteration.
	GetWithAlterations(ctx context.Context) ([]models.Venue, error)
	// Create inserts a new venue record.
	Create(ctx context.Context, venue *models.Venue) error
	// Update replaces an existing venue record.
	Update(ctx context.Context, venue *models.Venue) error
	// Delete removes a venue record by its ID.
	Delete(ctx context.Context, id string) error
}
