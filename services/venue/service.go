package venue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	venueRepo "openinghours/database/repository/venue"
	"openinghours/models"
	"openinghours/services/legacyhours"
	"openinghours/services/openingtimes"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// VenueService defines business logic for venues and their opening hours.
type VenueService interface {
	// CreateVenue validates the schedule and stores a new venue.
	CreateVenue(ctx context.Context, req models.VenueRequest) (*models.Venue, error)
	// GetVenue retrieves a venue by ID.
	GetVenue(ctx context.Context, id string) (*models.Venue, error)
	// UpdateVenue replaces name, category, zone and schedule of a venue.
	UpdateVenue(ctx context.Context, id string, req models.VenueRequest) (*models.Venue, error)
	// DeleteVenue removes a venue.
	DeleteVenue(ctx context.Context, id string) error
	// GetStatus reports whether the venue is open at the given instant.
	GetStatus(ctx context.Context, id string, at time.Time) (*models.VenueStatus, error)
	// GetOpeningHours renders the weekly schedule with the given time layout.
	GetOpeningHours(ctx context.Context, id string, layout string) (*models.VenueHours, error)
	// FindOpenVenues lists venues of a category that are open at the instant.
	FindOpenVenues(ctx context.Context, category string, at time.Time) ([]models.VenueStatus, error)
	// PrunePastAlterations drops alterations dated before at and returns how
	// many venues changed.
	PrunePastAlterations(ctx context.Context, at time.Time) (int, error)
}

// DefaultVenueService is the production implementation.
type DefaultVenueService struct {
	Repo   venueRepo.VenueRepository
	Cache  VenueCache
	Logger *zap.Logger
	Now    func() time.Time
}

// NewVenueService wires a service. Cache may be nil.
func NewVenueService(repo venueRepo.VenueRepository, cache VenueCache, logger *zap.Logger) *DefaultVenueService {
	return &DefaultVenueService{Repo: repo, Cache: cache, Logger: logger, Now: time.Now}
}

func (s *DefaultVenueService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *DefaultVenueService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// buildVenue normalises the request and validates it by constructing the
// opening times the venue will be evaluated with.
func buildVenue(req models.VenueRequest) (*models.Venue, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, &InvalidVenueError{Err: errors.New("name is required")}
	}
	weekly, err := legacyhours.Parse(req.OpeningTimes)
	if err != nil {
		return nil, &InvalidVenueError{Err: err}
	}
	alterations, err := legacyhours.ParseAlterations(req.Alterations)
	if err != nil {
		return nil, &InvalidVenueError{Err: err}
	}
	ot, err := openingtimes.New(weekly, strings.TrimSpace(req.TimeZone), alterations)
	if err != nil {
		return nil, &InvalidVenueError{Err: err}
	}
	return &models.Venue{
		Name:         strings.TrimSpace(req.Name),
		Category:     strings.TrimSpace(req.Category),
		TimeZone:     ot.TimeZone(),
		OpeningTimes: ot.Weekly(),
		Alterations:  ot.Alterations(),
	}, nil
}

func openingTimesOf(v *models.Venue) (*openingtimes.OpeningTimes, error) {
	ot, err := openingtimes.New(v.OpeningTimes, v.TimeZone, v.Alterations)
	if err != nil {
		return nil, fmt.Errorf("venue %s has an unusable schedule: %w", v.ID, err)
	}
	return ot, nil
}

func (s *DefaultVenueService) CreateVenue(ctx context.Context, req models.VenueRequest) (*models.Venue, error) {
	v, err := buildVenue(req)
	if err != nil {
		return nil, err
	}
	v.ID = uuid.NewString()
	if err := s.Repo.Create(ctx, v); err != nil {
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}
	s.logger().Info("Venue created", zap.String("venueID", v.ID), zap.String("timeZone", v.TimeZone))
	return v, nil
}

func (s *DefaultVenueService) GetVenue(ctx context.Context, id string) (*models.Venue, error) {
	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, id)
		if err != nil {
			s.logger().Warn("Venue cache read failed", zap.String("venueID", id), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	v, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, v); err != nil {
			s.logger().Warn("Venue cache write failed", zap.String("venueID", id), zap.Error(err))
		}
	}
	return v, nil
}

func (s *DefaultVenueService) UpdateVenue(ctx context.Context, id string, req models.VenueRequest) (*models.Venue, error) {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	v, err := buildVenue(req)
	if err != nil {
		return nil, err
	}
	v.ID = existing.ID
	v.CreatedAt = existing.CreatedAt
	if err := s.Repo.Update(ctx, v); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return v, nil
}

func (s *DefaultVenueService) DeleteVenue(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *DefaultVenueService) invalidate(ctx context.Context, id string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Delete(ctx, id); err != nil {
		s.logger().Warn("Venue cache invalidation failed", zap.String("venueID", id), zap.Error(err))
	}
}

func (s *DefaultVenueService) GetStatus(ctx context.Context, id string, at time.Time) (*models.VenueStatus, error) {
	v, err := s.GetVenue(ctx, id)
	if err != nil {
		return nil, err
	}
	ot, err := openingTimesOf(v)
	if err != nil {
		return nil, err
	}
	status := statusOf(v, ot, at)
	return &status, nil
}

func statusOf(v *models.Venue, ot *openingtimes.OpeningTimes, at time.Time) models.VenueStatus {
	st := ot.GetStatus(at, openingtimes.StatusOptions{IncludeNext: true})
	return models.VenueStatus{
		VenueID:    v.ID,
		Name:       v.Name,
		Category:   v.Category,
		TimeZone:   v.TimeZone,
		Instant:    st.Instant,
		IsOpen:     st.IsOpen,
		NextOpen:   st.NextOpen,
		NextClosed: st.NextClosed,
		Message:    ot.StatusMessage(at),
	}
}

func (s *DefaultVenueService) GetOpeningHours(ctx context.Context, id string, layout string) (*models.VenueHours, error) {
	v, err := s.GetVenue(ctx, id)
	if err != nil {
		return nil, err
	}
	ot, err := openingTimesOf(v)
	if err != nil {
		return nil, err
	}
	return &models.VenueHours{
		VenueID:     v.ID,
		Name:        v.Name,
		TimeZone:    v.TimeZone,
		Hours:       ot.FormatSessions(layout),
		Alterations: ot.UpcomingAlterations(s.now()),
	}, nil
}

func (s *DefaultVenueService) FindOpenVenues(ctx context.Context, category string, at time.Time) ([]models.VenueStatus, error) {
	venues, err := s.Repo.GetByCategory(ctx, strings.TrimSpace(category))
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}

	open := make([]models.VenueStatus, 0, len(venues))
	for i := range venues {
		v := &venues[i]
		ot, err := openingTimesOf(v)
		if err != nil {
			s.logger().Warn("Skipping venue with invalid schedule", zap.String("venueID", v.ID), zap.Error(err))
			continue
		}
		if !ot.IsOpen(at) {
			continue
		}
		open = append(open, statusOf(v, ot, at))
	}
	return open, nil
}

func (s *DefaultVenueService) PrunePastAlterations(ctx context.Context, at time.Time) (int, error) {
	venues, err := s.Repo.GetWithAlterations(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list venues with alterations: %w", err)
	}

	changed := 0
	for i := range venues {
		v := &venues[i]
		ot, err := openingTimesOf(v)
		if err != nil {
			s.logger().Warn("Skipping venue with invalid schedule", zap.String("venueID", v.ID), zap.Error(err))
			continue
		}
		upcoming := ot.UpcomingAlterations(at)
		if len(upcoming) == len(v.Alterations) {
			continue
		}
		if len(upcoming) == 0 {
			upcoming = nil
		}
		v.Alterations = upcoming
		if err := s.Repo.Update(ctx, v); err != nil {
			return changed, fmt.Errorf("failed to prune alterations of venue %s: %w", v.ID, err)
		}
		s.invalidate(ctx, v.ID)
		changed++
	}
	return changed, nil
}
