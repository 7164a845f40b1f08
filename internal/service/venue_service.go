package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sabrinafayremeyer/EventEase/internal/audit"
	"github.com/sabrinafayremeyer/EventEase/internal/domain"
	"github.com/sabrinafayremeyer/EventEase/internal/dto"
	"github.com/sabrinafayremeyer/EventEase/internal/repository"
	"github.com/sabrinafayremeyer/EventEase/internal/validation"
	"github.com/sabrinafayremeyer/EventEase/pkg/database"
	"github.com/sabrinafayremeyer/EventEase/pkg/logger"
	"github.com/sabrinafayremeyer/EventEase/pkg/telemetry"
	"go.uber.org/zap"
)

// venueService implements VenueService
type venueService struct {
	venueRepo repository.VenueRepository
	tx        database.TxRunner
	stamper   *audit.Stamper
	log       *logger.Logger
}

// NewVenueService creates a new VenueService
func NewVenueService(venueRepo repository.VenueRepository, tx database.TxRunner, stamper *audit.Stamper, log *logger.Logger) VenueService {
	return &venueService{
		venueRepo: venueRepo,
		tx:        tx,
		stamper:   defaultStamper(stamper),
		log:       defaultLogger(log).Named("venue_service"),
	}
}

// ListVenues lists venues with filters and pagination
func (s *venueService) ListVenues(ctx context.Context, filter *dto.VenueListFilter) (venues []*domain.Venue, total int, err error) {
	ctx, span := telemetry.StartSpan(ctx, "service.venue.list")
	defer func() { endSpan(span, err) }()

	if filter == nil {
		filter = &dto.VenueListFilter{}
	}
	filter.SetDefaults()
	repoFilter := &repository.VenueFilter{
		Search:   strings.TrimSpace(filter.Search),
		IsActive: filter.IsActive,
	}

	venues, total, err = s.venueRepo.List(ctx, repoFilter, filter.Limit, filter.Offset)
	logFailure(s.log, "failed to list venues", err)
	return venues, total, err
}

// GetVenue retrieves a venue by ID
func (s *venueService) GetVenue(ctx context.Context, id string) (venue *domain.Venue, err error) {
	ctx, span := telemetry.StartSpan(ctx, "service.venue.get", telemetry.WithRecord(domain.ResourceVenue, id))
	defer func() { endSpan(span, err) }()

	venue, err = s.venueRepo.GetByID(ctx, id)
	if err != nil {
		logFailure(s.log, "failed to get venue", err, zap.String("venue_id", id))
		return nil, err
	}
	if venue == nil {
		return nil, &domain.NotFoundError{Resource: domain.ResourceVenue, ID: id}
	}
	return venue, nil
}

// CreateVenue creates a new venue
func (s *venueService) CreateVenue(ctx context.Context, req *dto.CreateVenueRequest) (venue *domain.Venue, err error) {
	ctx, span := telemetry.StartSpan(ctx, "service.venue.create")
	defer func() { endSpan(span, err) }()

	venue = &domain.Venue{
		ID:       uuid.New().String(),
		Name:     strings.TrimSpace(req.Name),
		Location: strings.TrimSpace(req.Location),
		Capacity: req.Capacity,
		ImageURL: trimPtr(req.ImageURL),
		IsActive: boolOr(req.IsActive, true),
	}
	if err := validation.ValidateVenue(venue); err != nil {
		return nil, err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		s.stamper.Created(venue)
		return s.venueRepo.Create(ctx, venue)
	})
	if err != nil {
		logFailure(s.log, "failed to create venue", err, zap.String("venue_id", venue.ID))
		return nil, err
	}

	s.log.Debug("venue created", zap.String("venue_id", venue.ID))
	return venue, nil
}

// UpdateVenue overwrites a venue
func (s *venueService) UpdateVenue(ctx context.Context, id string, req *dto.UpdateVenueRequest) (venue *domain.Venue, err error) {
	ctx, span := telemetry.StartSpan(ctx, "service.venue.update", telemetry.WithRecord(domain.ResourceVenue, id))
	defer func() { endSpan(span, err) }()

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := s.venueRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return &domain.NotFoundError{Resource: domain.ResourceVenue, ID: id}
		}
		if err := checkVersion(domain.ResourceVenue, id, req.Version, existing.Version); err != nil {
			return err
		}

		existing.Name = strings.TrimSpace(req.Name)
		existing.Location = strings.TrimSpace(req.Location)
		existing.Capacity = req.Capacity
		existing.ImageURL = trimPtr(req.ImageURL)
		existing.IsActive = boolOr(req.IsActive, existing.IsActive)
		if err := validation.ValidateVenue(existing); err != nil {
			return err
		}

		s.stamper.Modified(existing)
		if err := s.venueRepo.Update(ctx, existing); err != nil {
			return resolveStale(ctx, err, domain.ResourceVenue, id, s.venueRepo.GetByID)
		}
		venue = existing
		return nil
	})
	if err != nil {
		logFailure(s.log, "failed to update venue", err, zap.String("venue_id", id))
		return nil, err
	}

	s.log.Debug("venue updated", zap.String("venue_id", id), zap.Int("version", venue.Version))
	return venue, nil
}

// DeleteVenue deletes a venue. Events still held at the venue block the delete.
func (s *venueService) DeleteVenue(ctx context.Context, id string) (err error) {
	ctx, span := telemetry.StartSpan(ctx, "service.venue.delete", telemetry.WithRecord(domain.ResourceVenue, id))
	defer func() { endSpan(span, err) }()

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.venueRepo.Delete(ctx, id)
	})
	if err != nil {
		logFailure(s.log, "failed to delete venue", err, zap.String("venue_id", id))
		return err
	}

	s.log.Debug("venue deleted", zap.String("venue_id", id))
	return nil
}
