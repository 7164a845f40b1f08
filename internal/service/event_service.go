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
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// eventService implements EventService
type eventService struct {
	eventRepo repository.EventRepository
	venueRepo repository.VenueRepository
	tx        database.TxRunner
	stamper   *audit.Stamper
	log       *logger.Logger
}

// NewEventService creates a new EventService
func NewEventService(eventRepo repository.EventRepository, venueRepo repository.VenueRepository, tx database.TxRunner, stamper *audit.Stamper, log *logger.Logger) EventService {
	return &eventService{
		eventRepo: eventRepo,
		venueRepo: venueRepo,
		tx:        tx,
		stamper:   defaultStamper(stamper),
		log:       defaultLogger(log).Named("event_service"),
	}
}

// ListEvents lists events with filters and pagination
func (s *eventService) ListEvents(ctx context.Context, filter *dto.EventListFilter) (events []*domain.Event, total int, err error) {
	ctx, span := telemetry.StartSpan(ctx, "service.event.list")
	defer func() { endSpan(span, err) }()

	if filter == nil {
		filter = &dto.EventListFilter{}
	}
	filter.SetDefaults()
	repoFilter := &repository.EventFilter{
		VenueID:  strings.TrimSpace(filter.VenueID),
		IsActive: filter.IsActive,
		Search:   strings.TrimSpace(filter.Search),
	}

	events, total, err = s.eventRepo.List(ctx, repoFilter, filter.Limit, filter.Offset)
	logFailure(s.log, "failed to list events", err)
	return events, total, err
}

// GetEvent retrieves an event by ID
func (s *eventService) GetEvent(ctx context.Context, id string) (event *domain.Event, err error) {
	ctx, span := telemetry.StartSpan(ctx, "service.event.get", telemetry.WithRecord(domain.ResourceEvent, id))
	defer func() { endSpan(span, err) }()

	event, err = s.eventRepo.GetByID(ctx, id)
	if err != nil {
		logFailure(s.log, "failed to get event", err, zap.String("event_id", id))
		return nil, err
	}
	if event == nil {
		return nil, &domain.NotFoundError{Resource: domain.ResourceEvent, ID: id}
	}
	return event, nil
}

// CreateEvent validates the event, checks that its venue exists and is free
// for the event's window, then inserts it
func (s *eventService) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (event *domain.Event, err error) {
	ctx, span := telemetry.StartSpan(ctx, "service.event.create")
	defer func() { endSpan(span, err) }()

	event = &domain.Event{
		ID:            uuid.New().String(),
		Name:          strings.TrimSpace(req.Name),
		Description:   trimPtr(req.Description),
		StartDateTime: req.StartDateTime,
		EndDateTime:   req.EndDateTime,
		VenueID:       strings.TrimSpace(req.VenueID),
		ImageURL:      trimPtr(req.ImageURL),
		IsActive:      boolOr(req.IsActive, true),
	}
	span.SetAttributes(attribute.String("venue_id", event.VenueID))

	if err := validation.ValidateEvent(event); err != nil {
		return nil, err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.checkVenue(ctx, event.VenueID); err != nil {
			return err
		}
		if err := s.checkOverlap(ctx, event); err != nil {
			return err
		}
		s.stamper.Created(event)
		return s.eventRepo.Create(ctx, event)
	})
	if err != nil {
		logFailure(s.log, "failed to create event", err, zap.String("event_id", event.ID))
		return nil, err
	}

	s.log.Debug("event created", zap.String("event_id", event.ID), zap.String("venue_id", event.VenueID))
	return event, nil
}

// UpdateEvent overwrites an event. The overlap check ignores the event itself.
func (s *eventService) UpdateEvent(ctx context.Context, id string, req *dto.UpdateEventRequest) (event *domain.Event, err error) {
	ctx, span := telemetry.StartSpan(ctx, "service.event.update", telemetry.WithRecord(domain.ResourceEvent, id))
	defer func() { endSpan(span, err) }()

	// Field rules come before the lookup so bad input is reported as such
	// even for an unknown id
	input := &domain.Event{
		ID:            id,
		Name:          strings.TrimSpace(req.Name),
		Description:   trimPtr(req.Description),
		StartDateTime: req.StartDateTime,
		EndDateTime:   req.EndDateTime,
		VenueID:       strings.TrimSpace(req.VenueID),
		ImageURL:      trimPtr(req.ImageURL),
	}
	if err := validation.ValidateEvent(input); err != nil {
		return nil, err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := s.eventRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return &domain.NotFoundError{Resource: domain.ResourceEvent, ID: id}
		}
		if err := checkVersion(domain.ResourceEvent, id, req.Version, existing.Version); err != nil {
			return err
		}

		existing.Name = input.Name
		existing.Description = input.Description
		existing.StartDateTime = input.StartDateTime
		existing.EndDateTime = input.EndDateTime
		existing.VenueID = input.VenueID
		existing.ImageURL = input.ImageURL
		existing.IsActive = boolOr(req.IsActive, existing.IsActive)

		if err := s.checkVenue(ctx, existing.VenueID); err != nil {
			return err
		}
		if err := s.checkOverlap(ctx, existing); err != nil {
			return err
		}

		s.stamper.Modified(existing)
		if err := s.eventRepo.Update(ctx, existing); err != nil {
			return resolveStale(ctx, err, domain.ResourceEvent, id, s.eventRepo.GetByID)
		}
		event = existing
		return nil
	})
	if err != nil {
		logFailure(s.log, "failed to update event", err, zap.String("event_id", id))
		return nil, err
	}

	s.log.Debug("event updated", zap.String("event_id", id), zap.Int("version", event.Version))
	return event, nil
}

// DeleteEvent deletes an event. Bookings for the event block the delete.
func (s *eventService) DeleteEvent(ctx context.Context, id string) (err error) {
	ctx, span := telemetry.StartSpan(ctx, "service.event.delete", telemetry.WithRecord(domain.ResourceEvent, id))
	defer func() { endSpan(span, err) }()

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.eventRepo.Delete(ctx, id)
	})
	if err != nil {
		logFailure(s.log, "failed to delete event", err, zap.String("event_id", id))
		return err
	}

	s.log.Debug("event deleted", zap.String("event_id", id))
	return nil
}

// checkVenue reports a missing venue against the VenueId field
func (s *eventService) checkVenue(ctx context.Context, venueID string) error {
	// Holding the venue row until commit keeps the overlap check and the
	// write atomic against other event writers at the same venue
	exists, err := s.venueRepo.LockForEventWrite(ctx, venueID)
	if err != nil {
		return err
	}
	if !exists {
		return &domain.ValidationError{
			Errors: []domain.FieldError{{Field: domain.FieldVenueID, Message: domain.MsgVenueNotFound}},
			Err:    &domain.NotFoundError{Resource: domain.ResourceVenue, ID: venueID},
		}
	}
	return nil
}

// checkOverlap rejects a window that collides with another event at the
// same venue. Events without a full window are never checked.
func (s *eventService) checkOverlap(ctx context.Context, event *domain.Event) error {
	if !event.HasWindow() {
		return nil
	}
	booked, err := s.eventRepo.HasVenueOverlap(ctx, event.VenueID, *event.StartDateTime, *event.EndDateTime, event.ID)
	if err != nil {
		return err
	}
	if booked {
		return domain.NewValidationError(domain.FieldStartDateTime, domain.MsgVenueBooked)
	}
	return nil
}
