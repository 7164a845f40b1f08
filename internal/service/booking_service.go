package service

import (
	"context"
	"strings"
	"time"

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

// bookingService implements BookingService
type bookingService struct {
	bookingRepo  repository.BookingRepository
	eventRepo    repository.EventRepository
	customerRepo repository.CustomerRepository
	tx           database.TxRunner
	stamper      *audit.Stamper
	log          *logger.Logger
}

// NewBookingService creates a new BookingService
func NewBookingService(
	bookingRepo repository.BookingRepository,
	eventRepo repository.EventRepository,
	customerRepo repository.CustomerRepository,
	tx database.TxRunner,
	stamper *audit.Stamper,
	log *logger.Logger,
) BookingService {
	return &bookingService{
		bookingRepo:  bookingRepo,
		eventRepo:    eventRepo,
		customerRepo: customerRepo,
		tx:           tx,
		stamper:      defaultStamper(stamper),
		log:          defaultLogger(log).Named("booking_service"),
	}
}

// ListBookings lists bookings with filters and pagination
func (s *bookingService) ListBookings(ctx context.Context, filter *dto.BookingListFilter) (bookings []*domain.Booking, total int, err error) {
	ctx, span := telemetry.StartSpan(ctx, "service.booking.list")
	defer func() { endSpan(span, err) }()

	if filter == nil {
		filter = &dto.BookingListFilter{}
	}
	filter.SetDefaults()
	repoFilter := &repository.BookingFilter{
		EventID:    strings.TrimSpace(filter.EventID),
		CustomerID: strings.TrimSpace(filter.CustomerID),
		VenueID:    strings.TrimSpace(filter.VenueID),
	}

	bookings, total, err = s.bookingRepo.List(ctx, repoFilter, filter.Limit, filter.Offset)
	logFailure(s.log, "failed to list bookings", err)
	return bookings, total, err
}

// GetBooking retrieves a booking by ID
func (s *bookingService) GetBooking(ctx context.Context, id string) (booking *domain.Booking, err error) {
	ctx, span := telemetry.StartSpan(ctx, "service.booking.get", telemetry.WithRecord(domain.ResourceBooking, id))
	defer func() { endSpan(span, err) }()

	booking, err = s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		logFailure(s.log, "failed to get booking", err, zap.String("booking_id", id))
		return nil, err
	}
	if booking == nil {
		return nil, &domain.NotFoundError{Resource: domain.ResourceBooking, ID: id}
	}
	return booking, nil
}

// CreateBooking resolves the event and customer, copies the event's venue onto
// the booking, rejects a second booking of the same event by the same
// customer and inserts the booking with the acting user as creator
func (s *bookingService) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (booking *domain.Booking, err error) {
	ctx, span := telemetry.StartSpan(ctx, "service.booking.create")
	defer func() { endSpan(span, err) }()

	booking = &domain.Booking{
		ID:          uuid.New().String(),
		EventID:     strings.TrimSpace(req.EventID),
		CustomerID:  strings.TrimSpace(req.CustomerID),
		BookingDate: timeOrZero(req.BookingDate),
	}
	span.SetAttributes(
		attribute.String("event_id", booking.EventID),
		attribute.String("customer_id", booking.CustomerID),
	)

	if err := validation.ValidateBooking(booking); err != nil {
		return nil, err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.resolveReferences(ctx, booking); err != nil {
			return err
		}
		if err := s.checkDuplicate(ctx, booking); err != nil {
			return err
		}
		booking.CreatedByUserID = audit.ActorFrom(ctx)
		s.stamper.Created(booking)
		return s.bookingRepo.Create(ctx, booking)
	})
	if err != nil {
		logFailure(s.log, "failed to create booking", err, zap.String("booking_id", booking.ID))
		return nil, err
	}

	s.log.Debug("booking created",
		zap.String("booking_id", booking.ID),
		zap.String("event_id", booking.EventID),
		zap.String("customer_id", booking.CustomerID),
	)
	return booking, nil
}

// UpdateBooking overwrites a booking. The venue is copied from the event
// again and the acting user becomes the updater; the creator is kept.
func (s *bookingService) UpdateBooking(ctx context.Context, id string, req *dto.UpdateBookingRequest) (booking *domain.Booking, err error) {
	ctx, span := telemetry.StartSpan(ctx, "service.booking.update", telemetry.WithRecord(domain.ResourceBooking, id))
	defer func() { endSpan(span, err) }()

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := s.bookingRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return &domain.NotFoundError{Resource: domain.ResourceBooking, ID: id}
		}
		if err := checkVersion(domain.ResourceBooking, id, req.Version, existing.Version); err != nil {
			return err
		}

		existing.EventID = strings.TrimSpace(req.EventID)
		existing.CustomerID = strings.TrimSpace(req.CustomerID)
		existing.BookingDate = timeOrZero(req.BookingDate)
		if err := validation.ValidateBooking(existing); err != nil {
			return err
		}
		if err := s.resolveReferences(ctx, existing); err != nil {
			return err
		}
		if err := s.checkDuplicate(ctx, existing); err != nil {
			return err
		}

		existing.UpdatedByUserID = audit.ActorFrom(ctx)
		s.stamper.Modified(existing)
		if err := s.bookingRepo.Update(ctx, existing); err != nil {
			return resolveStale(ctx, err, domain.ResourceBooking, id, s.bookingRepo.GetByID)
		}
		booking = existing
		return nil
	})
	if err != nil {
		logFailure(s.log, "failed to update booking", err, zap.String("booking_id", id))
		return nil, err
	}

	s.log.Debug("booking updated", zap.String("booking_id", id), zap.Int("version", booking.Version))
	return booking, nil
}

// DeleteBooking deletes a booking
func (s *bookingService) DeleteBooking(ctx context.Context, id string) (err error) {
	ctx, span := telemetry.StartSpan(ctx, "service.booking.delete", telemetry.WithRecord(domain.ResourceBooking, id))
	defer func() { endSpan(span, err) }()

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.bookingRepo.Delete(ctx, id)
	})
	if err != nil {
		logFailure(s.log, "failed to delete booking", err, zap.String("booking_id", id))
		return err
	}

	s.log.Debug("booking deleted", zap.String("booking_id", id))
	return nil
}

// resolveReferences loads the event and customer and copies the event's venue.
// Every missing reference is reported, event first.
func (s *bookingService) resolveReferences(ctx context.Context, booking *domain.Booking) error {
	event, err := s.eventRepo.GetByID(ctx, booking.EventID)
	if err != nil {
		return err
	}
	customer, err := s.customerRepo.GetByID(ctx, booking.CustomerID)
	if err != nil {
		return err
	}

	verr := &domain.ValidationError{}
	if event == nil {
		verr.Add(domain.FieldEventID, domain.MsgEventNotFound)
		verr.Err = &domain.NotFoundError{Resource: domain.ResourceEvent, ID: booking.EventID}
	}
	if customer == nil {
		verr.Add(domain.FieldCustomerID, domain.MsgCustomerNotFound)
		if verr.Err == nil {
			verr.Err = &domain.NotFoundError{Resource: domain.ResourceCustomer, ID: booking.CustomerID}
		}
	}
	if verr.HasErrors() {
		return verr
	}

	booking.VenueID = event.VenueID
	return nil
}

func (s *bookingService) checkDuplicate(ctx context.Context, booking *domain.Booking) error {
	exists, err := s.bookingRepo.ExistsForEventCustomer(ctx, booking.EventID, booking.CustomerID, booking.ID)
	if err != nil {
		return err
	}
	if exists {
		return &domain.ValidationError{
			Errors: []domain.FieldError{{Field: domain.FieldCustomerID, Message: domain.MsgDuplicateBooking}},
			Err:    domain.ErrDuplicateBooking,
		}
	}
	return nil
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
