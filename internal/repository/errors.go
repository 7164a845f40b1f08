package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sabrinafayremeyer/EventEase/internal/domain"
)

// ErrStaleVersion is returned by Update when no row matched both the id and
// the expected version. The caller decides between not found and conflict.
var ErrStaleVersion = errors.New("no row matched id and version")

// Postgres SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgInvalidText         = "22P02"
)

// Constraint names from the schema
const (
	constraintCustomerEmail     = "UX_Customers_Email"
	constraintBookingUnique     = "UQ_Booking_Event_Customer"
	constraintVenueCapacity     = "CK_Venue_Capacity_Positive"
	constraintEventTimeOrder    = "CK_Event_Time_Order"
	constraintEventVenueFK      = "FK_Events_Venues_VenueId"
	constraintBookingEventFK    = "FK_Bookings_Events_EventId"
	constraintBookingCustomerFK = "FK_Bookings_Customers_CustomerId"
)

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// translateWriteError maps constraint violations raised by an insert or
// update onto domain errors. A foreign key violation here means a referenced
// row vanished after the service resolved it.
func translateWriteError(err error, resource, id string) error {
	pgErr, ok := pgError(err)
	if !ok {
		return err
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		switch pgErr.ConstraintName {
		case constraintCustomerEmail:
			return &domain.ValidationError{
				Errors: []domain.FieldError{{Field: domain.FieldEmail, Message: domain.MsgDuplicateEmail}},
				Err:    domain.ErrDuplicateEmail,
			}
		case constraintBookingUnique:
			return &domain.ValidationError{
				Errors: []domain.FieldError{{Field: domain.FieldCustomerID, Message: domain.MsgDuplicateBooking}},
				Err:    domain.ErrDuplicateBooking,
			}
		}
	case pgCheckViolation:
		switch pgErr.ConstraintName {
		case constraintVenueCapacity:
			return domain.NewValidationError(domain.FieldCapacity, "Capacity must be greater than 0.")
		case constraintEventTimeOrder:
			return domain.NewValidationError(domain.FieldEndDateTime, domain.MsgEndBeforeStart)
		}
	case pgForeignKeyViolation:
		return &domain.ConcurrencyConflictError{Resource: resource, ID: id}
	}
	return err
}

// translateDeleteError maps a restrict foreign key onto ReferentialIntegrityError
func translateDeleteError(err error, resource, id string) error {
	if pgErr, ok := pgError(err); ok && pgErr.Code == pgForeignKeyViolation {
		return &domain.ReferentialIntegrityError{
			Resource:   resource,
			ID:         id,
			Constraint: pgErr.ConstraintName,
		}
	}
	return err
}

// isInvalidText reports a malformed value such as a bad uuid literal
func isInvalidText(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == pgInvalidText
}

// validID reports whether id can address a row at all
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// nullableID turns an empty exclusion id into SQL NULL
func nullableID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
