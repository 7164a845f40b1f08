package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Resource names used in typed errors
const (
	ResourceVenue    = "venue"
	ResourceEvent    = "event"
	ResourceCustomer = "customer"
	ResourceBooking  = "booking"
)

// Field names reported in validation errors
const (
	FieldVenueName     = "VenueName"
	FieldLocation      = "Location"
	FieldCapacity      = "Capacity"
	FieldImageURL      = "ImageUrl"
	FieldEventName     = "EventName"
	FieldStartDateTime = "StartDateTime"
	FieldEndDateTime   = "EndDateTime"
	FieldVenueID       = "VenueId"
	FieldFullName      = "FullName"
	FieldEmail         = "Email"
	FieldPhone         = "Phone"
	FieldEventID       = "EventId"
	FieldCustomerID    = "CustomerId"
	FieldBookingDate   = "BookingDate"
	FieldVersion       = "Version"
)

// Messages shown for cross-entity rule failures
const (
	MsgEndBeforeStart   = "End time must be after start time."
	MsgVenueBooked      = "This venue is already booked for the selected time."
	MsgEventNotFound    = "Selected event was not found."
	MsgVenueNotFound    = "Selected venue was not found."
	MsgCustomerNotFound = "Selected customer was not found."
	MsgDuplicateBooking = "This customer already has a booking for this event."
	MsgDuplicateEmail   = "A customer with this email already exists."
	MsgStaleVersion     = "The record was changed by someone else. Reload and try again."
)

var (
	ErrDuplicateBooking = errors.New("duplicate booking for event and customer")
	ErrDuplicateEmail   = errors.New("duplicate customer email")
)

// FieldError is one field-scoped validation failure
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every field that failed validation. Err optionally
// carries the cause, such as ErrDuplicateBooking.
type ValidationError struct {
	Errors []FieldError
	Err    error
}

// NewValidationError builds a single-field validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

// Add appends a field failure
func (e *ValidationError) Add(field, message string) {
	e.Errors = append(e.Errors, FieldError{Field: field, Message: message})
}

// HasErrors reports whether any field failed
func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Errors) > 0
}

// OrNil returns nil when nothing failed so callers can return it as error
func (e *ValidationError) OrNil() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NotFoundError reports a missing record
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ReferentialIntegrityError reports a delete blocked by dependent records
type ReferentialIntegrityError struct {
	Resource   string
	ID         string
	Constraint string
}

func (e *ReferentialIntegrityError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("%s %s is still referenced (%s)", e.Resource, e.ID, e.Constraint)
	}
	return fmt.Sprintf("%s %s is still referenced", e.Resource, e.ID)
}

// ConcurrencyConflictError reports a write that lost a race with another writer
type ConcurrencyConflictError struct {
	Resource string
	ID       string
}

func (e *ConcurrencyConflictError) Error() string {
	return fmt.Sprintf("%s %s was modified concurrently", e.Resource, e.ID)
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsReferentialIntegrity checks if the error is a referential integrity error
func IsReferentialIntegrity(err error) bool {
	var target *ReferentialIntegrityError
	return errors.As(err, &target)
}

// IsConcurrencyConflict checks if the error is a concurrency conflict
func IsConcurrencyConflict(err error) bool {
	var target *ConcurrencyConflictError
	return errors.As(err, &target)
}

// IsDuplicate checks if the error is a uniqueness violation
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateBooking) || errors.Is(err, ErrDuplicateEmail)
}
