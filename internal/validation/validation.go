// Package validation holds the per-entity field rules applied before any write.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sabrinafayremeyer/EventEase/internal/domain"
)

// Validate is shared because validator caches struct metadata
var Validate = validator.New()

// The rule structs name their fields after the fields reported to callers,
// so validator's FieldErrors map straight onto domain.FieldError.

type venueRules struct {
	VenueName string  `validate:"required,max=200"`
	Location  string  `validate:"required,max=200"`
	Capacity  int     `validate:"gt=0"`
	ImageUrl  *string `validate:"omitempty,max=500"`
}

type eventRules struct {
	EventName string `validate:"required,max=200"`
	VenueId   string `validate:"required"`
}

type customerRules struct {
	FullName string  `validate:"required,max=200"`
	Email    string  `validate:"required,max=200,email"`
	Phone    *string `validate:"omitempty,max=50"`
}

type bookingRules struct {
	EventId    string `validate:"required"`
	CustomerId string `validate:"required"`
}

// ValidateVenue checks name, location, capacity and image URL
func ValidateVenue(v *domain.Venue) error {
	verr := check(venueRules{
		VenueName: strings.TrimSpace(v.Name),
		Location:  strings.TrimSpace(v.Location),
		Capacity:  v.Capacity,
		ImageUrl:  v.ImageURL,
	})
	return verr.OrNil()
}

// ValidateEvent checks required fields and that the event does not end before it starts
func ValidateEvent(e *domain.Event) error {
	verr := check(eventRules{
		EventName: strings.TrimSpace(e.Name),
		VenueId:   strings.TrimSpace(e.VenueID),
	})
	if e.HasWindow() && e.StartDateTime.After(*e.EndDateTime) {
		verr.Add(domain.FieldEndDateTime, domain.MsgEndBeforeStart)
	}
	return verr.OrNil()
}

// ValidateCustomer checks name, email syntax and phone length
func ValidateCustomer(c *domain.Customer) error {
	verr := check(customerRules{
		FullName: strings.TrimSpace(c.FullName),
		Email:    strings.TrimSpace(c.Email),
		Phone:    c.Phone,
	})
	return verr.OrNil()
}

// ValidateBooking checks the booking references and date are present
func ValidateBooking(b *domain.Booking) error {
	verr := check(bookingRules{
		EventId:    strings.TrimSpace(b.EventID),
		CustomerId: strings.TrimSpace(b.CustomerID),
	})
	if b.BookingDate.Equal(time.Time{}) {
		verr.Add(domain.FieldBookingDate, requiredMessage(domain.FieldBookingDate))
	}
	return verr.OrNil()
}

func check(rules interface{}) *domain.ValidationError {
	verr := &domain.ValidationError{}

	err := Validate.Struct(rules)
	if err == nil {
		return verr
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Only reachable with a malformed rule struct
		panic(fmt.Sprintf("validation: %v", err))
	}

	for _, fe := range fieldErrs {
		verr.Add(fe.Field(), message(fe))
	}
	return verr
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return requiredMessage(fe.Field())
	case "max":
		return fmt.Sprintf("The field %s must be at most %s characters.", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s.", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("The %s field is not a valid e-mail address.", fe.Field())
	default:
		return fmt.Sprintf("The %s field is invalid.", fe.Field())
	}
}

func requiredMessage(field string) string {
	return fmt.Sprintf("The %s field is required.", field)
}
