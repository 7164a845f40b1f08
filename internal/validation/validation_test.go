package validation

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sabrinafayremeyer/EventEase/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	fields := make([]string, 0, len(verr.Errors))
	for _, fe := range verr.Errors {
		fields = append(fields, fe.Field)
	}
	return fields
}

func validVenue() *domain.Venue {
	return &domain.Venue{Name: "Main Hall", Location: "Cape Town", Capacity: 100, IsActive: true}
}

func TestValidateVenue(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(v *domain.Venue)
		wantFields []string
	}{
		{name: "valid", mutate: func(v *domain.Venue) {}},
		{name: "zero capacity", mutate: func(v *domain.Venue) { v.Capacity = 0 }, wantFields: []string{"Capacity"}},
		{name: "negative capacity", mutate: func(v *domain.Venue) { v.Capacity = -5 }, wantFields: []string{"Capacity"}},
		{name: "blank name", mutate: func(v *domain.Venue) { v.Name = "   " }, wantFields: []string{"VenueName"}},
		{name: "long location", mutate: func(v *domain.Venue) { v.Location = strings.Repeat("a", 201) }, wantFields: []string{"Location"}},
		{name: "long image url", mutate: func(v *domain.Venue) { v.ImageURL = strPtr(strings.Repeat("a", 501)) }, wantFields: []string{"ImageUrl"}},
		{name: "image url at limit", mutate: func(v *domain.Venue) { v.ImageURL = strPtr(strings.Repeat("a", 500)) }},
		{name: "several fields in order", mutate: func(v *domain.Venue) {
			v.Name = ""
			v.Location = ""
			v.Capacity = 0
		}, wantFields: []string{"VenueName", "Location", "Capacity"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validVenue()
			tt.mutate(v)
			err := ValidateVenue(v)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantFields, fieldsOf(t, err))
		})
	}
}

func TestValidateVenue_CapacityMessage(t *testing.T) {
	v := validVenue()
	v.Capacity = 0

	var verr *domain.ValidationError
	require.ErrorAs(t, ValidateVenue(v), &verr)
	assert.Equal(t, "Capacity must be greater than 0.", verr.Errors[0].Message)
}

func TestValidateEvent(t *testing.T) {
	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		event      domain.Event
		wantFields []string
	}{
		{
			name:  "no window",
			event: domain.Event{Name: "Gala", VenueID: "venue-1"},
		},
		{
			name:  "start equals end",
			event: domain.Event{Name: "Gala", VenueID: "venue-1", StartDateTime: timePtr(start), EndDateTime: timePtr(start)},
		},
		{
			name:       "end before start",
			event:      domain.Event{Name: "Gala", VenueID: "venue-1", StartDateTime: timePtr(start), EndDateTime: timePtr(start.Add(-time.Minute))},
			wantFields: []string{"EndDateTime"},
		},
		{
			name:  "only start",
			event: domain.Event{Name: "Gala", VenueID: "venue-1", StartDateTime: timePtr(start)},
		},
		{
			name:  "long image url",
			event: domain.Event{Name: "Launch", VenueID: "venue-1", ImageURL: strPtr("https://cdn.example.com/" + strings.Repeat("a", 600))},
		},
		{
			name:       "missing name and venue",
			event:      domain.Event{},
			wantFields: []string{"EventName", "VenueId"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEvent(&tt.event)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantFields, fieldsOf(t, err))
		})
	}
}

func TestValidateEvent_EndBeforeStartMessage(t *testing.T) {
	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	e := &domain.Event{Name: "Gala", VenueID: "venue-1", StartDateTime: timePtr(start), EndDateTime: timePtr(start.Add(-time.Hour))}

	var verr *domain.ValidationError
	require.ErrorAs(t, ValidateEvent(e), &verr)
	assert.Equal(t, domain.MsgEndBeforeStart, verr.Errors[0].Message)
}

func TestValidateCustomer(t *testing.T) {
	tests := []struct {
		name       string
		customer   domain.Customer
		wantFields []string
	}{
		{name: "valid", customer: domain.Customer{FullName: "Ada Lovelace", Email: "ada@example.com"}},
		{name: "padded email", customer: domain.Customer{FullName: "Ada", Email: "  ada@example.com "}},
		{name: "bad email", customer: domain.Customer{FullName: "Ada", Email: "not-an-email"}, wantFields: []string{"Email"}},
		{name: "missing email", customer: domain.Customer{FullName: "Ada"}, wantFields: []string{"Email"}},
		{name: "long phone", customer: domain.Customer{FullName: "Ada", Email: "ada@example.com", Phone: strPtr(strings.Repeat("1", 51))}, wantFields: []string{"Phone"}},
		{name: "missing name", customer: domain.Customer{Email: "ada@example.com"}, wantFields: []string{"FullName"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCustomer(&tt.customer)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantFields, fieldsOf(t, err))
		})
	}
}

func TestValidateBooking(t *testing.T) {
	err := ValidateBooking(&domain.Booking{})
	assert.Equal(t, []string{"EventId", "CustomerId", "BookingDate"}, fieldsOf(t, err))

	err = ValidateBooking(&domain.Booking{EventID: "e", CustomerID: "c", BookingDate: time.Now()})
	assert.NoError(t, err)
}
