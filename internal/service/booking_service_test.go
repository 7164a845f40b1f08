package service

import (
	"context"
	"testing"
	"time"

	"github.com/sabrinafayremeyer/EventEase/internal/audit"
	"github.com/sabrinafayremeyer/EventEase/internal/domain"
	"github.com/sabrinafayremeyer/EventEase/internal/dto"
	"github.com/sabrinafayremeyer/EventEase/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingFixture struct {
	svc       BookingService
	bookings  *MockBookingRepository
	events    *MockEventRepository
	customers *MockCustomerRepository
	clock     *clock.Fake
}

func setupBookingService() *bookingFixture {
	f := &bookingFixture{
		bookings:  NewMockBookingRepository(),
		events:    NewMockEventRepository(),
		customers: NewMockCustomerRepository(),
		clock:     clock.NewFake(testNow),
	}
	f.events.events["e1"] = &domain.Event{ID: "e1", Name: "Launch", VenueID: "venue-1", Version: 1}
	f.events.events["e2"] = &domain.Event{ID: "e2", Name: "Dinner", VenueID: "venue-2", Version: 1}
	f.customers.customers["c1"] = &domain.Customer{ID: "c1", FullName: "Ada", Email: "ada@example.com", Version: 1}
	f.customers.customers["c2"] = &domain.Customer{ID: "c2", FullName: "Grace", Email: "grace@example.com", Version: 1}
	f.svc = NewBookingService(f.bookings, f.events, f.customers, &fakeTx{}, audit.NewStamper(f.clock), nil)
	return f
}

func bookingDate() *time.Time {
	d := time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestBookingService_CreateBooking(t *testing.T) {
	f := setupBookingService()
	ctx := audit.WithActor(context.Background(), "user-7")

	booking, err := f.svc.CreateBooking(ctx, &dto.CreateBookingRequest{
		EventID:     "e1",
		CustomerID:  "c1",
		BookingDate: bookingDate(),
	})
	require.NoError(t, err)

	assert.Equal(t, "venue-1", booking.VenueID)
	require.NotNil(t, booking.CreatedByUserID)
	assert.Equal(t, "user-7", *booking.CreatedByUserID)
	assert.Nil(t, booking.UpdatedByUserID)
	assert.Equal(t, testNow, booking.CreatedAt)
	assert.Nil(t, booking.UpdatedAt)
	assert.Equal(t, 1, booking.Version)
	assert.Contains(t, f.bookings.bookings, booking.ID)
}

func TestBookingService_CreateBooking_Anonymous(t *testing.T) {
	f := setupBookingService()

	booking, err := f.svc.CreateBooking(context.Background(), &dto.CreateBookingRequest{
		EventID: "e1", CustomerID: "c1", BookingDate: bookingDate(),
	})
	require.NoError(t, err)
	assert.Nil(t, booking.CreatedByUserID)
}

func TestBookingService_CreateBooking_Rules(t *testing.T) {
	tests := []struct {
		name       string
		req        dto.CreateBookingRequest
		wantFields []string
		wantDup    bool
	}{
		{
			name:       "missing everything",
			req:        dto.CreateBookingRequest{},
			wantFields: []string{domain.FieldEventID, domain.FieldCustomerID, domain.FieldBookingDate},
		},
		{
			name:       "unknown event",
			req:        dto.CreateBookingRequest{EventID: "e9", CustomerID: "c1", BookingDate: bookingDate()},
			wantFields: []string{domain.FieldEventID},
		},
		{
			name:       "unknown customer",
			req:        dto.CreateBookingRequest{EventID: "e1", CustomerID: "c9", BookingDate: bookingDate()},
			wantFields: []string{domain.FieldCustomerID},
		},
		{
			name:       "unknown event and customer",
			req:        dto.CreateBookingRequest{EventID: "e9", CustomerID: "c9", BookingDate: bookingDate()},
			wantFields: []string{domain.FieldEventID, domain.FieldCustomerID},
		},
		{
			name:       "customer already booked on the event",
			req:        dto.CreateBookingRequest{EventID: "e1", CustomerID: "c2", BookingDate: bookingDate()},
			wantFields: []string{domain.FieldCustomerID},
			wantDup:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupBookingService()
			f.bookings.bookings["b1"] = &domain.Booking{ID: "b1", EventID: "e1", VenueID: "venue-1", CustomerID: "c2", Version: 1}

			_, err := f.svc.CreateBooking(context.Background(), &tt.req)
			assert.Equal(t, tt.wantFields, fieldsOf(t, err))
			assert.Equal(t, tt.wantDup, domain.IsDuplicate(err))
			assert.Len(t, f.bookings.bookings, 1)
		})
	}
}

func TestBookingService_CreateBooking_WriteTimeFailures(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{
			name: "unique violation",
			err: &domain.ValidationError{
				Errors: []domain.FieldError{{Field: domain.FieldCustomerID, Message: domain.MsgDuplicateBooking}},
				Err:    domain.ErrDuplicateBooking,
			},
			check: domain.IsDuplicate,
		},
		{
			name:  "event removed before the insert",
			err:   &domain.ConcurrencyConflictError{Resource: domain.ResourceBooking},
			check: domain.IsConcurrencyConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupBookingService()
			f.bookings.createErr = tt.err

			_, err := f.svc.CreateBooking(context.Background(), &dto.CreateBookingRequest{
				EventID: "e1", CustomerID: "c1", BookingDate: bookingDate(),
			})
			assert.True(t, tt.check(err), "unexpected error %v", err)
		})
	}
}

func TestBookingService_UpdateBooking(t *testing.T) {
	f := setupBookingService()
	creator := "user-1"
	f.bookings.bookings["b1"] = &domain.Booking{
		ID: "b1", EventID: "e1", VenueID: "venue-1", CustomerID: "c1",
		BookingDate: *bookingDate(), CreatedByUserID: &creator, Version: 1,
		Timestamps: domain.Timestamps{CreatedAt: testNow},
	}
	f.clock.Advance(2 * time.Hour)

	ctx := audit.WithActor(context.Background(), "user-2")
	updated, err := f.svc.UpdateBooking(ctx, "b1", &dto.UpdateBookingRequest{
		EventID: "e2", CustomerID: "c1", BookingDate: bookingDate(), Version: intPtr(1),
	})
	require.NoError(t, err)

	assert.Equal(t, "venue-2", updated.VenueID, "venue follows the new event")
	assert.Equal(t, "user-1", *updated.CreatedByUserID)
	require.NotNil(t, updated.UpdatedByUserID)
	assert.Equal(t, "user-2", *updated.UpdatedByUserID)
	assert.Equal(t, testNow, updated.CreatedAt)
	require.NotNil(t, updated.UpdatedAt)
	assert.Equal(t, testNow.Add(2*time.Hour), *updated.UpdatedAt)
	assert.Equal(t, 2, updated.Version)
}

func TestBookingService_UpdateBooking_KeepsOwnPair(t *testing.T) {
	f := setupBookingService()
	f.bookings.bookings["b1"] = &domain.Booking{ID: "b1", EventID: "e1", VenueID: "venue-1", CustomerID: "c1", BookingDate: *bookingDate(), Version: 1}

	_, err := f.svc.UpdateBooking(context.Background(), "b1", &dto.UpdateBookingRequest{
		EventID: "e1", CustomerID: "c1", BookingDate: bookingDate(),
	})
	assert.NoError(t, err)
}

func TestBookingService_UpdateBooking_Errors(t *testing.T) {
	valid := dto.UpdateBookingRequest{EventID: "e1", CustomerID: "c1", BookingDate: bookingDate()}

	tests := []struct {
		name  string
		id    string
		req   dto.UpdateBookingRequest
		setup func(f *bookingFixture)
		check func(t *testing.T, err error)
	}{
		{
			name: "missing booking",
			id:   "b9",
			req:  valid,
			check: func(t *testing.T, err error) {
				assert.True(t, domain.IsNotFound(err))
			},
		},
		{
			name: "event no longer exists",
			id:   "b1",
			req:  dto.UpdateBookingRequest{EventID: "e9", CustomerID: "c1", BookingDate: bookingDate()},
			check: func(t *testing.T, err error) {
				assert.Equal(t, []string{domain.FieldEventID}, fieldsOf(t, err))
			},
		},
		{
			name: "moving onto a pair already booked",
			id:   "b1",
			req:  dto.UpdateBookingRequest{EventID: "e1", CustomerID: "c2", BookingDate: bookingDate()},
			check: func(t *testing.T, err error) {
				assert.True(t, domain.IsDuplicate(err))
			},
		},
		{
			name: "concurrent edit",
			id:   "b1",
			req:  valid,
			setup: func(f *bookingFixture) {
				f.bookings.concurrentWrite = func(m *MockBookingRepository, id string) { m.bookings[id].Version = 9 }
			},
			check: func(t *testing.T, err error) {
				assert.True(t, domain.IsConcurrencyConflict(err))
			},
		},
		{
			name: "concurrent delete",
			id:   "b1",
			req:  valid,
			setup: func(f *bookingFixture) {
				f.bookings.concurrentWrite = func(m *MockBookingRepository, id string) { delete(m.bookings, id) }
			},
			check: func(t *testing.T, err error) {
				assert.True(t, domain.IsNotFound(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupBookingService()
			f.bookings.bookings["b1"] = &domain.Booking{ID: "b1", EventID: "e1", VenueID: "venue-1", CustomerID: "c1", BookingDate: *bookingDate(), Version: 1}
			f.bookings.bookings["b2"] = &domain.Booking{ID: "b2", EventID: "e1", VenueID: "venue-1", CustomerID: "c2", BookingDate: *bookingDate(), Version: 1}
			if tt.setup != nil {
				tt.setup(f)
			}

			_, err := f.svc.UpdateBooking(context.Background(), tt.id, &tt.req)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestBookingService_ListBookings(t *testing.T) {
	f := setupBookingService()
	f.bookings.bookings["b1"] = &domain.Booking{ID: "b1", EventID: "e1", VenueID: "venue-1", CustomerID: "c1"}
	f.bookings.bookings["b2"] = &domain.Booking{ID: "b2", EventID: "e2", VenueID: "venue-2", CustomerID: "c1"}

	bookings, total, err := f.svc.ListBookings(context.Background(), &dto.BookingListFilter{VenueID: "venue-2"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "b2", bookings[0].ID)
}

func TestBookingService_DeleteBooking(t *testing.T) {
	f := setupBookingService()
	f.bookings.bookings["b1"] = &domain.Booking{ID: "b1"}

	require.NoError(t, f.svc.DeleteBooking(context.Background(), "b1"))
	require.NoError(t, f.svc.DeleteBooking(context.Background(), "b1"))
	assert.Empty(t, f.bookings.bookings)
}
