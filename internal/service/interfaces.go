package service

import (
	"context"

	"github.com/sabrinafayremeyer/EventEase/internal/domain"
	"github.com/sabrinafayremeyer/EventEase/internal/dto"
)

// Every mutation runs in one transaction: existence checks, overlap and
// duplicate checks, audit stamping and the write commit or roll back together.

// VenueService defines the interface for venue business logic
type VenueService interface {
	// ListVenues lists venues with filters and pagination
	ListVenues(ctx context.Context, filter *dto.VenueListFilter) ([]*domain.Venue, int, error)
	// GetVenue retrieves a venue by ID
	GetVenue(ctx context.Context, id string) (*domain.Venue, error)
	// CreateVenue creates a new venue
	CreateVenue(ctx context.Context, req *dto.CreateVenueRequest) (*domain.Venue, error)
	// UpdateVenue overwrites a venue
	UpdateVenue(ctx context.Context, id string, req *dto.UpdateVenueRequest) (*domain.Venue, error)
	// DeleteVenue deletes a venue; deleting a missing venue succeeds
	DeleteVenue(ctx context.Context, id string) error
}

// EventService defines the interface for event business logic
type EventService interface {
	// ListEvents lists events with filters and pagination
	ListEvents(ctx context.Context, filter *dto.EventListFilter) ([]*domain.Event, int, error)
	// GetEvent retrieves an event by ID
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
	// CreateEvent creates an event at an existing venue without double booking it
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*domain.Event, error)
	// UpdateEvent overwrites an event under the same rules as CreateEvent
	UpdateEvent(ctx context.Context, id string, req *dto.UpdateEventRequest) (*domain.Event, error)
	// DeleteEvent deletes an event; deleting a missing event succeeds
	DeleteEvent(ctx context.Context, id string) error
}

// CustomerService defines the interface for customer business logic
type CustomerService interface {
	ListCustomers(ctx context.Context, filter *dto.CustomerListFilter) ([]*domain.Customer, int, error)
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
	CreateCustomer(ctx context.Context, req *dto.CreateCustomerRequest) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, id string, req *dto.UpdateCustomerRequest) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

// BookingService defines the interface for booking business logic
type BookingService interface {
	// ListBookings lists bookings with filters and pagination
	ListBookings(ctx context.Context, filter *dto.BookingListFilter) ([]*domain.Booking, int, error)
	// GetBooking retrieves a booking by ID
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	// CreateBooking books a customer onto an event, copying the event's venue
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*domain.Booking, error)
	// UpdateBooking re-resolves the event and overwrites the booking
	UpdateBooking(ctx context.Context, id string, req *dto.UpdateBookingRequest) (*domain.Booking, error)
	// DeleteBooking deletes a booking; deleting a missing booking succeeds
	DeleteBooking(ctx context.Context, id string) error
}
