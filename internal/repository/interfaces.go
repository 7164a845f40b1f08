package repository

import (
	"context"
	"time"

	"github.com/sabrinafayremeyer/EventEase/internal/domain"
)

// Every repository picks up the transaction carried by ctx, if any.
// GetByID returns (nil, nil) when the row does not exist.
// Update matches on id and the entity's current Version, bumps Version on
// success and returns ErrStaleVersion when nothing matched.
// Delete is a no-op for a missing id.

// VenueRepository defines the interface for venue data access
type VenueRepository interface {
	// Create inserts a new venue
	Create(ctx context.Context, venue *domain.Venue) error
	// GetByID retrieves a venue by ID
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
	// Update overwrites a venue's mutable fields
	Update(ctx context.Context, venue *domain.Venue) error
	// Delete removes a venue by ID
	Delete(ctx context.Context, id string) error
	// List lists venues with filters and pagination
	List(ctx context.Context, filter *VenueFilter, limit, offset int) ([]*domain.Venue, int, error)
	// LockForEventWrite row-locks the venue until the surrounding transaction
	// ends so event writes at one venue run one at a time. It reports false
	// when the venue does not exist.
	LockForEventWrite(ctx context.Context, id string) (bool, error)
}

// VenueFilter contains filter options for listing venues
type VenueFilter struct {
	Search   string
	IsActive *bool
}

// EventRepository defines the interface for event data access
type EventRepository interface {
	// Create inserts a new event
	Create(ctx context.Context, event *domain.Event) error
	// GetByID retrieves an event by ID
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	// Update overwrites an event's mutable fields
	Update(ctx context.Context, event *domain.Event) error
	// Delete removes an event by ID
	Delete(ctx context.Context, id string) error
	// List lists events with filters and pagination
	List(ctx context.Context, filter *EventFilter, limit, offset int) ([]*domain.Event, int, error)
	// HasVenueOverlap reports whether another event at the venue overlaps [start, end)
	HasVenueOverlap(ctx context.Context, venueID string, start, end time.Time, excludeID string) (bool, error)
}

// EventFilter contains filter options for listing events
type EventFilter struct {
	VenueID  string
	IsActive *bool
	Search   string
}

// CustomerRepository defines the interface for customer data access
type CustomerRepository interface {
	// Create inserts a new customer
	Create(ctx context.Context, customer *domain.Customer) error
	// GetByID retrieves a customer by ID
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	// Update overwrites a customer's mutable fields
	Update(ctx context.Context, customer *domain.Customer) error
	// Delete removes a customer by ID
	Delete(ctx context.Context, id string) error
	// List lists customers with filters and pagination
	List(ctx context.Context, filter *CustomerFilter, limit, offset int) ([]*domain.Customer, int, error)
	// EmailExists checks whether another customer already uses the email
	EmailExists(ctx context.Context, email, excludeID string) (bool, error)
}

// CustomerFilter contains filter options for listing customers
type CustomerFilter struct {
	Search string
}

// BookingRepository defines the interface for booking data access
type BookingRepository interface {
	// Create inserts a new booking
	Create(ctx context.Context, booking *domain.Booking) error
	// GetByID retrieves a booking by ID
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// Update overwrites a booking's mutable fields
	Update(ctx context.Context, booking *domain.Booking) error
	// Delete removes a booking by ID
	Delete(ctx context.Context, id string) error
	// List lists bookings with filters and pagination
	List(ctx context.Context, filter *BookingFilter, limit, offset int) ([]*domain.Booking, int, error)
	// ExistsForEventCustomer checks for another booking of the same event by the same customer
	ExistsForEventCustomer(ctx context.Context, eventID, customerID, excludeID string) (bool, error)
}

// BookingFilter contains filter options for listing bookings
type BookingFilter struct {
	EventID    string
	CustomerID string
	VenueID    string
}
