package service

import (
	"context"
	"strings"
	"time"

	"github.com/sabrinafayremeyer/EventEase/internal/domain"
	"github.com/sabrinafayremeyer/EventEase/internal/repository"
)

// fakeTx runs fn directly; it only counts units of work
type fakeTx struct {
	calls int
}

func (f *fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

// The mocks hand out copies so callers mutating a loaded entity do not
// change what is stored, matching a real database.

// MockVenueRepository is a mock implementation of VenueRepository
type MockVenueRepository struct {
	venues    map[string]*domain.Venue
	createErr error
	deleteErr error
	// concurrentWrite runs just before Update compares versions
	concurrentWrite func(m *MockVenueRepository, id string)
	lastFilter      *repository.VenueFilter
	lastLimit       int
	lastOffset      int
	locked          []string
}

func NewMockVenueRepository() *MockVenueRepository {
	return &MockVenueRepository{venues: make(map[string]*domain.Venue)}
}

func (m *MockVenueRepository) Create(ctx context.Context, venue *domain.Venue) error {
	if m.createErr != nil {
		return m.createErr
	}
	venue.Version = 1
	v := *venue
	m.venues[venue.ID] = &v
	return nil
}

func (m *MockVenueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	venue, ok := m.venues[id]
	if !ok {
		return nil, nil
	}
	v := *venue
	return &v, nil
}

func (m *MockVenueRepository) Update(ctx context.Context, venue *domain.Venue) error {
	if m.concurrentWrite != nil {
		m.concurrentWrite(m, venue.ID)
	}
	stored, ok := m.venues[venue.ID]
	if !ok || stored.Version != venue.Version {
		return repository.ErrStaleVersion
	}
	venue.Version++
	v := *venue
	m.venues[venue.ID] = &v
	return nil
}

func (m *MockVenueRepository) LockForEventWrite(ctx context.Context, id string) (bool, error) {
	m.locked = append(m.locked, id)
	_, ok := m.venues[id]
	return ok, nil
}

func (m *MockVenueRepository) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.venues, id)
	return nil
}

func (m *MockVenueRepository) List(ctx context.Context, filter *repository.VenueFilter, limit, offset int) ([]*domain.Venue, int, error) {
	m.lastFilter, m.lastLimit, m.lastOffset = filter, limit, offset
	var venues []*domain.Venue
	for _, v := range m.venues {
		if filter.IsActive != nil && v.IsActive != *filter.IsActive {
			continue
		}
		if filter.Search != "" && !strings.Contains(v.Name, filter.Search) {
			continue
		}
		venues = append(venues, v)
	}
	return venues, len(venues), nil
}

// MockEventRepository is a mock implementation of EventRepository
type MockEventRepository struct {
	events    map[string]*domain.Event
	createErr error
	deleteErr error
}

func NewMockEventRepository() *MockEventRepository {
	return &MockEventRepository{events: make(map[string]*domain.Event)}
}

func (m *MockEventRepository) Create(ctx context.Context, event *domain.Event) error {
	if m.createErr != nil {
		return m.createErr
	}
	event.Version = 1
	e := *event
	m.events[event.ID] = &e
	return nil
}

func (m *MockEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	event, ok := m.events[id]
	if !ok {
		return nil, nil
	}
	e := *event
	return &e, nil
}

func (m *MockEventRepository) Update(ctx context.Context, event *domain.Event) error {
	stored, ok := m.events[event.ID]
	if !ok || stored.Version != event.Version {
		return repository.ErrStaleVersion
	}
	event.Version++
	e := *event
	m.events[event.ID] = &e
	return nil
}

func (m *MockEventRepository) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.events, id)
	return nil
}

func (m *MockEventRepository) List(ctx context.Context, filter *repository.EventFilter, limit, offset int) ([]*domain.Event, int, error) {
	var events []*domain.Event
	for _, e := range m.events {
		if filter.VenueID != "" && e.VenueID != filter.VenueID {
			continue
		}
		events = append(events, e)
	}
	return events, len(events), nil
}

func (m *MockEventRepository) HasVenueOverlap(ctx context.Context, venueID string, start, end time.Time, excludeID string) (bool, error) {
	for _, e := range m.events {
		if e.ID == excludeID || e.VenueID != venueID || !e.HasWindow() {
			continue
		}
		if domain.Overlaps(start, end, *e.StartDateTime, *e.EndDateTime) {
			return true, nil
		}
	}
	return false, nil
}

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	customers map[string]*domain.Customer
	createErr error
}

func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{customers: make(map[string]*domain.Customer)}
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	if m.createErr != nil {
		return m.createErr
	}
	customer.Version = 1
	c := *customer
	m.customers[customer.ID] = &c
	return nil
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	customer, ok := m.customers[id]
	if !ok {
		return nil, nil
	}
	c := *customer
	return &c, nil
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	stored, ok := m.customers[customer.ID]
	if !ok || stored.Version != customer.Version {
		return repository.ErrStaleVersion
	}
	customer.Version++
	c := *customer
	m.customers[customer.ID] = &c
	return nil
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id string) error {
	delete(m.customers, id)
	return nil
}

func (m *MockCustomerRepository) List(ctx context.Context, filter *repository.CustomerFilter, limit, offset int) ([]*domain.Customer, int, error) {
	var customers []*domain.Customer
	for _, c := range m.customers {
		customers = append(customers, c)
	}
	return customers, len(customers), nil
}

func (m *MockCustomerRepository) EmailExists(ctx context.Context, email, excludeID string) (bool, error) {
	for _, c := range m.customers {
		if c.ID != excludeID && strings.EqualFold(c.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

// MockBookingRepository is a mock implementation of BookingRepository
type MockBookingRepository struct {
	bookings  map[string]*domain.Booking
	createErr error
	// concurrentWrite runs just before Update compares versions
	concurrentWrite func(m *MockBookingRepository, id string)
}

func NewMockBookingRepository() *MockBookingRepository {
	return &MockBookingRepository{bookings: make(map[string]*domain.Booking)}
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	if m.createErr != nil {
		return m.createErr
	}
	booking.Version = 1
	b := *booking
	m.bookings[booking.ID] = &b
	return nil
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	booking, ok := m.bookings[id]
	if !ok {
		return nil, nil
	}
	b := *booking
	return &b, nil
}

func (m *MockBookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	if m.concurrentWrite != nil {
		m.concurrentWrite(m, booking.ID)
	}
	stored, ok := m.bookings[booking.ID]
	if !ok || stored.Version != booking.Version {
		return repository.ErrStaleVersion
	}
	booking.Version++
	b := *booking
	m.bookings[booking.ID] = &b
	return nil
}

func (m *MockBookingRepository) Delete(ctx context.Context, id string) error {
	delete(m.bookings, id)
	return nil
}

func (m *MockBookingRepository) List(ctx context.Context, filter *repository.BookingFilter, limit, offset int) ([]*domain.Booking, int, error) {
	var bookings []*domain.Booking
	for _, b := range m.bookings {
		if filter.EventID != "" && b.EventID != filter.EventID {
			continue
		}
		if filter.CustomerID != "" && b.CustomerID != filter.CustomerID {
			continue
		}
		if filter.VenueID != "" && b.VenueID != filter.VenueID {
			continue
		}
		bookings = append(bookings, b)
	}
	return bookings, len(bookings), nil
}

func (m *MockBookingRepository) ExistsForEventCustomer(ctx context.Context, eventID, customerID, excludeID string) (bool, error) {
	for _, b := range m.bookings {
		if b.ID != excludeID && b.EventID == eventID && b.CustomerID == customerID {
			return true, nil
		}
	}
	return false, nil
}
