package domain

import "time"

// Booking links one customer to one event. VenueID mirrors the event's
// venue as of the last write.
type Booking struct {
	ID              string    `json:"id"`
	EventID         string    `json:"event_id"`
	VenueID         string    `json:"venue_id"`
	CustomerID      string    `json:"customer_id"`
	BookingDate     time.Time `json:"booking_date"`
	CreatedByUserID *string   `json:"created_by_user_id,omitempty"`
	UpdatedByUserID *string   `json:"updated_by_user_id,omitempty"`
	Version         int       `json:"version"`
	Timestamps
}
