package dto

import "time"

// CreateBookingRequest represents the request to book a customer onto an event.
// The venue is taken from the event.
type CreateBookingRequest struct {
	EventID     string     `json:"event_id"`
	CustomerID  string     `json:"customer_id"`
	BookingDate *time.Time `json:"booking_date"`
}

// UpdateBookingRequest represents the request to update a booking
type UpdateBookingRequest struct {
	EventID     string     `json:"event_id"`
	CustomerID  string     `json:"customer_id"`
	BookingDate *time.Time `json:"booking_date"`
	Version     *int       `json:"version" binding:"omitempty,min=1"`
}

// Validate validates the UpdateBookingRequest
func (r *UpdateBookingRequest) Validate() (bool, string) {
	if r.Version != nil && *r.Version < 1 {
		return false, "Version must be a positive number"
	}
	return true, ""
}

// BookingResponse represents the response for a booking
type BookingResponse struct {
	ID              string  `json:"id"`
	EventID         string  `json:"event_id"`
	VenueID         string  `json:"venue_id"`
	CustomerID      string  `json:"customer_id"`
	BookingDate     string  `json:"booking_date"`
	CreatedByUserID *string `json:"created_by_user_id,omitempty"`
	UpdatedByUserID *string `json:"updated_by_user_id,omitempty"`
	Version         int     `json:"version"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       *string `json:"updated_at,omitempty"`
}

// BookingListFilter represents filters for listing bookings
type BookingListFilter struct {
	EventID    string `form:"event_id" binding:"omitempty,uuid"`
	CustomerID string `form:"customer_id" binding:"omitempty,uuid"`
	VenueID    string `form:"venue_id" binding:"omitempty,uuid"`
	Limit      int    `form:"limit"`
	Offset     int    `form:"offset"`
}

// SetDefaults sets default values for pagination
func (f *BookingListFilter) SetDefaults() {
	f.Limit, f.Offset = normalizePage(f.Limit, f.Offset)
}
