package dto

import "time"

// CreateEventRequest represents the request to create a new event
type CreateEventRequest struct {
	Name          string     `json:"event_name"`
	Description   *string    `json:"description"`
	StartDateTime *time.Time `json:"start_date_time"`
	EndDateTime   *time.Time `json:"end_date_time"`
	VenueID       string     `json:"venue_id"`
	ImageURL      *string    `json:"image_url"`
	IsActive      *bool      `json:"is_active"` // defaults to true
}

// Validate validates the CreateEventRequest
func (r *CreateEventRequest) Validate() (bool, string) {
	return validWindow(r.StartDateTime, r.EndDateTime)
}

// UpdateEventRequest represents the request to update an event.
// Every field is overwritten; IsActive is left alone when omitted.
type UpdateEventRequest struct {
	Name          string     `json:"event_name"`
	Description   *string    `json:"description"`
	StartDateTime *time.Time `json:"start_date_time"`
	EndDateTime   *time.Time `json:"end_date_time"`
	VenueID       string     `json:"venue_id"`
	ImageURL      *string    `json:"image_url"`
	IsActive      *bool      `json:"is_active"`
	Version       *int       `json:"version" binding:"omitempty,min=1"`
}

// Validate validates the UpdateEventRequest
func (r *UpdateEventRequest) Validate() (bool, string) {
	if r.Version != nil && *r.Version < 1 {
		return false, "Version must be a positive number"
	}
	return validWindow(r.StartDateTime, r.EndDateTime)
}

// EventResponse represents the response for an event
type EventResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"event_name"`
	Description   *string `json:"description,omitempty"`
	StartDateTime *string `json:"start_date_time,omitempty"`
	EndDateTime   *string `json:"end_date_time,omitempty"`
	VenueID       string  `json:"venue_id"`
	ImageURL      *string `json:"image_url,omitempty"`
	IsActive      bool    `json:"is_active"`
	Version       int     `json:"version"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     *string `json:"updated_at,omitempty"`
}

// EventListFilter represents filters for listing events
type EventListFilter struct {
	VenueID  string `form:"venue_id" binding:"omitempty,uuid"`
	IsActive *bool  `form:"is_active"`
	Search   string `form:"search"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

// SetDefaults sets default values for pagination
func (f *EventListFilter) SetDefaults() {
	f.Limit, f.Offset = normalizePage(f.Limit, f.Offset)
}

// validWindow rejects zero times. Start/end ordering is a field rule and is
// reported by the service.
func validWindow(start, end *time.Time) (bool, string) {
	if start != nil && start.IsZero() {
		return false, "Start date time is not a valid time"
	}
	if end != nil && end.IsZero() {
		return false, "End date time is not a valid time"
	}
	return true, ""
}
