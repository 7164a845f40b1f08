package domain

import "time"

// Event is a scheduled occurrence at a venue
type Event struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   *string    `json:"description,omitempty"`
	StartDateTime *time.Time `json:"start_date_time,omitempty"`
	EndDateTime   *time.Time `json:"end_date_time,omitempty"`
	VenueID       string     `json:"venue_id"`
	ImageURL      *string    `json:"image_url,omitempty"`
	IsActive      bool       `json:"is_active"`
	Version       int        `json:"version"`
	Timestamps
}

// HasWindow reports whether both start and end are known
func (e *Event) HasWindow() bool {
	return e.StartDateTime != nil && e.EndDateTime != nil
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) share an instant.
// Intervals that only touch do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
