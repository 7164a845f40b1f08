package handler

import (
	"time"

	"github.com/sabrinafayremeyer/EventEase/internal/domain"
	"github.com/sabrinafayremeyer/EventEase/internal/dto"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func toVenueResponse(v *domain.Venue) *dto.VenueResponse {
	return &dto.VenueResponse{
		ID:        v.ID,
		Name:      v.Name,
		Location:  v.Location,
		Capacity:  v.Capacity,
		ImageURL:  v.ImageURL,
		IsActive:  v.IsActive,
		Version:   v.Version,
		CreatedAt: formatTime(v.CreatedAt),
		UpdatedAt: formatTimePtr(v.UpdatedAt),
	}
}

func toEventResponse(e *domain.Event) *dto.EventResponse {
	return &dto.EventResponse{
		ID:            e.ID,
		Name:          e.Name,
		Description:   e.Description,
		StartDateTime: formatTimePtr(e.StartDateTime),
		EndDateTime:   formatTimePtr(e.EndDateTime),
		VenueID:       e.VenueID,
		ImageURL:      e.ImageURL,
		IsActive:      e.IsActive,
		Version:       e.Version,
		CreatedAt:     formatTime(e.CreatedAt),
		UpdatedAt:     formatTimePtr(e.UpdatedAt),
	}
}

func toCustomerResponse(c *domain.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		FullName:  c.FullName,
		Email:     c.Email,
		Phone:     c.Phone,
		Version:   c.Version,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTimePtr(c.UpdatedAt),
	}
}

func toBookingResponse(b *domain.Booking) *dto.BookingResponse {
	return &dto.BookingResponse{
		ID:              b.ID,
		EventID:         b.EventID,
		VenueID:         b.VenueID,
		CustomerID:      b.CustomerID,
		BookingDate:     formatTime(b.BookingDate),
		CreatedByUserID: b.CreatedByUserID,
		UpdatedByUserID: b.UpdatedByUserID,
		Version:         b.Version,
		CreatedAt:       formatTime(b.CreatedAt),
		UpdatedAt:       formatTimePtr(b.UpdatedAt),
	}
}
