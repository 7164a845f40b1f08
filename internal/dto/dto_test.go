package dto

import (
	"testing"
	"time"
)

func intPtr(i int) *int { return &i }

func TestUpdateVenueRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     UpdateVenueRequest
		want    bool
		wantMsg string
	}{
		{
			name: "no version",
			req:  UpdateVenueRequest{Name: "Hall"},
			want: true,
		},
		{
			name: "positive version",
			req:  UpdateVenueRequest{Name: "Hall", Version: intPtr(3)},
			want: true,
		},
		{
			name:    "zero version",
			req:     UpdateVenueRequest{Name: "Hall", Version: intPtr(0)},
			want:    false,
			wantMsg: "Version must be a positive number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, msg := tt.req.Validate()
			if got != tt.want {
				t.Errorf("Validate() got = %v, want %v", got, tt.want)
			}
			if msg != tt.wantMsg {
				t.Errorf("Validate() msg = %v, want %v", msg, tt.wantMsg)
			}
		})
	}
}

func TestCreateEventRequest_Validate(t *testing.T) {
	start := time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)
	zero := time.Time{}

	tests := []struct {
		name    string
		req     CreateEventRequest
		want    bool
		wantMsg string
	}{
		{
			name: "no window",
			req:  CreateEventRequest{Name: "Gala"},
			want: true,
		},
		{
			name: "full window",
			req:  CreateEventRequest{Name: "Gala", StartDateTime: &start, EndDateTime: &end},
			want: true,
		},
		{
			// ordering is reported as a field error by the service, not here
			name: "end before start",
			req:  CreateEventRequest{Name: "Gala", StartDateTime: &end, EndDateTime: &start},
			want: true,
		},
		{
			name:    "zero start",
			req:     CreateEventRequest{Name: "Gala", StartDateTime: &zero},
			want:    false,
			wantMsg: "Start date time is not a valid time",
		},
		{
			name:    "zero end",
			req:     CreateEventRequest{Name: "Gala", EndDateTime: &zero},
			want:    false,
			wantMsg: "End date time is not a valid time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, msg := tt.req.Validate()
			if got != tt.want {
				t.Errorf("Validate() got = %v, want %v", got, tt.want)
			}
			if msg != tt.wantMsg {
				t.Errorf("Validate() msg = %v, want %v", msg, tt.wantMsg)
			}
		})
	}
}

func TestUpdateEventRequest_Validate(t *testing.T) {
	req := UpdateEventRequest{Name: "Gala", Version: intPtr(-1)}
	if ok, msg := req.Validate(); ok || msg != "Version must be a positive number" {
		t.Errorf("Validate() = %v, %q", ok, msg)
	}

	req.Version = intPtr(1)
	if ok, _ := req.Validate(); !ok {
		t.Error("expected valid request")
	}
}

func TestUpdateRequests_RejectNonPositiveVersion(t *testing.T) {
	customer := UpdateCustomerRequest{Version: intPtr(0)}
	if ok, _ := customer.Validate(); ok {
		t.Error("customer: expected invalid")
	}
	booking := UpdateBookingRequest{Version: intPtr(0)}
	if ok, _ := booking.Validate(); ok {
		t.Error("booking: expected invalid")
	}
}

func TestListFilters_SetDefaults(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{name: "zero values", limit: 0, offset: 0, wantLimit: 20, wantOffset: 0},
		{name: "negative limit", limit: -5, offset: 10, wantLimit: 20, wantOffset: 10},
		{name: "limit over max", limit: 101, offset: 0, wantLimit: 20, wantOffset: 0},
		{name: "limit at max", limit: 100, offset: 0, wantLimit: 100, wantOffset: 0},
		{name: "negative offset", limit: 10, offset: -1, wantLimit: 10, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			venues := VenueListFilter{Limit: tt.limit, Offset: tt.offset}
			venues.SetDefaults()
			events := EventListFilter{Limit: tt.limit, Offset: tt.offset}
			events.SetDefaults()
			customers := CustomerListFilter{Limit: tt.limit, Offset: tt.offset}
			customers.SetDefaults()
			bookings := BookingListFilter{Limit: tt.limit, Offset: tt.offset}
			bookings.SetDefaults()

			for name, got := range map[string][2]int{
				"venues":    {venues.Limit, venues.Offset},
				"events":    {events.Limit, events.Offset},
				"customers": {customers.Limit, customers.Offset},
				"bookings":  {bookings.Limit, bookings.Offset},
			} {
				if got[0] != tt.wantLimit || got[1] != tt.wantOffset {
					t.Errorf("%s: got limit=%d offset=%d, want limit=%d offset=%d",
						name, got[0], got[1], tt.wantLimit, tt.wantOffset)
				}
			}
		})
	}
}

func TestPage(t *testing.T) {
	if got := Page(20, 0); got != 1 {
		t.Errorf("Page(20, 0) = %d", got)
	}
	if got := Page(20, 40); got != 3 {
		t.Errorf("Page(20, 40) = %d", got)
	}
	if got := Page(0, 40); got != 1 {
		t.Errorf("Page(0, 40) = %d", got)
	}
}
