package dto

// CreateVenueRequest represents the request to create a new venue
type CreateVenueRequest struct {
	Name     string  `json:"venue_name"`
	Location string  `json:"location"`
	Capacity int     `json:"capacity"`
	ImageURL *string `json:"image_url"`
	IsActive *bool   `json:"is_active"` // defaults to true
}

// UpdateVenueRequest represents the request to update a venue.
// Every field is overwritten; IsActive is left alone when omitted.
type UpdateVenueRequest struct {
	Name     string  `json:"venue_name"`
	Location string  `json:"location"`
	Capacity int     `json:"capacity"`
	ImageURL *string `json:"image_url"`
	IsActive *bool   `json:"is_active"`
	Version  *int    `json:"version" binding:"omitempty,min=1"`
}

// Validate validates the UpdateVenueRequest
func (r *UpdateVenueRequest) Validate() (bool, string) {
	if r.Version != nil && *r.Version < 1 {
		return false, "Version must be a positive number"
	}
	return true, ""
}

// VenueResponse represents the response for a venue
type VenueResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"venue_name"`
	Location  string  `json:"location"`
	Capacity  int     `json:"capacity"`
	ImageURL  *string `json:"image_url,omitempty"`
	IsActive  bool    `json:"is_active"`
	Version   int     `json:"version"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt *string `json:"updated_at,omitempty"`
}

// VenueListFilter represents filters for listing venues
type VenueListFilter struct {
	Search   string `form:"search"`
	IsActive *bool  `form:"is_active"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

// SetDefaults sets default values for pagination
func (f *VenueListFilter) SetDefaults() {
	f.Limit, f.Offset = normalizePage(f.Limit, f.Offset)
}
