package domain

// Venue is a physical location that hosts events
type Venue struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Capacity int     `json:"capacity"`
	ImageURL *string `json:"image_url,omitempty"`
	IsActive bool    `json:"is_active"`
	Version  int     `json:"version"`
	Timestamps
}
