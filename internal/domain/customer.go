package domain

// Customer is a person who may book events
type Customer struct {
	ID       string  `json:"id"`
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
	Version  int     `json:"version"`
	Timestamps
}
