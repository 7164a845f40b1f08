package dto

// CreateCustomerRequest represents the request to create a new customer
type CreateCustomerRequest struct {
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone"`
}

// UpdateCustomerRequest represents the request to update a customer
type UpdateCustomerRequest struct {
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone"`
	Version  *int    `json:"version" binding:"omitempty,min=1"`
}

// Validate validates the UpdateCustomerRequest
func (r *UpdateCustomerRequest) Validate() (bool, string) {
	if r.Version != nil && *r.Version < 1 {
		return false, "Version must be a positive number"
	}
	return true, ""
}

// CustomerResponse represents the response for a customer
type CustomerResponse struct {
	ID        string  `json:"id"`
	FullName  string  `json:"full_name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Version   int     `json:"version"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt *string `json:"updated_at,omitempty"`
}

// CustomerListFilter represents filters for listing customers
type CustomerListFilter struct {
	Search string `form:"search"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

// SetDefaults sets default values for pagination
func (f *CustomerListFilter) SetDefaults() {
	f.Limit, f.Offset = normalizePage(f.Limit, f.Offset)
}
