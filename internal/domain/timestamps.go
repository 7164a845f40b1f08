package domain

import "time"

// Timestamps holds audit times shared by every entity
type Timestamps struct {
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// MarkCreated sets the creation time and clears any update time
func (t *Timestamps) MarkCreated(now time.Time) {
	t.CreatedAt = now
	t.UpdatedAt = nil
}

// MarkModified sets the update time, leaving the creation time alone
func (t *Timestamps) MarkModified(now time.Time) {
	t.UpdatedAt = &now
}
