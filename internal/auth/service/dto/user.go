package dto

import "time"

// PublicUser is the external projection of a user. It deliberately has no
// password hash field, so the hash cannot leak through serialization.
type PublicUser struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
