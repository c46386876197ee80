package domain

import "time"

type ID string

// User is the identity record. PasswordHash never crosses the service
// boundary; external callers only ever see the PublicUser projection.
type User struct {
	ID           ID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
