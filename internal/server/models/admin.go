package models

import "time"

// Admin is the single administrator account. PasswordHash is a bcrypt hash
// and never leaves the server.
type Admin struct {
	ID           string
	Email        string
	PasswordHash []byte
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
