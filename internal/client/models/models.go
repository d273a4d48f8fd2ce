// Package models defines the client-side views of API payloads.
package models

import "time"

// User is the identity carried in the session token.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session is what a successful login returns.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Image struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database,omitempty"`
}

// Collections lists the content collections served by the API.
var Collections = []string{"blogs", "projects", "education", "experience", "extracurricular"}
