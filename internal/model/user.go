// Package model defines domain entities for the application.
package model

import "time"

// User represents a registered account.
// PasswordHash is never serialized in API responses.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
