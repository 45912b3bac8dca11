// Package entity contains the core business objects of the project.
package entity

import "time"

// GuestKey is the identity key used to namespace persisted state for
// visitors that are not signed in.
const GuestKey = "guest"

// User is a registered customer account. PasswordHash is stored alongside
// the profile but is stripped before the user ever leaves the usecase layer.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	Avatar       string    `json:"avatar,omitempty"`
	PasswordHash string    `json:"passwordHash,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Sanitized returns a copy of the user safe to expose through the API.
func (u User) Sanitized() User {
	u.PasswordHash = ""

	return u
}
