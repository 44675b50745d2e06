package models

import "github.com/google/uuid"

// User exists for schema parity with the admin table; the login path
// authenticates against the configured admin credentials instead.
type User struct {
	ID       uuid.UUID `db:"id" json:"id"`
	Username string    `db:"username" json:"username"`
	Password string    `db:"password" json:"-"`
}

// AdminProfile is what /api/auth/user returns for a valid session.
type AdminProfile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username"`
}
