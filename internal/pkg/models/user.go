package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a patron account in the payment service
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	CardUsername string    `json:"card_username" db:"card_username"`
	CardPassword string    `json:"-" db:"card_password"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
	IsActive     bool      `json:"is_active" db:"is_active"`
}

// LibraryCard is one stored card credential belonging to a user. A user may
// hold several cards, including stale duplicates of the same barcode added
// under different card records over time.
type LibraryCard struct {
	ID                uuid.UUID `json:"id" db:"id"`
	UserID            uuid.UUID `json:"user_id" db:"user_id"`
	Username          string    `json:"username" db:"username"`
	EncryptedPassword string    `json:"-" db:"encrypted_password"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

// Patron is an ILS login session: the credentials and identity the ILS
// accepted for fee operations
type Patron struct {
	CatUsername string `json:"cat_username"`
	CatPassword string `json:"-"`
	ExternalID  string `json:"external_id"`
	Name        string `json:"name"`
}

// LoginRequest carries the library card credentials for patron login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is returned after a successful patron login
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt int64     `json:"expires_at"`
	UserID    uuid.UUID `json:"user_id"`
}
