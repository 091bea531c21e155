package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID               uuid.UUID  `json:"id" db:"id"`
	Email            string     `json:"email" db:"email"`
	EmailConfirmedAt *time.Time `json:"email_confirmed_at,omitempty" db:"email_confirmed_at"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	LastSignInAt     *time.Time `json:"last_sign_in_at,omitempty" db:"last_sign_in_at"`
}

type Profile struct {
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	DisplayName *string   `json:"display_name,omitempty" db:"display_name"`
	AvatarURL   *string   `json:"avatar_url,omitempty" db:"avatar_url"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// OTPChallenge is the pending one-time code for an email address.
type OTPChallenge struct {
	Email     string
	CodeHash  string
	Attempts  int
	ExpiresAt time.Time
	CreatedAt time.Time
}
