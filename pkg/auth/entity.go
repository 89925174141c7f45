package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a domain entity representing a registered account.
type User struct {
	ID           uuid.UUID
	Email        string
	Nickname     string
	PasswordHash string
	CreatedAt    time.Time
}

// TokenPair is a matched set of session tokens issued together.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
