package auth

import (
	"context"
	"errors"
)

// Common errors used by repository/use cases
var (
	ErrNotFound           = errors.New("not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("token is invalid")
	ErrExpiredToken       = errors.New("token is expired")
	ErrWrongTokenKind     = errors.New("reissue requires a refresh token")
)

// UserRepository abstracts persistence concerns from the domain layer.
// Implementations may be in-memory, SQL, NoSQL, etc.
type UserRepository interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
}
