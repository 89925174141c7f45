package auth

import "github.com/google/uuid"

// TokenKind discriminates what a signed token may be used for.
type TokenKind string

const (
	KindAccess  TokenKind = "access"
	KindRefresh TokenKind = "refresh"
)

// TokenPayload is the verified content of a session token.
type TokenPayload struct {
	Subject uuid.UUID
	Email   string
	Kind    TokenKind
}

// TokenCodec abstracts token signing and verification (e.g., JWT).
// It allows use cases to stay framework-agnostic.
type TokenCodec interface {
	Sign(payload TokenPayload) (string, error)
	Verify(token string) (TokenPayload, error)
}

// PasswordHasher abstracts the slow salted hash for stored credentials.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(plaintext, hash string) bool
}
