package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AuthUseCase describes registration, authentication and token lifecycle behavior.
type AuthUseCase interface {
	Register(ctx context.Context, email, nickname, password string) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
	Rotate(ctx context.Context, token string, wantRefresh bool) (string, error)
}

type AuthResult struct {
	User   User
	Tokens TokenPair
}

type authService struct {
	repo   UserRepository
	hasher PasswordHasher
	codec  TokenCodec
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(repo UserRepository, hasher PasswordHasher, codec TokenCodec) AuthUseCase {
	return &authService{repo: repo, hasher: hasher, codec: codec}
}

func (s *authService) Register(ctx context.Context, email, nickname, password string) (AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return AuthResult{}, ErrInvalidCredentials
	}

	// If user exists, fail fast; the unique index in the store stays authoritative
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return AuthResult{}, ErrUserAlreadyExists
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return AuthResult{}, err
	}

	user := User{
		ID:           uuid.New(),
		Email:        email,
		Nickname:     nickname,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return AuthResult{}, err
	}
	tokens, err := s.issueSession(user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Tokens: tokens}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	if !s.hasher.Compare(password, user.PasswordHash) {
		return AuthResult{}, ErrInvalidCredentials
	}
	tokens, err := s.issueSession(user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Tokens: tokens}, nil
}

// issueSession signs an access/refresh pair for the same subject. Both
// signatures are independent; neither depends on the other's output.
func (s *authService) issueSession(user User) (TokenPair, error) {
	access, err := s.codec.Sign(TokenPayload{Subject: user.ID, Email: user.Email, Kind: KindAccess})
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.codec.Sign(TokenPayload{Subject: user.ID, Email: user.Email, Kind: KindRefresh})
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Rotate verifies a refresh token and reissues a token of the requested kind
// for the same subject. A refresh token may mint another refresh token.
func (s *authService) Rotate(ctx context.Context, token string, wantRefresh bool) (string, error) {
	payload, err := s.codec.Verify(token)
	if err != nil {
		return "", err
	}
	if payload.Kind != KindRefresh {
		return "", ErrWrongTokenKind
	}
	kind := KindAccess
	if wantRefresh {
		kind = KindRefresh
	}
	return s.codec.Sign(TokenPayload{Subject: payload.Subject, Email: payload.Email, Kind: kind})
}
