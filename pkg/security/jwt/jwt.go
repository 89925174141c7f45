package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/artem13815/blog/pkg/auth"
)

// Codec signs and verifies HS256 session tokens. The token kind travels
// inside the claims, so a token is self-describing about its use.
type Codec struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewCodec(secret, issuer string, accessTTL, refreshTTL time.Duration) *Codec {
	return &Codec{secret: []byte(secret), issuer: issuer, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// Claims include the registered set plus our email and token kind.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Kind  string `json:"kind"`
}

func (c *Codec) ttl(kind auth.TokenKind) time.Duration {
	if kind == auth.KindRefresh {
		return c.refreshTTL
	}
	return c.accessTTL
}

func (c *Codec) Sign(payload auth.TokenPayload) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   payload.Subject.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl(payload.Kind))),
		},
		Email: payload.Email,
		Kind:  string(payload.Kind),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Verify checks signature, expiry and issuer, and decodes the payload.
// Callers get auth.ErrExpiredToken or auth.ErrInvalidToken; the two are not
// distinguished further at the boundary.
func (c *Codec) Verify(tokenStr string) (auth.TokenPayload, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, auth.ErrInvalidToken
		}
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return auth.TokenPayload{}, auth.ErrExpiredToken
		}
		return auth.TokenPayload{}, auth.ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return auth.TokenPayload{}, auth.ErrInvalidToken
	}
	if c.issuer != "" && claims.Issuer != c.issuer {
		return auth.TokenPayload{}, auth.ErrInvalidToken
	}
	sub, err := uuid.Parse(claims.Subject)
	if err != nil {
		return auth.TokenPayload{}, auth.ErrInvalidToken
	}
	kind := auth.TokenKind(claims.Kind)
	if kind != auth.KindAccess && kind != auth.KindRefresh {
		return auth.TokenPayload{}, auth.ErrInvalidToken
	}
	return auth.TokenPayload{Subject: sub, Email: claims.Email, Kind: kind}, nil
}
