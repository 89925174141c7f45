package httpauth

import (
	"encoding/base64"
	"errors"
	"strings"
)

// Scheme is the Authorization header scheme an endpoint expects.
type Scheme string

const (
	SchemeBearer Scheme = "Bearer"
	SchemeBasic  Scheme = "Basic"
)

var ErrMalformedHeader = errors.New("malformed authorization header")

// Token splits an Authorization header value into scheme and credential.
// The header must be exactly "<scheme> <credential>".
func Token(header string, scheme Scheme) (string, error) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", ErrMalformedHeader
	}
	if !strings.EqualFold(parts[0], string(scheme)) {
		return "", ErrMalformedHeader
	}
	return parts[1], nil
}

// BasicCredentials decodes a Basic credential payload into email and password.
// The decoded payload splits on the first colon.
func BasicCredentials(payload string) (email, password string, err error) {
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", "", ErrMalformedHeader
	}
	email, password, ok := strings.Cut(string(raw), ":")
	if !ok {
		return "", "", ErrMalformedHeader
	}
	return email, password, nil
}
