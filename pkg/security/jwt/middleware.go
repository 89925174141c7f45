package jwt

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/blog/pkg/auth"
	"github.com/artem13815/blog/pkg/security/httpauth"
)

// NewAuthMiddleware returns a Fiber middleware that validates Bearer tokens.
// Refresh tokens are rejected here; only the rotation endpoint accepts them.
// On success sets user id (subject) into c.Locals("userId") and the token
// email into c.Locals("userEmail").
func NewAuthMiddleware(codec *Codec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr, err := httpauth.Token(c.Get(fiber.HeaderAuthorization), httpauth.SchemeBearer)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "missing or malformed Authorization header"})
		}
		payload, err := codec.Verify(tokenStr)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "token expired"})
			}
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "invalid token"})
		}
		if payload.Kind != auth.KindAccess {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "access token required"})
		}
		c.Locals("userId", payload.Subject.String())
		c.Locals("userEmail", payload.Email)
		return c.Next()
	}
}
