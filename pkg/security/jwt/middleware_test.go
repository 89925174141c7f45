package jwt

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/blog/pkg/auth"
)

func testApp(codec *Codec) *fiber.App {
	app := fiber.New()
	app.Get("/protected", NewAuthMiddleware(codec), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userId": c.Locals("userId"),
			"email":  c.Locals("userEmail"),
		})
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_AccessToken(t *testing.T) {
	codec := testCodec()
	token, err := codec.Sign(auth.TokenPayload{Subject: uuid.New(), Email: "a@b.com", Kind: auth.KindAccess})
	require.NoError(t, err)

	resp := doRequest(t, testApp(codec), "Bearer "+token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_RejectsRefreshToken(t *testing.T) {
	codec := testCodec()
	token, err := codec.Sign(auth.TokenPayload{Subject: uuid.New(), Email: "a@b.com", Kind: auth.KindRefresh})
	require.NoError(t, err)

	resp := doRequest(t, testApp(codec), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_RejectsExpired(t *testing.T) {
	codec := testCodec()
	expired := NewCodec(testSecret, testIssuer, -time.Minute, -time.Minute)
	token, err := expired.Sign(auth.TokenPayload{Subject: uuid.New(), Email: "a@b.com", Kind: auth.KindAccess})
	require.NoError(t, err)

	resp := doRequest(t, testApp(codec), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	codec := testCodec()
	for _, header := range []string{"", "Basic abc", "just-a-token", "Bearer a b"} {
		resp := doRequest(t, testApp(codec), header)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q", header)
	}
}
