package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/blog/api/http/presenter"
	"github.com/artem13815/blog/pkg/auth"
	"github.com/artem13815/blog/pkg/security/httpauth"
)

type AuthHandler struct {
	useCase auth.AuthUseCase
}

func NewAuthHandler(useCase auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type registerRequest struct {
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Password string `json:"password"`
}

// Register handles user registration and issues the first session pair.
// @Summary Register user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body registerRequest true "registration payload"
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "email and password are required")
	}

	result, err := h.useCase.Register(c.Context(), req.Email, req.Nickname, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserAlreadyExists):
			return presenter.Error(c, http.StatusConflict, "user already exists")
		case errors.Is(err, auth.ErrInvalidCredentials):
			return presenter.Error(c, http.StatusBadRequest, "email and password are required")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to register user")
		}
	}

	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"id":           result.User.ID.String(),
		"email":        result.User.Email,
		"nickname":     result.User.Nickname,
		"createdAt":    result.User.CreatedAt,
		"accessToken":  result.Tokens.AccessToken,
		"refreshToken": result.Tokens.RefreshToken,
	})
}

// Login authenticates Basic credentials from the Authorization header.
// @Summary Login
// @Tags    auth
// @Produce json
// @Param   Authorization header string true "Basic base64(email:password)"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	credential, err := httpauth.Token(c.Get(fiber.HeaderAuthorization), httpauth.SchemeBasic)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "malformed Authorization header")
	}
	email, password, err := httpauth.BasicCredentials(credential)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "malformed Authorization header")
	}

	result, err := h.useCase.Login(c.Context(), email, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return presenter.Error(c, http.StatusUnauthorized, "invalid credentials")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to login")
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"id":           result.User.ID.String(),
		"email":        result.User.Email,
		"nickname":     result.User.Nickname,
		"accessToken":  result.Tokens.AccessToken,
		"refreshToken": result.Tokens.RefreshToken,
	})
}

type refreshRequest struct {
	WantRefresh bool `json:"wantRefresh"`
}

// Refresh rotates a Bearer refresh token into a new token of the requested kind.
// @Summary Rotate refresh token
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   Authorization header string true "Bearer refresh token"
// @Param   input body refreshRequest false "rotation options"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	tokenStr, err := httpauth.Token(c.Get(fiber.HeaderAuthorization), httpauth.SchemeBearer)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "malformed Authorization header")
	}
	var req refreshRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
		}
	}

	token, err := h.useCase.Rotate(c.Context(), tokenStr, req.WantRefresh)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrWrongTokenKind):
			return presenter.Error(c, http.StatusUnauthorized, "reissue requires a refresh token")
		case errors.Is(err, auth.ErrExpiredToken):
			return presenter.Error(c, http.StatusUnauthorized, "token expired")
		default:
			return presenter.Error(c, http.StatusUnauthorized, "invalid token")
		}
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{"token": token})
}
