package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/blog/api/http/presenter"
	"github.com/artem13815/blog/pkg/post"
)

type PostHandler struct {
	uc post.UseCase
}

func NewPostHandler(uc post.UseCase) *PostHandler { return &PostHandler{uc: uc} }

type postRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type postResponse struct {
	ID        string `json:"id"`
	AuthorID  string `json:"authorId"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func toPostResponse(p post.Post) postResponse {
	return postResponse{
		ID:        p.ID.String(),
		AuthorID:  p.AuthorID.String(),
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
}

// @Summary Create post
// @Tags    posts
// @Accept  json
// @Produce json
// @Param   input body postRequest true "post payload"
// @Security BearerAuth
// @Success 201 {object} postResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /posts [post]
func (h *PostHandler) Create(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "cannot identify user")
	}
	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	p, err := h.uc.Create(c.Context(), uid, req.Title, req.Content)
	if err != nil {
		var ev post.ErrValidation
		if errors.As(err, &ev) {
			return presenter.Error(c, http.StatusBadRequest, ev.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to create post")
	}
	return presenter.JSON(c, http.StatusCreated, toPostResponse(p))
}

// @Summary Get post by ID
// @Tags    posts
// @Produce json
// @Param   id path string true "post ID (UUID)"
// @Security BearerAuth
// @Success 200 {object} postResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /posts/{id} [get]
func (h *PostHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	p, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, post.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "post not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to get post")
	}
	return presenter.JSON(c, http.StatusOK, toPostResponse(p))
}

// @Summary List posts
// @Tags    posts
// @Produce json
// @Param   limit query int false "page size"
// @Param   offset query int false "page offset"
// @Security BearerAuth
// @Success 200 {array} postResponse
// @Router  /posts [get]
func (h *PostHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 20)
	ps, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list posts")
	}
	out := make([]postResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, toPostResponse(p))
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// @Summary Update post
// @Tags    posts
// @Accept  json
// @Produce json
// @Param   id path string true "post ID (UUID)"
// @Param   input body postRequest true "post payload"
// @Security BearerAuth
// @Success 200 {object} postResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /posts/{id} [put]
func (h *PostHandler) Update(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "cannot identify user")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	p, err := h.uc.Update(c.Context(), uid, id, req.Title, req.Content)
	if err != nil {
		var ev post.ErrValidation
		switch {
		case errors.As(err, &ev):
			return presenter.Error(c, http.StatusBadRequest, ev.Error())
		case errors.Is(err, post.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "post not found")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to update post")
		}
	}
	return presenter.JSON(c, http.StatusOK, toPostResponse(p))
}

// @Summary Delete post
// @Tags    posts
// @Param   id path string true "post ID (UUID)"
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /posts/{id} [delete]
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "cannot identify user")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	if err := h.uc.Delete(c.Context(), uid, id); err != nil {
		if errors.Is(err, post.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "post not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to delete post")
	}
	return c.SendStatus(http.StatusNoContent)
}

// currentUserID reads the subject set by the auth middleware.
func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, _ := c.Locals("userId").(string)
	return uuid.Parse(userIDStr)
}
