package post

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UseCase encapsulates application behavior for posts.
type UseCase interface {
	Create(ctx context.Context, authorID uuid.UUID, title, content string) (Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (Post, error)
	List(ctx context.Context, limit, offset int) ([]Post, error)
	Update(ctx context.Context, authorID, id uuid.UUID, title, content string) (Post, error)
	Delete(ctx context.Context, authorID, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, authorID uuid.UUID, title, content string) (Post, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Post{}, ErrValidation("title is required")
	}
	now := time.Now().UTC()
	p := Post{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Post{}, err
	}
	return p, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (Post, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, limit, offset int) ([]Post, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *service) Update(ctx context.Context, authorID, id uuid.UUID, title, content string) (Post, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Post{}, ErrValidation("title is required")
	}
	p := Post{ID: id, Title: title, Content: content, UpdatedAt: time.Now().UTC()}
	if err := s.repo.UpdateForAuthor(ctx, authorID, p); err != nil {
		return Post{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, authorID, id uuid.UUID) error {
	return s.repo.DeleteForAuthor(ctx, authorID, id)
}

// ErrValidation is a simple input validation error.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
