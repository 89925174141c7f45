package post

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Post is a blog entry authored by a registered user.
type Post struct {
	ID        uuid.UUID
	AuthorID  uuid.UUID
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

var ErrNotFound = errors.New("post not found")

// Repository is the persistence port for posts.
type Repository interface {
	Create(ctx context.Context, p Post) error
	GetByID(ctx context.Context, id uuid.UUID) (Post, error)
	List(ctx context.Context, limit, offset int) ([]Post, error)
	// Update/delete only touch rows owned by the author
	UpdateForAuthor(ctx context.Context, authorID uuid.UUID, p Post) error
	DeleteForAuthor(ctx context.Context, authorID, id uuid.UUID) error
}
