package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/blog/pkg/post"
)

// PostRepository implements post.Repository backed by PostgreSQL (pgx).
type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) (*PostRepository, error) {
	repo := &PostRepository{pool: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *PostRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS posts (
			id UUID PRIMARY KEY,
			author_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_posts_author ON posts(author_id);
		CREATE INDEX IF NOT EXISTS idx_posts_created ON posts(created_at DESC);
	`)
	return err
}

func (r *PostRepository) Create(ctx context.Context, p post.Post) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO posts (id, author_id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, p.ID, p.AuthorID, p.Title, p.Content, p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (post.Post, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, author_id, title, content, created_at, updated_at
		FROM posts WHERE id = $1
	`, id)
	return scanPost(row)
}

func (r *PostRepository) List(ctx context.Context, limit, offset int) ([]post.Post, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, author_id, title, content, created_at, updated_at
		FROM posts
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []post.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *PostRepository) UpdateForAuthor(ctx context.Context, authorID uuid.UUID, p post.Post) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE posts SET title = $1, content = $2, updated_at = $3
		WHERE id = $4 AND author_id = $5
	`, p.Title, p.Content, p.UpdatedAt, p.ID, authorID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return post.ErrNotFound
	}
	return nil
}

func (r *PostRepository) DeleteForAuthor(ctx context.Context, authorID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM posts WHERE id = $1 AND author_id = $2
	`, id, authorID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return post.ErrNotFound
	}
	return nil
}

func scanPost(row pgx.Row) (post.Post, error) {
	var p post.Post
	var createdAt, updatedAt time.Time
	if err := row.Scan(&p.ID, &p.AuthorID, &p.Title, &p.Content, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return post.Post{}, post.ErrNotFound
		}
		return post.Post{}, err
	}
	p.CreatedAt = createdAt.UTC()
	p.UpdatedAt = updatedAt.UTC()
	return p, nil
}
