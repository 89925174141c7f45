package post

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	posts map[uuid.UUID]Post
}

func newFakeRepo() *fakeRepo { return &fakeRepo{posts: make(map[uuid.UUID]Post)} }

func (r *fakeRepo) Create(_ context.Context, p Post) error {
	r.posts[p.ID] = p
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return Post{}, ErrNotFound
	}
	return p, nil
}

func (r *fakeRepo) List(_ context.Context, limit, offset int) ([]Post, error) {
	var out []Post
	for _, p := range r.posts {
		out = append(out, p)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeRepo) UpdateForAuthor(_ context.Context, authorID uuid.UUID, p Post) error {
	existing, ok := r.posts[p.ID]
	if !ok || existing.AuthorID != authorID {
		return ErrNotFound
	}
	existing.Title = p.Title
	existing.Content = p.Content
	existing.UpdatedAt = p.UpdatedAt
	r.posts[p.ID] = existing
	return nil
}

func (r *fakeRepo) DeleteForAuthor(_ context.Context, authorID, id uuid.UUID) error {
	existing, ok := r.posts[id]
	if !ok || existing.AuthorID != authorID {
		return ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

func TestService_Create(t *testing.T) {
	svc := NewService(newFakeRepo())
	author := uuid.New()

	p, err := svc.Create(context.Background(), author, "  Hello  ", "world")
	require.NoError(t, err)
	assert.Equal(t, "Hello", p.Title)
	assert.Equal(t, author, p.AuthorID)
	assert.False(t, p.CreatedAt.IsZero())
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)

	_, err = svc.Create(context.Background(), author, "   ", "no title")
	var ev ErrValidation
	assert.ErrorAs(t, err, &ev)
}

func TestService_UpdateOnlyByAuthor(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	author := uuid.New()

	p, err := svc.Create(context.Background(), author, "Hello", "world")
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), author, p.ID, "Hello again", "world!")
	require.NoError(t, err)
	assert.Equal(t, "Hello again", updated.Title)
	assert.Equal(t, "world!", updated.Content)

	_, err = svc.Update(context.Background(), uuid.New(), p.ID, "Hijack", "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_DeleteOnlyByAuthor(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	author := uuid.New()

	p, err := svc.Create(context.Background(), author, "Hello", "world")
	require.NoError(t, err)

	err = svc.Delete(context.Background(), uuid.New(), p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(context.Background(), author, p.ID)
	require.NoError(t, err)

	_, err = svc.GetByID(context.Background(), p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
