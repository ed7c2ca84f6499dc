package ports

import (
	"context"

	"github.com/lutfi-tyo14/blog-gunungagung/internal/core/domain"
)

// PostPatch holds the mutable post fields. ImageURL may be cleared by
// pointing at an empty string; the owner and timestamps never change.
type PostPatch struct {
	Title    *string
	Content  *string
	ImageURL *string
}

// PostRepository defines persistence for posts. Read methods resolve the
// author embed (normalized to object-or-absent) on every record.
type PostRepository interface {
	Create(ctx context.Context, p *domain.Post) (*domain.Post, error)
	// FindByID returns domain.ErrPostNotFound when no post matches.
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// List returns every post, newest first, with authors embedded.
	List(ctx context.Context) ([]*domain.Post, error)
	// ListByUser returns the given owner's posts, newest first.
	ListByUser(ctx context.Context, userID string) ([]*domain.Post, error)
	Update(ctx context.Context, id string, patch PostPatch) error
	Delete(ctx context.Context, id string) error
}
