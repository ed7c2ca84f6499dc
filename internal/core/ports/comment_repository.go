package ports

import (
	"context"

	"github.com/lutfi-tyo14/blog-gunungagung/internal/core/domain"
)

// CommentRepository defines persistence for comments. Comments have no update
// or delete path of their own; DeleteByPost exists so removing a post removes
// its thread with it.
type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	// ListByPost returns the post's comments oldest first, with authors embedded.
	ListByPost(ctx context.Context, postID string) ([]*domain.Comment, error)
	DeleteByPost(ctx context.Context, postID string) error
}
