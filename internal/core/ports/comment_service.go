package ports

import (
	"context"

	"github.com/lutfi-tyo14/blog-gunungagung/internal/core/domain"
)

// CommentService creates comments on posts. Listing happens through
// PostService.Get, which returns the thread with the post.
type CommentService interface {
	Create(ctx context.Context, actor domain.Actor, postID, content string) (*domain.Comment, error)
}
