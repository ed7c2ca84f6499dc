package ports

import (
	"context"

	"github.com/lutfi-tyo14/blog-gunungagung/internal/core/domain"
)

// CreatePostInput carries the data for a new post.
type CreatePostInput struct {
	Title    string
	Content  string
	ImageURL string
}

// UpdatePostInput carries the full replacement values for an edit, matching
// the edit form which always submits every field.
type UpdatePostInput struct {
	Title    string
	Content  string
	ImageURL string
}

// PostDetail is a post together with its comment thread.
type PostDetail struct {
	Post     *domain.Post
	Comments []*domain.Comment
}

// PostService implements post operations behind the authorization policy.
// Every method takes the acting caller explicitly; none reads ambient state.
type PostService interface {
	Create(ctx context.Context, actor domain.Actor, in CreatePostInput) (*domain.Post, error)
	Get(ctx context.Context, actor domain.Actor, id string) (*PostDetail, error)
	// ListAll is the privileged all-posts view (admin and super_admin).
	ListAll(ctx context.Context, actor domain.Actor) ([]*domain.Post, error)
	ListMine(ctx context.Context, actor domain.Actor) ([]*domain.Post, error)
	Update(ctx context.Context, actor domain.Actor, id string, in UpdatePostInput) (*domain.Post, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}
