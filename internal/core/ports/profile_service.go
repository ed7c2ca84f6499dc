package ports

import (
	"context"

	"github.com/lutfi-tyo14/blog-gunungagung/internal/core/domain"
)

// UpdateProfileInput carries the self-service profile changes. Nil pointers
// leave the field untouched.
type UpdateProfileInput struct {
	Username  *string
	AvatarURL *string
}

// ProfileService reads and updates the caller's own profile.
type ProfileService interface {
	Get(ctx context.Context, actor domain.Actor) (*domain.Profile, error)
	Update(ctx context.Context, actor domain.Actor, in UpdateProfileInput) (*domain.Profile, error)
}
