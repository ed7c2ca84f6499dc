package ports

import (
	"context"

	"github.com/lutfi-tyo14/blog-gunungagung/internal/core/domain"
)

// ProfilePatch holds the fields a profile owner may change. Nil pointers
// leave the stored value untouched.
type ProfilePatch struct {
	Username  *string
	AvatarURL *string
}

// ProfileRepository defines persistence for account profiles.
type ProfileRepository interface {
	Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	FindByID(ctx context.Context, id string) (*domain.Profile, error)
	FindByEmail(ctx context.Context, email string) (*domain.Profile, error)
	List(ctx context.Context) ([]*domain.Profile, error)
	UpdateProfile(ctx context.Context, id string, patch ProfilePatch) error
	UpdateRole(ctx context.Context, id string, role domain.Role) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}
