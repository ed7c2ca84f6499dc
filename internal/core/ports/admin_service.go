package ports

import (
	"context"

	"github.com/lutfi-tyo14/blog-gunungagung/internal/core/domain"
)

// AdminService covers the moderation and user-management surface. Each
// operation consults the authorization policy with the acting caller.
type AdminService interface {
	// ListProfiles lists every account including emails (privileged).
	ListProfiles(ctx context.Context, actor domain.Actor) ([]*domain.Profile, error)
	// ChangeRole sets the target's role; a super admin may never change
	// their own role through this path.
	ChangeRole(ctx context.Context, actor domain.Actor, targetID, newRole string) (*domain.Profile, error)
	// TriggerPasswordReset issues a reset token for another account's email.
	TriggerPasswordReset(ctx context.Context, actor domain.Actor, email string) error
}
