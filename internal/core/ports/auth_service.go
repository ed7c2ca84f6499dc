package ports

import (
	"context"

	"github.com/lutfi-tyo14/blog-gunungagung/internal/core/domain"
)

// AuthService covers registration, login and the self-service reset flow.
type AuthService interface {
	// Register creates the account and its profile with role=user.
	Register(ctx context.Context, email, password string) (*domain.Profile, error)
	// Login verifies credentials and returns a signed session token.
	Login(ctx context.Context, email, password string) (string, *domain.Profile, error)
	// RequestPasswordReset issues a reset token for the account. From the
	// caller's view it always succeeds: unknown emails are not reported.
	RequestPasswordReset(ctx context.Context, email string) error
	// ResetPassword consumes a reset token and sets the new password.
	ResetPassword(ctx context.Context, token, newPassword string) error
}
