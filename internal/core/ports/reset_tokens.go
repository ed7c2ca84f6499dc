package ports

import "context"

// ResetTokenStore keeps short-lived password-reset tokens. Tokens expire on
// their own; Consume removes the token so it cannot be replayed.
type ResetTokenStore interface {
	Save(ctx context.Context, token, email string) error
	// Consume returns the email the token was issued for, or
	// domain.ErrInvalidResetToken when the token is unknown or expired.
	Consume(ctx context.Context, token string) (string, error)
}
