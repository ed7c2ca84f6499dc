package domain

import "errors"

var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrCommentEmpty       = errors.New("comment cannot be empty")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)

// DeniedError is the error form of a policy denial for an authenticated
// caller. It matches ErrForbidden under errors.Is so transport code maps it
// to 403 while keeping the human-readable reason.
type DeniedError struct {
	Action ActionKind
	Reason string
}

func (e *DeniedError) Error() string { return e.Reason }

func (e *DeniedError) Is(target error) bool { return target == ErrForbidden }

func (d Decision) err(kind ActionKind) error {
	if d.Allowed {
		return nil
	}
	if d.Reason == ReasonAuthRequired {
		return ErrUnauthenticated
	}
	return &DeniedError{Action: kind, Reason: d.Reason}
}

// AuthorizeErr runs Authorize and folds the decision into an error: nil when
// allowed, ErrUnauthenticated when no session was present, a DeniedError
// otherwise. This is how the service layer consumes the policy.
func AuthorizeErr(actor Actor, action Action) error {
	return Authorize(actor, action).err(action.Kind)
}
