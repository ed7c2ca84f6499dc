package domain

import "time"

// Profile is the per-account record: one per registered account, same id.
// Role defaults to RoleUser at creation and changes only through the
// super-admin role-change path.
type Profile struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Email        string    `json:"email" bson:"email"`
	Username     string    `json:"username,omitempty" bson:"username,omitempty"`
	AvatarURL    string    `json:"avatar_url,omitempty" bson:"avatar_url,omitempty"`
	Role         Role      `json:"role" bson:"role"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// DisplayName is what pages show next to a post or comment: username first,
// email as fallback, "Anonim" when the author record is missing entirely.
func (p *Profile) DisplayName() string {
	if p == nil {
		return "Anonim"
	}
	if p.Username != "" {
		return p.Username
	}
	if p.Email != "" {
		return p.Email
	}
	return "Anonim"
}

// Actor is the caller identity threaded explicitly into every policy check.
// The zero value is the anonymous caller.
type Actor struct {
	ID    string
	Email string
	Role  Role
}

// Anonymous is the actor used when no session is present.
var Anonymous = Actor{}

// IsAnonymous reports whether the actor has no established session.
func (a Actor) IsAnonymous() bool {
	return a.ID == ""
}
