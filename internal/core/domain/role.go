package domain

// Role is the closed set of privilege tiers. The store keeps it as a plain
// string, so every value read back goes through ParseRole before it is trusted.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// ValidRole reports whether s names one of the defined roles.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// ParseRole normalizes a role string loaded from persistence. Unknown or empty
// values degrade to RoleUser rather than granting anything.
func ParseRole(s string) Role {
	if ValidRole(s) {
		return Role(s)
	}
	return RoleUser
}

// IsStaff reports whether the role carries moderation privileges.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}
