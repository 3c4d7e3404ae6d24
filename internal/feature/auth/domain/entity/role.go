package entity

// Role is the closed set of authorization roles.
// Using a dedicated type instead of raw strings keeps authorization checks
// exhaustive and typo-proof.
type Role string

const (
	// RoleUser is the default role assigned at registration.
	RoleUser Role = "USER"

	// RoleAdmin may additionally perform destructive and stock-management
	// operations.
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

// Includes reports whether a holder of r satisfies the required role.
// ADMIN is a superset of USER.
func (r Role) Includes(required Role) bool {
	if r == required {
		return true
	}
	return r == RoleAdmin && required == RoleUser
}
