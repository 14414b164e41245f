package domain

import "strings"

// Role is the permission tier carried in the token's role claim.
type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleManager   Role = "Manager"
	RoleReception Role = "Reception"
	RoleStaff     Role = "Staff"
)

// ParseRole matches a claim value against the known roles, case-sensitively
// after trimming. Unknown values yield ok=false.
func ParseRole(s string) (Role, bool) {
	switch r := Role(strings.TrimSpace(s)); r {
	case RoleAdmin, RoleManager, RoleReception, RoleStaff:
		return r, true
	default:
		return "", false
	}
}

// Principal is the identity extracted from a verified bearer token.
type Principal struct {
	Subject string `json:"sub"`
	Role    Role   `json:"role"`
}
