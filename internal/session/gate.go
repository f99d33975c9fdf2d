package session

import (
	"flowledger_backend/platform/apperr"
)

// Role identifiers used across the admin surface.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// DefaultAllowedRoles is the role set used when a caller does not specify one.
var DefaultAllowedRoles = []string{RoleAdmin, RoleSuperAdmin}

// RequireRole checks that the claims carry an organization role contained in
// the allowed set and returns the resolved role. When no roles are given, the
// default admin set applies.
//
// nil claims mean the request was never authenticated and yield Unauthorized.
// Claims without an organization role (missing organization, missing role
// field) fold into Forbidden: the role is unknown, it is not an error state.
// The check is pure and performs no I/O; callers must invoke it before any
// privileged action.
func RequireRole(claims *Claims, allowed ...string) (string, error) {
	if claims == nil {
		return "", apperr.Unauthorized("no session")
	}

	if len(allowed) == 0 {
		allowed = DefaultAllowedRoles
	}

	role, ok := claims.OrganizationRole()
	if !ok {
		return "", apperr.Forbidden("organization role unknown")
	}

	for _, candidate := range allowed {
		if role == candidate {
			return role, nil
		}
	}

	return "", apperr.Forbidden("insufficient role")
}
