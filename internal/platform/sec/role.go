// Copyright (c) 2026 GolpoHub. All rights reserved.

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Full access to the admin dashboard
	RoleAdmin UserRole = "admin"

	// Authenticated account without dashboard access
	RoleReader UserRole = "reader"
)

// RoleFor maps the stored admin flag onto a role.
func RoleFor(isAdmin bool) UserRole {
	if isAdmin {
		return RoleAdmin
	}
	return RoleReader
}

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level() && r.level() > 0
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 40
	case RoleReader:
		return 10
	default:
		return 0
	}
}
