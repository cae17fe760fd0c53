// Copyright (c) 2026 Eduka. All rights reserved.
// Author: minh.vuquang.dev@gmail.com

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
//
// Roles form a closed set and are persisted as plain strings for
// readability in the database and in token claims.
type UserRole string

const (
	// Unrestricted system access
	RoleAdmin UserRole = "admin"

	// Can manage courses, enrollments, and grades
	RoleTeacher UserRole = "teacher"

	// Default role for registered accounts; read access to own data
	RoleStudent UserRole = "student"
)

// ParseRole maps a raw string onto the closed role set.
//
// Unknown or empty input falls back to [RoleStudent], which is the
// registration default.
func ParseRole(raw string) UserRole {
	switch UserRole(raw) {
	case RoleAdmin:
		return RoleAdmin
	case RoleTeacher:
		return RoleTeacher
	case RoleStudent:
		return RoleStudent
	default:
		return RoleStudent
	}
}

// IsValid reports whether the role belongs to the closed set.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	default:
		return false
	}
}

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {

	// Linear scale (10-30) allows for future intermediate roles
	switch r {
	case RoleAdmin:
		return 30
	case RoleTeacher:
		return 20
	case RoleStudent:
		return 10
	default:
		return 0
	}
}
