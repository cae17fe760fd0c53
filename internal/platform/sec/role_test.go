// Copyright (c) 2026 Eduka. All rights reserved.
// Author: minh.vuquang.dev@gmail.com

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/minhvu-dev/eduka/internal/platform/sec"
)

/*
TestParseRole verifies normalization and the student fallback.
*/
func TestParseRole(t *testing.T) {
	tests := []struct {
		raw  string
		want sec.UserRole
	}{
		{"student", sec.RoleStudent},
		{"teacher", sec.RoleTeacher},
		{"admin", sec.RoleAdmin},
		{"", sec.RoleStudent},
		{"ADMIN", sec.RoleStudent},
		{"principal", sec.RoleStudent},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sec.ParseRole(tt.raw), "raw %q", tt.raw)
	}
}

/*
TestUserRole_AtLeast checks the role hierarchy used by route guards.
*/
func TestUserRole_AtLeast(t *testing.T) {
	assert.True(t, sec.RoleAdmin.AtLeast(sec.RoleTeacher))
	assert.True(t, sec.RoleAdmin.AtLeast(sec.RoleAdmin))
	assert.True(t, sec.RoleTeacher.AtLeast(sec.RoleStudent))
	assert.False(t, sec.RoleStudent.AtLeast(sec.RoleTeacher))
	assert.False(t, sec.RoleTeacher.AtLeast(sec.RoleAdmin))
}
