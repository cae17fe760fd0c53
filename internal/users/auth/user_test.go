// Copyright (c) 2026 Eduka. All rights reserved.
// Author: minh.vuquang.dev@gmail.com

package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvu-dev/eduka/internal/platform/apperr"
	"github.com/minhvu-dev/eduka/internal/platform/sec"
	"github.com/minhvu-dev/eduka/internal/users/auth"
)

/*
TestNewUser covers the account factory's identity rules.
*/
func TestNewUser(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		hash     string
		role     sec.UserRole
		isValid  bool
		wantCode string
	}{
		{"valid_student", "minh", "minh@eduka.app", "hash", sec.RoleStudent, true, ""},
		{"valid_teacher", "teacher1", "t@eduka.app", "hash", sec.RoleTeacher, true, ""},
		{"username_too_short", "ab", "a@eduka.app", "hash", sec.RoleStudent, false, "VALIDATION_ERROR"},
		{"username_too_long", strings.Repeat("a", 51), "a@eduka.app", "hash", sec.RoleStudent, false, "VALIDATION_ERROR"},
		{"missing_hash", "minh", "minh@eduka.app", "", sec.RoleStudent, false, "VALIDATION_ERROR"},
		{"bad_email", "minh", "not-an-email", "hash", sec.RoleStudent, false, "VALIDATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := auth.NewUser(tt.username, tt.email, tt.hash, tt.role)

			if !tt.isValid {
				require.Error(t, err)
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, tt.wantCode, ae.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.role, user.Role)
			assert.True(t, user.IsActive)
		})
	}
}

/*
TestNewUser_Normalization checks trimming and email lowercasing.
*/
func TestNewUser_Normalization(t *testing.T) {
	user, err := auth.NewUser("  minh  ", "  Minh@Eduka.APP ", "hash", sec.RoleStudent)
	require.NoError(t, err)

	assert.Equal(t, "minh", user.Username)
	assert.Equal(t, "minh@eduka.app", user.Email)
}

/*
TestNewUser_DefaultRole verifies that unknown roles fall back to student.
*/
func TestNewUser_DefaultRole(t *testing.T) {
	for _, raw := range []sec.UserRole{"", "superuser", "ADMIN"} {
		user, err := auth.NewUser("minh", "minh@eduka.app", "hash", raw)
		require.NoError(t, err)
		assert.Equal(t, sec.RoleStudent, user.Role, "raw role %q", raw)
	}
}

/*
TestUser_UpdateEmail ensures only the email field is mutated.
*/
func TestUser_UpdateEmail(t *testing.T) {
	user, err := auth.NewUser("minh", "old@eduka.app", "hash", sec.RoleStudent)
	require.NoError(t, err)

	originalUsername := user.Username
	originalHash := user.PasswordHash

	require.NoError(t, user.UpdateEmail("  New@Eduka.app "))

	assert.Equal(t, "new@eduka.app", user.Email)
	assert.Equal(t, originalUsername, user.Username)
	assert.Equal(t, originalHash, user.PasswordHash)
	assert.NotNil(t, user.UpdatedAt)

	// Invalid replacement leaves the entity untouched.
	assert.Error(t, user.UpdateEmail("no-at-sign"))
	assert.Equal(t, "new@eduka.app", user.Email)
}

/*
TestUser_ActivationLifecycle verifies idempotent activate/deactivate.
*/
func TestUser_ActivationLifecycle(t *testing.T) {
	user, err := auth.NewUser("minh", "minh@eduka.app", "hash", sec.RoleStudent)
	require.NoError(t, err)
	require.True(t, user.IsActive)

	user.Deactivate()
	assert.False(t, user.IsActive)
	firstStamp := user.UpdatedAt

	// Second deactivation changes nothing.
	user.Deactivate()
	assert.False(t, user.IsActive)
	assert.Equal(t, firstStamp, user.UpdatedAt)

	user.Activate()
	assert.True(t, user.IsActive)
}
