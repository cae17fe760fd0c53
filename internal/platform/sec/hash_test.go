// Copyright (c) 2026 Eduka. All rights reserved.
// Author: minh.vuquang.dev@gmail.com

package sec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvu-dev/eduka/internal/platform/apperr"
	"github.com/minhvu-dev/eduka/internal/platform/sec"
)

const testIterations = 10_000

/*
TestPasswordHasher_Roundtrip checks that a hashed password verifies and
that wrong passwords do not.
*/
func TestPasswordHasher_Roundtrip(t *testing.T) {
	hasher := sec.NewPasswordHasher(testIterations)

	encoded, err := hasher.HashPassword("correct horse battery")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(encoded, "pbkdf2_sha256$"))

	assert.True(t, hasher.VerifyPassword("correct horse battery", encoded))
	assert.False(t, hasher.VerifyPassword("wrong password", encoded))
	assert.False(t, hasher.VerifyPassword("", encoded))
}

/*
TestPasswordHasher_NonDeterministic ensures two hashes of the same input
differ (fresh salt per call) while both still verify.
*/
func TestPasswordHasher_NonDeterministic(t *testing.T) {
	hasher := sec.NewPasswordHasher(testIterations)

	first, err := hasher.HashPassword("same password")
	require.NoError(t, err)
	second, err := hasher.HashPassword("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.VerifyPassword("same password", first))
	assert.True(t, hasher.VerifyPassword("same password", second))
}

/*
TestPasswordHasher_EmptyPassword rejects hashing an empty string and
classifies the failure as invalid input rather than a server fault.
*/
func TestPasswordHasher_EmptyPassword(t *testing.T) {
	hasher := sec.NewPasswordHasher(testIterations)

	_, err := hasher.HashPassword("")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}

/*
TestPasswordHasher_MalformedEncodings ensures verification never panics
and always returns false on damaged stored hashes.
*/
func TestPasswordHasher_MalformedEncodings(t *testing.T) {
	hasher := sec.NewPasswordHasher(testIterations)

	encoded, err := hasher.HashPassword("correct horse battery")
	require.NoError(t, err)

	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"garbage", "not-a-hash"},
		{"wrong_algorithm", strings.Replace(encoded, "pbkdf2_sha256", "bcrypt", 1)},
		{"missing_segment", strings.Join(strings.Split(encoded, "$")[:3], "$")},
		{"bad_iterations", strings.Replace(encoded, "$10000$", "$abc$", 1)},
		{"truncated_key", encoded[:len(encoded)-10]},
		{"tampered_key", encoded[:len(encoded)-4] + "AAAA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, hasher.VerifyPassword("correct horse battery", tt.encoded))
		})
	}
}

/*
TestNewPasswordHasher_ClampsWeakIterations verifies the work-factor floor.
*/
func TestNewPasswordHasher_ClampsWeakIterations(t *testing.T) {
	hasher := sec.NewPasswordHasher(1)

	encoded, err := hasher.HashPassword("password")
	require.NoError(t, err)

	// The encoding embeds the effective iteration count.
	assert.Contains(t, encoded, "$120000$")
}
