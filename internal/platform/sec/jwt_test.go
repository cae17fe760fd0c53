// Copyright (c) 2026 Eduka. All rights reserved.
// Author: minh.vuquang.dev@gmail.com

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvu-dev/eduka/internal/platform/sec"
)

const (
	testSecret   = "0123456789abcdef0123456789abcdef"
	testIssuer   = "eduka-api"
	testAudience = "eduka-clients"
)

func testIdentity() sec.Identity {
	return sec.Identity{
		UserID:      42,
		Username:    "minh",
		Email:       "minh@eduka.app",
		DisplayName: "Minh Vu",
		Role:        "teacher",
	}
}

/*
TestTokenService_Roundtrip issues a token and verifies every claim.
*/
func TestTokenService_Roundtrip(t *testing.T) {
	service := sec.NewTokenService(testSecret, testIssuer, testAudience, 60)

	token, err := service.GenerateToken(testIdentity())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, "minh", claims.Subject)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "minh@eduka.app", claims.Email)
	assert.Equal(t, "Minh Vu", claims.DisplayName)
	assert.Equal(t, "teacher", claims.Role)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.Contains(t, claims.Audience, testAudience)
	assert.NotEmpty(t, claims.ID, "jti must be set")

	require.NotNil(t, claims.ExpiresAt)
	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, time.Hour, lifetime)
}

/*
TestTokenService_UniqueTokenIDs checks that every token gets a fresh jti.
*/
func TestTokenService_UniqueTokenIDs(t *testing.T) {
	service := sec.NewTokenService(testSecret, testIssuer, testAudience, 60)

	first, err := service.GenerateToken(testIdentity())
	require.NoError(t, err)
	second, err := service.GenerateToken(testIdentity())
	require.NoError(t, err)

	firstClaims, err := service.VerifyToken(first)
	require.NoError(t, err)
	secondClaims, err := service.VerifyToken(second)
	require.NoError(t, err)

	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

/*
TestTokenService_Rejections covers signature, issuer, audience, and expiry
failures.
*/
func TestTokenService_Rejections(t *testing.T) {
	service := sec.NewTokenService(testSecret, testIssuer, testAudience, 60)

	t.Run("garbage_token", func(t *testing.T) {
		_, err := service.VerifyToken("not.a.token")
		assert.Error(t, err)
	})

	t.Run("wrong_secret", func(t *testing.T) {
		other := sec.NewTokenService("another-secret-another-secret-32", testIssuer, testAudience, 60)
		token, err := other.GenerateToken(testIdentity())
		require.NoError(t, err)

		_, err = service.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("wrong_issuer", func(t *testing.T) {
		other := sec.NewTokenService(testSecret, "rogue-issuer", testAudience, 60)
		token, err := other.GenerateToken(testIdentity())
		require.NoError(t, err)

		_, err = service.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("wrong_audience", func(t *testing.T) {
		other := sec.NewTokenService(testSecret, testIssuer, "rogue-clients", 60)
		token, err := other.GenerateToken(testIdentity())
		require.NoError(t, err)

		_, err = service.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("tampered_payload", func(t *testing.T) {
		token, err := service.GenerateToken(testIdentity())
		require.NoError(t, err)

		tampered := token[:len(token)-6] + "aaaaaa"
		_, err = service.VerifyToken(tampered)
		assert.Error(t, err)
	})
}
