// Copyright (c) 2026 Eduka. All rights reserved.
// Author: minh.vuquang.dev@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via small interfaces ([TokenProvider] in the auth domain).
package sec

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthClaims represents the payload embedded inside a JWT access token.
//
// # Why custom claims?
//
// By embedding the user identifier, email, display name, and role directly
// inside the JWT, the authentication middleware can reconstruct the active
// user context WITHOUT querying the database on every single API request.
type AuthClaims struct {
	jwt.RegisteredClaims

	// UserID is the stable numeric account identifier.
	UserID int64 `json:"uid"`
	// Email is the account's normalized email address.
	Email string `json:"email"`
	// DisplayName is the human-readable name shown in clients.
	DisplayName string `json:"name"`
	// Role is the account's authorization level (student, teacher, admin).
	Role string `json:"role"`
}

// Identity carries the account fields embedded into a token.
type Identity struct {
	UserID      int64
	Username    string
	Email       string
	DisplayName string
	Role        string
}

// TokenService issues and verifies HS256-signed JWT tokens.
//
// The signing secret, issuer, and audience come from configuration and are
// validated present at startup; they are immutable for the process lifetime.
type TokenService struct {
	secret     []byte
	issuer     string
	audience   string
	timeToLive time.Duration
}

// NewTokenService creates a TokenService with a shared HMAC secret.
func NewTokenService(secret, issuer, audience string, expiryMinutes int) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		issuer:     issuer,
		audience:   audience,
		timeToLive: time.Duration(expiryMinutes) * time.Minute,
	}
}

// GenerateToken creates a signed, time-limited JWT for the given identity.
//
// The subject claim is the username; a fresh UUID jti is attached to every
// token so that individual tokens can be revoked before expiry.
func (service *TokenService) GenerateToken(identity Identity) (string, error) {
	currentTime := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Username,
			Issuer:    service.issuer,
			Audience:  jwt.ClaimStrings{service.audience},
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(service.timeToLive)),
			ID:        uuid.NewString(),
		},
		UserID:      identity.UserID,
		Email:       identity.Email,
		DisplayName: identity.DisplayName,
		Role:        identity.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature and validity of a JWT string.
//
// Verification enforces the HMAC algorithm family, issuer match, audience
// match, and expiry with zero clock-skew tolerance.
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
			}
			return service.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(service.issuer),
		jwt.WithAudience(service.audience),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(0),
	)

	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid token claims")
	}

	return claims, nil
}

// TimeToLive exposes the configured token lifetime (for expires_in responses).
func (service *TokenService) TimeToLive() time.Duration {
	return service.timeToLive
}
