// Copyright (c) 2026 Eduka. All rights reserved.
// Author: minh.vuquang.dev@gmail.com

package auth

// # Account Constraints

const (
	// UsernameMinLen is the minimum username length in characters.
	UsernameMinLen = 3

	// UsernameMaxLen is the maximum username length in characters.
	UsernameMaxLen = 50

	// PasswordMinLen is the minimum plain-text password length accepted
	// at registration. Enforced at the transport layer only; the domain
	// stores hashes and never sees plain-text lengths.
	PasswordMinLen = 8

	// TokenTypeBearer is the token_type value returned with every session.
	TokenTypeBearer = "Bearer"
)

// # Field Identifiers

// Global field names for validation and identity mapping in the auth domain.
const (
	FieldUsername     = "username"
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldPasswordHash = "password_hash"
	FieldRole         = "role"
	FieldAccessToken  = "access_token"
	FieldTokenType    = "token_type"
	FieldExpiresIn    = "expires_in"
	FieldUser         = "user"
	FieldExists       = "exists"
	FieldMessage      = "message"
)
