// Copyright (c) 2026 Eduka. All rights reserved.
// Author: minh.vuquang.dev@gmail.com

package auth

import (
	"context"
	"time"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByID(context context.Context, id int64) (*User, error)

	/*
		FindByUsername returns the account with the given username.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByUsername(context context.Context, username string) (*User, error)

	/*
		FindByEmail returns the account with the given normalized email.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		Create persists a brand-new account and assigns its generated ID.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: apperr.Conflict on unique-key races, or persistence failures
	*/
	Create(context context.Context, user *User) error

	/*
		UpdateEmail replaces only the account's email address.

		Parameters:
		  - context: context.Context
		  - userID: int64
		  - email: string

		Returns:
		  - error: Persistence failures
	*/
	UpdateEmail(context context.Context, userID int64, email string) error

	/*
		UpdatePassword replaces only the account's password hash.

		Parameters:
		  - context: context.Context
		  - userID: int64
		  - newHash: string

		Returns:
		  - error: Persistence failures
	*/
	UpdatePassword(context context.Context, userID int64, newHash string) error

	/*
		SetActive toggles the account's active flag. Deactivation is the
		account's soft delete; rows are never removed.

		Parameters:
		  - context: context.Context
		  - userID: int64
		  - active: bool

		Returns:
		  - error: Persistence failures
	*/
	SetActive(context context.Context, userID int64, active bool) error

	/*
		UsernameExists reports whether any account holds the username.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - bool: Existence flag
		  - error: Retrieval failures
	*/
	UsernameExists(context context.Context, username string) (bool, error)

	/*
		EmailExists reports whether any account holds the normalized email.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - bool: Existence flag
		  - error: Retrieval failures
	*/
	EmailExists(context context.Context, email string) (bool, error)
}

// # Volatile Data Access

// TokenDenylist defines the contract for revoking issued JWTs before expiry.
//
// Every token carries a unique jti claim; revoking stores that jti until the
// token would have expired anyway, so the denylist stays naturally bounded.
type TokenDenylist interface {

	/*
		Revoke marks a token ID as invalid for its remaining lifetime.

		Parameters:
		  - context: context.Context
		  - tokenID: string (the jti claim)
		  - ttl: time.Duration (remaining token lifetime)

		Returns:
		  - error: Persistence failures
	*/
	Revoke(context context.Context, tokenID string, ttl time.Duration) error

	/*
		IsTokenRevoked reports whether a token ID has been revoked.

		Parameters:
		  - context: context.Context
		  - tokenID: string (the jti claim)

		Returns:
		  - bool: Revocation flag
		  - error: Retrieval failures
	*/
	IsTokenRevoked(context context.Context, tokenID string) (bool, error)
}
