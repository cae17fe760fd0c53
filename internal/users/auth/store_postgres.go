// Copyright (c) 2026 Eduka. All rights reserved.
// Author: minh.vuquang.dev@gmail.com

// Package auth: PostgreSQL implementation of the account storage layer.
//
// # Architecture
//
// Repositories here are strictly separated from domain logic. They implement
// the domain-defined [UserRepository] interface using the [pgxpool.Pool]
// connection manager.
//
// # Error Mapping
//
// Storage-specific errors (pgx.ErrNoRows, SQLSTATE constraint codes) are
// mapped to domain-friendly [apperr.AppError] types via dberr to avoid
// leaking storage implementation details.
package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minhvu-dev/eduka/internal/platform/apperr"
	"github.com/minhvu-dev/eduka/internal/platform/dberr"
)

// # User Repository

// PostgresUserRepository implements the UserRepository interface using pgx.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

/*
Create persists a new account into the users.account table.

Description: The database assigns the identity ID and creation timestamp;
both are written back onto the entity. Unique-key races on username or
email surface as apperr.Conflict.

Parameters:
  - context: context.Context
  - user: *User (Entity to persist)

Returns:
  - error: apperr.Conflict or connectivity errors
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	const query = `
		INSERT INTO users.account (username, email, passwordhash, role, isactive)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, createdat`

	err := repository.pool.QueryRow(context, query,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.IsActive,
	).Scan(&user.ID, &user.CreatedAt)

	return dberr.Wrap(err, "create_user")
}

/*
FindByID retrieves an account by its numeric identifier.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByID(context context.Context, id int64) (*User, error) {
	const query = `
		SELECT id, username, email, passwordhash, role, isactive, createdat, updatedat
		FROM users.account
		WHERE id = $1`

	return repository.scanOne(context, query, id)
}

/*
FindByUsername retrieves an account by its unique username.

Description: Standard lookup for authentication and profile resolution.

Parameters:
  - context: context.Context
  - username: string

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByUsername(context context.Context, username string) (*User, error) {
	const query = `
		SELECT id, username, email, passwordhash, role, isactive, createdat, updatedat
		FROM users.account
		WHERE username = $1`

	return repository.scanOne(context, query, username)
}

/*
FindByEmail retrieves an account by its unique normalized email.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	const query = `
		SELECT id, username, email, passwordhash, role, isactive, createdat, updatedat
		FROM users.account
		WHERE email = $1`

	return repository.scanOne(context, query, email)
}

/*
UpdateEmail replaces only the email column and stamps updatedat.

Parameters:
  - context: context.Context
  - userID: int64
  - email: string

Returns:
  - error: apperr.NotFound, apperr.Conflict (email taken), or database errors
*/
func (repository *PostgresUserRepository) UpdateEmail(context context.Context, userID int64, email string) error {
	const query = `
		UPDATE users.account
		SET email = $2, updatedat = NOW()
		WHERE id = $1`

	return repository.execOne(context, query, userID, email)
}

/*
UpdatePassword replaces only the password hash column and stamps updatedat.

Parameters:
  - context: context.Context
  - userID: int64
  - newHash: string

Returns:
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) UpdatePassword(context context.Context, userID int64, newHash string) error {
	const query = `
		UPDATE users.account
		SET passwordhash = $2, updatedat = NOW()
		WHERE id = $1`

	return repository.execOne(context, query, userID, newHash)
}

/*
SetActive toggles the isactive flag and stamps updatedat.

Description: Deactivation is the account soft delete; the row stays in
place so historical profiles keep a valid owner.

Parameters:
  - context: context.Context
  - userID: int64
  - active: bool

Returns:
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) SetActive(context context.Context, userID int64, active bool) error {
	const query = `
		UPDATE users.account
		SET isactive = $2, updatedat = NOW()
		WHERE id = $1`

	return repository.execOne(context, query, userID, active)
}

/*
UsernameExists reports whether any account row holds the username.

Parameters:
  - context: context.Context
  - username: string

Returns:
  - bool: Existence flag
  - error: Database errors
*/
func (repository *PostgresUserRepository) UsernameExists(context context.Context, username string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM users.account WHERE username = $1)`

	var exists bool
	if err := repository.pool.QueryRow(context, query, username).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "username_exists")
	}

	return exists, nil
}

/*
EmailExists reports whether any account row holds the normalized email.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - bool: Existence flag
  - error: Database errors
*/
func (repository *PostgresUserRepository) EmailExists(context context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM users.account WHERE email = $1)`

	var exists bool
	if err := repository.pool.QueryRow(context, query, email).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "email_exists")
	}

	return exists, nil
}

// scanOne hydrates a single account row for the standard column set.
func (repository *PostgresUserRepository) scanOne(context context.Context, query string, arg any) (*User, error) {
	user := &User{}
	err := repository.pool.QueryRow(context, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, dberr.Wrap(err, "find_user")
	}

	return user, nil
}

// execOne runs a single-row mutation and maps zero affected rows to NotFound.
func (repository *PostgresUserRepository) execOne(context context.Context, query string, args ...any) error {
	cmd, err := repository.pool.Exec(context, query, args...)
	if err != nil {
		return dberr.Wrap(err, "update_user")
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("User")
	}

	return nil
}
