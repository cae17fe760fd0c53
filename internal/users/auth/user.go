// Copyright (c) 2026 Eduka. All rights reserved.
// Author: minh.vuquang.dev@gmail.com

/*
Package auth implements the user identity and access layer.

It defines the core account entity and the logic for registration, login,
and account lifecycle.

# Architecture

This layer is the "Truth" of the system. Entities defined here encapsulate
all business rules related to user identity: a constructed User is always
in a valid state.
*/
package auth

import (
	"strings"
	"time"

	"github.com/minhvu-dev/eduka/internal/platform/sec"
	"github.com/minhvu-dev/eduka/internal/platform/validate"
	"github.com/minhvu-dev/eduka/internal/school/shared"
)

// # Domain Entities

// User represents a registered account on the Eduka platform.
type User struct {
	ID           int64        `json:"id"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	Role         sec.UserRole `json:"role"`
	IsActive     bool         `json:"is_active"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    *time.Time   `json:"updated_at,omitempty"`
}

// NewUser constructs a valid, active account.
//
// The username is trimmed and length-checked, the email is shape-checked
// through [shared.NewEmail] and then lower-cased (account emails are
// case-insensitive unique), and an unknown role silently falls back to
// the student role.
func NewUser(username, email, passwordHash string, role sec.UserRole) (*User, error) {
	trimmedUsername := trimmed(username)

	validator := &validate.Validator{}
	validator.Required(FieldUsername, trimmedUsername).
		MinLen(FieldUsername, trimmedUsername, UsernameMinLen).
		MaxLen(FieldUsername, trimmedUsername, UsernameMaxLen).
		Required(FieldPasswordHash, passwordHash)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	validEmail, err := shared.NewEmail(email)
	if err != nil {
		return nil, err
	}

	return &User{
		Username:     trimmedUsername,
		Email:        strings.ToLower(validEmail.String()),
		PasswordHash: passwordHash,
		Role:         sec.ParseRole(string(role)),
		IsActive:     true,
	}, nil
}

// UpdateEmail replaces the account email after the same shape check and
// lower-casing as creation. No other field is affected.
func (user *User) UpdateEmail(email string) error {
	validEmail, err := shared.NewEmail(email)
	if err != nil {
		return err
	}

	user.Email = strings.ToLower(validEmail.String())
	user.touch()
	return nil
}

// UpdatePasswordHash replaces the stored password hash.
func (user *User) UpdatePasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return validate.RequiredError(FieldPasswordHash, "This field is required")
	}

	user.PasswordHash = passwordHash
	user.touch()
	return nil
}

// Activate re-enables a deactivated account. Idempotent.
func (user *User) Activate() {
	if user.IsActive {
		return
	}
	user.IsActive = true
	user.touch()
}

// Deactivate disables the account. This is the account's soft delete;
// rows are never removed. Idempotent.
func (user *User) Deactivate() {
	if !user.IsActive {
		return
	}
	user.IsActive = false
	user.touch()
}

// touch stamps the modification time.
func (user *User) touch() {
	now := time.Now()
	user.UpdatedAt = &now
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
