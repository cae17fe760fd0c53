// Copyright (c) 2026 Eduka. All rights reserved.
// Author: minh.vuquang.dev@gmail.com

/*
Package auth implements the core identity and access management system.

It handles user registration, secure password hashing, credential
verification, and JWT issuance, with Redis-backed token revocation.

Architecture:

  - Service: Orchestrates business logic (Register, Login, Logout).
  - Repository: Abstracted interfaces for Postgres (Users) and Redis (Denylist).
  - Security: PBKDF2-SHA256 hashing and HS256-signed JWTs from platform/sec.

The package ensures that identity data remains consistent and secure
throughout the platform's lifecycle.
*/
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/minhvu-dev/eduka/internal/platform/apperr"
	"github.com/minhvu-dev/eduka/internal/platform/sec"
)

// # Contracts & Types

// TokenProvider defines the contract for issuing signed access tokens.
type TokenProvider interface {
	// GenerateToken creates a signed JWT string for the given identity.
	GenerateToken(identity sec.Identity) (string, error)

	// TimeToLive returns the configured token lifetime.
	TimeToLive() time.Duration
}

// PasswordHasher defines the contract for hashing and verifying passwords.
type PasswordHasher interface {
	HashPassword(plainTextPassword string) (string, error)
	VerifyPassword(plainTextPassword, encodedHash string) bool
}

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed carefully.
type Service struct {
	userRepository UserRepository
	tokenDenylist  TokenDenylist
	passwordHasher PasswordHasher
	tokenProvider  TokenProvider
	logger         *slog.Logger
}

// NewService constructs a new auth [Service] with necessary dependencies.
func NewService(
	userRepo UserRepository,
	denylist TokenDenylist,
	hasher PasswordHasher,
	tokenProv TokenProvider,
	logger *slog.Logger,
) *Service {
	return &Service{
		userRepository: userRepo,
		tokenDenylist:  denylist,
		passwordHasher: hasher,
		tokenProvider:  tokenProv,
		logger:         logger,
	}
}

// AuthSession represents a successfully established user session.
type AuthSession struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	User        *User  `json:"user"`
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string // Optional. Unknown or empty values default to student.
}

/*
Register validates, hashes, and persists a brand new user account, then
issues its first access token.

Description: Username and email uniqueness are pre-checked for friendly
error messages; the database unique constraints remain the authoritative
guard, so a concurrent duplicate insert still surfaces as a Conflict.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *AuthSession: Token plus the created account
  - error: Validation, Conflict (if identity exists), or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*AuthSession, error) {

	// Verify username uniqueness. Return a client-safe Conflict error.
	usernameTaken, err := service.userRepository.UsernameExists(context, strings.TrimSpace(input.Username))
	if err != nil {
		return nil, fmt.Errorf("auth_service_username_check_failed: %w", err)
	}
	if usernameTaken {
		return nil, apperr.Conflict("Username is already taken")
	}

	// Verify email uniqueness against the normalized address.
	emailTaken, err := service.userRepository.EmailExists(context, normalizeEmail(input.Email))
	if err != nil {
		return nil, fmt.Errorf("auth_service_email_check_failed: %w", err)
	}
	if emailTaken {
		return nil, apperr.Conflict("Email is already registered")
	}

	// Prevent storing plain-text passwords.
	hashedPassword, err := service.passwordHasher.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Construct the new User entity. Factory enforces all identity rules.
	user, err := NewUser(input.Username, input.Email, hashedPassword, sec.UserRole(input.Role))
	if err != nil {
		return nil, err
	}

	// Persist the user. A concurrent duplicate resolves here as Conflict.
	if err := service.userRepository.Create(context, user); err != nil {
		return nil, err
	}

	session, err := service.newSession(user)
	if err != nil {
		return nil, err
	}

	service.logger.Info("user_registered",
		slog.Int64("user_id", user.ID),
		slog.String("role", string(user.Role)),
	)

	return session, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Username string
	Password string
}

/*
Login validates user credentials and issues an access token.

Description: An unknown username, a deactivated account, and a wrong
password all produce the same "no result" outcome (nil, nil) so the
transport layer cannot leak which check failed.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *AuthSession: Token plus account summary, or nil when credentials don't match
  - error: Internal failures only; never signals a failed credential check
*/
func (service *Service) Login(context context.Context, input LoginInput) (*AuthSession, error) {
	user, err := service.userRepository.FindByUsername(context, strings.TrimSpace(input.Username))

	// Absent account: indistinguishable from a wrong password. Any other
	// lookup failure is an infrastructure error and propagates unmodified.
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("auth_service_login_lookup_failed: %w", err)
	}

	// Deactivated accounts cannot authenticate.
	if !user.IsActive {
		return nil, nil
	}

	// Constant-time hash comparison. False on any malformed stored hash.
	if !service.passwordHasher.VerifyPassword(input.Password, user.PasswordHash) {
		return nil, nil
	}

	session, err := service.newSession(user)
	if err != nil {
		return nil, err
	}

	service.logger.Info("user_logged_in", slog.Int64("user_id", user.ID))
	return session, nil
}

/*
Logout revokes the presented access token for its remaining lifetime.

Description: The token's jti claim is stored in the Redis denylist with a
TTL equal to the time left until natural expiry. Already-expired tokens
are a no-op (idempotent operation).

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims (verified claims of the presented token)

Returns:
  - error: Revocation failures
*/
func (service *Service) Logout(context context.Context, claims *sec.AuthClaims) error {
	if claims.ExpiresAt == nil || claims.ID == "" {
		return nil
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 {
		return nil
	}

	if err := service.tokenDenylist.Revoke(context, claims.ID, remaining); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}

	service.logger.Info("user_logged_out", slog.Int64("user_id", claims.UserID))
	return nil
}

// # Existence Checks

// UsernameExists reports whether the username is already taken.
func (service *Service) UsernameExists(context context.Context, username string) (bool, error) {
	return service.userRepository.UsernameExists(context, strings.TrimSpace(username))
}

// EmailExists reports whether the normalized email is already registered.
func (service *Service) EmailExists(context context.Context, email string) (bool, error) {
	return service.userRepository.EmailExists(context, normalizeEmail(email))
}

// # Internals

// newSession issues a token for the user and packages the session payload.
func (service *Service) newSession(user *User) (*AuthSession, error) {
	accessToken, err := service.tokenProvider.GenerateToken(sec.Identity{
		UserID:      user.ID,
		Username:    user.Username,
		Email:       user.Email,
		DisplayName: user.Username,
		Role:        string(user.Role),
	})
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &AuthSession{
		AccessToken: accessToken,
		TokenType:   TokenTypeBearer,
		ExpiresIn:   int(service.tokenProvider.TimeToLive().Seconds()),
		User:        user,
	}, nil
}

// normalizeEmail applies the same normalization the Email value object uses.
func normalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
