// Copyright (c) 2026 Eduka. All rights reserved.
// Author: minh.vuquang.dev@gmail.com

package auth_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvu-dev/eduka/internal/platform/apperr"
	"github.com/minhvu-dev/eduka/internal/platform/sec"
	"github.com/minhvu-dev/eduka/internal/users/auth"
)

// # Test Doubles

// memoryUserRepository is an in-memory UserRepository for service tests.
type memoryUserRepository struct {
	nextID int64
	users  map[int64]*auth.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{nextID: 1, users: map[int64]*auth.User{}}
}

func (repo *memoryUserRepository) FindByID(_ context.Context, id int64) (*auth.User, error) {
	user, ok := repo.users[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	copied := *user
	return &copied, nil
}

func (repo *memoryUserRepository) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	for _, user := range repo.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (repo *memoryUserRepository) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	for _, user := range repo.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (repo *memoryUserRepository) Create(_ context.Context, user *auth.User) error {
	for _, existing := range repo.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return apperr.Conflict("create_user: value already exists")
		}
	}

	user.ID = repo.nextID
	user.CreatedAt = time.Now()
	repo.nextID++

	copied := *user
	repo.users[user.ID] = &copied
	return nil
}

func (repo *memoryUserRepository) UpdateEmail(_ context.Context, userID int64, email string) error {
	user, ok := repo.users[userID]
	if !ok {
		return apperr.NotFound("User")
	}
	user.Email = email
	return nil
}

func (repo *memoryUserRepository) UpdatePassword(_ context.Context, userID int64, newHash string) error {
	user, ok := repo.users[userID]
	if !ok {
		return apperr.NotFound("User")
	}
	user.PasswordHash = newHash
	return nil
}

func (repo *memoryUserRepository) SetActive(_ context.Context, userID int64, active bool) error {
	user, ok := repo.users[userID]
	if !ok {
		return apperr.NotFound("User")
	}
	user.IsActive = active
	return nil
}

func (repo *memoryUserRepository) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, user := range repo.users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (repo *memoryUserRepository) EmailExists(_ context.Context, email string) (bool, error) {
	for _, user := range repo.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// memoryDenylist is an in-memory TokenDenylist.
type memoryDenylist struct {
	revoked map[string]bool
}

func newMemoryDenylist() *memoryDenylist {
	return &memoryDenylist{revoked: map[string]bool{}}
}

func (list *memoryDenylist) Revoke(_ context.Context, tokenID string, _ time.Duration) error {
	list.revoked[tokenID] = true
	return nil
}

func (list *memoryDenylist) IsTokenRevoked(_ context.Context, tokenID string) (bool, error) {
	return list.revoked[tokenID], nil
}

// # Fixtures

const testSecret = "0123456789abcdef0123456789abcdef"

type serviceFixture struct {
	service  *auth.Service
	users    *memoryUserRepository
	denylist *memoryDenylist
	tokens   *sec.TokenService
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	users := newMemoryUserRepository()
	denylist := newMemoryDenylist()
	tokens := sec.NewTokenService(testSecret, "eduka-api", "eduka-clients", 60)
	hasher := sec.NewPasswordHasher(10_000)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &serviceFixture{
		service:  auth.NewService(users, denylist, hasher, tokens, logger),
		users:    users,
		denylist: denylist,
		tokens:   tokens,
	}
}

// # Registration

/*
TestService_Register_DefaultRole verifies that an omitted role registers
the account as a student.
*/
func TestService_Register_DefaultRole(t *testing.T) {
	fixture := newServiceFixture(t)

	session, err := fixture.service.Register(context.Background(), auth.RegisterInput{
		Username: "minh",
		Email:    "minh@eduka.app",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	require.NotNil(t, session)

	assert.Equal(t, sec.RoleStudent, session.User.Role)
	assert.Equal(t, auth.TokenTypeBearer, session.TokenType)
	assert.Equal(t, 3600, session.ExpiresIn)
	assert.NotEmpty(t, session.AccessToken)
}

/*
TestService_Register_Conflicts covers duplicate username and email.
*/
func TestService_Register_Conflicts(t *testing.T) {
	fixture := newServiceFixture(t)

	_, err := fixture.service.Register(context.Background(), auth.RegisterInput{
		Username: "minh",
		Email:    "minh@eduka.app",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		email    string
	}{
		{"duplicate_username", "minh", "other@eduka.app"},
		{"duplicate_email", "other", "minh@eduka.app"},
		{"duplicate_email_different_case", "other2", "MINH@eduka.app"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fixture.service.Register(context.Background(), auth.RegisterInput{
				Username: tt.username,
				Email:    tt.email,
				Password: "correct horse battery",
			})
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "CONFLICT", ae.Code)
		})
	}
}

// # Login

/*
TestService_RegisterLoginRoundtrip registers an account, logs in with the
same credentials, and checks the issued token's claims.
*/
func TestService_RegisterLoginRoundtrip(t *testing.T) {
	fixture := newServiceFixture(t)

	_, err := fixture.service.Register(context.Background(), auth.RegisterInput{
		Username: "teacher1",
		Email:    "teacher1@eduka.app",
		Password: "correct horse battery",
		Role:     "teacher",
	})
	require.NoError(t, err)

	session, err := fixture.service.Login(context.Background(), auth.LoginInput{
		Username: "teacher1",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	require.NotNil(t, session)

	claims, err := fixture.tokens.VerifyToken(session.AccessToken)
	require.NoError(t, err)

	assert.Equal(t, "teacher1", claims.Subject)
	assert.Equal(t, "teacher1@eduka.app", claims.Email)
	assert.Equal(t, "teacher", claims.Role)
	assert.Equal(t, session.User.ID, claims.UserID)
	assert.NotEmpty(t, claims.ID, "every token carries a jti")
}

/*
TestService_Login_NoResult verifies the uniform "no result" outcome for
unknown accounts, wrong passwords, and deactivated accounts.
*/
func TestService_Login_NoResult(t *testing.T) {
	fixture := newServiceFixture(t)

	registered, err := fixture.service.Register(context.Background(), auth.RegisterInput{
		Username: "minh",
		Email:    "minh@eduka.app",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	t.Run("unknown_username", func(t *testing.T) {
		session, err := fixture.service.Login(context.Background(), auth.LoginInput{
			Username: "nobody",
			Password: "correct horse battery",
		})
		require.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("wrong_password", func(t *testing.T) {
		session, err := fixture.service.Login(context.Background(), auth.LoginInput{
			Username: "minh",
			Password: "wrong password",
		})
		require.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("deactivated_account", func(t *testing.T) {
		require.NoError(t, fixture.users.SetActive(context.Background(), registered.User.ID, false))

		session, err := fixture.service.Login(context.Background(), auth.LoginInput{
			Username: "minh",
			Password: "correct horse battery",
		})
		require.NoError(t, err)
		assert.Nil(t, session)
	})
}

// unavailableUserRepository simulates a lost database connection.
type unavailableUserRepository struct {
	auth.UserRepository
}

func (unavailableUserRepository) FindByUsername(_ context.Context, _ string) (*auth.User, error) {
	return nil, apperr.Internal(errors.New("connection refused"))
}

/*
TestService_Login_RepositoryFailure verifies that only an absent account maps
to "no result"; an infrastructure failure during lookup propagates instead of
masquerading as bad credentials.
*/
func TestService_Login_RepositoryFailure(t *testing.T) {
	fixture := newServiceFixture(t)
	hasher := sec.NewPasswordHasher(10_000)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := auth.NewService(unavailableUserRepository{}, fixture.denylist, hasher, fixture.tokens, logger)

	session, err := service.Login(context.Background(), auth.LoginInput{
		Username: "minh",
		Password: "correct horse battery",
	})
	require.Error(t, err)
	assert.Nil(t, session)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "INTERNAL_ERROR", ae.Code)
}

// # Logout

/*
TestService_Logout verifies that the token's jti lands in the denylist and
that expired tokens are a no-op.
*/
func TestService_Logout(t *testing.T) {
	fixture := newServiceFixture(t)

	session, err := fixture.service.Register(context.Background(), auth.RegisterInput{
		Username: "minh",
		Email:    "minh@eduka.app",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	claims, err := fixture.tokens.VerifyToken(session.AccessToken)
	require.NoError(t, err)

	require.NoError(t, fixture.service.Logout(context.Background(), claims))

	revoked, err := fixture.denylist.IsTokenRevoked(context.Background(), claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)

	t.Run("expired_token_noop", func(t *testing.T) {
		expired := &sec.AuthClaims{}
		expired.ID = "stale-jti"
		expired.ExpiresAt = nil

		require.NoError(t, fixture.service.Logout(context.Background(), expired))

		revoked, err := fixture.denylist.IsTokenRevoked(context.Background(), "stale-jti")
		require.NoError(t, err)
		assert.False(t, revoked)
	})
}

// # Existence Checks

/*
TestService_ExistenceChecks verifies trimming and email normalization in
the pre-validation endpoints' backing methods.
*/
func TestService_ExistenceChecks(t *testing.T) {
	fixture := newServiceFixture(t)

	_, err := fixture.service.Register(context.Background(), auth.RegisterInput{
		Username: "minh",
		Email:    "minh@eduka.app",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	taken, err := fixture.service.UsernameExists(context.Background(), "  minh ")
	require.NoError(t, err)
	assert.True(t, taken)

	registered, err := fixture.service.EmailExists(context.Background(), " MINH@eduka.app ")
	require.NoError(t, err)
	assert.True(t, registered)

	free, err := fixture.service.UsernameExists(context.Background(), "ghost")
	require.NoError(t, err)
	assert.False(t, free)
}
