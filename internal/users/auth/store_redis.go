// Copyright (c) 2026 Eduka. All rights reserved.
// Author: minh.vuquang.dev@gmail.com

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/minhvu-dev/eduka/internal/platform/constants"
)

// # Token Denylist Repository

// RedisTokenDenylist implements TokenDenylist using Redis.
//
// Each revoked jti is stored under its own key with a TTL matching the
// token's remaining lifetime, so entries disappear exactly when the token
// would have expired on its own.
type RedisTokenDenylist struct {
	client *redis.Client
}

// NewTokenDenylist creates a new Redis-backed TokenDenylist.
func NewTokenDenylist(client *redis.Client) *RedisTokenDenylist {
	return &RedisTokenDenylist{client: client}
}

/*
Revoke marks a token ID as invalid until its natural expiry.

Parameters:
  - context: context.Context
  - tokenID: string (the jti claim)
  - ttl: time.Duration

Returns:
  - error: Storage failures
*/
func (repository *RedisTokenDenylist) Revoke(context context.Context, tokenID string, ttl time.Duration) error {

	// Use constants for key prefix
	key := constants.RedisPrefixRevokedToken + tokenID

	// Set the marker with TTL
	if err := repository.client.Set(context, key, "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis_denylist_revoke_failed: %w", err)
	}

	// Return nil on success
	return nil
}

/*
IsTokenRevoked reports whether a token ID is present in the denylist.

Parameters:
  - context: context.Context
  - tokenID: string (the jti claim)

Returns:
  - bool: Revocation flag
  - error: Connectivity failures
*/
func (repository *RedisTokenDenylist) IsTokenRevoked(context context.Context, tokenID string) (bool, error) {

	// Use constants for key prefix
	key := constants.RedisPrefixRevokedToken + tokenID

	// Check key presence
	count, err := repository.client.Exists(context, key).Result()
	if err != nil {
		return false, fmt.Errorf("redis_denylist_check_failed: %w", err)
	}

	return count > 0, nil
}
