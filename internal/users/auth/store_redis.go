// Copyright (c) 2026 GolpoHub. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/golpohub/golpohub/internal/platform/constants"
)

// RedisRevocationStore shares revoked session IDs across API instances.
type RedisRevocationStore struct {
	client *redis.Client
}

func NewRedisRevocationStore(client *redis.Client) *RedisRevocationStore {
	return &RedisRevocationStore{client: client}
}

/*
Revoke marks a session ID as logged out for ttl.

Description: The key expires together with the token it blocks, so the
keyspace never holds entries for tokens that would fail verification anyway.

Parameters:
  - context: context.Context
  - tokenID: string (jti claim)
  - ttl: time.Duration (remaining token lifetime)

Returns:
  - error: Connectivity errors
*/
func (store *RedisRevocationStore) Revoke(context context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	if err := store.client.Set(context, constants.RedisPrefixRevokedToken+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("auth: revoke session: %w", err)
	}
	return nil
}

func (store *RedisRevocationStore) IsRevoked(context context.Context, tokenID string) (bool, error) {
	count, err := store.client.Exists(context, constants.RedisPrefixRevokedToken+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("auth: check revocation: %w", err)
	}
	return count > 0, nil
}
