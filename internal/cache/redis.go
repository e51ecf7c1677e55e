// Package cache wraps the Redis client used for session token revocation.
package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewClient connects to Redis at the given address. Returns nil when Redis
// is unreachable; the application continues without a revocation store.
func NewClient(addr string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis connection warning: %v (continuing without revocation store)", err)
		return nil
	}

	log.Println("Redis connected successfully")
	return client
}

// RevocationStore tracks session tokens invalidated by logout. Entries expire
// together with the token itself, so the set never needs cleanup.
type RevocationStore struct {
	client *redis.Client
}

// NewRevocationStore creates a revocation store over the given client.
// A nil client yields a store that revokes nothing and reports nothing revoked.
func NewRevocationStore(client *redis.Client) *RevocationStore {
	return &RevocationStore{client: client}
}

const revokedKeyPrefix = "revoked:"

// Revoke marks the token ID as logged out for the remainder of its lifetime.
func (s *RevocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if s.client == nil || ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, revokedKeyPrefix+tokenID, "1", ttl).Err()
}

// IsRevoked reports whether the token ID has been logged out.
func (s *RevocationStore) IsRevoked(ctx context.Context, tokenID string) bool {
	if s.client == nil {
		return false
	}
	n, err := s.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		log.Printf("Revocation check failed: %v", err)
		return false
	}
	return n > 0
}
