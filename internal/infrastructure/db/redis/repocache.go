package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRepoTTL = 10 * time.Minute

// RepoCache stores serialized GitHub lookup responses keyed by username.
// Key format: github:repos:<username>
type RepoCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRepoCache creates a RepoCache wrapping the given client. A non-positive
// ttl falls back to defaultRepoTTL.
func NewRepoCache(client *redis.Client, ttl time.Duration) *RepoCache {
	if ttl <= 0 {
		ttl = defaultRepoTTL
	}
	return &RepoCache{client: client, ttl: ttl}
}

// Get returns the cached payload for username, or ok=false on a miss.
func (c *RepoCache) Get(ctx context.Context, username string) ([]byte, bool, error) {
	raw, err := c.client.Get(ctx, c.key(username)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("repo cache get: %w", err)
	}
	return raw, true, nil
}

// Set stores the payload for username, expiring after the cache TTL.
func (c *RepoCache) Set(ctx context.Context, username string, payload []byte) error {
	return c.client.Set(ctx, c.key(username), payload, c.ttl).Err()
}

func (c *RepoCache) key(username string) string {
	return "github:repos:" + username
}
