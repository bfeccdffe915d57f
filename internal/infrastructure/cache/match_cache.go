// Package cache provides a Redis-backed read-through cache for the latest
// match result per requester.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/roomee/roomee-services/api/internal/public/domain"
)

// MatchCache implements application.MatchCache on top of Redis. Entries are
// JSON-encoded MatchResults keyed by requester user id.
type MatchCache struct {
	client *redis.Client
}

// NewClient builds a Redis client from an address, password and database
// number with conservative timeouts.
func NewClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
}

func NewMatchCache(client *redis.Client) *MatchCache {
	return &MatchCache{client: client}
}

func key(userID string) string {
	return "match:latest:" + userID
}

// Latest returns the cached match for the user, or (nil, nil) on a miss.
func (c *MatchCache) Latest(ctx context.Context, userID string) (*domain.MatchResult, error) {
	payload, err := c.client.Get(ctx, key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var match domain.MatchResult
	if err := json.Unmarshal(payload, &match); err != nil {
		return nil, fmt.Errorf("decode cached match: %w", err)
	}
	return &match, nil
}

func (c *MatchCache) StoreLatest(ctx context.Context, userID string, match *domain.MatchResult, ttl time.Duration) error {
	payload, err := json.Marshal(match)
	if err != nil {
		return fmt.Errorf("encode match: %w", err)
	}
	return c.client.Set(ctx, key(userID), payload, ttl).Err()
}

func (c *MatchCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, key(userID)).Err()
}
