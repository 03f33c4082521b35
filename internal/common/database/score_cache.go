// internal/common/database/score_cache.go
package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"exhibitor-profile/internal/common/errors"
	"exhibitor-profile/internal/profile"
)

const scoreKeyPrefix = "profile:score:"

// ScoreCache keeps computed completion results per profile version. Keys
// embed the version, so a stale entry can never be served for a newer
// profile; Invalidate only reclaims memory.
type ScoreCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewScoreCache(client redis.UniversalClient, ttl time.Duration) *ScoreCache {
	return &ScoreCache{client: client, ttl: ttl}
}

// ScoreKey is the cache key for one profile version.
func ScoreKey(profileID string, version int64) string {
	return fmt.Sprintf("%s%s:%d", scoreKeyPrefix, profileID, version)
}

// Get returns the cached result; ok is false on a miss.
func (c *ScoreCache) Get(ctx context.Context, profileID string, version int64) (profile.CompletionResult, bool, error) {
	raw, err := c.client.Get(ctx, ScoreKey(profileID, version)).Bytes()
	if err == redis.Nil {
		return profile.CompletionResult{}, false, nil
	}
	if err != nil {
		return profile.CompletionResult{}, false, errors.NewScoreCacheFailedError(err)
	}

	var result profile.CompletionResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return profile.CompletionResult{}, false, errors.NewScoreCacheFailedError(fmt.Errorf("decode score: %w", err))
	}
	return result, true, nil
}

func (c *ScoreCache) Set(ctx context.Context, profileID string, version int64, result profile.CompletionResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return errors.NewScoreCacheFailedError(fmt.Errorf("encode score: %w", err))
	}
	if err := c.client.Set(ctx, ScoreKey(profileID, version), raw, c.ttl).Err(); err != nil {
		return errors.NewScoreCacheFailedError(err)
	}
	return nil
}

// Invalidate deletes every cached version of a profile and reports how many
// keys were removed.
func (c *ScoreCache) Invalidate(ctx context.Context, profileID string) (int, error) {
	pattern := scoreKeyPrefix + profileID + ":*"
	var (
		cursor  uint64
		removed int
	)
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return removed, errors.NewScoreCacheFailedError(err)
		}
		if len(keys) > 0 {
			n, err := c.client.Del(ctx, keys...).Result()
			if err != nil {
				return removed, errors.NewScoreCacheFailedError(err)
			}
			removed += int(n)
		}
		cursor = next
		if cursor == 0 {
			return removed, nil
		}
	}
}
