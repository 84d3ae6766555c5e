// Package cache holds the optional Redis layer. Every method on a nil
// cache is a no-op, so callers run unchanged when REDIS_ADDR is unset.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/shoply/admin-backend/internal/domain"
	"github.com/shoply/admin-backend/internal/pkg/logger"
)

const summaryKeyPrefix = "stats:summary:"

const DefaultSummaryTTL = 60 * time.Second

type SummaryCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

func NewSummaryCache(client *redis.Client, ttl time.Duration, baseLog *logger.Logger) *SummaryCache {
	if ttl <= 0 {
		ttl = DefaultSummaryTTL
	}
	return &SummaryCache{client: client, ttl: ttl, log: baseLog.With("cache", "SummaryCache")}
}

func summaryKey(storeID uuid.UUID) string {
	return summaryKeyPrefix + storeID.String()
}

// Get returns the cached summary, or false on a miss. Redis failures
// count as misses: the dashboard must still render from Postgres.
func (c *SummaryCache) Get(ctx context.Context, storeID uuid.UUID) (*domain.Summary, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, summaryKey(storeID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("summary cache read failed", "store_id", storeID, "error", err)
		}
		return nil, false
	}
	var summary domain.Summary
	if err := json.Unmarshal(raw, &summary); err != nil {
		c.log.Warn("summary cache entry corrupt, dropping", "store_id", storeID, "error", err)
		_ = c.client.Del(ctx, summaryKey(storeID)).Err()
		return nil, false
	}
	return &summary, true
}

func (c *SummaryCache) Set(ctx context.Context, storeID uuid.UUID, summary *domain.Summary) {
	if c == nil || c.client == nil || summary == nil {
		return
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		c.log.Warn("summary cache encode failed", "store_id", storeID, "error", err)
		return
	}
	if err := c.client.Set(ctx, summaryKey(storeID), raw, c.ttl).Err(); err != nil {
		c.log.Warn("summary cache write failed", "store_id", storeID, "error", err)
	}
}

// Invalidate drops the store's entry. Called when catalog writes land
// so the counts never serve stale for a full TTL.
func (c *SummaryCache) Invalidate(ctx context.Context, storeID uuid.UUID) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, summaryKey(storeID)).Err(); err != nil {
		c.log.Warn("summary cache invalidate failed", "store_id", storeID, "error", err)
	}
}
