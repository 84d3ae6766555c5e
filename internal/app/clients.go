package app

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shoply/admin-backend/internal/cache"
	"github.com/shoply/admin-backend/internal/pkg/logger"
)

type Clients struct {
	Redis        *redis.Client
	SummaryCache *cache.SummaryCache
}

// wireClients connects the optional Redis dependency. The summary cache only
// comes up when REDIS_ADDR is set and the server answers a ping; otherwise
// stats reads go straight to Postgres.
func wireClients(log *logger.Logger, cfg Config) Clients {
	log.Info("Wiring clients...")

	if cfg.RedisAddr == "" {
		log.Info("REDIS_ADDR not set, summary cache disabled")
		return Clients{}
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis unreachable, summary cache disabled", "addr", cfg.RedisAddr, "error", err)
		_ = client.Close()
		return Clients{}
	}

	return Clients{
		Redis:        client,
		SummaryCache: cache.NewSummaryCache(client, cfg.SummaryCacheTTL, log),
	}
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
}
