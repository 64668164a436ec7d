package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/events"
)

const statsCacheKey = "survey:stats:summary"

// StatsCache keeps the computed statistics summary in Redis so repeated
// dashboard hits avoid rescanning the record set. Every failure degrades to
// a recompute; the cache is never load-bearing.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewStatsCache builds the cache. A nil client disables caching entirely.
func NewStatsCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *StatsCache {
	return &StatsCache{client: client, ttl: ttl, logger: logger}
}

// Get loads a fresh summary, reporting false on miss or any Redis problem.
func (c *StatsCache) Get(ctx context.Context, out *StatsSummary) bool {
	if c == nil || c.client == nil {
		return false
	}
	raw, err := c.client.Get(ctx, statsCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("stats cache read failed", zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.logger.Warn("stats cache entry corrupt", zap.Error(err))
		return false
	}
	return true
}

// Set stores the summary with the configured TTL.
func (c *StatsCache) Set(ctx context.Context, summary *StatsSummary) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		c.logger.Warn("stats cache encode failed", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, statsCacheKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("stats cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached summary.
func (c *StatsCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, statsCacheKey).Err(); err != nil {
		c.logger.Warn("stats cache invalidation failed", zap.Error(err))
	}
}

// RegisterHandlers subscribes the cache to every survey mutation event.
func (c *StatsCache) RegisterHandlers(dispatcher events.Dispatcher) {
	if c == nil || dispatcher == nil {
		return
	}
	for _, eventType := range events.AllSurveyEvents {
		dispatcher.Subscribe(eventType, func(ctx context.Context, _ events.Event) error {
			c.Invalidate(ctx)
			return nil
		})
	}
}
