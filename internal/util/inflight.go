package util

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// InflightGuard prevents a user from running two narrative generations
// for the same intent at once. The lock expires on its own so a crashed
// request cannot wedge the user forever.
type InflightGuard struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewInflightGuard(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *InflightGuard {
	return &InflightGuard{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

// Acquire returns true if no generation is currently running for this
// user and intent. When redis is unavailable the request is allowed
// through rather than blocked.
func (g *InflightGuard) Acquire(ctx context.Context, userID int, intent string) bool {
	key := g.key(userID, intent)

	ok, err := g.rdb.SetNX(ctx, key, 1, g.ttl).Result()
	if err != nil {
		if g.logger != nil {
			g.logger.Warn("Redis inflight check failed, allowing request",
				zap.Int("user_id", userID),
				zap.String("intent", intent),
				zap.Error(err),
			)
		}
		return true
	}

	if !ok && g.logger != nil {
		g.logger.Info("Rejected concurrent generation request",
			zap.Int("user_id", userID),
			zap.String("intent", intent),
			zap.String("inflight_key", key),
		)
	}

	return ok
}

// Release clears the lock once the generation finishes.
func (g *InflightGuard) Release(ctx context.Context, userID int, intent string) {
	if err := g.rdb.Del(ctx, g.key(userID, intent)).Err(); err != nil && g.logger != nil {
		g.logger.Warn("Failed to release inflight lock",
			zap.Int("user_id", userID),
			zap.String("intent", intent),
			zap.Error(err),
		)
	}
}

func (g *InflightGuard) key(userID int, intent string) string {
	return fmt.Sprintf("inflight:narrative:%d:%s", userID, intent)
}
