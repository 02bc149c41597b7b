package ratelimiter

import (
	"context"
	"fmt"
	"medbook-service/internal/app/contracts"
	"medbook-service/internal/pkg/constvars"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ResourceLimiter is a fixed-window counter kept in Redis. The key of a
// window is GROUP:resource:windowID and expires one second after the
// window closes.
type ResourceLimiter struct {
	redis contracts.RedisRepository
	log   *zap.Logger
	now   func() time.Time
}

func NewResourceLimiter(redis contracts.RedisRepository, log *zap.Logger) *ResourceLimiter {
	return &ResourceLimiter{redis: redis, log: log, now: time.Now}
}

func (l *ResourceLimiter) Allow(ctx context.Context, group, resource string, maxQuota int, window time.Duration) (bool, time.Duration, error) {
	if maxQuota <= 0 {
		return true, 0, nil
	}
	if window < time.Second {
		window = time.Minute
	}

	resource = strings.ToLower(strings.TrimSpace(resource))
	group = strings.ToUpper(strings.TrimSpace(group))
	if resource == "" || group == "" {
		return false, window, nil
	}

	windowSec := int64(window / time.Second)
	now := l.now().UTC()
	windowID := now.Unix() / windowSec
	key := fmt.Sprintf("%s:%s:%d", group, resource, windowID)

	count, err := l.redis.IncrementWithTTL(ctx, key, window+time.Second)
	if err != nil {
		l.log.Error("ResourceLimiter.Allow increment failed",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return false, 0, err
	}

	if count > int64(maxQuota) {
		nextWindowStart := (windowID + 1) * windowSec
		retryAfter := time.Duration(nextWindowStart-now.Unix()) * time.Second
		l.log.Info("ResourceLimiter.Allow quota exceeded",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Int64(constvars.LoggingCountKey, count),
		)
		return false, retryAfter, nil
	}

	return true, 0, nil
}
