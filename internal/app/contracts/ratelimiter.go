package contracts

import (
	"context"
	"time"
)

type ResourceLimiter interface {
	// Allow reports whether one more hit on resource fits in the current
	// fixed window, and how long to wait when it does not.
	Allow(ctx context.Context, group, resource string, maxQuota int, window time.Duration) (bool, time.Duration, error)
}
