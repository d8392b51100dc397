package approval

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// DecisionGuard deduplicates decision deliveries. The chat platform
// retries interaction deliveries and approvers double-click; only the
// first delivery for a prompt may mutate the ledger.
//
//go:generate mockgen -source=approval_guard.go -destination=mock/approval_guard_mock.go -package=mock
type DecisionGuard interface {
	// Acquire returns true when the caller is the first to handle key.
	Acquire(ctx context.Context, key string) (bool, error)
}

const guardTTL = 24 * time.Hour

type redisGuard struct {
	rdb *redis.Client
}

func NewRedisDecisionGuard(rdb *redis.Client) DecisionGuard {
	return &redisGuard{rdb: rdb}
}

func (g *redisGuard) Acquire(ctx context.Context, key string) (bool, error) {
	return g.rdb.SetNX(ctx, "leave:decision:"+key, "decided", guardTTL).Result()
}

// allowAllGuard is used when no redis address is configured; every
// delivery is treated as first, matching the original single-delivery
// assumption.
type allowAllGuard struct{}

func NewAllowAllGuard() DecisionGuard {
	return allowAllGuard{}
}

func (allowAllGuard) Acquire(ctx context.Context, key string) (bool, error) {
	return true, nil
}
