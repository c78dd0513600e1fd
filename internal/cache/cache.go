package cache

import (
	"context"
	"time"
)

type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// StatsKey is the per-user dashboard stats cache key. Every mutation that
// changes a counted record must Del it.
func StatsKey(userID string) string {
	return "stats:" + userID
}
