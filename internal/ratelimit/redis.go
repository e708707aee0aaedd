package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// fixedWindowScript counts a call and starts the window on the first one.
// KEYS[1] = counter key
// ARGV[1] = window length in milliseconds
var fixedWindowScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
    redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

// RedisLimiter shares the fixed-window counters between instances.
type RedisLimiter struct {
	client redis.Scripter
	prefix string
	max    int
	period time.Duration
}

func NewRedisLimiter(client redis.Scripter, prefix string, max int, period time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		max:    max,
		period: period,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("%s:%s", l.prefix, key)

	count, err := fixedWindowScript.Run(ctx, l.client, []string{redisKey}, l.period.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("run window script: %w", err)
	}

	return count <= int64(l.max), nil
}
