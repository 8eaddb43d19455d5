package ratelimiter

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// tokenBucketScript refills and consumes atomically using the server clock
// so every instance sees the same bucket. Denied requests leave the count
// unchanged. Returns {remaining, next refill in unix ms}.
var tokenBucketScript = redis.NewScript(`
local capacity = tonumber(ARGV[1])
local rate = tonumber(ARGV[2])
local interval = tonumber(ARGV[3])
local requested = tonumber(ARGV[4])

local t = redis.call('TIME')
local now = tonumber(t[1]) * 1000 + math.floor(tonumber(t[2]) / 1000)

local state = redis.call('HMGET', KEYS[1], 'tokens', 'refill')
local tokens = tonumber(state[1])
local refill = tonumber(state[2])
if tokens == nil or refill == nil then
	tokens = capacity
	refill = now
end

local intervals = math.floor((now - refill) / interval)
if intervals > 0 then
	tokens = math.min(tokens + intervals * rate, capacity)
	refill = now
end

local remaining = tokens - requested
if remaining >= 0 then
	tokens = remaining
end

redis.call('HSET', KEYS[1], 'tokens', tokens, 'refill', refill)
redis.call('PEXPIRE', KEYS[1], (math.ceil(capacity / rate) + 1) * interval)

return {remaining, refill + interval}
`)

// RedisStore is a Store shared by every process using the same Redis.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore creates a Store on client. Keys are stored under
// "ratelimit:" unless prefix says otherwise.
func NewRedisStore(client redis.UniversalClient, prefix ...string) *RedisStore {
	p := "ratelimit:"
	if len(prefix) > 0 && prefix[0] != "" {
		p = prefix[0]
	}
	return &RedisStore{client: client, prefix: p}
}

// ConsumeTokens implements Store.
func (s *RedisStore) ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (int, time.Time, error) {
	interval := max(config.RefillInterval.Milliseconds(), 1)

	res, err := tokenBucketScript.Run(ctx, s.client, []string{s.prefix + key},
		config.Capacity, config.RefillRate, interval, tokens,
	).Int64Slice()
	if err != nil {
		return 0, time.Time{}, errors.Join(ErrStoreUnavailable, err)
	}
	if len(res) != 2 {
		return 0, time.Time{}, ErrStoreUnavailable
	}

	return int(res[0]), time.UnixMilli(res[1]), nil
}

// Reset implements Store.
func (s *RedisStore) Reset(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
