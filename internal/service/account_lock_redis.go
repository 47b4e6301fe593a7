package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisLockReleaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`

type redisAccountLocker struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedisAccountLocker crea un locker respaldado por un lease en redis
// (SET NX PX). Sirve cuando corren varias instancias del servicio.
func NewRedisAccountLocker(client *redis.Client, ttl time.Duration) AccountLocker {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &redisAccountLocker{
		client: client,
		ttl:    ttl,
		prefix: "auth:lock:",
	}
}

func (l *redisAccountLocker) Acquire(ctx context.Context, accountID string) (func(), bool) {
	if l == nil || l.client == nil {
		return nil, false
	}
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return nil, false
	}

	key := l.prefix + accountID
	token := uuid.NewString()

	acquireCtx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	ok, err := l.client.SetNX(acquireCtx, key, token, l.ttl).Result()
	if err != nil || !ok {
		return nil, false
	}

	release := func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()
		_ = l.client.Eval(releaseCtx, redisLockReleaseScript, []string{key}, token).Err()
	}
	return release, true
}
