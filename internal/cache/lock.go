package cache

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrLockHeld is returned when another holder owns the lock
var ErrLockHeld = errors.New("lock already held")

// deletes the key only if it still carries our token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// ReleaseFunc gives a lock back
type ReleaseFunc func(ctx context.Context) error

// Locker hands out short-lived exclusive locks
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (ReleaseFunc, error)
}

type redisLocker struct {
	client redis.Cmdable
}

// NewLocker creates a Redis-backed locker using SET NX with a TTL
func NewLocker(client redis.Cmdable) Locker {
	return &redisLocker{client: client}
}

func (l *redisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (ReleaseFunc, error) {
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrLockHeld
	}

	return func(ctx context.Context) error {
		return releaseScript.Run(ctx, l.client, []string{key}, token).Err()
	}, nil
}
