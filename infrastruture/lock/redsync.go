package lock

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/nhanhuynh123/pathgrid/config"
	"github.com/nhanhuynh123/pathgrid/service/i"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix = "pathgrid:board"
	defaultExpiry = 5 * time.Second

	lockKeyFmt = "%s:%s:lock"
)

// RedisLocker serialises board edits across server instances with a Redis
// backed redsync mutex per key.
type RedisLocker struct {
	locker *redsync.Redsync
	prefix string
	expiry time.Duration
	logger *log.Logger
}

// NewRedisLocker creates a RedisLocker on top of client.
func NewRedisLocker(client *redis.Client, logger *log.Logger) i.Locker {
	pool := goredis.NewPool(client)
	return &RedisLocker{
		locker: redsync.New(pool),
		prefix: defaultPrefix,
		expiry: defaultExpiry,
		logger: logger,
	}
}

// Lock obtains the mutex for key. The returned func releases it.
func (rl *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	mutex := rl.locker.NewMutex(fmt.Sprintf(lockKeyFmt, rl.prefix, key), redsync.WithExpiry(rl.expiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("obtaining lock for %s: %w", key, err)
	}

	return func() {
		ok, err := mutex.Unlock()
		if err != nil {
			rl.logger.Printf("%s[ERROR]%s releasing lock for %s: %s", config.LogErrorColor, config.LogColorReset, key, err)
			return
		}
		if !ok {
			rl.logger.Printf("%s[ERROR]%s releasing lock for %s: %s", config.LogErrorColor, config.LogColorReset, key, "redis eval func returned 0 while releasing")
		}
	}, nil
}
