package common

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"stayflow/backoffice/internal/constants"
)

// SyncLocker hands out short-lived advisory locks keyed by (room, source) so
// two overlapping sync invocations cannot race on create-vs-update detection.
type SyncLocker interface {
	// TryLock acquires the lock; returns false if another sync holds it.
	TryLock(ctx context.Context, roomID uint, source string, ttl time.Duration) (bool, error)
	// Unlock releases the lock early. A forgotten lock expires with its TTL.
	Unlock(ctx context.Context, roomID uint, source string) error
}

func syncLockKey(roomID uint, source string) string {
	return fmt.Sprintf("%s%d:%s", constants.CachePrefixSyncLock, roomID, source)
}

// RedisSyncLocker implements SyncLocker with SETNX, so the lock holds across
// multiple server instances.
type RedisSyncLocker struct {
	client *redis.Client
}

var _ SyncLocker = (*RedisSyncLocker)(nil)

func NewRedisSyncLocker(client *redis.Client) *RedisSyncLocker {
	return &RedisSyncLocker{client: client}
}

func (l *RedisSyncLocker) TryLock(ctx context.Context, roomID uint, source string, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, syncLockKey(roomID, source), time.Now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire sync lock: %w", err)
	}
	return ok, nil
}

func (l *RedisSyncLocker) Unlock(ctx context.Context, roomID uint, source string) error {
	return l.client.Del(ctx, syncLockKey(roomID, source)).Err()
}

// LocalSyncLocker is the single-process fallback when Redis is not
// configured. Backed by the in-memory cache so locks still expire.
type LocalSyncLocker struct {
	cache *CacheService
}

var _ SyncLocker = (*LocalSyncLocker)(nil)

func NewLocalSyncLocker(cache *CacheService) *LocalSyncLocker {
	return &LocalSyncLocker{cache: cache}
}

func (l *LocalSyncLocker) TryLock(_ context.Context, roomID uint, source string, ttl time.Duration) (bool, error) {
	return l.cache.Add(syncLockKey(roomID, source), true, ttl), nil
}

func (l *LocalSyncLocker) Unlock(_ context.Context, roomID uint, source string) error {
	l.cache.Delete(syncLockKey(roomID, source))
	return nil
}
