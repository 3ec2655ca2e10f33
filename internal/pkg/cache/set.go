package cache

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/vmihailenco/msgpack/v5"
)

const clearScanCount = 500

func NewSet[T any](client *redis.Client, prefix string) *Set[T] {
	return &Set[T]{
		client: client,
		prefix: prefix + ":",
	}
}

// Set is a msgpack-encoded Redis cache whose keys share one prefix.
type Set[T any] struct {
	// m is a mutex for MutexGetSet for concurrent prevention
	m sync.Mutex

	client *redis.Client
	prefix string
}

func (c *Set[T]) key(key string) string {
	return c.prefix + key
}

// Get returns redis.Nil when the key does not exist.
func (c *Set[T]) Get(ctx context.Context, key string) (T, error) {
	var dest T
	key = c.key(key)
	resp, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Error().Err(err).Str("key", key).Msg("failed to get value from redis")
		}
		return dest, err
	}
	err = msgpack.Unmarshal(resp, &dest)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to unmarshal value from msgpack from redis")
		return dest, err
	}
	return dest, nil
}

func (c *Set[T]) Set(ctx context.Context, key string, value T, expire time.Duration) error {
	key = c.key(key)
	if l := log.Trace(); l.Enabled() {
		l.Str("key", key).Msg("setting value to redis")
	}
	b, err := msgpack.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to marshal value with msgpack")
		return err
	}
	err = c.client.Set(ctx, key, b, expire).Err()
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to set value to redis")
		return err
	}
	return nil
}

// MutexGetSet gets value from cache, or if the key does not exists, it executes valueFunc
// to get cache value if the key still not exists when serially dispatched, and sets value to cache.
// The second return value means whether the value is calculated (true) or read from redis (false).
func (c *Set[T]) MutexGetSet(ctx context.Context, key string, valueFunc func() (T, error), expire time.Duration) (T, bool, error) {
	v, err := c.Get(ctx, key)
	if err == nil {
		return v, false, nil
	} else if !errors.Is(err, redis.Nil) {
		log.Error().Err(err).Str("key", key).Msg("failed to get value from redis in MutexGetSet")
		return v, false, err
	}
	// onwards, cache key does not exist

	v, err = c.slowMutexGetSet(ctx, key, valueFunc, expire)
	return v, true, err
}

func (c *Set[T]) slowMutexGetSet(ctx context.Context, key string, valueFunc func() (T, error), expire time.Duration) (T, error) {
	c.m.Lock()
	defer c.m.Unlock()
	v, err := c.Get(ctx, key)

	if err == nil {
		return v, nil
	} else if !errors.Is(err, redis.Nil) {
		log.Error().Err(err).Str("key", key).Msg("failed to get value from redis in MutexGetSet inner check")
		return v, err
	}

	v, err = valueFunc()
	if err != nil {
		return v, err
	}

	if err := c.Set(ctx, key, v, expire); err != nil {
		// a computed value is still good to serve
		log.Warn().Err(err).Str("key", key).Msg("failed to set value to redis in MutexGetSet")
	}

	return v, nil
}

// DeletePrefix removes every key starting with the set prefix followed by sub.
func (c *Set[T]) DeletePrefix(ctx context.Context, sub string) error {
	pattern := c.key(sub) + "*"
	iter := c.client.Scan(ctx, 0, pattern, clearScanCount).Iterator()
	keys := make([]string, 0, clearScanCount)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) >= clearScanCount {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return errors.Wrapf(err, "failed to delete keys matching %s", pattern)
			}
			keys = keys[:0]
		}
	}
	if err := iter.Err(); err != nil {
		log.Error().Err(err).Str("pattern", pattern).Msg("failed to scan keys from redis")
		return err
	}
	if len(keys) > 0 {
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			return errors.Wrapf(err, "failed to delete keys matching %s", pattern)
		}
	}
	return nil
}
