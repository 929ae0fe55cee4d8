package myredis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"myandesite/interfaces"
	"myandesite/service"

	"github.com/go-redis/redis/v8"
)

type redisCache[T any] struct {
	client    redis.UniversalClient
	prefix    string
	marshal   func(T) ([]byte, error)
	unmarshal func([]byte) (T, error)
	zero      T
}

var _ interfaces.Cache[int] = (*redisCache[int])(nil)

// NewCache creates the redis implementation of interfaces.Cache. Keys are stored as "<prefix>:<key>".
func NewCache[T any](client redis.UniversalClient, prefix string, marshal func(T) ([]byte, error), unmarshal func([]byte) (T, error)) *redisCache[T] {
	var zero T
	return &redisCache[T]{
		client:    client,
		prefix:    prefix,
		zero:      zero,
		marshal:   marshal,
		unmarshal: unmarshal,
	}
}

func (r *redisCache[T]) WriteValue(ctx context.Context, key string, item T, ttlMs int) error {
	bytes, err := r.marshal(item)
	if err != nil {
		return service.NewInternalServerError("Redis marshal item error", fmt.Errorf("can't marshal item of type %T, err: %w", item, err))
	}
	ttl := time.Duration(0)
	if ttlMs > 0 {
		ttl = time.Duration(ttlMs) * time.Millisecond
	}
	if err := r.client.Set(ctx, r.generateKey(key), bytes, ttl).Err(); err != nil {
		return service.NewInternalServerError("Redis write key error", fmt.Errorf("can't write item of type %T to redis (key='%s'), err: %w", item, key, err))
	}
	return nil
}

func (r *redisCache[T]) ReadValue(ctx context.Context, key string) (T, error) {
	bytes, err := r.client.Get(ctx, r.generateKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return r.zero, service.NewEntityNotFoundError("Entity not found", nil)
	}
	if err != nil {
		return r.zero, service.NewInternalServerError("Redis read key error", fmt.Errorf("can't read item of type %T from redis (key='%s'), err: %w", r.zero, key, err))
	}
	item, err := r.unmarshal(bytes)
	if err != nil {
		return r.zero, service.NewInternalServerError("Redis unmarshal item error", fmt.Errorf("can't unmarshal item of type %T (key='%s'), err: %w", r.zero, key, err))
	}
	return item, nil
}

func (r *redisCache[T]) DeleteValue(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.generateKey(key)).Err(); err != nil {
		return service.NewInternalServerError("Redis delete key error", fmt.Errorf("can't delete item of type %T from redis (key='%s'), err: %w", r.zero, key, err))
	}
	return nil
}

// ListAllValues lists all keys under the cache prefix then fetches their values. Entries that vanished
// or do not unmarshal are skipped.
func (r *redisCache[T]) ListAllValues(ctx context.Context) ([]T, error) {
	fullKeys, err := r.client.Keys(ctx, r.prefix+":*").Result()
	if err != nil {
		return nil, service.NewInternalServerError("Redis get keys error", fmt.Errorf("redis get keys error, err: %w", err))
	}
	prefixWithColon := r.prefix + ":"
	items := make([]T, 0, len(fullKeys))
	for _, k := range fullKeys {
		if !strings.HasPrefix(k, prefixWithColon) {
			continue
		}
		item, err := r.ReadValue(ctx, strings.TrimPrefix(k, prefixWithColon))
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, service.NewEntityNotFoundError("Entity not found", nil)
	}
	return items, nil
}

func (r *redisCache[T]) generateKey(key string) string {
	return r.prefix + ":" + key
}
