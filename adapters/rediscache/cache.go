package rediscache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/estately/estately/core"
)

const keyPrefix = "estately:"

// Cache implements the listing cache over redis, for deployments where
// several instances should share one catalog snapshot. Values are JSON.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ core.ListingCache = (*Cache)(nil)

func New(client *redis.Client, ttl time.Duration) *Cache {
	if ttl == 0 {
		ttl = 5 * time.Minute
	}
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) Get(ctx context.Context, key string) ([]*core.Property, error) {
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, core.ErrCacheMiss
		}
		return nil, err
	}

	var properties []*core.Property
	if err := json.Unmarshal(raw, &properties); err != nil {
		// A corrupt snapshot behaves as a miss; the next Set overwrites it.
		return nil, core.ErrCacheMiss
	}
	return properties, nil
}

func (c *Cache) Set(ctx context.Context, key string, properties []*core.Property) error {
	raw, err := json.Marshal(properties)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, keyPrefix+key, raw, c.ttl).Err()
}

func (c *Cache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
