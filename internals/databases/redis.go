package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"olympiadku_backend/internals/configs"
)

var Cache *RedisCache

/* =========================================================
   REDIS CACHE
   Kontrak minimal: Get / SetWithTTL / DeleteByPrefix.
   Hasil komputasi disimpan sebagai JSON string.
========================================================= */

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(url string) (*RedisCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisCache{client: client}, nil
}

// ConnectRedis: init cache global. Redis mati ≠ fatal; pipeline tetap jalan
// dari source of truth (DB), cache nil-safe di semua call site.
func ConnectRedis() {
	rc, err := NewRedisCache(configs.RedisURL)
	if err != nil {
		log.Printf("⚠️ Redis tidak tersedia, cache dimatikan: %v", err)
		return
	}
	Cache = rc
	log.Println("✅ Redis connected.")
}

// Get: cache miss → ("", false, nil)
func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	if c == nil {
		return "", false, nil
	}
	data, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	} else if err != nil {
		return "", false, fmt.Errorf("redis get failed: %w", err)
	}
	return data, true, nil
}

func (c *RedisCache) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	if c == nil {
		return nil
	}
	return c.client.Set(ctx, key, value, ttl).Err()
}

// DeleteByPrefix: hapus semua key dengan prefix tertentu (SCAN + DEL),
// balikin jumlah key yang terhapus.
func (c *RedisCache) DeleteByPrefix(ctx context.Context, prefix string) (int, error) {
	if c == nil {
		return 0, nil
	}
	deleted := 0
	iter := c.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return deleted, fmt.Errorf("failed to delete key %s: %w", iter.Val(), err)
		}
		deleted++
	}
	if err := iter.Err(); err != nil {
		return deleted, fmt.Errorf("scan failed for prefix %s: %w", prefix, err)
	}
	return deleted, nil
}

func (c *RedisCache) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
