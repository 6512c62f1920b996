package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	exerciseTypesKey = "exercise_types:all"
	exerciseTypesTTL = 12 * time.Hour
)

// RedisCache holds the serialized exercise-type catalogue. The
// catalogue is immutable after seeding, which is what makes caching it
// safe; statistics and session data are never cached.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(redisURL string) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	log.Printf("Connected to Redis at %s", redisURL)
	return &RedisCache{client: client}, nil
}

func (c *RedisCache) GetExerciseTypes(ctx context.Context) ([]byte, error) {
	return c.client.Get(ctx, exerciseTypesKey).Bytes()
}

func (c *RedisCache) SetExerciseTypes(ctx context.Context, data []byte) error {
	return c.client.Set(ctx, exerciseTypesKey, data, exerciseTypesTTL).Err()
}

func (c *RedisCache) InvalidateExerciseTypes(ctx context.Context) error {
	return c.client.Del(ctx, exerciseTypesKey).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
