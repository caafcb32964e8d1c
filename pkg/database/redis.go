package database

import (
	"context"
	"time"

	"parking-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// InitRedis creates the Redis client used by the pricing config cache.
// The cache is best-effort: callers fall through to Postgres when Redis
// is unreachable, so a failed ping here is returned, not fatal.
func InitRedis(config utils.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return client, err
	}

	return client, nil
}
