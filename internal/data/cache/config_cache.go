package cache

import (
	"context"
	"encoding/json"
	"time"

	"parking-booking/internal/data/entity"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ConfigCache caches per-vehicle-type pricing config in Redis with a TTL.
// Admin edits invalidate the key explicitly; every miss is re-read from the
// database by the caller and written back here. The cache is best-effort:
// a Redis error is logged and treated as a miss, never bubbled up.
type ConfigCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewConfigCache(client *redis.Client, ttl time.Duration, log *zap.Logger) *ConfigCache {
	return &ConfigCache{
		client: client,
		ttl:    ttl,
		log:    log.With(zap.String("cache", "config")),
	}
}

func key(vehicleType entity.VehicleType) string {
	return "parking_config_" + vehicleType.String()
}

// Get returns the cached config, or nil on miss
func (c *ConfigCache) Get(ctx context.Context, vehicleType entity.VehicleType) *entity.VehicleTypeConfig {
	data, err := c.client.Get(ctx, key(vehicleType)).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		c.log.Warn("Config cache read failed, falling back to database",
			zap.Error(err),
			zap.String("vehicle_type", vehicleType.String()),
		)
		return nil
	}

	var config entity.VehicleTypeConfig
	if err := json.Unmarshal([]byte(data), &config); err != nil {
		c.log.Warn("Config cache entry corrupt, dropping",
			zap.Error(err),
			zap.String("vehicle_type", vehicleType.String()),
		)
		c.client.Del(ctx, key(vehicleType))
		return nil
	}

	return &config
}

func (c *ConfigCache) Set(ctx context.Context, config *entity.VehicleTypeConfig) {
	data, err := json.Marshal(config)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key(config.VehicleType), data, c.ttl).Err(); err != nil {
		c.log.Warn("Config cache write failed",
			zap.Error(err),
			zap.String("vehicle_type", config.VehicleType.String()),
		)
	}
}

// Invalidate drops the cached entry after an admin edit
func (c *ConfigCache) Invalidate(ctx context.Context, vehicleType entity.VehicleType) {
	if err := c.client.Del(ctx, key(vehicleType)).Err(); err != nil {
		c.log.Warn("Config cache invalidation failed",
			zap.Error(err),
			zap.String("vehicle_type", vehicleType.String()),
		)
	}
}
