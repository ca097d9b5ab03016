package config

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig backs the rate limiter and the inventory event channels
type RedisConfig struct {
	Host        string
	Port        string
	Password    string
	DB          int
	PoolSize    int
	DialTimeout time.Duration
}

func DefaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		Host:        getEnvWithDefault("REDIS_HOST", "localhost"),
		Port:        getEnvWithDefault("REDIS_PORT", "6379"),
		Password:    getEnvWithDefault("REDIS_PASSWORD", ""),
		DB:          getEnvIntWithDefault("REDIS_DB", 0),
		PoolSize:    getEnvIntWithDefault("REDIS_POOL_SIZE", 0), // 0 keeps the go-redis default
		DialTimeout: getEnvDurationWithDefault("REDIS_DIAL_TIMEOUT", 5*time.Second),
	}
}

func (c *RedisConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// GetClient connects and pings so a wrong address fails at startup instead of on the first request
func (c *RedisConfig) GetClient(ctx context.Context) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        c.Addr(),
		Password:    c.Password,
		DB:          c.DB,
		PoolSize:    c.PoolSize,
		DialTimeout: c.DialTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", c.Addr(), err)
	}
	return client, nil
}
