package config

import (
	"context"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisClient is nil when REDIS_ADDR is not configured.
var RedisClient *redis.Client

// InitRedis connects to Redis if an address is configured.
func InitRedis(ctx context.Context) {
	if App.RedisAddr == "" {
		Logger.Info("REDIS_ADDR is empty, Redis disabled")
		return
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     App.RedisAddr,
		Password: App.RedisPassword,
		DB:       App.RedisDB,
	})

	s, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		Logger.Fatal("Error connecting to Redis", zap.Error(err))
	}
	Logger.Info("Connected to Redis", zap.String("addr", App.RedisAddr), zap.String("ping", s))
}
