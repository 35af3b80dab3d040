// Command cacheclear evicts every cached feed page from the shared Redis
// cache. Instances running with the in-memory cache are not affected.
package main

import (
	"context"
	"time"

	"go.uber.org/zap"
	redisadapter "yatube/internal/adapters/redis"
	"yatube/internal/config"
)

func main() {
	config.InitLogger()
	config.InitCache()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	config.InitRedis(ctx)
	if config.RedisClient == nil {
		config.Logger.Fatal("REDIS_ADDR is required to clear the shared page cache")
	}
	defer config.RedisClient.Close()

	pages := redisadapter.NewPageCacheRedis(config.RedisClient, redisadapter.PagesNamespace, config.App.CacheTTL)
	if err := pages.Clear(ctx); err != nil {
		config.Logger.Fatal("Failed to clear page cache", zap.Error(err))
	}
}
