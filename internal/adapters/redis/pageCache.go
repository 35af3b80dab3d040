package redis

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"yatube/internal/config"
)

const (
	// PagesNamespace prefixes every cached page key.
	PagesNamespace = "yatube:pages"

	scanBatch = 100
)

// PageCacheRedis keeps rendered pages as plain Redis strings under a
// namespace, each with its own expiry.
type PageCacheRedis struct {
	Client    *redis.Client
	Namespace string
	TTL       time.Duration
}

func NewPageCacheRedis(client *redis.Client, namespace string, ttl time.Duration) *PageCacheRedis {
	return &PageCacheRedis{
		Client:    client,
		Namespace: namespace,
		TTL:       ttl,
	}
}

func (r *PageCacheRedis) key(k string) string {
	return r.Namespace + ":" + k
}

func (r *PageCacheRedis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	body, err := r.Client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "redis get page")
	}
	return body, true, nil
}

func (r *PageCacheRedis) Set(ctx context.Context, key string, body []byte) error {
	if err := r.Client.Set(ctx, r.key(key), body, r.TTL).Err(); err != nil {
		return errors.Wrap(err, "redis set page")
	}
	return nil
}

// Clear deletes every key of the namespace. The scan completes before any
// key is deleted, since deleting under an open cursor can make it skip keys.
// Keys written while Clear runs may survive.
func (r *PageCacheRedis) Clear(ctx context.Context) error {
	var keys []string
	iter := r.Client.Scan(ctx, 0, r.key("*"), scanBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return errors.Wrap(err, "redis scan pages")
	}

	for start := 0; start < len(keys); start += scanBatch {
		end := start + scanBatch
		if end > len(keys) {
			end = len(keys)
		}
		if err := r.Client.Del(ctx, keys[start:end]...).Err(); err != nil {
			return errors.Wrap(err, "redis delete pages")
		}
	}

	config.Logger.Info("Page cache cleared", zap.String("namespace", r.Namespace), zap.Int("keys", len(keys)))
	return nil
}
