package cache

import "context"

// PageCache keeps rendered responses for a fixed time-to-live. A hit returns
// exactly the bytes that were stored.
type PageCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, body []byte) error
	// Clear evicts every entry of this cache.
	Clear(ctx context.Context) error
}
