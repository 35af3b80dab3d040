// Package memory holds in-process adapters used when no external store is
// configured.
package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultSize bounds the number of cached pages.
const DefaultSize = 1024

// PageCacheMemory is a process-local page cache with a fixed TTL.
type PageCacheMemory struct {
	lru *expirable.LRU[string, []byte]
}

func NewPageCacheMemory(size int, ttl time.Duration) *PageCacheMemory {
	if size <= 0 {
		size = DefaultSize
	}
	return &PageCacheMemory{lru: expirable.NewLRU[string, []byte](size, nil, ttl)}
}

func (m *PageCacheMemory) Get(_ context.Context, key string) ([]byte, bool, error) {
	body, ok := m.lru.Get(key)
	return body, ok, nil
}

// Set stores a private copy of body so later writes by the caller cannot leak
// into the cached page.
func (m *PageCacheMemory) Set(_ context.Context, key string, body []byte) error {
	cp := make([]byte, len(body))
	copy(cp, body)
	m.lru.Add(key, cp)
	return nil
}

func (m *PageCacheMemory) Clear(context.Context) error {
	m.lru.Purge()
	return nil
}
