package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGet(t *testing.T) {
	c := NewPageCacheMemory(0, time.Minute)
	ctx := context.Background()

	body := []byte("page one")
	require.NoError(t, c.Set(ctx, "index_page:/", body))
	body[0] = 'X'

	got, ok, err := c.Get(ctx, "index_page:/")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "page one", string(got))

	_, ok, _ = c.Get(ctx, "index_page:/?page=2")
	assert.False(t, ok)
}

func TestExpiry(t *testing.T) {
	c := NewPageCacheMemory(10, 50*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v")))
	time.Sleep(120 * time.Millisecond)

	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	c := NewPageCacheMemory(10, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", []byte("1")))
	require.NoError(t, c.Set(ctx, "b", []byte("2")))
	require.NoError(t, c.Clear(ctx))

	for _, k := range []string{"a", "b"} {
		_, ok, _ := c.Get(ctx, k)
		assert.False(t, ok, k)
	}
}

func TestConcurrentReadersSeeSameValue(t *testing.T) {
	c := NewPageCacheMemory(10, time.Minute)
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "k", []byte("stable")))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, ok, _ := c.Get(ctx, "k")
			assert.True(t, ok)
			assert.Equal(t, "stable", string(got))
		}()
	}
	wg.Wait()
}
