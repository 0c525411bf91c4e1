package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type report struct {
	Total string `json:"total"`
}

func newTestCache(t *testing.T) (*ReportCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(client, time.Minute), mr
}

func TestBuildKey(t *testing.T) {
	id := uuid.MustParse("6f1c2f4e-3d1b-4c55-9f0e-0c3a4b2d1e10")
	assert.Equal(t, "ledger:report:6f1c2f4e-3d1b-4c55-9f0e-0c3a4b2d1e10:7:trial-balance", BuildKey(id, 7, "trial-balance"))
	assert.NotEqual(t, BuildKey(id, 7, "trial-balance"), BuildKey(id, 8, "trial-balance"))
}

func TestFetchJSONCachesLoaderResult(t *testing.T) {
	c, mr := newTestCache(t)
	calls := 0
	loader := func(context.Context) (any, error) {
		calls++
		return report{Total: "100.00"}, nil
	}

	var first, second report
	require.NoError(t, c.FetchJSON(context.Background(), "k", &first, loader))
	require.NoError(t, c.FetchJSON(context.Background(), "k", &second, loader))

	assert.Equal(t, 1, calls)
	assert.Equal(t, "100.00", second.Total)
	assert.True(t, mr.Exists("k"))
	assert.Equal(t, time.Minute, mr.TTL("k"))
}

func TestFetchJSONDoesNotCacheErrors(t *testing.T) {
	c, mr := newTestCache(t)
	boom := errors.New("empty")

	var out report
	err := c.FetchJSON(context.Background(), "k", &out, func(context.Context) (any, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, mr.Exists("k"))
}

func TestFetchJSONCollapsesConcurrentMisses(t *testing.T) {
	c, _ := newTestCache(t)
	var calls atomic.Int32
	release := make(chan struct{})
	loader := func(context.Context) (any, error) {
		calls.Add(1)
		<-release
		return report{Total: "1"}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var out report
			assert.NoError(t, c.FetchJSON(context.Background(), "k", &out, loader))
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}

func TestFetchJSONServesLoaderWhenRedisDown(t *testing.T) {
	c, mr := newTestCache(t)
	mr.Close()

	var out report
	err := c.FetchJSON(context.Background(), "k", &out, func(context.Context) (any, error) {
		return report{Total: "5"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "5", out.Total)
}

func TestNilCacheCallsLoader(t *testing.T) {
	var c *ReportCache
	var out report
	require.NoError(t, c.FetchJSON(context.Background(), "k", &out, func(context.Context) (any, error) {
		return report{Total: "9"}, nil
	}))
	assert.Equal(t, "9", out.Total)
	assert.Error(t, c.FetchJSON(context.Background(), "k", &out, nil))
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := Connect(context.Background(), mr.Addr())
	require.NoError(t, err)
	require.NoError(t, client.Close())

	_, err = Connect(context.Background(), "127.0.0.1:1")
	assert.Error(t, err)
}
