package classification

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleSetCache_ConcurrentMissesShareLoad(t *testing.T) {
	var loads atomic.Int32
	release := make(chan struct{})
	cache := NewRuleSetCache(func(ctx context.Context, entityID string) (*entity.RuleSet, error) {
		loads.Add(1)
		<-release
		return &entity.RuleSet{EntityID: entityID}, nil
	})

	var wg sync.WaitGroup
	results := make([]*entity.RuleSet, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rs, err := cache.Get(context.Background(), "entity-1")
			assert.NoError(t, err)
			results[i] = rs
		}(i)
	}
	close(release)
	wg.Wait()

	rs, err := cache.Get(context.Background(), "entity-1")
	require.NoError(t, err)
	for _, r := range results {
		assert.Equal(t, "entity-1", r.EntityID)
	}
	assert.Equal(t, "entity-1", rs.EntityID)
	assert.LessOrEqual(t, loads.Load(), int32(len(results)))
	assert.GreaterOrEqual(t, loads.Load(), int32(1))
}

func TestRuleSetCache_InvalidateDuringLoadIsNotCached(t *testing.T) {
	var cache *RuleSetCache
	calls := 0
	cache = NewRuleSetCache(func(ctx context.Context, entityID string) (*entity.RuleSet, error) {
		calls++
		if calls == 1 {
			// A rule mutation lands while the first load is in flight
			cache.Invalidate(entityID)
		}
		return &entity.RuleSet{EntityID: entityID}, nil
	})

	_, err := cache.Get(context.Background(), "entity-1")
	require.NoError(t, err)
	_, err = cache.Get(context.Background(), "entity-1")
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
}

func TestRuleSetCache_LoadErrorIsNotCached(t *testing.T) {
	calls := 0
	cache := NewRuleSetCache(func(ctx context.Context, entityID string) (*entity.RuleSet, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("db down")
		}
		return &entity.RuleSet{EntityID: entityID}, nil
	})

	_, err := cache.Get(context.Background(), "entity-1")
	require.Error(t, err)
	rs, err := cache.Get(context.Background(), "entity-1")
	require.NoError(t, err)
	assert.Equal(t, "entity-1", rs.EntityID)
}
