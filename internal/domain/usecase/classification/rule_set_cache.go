package classification

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
)

// RuleSetLoader reads an entity's rule set from storage
type RuleSetLoader func(ctx context.Context, entityID string) (*entity.RuleSet, error)

// RuleSetCache keeps one rule-set snapshot per entity until a rule mutation invalidates it.
// Snapshots are never modified after they are handed out, so a batch holding one keeps
// a stable view even when the entity is invalidated mid-batch.
type RuleSetCache struct {
	mu          sync.RWMutex
	sets        map[string]*entity.RuleSet
	generations map[string]uint64
	group       singleflight.Group
	load        RuleSetLoader
}

// NewRuleSetCache creates an empty cache backed by load
func NewRuleSetCache(load RuleSetLoader) *RuleSetCache {
	return &RuleSetCache{
		sets:        make(map[string]*entity.RuleSet),
		generations: make(map[string]uint64),
		load:        load,
	}
}

// Get returns the cached snapshot or loads it. Concurrent misses for the
// same entity share one load.
func (c *RuleSetCache) Get(ctx context.Context, entityID string) (*entity.RuleSet, error) {
	c.mu.RLock()
	rs, ok := c.sets[entityID]
	c.mu.RUnlock()
	if ok {
		return rs, nil
	}

	v, err, _ := c.group.Do(entityID, func() (any, error) {
		c.mu.RLock()
		generation := c.generations[entityID]
		c.mu.RUnlock()

		loaded, err := c.load(ctx, entityID)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		// An invalidation during the load means the result may already be stale
		if c.generations[entityID] == generation {
			c.sets[entityID] = loaded
		}
		c.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*entity.RuleSet), nil
}

// Invalidate drops the entity's snapshot so the next Get reloads it
func (c *RuleSetCache) Invalidate(entityID string) {
	c.mu.Lock()
	delete(c.sets, entityID)
	c.generations[entityID]++
	c.mu.Unlock()
	c.group.Forget(entityID)
}
