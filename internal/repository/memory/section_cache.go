package memory

import (
	"context"
	"time"

	"notebook-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// SectionLoader fetches a user's section tree from the persistence
// gateway on a cache miss.
type SectionLoader func(ctx context.Context, userId string) ([]*entity.Section, error)

// ISectionCache is the single entry point for section-tree reads. The
// cache is an optimization only; a lost entry costs a reload, never
// correctness.
type ISectionCache interface {
	GetSections(ctx context.Context, userId string, load SectionLoader) ([]*entity.Section, error)
	Invalidate(userId string)
}

type SectionCache struct {
	cache *cache.Cache
}

func NewSectionCache() *SectionCache {
	// Default expiration of 1 hour, expired entries purged every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SectionCache{
		cache: c,
	}
}

// GetSections returns the cached snapshot for userId, loading and
// storing it on a miss. A failed load is returned to the caller and
// never cached. Concurrent misses for the same user may both load; the
// stored value is always a complete loader result.
func (c *SectionCache) GetSections(ctx context.Context, userId string, load SectionLoader) ([]*entity.Section, error) {
	if x, found := c.cache.Get(userId); found {
		return x.([]*entity.Section), nil
	}

	sections, err := load(ctx, userId)
	if err != nil {
		return nil, err
	}

	c.cache.Set(userId, sections, cache.DefaultExpiration)
	return sections, nil
}

// Invalidate drops the cached entry for userId. Entries of other users
// are untouched.
func (c *SectionCache) Invalidate(userId string) {
	c.cache.Delete(userId)
}
