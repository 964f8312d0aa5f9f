package usecases

import (
	"context"

	"pulse-share/internal/domain"
	"pulse-share/internal/metrics"
	"pulse-share/pkg/log"

	"golang.org/x/sync/singleflight"
)

// ShareCache defines the interface for caching generated share sets.
type ShareCache interface {
	Get(ctx context.Context, ct domain.ContentType, item domain.ContentItem) (domain.ShareSet, bool)
	Set(ctx context.Context, ct domain.ContentType, item domain.ContentItem, set domain.ShareSet)
}

// KeyFunc derives the cache key for an item.
type KeyFunc func(ct domain.ContentType, item domain.ContentItem) string

// GetShareUseCase handles share generation with a cache-first strategy.
type GetShareUseCase struct {
	cache     ShareCache
	generator *GenerateShareUseCase
	key       KeyFunc
	group     singleflight.Group
}

type shareResult struct {
	set    domain.ShareSet
	source domain.Source
}

// NewGetShareUseCase creates a new GetShareUseCase.
func NewGetShareUseCase(cache ShareCache, generator *GenerateShareUseCase, key KeyFunc) *GetShareUseCase {
	return &GetShareUseCase{
		cache:     cache,
		generator: generator,
		key:       key,
	}
}

// Execute returns a cached share set when one exists, otherwise generates one.
// Only remote results are cached, so callers without a token and items
// without an id bypass the cache entirely. Concurrent misses for the same key
// share one generation, which runs detached from any single caller's ctx.
// Returned sets are copies and safe to modify.
func (uc *GetShareUseCase) Execute(ctx context.Context, ct domain.ContentType, item domain.ContentItem, token string) (domain.ShareSet, domain.Source, error) {
	if item == nil || item.Base().ID == "" || token == "" {
		return uc.generator.Execute(ctx, ct, item, token)
	}

	if set, found := uc.cache.Get(ctx, ct, item); found {
		log.GlobalDebugCtx(ctx, "cache hit", "content_type", string(ct), "content_id", item.Base().ID)
		metrics.RecordGeneration(ct, domain.SourceCache)
		return set.Clone(), domain.SourceCache, nil
	}

	log.GlobalDebugCtx(ctx, "cache miss, generating", "content_type", string(ct), "content_id", item.Base().ID)

	flightCtx := context.WithoutCancel(ctx)
	ch := uc.group.DoChan(uc.key(ct, item), func() (interface{}, error) {
		set, source, err := uc.generator.Execute(flightCtx, ct, item, token)
		if err != nil {
			return nil, err
		}
		if source == domain.SourceRemote {
			uc.cache.Set(flightCtx, ct, item, set)
		}
		return shareResult{set: set, source: source}, nil
	})

	select {
	case <-ctx.Done():
		return nil, "", ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return nil, "", r.Err
		}
		res := r.Val.(shareResult)
		return res.set.Clone(), res.source, nil
	}
}
