package loot

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/osse101/LootBot_Go/internal/domain"
	"github.com/osse101/LootBot_Go/internal/metrics"
)

// Service owns the loader, the current snapshot, and the query result cache.
// Commands go through it rather than touching the store directly.
type Service struct {
	loader *Loader
	store  *Store
	cache  *queryCache

	mu      sync.Mutex
	lastErr error
}

// NewService creates a service around the given loader. No data is loaded
// until Reload is called.
func NewService(loader *Loader) *Service {
	return &Service{
		loader: loader,
		store:  NewStore(),
		cache:  newQueryCache(),
	}
}

// Current returns the installed snapshot, or nil before the first successful
// load.
func (s *Service) Current() *Catalog {
	return s.store.Current()
}

// LastError returns the error from the most recent load attempt, or nil if
// it succeeded.
func (s *Service) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Reload runs the loader and, on success, atomically swaps in the new
// snapshot and purges the query cache. On failure the previous snapshot
// stays installed untouched and the loader's error is returned as-is, so a
// bad reload never takes the live dataset offline.
func (s *Service) Reload() (*Catalog, error) {
	catalog, err := s.loader.Load()

	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()

	if err != nil {
		metrics.CatalogReloads.WithLabelValues(metrics.ResultFailure).Inc()
		slog.Error("Catalog load failed", "error", err)
		return nil, err
	}

	s.store.Replace(catalog)
	s.cache.Purge()

	metrics.CatalogReloads.WithLabelValues(metrics.ResultSuccess).Inc()
	metrics.CatalogItems.Set(float64(catalog.Len()))
	metrics.CatalogDropped.Set(float64(catalog.Dropped))
	slog.Info("Catalog loaded", "items", catalog.Len(), "dropped", catalog.Dropped, "has_tags", catalog.HasTags)

	return catalog, nil
}

// Query filters the current snapshot. Results for identical normalized
// queries are served from the cache until the next reload.
func (s *Service) Query(q Query) (*Result, error) {
	catalog := s.store.Current()
	if catalog == nil {
		// Keep the stored load error in the chain so callers can render
		// what actually went wrong, not just that the catalog is missing.
		if last := s.LastError(); last != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, last)
		}
		return nil, domain.ErrCatalogUnavailable
	}

	key := q.cacheKey()
	if cached, ok := s.cache.Get(key); ok {
		metrics.QueryCacheHits.Inc()
		return cached, nil
	}
	metrics.QueryCacheMisses.Inc()

	result, err := catalog.Filter(q)
	if err != nil {
		metrics.QueryErrorsTotal.Inc()
		return nil, err
	}

	metrics.QueriesTotal.Inc()
	s.cache.Set(key, result)
	return result, nil
}
