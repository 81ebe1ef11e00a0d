package loot

import (
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Query cache sizing. This is a politeness cache for repeated identical
// /loot invocations, not a correctness feature: it is purged on every
// successful reload and entries expire on their own shortly after.
const (
	queryCacheSize = 256
	queryCacheTTL  = time.Minute
)

// queryCache memoizes filter results keyed by normalized query parameters.
type queryCache struct {
	lru *expirable.LRU[string, *Result]
}

func newQueryCache() *queryCache {
	return &queryCache{
		lru: expirable.NewLRU[string, *Result](queryCacheSize, nil, queryCacheTTL),
	}
}

func (c *queryCache) Get(key string) (*Result, bool) {
	return c.lru.Get(key)
}

func (c *queryCache) Set(key string, r *Result) {
	c.lru.Add(key, r)
}

// Purge drops all entries. Called after a snapshot swap so a stale result is
// never served against the new catalog.
func (c *queryCache) Purge() {
	c.lru.Purge()
}

// cacheKey normalizes the query into a stable cache key. Case is folded and
// the limit is clamped first, so equivalent queries share an entry.
func (q Query) cacheKey() string {
	parts := []string{
		strings.ToLower(strings.TrimSpace(q.Rarity)),
		strings.ToLower(strings.TrimSpace(q.Category)),
		strings.ToLower(strings.TrimSpace(q.Subtype)),
		strings.Join(SplitTags(q.Tags), ","),
		strconv.Itoa(ClampLimit(q.Limit)),
	}
	return strings.Join(parts, "|")
}
