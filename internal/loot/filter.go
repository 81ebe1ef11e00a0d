package loot

import (
	"strings"

	"github.com/osse101/LootBot_Go/internal/domain"
)

// Result limits
const (
	DefaultLimit = 10
	MinLimit     = 1
	MaxLimit     = 50
)

// Query holds the optional filter parameters for a catalog search. All set
// fields must match (logical AND); within the Tags list one match suffices.
type Query struct {
	Rarity   string
	Category string
	Subtype  string
	Tags     string // comma-separated
	Limit    int    // clamped to [MinLimit, MaxLimit], never rejected
}

// Result is a bounded, ordered sequence of matching items. Total is the
// match count before truncation so callers can render "showing N of M".
type Result struct {
	Items []domain.Item
	Total int
}

// ClampLimit clamps a requested result limit into [MinLimit, MaxLimit].
// Zero is below the range and clamps to MinLimit like any other low value;
// defaulting an absent limit is the caller's job.
func ClampLimit(n int) int {
	switch {
	case n < MinLimit:
		return MinLimit
	case n > MaxLimit:
		return MaxLimit
	}
	return n
}

// Filter applies the query to the snapshot, preserving catalog order.
//
// Zero matches is an empty result, not an error; InvalidFilterError is
// returned only for structurally invalid input (a rarity outside the enum).
// The tag filter is a no-op when the catalog carries no tag data.
func (c *Catalog) Filter(q Query) (*Result, error) {
	var rarity domain.Rarity
	if q.Rarity != "" {
		parsed, err := domain.ParseRarity(q.Rarity)
		if err != nil {
			return nil, err
		}
		rarity = parsed
	}

	category := strings.TrimSpace(q.Category)
	subtype := strings.ToLower(strings.TrimSpace(q.Subtype))

	var tags []string
	if c.HasTags {
		tags = SplitTags(q.Tags)
	}

	limit := ClampLimit(q.Limit)
	result := &Result{}
	for _, item := range c.Items {
		if rarity != "" && !strings.EqualFold(string(item.Rarity), string(rarity)) {
			continue
		}
		if category != "" && !strings.EqualFold(item.Category, category) {
			continue
		}
		if subtype != "" && !strings.Contains(strings.ToLower(item.Subtype), subtype) {
			continue
		}
		if len(tags) > 0 && !hasAnyTag(item, tags) {
			continue
		}

		result.Total++
		if len(result.Items) < limit {
			result.Items = append(result.Items, item)
		}
	}

	return result, nil
}

func hasAnyTag(item domain.Item, tags []string) bool {
	for _, t := range tags {
		if item.HasTag(t) {
			return true
		}
	}
	return false
}
