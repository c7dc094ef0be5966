package proximity

import (
	"discovery/pkg/domain"
	"discovery/pkg/metrics"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// resultCache memoizes resolved queries for a short TTL.
type resultCache struct {
	lru *expirable.LRU[string, []Result]
}

func newResultCache(size int, ttl time.Duration) *resultCache {
	if size <= 0 || ttl <= 0 {
		return nil
	}

	return &resultCache{lru: expirable.NewLRU[string, []Result](size, nil, ttl)}
}

// cacheKey builds the key of a normalized query. Coordinates are rounded to
// three decimals (about 110 m) so that nearby callers share entries.
func cacheKey(q Query) string {
	kinds := make([]string, len(q.Kinds))
	for i, k := range q.Kinds {
		kinds[i] = string(k)
	}
	slices.Sort(kinds)

	return fmt.Sprintf("%s|%s|%.3f,%.3f|%g|%d|%t",
		strings.Join(kinds, ","),
		q.Category,
		q.Center.Lat, q.Center.Lon,
		q.RadiusKm,
		q.Limit,
		q.UpcomingOnly,
	)
}

func (c *resultCache) get(key string) ([]Result, bool) {
	if c == nil {
		return nil, false
	}

	res, ok := c.lru.Get(key)
	if !ok {
		metrics.CacheLookups.WithLabelValues("miss").Inc()

		return nil, false
	}
	metrics.CacheLookups.WithLabelValues("hit").Inc()

	return cloneResults(res), true
}

func (c *resultCache) add(key string, res []Result) {
	if c == nil {
		return
	}
	c.lru.Add(key, cloneResults(res))
}

func (c *resultCache) len() int {
	if c == nil {
		return 0
	}

	return c.lru.Len()
}

// cloneResults copies results deep enough that callers can mutate tags.
func cloneResults(in []Result) []Result {
	out := make([]Result, len(in))
	for i, r := range in {
		out[i] = r
		out[i].Item.Tags = slices.Clone(r.Item.Tags)
	}

	return out
}

// kindsOrAll returns kinds, or every kind when empty.
func kindsOrAll(kinds []domain.ItemKind) []domain.ItemKind {
	if len(kinds) == 0 {
		return slices.Clone(domain.AllItemKinds)
	}

	return kinds
}
