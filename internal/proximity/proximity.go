package proximity

import (
	"cmp"
	"context"
	"discovery/internal/config"
	"discovery/pkg/domain"
	"discovery/pkg/geo"
	"discovery/pkg/logger"
	"discovery/pkg/serrors"
	"discovery/pkg/storage"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultRadiusKm is used when a query has no radius.
	DefaultRadiusKm = 2.0
	// MaxRadiusKm is the largest accepted radius.
	MaxRadiusKm = 50.0
	// DefaultLimit is used when a query has no limit.
	DefaultLimit = 20
	// MaxLimit is the largest accepted limit.
	MaxLimit = 100
)

// Options configure a Finder.
type Options struct {
	// Center is used for queries without coordinates.
	Center geo.Point
	// CacheTTL and CacheSize size the result cache. A zero value disables it.
	CacheTTL  time.Duration
	CacheSize int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Center:    geo.Point{Lat: cfg.Proximity.CenterLat, Lon: cfg.Proximity.CenterLon},
		CacheTTL:  cfg.Proximity.CacheTTL,
		CacheSize: cfg.Proximity.CacheSize,
	}
}

type finder struct {
	options Options
	storage storage.CatalogStorage
	cache   *resultCache
	now     func() time.Time
}

// Nearby resolves q against the catalog: a bounding box narrows the rows read
// from storage and an exact haversine check keeps only those within the radius.
// Results are ordered by distance, ties broken by listing reference.
func (f *finder) Nearby(ctx context.Context, q Query) ([]Result, error) {
	q, err := f.normalize(q)
	if err != nil {
		return nil, err
	}

	key := cacheKey(q)
	if res, ok := f.cache.get(key); ok {
		return res, nil
	}

	now := f.now()
	box := geo.NewBoundingBox(*q.Center, q.RadiusKm)

	var results []Result
	for _, kind := range q.Kinds {
		items, err := f.storage.ItemsInBox(ctx, kind, storage.BoxQuery{
			Box:       box,
			Category:  q.Category,
			EndsAfter: now,
		})
		if err != nil {
			return nil, fmt.Errorf("could not query %s in box: %w", kind, err)
		}

		for _, it := range items {
			if it.Ended(now) {
				continue
			}
			if q.UpcomingOnly && it.IsEvent() && !it.StartsAt.After(now) {
				continue
			}
			d := geo.Haversine(*q.Center, it.Location)
			if d > q.RadiusKm {
				continue
			}
			results = append(results, Result{Item: it, DistanceKm: d})
		}
	}

	slices.SortFunc(results, func(a, b Result) int {
		if c := cmp.Compare(a.DistanceKm, b.DistanceKm); c != 0 {
			return c
		}

		return cmp.Compare(a.Item.Ref.String(), b.Item.Ref.String())
	})
	if len(results) > q.Limit {
		results = results[:q.Limit]
	}
	if results == nil {
		results = []Result{}
	}

	logger.Debug(ctx, "nearby resolved",
		zap.Float64("radiusKm", q.RadiusKm),
		zap.Int("results", len(results)),
	)
	f.cache.add(key, results)

	return results, nil
}

// normalize applies defaults and validates q.
func (f *finder) normalize(q Query) (Query, error) {
	if q.Center == nil {
		c := f.options.Center
		q.Center = &c
	}
	if !q.Center.Valid() {
		return q, serrors.With(serrors.ErrBadRequest, "invalid coordinates")
	}

	switch {
	case q.RadiusKm == 0:
		q.RadiusKm = DefaultRadiusKm
	case q.RadiusKm < 0 || q.RadiusKm > MaxRadiusKm || math.IsNaN(q.RadiusKm):
		return q, serrors.With(serrors.ErrBadRequest, "radius must be in (0, %g] km", MaxRadiusKm)
	}

	switch {
	case q.Limit == 0:
		q.Limit = DefaultLimit
	case q.Limit < 0 || q.Limit > MaxLimit:
		return q, serrors.With(serrors.ErrBadRequest, "limit must be in [1, %d]", MaxLimit)
	}

	// categories are stored lowercased
	q.Category = strings.ToLower(strings.TrimSpace(q.Category))

	kinds := kindsOrAll(q.Kinds)
	q.Kinds = make([]domain.ItemKind, 0, len(kinds))
	for _, k := range kinds {
		if !k.Valid() {
			return q, serrors.With(serrors.ErrBadRequest, "unknown kind %q", k)
		}
		if !slices.Contains(q.Kinds, k) {
			q.Kinds = append(q.Kinds, k)
		}
	}

	return q, nil
}

// New creates a Finder reading listings from st.
func New(st storage.CatalogStorage, options Options) Finder {
	if !options.Center.Valid() || options.Center.IsZero() {
		options.Center = geo.Denver
	}

	return &finder{
		options: options,
		storage: st,
		cache:   newResultCache(options.CacheSize, options.CacheTTL),
		now:     time.Now,
	}
}
