package feed

import (
	"context"
	"discovery/internal/config"
	"discovery/pkg/domain"
	"discovery/pkg/logger"
	"discovery/pkg/metrics"
	"discovery/pkg/serrors"
	"discovery/pkg/storage"
	"fmt"
	"slices"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultLimit is the page size when none is requested.
	DefaultLimit = 20
	// MaxLimit is the largest page size.
	MaxLimit = 100
)

// ServiceOptions configure the feed service.
type ServiceOptions struct {
	Weights Weights
	// EventWindow limits the pool to events starting within this window.
	EventWindow time.Duration
	// PoolSize caps the listings that get ranked, across all kinds.
	PoolSize int
}

// NewServiceOptions constructs a ServiceOptions value from the provided application config.
func NewServiceOptions(cfg *config.Config) ServiceOptions {
	return ServiceOptions{
		Weights:     WeightsFromConfig(cfg),
		EventWindow: cfg.Feed.EventWindow,
		PoolSize:    cfg.Feed.PoolSize,
	}
}

type service struct {
	options ServiceOptions
	storage storage.AllStorage
	scorer  *Scorer
	now     func() time.Time
}

// Feed ranks the candidate pool for userID and returns the page selected by
// opts.Cursor. The cursor is the base-10 offset of the first item.
func (s *service) Feed(ctx context.Context, userID domain.UserID, opts Options) (*Page, error) {
	offset, err := parseCursor(opts.Cursor)
	if err != nil {
		return nil, err
	}
	limit := opts.Limit
	switch {
	case limit == 0:
		limit = DefaultLimit
	case limit < 0 || limit > MaxLimit:
		return nil, serrors.With(serrors.ErrBadRequest, "limit must be in [1, %d]", MaxLimit)
	}
	var kinds []domain.ItemKind
	for _, k := range opts.Kinds {
		if !k.Valid() {
			return nil, serrors.With(serrors.ErrBadRequest, "unknown kind %q", k)
		}
		if !slices.Contains(kinds, k) {
			kinds = append(kinds, k)
		}
	}
	if opts.Location != nil && !opts.Location.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid coordinates")
	}

	start := time.Now()
	now := s.now()

	sc, err := LoadContext(ctx, s.storage, userID, now, opts.Location)
	if err != nil {
		return nil, fmt.Errorf("could not load viewer context: %w", err)
	}
	pool, err := s.storage.Candidates(ctx, storage.CandidateQuery{
		Kinds:       kinds,
		Now:         now,
		EventWindow: s.options.EventWindow,
		Limit:       uint(max(s.options.PoolSize, 0)), //nolint: gosec
	})
	if err != nil {
		return nil, fmt.Errorf("could not get feed candidates: %w", err)
	}
	pool = slices.DeleteFunc(pool, func(it domain.Item) bool { return it.Ended(now) })

	ranked := s.scorer.Rank(pool, sc)
	metrics.RankingDuration.WithLabelValues("feed").Observe(time.Since(start).Seconds())
	logger.Debug(ctx, "feed ranked",
		zap.Stringer("userID", userID),
		zap.Int("pool", len(pool)),
		zap.Int("offset", offset),
	)

	page := &Page{Items: []Scored{}}
	if offset >= len(ranked) {
		return page, nil
	}
	end := min(offset+limit, len(ranked))
	page.Items = ranked[offset:end]
	if end < len(ranked) {
		page.NextCursor = strconv.Itoa(end)
	}

	return page, nil
}

func parseCursor(cursor string) (int, error) {
	if cursor == "" {
		return 0, nil
	}
	offset, err := strconv.Atoi(cursor)
	if err != nil || offset < 0 {
		return 0, serrors.With(serrors.ErrBadRequest, "invalid cursor")
	}

	return offset, nil
}

// New creates a feed Ranker backed by st.
func New(st storage.AllStorage, options ServiceOptions) Ranker {
	return &service{
		options: options,
		storage: st,
		scorer:  NewScorer(options.Weights),
		now:     time.Now,
	}
}
