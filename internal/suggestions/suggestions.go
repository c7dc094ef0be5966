package suggestions

import (
	"context"
	"discovery/internal/config"
	"discovery/internal/feed"
	"discovery/pkg/curator"
	"discovery/pkg/domain"
	"discovery/pkg/logger"
	"discovery/pkg/metrics"
	"discovery/pkg/serrors"
	"discovery/pkg/storage"
	"fmt"
	"maps"
	"slices"
	"time"

	"go.uber.org/zap"
)

// Options configure the suggestion pipeline. They are typically derived from
// application configuration.
type Options struct {
	// Weights are the feed weights used to score candidates.
	Weights feed.Weights
	// EventWindow limits candidate events to those starting within it.
	EventWindow time.Duration
	// PoolSize caps the candidate pool across all kinds.
	PoolSize int
	// ShortlistSize is how many diversified candidates the curator sees.
	ShortlistSize int
	// Count is the number of suggestions in a batch.
	Count int
	Diversity DiversityOptions
	// TTL is the age after which a batch is stale.
	TTL time.Duration
	// ActiveWindow and SweepLimit select the users refreshed by Sweep.
	ActiveWindow time.Duration
	SweepLimit   int
	// MaxAttempts is passed to River for generation jobs.
	MaxAttempts int
	// RefreshPeriod makes generation jobs unique per user within the period.
	// Zero only dedupes jobs that are still queued or running.
	RefreshPeriod time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Weights:       feed.WeightsFromConfig(cfg),
		EventWindow:   cfg.Feed.EventWindow,
		PoolSize:      cfg.Suggestions.PoolSize,
		ShortlistSize: cfg.Suggestions.ShortlistSize,
		Count:         cfg.Suggestions.Count,
		Diversity: DiversityOptions{
			MaxPerCategory: cfg.Suggestions.MaxPerCategory,
			MaxPerVenue:    cfg.Suggestions.MaxPerVenue,
			ExploreEvery:   cfg.Suggestions.ExploreEvery,
		},
		TTL:           cfg.Suggestions.TTL,
		ActiveWindow:  cfg.Suggestions.ActiveWindow,
		SweepLimit:    cfg.Suggestions.SweepLimit,
		MaxAttempts:   cfg.Suggestions.MaxAttempts,
		RefreshPeriod: cfg.Suggestions.RefreshPeriod,
	}
}

// favoriteCount is how many top taste categories exploration steers away from.
const favoriteCount = 3

// topTagCount is how many top tags are sent to the curator.
const topTagCount = 5

type suggester struct {
	options Options
	storage storage.AllStorage
	// curator is nil when AI curation is disabled.
	curator curator.Curator
	scorer  *feed.Scorer
	now     func() time.Time
}

// Generate runs the whole pipeline for userID and stores the result.
func (s *suggester) Generate(ctx context.Context, userID domain.UserID) (*domain.SuggestionBatch, error) {
	start := time.Now()
	now := s.now()
	ctx = logger.WithFields(ctx, zap.Stringer("userID", userID))

	sc, err := feed.LoadContext(ctx, s.storage, userID, now, nil)
	if err != nil {
		return nil, fmt.Errorf("could not load viewer context: %w", err)
	}
	pool, err := s.storage.Candidates(ctx, storage.CandidateQuery{
		Now:         now,
		EventWindow: s.options.EventWindow,
		ExcludeUser: &userID,
		Limit:       uint(max(s.options.PoolSize, 0)), //nolint: gosec
	})
	if err != nil {
		return nil, fmt.Errorf("could not get candidates: %w", err)
	}
	pool = slices.DeleteFunc(pool, func(it domain.Item) bool { return it.Ended(now) })

	favorites := sc.Taste.TopCategories(favoriteCount)
	diversified := Diversify(s.scorer.Rank(pool, sc), favorites, s.options.Diversity)
	shortlist := diversified[:min(s.options.ShortlistSize, len(diversified))]

	batch := domain.SuggestionBatch{
		UserID:      userID,
		Source:      domain.SuggestionSourceDeterministic,
		GeneratedAt: now,
	}
	outcome := "disabled"
	if s.curator != nil && len(shortlist) > 0 {
		picks, err := s.curator.Curate(ctx, curator.Request{
			UserID:        userID,
			TopCategories: favorites,
			TopTags:       topKeys(sc.Taste.Tags, topTagCount),
			Candidates:    candidates(shortlist),
			Count:         s.options.Count,
			Now:           now,
		})
		switch {
		case err != nil:
			outcome = "error"
			logger.Warn(ctx, "curator failed, using deterministic suggestions", zap.Error(err))
		default:
			items, valid := merge(picks, shortlist, diversified, s.options.Count, s.scorer.Weights())
			if valid > 0 {
				outcome = "ok"
				batch.Source = domain.SuggestionSourceAI
				batch.Items = items
			} else {
				outcome = "empty"
				logger.Warn(ctx, "curator returned no valid pick", zap.Int("picks", len(picks)))
			}
		}
	}
	if batch.Source == domain.SuggestionSourceDeterministic {
		batch.Items = deterministic(diversified, s.options.Count, s.scorer.Weights())
	}
	metrics.CuratorOutcomes.WithLabelValues(string(batch.Source), outcome).Inc()

	if err := s.storage.StoreSuggestions(ctx, batch); err != nil {
		return nil, fmt.Errorf("could not store suggestions: %w", err)
	}
	metrics.RankingDuration.WithLabelValues("suggestions").Observe(time.Since(start).Seconds())
	logger.Info(ctx, "suggestions generated",
		zap.String("source", string(batch.Source)),
		zap.Int("pool", len(pool)),
		zap.Int("items", len(batch.Items)),
	)

	return &batch, nil
}

// Latest returns the stored batch of userID. A missing batch enqueues a
// generation and reports NOT_FOUND; a stale one enqueues a refresh and is
// still returned.
func (s *suggester) Latest(ctx context.Context, userID domain.UserID) (*Latest, error) {
	batch, err := s.storage.LatestSuggestions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get latest suggestions: %w", err)
	}
	if batch == nil {
		if _, err := s.Refresh(ctx, userID); err != nil {
			return nil, err
		}

		return nil, serrors.With(serrors.ErrNotFound, "suggestions are being generated")
	}

	stale := s.options.TTL > 0 && s.now().Sub(batch.GeneratedAt) > s.options.TTL
	if stale {
		if _, err := s.Refresh(ctx, userID); err != nil {
			logger.Error(ctx, "could not enqueue stale suggestions refresh",
				zap.Stringer("userID", userID),
				zap.Error(err),
			)
		}
	}

	return &Latest{Batch: *batch, Stale: stale}, nil
}

func (s *suggester) Refresh(ctx context.Context, userID domain.UserID) (bool, error) {
	added, err := s.storage.AddJob(ctx, GenerateArgs{
		UserID:      userID,
		maxAttempts: s.options.MaxAttempts,
		period:      s.options.RefreshPeriod,
	}, nil)
	if err != nil {
		return false, fmt.Errorf("could not enqueue suggestions refresh: %w", err)
	}

	return added, nil
}

func (s *suggester) Sweep(ctx context.Context) (int, error) {
	users, err := s.storage.ActiveUsers(ctx,
		s.now().Add(-s.options.ActiveWindow),
		uint(max(s.options.SweepLimit, 0))) //nolint: gosec
	if err != nil {
		return 0, fmt.Errorf("could not get active users: %w", err)
	}

	enqueued := 0
	for _, userID := range users {
		added, err := s.Refresh(ctx, userID)
		if err != nil {
			return enqueued, err
		}
		if added {
			enqueued++
		}
	}
	logger.Info(ctx, "suggestions sweep enqueued refreshes",
		zap.Int("active", len(users)),
		zap.Int("enqueued", enqueued),
	)

	return enqueued, nil
}

// topKeys returns up to n keys of m by descending value.
func topKeys(m map[string]float64, n int) []string {
	keys := slices.Sorted(maps.Keys(m))
	slices.SortStableFunc(keys, func(a, b string) int {
		switch {
		case m[a] > m[b]:
			return -1
		case m[a] < m[b]:
			return 1
		default:
			return 0
		}
	})

	return keys[:min(n, len(keys))]
}

// New creates a Suggester. cur may be nil, in which case every batch is
// curated deterministically.
func New(st storage.AllStorage, cur curator.Curator, options Options) Suggester {
	return &suggester{
		options: options,
		storage: st,
		curator: cur,
		scorer:  feed.NewScorer(options.Weights),
		now:     time.Now,
	}
}
