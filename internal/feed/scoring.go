package feed

import (
	"cmp"
	"discovery/internal/config"
	"discovery/pkg/domain"
	"discovery/pkg/geo"
	"math"
	"slices"
	"time"
)

const (
	// RecencyHalfLife is the listing age at which recency halves.
	RecencyHalfLife = 72 * time.Hour
	// UrgencyHorizon is how far ahead an upcoming event starts gaining urgency.
	UrgencyHorizon = 72 * time.Hour
	// MaxProximityKm is the distance at which proximity reaches zero.
	MaxProximityKm = 25.0
	// SocialSaturation is the number of saves by followed users that maxes
	// out their share of the social component.
	SocialSaturation = 3.0
)

// Weights are the relative importance of each score component.
type Weights struct {
	Affinity   float64 `json:"affinity"`
	Popularity float64 `json:"popularity"`
	Recency    float64 `json:"recency"`
	Social     float64 `json:"social"`
	Proximity  float64 `json:"proximity"`
	Urgency    float64 `json:"urgency"`
}

// DefaultWeights is the production weighting.
var DefaultWeights = Weights{ //nolint: gochecknoglobals
	Affinity:   0.30,
	Popularity: 0.20,
	Recency:    0.15,
	Social:     0.15,
	Proximity:  0.10,
	Urgency:    0.10,
}

// WeightsFromConfig reads the weights from the application config.
func WeightsFromConfig(cfg *config.Config) Weights {
	return Weights{
		Affinity:   cfg.Feed.AffinityWeight,
		Popularity: cfg.Feed.PopularityWeight,
		Recency:    cfg.Feed.RecencyWeight,
		Social:     cfg.Feed.SocialWeight,
		Proximity:  cfg.Feed.ProximityWeight,
		Urgency:    cfg.Feed.UrgencyWeight,
	}
}

// Normalize scales w so the weights sum to one. Negative weights count as
// zero; when nothing remains DefaultWeights is returned.
func (w Weights) Normalize() Weights {
	parts := []*float64{&w.Affinity, &w.Popularity, &w.Recency, &w.Social, &w.Proximity, &w.Urgency}

	sum := 0.0
	for _, p := range parts {
		*p = max(*p, 0)
		sum += *p
	}
	if sum == 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return DefaultWeights
	}
	for _, p := range parts {
		*p /= sum
	}

	return w
}

// Breakdown holds each component of a score, all in [0, 1], and the weighted
// total.
type Breakdown struct {
	Affinity   float64 `json:"affinity"`
	Popularity float64 `json:"popularity"`
	Recency    float64 `json:"recency"`
	Social     float64 `json:"social"`
	Proximity  float64 `json:"proximity"`
	Urgency    float64 `json:"urgency"`
	Total      float64 `json:"total"`
}

// Scored is a listing with its score.
type Scored struct {
	Item      domain.Item `json:"item"`
	Score     float64     `json:"score"`
	Breakdown Breakdown   `json:"breakdown"`
}

// Context is everything about the viewer that scoring needs.
type Context struct {
	Now   time.Time
	Taste TasteVector
	// Followed is the set of curators the viewer follows.
	Followed map[domain.UserID]struct{}
	// FollowedSaves counts saves per listing made by followed curators.
	FollowedSaves map[domain.ItemRef]int
	// Location is the viewer position; nil disables proximity.
	Location *geo.Point
}

// Scorer ranks listings with a fixed set of weights.
type Scorer struct {
	weights Weights
}

// NewScorer normalizes w and returns a Scorer using it.
func NewScorer(w Weights) *Scorer {
	return &Scorer{weights: w.Normalize()}
}

// Weights returns the normalized weights.
func (s *Scorer) Weights() Weights { return s.weights }

// Score computes the breakdown of it. maxSaves is the largest SaveCount of the
// pool it was drawn from.
func (s *Scorer) Score(it domain.Item, c *Context, maxSaves int) Breakdown {
	b := Breakdown{
		Affinity:   affinity(it, c.Taste),
		Popularity: popularity(it.SaveCount, maxSaves),
		Recency:    recency(it.CreatedAt, c.Now),
		Social:     social(it, c),
		Proximity:  proximity(it.Location, c.Location),
		Urgency:    urgency(it, c.Now),
	}
	w := s.weights
	b.Total = w.Affinity*b.Affinity +
		w.Popularity*b.Popularity +
		w.Recency*b.Recency +
		w.Social*b.Social +
		w.Proximity*b.Proximity +
		w.Urgency*b.Urgency

	return b
}

// Rank scores items and orders them by descending score, ties broken by
// listing reference so the order is stable across calls.
func (s *Scorer) Rank(items []domain.Item, c *Context) []Scored {
	maxSaves := 0
	for _, it := range items {
		maxSaves = max(maxSaves, it.SaveCount)
	}

	out := make([]Scored, len(items))
	for i, it := range items {
		b := s.Score(it, c, maxSaves)
		out[i] = Scored{Item: it, Score: b.Total, Breakdown: b}
	}
	slices.SortFunc(out, func(a, b Scored) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}

		return cmp.Compare(a.Item.Ref.String(), b.Item.Ref.String())
	})

	return out
}

func affinity(it domain.Item, taste TasteVector) float64 {
	if taste.Empty() {
		return 0
	}

	tagSum, matched := 0.0, 0
	for _, tag := range it.Tags {
		if w, ok := taste.Tags[tag]; ok {
			tagSum += w
			matched++
		}
	}
	tagScore := 0.0
	if matched > 0 {
		tagScore = tagSum / float64(matched)
	}

	return 0.7*taste.Categories[it.Category] + 0.3*tagScore
}

func popularity(saves, maxSaves int) float64 {
	if maxSaves <= 0 || saves <= 0 {
		return 0
	}

	return math.Log1p(float64(saves)) / math.Log1p(float64(maxSaves))
}

func recency(createdAt, now time.Time) float64 {
	age := now.Sub(createdAt)
	if age <= 0 {
		return 1
	}

	return math.Pow(0.5, float64(age)/float64(RecencyHalfLife))
}

func social(it domain.Item, c *Context) float64 {
	score := 0.0
	if _, ok := c.Followed[it.CuratorID]; ok {
		score += 0.6
	}
	if n := c.FollowedSaves[it.Ref]; n > 0 {
		score += 0.4 * math.Min(1, float64(n)/SocialSaturation)
	}

	return score
}

func proximity(at geo.Point, viewer *geo.Point) float64 {
	if viewer == nil {
		return 0
	}

	return math.Max(0, 1-geo.Haversine(*viewer, at)/MaxProximityKm)
}

func urgency(it domain.Item, now time.Time) float64 {
	if !it.IsEvent() || it.Ended(now) {
		return 0
	}
	until := it.StartsAt.Sub(now)
	if until <= 0 {
		return 1
	}
	if until >= UrgencyHorizon {
		return 0
	}

	return 1 - float64(until)/float64(UrgencyHorizon)
}
