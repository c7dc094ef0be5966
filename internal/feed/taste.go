package feed

import (
	"cmp"
	"discovery/pkg/domain"
	"maps"
	"math"
	"slices"
	"time"
)

const (
	// TasteLookback bounds how far back signals are read.
	TasteLookback = 180 * 24 * time.Hour
	// TasteHalfLife is the age at which a signal counts half.
	TasteHalfLife = 30 * 24 * time.Hour
)

// signalWeights is the contribution of each action before decay.
var signalWeights = map[domain.Action]float64{ //nolint: gochecknoglobals
	domain.ActionSave:    3,
	domain.ActionView:    1,
	domain.ActionClick:   2,
	domain.ActionShare:   3,
	domain.ActionDismiss: -2,
}

// TasteVector is a user's normalized preference per category, tag and price
// level. The strongest entry of each dimension is 1 and no entry is negative.
type TasteVector struct {
	Categories  map[string]float64 `json:"categories"`
	Tags        map[string]float64 `json:"tags"`
	PriceLevels map[int]float64    `json:"priceLevels"`
}

// Empty reports whether the vector carries no preference at all.
func (v TasteVector) Empty() bool {
	return len(v.Categories) == 0 && len(v.Tags) == 0 && len(v.PriceLevels) == 0
}

// TopCategories returns up to n categories by descending weight.
func (v TasteVector) TopCategories(n int) []string {
	cats := slices.Collect(maps.Keys(v.Categories))
	slices.SortFunc(cats, func(a, b string) int {
		if c := cmp.Compare(v.Categories[b], v.Categories[a]); c != 0 {
			return c
		}

		return cmp.Compare(a, b)
	})
	if len(cats) > n {
		cats = cats[:n]
	}

	return cats
}

// BuildTaste aggregates signals into a TasteVector. Signals older than
// TasteLookback are ignored and the rest decay with TasteHalfLife.
func BuildTaste(signals []domain.Signal, now time.Time) TasteVector {
	cats := map[string]float64{}
	tags := map[string]float64{}
	prices := map[int]float64{}

	for _, s := range signals {
		w, ok := signalWeights[s.Action]
		if !ok {
			continue
		}
		age := now.Sub(s.OccurredAt)
		if age > TasteLookback {
			continue
		}
		if age < 0 {
			age = 0
		}
		w *= math.Pow(0.5, float64(age)/float64(TasteHalfLife))

		if s.Item.Category != "" {
			cats[s.Item.Category] += w
		}
		for _, tag := range s.Item.Tags {
			tags[tag] += w
		}
		prices[s.Item.PriceLevel] += w
	}

	return TasteVector{
		Categories:  normalize(cats),
		Tags:        normalize(tags),
		PriceLevels: normalize(prices),
	}
}

// normalize drops non-positive entries and scales the rest by the maximum.
func normalize[K comparable](m map[K]float64) map[K]float64 {
	maxW := 0.0
	for _, w := range m {
		maxW = max(maxW, w)
	}

	out := make(map[K]float64, len(m))
	if maxW <= 0 {
		return out
	}
	for k, w := range m {
		if w > 0 {
			out[k] = w / maxW
		}
	}

	return out
}
