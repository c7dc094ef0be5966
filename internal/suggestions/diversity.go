package suggestions

import (
	"discovery/internal/feed"
	"slices"
)

// DiversityOptions bound how homogeneous the head of a suggestion list may be.
type DiversityOptions struct {
	// MaxPerCategory and MaxPerVenue cap the picks sharing a category or venue.
	// Zero disables the cap.
	MaxPerCategory int
	MaxPerVenue    int
	// ExploreEvery makes every n-th slot prefer a category outside the
	// user's favorites. Zero disables exploration.
	ExploreEvery int
}

// Diversify reorders ranked, which must be sorted by descending score. It walks
// the list greedily, taking the best item that respects the caps; every
// ExploreEvery-th slot first looks for an item outside favorites. Items
// skipped by the caps are appended afterwards in score order, so the result
// is a permutation of ranked.
func Diversify(ranked []feed.Scored, favorites []string, opts DiversityOptions) []feed.Scored {
	remaining := slices.Clone(ranked)
	out := make([]feed.Scored, 0, len(ranked))
	perCategory := map[string]int{}
	perVenue := map[string]int{}

	fits := func(s feed.Scored) bool {
		if opts.MaxPerCategory > 0 && perCategory[s.Item.Category] >= opts.MaxPerCategory {
			return false
		}
		if opts.MaxPerVenue > 0 && perVenue[s.Item.VenueKey()] >= opts.MaxPerVenue {
			return false
		}

		return true
	}

	for len(remaining) > 0 {
		slot := len(out) + 1
		idx := -1
		if opts.ExploreEvery > 0 && len(favorites) > 0 && slot%opts.ExploreEvery == 0 {
			idx = slices.IndexFunc(remaining, func(s feed.Scored) bool {
				return fits(s) && !slices.Contains(favorites, s.Item.Category)
			})
		}
		if idx < 0 {
			idx = slices.IndexFunc(remaining, fits)
		}
		if idx < 0 {
			break
		}

		s := remaining[idx]
		remaining = slices.Delete(remaining, idx, idx+1)
		out = append(out, s)
		perCategory[s.Item.Category]++
		perVenue[s.Item.VenueKey()]++
	}

	return append(out, remaining...)
}
