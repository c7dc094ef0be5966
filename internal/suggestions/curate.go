package suggestions

import (
	"discovery/internal/feed"
	"discovery/pkg/curator"
	"discovery/pkg/domain"
	"strings"
)

// maxReasonLen caps curator reasons so they fit a card.
const maxReasonLen = 120

// Reason explains a deterministic pick by its dominant weighted component.
func Reason(s feed.Scored, w feed.Weights) string {
	b := s.Breakdown
	best, reason := 0.0, "Fresh pick"

	candidates := []struct {
		contribution float64
		reason       string
	}{
		{w.Affinity * b.Affinity, "Because you like " + s.Item.Category},
		{w.Popularity * b.Popularity, "Popular in Denver right now"},
		{w.Social * b.Social, "From curators you follow"},
		{w.Proximity * b.Proximity, "Close to you"},
		{w.Urgency * b.Urgency, "Happening soon"},
		{w.Recency * b.Recency, "Fresh pick"},
	}
	for _, c := range candidates {
		if c.contribution > best {
			best, reason = c.contribution, c.reason
		}
	}
	if reason == "Because you like " {
		reason = "Fresh pick"
	}

	return reason
}

// deterministic picks the first count items of the diversified order.
func deterministic(diversified []feed.Scored, count int, w feed.Weights) []domain.Suggestion {
	n := min(count, len(diversified))
	out := make([]domain.Suggestion, n)
	for i := range n {
		out[i] = suggestion(diversified[i], Reason(diversified[i], w), i+1)
	}

	return out
}

// merge keeps the valid picks of a curator, in its order, then fills the
// remaining slots from diversified. A pick is valid when it names a shortlist
// item not picked before. It returns the suggestions and the number of valid
// picks.
func merge(picks []curator.Pick, shortlist, diversified []feed.Scored, count int, w feed.Weights) ([]domain.Suggestion, int) {
	byRef := make(map[domain.ItemRef]feed.Scored, len(shortlist))
	for _, s := range shortlist {
		byRef[s.Item.Ref] = s
	}

	out := make([]domain.Suggestion, 0, count)
	used := map[domain.ItemRef]struct{}{}
	for _, p := range picks {
		if len(out) == count {
			break
		}
		s, ok := byRef[p.Ref]
		if !ok {
			continue
		}
		if _, dup := used[p.Ref]; dup {
			continue
		}
		used[p.Ref] = struct{}{}

		reason := truncate(strings.TrimSpace(p.Reason), maxReasonLen)
		if reason == "" {
			reason = Reason(s, w)
		}
		out = append(out, suggestion(s, reason, len(out)+1))
	}
	valid := len(out)

	for _, s := range diversified {
		if len(out) == count {
			break
		}
		if _, dup := used[s.Item.Ref]; dup {
			continue
		}
		used[s.Item.Ref] = struct{}{}
		out = append(out, suggestion(s, Reason(s, w), len(out)+1))
	}

	return out, valid
}

func suggestion(s feed.Scored, reason string, rank int) domain.Suggestion {
	return domain.Suggestion{
		Ref:      s.Item.Ref,
		Title:    s.Item.Title,
		Category: s.Item.Category,
		Score:    s.Score,
		Reason:   reason,
		Rank:     rank,
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return strings.TrimSpace(string(r[:n-1])) + "…"
}

func candidates(shortlist []feed.Scored) []curator.Candidate {
	out := make([]curator.Candidate, len(shortlist))
	for i, s := range shortlist {
		out[i] = curator.Candidate{
			Ref:        s.Item.Ref,
			Title:      s.Item.Title,
			Category:   s.Item.Category,
			Tags:       s.Item.Tags,
			VenueName:  s.Item.VenueName,
			PriceLevel: s.Item.PriceLevel,
			StartsAt:   s.Item.StartsAt,
			Score:      s.Score,
		}
	}

	return out
}
