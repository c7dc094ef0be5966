package suggestions_test

import (
	"discovery/internal/feed"
	"discovery/internal/suggestions"
	"discovery/pkg/domain"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func scored(category, venue string, score float64) feed.Scored {
	return feed.Scored{
		Item: domain.Item{
			Ref:       domain.ItemRef{Kind: domain.ItemKindEvent, ID: uuid.New()},
			Title:     fmt.Sprintf("%s at %s", category, venue),
			Category:  category,
			VenueName: venue,
		},
		Score: score,
	}
}

func categories(list []feed.Scored) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = s.Item.Category
	}

	return out
}

func TestDiversify_CategoryCap(t *testing.T) {
	ranked := []feed.Scored{
		scored("music", "a", 0.9),
		scored("music", "b", 0.8),
		scored("music", "c", 0.7),
		scored("music", "d", 0.6),
		scored("food", "e", 0.5),
	}

	out := suggestions.Diversify(ranked, nil, suggestions.DiversityOptions{MaxPerCategory: 3})
	require.Equal(t, []string{"music", "music", "music", "food", "music"}, categories(out))
	require.Equal(t, ranked[3].Item.Ref, out[4].Item.Ref)
}

func TestDiversify_VenueCap(t *testing.T) {
	ranked := []feed.Scored{
		scored("music", "red rocks", 0.9),
		scored("film", "red rocks", 0.8),
		scored("art", "red rocks", 0.7),
		scored("food", "larimer", 0.6),
	}

	out := suggestions.Diversify(ranked, nil, suggestions.DiversityOptions{MaxPerVenue: 2})
	require.Equal(t, []string{"music", "film", "food", "art"}, categories(out))
}

func TestDiversify_PlacesAreTheirOwnVenue(t *testing.T) {
	a := scored("coffee", "", 0.9)
	b := scored("coffee", "", 0.8)
	a.Item.Ref.Kind, b.Item.Ref.Kind = domain.ItemKindPlace, domain.ItemKindPlace

	out := suggestions.Diversify([]feed.Scored{a, b}, nil, suggestions.DiversityOptions{MaxPerVenue: 1})
	require.Equal(t, a.Item.Ref, out[0].Item.Ref)
	require.Equal(t, b.Item.Ref, out[1].Item.Ref)
}

func TestDiversify_ExploreSlots(t *testing.T) {
	ranked := []feed.Scored{
		scored("music", "a", 0.9),
		scored("music", "b", 0.8),
		scored("food", "c", 0.7),
		scored("music", "d", 0.6),
		scored("art", "e", 0.1),
	}

	out := suggestions.Diversify(ranked, []string{"music", "food"}, suggestions.DiversityOptions{ExploreEvery: 2})
	require.Equal(t, []string{"music", "art", "music", "food", "music"}, categories(out))

	// without favorites there is nothing to explore away from
	out = suggestions.Diversify(ranked, nil, suggestions.DiversityOptions{ExploreEvery: 2})
	require.Equal(t, categories(ranked), categories(out))
}

func TestDiversify_IsPermutation(t *testing.T) {
	var ranked []feed.Scored
	for i := range 40 {
		ranked = append(ranked, scored(fmt.Sprintf("c%d", i%4), fmt.Sprintf("v%d", i%7), 1-float64(i)/40))
	}

	out := suggestions.Diversify(ranked, []string{"c0"}, suggestions.DiversityOptions{
		MaxPerCategory: 3,
		MaxPerVenue:    2,
		ExploreEvery:   5,
	})
	require.Len(t, out, len(ranked))

	seen := map[domain.ItemRef]bool{}
	for _, s := range out {
		require.False(t, seen[s.Item.Ref])
		seen[s.Item.Ref] = true
	}

	// the constrained head respects the caps
	perCategory := map[string]int{}
	for _, s := range out[:12] {
		perCategory[s.Item.Category]++
	}
	for _, n := range perCategory {
		require.LessOrEqual(t, n, 3)
	}
}
