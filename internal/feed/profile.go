package feed

import (
	"context"
	"discovery/pkg/domain"
	"discovery/pkg/geo"
	"discovery/pkg/storage"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// LoadContext reads the viewer's engagement and builds the scoring Context.
// The three independent reads run concurrently.
func LoadContext(
	ctx context.Context,
	st storage.AllStorage,
	userID domain.UserID,
	now time.Time,
	location *geo.Point,
) (*Context, error) {
	c := &Context{Now: now, Location: location}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		signals, err := LoadSignals(gctx, st, userID, now)
		if err != nil {
			return err
		}
		c.Taste = BuildTaste(signals, now)

		return nil
	})
	g.Go(func() error {
		curators, err := st.FollowedCurators(gctx, userID)
		if err != nil {
			return fmt.Errorf("could not get followed curators: %w", err)
		}
		c.Followed = make(map[domain.UserID]struct{}, len(curators))
		for _, id := range curators {
			c.Followed[id] = struct{}{}
		}

		return nil
	})
	g.Go(func() error {
		saves, err := st.SavesByFollowed(gctx, userID)
		if err != nil {
			return fmt.Errorf("could not get saves by followed curators: %w", err)
		}
		c.FollowedSaves = saves

		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err //nolint: wrapcheck
	}

	return c, nil
}

// LoadSignals joins the viewer's recent saves and interactions with the
// listings they refer to. Engagement on listings that no longer exist is
// dropped.
func LoadSignals(ctx context.Context, st storage.AllStorage, userID domain.UserID, now time.Time) ([]domain.Signal, error) {
	since := now.Add(-TasteLookback)

	saves, err := st.UserSaves(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("could not get user saves: %w", err)
	}
	interactions, err := st.UserInteractions(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("could not get user interactions: %w", err)
	}
	if len(saves) == 0 && len(interactions) == 0 {
		return nil, nil
	}

	seen := map[domain.ItemRef]struct{}{}
	refs := make([]domain.ItemRef, 0, len(saves)+len(interactions))
	addRef := func(ref domain.ItemRef) {
		if _, ok := seen[ref]; !ok {
			seen[ref] = struct{}{}
			refs = append(refs, ref)
		}
	}
	for _, s := range saves {
		addRef(s.Ref)
	}
	for _, in := range interactions {
		addRef(in.Ref)
	}

	items, err := st.ItemsByRefs(ctx, refs)
	if err != nil {
		return nil, fmt.Errorf("could not get engaged listings: %w", err)
	}
	byRef := make(map[domain.ItemRef]domain.Item, len(items))
	for _, it := range items {
		byRef[it.Ref] = it
	}

	signals := make([]domain.Signal, 0, len(saves)+len(interactions))
	for _, s := range saves {
		if it, ok := byRef[s.Ref]; ok {
			signals = append(signals, domain.Signal{Action: domain.ActionSave, OccurredAt: s.CreatedAt, Item: it})
		}
	}
	for _, in := range interactions {
		if it, ok := byRef[in.Ref]; ok {
			signals = append(signals, domain.Signal{Action: in.Action, OccurredAt: in.OccurredAt, Item: it})
		}
	}

	return signals, nil
}
