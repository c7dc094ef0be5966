package postgres_test

import (
	"context"
	"discovery/pkg/domain"
	"discovery/pkg/geo"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Saves(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()
	user := domain.UserID(uuid.New())

	places, err := pgSQL.StorePlaces(ctx, newPlace(domain.UserID(uuid.New()), "Cafe", "coffee", geo.Denver))
	require.NoError(t, err)
	ref := places[0].Ref()

	first, err := pgSQL.StoreSave(ctx, domain.Save{UserID: user, Ref: ref})
	require.NoError(t, err)
	require.Equal(t, domain.DefaultList, first.List)
	require.False(t, first.CreatedAt.IsZero())

	// saving twice keeps the original record
	second, err := pgSQL.StoreSave(ctx, domain.Save{UserID: user, Ref: ref})
	require.NoError(t, err)
	require.Equal(t, first.CreatedAt.UnixMicro(), second.CreatedAt.UnixMicro())

	_, err = pgSQL.StoreSave(ctx, domain.Save{UserID: user, Ref: ref, List: "date night"})
	require.NoError(t, err)

	saves, err := pgSQL.UserSaves(ctx, user, time.Time{})
	require.NoError(t, err)
	require.Len(t, saves, 2)

	deleted, err := pgSQL.DeleteSave(ctx, user, ref, "")
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = pgSQL.DeleteSave(ctx, user, ref, "")
	require.NoError(t, err)
	require.False(t, deleted)

	saves, err = pgSQL.UserSaves(ctx, user, time.Time{})
	require.NoError(t, err)
	require.Len(t, saves, 1)
	require.Equal(t, "date night", saves[0].List)
}

func TestPgSQL_Follows(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()
	user := domain.UserID(uuid.New())
	curatorA := domain.UserID(uuid.New())
	curatorB := domain.UserID(uuid.New())

	require.NoError(t, pgSQL.StoreFollow(ctx, domain.Follow{FollowerID: user, CuratorID: curatorA}))
	require.NoError(t, pgSQL.StoreFollow(ctx, domain.Follow{FollowerID: user, CuratorID: curatorA}))
	require.NoError(t, pgSQL.StoreFollow(ctx, domain.Follow{FollowerID: user, CuratorID: curatorB}))

	// self follows are rejected by the table constraint
	require.Error(t, pgSQL.StoreFollow(ctx, domain.Follow{FollowerID: user, CuratorID: user}))

	curators, err := pgSQL.FollowedCurators(ctx, user)
	require.NoError(t, err)
	require.ElementsMatch(t, []domain.UserID{curatorA, curatorB}, curators)

	events, err := pgSQL.StoreEvents(ctx, newEvent(curatorA, "Show", "music", geo.Denver, time.Hour))
	require.NoError(t, err)
	ref := events[0].Ref()
	_, err = pgSQL.StoreSave(ctx, domain.Save{UserID: curatorA, Ref: ref})
	require.NoError(t, err)
	_, err = pgSQL.StoreSave(ctx, domain.Save{UserID: curatorB, Ref: ref})
	require.NoError(t, err)
	_, err = pgSQL.StoreSave(ctx, domain.Save{UserID: domain.UserID(uuid.New()), Ref: ref})
	require.NoError(t, err)

	counts, err := pgSQL.SavesByFollowed(ctx, user)
	require.NoError(t, err)
	require.Equal(t, map[domain.ItemRef]int{ref: 2}, counts)

	removed, err := pgSQL.DeleteFollow(ctx, user, curatorB)
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = pgSQL.DeleteFollow(ctx, user, curatorB)
	require.NoError(t, err)
	require.False(t, removed)
}

func TestPgSQL_InteractionsAndActiveUsers(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()
	viewer := domain.UserID(uuid.New())
	saver := domain.UserID(uuid.New())
	stale := domain.UserID(uuid.New())
	ref := domain.ItemRef{Kind: domain.ItemKindEvent, ID: uuid.New()}

	now := time.Now()
	require.NoError(t, pgSQL.StoreInteractions(ctx,
		domain.Interaction{UserID: viewer, Ref: ref, Action: domain.ActionView, OccurredAt: now.Add(-time.Hour)},
		domain.Interaction{UserID: viewer, Ref: ref, Action: domain.ActionShare, OccurredAt: now.Add(-time.Minute)},
		domain.Interaction{UserID: stale, Ref: ref, Action: domain.ActionView, OccurredAt: now.Add(-72 * time.Hour)},
	))
	require.NoError(t, pgSQL.StoreInteractions(ctx))
	_, err := pgSQL.StoreSave(ctx, domain.Save{UserID: saver, Ref: ref})
	require.NoError(t, err)

	got, err := pgSQL.UserInteractions(ctx, viewer, now.Add(-24*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, domain.ActionShare, got[0].Action)

	active, err := pgSQL.ActiveUsers(ctx, now.Add(-24*time.Hour), 10)
	require.NoError(t, err)
	require.ElementsMatch(t, []domain.UserID{viewer, saver}, active)

	limited, err := pgSQL.ActiveUsers(ctx, now.Add(-24*time.Hour), 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
}
