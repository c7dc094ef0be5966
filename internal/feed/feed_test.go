package feed_test

import (
	"context"
	"discovery/internal/feed"
	"discovery/pkg/domain"
	"discovery/pkg/serrors"
	"discovery/pkg/storage"
	mockstorage "discovery/pkg/storage/mock"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestFeed(t *testing.T) (*mockstorage.MockAllStorage, feed.Ranker) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockAllStorage(ctrl)
	r := feed.NewWithClock(st, feed.ServiceOptions{
		Weights:     feed.Weights{Popularity: 1},
		EventWindow: 30 * 24 * time.Hour,
		PoolSize:    500,
	}, func() time.Time { return now })

	return st, r
}

func expectEmptyProfile(st *mockstorage.MockAllStorage) {
	st.EXPECT().UserSaves(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	st.EXPECT().UserInteractions(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	st.EXPECT().FollowedCurators(gomock.Any(), gomock.Any()).Return(nil, nil)
	st.EXPECT().SavesByFollowed(gomock.Any(), gomock.Any()).Return(map[domain.ItemRef]int{}, nil)
}

func pool(n int) []domain.Item {
	items := make([]domain.Item, n)
	for i := range items {
		items[i] = item(domain.ItemKindPlace, "food")
		items[i].SaveCount = n - i
	}

	return items
}

func TestFeed_Paginates(t *testing.T) {
	st, r := newTestFeed(t)
	userID := domain.UserID(uuid.New())
	items := pool(5)

	expectEmptyProfile(st)
	st.EXPECT().Candidates(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q storage.CandidateQuery) ([]domain.Item, error) {
			require.True(t, q.Now.Equal(now))
			require.Equal(t, 30*24*time.Hour, q.EventWindow)
			require.EqualValues(t, 500, q.Limit)
			require.Nil(t, q.ExcludeUser)

			return items, nil
		},
	)

	page, err := r.Feed(context.Background(), userID, feed.Options{Limit: 2})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	require.Equal(t, items[0].Ref, page.Items[0].Item.Ref)
	require.Equal(t, "2", page.NextCursor)

	expectEmptyProfile(st)
	st.EXPECT().Candidates(gomock.Any(), gomock.Any()).Return(items, nil)

	page, err = r.Feed(context.Background(), userID, feed.Options{Limit: 2, Cursor: "4"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, items[4].Ref, page.Items[0].Item.Ref)
	require.Empty(t, page.NextCursor)
}

func TestFeed_RepeatedKinds(t *testing.T) {
	st, r := newTestFeed(t)

	expectEmptyProfile(st)
	st.EXPECT().Candidates(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q storage.CandidateQuery) ([]domain.Item, error) {
			require.Equal(t, []domain.ItemKind{domain.ItemKindEvent, domain.ItemKindPlace}, q.Kinds)

			return pool(3), nil
		},
	)

	page, err := r.Feed(context.Background(), domain.UserID(uuid.New()), feed.Options{
		Kinds: []domain.ItemKind{domain.ItemKindEvent, domain.ItemKindPlace, domain.ItemKindEvent},
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
}

func TestFeed_CursorPastEnd(t *testing.T) {
	st, r := newTestFeed(t)

	expectEmptyProfile(st)
	st.EXPECT().Candidates(gomock.Any(), gomock.Any()).Return(pool(2), nil)

	page, err := r.Feed(context.Background(), domain.UserID(uuid.New()), feed.Options{Cursor: "10"})
	require.NoError(t, err)
	require.Empty(t, page.Items)
	require.Empty(t, page.NextCursor)
}

func TestFeed_UsesTaste(t *testing.T) {
	st, r := newTestFeed(t)
	r = feed.NewWithClock(st, feed.ServiceOptions{Weights: feed.Weights{Affinity: 1}}, func() time.Time { return now })
	userID := domain.UserID(uuid.New())

	liked := item(domain.ItemKindPlace, "music")
	other := item(domain.ItemKindPlace, "food")
	saved := item(domain.ItemKindPlace, "music")

	st.EXPECT().UserSaves(gomock.Any(), userID, now.Add(-feed.TasteLookback)).
		Return([]domain.Save{{UserID: userID, Ref: saved.Ref, CreatedAt: now}}, nil)
	st.EXPECT().UserInteractions(gomock.Any(), userID, gomock.Any()).Return(nil, nil)
	st.EXPECT().ItemsByRefs(gomock.Any(), []domain.ItemRef{saved.Ref}).Return([]domain.Item{saved}, nil)
	st.EXPECT().FollowedCurators(gomock.Any(), userID).Return(nil, nil)
	st.EXPECT().SavesByFollowed(gomock.Any(), userID).Return(nil, nil)
	st.EXPECT().Candidates(gomock.Any(), gomock.Any()).Return([]domain.Item{other, liked}, nil)

	page, err := r.Feed(context.Background(), userID, feed.Options{})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	require.Equal(t, liked.Ref, page.Items[0].Item.Ref)
	require.InDelta(t, 0.7, page.Items[0].Breakdown.Affinity, 1e-9)
}

func TestFeed_DropsEndedEvents(t *testing.T) {
	st, r := newTestFeed(t)

	ended := item(domain.ItemKindEvent, "music")
	ended.StartsAt = now.Add(-3 * time.Hour)
	ended.EndsAt = now.Add(-time.Hour)

	expectEmptyProfile(st)
	st.EXPECT().Candidates(gomock.Any(), gomock.Any()).Return([]domain.Item{ended}, nil)

	page, err := r.Feed(context.Background(), domain.UserID(uuid.New()), feed.Options{})
	require.NoError(t, err)
	require.Empty(t, page.Items)
}

func TestFeed_BadRequests(t *testing.T) {
	_, r := newTestFeed(t)

	cases := []struct {
		name string
		opts feed.Options
	}{
		{name: "non numeric cursor", opts: feed.Options{Cursor: "abc"}},
		{name: "negative cursor", opts: feed.Options{Cursor: "-1"}},
		{name: "limit above max", opts: feed.Options{Limit: feed.MaxLimit + 1}},
		{name: "unknown kind", opts: feed.Options{Kinds: []domain.ItemKind{"party"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := r.Feed(context.Background(), domain.UserID(uuid.New()), tc.opts)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
		})
	}
}

func TestFeed_StorageError(t *testing.T) {
	st, r := newTestFeed(t)

	expectEmptyProfile(st)
	st.EXPECT().Candidates(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := r.Feed(context.Background(), domain.UserID(uuid.New()), feed.Options{})
	require.Error(t, err)
}
