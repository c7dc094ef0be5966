package v1handler_test

import (
	"context"
	"discovery/internal/api/handler/v1handler"
	"discovery/internal/catalog"
	mockcatalog "discovery/internal/catalog/mock"
	"discovery/internal/feed"
	mockfeed "discovery/internal/feed/mock"
	"discovery/internal/proximity"
	mockproximity "discovery/internal/proximity/mock"
	"discovery/internal/suggestions"
	mocksuggestions "discovery/internal/suggestions/mock"
	"discovery/pkg/domain"
	"discovery/pkg/geo"
	"discovery/pkg/serrors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testAPI struct {
	feed        *mockfeed.MockRanker
	proximity   *mockproximity.MockFinder
	suggestions *mocksuggestions.MockSuggester
	catalog     *mockcatalog.MockService
	userID      domain.UserID
	router      chi.Router
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	ctrl := gomock.NewController(t)
	a := &testAPI{
		feed:        mockfeed.NewMockRanker(ctrl),
		proximity:   mockproximity.NewMockFinder(ctrl),
		suggestions: mocksuggestions.NewMockSuggester(ctrl),
		catalog:     mockcatalog.NewMockService(ctrl),
		userID:      domain.UserID(uuid.New()),
	}
	h := v1handler.New(v1handler.Deps{
		Feed:        a.feed,
		Proximity:   a.proximity,
		Suggestions: a.suggestions,
		Catalog:     a.catalog,
	})

	a.router = chi.NewRouter()
	a.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), v1handler.UserIDKey, a.userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	h.Routes(a.router)

	return a
}

func (a *testAPI) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))

	return v
}

func TestGetFeed(t *testing.T) {
	a := newTestAPI(t)
	ref := domain.ItemRef{Kind: domain.ItemKindEvent, ID: uuid.New()}

	a.feed.EXPECT().Feed(gomock.Any(), a.userID, feed.Options{
		Location: &geo.Point{Lat: 39.75, Lon: -105},
		Kinds:    []domain.ItemKind{domain.ItemKindEvent, domain.ItemKindPlace},
		Limit:    5,
		Cursor:   "10",
	}).Return(&feed.Page{
		Items:      []feed.Scored{{Item: domain.Item{Ref: ref, Title: "Jazz"}, Score: 0.8}},
		NextCursor: "15",
	}, nil)

	rec := a.do(http.MethodGet, "/feed?lat=39.75&lon=-105&kind=event,place&limit=5&cursor=10", "")
	require.Equal(t, http.StatusOK, rec.Code)

	page := decode[feed.Page](t, rec)
	require.Len(t, page.Items, 1)
	require.Equal(t, ref, page.Items[0].Item.Ref)
	require.Equal(t, "15", page.NextCursor)
}

func TestGetFeed_EmptyIsArray(t *testing.T) {
	a := newTestAPI(t)
	a.feed.EXPECT().Feed(gomock.Any(), a.userID, gomock.Any()).Return(&feed.Page{}, nil)

	rec := a.do(http.MethodGet, "/feed", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"items":[]}`, rec.Body.String())
}

func TestGetFeed_BadParams(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		message string
	}{
		{name: "lat without lon", target: "/feed?lat=39.7", message: "lat and lon must be given together"},
		{name: "lat not a number", target: "/feed?lat=x&lon=1", message: "lat must be a number"},
		{name: "out of range", target: "/feed?lat=91&lon=1", message: "lat/lon out of range"},
		{name: "unknown kind", target: "/feed?kind=venue", message: `unknown kind "venue"`},
		{name: "limit", target: "/feed?limit=ten", message: "limit must be an integer"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := newTestAPI(t)

			rec := a.do(http.MethodGet, tc.target, "")
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, v1handler.Error{Code: "BAD_REQUEST", Message: tc.message}, decode[v1handler.Error](t, rec))
		})
	}
}

func TestGetNearby(t *testing.T) {
	a := newTestAPI(t)

	a.proximity.EXPECT().Nearby(gomock.Any(), proximity.Query{
		Center:       &geo.Point{Lat: 39.74, Lon: -104.99},
		RadiusKm:     1.5,
		Kinds:        []domain.ItemKind{domain.ItemKindEvent},
		Category:     "music",
		Limit:        3,
		UpcomingOnly: true,
	}).Return([]proximity.Result{{DistanceKm: 0.4}}, nil)

	rec := a.do(http.MethodGet,
		"/nearby?lat=39.74&lon=-104.99&radius=1.5&kind=event&category=music&limit=3&upcoming=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.InDelta(t, 0.4, decode[v1handler.NearbyList](t, rec).Items[0].DistanceKm, 1e-9)
}

func TestGetNearby_PlacesHaveNoSchedule(t *testing.T) {
	a := newTestAPI(t)
	startsAt := time.Date(2026, 7, 4, 19, 0, 0, 0, time.UTC)

	a.proximity.EXPECT().Nearby(gomock.Any(), gomock.Any()).Return([]proximity.Result{
		{Item: domain.Item{Ref: domain.ItemRef{Kind: domain.ItemKindPlace, ID: uuid.New()}, Title: "Union Station"}},
		{Item: domain.Item{
			Ref:      domain.ItemRef{Kind: domain.ItemKindEvent, ID: uuid.New()},
			Title:    "Fireworks",
			StartsAt: startsAt,
			EndsAt:   startsAt.Add(time.Hour),
		}},
	}, nil)

	rec := a.do(http.MethodGet, "/nearby", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[struct {
		Items []struct {
			Item map[string]any `json:"item"`
		} `json:"items"`
	}](t, rec)
	require.Len(t, body.Items, 2)
	require.NotContains(t, body.Items[0].Item, "startsAt")
	require.NotContains(t, body.Items[0].Item, "endsAt")
	require.Equal(t, "2026-07-04T19:00:00Z", body.Items[1].Item["startsAt"])
	require.Equal(t, "2026-07-04T20:00:00Z", body.Items[1].Item["endsAt"])
}

func TestGetNearby_ServiceError(t *testing.T) {
	a := newTestAPI(t)
	a.proximity.EXPECT().Nearby(gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrBadRequest, "radius must be at most 50 km"))

	rec := a.do(http.MethodGet, "/nearby?radius=80", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "radius must be at most 50 km", decode[v1handler.Error](t, rec).Message)
}

func TestSuggestions(t *testing.T) {
	a := newTestAPI(t)

	a.suggestions.EXPECT().Latest(gomock.Any(), a.userID).Return(&suggestions.Latest{
		Batch: domain.SuggestionBatch{UserID: a.userID, Source: domain.SuggestionSourceAI, GeneratedAt: time.Now()},
	}, nil)
	rec := a.do(http.MethodGet, "/suggestions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, domain.SuggestionSourceAI, decode[suggestions.Latest](t, rec).Batch.Source)

	a.suggestions.EXPECT().Latest(gomock.Any(), a.userID).
		Return(nil, serrors.With(serrors.ErrNotFound, "suggestions are being generated"))
	rec = a.do(http.MethodGet, "/suggestions", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	a.suggestions.EXPECT().Refresh(gomock.Any(), a.userID).Return(true, nil)
	rec = a.do(http.MethodPost, "/suggestions/refresh", "")
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.JSONEq(t, `{"enqueued":true}`, rec.Body.String())
}

func TestCreateEvent(t *testing.T) {
	a := newTestAPI(t)
	id := uuid.New()

	a.catalog.EXPECT().CreateEvent(gomock.Any(), a.userID, gomock.Any()).DoAndReturn(
		func(_ context.Context, curatorID domain.UserID, in catalog.EventInput) (*domain.Event, error) {
			require.Equal(t, "Jazz Night", in.Title)
			require.InDelta(t, 39.75, in.Location.Lat, 1e-9)

			return &domain.Event{ID: id, CuratorID: curatorID, Title: in.Title}, nil
		},
	)

	rec := a.do(http.MethodPost, "/events", `{
		"title": "Jazz Night",
		"category": "music",
		"location": {"lat": 39.75, "lon": -104.99},
		"startsAt": "2026-07-04T19:00:00Z",
		"endsAt": "2026-07-04T22:00:00Z"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, id, decode[domain.Event](t, rec).ID)
}

func TestCreateEvent_BadBody(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(http.MethodPost, "/events", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "request body is required", decode[v1handler.Error](t, rec).Message)

	rec = a.do(http.MethodPost, "/events", `{"title":"x","unknown":1}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "invalid request body", decode[v1handler.Error](t, rec).Message)
}

func TestGetListings(t *testing.T) {
	a := newTestAPI(t)
	id := uuid.New()

	a.catalog.EXPECT().Place(gomock.Any(), id).Return(&domain.Place{ID: id, Name: "Union Station"}, nil)
	rec := a.do(http.MethodGet, "/places/"+id.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Union Station", decode[domain.Place](t, rec).Name)

	a.catalog.EXPECT().Event(gomock.Any(), id).Return(nil, serrors.With(serrors.ErrNotFound, "event not found"))
	rec = a.do(http.MethodGet, "/events/"+id.String(), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, v1handler.Error{Code: "NOT_FOUND", Message: "event not found"}, decode[v1handler.Error](t, rec))

	rec = a.do(http.MethodGet, "/events/not-a-uuid", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSaves(t *testing.T) {
	a := newTestAPI(t)
	ref := domain.ItemRef{Kind: domain.ItemKindPlace, ID: uuid.New()}

	a.catalog.EXPECT().Save(gomock.Any(), a.userID, ref, "brunch").
		Return(&domain.Save{UserID: a.userID, Ref: ref, List: "brunch"}, nil)
	rec := a.do(http.MethodPost, "/saves", `{"kind":"place","id":"`+ref.ID.String()+`","list":"brunch"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, ref, decode[domain.Save](t, rec).Ref)

	a.catalog.EXPECT().UserSaves(gomock.Any(), a.userID).Return(nil, nil)
	rec = a.do(http.MethodGet, "/saves", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"items":[]}`, rec.Body.String())

	a.catalog.EXPECT().Unsave(gomock.Any(), a.userID, ref, "brunch").Return(nil)
	rec = a.do(http.MethodDelete, "/saves/place/"+ref.ID.String()+"?list=brunch", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = a.do(http.MethodPost, "/saves", `{"kind":"venue","id":"`+ref.ID.String()+`"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFollows(t *testing.T) {
	a := newTestAPI(t)
	curatorID := uuid.New()

	a.catalog.EXPECT().Follow(gomock.Any(), a.userID, domain.UserID(curatorID)).Return(nil)
	rec := a.do(http.MethodPut, "/follows/"+curatorID.String(), "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	a.catalog.EXPECT().Unfollow(gomock.Any(), a.userID, domain.UserID(curatorID)).
		Return(serrors.With(serrors.ErrNotFound, "follow not found"))
	rec = a.do(http.MethodDelete, "/follows/"+curatorID.String(), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecordInteraction(t *testing.T) {
	a := newTestAPI(t)
	ref := domain.ItemRef{Kind: domain.ItemKindEvent, ID: uuid.New()}

	a.catalog.EXPECT().RecordInteraction(gomock.Any(), a.userID, ref, domain.ActionShare).Return(nil)
	rec := a.do(http.MethodPost, "/interactions", `{"kind":"event","id":"`+ref.ID.String()+`","action":"share"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestInternalErrorsAreHidden(t *testing.T) {
	a := newTestAPI(t)
	a.catalog.EXPECT().UserSaves(gomock.Any(), a.userID).Return(nil, context.DeadlineExceeded)

	rec := a.do(http.MethodGet, "/saves", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, v1handler.Error{Code: "INTERNAL", Message: "internal error"}, decode[v1handler.Error](t, rec))
}

func TestRateLimit(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	userID := domain.UserID(uuid.New())
	limited := h.RateLimit(2)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	codes := make([]int, 3)
	for i := range codes {
		req := httptest.NewRequest(http.MethodGet, "/v1/feed", nil)
		req = req.WithContext(context.WithValue(req.Context(), v1handler.UserIDKey, userID))
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, req)
		codes[i] = rec.Code
	}
	require.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}
