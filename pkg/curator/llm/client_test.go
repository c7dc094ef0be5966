package llm_test

import (
	"context"
	"discovery/pkg/curator"
	"discovery/pkg/curator/llm"
	"discovery/pkg/domain"
	"discovery/pkg/serrors"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc, threshold uint32) *llm.Client {
	return llm.New(&http.Client{Transport: fn}, llm.Options{
		BaseURL:          "https://llm.example.com/v1/",
		Model:            "test-model",
		APIKey:           "test-key",
		Timeout:          time.Second,
		FailureThreshold: threshold,
		OpenTimeout:      time.Minute,
	})
}

func completion(content string) *http.Response {
	b, _ := json.Marshal(map[string]any{
		"choices": []any{map[string]any{"message": map[string]string{"role": "assistant", "content": content}}},
	})

	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(string(b))),
	}
}

func request(n int) curator.Request {
	req := curator.Request{
		UserID:        domain.UserID(uuid.New()),
		TopCategories: []string{"music"},
		Count:         2,
		Now:           time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC),
	}
	for i := range n {
		req.Candidates = append(req.Candidates, curator.Candidate{
			Ref:      domain.ItemRef{Kind: domain.ItemKindPlace, ID: uuid.New()},
			Title:    "Place " + string(rune('A'+i)),
			Category: "music",
		})
	}

	return req
}

func TestClient_Curate_Success(t *testing.T) {
	req := request(3)
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "llm.example.com", r.URL.Host)
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "test-model", body.Model)
		require.Len(t, body.Messages, 2)
		require.Contains(t, body.Messages[1].Content, "Place B")

		return completion(`{"picks":[{"id":"2","reason":"Live music tonight"},{"id":9,"reason":"bogus"},{"id":1,"reason":" Great sound "}]}`), nil
	}, 5)

	picks, err := c.Curate(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, []curator.Pick{
		{Ref: req.Candidates[1].Ref, Reason: "Live music tonight"},
		{Ref: req.Candidates[0].Ref, Reason: "Great sound"},
	}, picks)
}

func TestClient_Curate_EmptyShortlist(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		t.Fatal("no request expected")

		return nil, nil
	}, 5)

	picks, err := c.Curate(context.Background(), request(0))
	require.NoError(t, err)
	require.Empty(t, picks)
}

func TestClient_Curate_Errors(t *testing.T) {
	t.Run("rate limited", func(t *testing.T) {
		c := newTestClient(func(*http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusTooManyRequests,
				Header:     http.Header{},
				Body:       io.NopCloser(strings.NewReader("slow down")),
			}, nil
		}, 5)

		_, err := c.Curate(context.Background(), request(2))
		require.ErrorIs(t, err, serrors.ErrRateLimited)
	})

	t.Run("server error", func(t *testing.T) {
		c := newTestClient(func(*http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusInternalServerError,
				Header:     http.Header{},
				Body:       io.NopCloser(strings.NewReader("boom")),
			}, nil
		}, 5)

		_, err := c.Curate(context.Background(), request(2))
		require.Error(t, err)
		require.Contains(t, err.Error(), "500")
	})

	t.Run("malformed content", func(t *testing.T) {
		c := newTestClient(func(*http.Request) (*http.Response, error) {
			return completion("I think you'd like the jazz club"), nil
		}, 5)

		_, err := c.Curate(context.Background(), request(2))
		require.Error(t, err)
	})

	t.Run("oversized body", func(t *testing.T) {
		c := newTestClient(func(*http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusOK,
				Header:     http.Header{},
				Body:       io.NopCloser(strings.NewReader(strings.Repeat(" ", llm.MaxResponseBytes+1))),
			}, nil
		}, 5)

		_, err := c.Curate(context.Background(), request(2))
		require.Error(t, err)
		require.Contains(t, err.Error(), "exceeds")
	})

	t.Run("no choices", func(t *testing.T) {
		c := newTestClient(func(*http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusOK,
				Header:     http.Header{},
				Body:       io.NopCloser(strings.NewReader(`{"choices":[]}`)),
			}, nil
		}, 5)

		_, err := c.Curate(context.Background(), request(2))
		require.Error(t, err)
	})
}

func TestClient_Curate_BreakerOpens(t *testing.T) {
	calls := 0
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		calls++

		return nil, errors.New("connection refused")
	}, 2)

	for range 2 {
		_, err := c.Curate(context.Background(), request(2))
		require.Error(t, err)
	}

	_, err := c.Curate(context.Background(), request(2))
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.Equal(t, 2, calls)
}
