// Package llm provides a curator.Curator backed by an OpenAI compatible chat
// completions API.
package llm

import (
	"bytes"
	"context"
	"discovery/pkg/curator"
	"discovery/pkg/logger"
	"discovery/pkg/serrors"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// MaxResponseBytes bounds the completion body read from the model API.
const MaxResponseBytes = 1 << 20

const systemPrompt = `You curate personalized suggestions of events and places in Denver.
You receive the user's taste profile and a shortlist of candidates, each with an id.
Choose at most "count" candidates the user is most likely to enjoy, favoring variety.
For each pick write one short, friendly reason (max 80 characters) addressed to the user.
Answer with JSON only: {"picks":[{"id":"<candidate id>","reason":"<reason>"}]}.`

// Options configure a Client.
type Options struct {
	// BaseURL is the API root, e.g. https://api.openai.com/v1.
	BaseURL string
	Model   string
	APIKey  string
	// Timeout bounds a single request, including waiting for the rate limiter.
	Timeout time.Duration
	// RequestsPerMinute is the client-side rate limit; zero disables it.
	RequestsPerMinute int
	// FailureThreshold consecutive failures open the breaker.
	FailureThreshold uint32
	// OpenTimeout is how long the breaker stays open.
	OpenTimeout time.Duration
}

// Client asks a language model to curate suggestions. It is safe for
// concurrent use.
type Client struct {
	httpClient *http.Client
	options    Options
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[[]curator.Pick]
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type promptCandidate struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags,omitempty"`
	Venue      string   `json:"venue,omitempty"`
	PriceLevel int      `json:"priceLevel"`
	StartsAt   string   `json:"startsAt,omitempty"`
}

type prompt struct {
	Count         int               `json:"count"`
	Now           string            `json:"now"`
	TopCategories []string          `json:"topCategories"`
	TopTags       []string          `json:"topTags"`
	Candidates    []promptCandidate `json:"candidates"`
}

// Curate sends the shortlist to the model and maps the answer back to
// listing references. Picks naming unknown candidates are dropped.
func (c *Client) Curate(ctx context.Context, req curator.Request) ([]curator.Pick, error) {
	if len(req.Candidates) == 0 || req.Count <= 0 {
		return nil, nil
	}

	if c.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.options.Timeout)
		defer cancel()
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, serrors.Wrap(serrors.ErrRateLimited, err, "curator rate limit")
	}

	picks, err := c.breaker.Execute(func() ([]curator.Pick, error) {
		return c.complete(ctx, req)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "curator unavailable")
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return nil, serrors.Wrap(serrors.ErrTimeout, err, "curator timed out")
	}
	if err != nil {
		return nil, err
	}

	return picks, nil
}

func (c *Client) complete(ctx context.Context, req curator.Request) ([]curator.Pick, error) {
	p := prompt{
		Count:         req.Count,
		Now:           req.Now.Format(time.RFC3339),
		TopCategories: req.TopCategories,
		TopTags:       req.TopTags,
		Candidates:    make([]promptCandidate, len(req.Candidates)),
	}
	for i, cand := range req.Candidates {
		pc := promptCandidate{
			ID:         strconv.Itoa(i + 1),
			Title:      cand.Title,
			Category:   cand.Category,
			Tags:       cand.Tags,
			Venue:      cand.VenueName,
			PriceLevel: cand.PriceLevel,
		}
		if !cand.StartsAt.IsZero() {
			pc.StartsAt = cand.StartsAt.Format(time.RFC3339)
		}
		p.Candidates[i] = pc
	}
	userContent, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal prompt: %w", err)
	}

	body := chatRequest{
		Model: c.options.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: string(userContent)},
		},
		Temperature: 0.4,
	}
	body.ResponseFormat.Type = "json_object"
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		strings.TrimSuffix(c.options.BaseURL, "/")+"/chat/completions",
		bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.options.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if len(b) > MaxResponseBytes {
		return nil, fmt.Errorf("response body exceeds %d bytes", MaxResponseBytes)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("completion failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var completion struct {
		Choices []struct {
			Message chatMessage `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(b, &completion); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, errors.New("completion has no choices")
	}

	var answer struct {
		Picks []struct {
			ID     json.RawMessage `json:"id"`
			Reason string          `json:"reason"`
		} `json:"picks"`
	}
	content := strings.TrimSpace(completion.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), &answer); err != nil {
		return nil, fmt.Errorf("could not decode picks: %w", err)
	}

	picks := make([]curator.Pick, 0, len(answer.Picks))
	for _, ap := range answer.Picks {
		idx, err := strconv.Atoi(strings.Trim(string(ap.ID), `"`))
		if err != nil || idx < 1 || idx > len(req.Candidates) {
			continue
		}
		picks = append(picks, curator.Pick{
			Ref:    req.Candidates[idx-1].Ref,
			Reason: strings.TrimSpace(ap.Reason),
		})
	}

	return picks, nil
}

// Ensure Client conforms to the curator.Curator interface at compile time.
var _ curator.Curator = (*Client)(nil)

// New constructs a Client that uses httpClient to reach the model API.
func New(httpClient *http.Client, options Options) *Client {
	limit := rate.Inf
	if options.RequestsPerMinute > 0 {
		limit = rate.Limit(float64(options.RequestsPerMinute) / 60)
	}
	threshold := options.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	return &Client{
		httpClient: httpClient,
		options:    options,
		limiter:    rate.NewLimiter(limit, 1),
		breaker: gobreaker.NewCircuitBreaker[[]curator.Pick](gobreaker.Settings{
			Name:        "curator",
			MaxRequests: 1,
			Timeout:     options.OpenTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= threshold
			},
			// a caller giving up says nothing about the model's health
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, context.Canceled)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn(context.Background(), "curator breaker state changed",
					zap.String("breaker", name),
					zap.Stringer("from", from),
					zap.Stringer("to", to),
				)
			},
		}),
	}
}
