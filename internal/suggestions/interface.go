package suggestions

import (
	"context"
	"discovery/pkg/domain"
)

// Latest is the stored batch of a user and whether it is past its TTL.
type Latest struct {
	Batch domain.SuggestionBatch `json:"batch"`
	Stale bool                   `json:"stale"`
}

//go:generate mockgen -package mocksuggestions -source=interface.go -destination=mock/mocksuggestions.go *
type Suggester interface {
	// Generate builds and stores a fresh batch for userID.
	Generate(ctx context.Context, userID domain.UserID) (*domain.SuggestionBatch, error)
	// Latest returns the stored batch, enqueueing a refresh when it is stale
	// or missing.
	Latest(ctx context.Context, userID domain.UserID) (*Latest, error)
	// Refresh enqueues a background generation. It reports false when one is
	// already queued for the user.
	Refresh(ctx context.Context, userID domain.UserID) (bool, error)
	// Sweep enqueues a refresh for every recently active user and returns
	// how many were enqueued.
	Sweep(ctx context.Context) (int, error)
}
