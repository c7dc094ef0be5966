package storage

import (
	"context"
	"discovery/pkg/domain"
)

// SuggestionStorage keeps the latest suggestion batch per user.
type SuggestionStorage interface {
	// StoreSuggestions replaces the stored batch of batch.UserID.
	StoreSuggestions(ctx context.Context, batch domain.SuggestionBatch) error
	// LatestSuggestions returns nil when no batch was stored for the user.
	LatestSuggestions(ctx context.Context, userID domain.UserID) (*domain.SuggestionBatch, error)
}
