package feed

import (
	"context"
	"discovery/pkg/domain"
	"discovery/pkg/geo"
)

// Options select and paginate a feed.
type Options struct {
	// Location enables the proximity component when set.
	Location *geo.Point
	// Kinds restricts the feed; empty means every kind.
	Kinds []domain.ItemKind
	// Limit is the page size.
	Limit int
	// Cursor is the opaque cursor returned with the previous page.
	Cursor string
}

// Page is one page of a ranked feed. NextCursor is empty on the last page.
type Page struct {
	Items      []Scored `json:"items"`
	NextCursor string   `json:"nextCursor,omitempty"`
}

//go:generate mockgen -package mockfeed -source=interface.go -destination=mock/mockfeed.go *
type Ranker interface {
	Feed(ctx context.Context, userID domain.UserID, opts Options) (*Page, error)
}
