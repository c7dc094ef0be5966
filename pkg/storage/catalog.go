package storage

import (
	"context"
	"discovery/pkg/domain"
	"discovery/pkg/geo"
	"time"

	"github.com/google/uuid"
)

// BoxQuery selects listings of one kind inside a bounding box.
type BoxQuery struct {
	Box geo.BoundingBox
	// Category, when non-empty, restricts results to that category.
	Category string
	// EndsAfter excludes events that ended at or before this instant. It is
	// ignored for places.
	EndsAfter time.Time
	// StartsBefore, when non-zero, excludes events starting after this instant.
	StartsBefore time.Time
	// Limit caps the number of rows read; zero means no cap.
	Limit uint
}

// CandidateQuery selects the ranking pool for feeds and suggestions.
type CandidateQuery struct {
	// Kinds restricts the pool; empty means every kind.
	Kinds []domain.ItemKind
	// Now anchors the event window: events must end after Now and start before
	// Now+EventWindow.
	Now         time.Time
	EventWindow time.Duration
	// ExcludeUser, when set, drops listings that user saved or dismissed.
	ExcludeUser *domain.UserID
	// Limit caps the whole pool across kinds; listings are taken in descending
	// save count. Repeated kinds are read once.
	Limit uint
}

// CatalogStorage stores and reads events and places.
type CatalogStorage interface {
	// StoreEvents inserts events and returns them with generated fields.
	StoreEvents(ctx context.Context, events ...domain.Event) ([]domain.Event, error)
	// StorePlaces inserts places and returns them with generated fields.
	StorePlaces(ctx context.Context, places ...domain.Place) ([]domain.Place, error)
	// EventByID returns nil when the event does not exist.
	EventByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	// PlaceByID returns nil when the place does not exist.
	PlaceByID(ctx context.Context, id uuid.UUID) (*domain.Place, error)
	// ItemsInBox returns listings of kind whose coordinates fall inside the box.
	ItemsInBox(ctx context.Context, kind domain.ItemKind, q BoxQuery) ([]domain.Item, error)
	// Candidates returns the ranking pool described by q.
	Candidates(ctx context.Context, q CandidateQuery) ([]domain.Item, error)
	// ItemsByRefs returns the listings that exist among refs, in no particular order.
	ItemsByRefs(ctx context.Context, refs []domain.ItemRef) ([]domain.Item, error)
}
