package catalog

import (
	"context"
	"discovery/pkg/domain"
	"discovery/pkg/geo"
	"time"

	"github.com/google/uuid"
)

// EventInput is what a curator submits to list an event.
type EventInput struct {
	// PlaceID optionally ties the event to a listed place. The place fills in
	// the venue and location when those are left empty.
	PlaceID     *uuid.UUID `json:"placeId,omitempty"`
	Title       string     `json:"title"                 validate:"required,max=200"`
	Description string     `json:"description,omitempty" validate:"max=4000"`
	Category    string     `json:"category"              validate:"required,max=64"`
	Tags        []string   `json:"tags,omitempty"        validate:"max=20,dive,required,max=40"`
	VenueName   string     `json:"venueName,omitempty"   validate:"max=200"`
	Location    geo.Point  `json:"location"`
	PriceLevel  int        `json:"priceLevel"            validate:"min=0,max=4"`
	StartsAt    time.Time  `json:"startsAt"              validate:"required"`
	EndsAt      time.Time  `json:"endsAt"                validate:"required,gtefield=StartsAt"`
}

// PlaceInput is what a curator submits to list a place.
type PlaceInput struct {
	Name         string    `json:"name"                   validate:"required,max=200"`
	Description  string    `json:"description,omitempty"  validate:"max=4000"`
	Category     string    `json:"category"               validate:"required,max=64"`
	Tags         []string  `json:"tags,omitempty"         validate:"max=20,dive,required,max=40"`
	Neighborhood string    `json:"neighborhood,omitempty" validate:"max=100"`
	Location     geo.Point `json:"location"`
	PriceLevel   int       `json:"priceLevel"             validate:"min=0,max=4"`
}

//go:generate mockgen -package mockcatalog -source=interface.go -destination=mock/mockcatalog.go *
type Service interface {
	// CreateEvent lists an event curated by curatorID.
	CreateEvent(ctx context.Context, curatorID domain.UserID, in EventInput) (*domain.Event, error)
	// CreatePlace lists a place curated by curatorID.
	CreatePlace(ctx context.Context, curatorID domain.UserID, in PlaceInput) (*domain.Place, error)
	Event(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	Place(ctx context.Context, id uuid.UUID) (*domain.Place, error)

	// Save bookmarks a listing into list, or the default list when empty.
	Save(ctx context.Context, userID domain.UserID, ref domain.ItemRef, list string) (*domain.Save, error)
	Unsave(ctx context.Context, userID domain.UserID, ref domain.ItemRef, list string) error
	UserSaves(ctx context.Context, userID domain.UserID) ([]domain.Save, error)

	Follow(ctx context.Context, followerID, curatorID domain.UserID) error
	Unfollow(ctx context.Context, followerID, curatorID domain.UserID) error

	// RecordInteraction stores a lightweight engagement signal.
	RecordInteraction(ctx context.Context, userID domain.UserID, ref domain.ItemRef, action domain.Action) error
}
