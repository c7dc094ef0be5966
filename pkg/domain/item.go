package domain

import (
	"discovery/pkg/geo"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// ItemKind distinguishes the two kinds of listing.
type ItemKind string

const (
	// ItemKindEvent is a time-bound happening.
	ItemKindEvent ItemKind = "event"
	// ItemKindPlace is a venue, restaurant, park or any other permanent spot.
	ItemKindPlace ItemKind = "place"
)

// AllItemKinds lists every kind in a stable order.
var AllItemKinds = []ItemKind{ItemKindEvent, ItemKindPlace} //nolint: gochecknoglobals

// Valid reports whether k is a known kind.
func (k ItemKind) Valid() bool {
	return k == ItemKindEvent || k == ItemKindPlace
}

// MaxPriceLevel is the most expensive price level ("$$$$").
const MaxPriceLevel = 4

// ItemRef identifies a listing of either kind.
type ItemRef struct {
	Kind ItemKind  `json:"kind"`
	ID   uuid.UUID `json:"id"`
}

// String returns "<kind>:<id>", which is also used as a stable sort key.
func (r ItemRef) String() string {
	return string(r.Kind) + ":" + r.ID.String()
}

// Event is a listing with a start and end time.
type Event struct {
	ID          uuid.UUID  `json:"id"`
	CuratorID   UserID     `json:"curatorId"`
	PlaceID     *uuid.UUID `json:"placeId,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category"`
	Tags        []string   `json:"tags,omitempty"`
	VenueName   string     `json:"venueName,omitempty"`
	Location    geo.Point  `json:"location"`
	PriceLevel  int        `json:"priceLevel"`
	StartsAt    time.Time  `json:"startsAt"`
	EndsAt      time.Time  `json:"endsAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Ref returns the ItemRef of the event.
func (e *Event) Ref() ItemRef { return ItemRef{Kind: ItemKindEvent, ID: e.ID} }

// Item flattens the event into the shared read model.
func (e *Event) Item() Item {
	return Item{
		Ref:        e.Ref(),
		Title:      e.Title,
		Category:   e.Category,
		Tags:       e.Tags,
		VenueName:  e.VenueName,
		Location:   e.Location,
		PriceLevel: e.PriceLevel,
		CuratorID:  e.CuratorID,
		StartsAt:   e.StartsAt,
		EndsAt:     e.EndsAt,
		CreatedAt:  e.CreatedAt,
	}
}

// Place is a permanent listing.
type Place struct {
	ID           uuid.UUID `json:"id"`
	CuratorID    UserID    `json:"curatorId"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Category     string    `json:"category"`
	Tags         []string  `json:"tags,omitempty"`
	Neighborhood string    `json:"neighborhood,omitempty"`
	Location     geo.Point `json:"location"`
	PriceLevel   int       `json:"priceLevel"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Ref returns the ItemRef of the place.
func (p *Place) Ref() ItemRef { return ItemRef{Kind: ItemKindPlace, ID: p.ID} }

// Item flattens the place into the shared read model. A place is its own venue.
func (p *Place) Item() Item {
	return Item{
		Ref:          p.Ref(),
		Title:        p.Name,
		Category:     p.Category,
		Tags:         p.Tags,
		Neighborhood: p.Neighborhood,
		VenueName:    p.Name,
		Location:     p.Location,
		PriceLevel:   p.PriceLevel,
		CuratorID:    p.CuratorID,
		CreatedAt:    p.CreatedAt,
	}
}

// Item is the kind-agnostic view of a listing used by ranking, proximity and
// suggestion code. StartsAt and EndsAt are zero for places.
type Item struct {
	Ref          ItemRef   `json:"ref"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	Tags         []string  `json:"tags,omitempty"`
	Neighborhood string    `json:"neighborhood,omitempty"`
	VenueName    string    `json:"venueName,omitempty"`
	Location     geo.Point `json:"location"`
	PriceLevel   int       `json:"priceLevel"`
	CuratorID    UserID    `json:"curatorId"`
	StartsAt     time.Time `json:"startsAt"`
	EndsAt       time.Time `json:"endsAt"`
	CreatedAt    time.Time `json:"createdAt"`
	// SaveCount is the number of saves across all users at read time.
	SaveCount int `json:"saveCount"`
}

// itemJSON is the wire form of Item. Zero times are left out so places carry
// no schedule.
type itemJSON struct {
	Ref          ItemRef    `json:"ref"`
	Title        string     `json:"title"`
	Category     string     `json:"category"`
	Tags         []string   `json:"tags,omitempty"`
	Neighborhood string     `json:"neighborhood,omitempty"`
	VenueName    string     `json:"venueName,omitempty"`
	Location     geo.Point  `json:"location"`
	PriceLevel   int        `json:"priceLevel"`
	CuratorID    UserID     `json:"curatorId"`
	StartsAt     *time.Time `json:"startsAt,omitempty"`
	EndsAt       *time.Time `json:"endsAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	SaveCount    int        `json:"saveCount"`
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	return &t
}

// MarshalJSON implements json.Marshaler.
func (i Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(itemJSON{
		Ref:          i.Ref,
		Title:        i.Title,
		Category:     i.Category,
		Tags:         i.Tags,
		Neighborhood: i.Neighborhood,
		VenueName:    i.VenueName,
		Location:     i.Location,
		PriceLevel:   i.PriceLevel,
		CuratorID:    i.CuratorID,
		StartsAt:     optionalTime(i.StartsAt),
		EndsAt:       optionalTime(i.EndsAt),
		CreatedAt:    i.CreatedAt,
		SaveCount:    i.SaveCount,
	})
}

// IsEvent reports whether the item is an event.
func (i *Item) IsEvent() bool { return i.Ref.Kind == ItemKindEvent }

// Ended reports whether the item is an event that has finished at now.
func (i *Item) Ended(now time.Time) bool {
	return i.IsEvent() && !i.EndsAt.IsZero() && !i.EndsAt.After(now)
}

// VenueKey groups items that happen at the same venue.
func (i *Item) VenueKey() string {
	if i.VenueName != "" {
		return i.VenueName
	}

	return i.Ref.String()
}
