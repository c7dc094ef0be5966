package proximity

import (
	"context"
	"discovery/pkg/domain"
	"discovery/pkg/geo"
)

// Query describes a nearby search. Zero values fall back to the defaults of
// the Finder.
type Query struct {
	// Center of the search; nil means the configured city center.
	Center *geo.Point
	// RadiusKm must be positive when set.
	RadiusKm float64
	// Kinds restricts the listing kinds; empty means every kind.
	Kinds []domain.ItemKind
	// Category, when non-empty, only matches listings of that category.
	Category string
	// Limit caps the number of results.
	Limit int
	// UpcomingOnly drops events that already started. Ended events are
	// always dropped.
	UpcomingOnly bool
}

// Result is a listing and its distance from the query center.
type Result struct {
	Item       domain.Item `json:"item"`
	DistanceKm float64     `json:"distanceKm"`
}

//go:generate mockgen -package mockproximity -source=interface.go -destination=mock/mockproximity.go *
type Finder interface {
	Nearby(ctx context.Context, q Query) ([]Result, error)
}
