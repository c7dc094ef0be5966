// Package curator defines the contract of an external curator that picks and
// explains suggestions from a shortlist of ranked candidates.
package curator

import (
	"context"
	"discovery/pkg/domain"
	"time"
)

// Candidate is the view of a shortlisted listing sent to a curator.
type Candidate struct {
	Ref        domain.ItemRef
	Title      string
	Category   string
	Tags       []string
	VenueName  string
	PriceLevel int
	StartsAt   time.Time // StartsAt is zero for places.
	Score      float64   // Score is the deterministic ranking score.
}

// Request asks a curator for up to Count picks among Candidates.
type Request struct {
	UserID domain.UserID
	// TopCategories and TopTags summarize the user's taste, strongest first.
	TopCategories []string
	TopTags       []string
	Candidates    []Candidate
	Count         int
	Now           time.Time
}

// Pick is a curator's choice. Ref is expected to reference a candidate of the
// request; callers must validate it.
type Pick struct {
	Ref    domain.ItemRef
	Reason string
}

// Curator is the abstraction for suggestion curators.
//
//go:generate mockgen -package mockcurator -source=interface.go -destination=mock/mockcurator.go *
type Curator interface {
	// Curate returns the picks in preference order.
	Curate(ctx context.Context, req Request) ([]Pick, error)
}
