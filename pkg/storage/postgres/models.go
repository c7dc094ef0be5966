package postgres

import (
	"database/sql"
	"discovery/pkg/domain"
	"discovery/pkg/geo"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PgEvent is a row of the events table.
type PgEvent struct {
	ID          uuid.UUID       `db:"id"          goqu:"skipinsert"`
	CuratorID   uuid.UUID       `db:"curator_id"`
	PlaceID     uuid.NullUUID   `db:"place_id"`
	Title       string          `db:"title"`
	Description string          `db:"description"`
	Category    string          `db:"category"`
	Tags        json.RawMessage `db:"tags"`
	VenueName   string          `db:"venue_name"`
	Lat         float64         `db:"lat"`
	Lon         float64         `db:"lon"`
	PriceLevel  int             `db:"price_level"`
	StartsAt    time.Time       `db:"starts_at"`
	EndsAt      time.Time       `db:"ends_at"`
	CreatedAt   time.Time       `db:"created_at"  goqu:"skipinsert"`
	DeletedAt   sql.NullTime    `db:"deleted_at"  goqu:"skipinsert"`
}

func (p *PgEvent) ToDomain() (*domain.Event, error) {
	tags, err := decodeTags(p.Tags)
	if err != nil {
		return nil, err
	}

	var placeID *uuid.UUID
	if p.PlaceID.Valid {
		id := p.PlaceID.UUID
		placeID = &id
	}

	return &domain.Event{
		ID:          p.ID,
		CuratorID:   domain.UserID(p.CuratorID),
		PlaceID:     placeID,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Tags:        tags,
		VenueName:   p.VenueName,
		Location:    geo.Point{Lat: p.Lat, Lon: p.Lon},
		PriceLevel:  p.PriceLevel,
		StartsAt:    p.StartsAt,
		EndsAt:      p.EndsAt,
		CreatedAt:   p.CreatedAt,
	}, nil
}

func (p *PgEvent) FromDomain(e domain.Event) error {
	tags, err := encodeTags(e.Tags)
	if err != nil {
		return err
	}

	placeID := uuid.NullUUID{}
	if e.PlaceID != nil {
		placeID = uuid.NullUUID{UUID: *e.PlaceID, Valid: true}
	}

	*p = PgEvent{
		ID:          e.ID,
		CuratorID:   uuid.UUID(e.CuratorID),
		PlaceID:     placeID,
		Title:       e.Title,
		Description: e.Description,
		Category:    e.Category,
		Tags:        tags,
		VenueName:   e.VenueName,
		Lat:         e.Location.Lat,
		Lon:         e.Location.Lon,
		PriceLevel:  e.PriceLevel,
		StartsAt:    e.StartsAt,
		EndsAt:      e.EndsAt,
		CreatedAt:   e.CreatedAt,
	}

	return nil
}

// PgPlace is a row of the places table.
type PgPlace struct {
	ID           uuid.UUID       `db:"id"           goqu:"skipinsert"`
	CuratorID    uuid.UUID       `db:"curator_id"`
	Name         string          `db:"name"`
	Description  string          `db:"description"`
	Category     string          `db:"category"`
	Tags         json.RawMessage `db:"tags"`
	Neighborhood string          `db:"neighborhood"`
	Lat          float64         `db:"lat"`
	Lon          float64         `db:"lon"`
	PriceLevel   int             `db:"price_level"`
	CreatedAt    time.Time       `db:"created_at"   goqu:"skipinsert"`
	DeletedAt    sql.NullTime    `db:"deleted_at"   goqu:"skipinsert"`
}

func (p *PgPlace) ToDomain() (*domain.Place, error) {
	tags, err := decodeTags(p.Tags)
	if err != nil {
		return nil, err
	}

	return &domain.Place{
		ID:           p.ID,
		CuratorID:    domain.UserID(p.CuratorID),
		Name:         p.Name,
		Description:  p.Description,
		Category:     p.Category,
		Tags:         tags,
		Neighborhood: p.Neighborhood,
		Location:     geo.Point{Lat: p.Lat, Lon: p.Lon},
		PriceLevel:   p.PriceLevel,
		CreatedAt:    p.CreatedAt,
	}, nil
}

func (p *PgPlace) FromDomain(pl domain.Place) error {
	tags, err := encodeTags(pl.Tags)
	if err != nil {
		return err
	}

	*p = PgPlace{
		ID:           pl.ID,
		CuratorID:    uuid.UUID(pl.CuratorID),
		Name:         pl.Name,
		Description:  pl.Description,
		Category:     pl.Category,
		Tags:         tags,
		Neighborhood: pl.Neighborhood,
		Lat:          pl.Location.Lat,
		Lon:          pl.Location.Lon,
		PriceLevel:   pl.PriceLevel,
		CreatedAt:    pl.CreatedAt,
	}

	return nil
}

// PgItem is the projection shared by events and places; see itemColumns.
type PgItem struct {
	Kind         string          `db:"kind"`
	ID           uuid.UUID       `db:"id"`
	Title        string          `db:"title"`
	Category     string          `db:"category"`
	Tags         json.RawMessage `db:"tags"`
	Neighborhood string          `db:"neighborhood"`
	VenueName    string          `db:"venue_name"`
	Lat          float64         `db:"lat"`
	Lon          float64         `db:"lon"`
	PriceLevel   int             `db:"price_level"`
	CuratorID    uuid.UUID       `db:"curator_id"`
	StartsAt     sql.NullTime    `db:"starts_at"`
	EndsAt       sql.NullTime    `db:"ends_at"`
	CreatedAt    time.Time       `db:"created_at"`
	SaveCount    int             `db:"save_count"`
}

func (p *PgItem) ToDomain() (*domain.Item, error) {
	tags, err := decodeTags(p.Tags)
	if err != nil {
		return nil, err
	}

	return &domain.Item{
		Ref:          domain.ItemRef{Kind: domain.ItemKind(p.Kind), ID: p.ID},
		Title:        p.Title,
		Category:     p.Category,
		Tags:         tags,
		Neighborhood: p.Neighborhood,
		VenueName:    p.VenueName,
		Location:     geo.Point{Lat: p.Lat, Lon: p.Lon},
		PriceLevel:   p.PriceLevel,
		CuratorID:    domain.UserID(p.CuratorID),
		StartsAt:     p.StartsAt.Time,
		EndsAt:       p.EndsAt.Time,
		CreatedAt:    p.CreatedAt,
		SaveCount:    p.SaveCount,
	}, nil
}

// PgSave is a row of the saves table.
type PgSave struct {
	UserID    uuid.UUID `db:"user_id"`
	ItemKind  string    `db:"item_kind"`
	ItemID    uuid.UUID `db:"item_id"`
	List      string    `db:"list"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgSave) ToDomain() *domain.Save {
	return &domain.Save{
		UserID:    domain.UserID(p.UserID),
		Ref:       domain.ItemRef{Kind: domain.ItemKind(p.ItemKind), ID: p.ItemID},
		List:      p.List,
		CreatedAt: p.CreatedAt,
	}
}

// PgFollow is a row of the follows table.
type PgFollow struct {
	FollowerID uuid.UUID `db:"follower_id"`
	CuratorID  uuid.UUID `db:"curator_id"`
	CreatedAt  time.Time `db:"created_at"  goqu:"skipinsert"`
}

// PgInteraction is a row of the interactions table.
type PgInteraction struct {
	ID         int64     `db:"id"          goqu:"skipinsert"`
	UserID     uuid.UUID `db:"user_id"`
	ItemKind   string    `db:"item_kind"`
	ItemID     uuid.UUID `db:"item_id"`
	Action     string    `db:"action"`
	OccurredAt time.Time `db:"occurred_at"`
}

func (p *PgInteraction) ToDomain() domain.Interaction {
	return domain.Interaction{
		UserID:     domain.UserID(p.UserID),
		Ref:        domain.ItemRef{Kind: domain.ItemKind(p.ItemKind), ID: p.ItemID},
		Action:     domain.Action(p.Action),
		OccurredAt: p.OccurredAt,
	}
}

// PgSuggestionBatch is a row of the suggestion_batches table.
type PgSuggestionBatch struct {
	UserID      uuid.UUID       `db:"user_id"`
	Source      string          `db:"source"`
	Items       json.RawMessage `db:"items"`
	GeneratedAt time.Time       `db:"generated_at"`
}

func (p *PgSuggestionBatch) ToDomain() (*domain.SuggestionBatch, error) {
	var items []domain.Suggestion
	if err := json.Unmarshal(p.Items, &items); err != nil {
		return nil, fmt.Errorf("could not unmarshal suggestions: %w", err)
	}

	return &domain.SuggestionBatch{
		UserID:      domain.UserID(p.UserID),
		Source:      domain.SuggestionSource(p.Source),
		Items:       items,
		GeneratedAt: p.GeneratedAt,
	}, nil
}

func (p *PgSuggestionBatch) FromDomain(batch domain.SuggestionBatch) error {
	items := batch.Items
	if items == nil {
		items = []domain.Suggestion{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("could not marshal suggestions: %w", err)
	}

	*p = PgSuggestionBatch{
		UserID:      uuid.UUID(batch.UserID),
		Source:      string(batch.Source),
		Items:       b,
		GeneratedAt: batch.GeneratedAt,
	}

	return nil
}

func encodeTags(tags []string) (json.RawMessage, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("could not marshal tags: %w", err)
	}

	return b, nil
}

func decodeTags(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil, fmt.Errorf("could not unmarshal tags: %w", err)
	}

	return tags, nil
}

func pgEventsToDomain(rows []PgEvent) ([]domain.Event, error) {
	out := make([]domain.Event, 0, len(rows))
	for i := range rows {
		e, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}

	return out, nil
}

func pgPlacesToDomain(rows []PgPlace) ([]domain.Place, error) {
	out := make([]domain.Place, 0, len(rows))
	for i := range rows {
		p, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}

	return out, nil
}

func pgItemsToDomain(rows []PgItem) ([]domain.Item, error) {
	out := make([]domain.Item, 0, len(rows))
	for i := range rows {
		it, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *it)
	}

	return out, nil
}
