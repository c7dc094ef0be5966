package postgres

import (
	"cmp"
	"context"
	"discovery/pkg/domain"
	"discovery/pkg/storage"
	"fmt"
	"slices"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	eventsTable = "events"
	placesTable = "places"
)

// tableOf returns the table that stores listings of kind.
func tableOf(kind domain.ItemKind) (string, error) {
	switch kind {
	case domain.ItemKindEvent:
		return eventsTable, nil
	case domain.ItemKindPlace:
		return placesTable, nil
	default:
		return "", fmt.Errorf("unknown item kind %q", kind)
	}
}

// itemColumns projects a row of the table storing kind onto PgItem. Places
// act as their own venue and have no schedule.
func itemColumns(kind domain.ItemKind, table string) []interface{} {
	saveCount := goqu.L(
		"(SELECT COUNT(*) FROM saves s WHERE s.item_kind = ? AND s.item_id = "+table+".id)",
		string(kind),
	).As("save_count")

	if kind == domain.ItemKindEvent {
		return []interface{}{
			goqu.L("?", string(kind)).As("kind"),
			goqu.I(table + ".id"), "title", "category", "tags",
			goqu.L("''").As("neighborhood"),
			"venue_name", "lat", "lon", "price_level", "curator_id",
			"starts_at", "ends_at", goqu.I(table + ".created_at"),
			saveCount,
		}
	}

	return []interface{}{
		goqu.L("?", string(kind)).As("kind"),
		goqu.I(table + ".id"), goqu.I("name").As("title"), "category", "tags",
		"neighborhood",
		goqu.I("name").As("venue_name"), "lat", "lon", "price_level", "curator_id",
		goqu.L("NULL::timestamptz").As("starts_at"),
		goqu.L("NULL::timestamptz").As("ends_at"),
		goqu.I(table + ".created_at"),
		saveCount,
	}
}

func (p *PgSQL) StoreEvents(ctx context.Context, events ...domain.Event) ([]domain.Event, error) {
	if len(events) == 0 {
		return nil, nil
	}

	rows := make([]PgEvent, len(events))
	for i := range events {
		if err := rows[i].FromDomain(events[i]); err != nil {
			return nil, err
		}
	}

	var result []PgEvent
	if err := p.Builder.Insert(eventsTable).
		Rows(rows).
		Returning(&PgEvent{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store events into pg: %w", err)
	}

	return pgEventsToDomain(result)
}

func (p *PgSQL) StorePlaces(ctx context.Context, places ...domain.Place) ([]domain.Place, error) {
	if len(places) == 0 {
		return nil, nil
	}

	rows := make([]PgPlace, len(places))
	for i := range places {
		if err := rows[i].FromDomain(places[i]); err != nil {
			return nil, err
		}
	}

	var result []PgPlace
	if err := p.Builder.Insert(placesTable).
		Rows(rows).
		Returning(&PgPlace{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store places into pg: %w", err)
	}

	return pgPlacesToDomain(result)
}

// EventByID returns a non-deleted event, or nil when there is none.
func (p *PgSQL) EventByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	var row PgEvent
	found, err := p.Builder.From(eventsTable).
		Where(
			goqu.I("id").Eq(id),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch event by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// PlaceByID returns a non-deleted place, or nil when there is none.
func (p *PgSQL) PlaceByID(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	var row PgPlace
	found, err := p.Builder.From(placesTable).
		Where(
			goqu.I("id").Eq(id),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch place by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// ItemsInBox filters on the (lat, lon) index only; exact distance filtering is
// left to the caller.
func (p *PgSQL) ItemsInBox(ctx context.Context, kind domain.ItemKind, q storage.BoxQuery) ([]domain.Item, error) {
	table, err := tableOf(kind)
	if err != nil {
		return nil, err
	}

	w := []exp.Expression{
		goqu.I("lat").Between(goqu.Range(q.Box.MinLat, q.Box.MaxLat)),
		goqu.I("lon").Between(goqu.Range(q.Box.MinLon, q.Box.MaxLon)),
		goqu.I(table + ".deleted_at").IsNull(),
	}
	if q.Category != "" {
		w = append(w, goqu.I("category").Eq(q.Category))
	}
	if kind == domain.ItemKindEvent {
		if !q.EndsAfter.IsZero() {
			w = append(w, goqu.I("ends_at").Gt(q.EndsAfter))
		}
		if !q.StartsBefore.IsZero() {
			w = append(w, goqu.I("starts_at").Lt(q.StartsBefore))
		}
	}

	ds := p.Builder.From(table).
		Select(itemColumns(kind, table)...).
		Where(w...).
		Order(goqu.I(table + ".id").Asc())
	if q.Limit > 0 {
		ds = ds.Limit(q.Limit)
	}

	var rows []PgItem
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch %s in box from pg: %w", table, err)
	}

	return pgItemsToDomain(rows)
}

// Candidates reads the top of every kind, then merges them most saved first
// and cuts the merged pool to q.Limit.
func (p *PgSQL) Candidates(ctx context.Context, q storage.CandidateQuery) ([]domain.Item, error) {
	kinds := q.Kinds
	if len(kinds) == 0 {
		kinds = domain.AllItemKinds
	}

	var out []domain.Item
	for i, kind := range kinds {
		if slices.Contains(kinds[:i], kind) {
			continue
		}

		table, err := tableOf(kind)
		if err != nil {
			return nil, err
		}

		w := []exp.Expression{
			goqu.I(table + ".deleted_at").IsNull(),
		}
		if kind == domain.ItemKindEvent {
			w = append(w, goqu.I("ends_at").Gt(q.Now))
			if q.EventWindow > 0 {
				w = append(w, goqu.I("starts_at").Lt(q.Now.Add(q.EventWindow)))
			}
		}
		if q.ExcludeUser != nil {
			uid := uuid.UUID(*q.ExcludeUser)
			w = append(w,
				goqu.L("NOT EXISTS (SELECT 1 FROM saves s WHERE s.user_id = ? AND s.item_kind = ? AND s.item_id = "+
					table+".id)", uid, string(kind)),
				goqu.L("NOT EXISTS (SELECT 1 FROM interactions i WHERE i.user_id = ? AND i.item_kind = ? "+
					"AND i.action = ? AND i.item_id = "+table+".id)", uid, string(kind), string(domain.ActionDismiss)),
			)
		}

		ds := p.Builder.From(table).
			Select(itemColumns(kind, table)...).
			Where(w...).
			Order(goqu.I("save_count").Desc(), goqu.I(table+".created_at").Desc())
		if q.Limit > 0 {
			ds = ds.Limit(q.Limit)
		}

		var rows []PgItem
		if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
			return nil, fmt.Errorf("could not fetch %s candidates from pg: %w", table, err)
		}

		items, err := pgItemsToDomain(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
	}

	slices.SortStableFunc(out, func(a, b domain.Item) int {
		if c := cmp.Compare(b.SaveCount, a.SaveCount); c != 0 {
			return c
		}

		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if q.Limit > 0 && uint(len(out)) > q.Limit {
		out = out[:q.Limit]
	}

	return out, nil
}

func (p *PgSQL) ItemsByRefs(ctx context.Context, refs []domain.ItemRef) ([]domain.Item, error) {
	idsByKind := map[domain.ItemKind][]string{}
	for _, ref := range refs {
		idsByKind[ref.Kind] = append(idsByKind[ref.Kind], ref.ID.String())
	}

	var out []domain.Item
	for _, kind := range domain.AllItemKinds {
		ids := idsByKind[kind]
		if len(ids) == 0 {
			continue
		}
		table, err := tableOf(kind)
		if err != nil {
			return nil, err
		}

		var rows []PgItem
		if err := p.Builder.From(table).
			Select(itemColumns(kind, table)...).
			Where(
				goqu.I(table+".id").In(ids),
				goqu.I(table+".deleted_at").IsNull(),
			).
			Executor().ScanStructsContext(ctx, &rows); err != nil {
			return nil, fmt.Errorf("could not fetch %s by refs from pg: %w", table, err)
		}

		items, err := pgItemsToDomain(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
	}

	return out, nil
}
