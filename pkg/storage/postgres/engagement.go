package postgres

import (
	"context"
	"discovery/pkg/domain"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	savesTable        = "saves"
	followsTable      = "follows"
	interactionsTable = "interactions"
)

func (p *PgSQL) StoreSave(ctx context.Context, save domain.Save) (*domain.Save, error) {
	if save.List == "" {
		save.List = domain.DefaultList
	}
	row := PgSave{
		UserID:   uuid.UUID(save.UserID),
		ItemKind: string(save.Ref.Kind),
		ItemID:   save.Ref.ID,
		List:     save.List,
	}

	if _, err := p.Builder.Insert(savesTable).
		Rows(row).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx); err != nil {
		return nil, fmt.Errorf("could not store save into pg: %w", err)
	}

	var stored PgSave
	found, err := p.Builder.From(savesTable).
		Where(goqu.Ex{
			"user_id":   row.UserID,
			"item_kind": row.ItemKind,
			"item_id":   row.ItemID,
			"list":      row.List,
		}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not read stored save: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("save vanished after insert")
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) DeleteSave(ctx context.Context, userID domain.UserID, ref domain.ItemRef, list string) (bool, error) {
	if list == "" {
		list = domain.DefaultList
	}

	res, err := p.Builder.Delete(savesTable).
		Where(goqu.Ex{
			"user_id":   uuid.UUID(userID),
			"item_kind": string(ref.Kind),
			"item_id":   ref.ID,
			"list":      list,
		}).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete save from pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n > 0, nil
}

func (p *PgSQL) UserSaves(ctx context.Context, userID domain.UserID, since time.Time) ([]domain.Save, error) {
	var rows []PgSave
	if err := p.Builder.From(savesTable).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("created_at").Gte(since),
		).
		Order(goqu.I("created_at").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user saves from pg: %w", err)
	}

	saves := make([]domain.Save, 0, len(rows))
	for i := range rows {
		saves = append(saves, *rows[i].ToDomain())
	}

	return saves, nil
}

func (p *PgSQL) StoreFollow(ctx context.Context, follow domain.Follow) error {
	if _, err := p.Builder.Insert(followsTable).
		Rows(PgFollow{
			FollowerID: uuid.UUID(follow.FollowerID),
			CuratorID:  uuid.UUID(follow.CuratorID),
		}).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store follow into pg: %w", err)
	}

	return nil
}

func (p *PgSQL) DeleteFollow(ctx context.Context, followerID, curatorID domain.UserID) (bool, error) {
	res, err := p.Builder.Delete(followsTable).
		Where(goqu.Ex{
			"follower_id": uuid.UUID(followerID),
			"curator_id":  uuid.UUID(curatorID),
		}).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete follow from pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n > 0, nil
}

func (p *PgSQL) FollowedCurators(ctx context.Context, userID domain.UserID) ([]domain.UserID, error) {
	var ids []uuid.UUID
	if err := p.Builder.From(followsTable).
		Select("curator_id").
		Where(goqu.I("follower_id").Eq(uuid.UUID(userID))).
		Executor().ScanValsContext(ctx, &ids); err != nil {
		return nil, fmt.Errorf("could not fetch followed curators from pg: %w", err)
	}

	out := make([]domain.UserID, len(ids))
	for i, id := range ids {
		out[i] = domain.UserID(id)
	}

	return out, nil
}

func (p *PgSQL) SavesByFollowed(ctx context.Context, userID domain.UserID) (map[domain.ItemRef]int, error) {
	var rows []struct {
		ItemKind string    `db:"item_kind"`
		ItemID   uuid.UUID `db:"item_id"`
		Count    int       `db:"count"`
	}
	if err := p.Builder.From(goqu.T(savesTable).As("s")).
		Join(goqu.T(followsTable).As("f"), goqu.On(goqu.I("f.curator_id").Eq(goqu.I("s.user_id")))).
		Select(
			goqu.I("s.item_kind"),
			goqu.I("s.item_id"),
			goqu.COUNT(goqu.DISTINCT("s.user_id")).As("count"),
		).
		Where(goqu.I("f.follower_id").Eq(uuid.UUID(userID))).
		GroupBy(goqu.I("s.item_kind"), goqu.I("s.item_id")).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not count saves by followed curators: %w", err)
	}

	out := make(map[domain.ItemRef]int, len(rows))
	for _, r := range rows {
		out[domain.ItemRef{Kind: domain.ItemKind(r.ItemKind), ID: r.ItemID}] = r.Count
	}

	return out, nil
}

func (p *PgSQL) StoreInteractions(ctx context.Context, interactions ...domain.Interaction) error {
	if len(interactions) == 0 {
		return nil
	}

	rows := make([]PgInteraction, len(interactions))
	for i, in := range interactions {
		occurredAt := in.OccurredAt
		if occurredAt.IsZero() {
			occurredAt = time.Now()
		}
		rows[i] = PgInteraction{
			UserID:     uuid.UUID(in.UserID),
			ItemKind:   string(in.Ref.Kind),
			ItemID:     in.Ref.ID,
			Action:     string(in.Action),
			OccurredAt: occurredAt,
		}
	}

	if _, err := p.Builder.Insert(interactionsTable).
		Rows(rows).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store interactions into pg: %w", err)
	}

	return nil
}

func (p *PgSQL) UserInteractions(ctx context.Context, userID domain.UserID, since time.Time) ([]domain.Interaction, error) {
	var rows []PgInteraction
	if err := p.Builder.From(interactionsTable).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("occurred_at").Gte(since),
		).
		Order(goqu.I("occurred_at").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user interactions from pg: %w", err)
	}

	out := make([]domain.Interaction, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}

	return out, nil
}

func (p *PgSQL) ActiveUsers(ctx context.Context, since time.Time, limit uint) ([]domain.UserID, error) {
	union := p.Builder.From(savesTable).
		Select("user_id").
		Where(goqu.I("created_at").Gte(since)).
		Union(
			p.Builder.From(interactionsTable).
				Select("user_id").
				Where(goqu.I("occurred_at").Gte(since)),
		)

	ds := p.Builder.From(union.As("active")).
		Select(goqu.I("active.user_id")).
		Order(goqu.I("active.user_id").Asc())
	if limit > 0 {
		ds = ds.Limit(limit)
	}

	var ids []uuid.UUID
	if err := ds.Executor().ScanValsContext(ctx, &ids); err != nil {
		return nil, fmt.Errorf("could not fetch active users from pg: %w", err)
	}

	out := make([]domain.UserID, len(ids))
	for i, id := range ids {
		out[i] = domain.UserID(id)
	}

	return out, nil
}
