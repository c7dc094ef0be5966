package postgres

import (
	"context"
	"discovery/pkg/domain"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const suggestionBatchesTable = "suggestion_batches"

// StoreSuggestions upserts the batch, so each user keeps only the latest one.
func (p *PgSQL) StoreSuggestions(ctx context.Context, batch domain.SuggestionBatch) error {
	var row PgSuggestionBatch
	if err := row.FromDomain(batch); err != nil {
		return err
	}

	if _, err := p.Builder.Insert(suggestionBatchesTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("user_id", goqu.Record{
			"source":       goqu.L("EXCLUDED.source"),
			"items":        goqu.L("EXCLUDED.items"),
			"generated_at": goqu.L("EXCLUDED.generated_at"),
		})).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store suggestions into pg: %w", err)
	}

	return nil
}

func (p *PgSQL) LatestSuggestions(ctx context.Context, userID domain.UserID) (*domain.SuggestionBatch, error) {
	var row PgSuggestionBatch
	found, err := p.Builder.From(suggestionBatchesTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch suggestions from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
