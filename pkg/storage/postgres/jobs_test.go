package postgres_test

import (
	"context"
	"database/sql"
	"discovery/pkg/storage"
	"discovery/pkg/storage/postgres"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/riverqueue/river/rivertest"
	"github.com/stretchr/testify/require"
)

type refreshArgs struct {
	UserID string `json:"userId"`
}

func (refreshArgs) Kind() string { return "test_refresh" }

func migrateRiver(t *testing.T, pg *postgres.PgSQL) {
	t.Helper()

	migrator, err := rivermigrate.New(riverdatabasesql.New(pg.DB.(*sql.DB)), nil)
	require.NoError(t, err)
	_, err = migrator.Migrate(t.Context(), rivermigrate.DirectionUp, nil)
	require.NoError(t, err)
}

func uniqueOpts() *river.InsertOpts {
	return &river.InsertOpts{
		UniqueOpts: river.UniqueOpts{ByArgs: true, ByPeriod: time.Hour},
	}
}

func TestPgSQL_AddJob(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	migrateRiver(t, pg)
	ctx := context.Background()

	inserted, err := pg.AddJob(ctx, refreshArgs{UserID: "a"}, uniqueOpts())
	require.NoError(t, err)
	require.True(t, inserted)

	rivertest.RequireInserted[*riverdatabasesql.Driver](ctx, t,
		riverdatabasesql.New(pg.DB.(*sql.DB)), &refreshArgs{}, nil)

	inserted, err = pg.AddJob(ctx, refreshArgs{UserID: "a"}, uniqueOpts())
	require.NoError(t, err)
	require.False(t, inserted, "duplicate unique job must be skipped")

	inserted, err = pg.AddJob(ctx, refreshArgs{UserID: "b"}, uniqueOpts())
	require.NoError(t, err)
	require.True(t, inserted)
}

func TestPgSQL_AddJob_WithinTransaction(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	migrateRiver(t, pg)
	ctx := context.Background()

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = tx.Rollback() })

	inserted, err := tx.AddJob(ctx, refreshArgs{UserID: "c"}, nil)
	require.NoError(t, err)
	require.True(t, inserted)

	rivertest.RequireInsertedTx[*riverdatabasesql.Driver](ctx, t,
		tx.(*postgres.PgSQL).DB.(*sql.Tx), &refreshArgs{}, nil)
	rivertest.RequireNotInserted[*riverdatabasesql.Driver](ctx, t,
		riverdatabasesql.New(pg.DB.(*sql.DB)), &refreshArgs{}, nil)
}

func TestPgSQL_AddJob_WithoutClient(t *testing.T) {
	t.Parallel()

	_, err := (&postgres.PgSQL{}).AddJob(context.Background(), refreshArgs{}, nil)
	require.ErrorIs(t, err, storage.ErrNoJobQueue)
}
