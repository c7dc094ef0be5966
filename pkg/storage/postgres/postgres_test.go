package postgres_test

import (
	"context"
	"database/sql"
	root "discovery"
	"discovery/pkg/storage/postgres"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "discovery"
	testPassword = "discovery"
	testDB       = "discovery_test"
)

// startPostgres runs a throwaway PostgreSQL and returns its host and port.
// The server logs "ready to accept connections" once for the init run and
// once for the real start, so the second occurrence is awaited.
func startPostgres(ctx context.Context) (testcontainers.Container, string, int, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       testDB,
			},
			WaitingFor: wait.ForAll(
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
				wait.ForListeningPort("5432/tcp"),
			).WithDeadline(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return nil, "", 0, fmt.Errorf("could not start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, "", 0, fmt.Errorf("could not get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return nil, "", 0, fmt.Errorf("could not get mapped port: %w", err)
	}

	return container, host, port.Int(), nil
}

// gooseSetup configures goose's package state once; tests run in parallel.
var gooseSetup = sync.OnceValue(func() error {
	goose.SetBaseFS(root.Migrations)

	return goose.SetDialect("postgres")
})

// migrate applies the embedded application migrations.
func migrate(db *sql.DB) error {
	if err := gooseSetup(); err != nil {
		return fmt.Errorf("could not set dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

// setupTestDB returns a migrated database in its own container.
func setupTestDB(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()
	ctx := context.Background()

	container, host, port, err := startPostgres(ctx)
	require.NoError(t, err)

	pg, err := postgres.New(ctx, postgres.Options{
		Username:           testUser,
		Password:           testPassword,
		Host:               host,
		Port:               port,
		Database:           testDB,
		SslMode:            "disable",
		ApplicationName:    t.Name(),
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 5,
		MaxIdleConnections: 1,
	})
	require.NoError(t, err)
	require.NoError(t, pg.Ping(ctx))
	require.NoError(t, migrate(pg.DB.(*sql.DB)))

	return pg, func() {
		_ = pg.Close()
		_ = container.Terminate(ctx)
	}
}
