//go:build integration

package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

func startPostgres(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("codecompanion"),
		postgres.WithUsername("codecompanion"),
		postgres.WithPassword("codecompanion"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	return dsn
}

func TestUsers_Postgres(t *testing.T) {
	dsn := startPostgres(t)

	exerciseUsers(t, connect(t, dsn))

	require.NoError(t, MigrateDown(dsn))
	version, _, err := MigrationVersion(dsn)
	require.NoError(t, err)
	require.Zero(t, version)
}
