package repository_test

import (
	"context"
	"fmt"

	"github.com/nikolayk812/ceramics-cart/internal/migrations"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

// startPostgres starts an empty database, callers decide whether to migrate it.
func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	postgresContainer, err := postgres.Run(ctx, "postgres:17.6-alpine3.22",
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", fmt.Errorf("pc.ConnectionString: %w", err)
	}

	return postgresContainer, connStr, nil
}

func startMigratedPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	postgresContainer, connStr, err := startPostgres(ctx)
	if err != nil {
		return nil, "", err
	}

	if err := migrations.Up(connStr); err != nil {
		return postgresContainer, "", fmt.Errorf("migrations.Up: %w", err)
	}

	return postgresContainer, connStr, nil
}
