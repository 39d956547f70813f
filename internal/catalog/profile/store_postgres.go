// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package profile

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adriaferrer/kiroku/internal/platform/database/schema"
	"github.com/adriaferrer/kiroku/internal/platform/dberr"
)

// PostgresRepository implements the [Repository] interface using pgx.
//
// The config table holds exactly one row with id = 1; the migration seeds
// it, so reads never miss.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the profile [Repository].
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// GetProfile reads the singleton configuration row.
func (repository *PostgresRepository) GetProfile(ctx context.Context) (*Profile, error) {
	query := fmt.Sprintf(
		"SELECT %s, %s, %s, %s FROM %s WHERE %s = 1",
		schema.SiteConfig.Username, schema.SiteConfig.Bio,
		schema.SiteConfig.DecoPairs, schema.SiteConfig.DecoGroups,
		schema.SiteConfig.Table, schema.SiteConfig.ID,
	)

	entity := &Profile{}
	err := repository.pool.QueryRow(ctx, query).Scan(
		&entity.Username,
		&entity.Bio,
		&entity.DecoPairs,
		&entity.DecoGroups,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "profile_get")
	}

	return entity, nil
}

// PutProfile replaces the singleton configuration row.
func (repository *PostgresRepository) PutProfile(ctx context.Context, entity *Profile) error {
	query := fmt.Sprintf(
		"UPDATE %s SET %s = $1, %s = $2, %s = $3, %s = $4 WHERE %s = 1",
		schema.SiteConfig.Table,
		schema.SiteConfig.Username, schema.SiteConfig.Bio,
		schema.SiteConfig.DecoPairs, schema.SiteConfig.DecoGroups,
		schema.SiteConfig.ID,
	)

	_, err := repository.pool.Exec(ctx, query,
		entity.Username,
		entity.Bio,
		entity.DecoPairs,
		entity.DecoGroups,
	)
	if err != nil {
		return fmt.Errorf("postgres_profile_repo_put_failed: %w", err)
	}

	return nil
}
