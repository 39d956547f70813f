// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package edition

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adriaferrer/kiroku/internal/platform/database/schema"
	"github.com/adriaferrer/kiroku/internal/platform/dberr"
)

// PostgresRepository implements the [Repository] interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the edition [Repository].
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// versionColumns is the canonical SELECT column list.
var versionColumns = fmt.Sprintf("%s, %s, %s, %s, %s",
	schema.GameVersions.MainID, schema.GameVersions.EditionID,
	schema.GameVersions.MainTitle, schema.GameVersions.EditionTitle,
	schema.GameVersions.VersionType,
)

// scanVersion reads one game_versions row into an entity.
func scanVersion(row interface{ Scan(...any) error }) (*GameVersion, error) {
	entity := &GameVersion{}
	err := row.Scan(
		&entity.MainID,
		&entity.EditionID,
		&entity.MainTitle,
		&entity.EditionTitle,
		&entity.VersionType,
	)
	if err != nil {
		return nil, err
	}
	return entity, nil
}

// ListVersions returns every mapping ordered by main title.
func (repository *PostgresRepository) ListVersions(ctx context.Context) ([]*GameVersion, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s ORDER BY %s, %s",
		versionColumns, schema.GameVersions.Table,
		schema.GameVersions.MainTitle, schema.GameVersions.EditionTitle,
	)

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_edition_repo_list_failed: %w", err)
	}
	defer rows.Close()

	versions := []*GameVersion{}
	for rows.Next() {
		entity, err := scanVersion(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres_edition_repo_scan_failed: %w", err)
		}
		versions = append(versions, entity)
	}

	return versions, rows.Err()
}

// VersionsByMain returns the mappings of one main game.
func (repository *PostgresRepository) VersionsByMain(ctx context.Context, mainID int64) ([]*GameVersion, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1 ORDER BY %s",
		versionColumns, schema.GameVersions.Table,
		schema.GameVersions.MainID, schema.GameVersions.EditionTitle,
	)

	rows, err := repository.pool.Query(ctx, query, mainID)
	if err != nil {
		return nil, fmt.Errorf("postgres_edition_repo_by_main_failed: %w", err)
	}
	defer rows.Close()

	versions := []*GameVersion{}
	for rows.Next() {
		entity, err := scanVersion(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres_edition_repo_scan_failed: %w", err)
		}
		versions = append(versions, entity)
	}

	return versions, rows.Err()
}

// EditionIDs returns the set of every known edition IGDB ID.
func (repository *PostgresRepository) EditionIDs(ctx context.Context) (map[int64]struct{}, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s",
		schema.GameVersions.EditionID, schema.GameVersions.Table,
	)

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_edition_repo_ids_failed: %w", err)
	}
	defer rows.Close()

	ids := map[int64]struct{}{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("postgres_edition_repo_scan_failed: %w", err)
		}
		ids[id] = struct{}{}
	}

	return ids, rows.Err()
}

// CreateVersion inserts a new mapping.
//
// The unique constraint on the edition ID turns re-mapping attempts into a
// Conflict error via [dberr.Wrap].
func (repository *PostgresRepository) CreateVersion(ctx context.Context, entity *GameVersion) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)`,
		schema.GameVersions.Table,
		schema.GameVersions.MainID, schema.GameVersions.EditionID,
		schema.GameVersions.MainTitle, schema.GameVersions.EditionTitle,
		schema.GameVersions.VersionType,
	)

	_, err := repository.pool.Exec(ctx, query,
		entity.MainID,
		entity.EditionID,
		entity.MainTitle,
		entity.EditionTitle,
		entity.VersionType,
	)
	if err != nil {
		return dberr.Wrap(err, "edition_create")
	}

	return nil
}

// DeleteVersion removes a mapping by its edition IGDB ID.
func (repository *PostgresRepository) DeleteVersion(ctx context.Context, editionID int64) error {
	query := fmt.Sprintf(
		"DELETE FROM %s WHERE %s = $1",
		schema.GameVersions.Table, schema.GameVersions.EditionID,
	)

	tag, err := repository.pool.Exec(ctx, query, editionID)
	if err != nil {
		return fmt.Errorf("postgres_edition_repo_delete_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
