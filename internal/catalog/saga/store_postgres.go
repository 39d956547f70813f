// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package saga

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adriaferrer/kiroku/internal/platform/database/schema"
	"github.com/adriaferrer/kiroku/internal/platform/dberr"
)

// PostgresRepository implements the [Repository] interface using pgx.
//
// Member titles are stored as a PostgreSQL TEXT[] column; pgx maps it to
// []string directly.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the saga [Repository].
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// ListSagas returns every saga ordered by name.
func (repository *PostgresRepository) ListSagas(ctx context.Context) ([]*Saga, error) {
	query := fmt.Sprintf(
		"SELECT %s, %s, %s FROM %s ORDER BY %s",
		schema.Sagas.Name, schema.Sagas.WorkTitles, schema.Sagas.UpdatedAt,
		schema.Sagas.Table, schema.Sagas.Name,
	)

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_saga_repo_list_failed: %w", err)
	}
	defer rows.Close()

	sagas := []*Saga{}
	for rows.Next() {
		entity := &Saga{}
		if err := rows.Scan(&entity.Name, &entity.WorkTitles, &entity.UpdatedAt); err != nil {
			return nil, fmt.Errorf("postgres_saga_repo_scan_failed: %w", err)
		}
		sagas = append(sagas, entity)
	}

	return sagas, rows.Err()
}

// GetSaga retrieves a single saga by name.
func (repository *PostgresRepository) GetSaga(ctx context.Context, name string) (*Saga, error) {
	query := fmt.Sprintf(
		"SELECT %s, %s, %s FROM %s WHERE %s = $1",
		schema.Sagas.Name, schema.Sagas.WorkTitles, schema.Sagas.UpdatedAt,
		schema.Sagas.Table, schema.Sagas.Name,
	)

	entity := &Saga{}
	err := repository.pool.QueryRow(ctx, query, name).Scan(&entity.Name, &entity.WorkTitles, &entity.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "saga_get")
	}

	return entity, nil
}

// UpsertSaga inserts a saga or replaces the member list of the existing row.
func (repository *PostgresRepository) UpsertSaga(ctx context.Context, entity *Saga) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s,
			%s = NOW()
		RETURNING %s`,
		schema.Sagas.Table, schema.Sagas.Name, schema.Sagas.WorkTitles,
		schema.Sagas.Name,
		schema.Sagas.WorkTitles, schema.Sagas.WorkTitles,
		schema.Sagas.UpdatedAt,
		schema.Sagas.UpdatedAt,
	)

	err := repository.pool.QueryRow(ctx, query, entity.Name, entity.WorkTitles).Scan(&entity.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "saga_upsert")
	}

	return nil
}

// DeleteSaga removes a saga row by name.
func (repository *PostgresRepository) DeleteSaga(ctx context.Context, name string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.Sagas.Table, schema.Sagas.Name)

	tag, err := repository.pool.Exec(ctx, query, name)
	if err != nil {
		return fmt.Errorf("postgres_saga_repo_delete_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
