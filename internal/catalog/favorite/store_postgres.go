// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package favorite

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adriaferrer/kiroku/internal/platform/database/schema"
	"github.com/adriaferrer/kiroku/internal/platform/dberr"
)

// PostgresRepository implements the [Repository] interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the favorite [Repository].
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// ListFavorites returns the shelf ordered by rank.
func (repository *PostgresRepository) ListFavorites(ctx context.Context) ([]*Favorite, error) {
	query := fmt.Sprintf(
		"SELECT %s, %s, %s, %s FROM %s ORDER BY %s",
		schema.Favorites.SortOrder, schema.Favorites.IsSaga,
		schema.Favorites.Title, schema.Favorites.Cover,
		schema.Favorites.Table, schema.Favorites.SortOrder,
	)

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_favorite_repo_list_failed: %w", err)
	}
	defer rows.Close()

	favorites := []*Favorite{}
	for rows.Next() {
		entity := &Favorite{}
		if err := rows.Scan(&entity.SortOrder, &entity.IsSaga, &entity.Title, &entity.Cover); err != nil {
			return nil, fmt.Errorf("postgres_favorite_repo_scan_failed: %w", err)
		}
		favorites = append(favorites, entity)
	}

	return favorites, rows.Err()
}

// ReplaceFavorites swaps the whole shelf in one transaction.
//
// The delete and inserts share a transaction, so readers never observe a
// partially replaced shelf.
func (repository *PostgresRepository) ReplaceFavorites(ctx context.Context, favorites []*Favorite) error {
	deleteQuery := fmt.Sprintf("DELETE FROM %s", schema.Favorites.Table)
	insertQuery := fmt.Sprintf(
		"INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4)",
		schema.Favorites.Table,
		schema.Favorites.SortOrder, schema.Favorites.IsSaga,
		schema.Favorites.Title, schema.Favorites.Cover,
	)

	return pgx.BeginFunc(ctx, repository.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, deleteQuery); err != nil {
			return fmt.Errorf("postgres_favorite_repo_clear_failed: %w", err)
		}
		for _, entity := range favorites {
			if _, err := tx.Exec(ctx, insertQuery, entity.SortOrder, entity.IsSaga, entity.Title, entity.Cover); err != nil {
				return fmt.Errorf("postgres_favorite_repo_insert_failed: %w", err)
			}
		}
		return nil
	})
}

// DeleteByTitles removes entries whose title matches any of the given values.
func (repository *PostgresRepository) DeleteByTitles(ctx context.Context, titles []string) error {
	if len(titles) == 0 {
		return nil
	}

	query := fmt.Sprintf(
		"DELETE FROM %s WHERE %s = ANY($1)",
		schema.Favorites.Table, schema.Favorites.Title,
	)

	if _, err := repository.pool.Exec(ctx, query, titles); err != nil {
		return fmt.Errorf("postgres_favorite_repo_delete_by_titles_failed: %w", err)
	}

	return nil
}

// UpdateCover rewrites the cover of the entry at the given rank.
func (repository *PostgresRepository) UpdateCover(ctx context.Context, sortOrder int, cover string) error {
	query := fmt.Sprintf(
		"UPDATE %s SET %s = $2 WHERE %s = $1",
		schema.Favorites.Table, schema.Favorites.Cover, schema.Favorites.SortOrder,
	)

	tag, err := repository.pool.Exec(ctx, query, sortOrder, cover)
	if err != nil {
		return fmt.Errorf("postgres_favorite_repo_update_cover_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
