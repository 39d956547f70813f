// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package album

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adriaferrer/kiroku/internal/platform/database/schema"
	"github.com/adriaferrer/kiroku/internal/platform/dberr"
)

// PostgresRepository implements the [Repository] interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the album [Repository].
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// albumColumns is the canonical SELECT column list.
var albumColumns = strings.Join(schema.Music.Columns(), ", ")

// scanAlbum reads one music row into an entity.
func scanAlbum(row interface{ Scan(...any) error }) (*Album, error) {
	entity := &Album{}
	err := row.Scan(
		&entity.ID,
		&entity.Title,
		&entity.Artist,
		&entity.Album,
		&entity.Cover,
		&entity.Year,
		&entity.Score,
		&entity.CoverOffsetY,
		&entity.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return entity, nil
}

// ListAlbums returns every album, newest first.
func (repository *PostgresRepository) ListAlbums(ctx context.Context) ([]*Album, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s ORDER BY %s DESC",
		albumColumns, schema.Music.Table, schema.Music.CreatedAt,
	)

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_album_repo_list_failed: %w", err)
	}
	defer rows.Close()

	albums := []*Album{}
	for rows.Next() {
		entity, err := scanAlbum(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres_album_repo_scan_failed: %w", err)
		}
		albums = append(albums, entity)
	}

	return albums, rows.Err()
}

// GetAlbum retrieves a single album by ID.
func (repository *PostgresRepository) GetAlbum(ctx context.Context, id int) (*Album, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1",
		albumColumns, schema.Music.Table, schema.Music.ID,
	)

	entity, err := scanAlbum(repository.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "album_get")
	}

	return entity, nil
}

// CreateAlbum inserts a new album and populates its ID and creation time.
func (repository *PostgresRepository) CreateAlbum(ctx context.Context, entity *Album) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s, %s`,
		schema.Music.Table,
		schema.Music.Title, schema.Music.Artist, schema.Music.Album, schema.Music.Cover,
		schema.Music.Year, schema.Music.Score, schema.Music.CoverOffsetY,
		schema.Music.ID, schema.Music.CreatedAt,
	)

	err := repository.pool.QueryRow(ctx, query,
		entity.Title,
		entity.Artist,
		entity.Album,
		entity.Cover,
		entity.Year,
		entity.Score,
		entity.CoverOffsetY,
	).Scan(&entity.ID, &entity.CreatedAt)

	if err != nil {
		return dberr.Wrap(err, "album_create")
	}

	return nil
}

// UpdateAlbum rewrites the mutable fields of an existing album.
func (repository *PostgresRepository) UpdateAlbum(ctx context.Context, entity *Album) error {
	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8
		WHERE %s = $1`,
		schema.Music.Table,
		schema.Music.Title, schema.Music.Artist, schema.Music.Album, schema.Music.Cover,
		schema.Music.Year, schema.Music.Score, schema.Music.CoverOffsetY,
		schema.Music.ID,
	)

	tag, err := repository.pool.Exec(ctx, query,
		entity.ID,
		entity.Title,
		entity.Artist,
		entity.Album,
		entity.Cover,
		entity.Year,
		entity.Score,
		entity.CoverOffsetY,
	)
	if err != nil {
		return dberr.Wrap(err, "album_update")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

// UpdateOffset adjusts only the cover_offset_y column of one album.
func (repository *PostgresRepository) UpdateOffset(ctx context.Context, id, coverOffsetY int) error {
	query := fmt.Sprintf(
		"UPDATE %s SET %s = $2 WHERE %s = $1",
		schema.Music.Table, schema.Music.CoverOffsetY, schema.Music.ID,
	)

	tag, err := repository.pool.Exec(ctx, query, id, coverOffsetY)
	if err != nil {
		return dberr.Wrap(err, "album_offset_update")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

// DeleteAlbum removes an album row by ID.
func (repository *PostgresRepository) DeleteAlbum(ctx context.Context, id int) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.Music.Table, schema.Music.ID)

	tag, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("postgres_album_repo_delete_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
