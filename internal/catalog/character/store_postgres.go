// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package character

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adriaferrer/kiroku/internal/platform/database/schema"
	"github.com/adriaferrer/kiroku/internal/platform/dberr"
)

// PostgresRepository implements the [Repository] interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the character [Repository].
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// characterColumns is the canonical SELECT column list.
var characterColumns = strings.Join(schema.Characters.Columns(), ", ")

// scanCharacter reads one characters row into an entity.
func scanCharacter(row interface{ Scan(...any) error }) (*Character, error) {
	entity := &Character{}
	err := row.Scan(
		&entity.ID,
		&entity.Title,
		&entity.Cover,
		&entity.SourceID,
		&entity.CoverOffsetY,
		&entity.Category,
		&entity.SortOrder,
		&entity.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return entity, nil
}

// ListCharacters returns every character. Hall of fame entries come first,
// ordered by rank; the rest follow by creation time.
func (repository *PostgresRepository) ListCharacters(ctx context.Context) ([]*Character, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s ORDER BY %s NULLS LAST, %s",
		characterColumns, schema.Characters.Table,
		schema.Characters.SortOrder, schema.Characters.CreatedAt,
	)

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_character_repo_list_failed: %w", err)
	}
	defer rows.Close()

	characters := []*Character{}
	for rows.Next() {
		entity, err := scanCharacter(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres_character_repo_scan_failed: %w", err)
		}
		characters = append(characters, entity)
	}

	return characters, rows.Err()
}

// GetCharacter retrieves a single character by ID.
func (repository *PostgresRepository) GetCharacter(ctx context.Context, id int) (*Character, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1",
		characterColumns, schema.Characters.Table, schema.Characters.ID,
	)

	entity, err := scanCharacter(repository.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "character_get")
	}

	return entity, nil
}

// CreateCharacter inserts a new character and populates its ID and creation time.
func (repository *PostgresRepository) CreateCharacter(ctx context.Context, entity *Character) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s, %s`,
		schema.Characters.Table,
		schema.Characters.Title, schema.Characters.Cover, schema.Characters.SourceID,
		schema.Characters.CoverOffsetY, schema.Characters.Category, schema.Characters.SortOrder,
		schema.Characters.ID, schema.Characters.CreatedAt,
	)

	err := repository.pool.QueryRow(ctx, query,
		entity.Title,
		entity.Cover,
		entity.SourceID,
		entity.CoverOffsetY,
		entity.Category,
		entity.SortOrder,
	).Scan(&entity.ID, &entity.CreatedAt)

	if err != nil {
		return dberr.Wrap(err, "character_create")
	}

	return nil
}

// UpdateCharacter rewrites the mutable fields of an existing character.
func (repository *PostgresRepository) UpdateCharacter(ctx context.Context, entity *Character) error {
	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7
		WHERE %s = $1`,
		schema.Characters.Table,
		schema.Characters.Title, schema.Characters.Cover, schema.Characters.SourceID,
		schema.Characters.CoverOffsetY, schema.Characters.Category, schema.Characters.SortOrder,
		schema.Characters.ID,
	)

	tag, err := repository.pool.Exec(ctx, query,
		entity.ID,
		entity.Title,
		entity.Cover,
		entity.SourceID,
		entity.CoverOffsetY,
		entity.Category,
		entity.SortOrder,
	)
	if err != nil {
		return dberr.Wrap(err, "character_update")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

// UpdateCover rewrites only the cover column of one character.
func (repository *PostgresRepository) UpdateCover(ctx context.Context, id int, cover string) error {
	query := fmt.Sprintf(
		"UPDATE %s SET %s = $2 WHERE %s = $1",
		schema.Characters.Table, schema.Characters.Cover, schema.Characters.ID,
	)

	tag, err := repository.pool.Exec(ctx, query, id, cover)
	if err != nil {
		return fmt.Errorf("postgres_character_repo_update_cover_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

// ApplyPlacements moves characters between categories and ranks atomically.
//
// The whole batch runs in one transaction so a mid-batch failure never
// leaves the hall of fame half-reordered.
func (repository *PostgresRepository) ApplyPlacements(ctx context.Context, placements []Placement) error {
	query := fmt.Sprintf(
		"UPDATE %s SET %s = $2, %s = $3 WHERE %s = $1",
		schema.Characters.Table, schema.Characters.Category,
		schema.Characters.SortOrder, schema.Characters.ID,
	)

	return pgx.BeginFunc(ctx, repository.pool, func(tx pgx.Tx) error {
		for _, placement := range placements {
			if _, err := tx.Exec(ctx, query, placement.ID, placement.Category, placement.SortOrder); err != nil {
				return fmt.Errorf("postgres_character_repo_placement_failed: %w", err)
			}
		}
		return nil
	})
}

// ApplyOffsets adjusts cover crops atomically.
func (repository *PostgresRepository) ApplyOffsets(ctx context.Context, changes []OffsetChange) error {
	query := fmt.Sprintf(
		"UPDATE %s SET %s = $2 WHERE %s = $1",
		schema.Characters.Table, schema.Characters.CoverOffsetY, schema.Characters.ID,
	)

	return pgx.BeginFunc(ctx, repository.pool, func(tx pgx.Tx) error {
		for _, change := range changes {
			if _, err := tx.Exec(ctx, query, change.ID, change.CoverOffsetY); err != nil {
				return fmt.Errorf("postgres_character_repo_offset_failed: %w", err)
			}
		}
		return nil
	})
}

// DeleteCharacter removes a character row by ID.
func (repository *PostgresRepository) DeleteCharacter(ctx context.Context, id int) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.Characters.Table, schema.Characters.ID)

	tag, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "character_delete")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
