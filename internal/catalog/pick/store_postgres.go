// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package pick

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

// NewRepository creates a new PostgreSQL implementation of the pick [Repository].
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// ListPicks returns all monthly work picks, newest month first.
//
// The "YYYY-MM" key format sorts chronologically as plain text.
func (repository *PostgresRepository) ListPicks(ctx context.Context) ([]*MonthlyPick, error) {
	query := fmt.Sprintf(
		"SELECT %s, %s, %s FROM %s ORDER BY %s DESC",
		schema.MonthlyPicks.Month, schema.MonthlyPicks.WorkTitle, schema.MonthlyPicks.Cover,
		schema.MonthlyPicks.Table, schema.MonthlyPicks.Month,
	)

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_pick_repo_list_failed: %w", err)
	}
	defer rows.Close()

	picks := []*MonthlyPick{}
	for rows.Next() {
		entity := &MonthlyPick{}
		if err := rows.Scan(&entity.Month, &entity.WorkTitle, &entity.Cover); err != nil {
			return nil, fmt.Errorf("postgres_pick_repo_scan_failed: %w", err)
		}
		picks = append(picks, entity)
	}

	return picks, rows.Err()
}

// UpsertPick inserts or replaces the pick of the given month.
func (repository *PostgresRepository) UpsertPick(ctx context.Context, entity *MonthlyPick) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s`,
		schema.MonthlyPicks.Table,
		schema.MonthlyPicks.Month, schema.MonthlyPicks.WorkTitle, schema.MonthlyPicks.Cover,
		schema.MonthlyPicks.Month,
		schema.MonthlyPicks.WorkTitle, schema.MonthlyPicks.WorkTitle,
		schema.MonthlyPicks.Cover, schema.MonthlyPicks.Cover,
	)

	if _, err := repository.pool.Exec(ctx, query, entity.Month, entity.WorkTitle, entity.Cover); err != nil {
		return dberr.Wrap(err, "pick_upsert")
	}

	return nil
}

// DeletePick removes the pick of the given month.
func (repository *PostgresRepository) DeletePick(ctx context.Context, month string) error {
	query := fmt.Sprintf(
		"DELETE FROM %s WHERE %s = $1",
		schema.MonthlyPicks.Table, schema.MonthlyPicks.Month,
	)

	tag, err := repository.pool.Exec(ctx, query, month)
	if err != nil {
		return fmt.Errorf("postgres_pick_repo_delete_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

// DeleteByWorkTitle removes any pick referencing the given work title.
func (repository *PostgresRepository) DeleteByWorkTitle(ctx context.Context, title string) error {
	query := fmt.Sprintf(
		"DELETE FROM %s WHERE %s = $1",
		schema.MonthlyPicks.Table, schema.MonthlyPicks.WorkTitle,
	)

	if _, err := repository.pool.Exec(ctx, query, title); err != nil {
		return fmt.Errorf("postgres_pick_repo_delete_by_title_failed: %w", err)
	}

	return nil
}

// UpdatePickCover rewrites only the cover of the given month's pick.
func (repository *PostgresRepository) UpdatePickCover(ctx context.Context, month, cover string) error {
	query := fmt.Sprintf(
		"UPDATE %s SET %s = $2 WHERE %s = $1",
		schema.MonthlyPicks.Table, schema.MonthlyPicks.Cover, schema.MonthlyPicks.Month,
	)

	tag, err := repository.pool.Exec(ctx, query, month, cover)
	if err != nil {
		return fmt.Errorf("postgres_pick_repo_update_cover_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

// ListCharPicks returns all monthly character picks, newest month first.
func (repository *PostgresRepository) ListCharPicks(ctx context.Context) ([]*MonthlyCharPick, error) {
	query := fmt.Sprintf(
		"SELECT %s, %s, %s FROM %s ORDER BY %s DESC",
		schema.MonthlyChars.Month, schema.MonthlyChars.CharName, schema.MonthlyChars.Cover,
		schema.MonthlyChars.Table, schema.MonthlyChars.Month,
	)

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_pick_repo_list_chars_failed: %w", err)
	}
	defer rows.Close()

	picks := []*MonthlyCharPick{}
	for rows.Next() {
		entity := &MonthlyCharPick{}
		if err := rows.Scan(&entity.Month, &entity.CharName, &entity.Cover); err != nil {
			return nil, fmt.Errorf("postgres_pick_repo_scan_chars_failed: %w", err)
		}
		picks = append(picks, entity)
	}

	return picks, rows.Err()
}

// UpsertCharPick inserts or replaces the character pick of the month.
func (repository *PostgresRepository) UpsertCharPick(ctx context.Context, entity *MonthlyCharPick) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s`,
		schema.MonthlyChars.Table,
		schema.MonthlyChars.Month, schema.MonthlyChars.CharName, schema.MonthlyChars.Cover,
		schema.MonthlyChars.Month,
		schema.MonthlyChars.CharName, schema.MonthlyChars.CharName,
		schema.MonthlyChars.Cover, schema.MonthlyChars.Cover,
	)

	if _, err := repository.pool.Exec(ctx, query, entity.Month, entity.CharName, entity.Cover); err != nil {
		return dberr.Wrap(err, "char_pick_upsert")
	}

	return nil
}

// DeleteCharPick removes the character pick of the given month.
func (repository *PostgresRepository) DeleteCharPick(ctx context.Context, month string) error {
	query := fmt.Sprintf(
		"DELETE FROM %s WHERE %s = $1",
		schema.MonthlyChars.Table, schema.MonthlyChars.Month,
	)

	tag, err := repository.pool.Exec(ctx, query, month)
	if err != nil {
		return fmt.Errorf("postgres_pick_repo_delete_char_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

// UpdateCharPickCover rewrites only the cover of the month's character pick.
func (repository *PostgresRepository) UpdateCharPickCover(ctx context.Context, month, cover string) error {
	query := fmt.Sprintf(
		"UPDATE %s SET %s = $2 WHERE %s = $1",
		schema.MonthlyChars.Table, schema.MonthlyChars.Cover, schema.MonthlyChars.Month,
	)

	tag, err := repository.pool.Exec(ctx, query, month, cover)
	if err != nil {
		return fmt.Errorf("postgres_pick_repo_update_char_cover_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
