// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package work

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

// NewRepository creates a new PostgreSQL implementation of the work [Repository].
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// workColumns is the canonical SELECT column list for the works table.
var workColumns = strings.Join(schema.Works.Columns(), ", ")

// scanWork reads one works row into an entity.
func scanWork(row interface{ Scan(...any) error }) (*Work, error) {
	entity := &Work{}
	err := row.Scan(
		&entity.ID,
		&entity.Title,
		&entity.Cover,
		&entity.Year,
		&entity.Type,
		&entity.Status,
		&entity.Score,
		&entity.StartDate,
		&entity.FinishDate,
		&entity.CoverOffsetY,
		&entity.PrivateNotes,
		&entity.CreatedAt,
		&entity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return entity, nil
}

// ListWorks returns a filtered, paginated page of works plus the total count.
//
// # Filtering
//
// Type filters exactly; Query matches the title case-insensitively as a
// substring. Results are ordered by most recently updated first, which is
// what the admin library view displays.
func (repository *PostgresRepository) ListWorks(ctx context.Context, filter Filter, limit, offset int) ([]*Work, int, error) {
	conditions := []string{"TRUE"}
	arguments := []any{}

	if filter.Type != "" {
		arguments = append(arguments, filter.Type)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", schema.Works.Type, len(arguments)))
	}
	if filter.Query != "" {
		arguments = append(arguments, "%"+filter.Query+"%")
		conditions = append(conditions, fmt.Sprintf("%s ILIKE $%d", schema.Works.Title, len(arguments)))
	}

	where := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", schema.Works.Table, where)
	var total int
	if err := repository.pool.QueryRow(ctx, countQuery, arguments...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_work_repo_count_failed: %w", err)
	}

	listQuery := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s ORDER BY %s DESC LIMIT $%d OFFSET $%d",
		workColumns, schema.Works.Table, where, schema.Works.UpdatedAt, len(arguments)+1, len(arguments)+2,
	)
	arguments = append(arguments, limit, offset)

	rows, err := repository.pool.Query(ctx, listQuery, arguments...)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_work_repo_list_failed: %w", err)
	}
	defer rows.Close()

	works := []*Work{}
	for rows.Next() {
		entity, err := scanWork(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres_work_repo_scan_failed: %w", err)
		}
		works = append(works, entity)
	}

	return works, total, rows.Err()
}

// ListAllWorks returns every work ordered by title.
func (repository *PostgresRepository) ListAllWorks(ctx context.Context) ([]*Work, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s ORDER BY %s",
		workColumns, schema.Works.Table, schema.Works.Title,
	)

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_work_repo_list_all_failed: %w", err)
	}
	defer rows.Close()

	works := []*Work{}
	for rows.Next() {
		entity, err := scanWork(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres_work_repo_scan_failed: %w", err)
		}
		works = append(works, entity)
	}

	return works, rows.Err()
}

// GetWork retrieves a single work by its storage ID.
func (repository *PostgresRepository) GetWork(ctx context.Context, id int) (*Work, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1",
		workColumns, schema.Works.Table, schema.Works.ID,
	)

	entity, err := scanWork(repository.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "work_get")
	}

	return entity, nil
}

// GetWorkByTitle retrieves a single work by its unique title.
func (repository *PostgresRepository) GetWorkByTitle(ctx context.Context, title string) (*Work, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1",
		workColumns, schema.Works.Table, schema.Works.Title,
	)

	entity, err := scanWork(repository.pool.QueryRow(ctx, query, title))
	if err != nil {
		return nil, dberr.Wrap(err, "work_get_by_title")
	}

	return entity, nil
}

// UpsertWork inserts a work or updates the row with the same title.
//
// The RETURNING clause refreshes the entity's ID and timestamps so callers
// always see the stored state.
func (repository *PostgresRepository) UpsertWork(ctx context.Context, entity *Work) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = NOW()
		RETURNING %s, %s, %s`,
		schema.Works.Table,
		schema.Works.Title, schema.Works.Cover, schema.Works.Year, schema.Works.Type,
		schema.Works.Status, schema.Works.Score, schema.Works.StartDate,
		schema.Works.FinishDate, schema.Works.CoverOffsetY, schema.Works.PrivateNotes,
		schema.Works.Title,
		schema.Works.Cover, schema.Works.Cover,
		schema.Works.Year, schema.Works.Year,
		schema.Works.Type, schema.Works.Type,
		schema.Works.Status, schema.Works.Status,
		schema.Works.Score, schema.Works.Score,
		schema.Works.StartDate, schema.Works.StartDate,
		schema.Works.FinishDate, schema.Works.FinishDate,
		schema.Works.CoverOffsetY, schema.Works.CoverOffsetY,
		schema.Works.PrivateNotes, schema.Works.PrivateNotes,
		schema.Works.UpdatedAt,
		schema.Works.ID, schema.Works.CreatedAt, schema.Works.UpdatedAt,
	)

	err := repository.pool.QueryRow(ctx, query,
		entity.Title,
		entity.Cover,
		entity.Year,
		entity.Type,
		entity.Status,
		entity.Score,
		entity.StartDate,
		entity.FinishDate,
		entity.CoverOffsetY,
		entity.PrivateNotes,
	).Scan(&entity.ID, &entity.CreatedAt, &entity.UpdatedAt)

	if err != nil {
		return dberr.Wrap(err, "work_upsert")
	}

	return nil
}

// UpdateCoverByTitle rewrites only the cover column of the named work.
func (repository *PostgresRepository) UpdateCoverByTitle(ctx context.Context, title, cover string) error {
	query := fmt.Sprintf(
		"UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1",
		schema.Works.Table, schema.Works.Cover, schema.Works.UpdatedAt, schema.Works.Title,
	)

	tag, err := repository.pool.Exec(ctx, query, title, cover)
	if err != nil {
		return fmt.Errorf("postgres_work_repo_update_cover_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

// DeleteWork removes a work row by ID.
//
// A foreign key violation (a character still references the work) is mapped
// to [dberr.ErrReferenced] so the handler can return HTTP 409.
func (repository *PostgresRepository) DeleteWork(ctx context.Context, id int) error {
	query := fmt.Sprintf(
		"DELETE FROM %s WHERE %s = $1",
		schema.Works.Table, schema.Works.ID,
	)

	tag, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "work_delete")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
