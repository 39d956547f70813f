// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package work

import "context"

// Repository defines the persistence contract for works.
//
// # Error Contract
//
// Lookup methods return [dberr.ErrNotFound] when no row matches. Deletes
// return [dberr.ErrReferenced] when dependent rows (characters) still point
// at the work.
type Repository interface {
	// ListWorks returns a page of works matching the filter plus the total count.
	ListWorks(ctx context.Context, filter Filter, limit, offset int) ([]*Work, int, error)

	// ListAllWorks returns every work, ordered by title. Used by the backup pipeline.
	ListAllWorks(ctx context.Context) ([]*Work, error)

	// GetWork retrieves a single work by its storage ID.
	GetWork(ctx context.Context, id int) (*Work, error)

	// GetWorkByTitle retrieves a single work by its unique title.
	GetWorkByTitle(ctx context.Context, title string) (*Work, error)

	// UpsertWork inserts the work or, when the title already exists, updates
	// the existing row in place. The entity's ID and timestamps are refreshed
	// from the database.
	UpsertWork(ctx context.Context, entity *Work) error

	// UpdateCoverByTitle rewrites only the cover column of the named work.
	UpdateCoverByTitle(ctx context.Context, title, cover string) error

	// DeleteWork removes a work row by ID.
	DeleteWork(ctx context.Context, id int) error
}
