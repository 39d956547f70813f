// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

// Package pick manages the pick-of-the-month entries, one work and one
// character per calendar month.
package pick

import "context"

// MonthlyPick is the work highlighted for one month. Month uses the
// "YYYY-MM" key format and is the natural primary key.
type MonthlyPick struct {
	Month     string `json:"month"`
	WorkTitle string `json:"work_title"`
	Cover     string `json:"cover"`
}

// MonthlyCharPick is the character highlighted for one month.
type MonthlyCharPick struct {
	Month    string `json:"month"`
	CharName string `json:"char_name"`
	Cover    string `json:"cover"`
}

// Repository defines the persistence contract for monthly picks.
type Repository interface {
	// ListPicks returns all monthly work picks, newest month first.
	ListPicks(ctx context.Context) ([]*MonthlyPick, error)

	// UpsertPick inserts or replaces the pick of the given month.
	UpsertPick(ctx context.Context, entity *MonthlyPick) error

	// DeletePick removes the pick of the given month.
	DeletePick(ctx context.Context, month string) error

	// DeleteByWorkTitle removes any pick referencing the given work title.
	// Used when a work is deleted from the catalog.
	DeleteByWorkTitle(ctx context.Context, title string) error

	// UpdatePickCover rewrites only the cover of the given month's pick.
	UpdatePickCover(ctx context.Context, month, cover string) error

	// ListCharPicks returns all monthly character picks, newest month first.
	ListCharPicks(ctx context.Context) ([]*MonthlyCharPick, error)

	// UpsertCharPick inserts or replaces the character pick of the month.
	UpsertCharPick(ctx context.Context, entity *MonthlyCharPick) error

	// DeleteCharPick removes the character pick of the given month.
	DeleteCharPick(ctx context.Context, month string) error

	// UpdateCharPickCover rewrites only the cover of the month's character pick.
	UpdateCharPickCover(ctx context.Context, month, cover string) error
}
