// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

// Package favorite manages the ranked favorites shelf shown on the public
// profile. An entry is either a plain work reference or a saga card with
// its own cover.
package favorite

import "context"

// Favorite is one slot on the favorites shelf.
//
// SortOrder is dense and zero-based; the shelf is always replaced as a
// whole, so gaps never appear. Cover is set only for saga cards, plain
// entries inherit the cover of the referenced work.
type Favorite struct {
	SortOrder int     `json:"order"`
	IsSaga    bool    `json:"isSaga"`
	Title     string  `json:"title"`
	Cover     *string `json:"cover,omitempty"`
}

// Repository defines the persistence contract for the favorites shelf.
type Repository interface {
	// ListFavorites returns the shelf ordered by rank.
	ListFavorites(ctx context.Context) ([]*Favorite, error)

	// ReplaceFavorites swaps the whole shelf for the given entries in one
	// transaction.
	ReplaceFavorites(ctx context.Context, favorites []*Favorite) error

	// DeleteByTitles removes entries whose title matches any of the given
	// values. Used when a work is deleted from the catalog.
	DeleteByTitles(ctx context.Context, titles []string) error

	// UpdateCover rewrites the cover of the entry at the given rank.
	UpdateCover(ctx context.Context, sortOrder int, cover string) error
}
