// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

// Package character tracks favorite characters across the catalog, grouped
// into ranked categories.
package character

import (
	"context"
	"time"
)

// Character categories. Only hall_of_fame entries carry an explicit rank.
const (
	CategoryHallOfFame = "hall_of_fame"
	CategoryLiked      = "liked"
	CategoryInterested = "interested"
	CategoryDisliked   = "disliked"
)

// Categories lists every valid category value.
var Categories = []string{CategoryHallOfFame, CategoryLiked, CategoryInterested, CategoryDisliked}

// Character is a tracked character entry.
//
// SourceID optionally points at the work the character comes from; the
// reference is enforced by a foreign key, so the work cannot be deleted
// while the character exists.
type Character struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Cover        string    `json:"cover"`
	SourceID     *int      `json:"source_id"`
	CoverOffsetY int       `json:"coverOffsetY"`
	Category     string    `json:"category"`
	SortOrder    *int      `json:"order"`
	CreatedAt    time.Time `json:"created_at"`
}

// Placement moves one character to a category and rank in a bulk reorder.
type Placement struct {
	ID        int    `json:"id"`
	Category  string `json:"category"`
	SortOrder *int   `json:"order"`
}

// OffsetChange adjusts the vertical cover crop of one character.
type OffsetChange struct {
	ID           int `json:"id"`
	CoverOffsetY int `json:"coverOffsetY"`
}

// Repository defines the persistence contract for characters.
type Repository interface {
	// ListCharacters returns every character, hall of fame first by rank,
	// then the remaining categories by creation time.
	ListCharacters(ctx context.Context) ([]*Character, error)

	// GetCharacter retrieves a single character by ID.
	GetCharacter(ctx context.Context, id int) (*Character, error)

	// CreateCharacter inserts a new character and populates its ID.
	CreateCharacter(ctx context.Context, entity *Character) error

	// UpdateCharacter rewrites the mutable fields of an existing character.
	UpdateCharacter(ctx context.Context, entity *Character) error

	// UpdateCover rewrites only the cover column of one character.
	UpdateCover(ctx context.Context, id int, cover string) error

	// ApplyPlacements moves characters between categories and ranks in a
	// single transaction.
	ApplyPlacements(ctx context.Context, placements []Placement) error

	// ApplyOffsets adjusts cover crops in a single transaction.
	ApplyOffsets(ctx context.Context, changes []OffsetChange) error

	// DeleteCharacter removes a character row by ID.
	DeleteCharacter(ctx context.Context, id int) error
}
