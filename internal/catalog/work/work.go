// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

// Package work implements the media catalog core: tracked games, anime and
// manga entries, identified by their unique title.
package work

import "time"

// Media types a work can belong to. The admin frontend historically sent
// "game" for game entries; [NormalizeType] folds it into the stored value.
const (
	TypeGames = "games"
	TypeAnime = "anime"
	TypeManga = "manga"
)

// Work is a tracked game, anime or manga entry.
//
// # Identity
//
// Title is unique across all media types and acts as the natural key for
// cross-table references (favorites, monthly picks, saga membership). The
// numeric ID exists only for storage and is excluded from content exports.
type Work struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Cover        string    `json:"cover"`
	Year         *int      `json:"year"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	Score        int       `json:"score"`
	StartDate    string    `json:"startDate"`
	FinishDate   string    `json:"finishDate"`
	CoverOffsetY int       `json:"coverOffsetY"`
	PrivateNotes string    `json:"privateNotes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Filter holds the parameters for a paginated work listing.
type Filter struct {
	Type  string // games | anime | manga, empty for all
	Query string // substring match against title
}

// NormalizeType folds legacy type aliases into their stored value.
func NormalizeType(mediaType string) string {
	if mediaType == "game" {
		return TypeGames
	}
	return mediaType
}

// MangaSuffix marks manga entries that share a title with their anime
// adaptation (e.g. "Berserk -M"). Cleanup of dependent rows must consider
// both the suffixed and the bare variant.
const MangaSuffix = " -M"

// TitleVariants returns the title with and without the manga suffix.
func TitleVariants(title string) (withSuffix, withoutSuffix string) {
	if len(title) > len(MangaSuffix) && title[len(title)-len(MangaSuffix):] == MangaSuffix {
		return title, title[:len(title)-len(MangaSuffix)]
	}
	return title + MangaSuffix, title
}
