// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

// Package album tracks rated music albums. Albums live alongside the media
// catalog but are not part of the content archive, only of JSON exports.
package album

import (
	"context"
	"time"
)

// Album is a tracked music album entry.
type Album struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Artist       string    `json:"artist"`
	Album        string    `json:"album"`
	Cover        string    `json:"cover"`
	Year         *int      `json:"year"`
	Score        int       `json:"score"`
	CoverOffsetY int       `json:"coverOffsetY"`
	CreatedAt    time.Time `json:"created_at"`
}

// Repository defines the persistence contract for albums.
type Repository interface {
	// ListAlbums returns every album, newest first.
	ListAlbums(ctx context.Context) ([]*Album, error)

	// GetAlbum retrieves a single album by ID.
	GetAlbum(ctx context.Context, id int) (*Album, error)

	// CreateAlbum inserts a new album and populates its ID.
	CreateAlbum(ctx context.Context, entity *Album) error

	// UpdateAlbum rewrites the mutable fields of an existing album.
	UpdateAlbum(ctx context.Context, entity *Album) error

	// UpdateOffset adjusts only the vertical cover crop of one album.
	UpdateOffset(ctx context.Context, id, coverOffsetY int) error

	// DeleteAlbum removes an album row by ID.
	DeleteAlbum(ctx context.Context, id int) error
}
