// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package album

import (
	"context"
	"log/slog"

	"github.com/adriaferrer/kiroku/internal/platform/validate"
)

// Service implements the album catalog use cases.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService constructs a new album [Service].
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

// ListAlbums returns every album, newest first.
func (service *Service) ListAlbums(ctx context.Context) ([]*Album, error) {
	return service.repository.ListAlbums(ctx)
}

// SaveInput holds the data accepted when creating or updating an album.
type SaveInput struct {
	ID           int // zero for creation
	Title        string
	Artist       string
	Album        string
	Cover        string
	Year         *int
	Score        int
	CoverOffsetY int
}

// SaveAlbum validates and persists an album entry.
//
// A zero ID creates a new entry; a non-zero ID updates the existing one.
func (service *Service) SaveAlbum(ctx context.Context, input SaveInput) (*Album, error) {
	validator := &validate.Validator{}
	err := validator.
		Required("title", input.Title).
		MaxLen("title", input.Title, 300).
		Range("score", input.Score, 0, 10).
		Range("coverOffsetY", input.CoverOffsetY, 0, 100).
		Cover("cover", input.Cover).
		Err()
	if err != nil {
		return nil, err
	}

	entity := &Album{
		ID:           input.ID,
		Title:        input.Title,
		Artist:       input.Artist,
		Album:        input.Album,
		Cover:        input.Cover,
		Year:         input.Year,
		Score:        input.Score,
		CoverOffsetY: input.CoverOffsetY,
	}

	if entity.ID == 0 {
		if err := service.repository.CreateAlbum(ctx, entity); err != nil {
			return nil, err
		}
		return entity, nil
	}

	if err := service.repository.UpdateAlbum(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// AdjustOffset changes the vertical cover crop of one album without
// touching the rest of the entry.
func (service *Service) AdjustOffset(ctx context.Context, id, coverOffsetY int) error {
	validator := &validate.Validator{}
	err := validator.
		Custom("id", id <= 0, "An album ID is required").
		Range("coverOffsetY", coverOffsetY, 0, 100).
		Err()
	if err != nil {
		return err
	}

	return service.repository.UpdateOffset(ctx, id, coverOffsetY)
}

// DeleteAlbum removes an album by ID.
func (service *Service) DeleteAlbum(ctx context.Context, id int) error {
	return service.repository.DeleteAlbum(ctx, id)
}
