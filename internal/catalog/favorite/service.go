// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package favorite

import (
	"context"
	"log/slog"

	"github.com/adriaferrer/kiroku/internal/platform/validate"
)

// Service implements the favorites shelf use cases.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService constructs a new favorite [Service].
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

// ListFavorites returns the shelf ordered by rank.
func (service *Service) ListFavorites(ctx context.Context) ([]*Favorite, error) {
	return service.repository.ListFavorites(ctx)
}

// EntryInput is one shelf slot as submitted by the admin board.
type EntryInput struct {
	IsSaga bool
	Title  string
	Cover  *string
}

// ReplaceFavorites validates and stores the whole shelf.
//
// Ranks are assigned here from the submitted order, so clients never send
// them and the stored sequence is always dense and zero-based.
func (service *Service) ReplaceFavorites(ctx context.Context, entries []EntryInput) ([]*Favorite, error) {
	validator := &validate.Validator{}
	for _, entry := range entries {
		validator.Required("title", entry.Title)
		if entry.Cover != nil {
			validator.Cover("cover", *entry.Cover)
		}
		validator.Custom("cover", !entry.IsSaga && entry.Cover != nil,
			"Only saga cards carry their own cover")
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	favorites := make([]*Favorite, 0, len(entries))
	for position, entry := range entries {
		favorites = append(favorites, &Favorite{
			SortOrder: position,
			IsSaga:    entry.IsSaga,
			Title:     entry.Title,
			Cover:     entry.Cover,
		})
	}

	if err := service.repository.ReplaceFavorites(ctx, favorites); err != nil {
		return nil, err
	}

	return favorites, nil
}

// DeleteByTitles removes shelf entries referencing any of the given titles.
// Called by the work service as part of catalog cleanup.
func (service *Service) DeleteByTitles(ctx context.Context, titles []string) error {
	return service.repository.DeleteByTitles(ctx, titles)
}
