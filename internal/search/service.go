// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package search

import (
	"context"
	"log/slog"

	"github.com/adriaferrer/kiroku/internal/catalog/edition"
	"github.com/adriaferrer/kiroku/internal/catalog/work"
	"github.com/adriaferrer/kiroku/internal/platform/apperr"
)

// GameSearcher is the IGDB surface the service depends on.
type GameSearcher interface {
	SearchGames(ctx context.Context, term string) ([]Result, error)
	GamesByIDs(ctx context.Context, ids []int64) ([]Result, error)
}

// MediaSearcher is the AniList surface the service depends on.
type MediaSearcher interface {
	SearchMedia(ctx context.Context, term, mediaType string) ([]Result, error)
}

// AlbumSearcher is the Spotify surface the service depends on.
type AlbumSearcher interface {
	SearchAlbums(ctx context.Context, term string) ([]AlbumResult, error)
}

// Service routes catalog searches to the right provider and applies the
// local edition knowledge to the results.
type Service struct {
	games    GameSearcher
	media    MediaSearcher
	albums   AlbumSearcher
	editions edition.Repository
	logger   *slog.Logger
}

// NewService constructs a new search [Service].
func NewService(
	games GameSearcher,
	media MediaSearcher,
	albums AlbumSearcher,
	editions edition.Repository,
	logger *slog.Logger,
) *Service {
	return &Service{
		games:    games,
		media:    media,
		albums:   albums,
		editions: editions,
		logger:   logger,
	}
}

// Search runs a media search against the provider matching the media type.
//
// # Edition Filtering
//
// Game results whose IGDB ID is mapped as a storefront edition are dropped,
// so the picker only ever offers main games.
func (service *Service) Search(ctx context.Context, term, mediaType string) ([]Result, error) {
	if term == "" {
		return nil, apperr.ValidationError("Query parameter 'q' is required")
	}

	switch work.NormalizeType(mediaType) {
	case work.TypeGames:
		results, err := service.games.SearchGames(ctx, term)
		if err != nil {
			return nil, err
		}
		return service.withoutEditions(ctx, results), nil

	case work.TypeAnime:
		return service.media.SearchMedia(ctx, term, "ANIME")

	case work.TypeManga:
		return service.media.SearchMedia(ctx, term, "MANGA")

	default:
		return nil, apperr.ValidationError("Query parameter 'type' must be games, anime or manga")
	}
}

// withoutEditions drops results mapped as storefront editions. A mapping
// lookup failure only disables filtering for this query.
func (service *Service) withoutEditions(ctx context.Context, results []Result) []Result {
	editionIDs, err := service.editions.EditionIDs(ctx)
	if err != nil {
		service.logger.WarnContext(ctx, "search_edition_filter_unavailable",
			slog.String("error", err.Error()),
		)
		return results
	}

	filtered := make([]Result, 0, len(results))
	for _, result := range results {
		if _, isEdition := editionIDs[result.ID]; isEdition {
			continue
		}
		filtered = append(filtered, result)
	}
	return filtered
}

// SearchAlbums runs a music album search.
func (service *Service) SearchAlbums(ctx context.Context, term string) ([]AlbumResult, error) {
	if term == "" {
		return nil, apperr.ValidationError("Query parameter 'q' is required")
	}

	return service.albums.SearchAlbums(ctx, term)
}

// Versions resolves the stored edition mappings of a main game against the
// provider, annotating each hit with its mapped version type.
func (service *Service) Versions(ctx context.Context, mainID int64) ([]Result, error) {
	mappings, err := service.editions.VersionsByMain(ctx, mainID)
	if err != nil {
		return nil, err
	}
	if len(mappings) == 0 {
		return []Result{}, nil
	}

	ids := make([]int64, 0, len(mappings))
	typeByID := make(map[int64]string, len(mappings))
	for _, mapping := range mappings {
		ids = append(ids, mapping.EditionID)
		typeByID[mapping.EditionID] = mapping.VersionType
	}

	results, err := service.games.GamesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for index := range results {
		results[index].VersionType = typeByID[results[index].ID]
	}

	return results, nil
}
