// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

// Package backup implements the content export pipeline: it snapshots the
// whole catalog, localizes remote cover images, and assembles the static
// site content archive.
package backup

import (
	"context"
	"fmt"
	"strconv"

	"github.com/adriaferrer/kiroku/internal/catalog/album"
	"github.com/adriaferrer/kiroku/internal/catalog/character"
	"github.com/adriaferrer/kiroku/internal/catalog/favorite"
	"github.com/adriaferrer/kiroku/internal/catalog/pick"
	"github.com/adriaferrer/kiroku/internal/catalog/profile"
	"github.com/adriaferrer/kiroku/internal/catalog/saga"
	"github.com/adriaferrer/kiroku/internal/catalog/work"
)

// Snapshot is a point-in-time copy of everything the export pipeline needs.
type Snapshot struct {
	Works        []*work.Work
	Characters   []*character.Character
	Sagas        []*saga.Saga
	Favorites    []*favorite.Favorite
	MonthlyPicks []*pick.MonthlyPick
	MonthlyChars []*pick.MonthlyCharPick
	Albums       []*album.Album
	Profile      *profile.Profile
}

// Store is the catalog surface the pipeline reads from and writes cover
// localizations back to.
type Store interface {
	Works(ctx context.Context) ([]*work.Work, error)
	Characters(ctx context.Context) ([]*character.Character, error)
	Sagas(ctx context.Context) ([]*saga.Saga, error)
	Favorites(ctx context.Context) ([]*favorite.Favorite, error)
	MonthlyPicks(ctx context.Context) ([]*pick.MonthlyPick, error)
	MonthlyChars(ctx context.Context) ([]*pick.MonthlyCharPick, error)
	Albums(ctx context.Context) ([]*album.Album, error)
	Profile(ctx context.Context) (*profile.Profile, error)

	// ApplyCover persists one localized cover path back to its source row.
	ApplyCover(ctx context.Context, writeBack WriteBack) error
}

// CatalogStore adapts the catalog repositories to the [Store] surface.
type CatalogStore struct {
	works      work.Repository
	characters character.Repository
	sagas      saga.Repository
	favorites  favorite.Repository
	picks      pick.Repository
	albums     album.Repository
	profiles   profile.Repository
}

// NewCatalogStore composes the catalog repositories into a backup [Store].
func NewCatalogStore(
	works work.Repository,
	characters character.Repository,
	sagas saga.Repository,
	favorites favorite.Repository,
	picks pick.Repository,
	albums album.Repository,
	profiles profile.Repository,
) *CatalogStore {
	return &CatalogStore{
		works:      works,
		characters: characters,
		sagas:      sagas,
		favorites:  favorites,
		picks:      picks,
		albums:     albums,
		profiles:   profiles,
	}
}

func (store *CatalogStore) Works(ctx context.Context) ([]*work.Work, error) {
	return store.works.ListAllWorks(ctx)
}

func (store *CatalogStore) Characters(ctx context.Context) ([]*character.Character, error) {
	return store.characters.ListCharacters(ctx)
}

func (store *CatalogStore) Sagas(ctx context.Context) ([]*saga.Saga, error) {
	return store.sagas.ListSagas(ctx)
}

func (store *CatalogStore) Favorites(ctx context.Context) ([]*favorite.Favorite, error) {
	return store.favorites.ListFavorites(ctx)
}

func (store *CatalogStore) MonthlyPicks(ctx context.Context) ([]*pick.MonthlyPick, error) {
	return store.picks.ListPicks(ctx)
}

func (store *CatalogStore) MonthlyChars(ctx context.Context) ([]*pick.MonthlyCharPick, error) {
	return store.picks.ListCharPicks(ctx)
}

func (store *CatalogStore) Albums(ctx context.Context) ([]*album.Album, error) {
	return store.albums.ListAlbums(ctx)
}

func (store *CatalogStore) Profile(ctx context.Context) (*profile.Profile, error) {
	return store.profiles.GetProfile(ctx)
}

// ApplyCover routes a write-back to the repository owning the table.
func (store *CatalogStore) ApplyCover(ctx context.Context, writeBack WriteBack) error {
	switch writeBack.Table {
	case TableWorks:
		return store.works.UpdateCoverByTitle(ctx, writeBack.Key, writeBack.LocalPath)

	case TableCharacters:
		id, err := strconv.Atoi(writeBack.Key)
		if err != nil {
			return fmt.Errorf("backup_writeback_bad_character_key %q: %w", writeBack.Key, err)
		}
		return store.characters.UpdateCover(ctx, id, writeBack.LocalPath)

	case TableFavorites:
		sortOrder, err := strconv.Atoi(writeBack.Key)
		if err != nil {
			return fmt.Errorf("backup_writeback_bad_favorite_key %q: %w", writeBack.Key, err)
		}
		return store.favorites.UpdateCover(ctx, sortOrder, writeBack.LocalPath)

	case TableMonthlyPicks:
		return store.picks.UpdatePickCover(ctx, writeBack.Key, writeBack.LocalPath)

	case TableMonthlyChars:
		return store.picks.UpdateCharPickCover(ctx, writeBack.Key, writeBack.LocalPath)

	default:
		return fmt.Errorf("backup_writeback_unknown_table %q", writeBack.Table)
	}
}
