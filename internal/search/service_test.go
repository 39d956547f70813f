// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package search

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adriaferrer/kiroku/internal/catalog/edition"
	"github.com/adriaferrer/kiroku/internal/platform/apperr"
)

// fakeGameSearcher serves canned IGDB results.
type fakeGameSearcher struct {
	results []Result
}

func (f *fakeGameSearcher) SearchGames(_ context.Context, _ string) ([]Result, error) {
	return f.results, nil
}

func (f *fakeGameSearcher) GamesByIDs(_ context.Context, ids []int64) ([]Result, error) {
	matched := []Result{}
	for _, result := range f.results {
		for _, id := range ids {
			if result.ID == id {
				matched = append(matched, result)
			}
		}
	}
	return matched, nil
}

// fakeMediaSearcher records the requested AniList media type.
type fakeMediaSearcher struct {
	lastType string
}

func (f *fakeMediaSearcher) SearchMedia(_ context.Context, _, mediaType string) ([]Result, error) {
	f.lastType = mediaType
	return []Result{}, nil
}

type fakeAlbumSearcher struct{}

func (fakeAlbumSearcher) SearchAlbums(_ context.Context, _ string) ([]AlbumResult, error) {
	return []AlbumResult{}, nil
}

// fakeEditionRepository serves a fixed edition mapping set.
type fakeEditionRepository struct {
	versions []*edition.GameVersion
}

func (f *fakeEditionRepository) ListVersions(_ context.Context) ([]*edition.GameVersion, error) {
	return f.versions, nil
}

func (f *fakeEditionRepository) VersionsByMain(_ context.Context, mainID int64) ([]*edition.GameVersion, error) {
	matched := []*edition.GameVersion{}
	for _, version := range f.versions {
		if version.MainID == mainID {
			matched = append(matched, version)
		}
	}
	return matched, nil
}

func (f *fakeEditionRepository) EditionIDs(_ context.Context) (map[int64]struct{}, error) {
	ids := map[int64]struct{}{}
	for _, version := range f.versions {
		ids[version.EditionID] = struct{}{}
	}
	return ids, nil
}

func (f *fakeEditionRepository) CreateVersion(_ context.Context, entity *edition.GameVersion) error {
	f.versions = append(f.versions, entity)
	return nil
}

func (f *fakeEditionRepository) DeleteVersion(_ context.Context, _ int64) error { return nil }

/*
TestSearch_FiltersMappedEditions verifies that game hits mapped as
storefront editions never reach the client.
*/
func TestSearch_FiltersMappedEditions(t *testing.T) {
	games := &fakeGameSearcher{results: []Result{
		{ID: 100, Title: "Elden Ring"},
		{ID: 101, Title: "Elden Ring Deluxe Edition"},
	}}
	editions := &fakeEditionRepository{versions: []*edition.GameVersion{
		{MainID: 100, EditionID: 101, VersionType: edition.VersionEdition},
	}}
	service := NewService(games, &fakeMediaSearcher{}, fakeAlbumSearcher{}, editions, slog.Default())

	results, err := service.Search(context.Background(), "elden", "games")

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Elden Ring", results[0].Title)
}

/*
TestSearch_RoutesByMediaType verifies provider routing, including the
legacy "game" alias.
*/
func TestSearch_RoutesByMediaType(t *testing.T) {
	media := &fakeMediaSearcher{}
	service := NewService(&fakeGameSearcher{}, media, fakeAlbumSearcher{}, &fakeEditionRepository{}, slog.Default())

	_, err := service.Search(context.Background(), "frieren", "anime")
	require.NoError(t, err)
	assert.Equal(t, "ANIME", media.lastType)

	_, err = service.Search(context.Background(), "berserk", "manga")
	require.NoError(t, err)
	assert.Equal(t, "MANGA", media.lastType)

	_, err = service.Search(context.Background(), "hades", "game")
	require.NoError(t, err)
}

/*
TestSearch_RejectsMissingQuery verifies the mandatory q parameter.
*/
func TestSearch_RejectsMissingQuery(t *testing.T) {
	service := NewService(&fakeGameSearcher{}, &fakeMediaSearcher{}, fakeAlbumSearcher{}, &fakeEditionRepository{}, slog.Default())

	_, err := service.Search(context.Background(), "", "games")

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

/*
TestVersions_AnnotatesResults verifies that resolved editions carry the
stored version type.
*/
func TestVersions_AnnotatesResults(t *testing.T) {
	games := &fakeGameSearcher{results: []Result{
		{ID: 201, Title: "Persona 5 Royal"},
		{ID: 202, Title: "Persona 5 DLC Pack"},
	}}
	editions := &fakeEditionRepository{versions: []*edition.GameVersion{
		{MainID: 200, EditionID: 201, VersionType: edition.VersionEdition},
		{MainID: 200, EditionID: 202, VersionType: edition.VersionDLC},
	}}
	service := NewService(games, &fakeMediaSearcher{}, fakeAlbumSearcher{}, editions, slog.Default())

	results, err := service.Versions(context.Background(), 200)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, edition.VersionEdition, results[0].VersionType)
	assert.Equal(t, edition.VersionDLC, results[1].VersionType)
}

/*
TestNormalizeIGDBCover verifies thumbnail upgrade and protocol fixing.
*/
func TestNormalizeIGDBCover(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"protocol relative thumbnail",
			"//images.igdb.com/igdb/image/upload/t_thumb/co4jni.jpg",
			"https://images.igdb.com/igdb/image/upload/t_cover_big/co4jni.jpg",
		},
		{
			"already absolute",
			"https://images.igdb.com/igdb/image/upload/t_thumb/abc.jpg",
			"https://images.igdb.com/igdb/image/upload/t_cover_big/abc.jpg",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, normalizeIGDBCover(testCase.input))
		})
	}
}
