// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package backup

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adriaferrer/kiroku/internal/catalog/album"
	"github.com/adriaferrer/kiroku/internal/catalog/character"
	"github.com/adriaferrer/kiroku/internal/catalog/favorite"
	"github.com/adriaferrer/kiroku/internal/catalog/pick"
	"github.com/adriaferrer/kiroku/internal/catalog/profile"
	"github.com/adriaferrer/kiroku/internal/catalog/saga"
	"github.com/adriaferrer/kiroku/internal/catalog/work"
	"github.com/adriaferrer/kiroku/pkg/pointer"
)

// fakeStore serves a fixed snapshot and records write-backs.
type fakeStore struct {
	snapshot Snapshot
	worksErr error

	mu         sync.Mutex
	writeBacks []WriteBack
}

func (f *fakeStore) Works(_ context.Context) ([]*work.Work, error) {
	return f.snapshot.Works, f.worksErr
}
func (f *fakeStore) Characters(_ context.Context) ([]*character.Character, error) {
	return f.snapshot.Characters, nil
}
func (f *fakeStore) Sagas(_ context.Context) ([]*saga.Saga, error) {
	return f.snapshot.Sagas, nil
}
func (f *fakeStore) Favorites(_ context.Context) ([]*favorite.Favorite, error) {
	return f.snapshot.Favorites, nil
}
func (f *fakeStore) MonthlyPicks(_ context.Context) ([]*pick.MonthlyPick, error) {
	return f.snapshot.MonthlyPicks, nil
}
func (f *fakeStore) MonthlyChars(_ context.Context) ([]*pick.MonthlyCharPick, error) {
	return f.snapshot.MonthlyChars, nil
}
func (f *fakeStore) Albums(_ context.Context) ([]*album.Album, error) {
	return f.snapshot.Albums, nil
}
func (f *fakeStore) Profile(_ context.Context) (*profile.Profile, error) {
	return f.snapshot.Profile, nil
}
func (f *fakeStore) ApplyCover(_ context.Context, writeBack WriteBack) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writeBacks = append(f.writeBacks, writeBack)
	return nil
}

// fakeFetcher serves canned bytes per URL and fails everything else.
type fakeFetcher struct {
	images map[string][]byte
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	data, ok := f.images[url]
	if !ok {
		return nil, errors.New("connection refused")
	}
	return data, nil
}

// readArchive extracts a zip produced by the service into a path-to-bytes map.
func readArchive(t *testing.T, archive []byte) map[string][]byte {
	t.Helper()

	reader, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	require.NoError(t, err)

	files := map[string][]byte{}
	for _, file := range reader.File {
		handle, err := file.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(handle)
		require.NoError(t, err)
		require.NoError(t, handle.Close())
		files[file.Name] = data
	}
	return files
}

/*
TestBuildSiteArchive_EndToEnd verifies the full pipeline on a small
catalog: content file placement, cover localization and image packing.
*/
func TestBuildSiteArchive_EndToEnd(t *testing.T) {
	store := &fakeStore{snapshot: Snapshot{
		Works: []*work.Work{
			{ID: 1, Title: "Elden Ring", Type: work.TypeGames, Score: 10, Cover: "https://images.igdb.com/elden.png"},
		},
		Favorites: []*favorite.Favorite{
			{SortOrder: 0, Title: "Elden Ring"},
		},
		Sagas: []*saga.Saga{
			{Name: "Dark Souls", WorkTitles: []string{"Dark Souls III", "Dark Souls II"}},
		},
		Profile: &profile.Profile{Username: "adria", DecoPairs: json.RawMessage(`[{"a":1}]`)},
	}}
	fetcher := &fakeFetcher{images: map[string][]byte{
		"https://images.igdb.com/elden.png": []byte("png-bytes"),
	}}
	service := NewService(store, fetcher, slog.Default())

	archive, filename, err := service.BuildSiteArchive(context.Background(), false)

	require.NoError(t, err)
	assert.Regexp(t, `^kiroku-backup-\d{4}-\d{2}-\d{2}\.zip$`, filename)

	files := readArchive(t, archive)

	// Per-work content file: identity fields stripped, cover localized.
	require.Contains(t, files, "src/content/games/elden-ring.json")
	var document map[string]any
	require.NoError(t, json.Unmarshal(files["src/content/games/elden-ring.json"], &document))
	assert.Equal(t, "/img/covers/elden-ring.png", document["cover"])
	assert.NotContains(t, document, "id")
	assert.NotContains(t, document, "created_at")

	// Downloaded image lands under public/.
	assert.Equal(t, []byte("png-bytes"), files["public/img/covers/elden-ring.png"])

	// Aggregate database: bare-title favorite, saga map, profile fields.
	require.Contains(t, files, "src/content/database.json")
	var database map[string]any
	require.NoError(t, json.Unmarshal(files["src/content/database.json"], &database))
	assert.Equal(t, []any{"Elden Ring"}, database["favorites"])
	assert.Equal(t, map[string]any{"Dark Souls": []any{"Dark Souls III", "Dark Souls II"}}, database["sagas"])
	assert.Equal(t, "adria", database["username"])

	// No write-backs without persist.
	assert.Empty(t, store.writeBacks)
}

/*
TestBuildSiteArchive_SkipsFailedDownloads verifies that an unreachable
image neither fails the build nor triggers a write-back for its row.
*/
func TestBuildSiteArchive_SkipsFailedDownloads(t *testing.T) {
	store := &fakeStore{snapshot: Snapshot{
		Works: []*work.Work{
			{ID: 1, Title: "Hades", Type: work.TypeGames, Cover: "https://cdn.example.com/ok.png"},
			{ID: 2, Title: "Celeste", Type: work.TypeGames, Cover: "https://cdn.example.com/gone.png"},
		},
	}}
	fetcher := &fakeFetcher{images: map[string][]byte{
		"https://cdn.example.com/ok.png": []byte("ok"),
	}}
	service := NewService(store, fetcher, slog.Default())

	archive, _, err := service.BuildSiteArchive(context.Background(), true)

	require.NoError(t, err)
	files := readArchive(t, archive)

	assert.Contains(t, files, "public/img/covers/hades.png")
	assert.NotContains(t, files, "public/img/covers/celeste.png")

	// Both content files still exist; only the fetched cover is persisted.
	assert.Contains(t, files, "src/content/games/celeste.json")
	require.Len(t, store.writeBacks, 1)
	assert.Equal(t, "Hades", store.writeBacks[0].Key)
}

/*
TestBuildSiteArchive_FailsOnSnapshotError verifies the all-or-nothing
snapshot rule.
*/
func TestBuildSiteArchive_FailsOnSnapshotError(t *testing.T) {
	store := &fakeStore{worksErr: errors.New("connection reset")}
	service := NewService(store, &fakeFetcher{}, slog.Default())

	_, _, err := service.BuildSiteArchive(context.Background(), false)

	require.Error(t, err)
	assert.ErrorContains(t, err, "backup_snapshot_failed")
}

/*
TestBuildSiteArchive_PersistsLocalizedCovers verifies the persist flag
writes localized paths back through the store.
*/
func TestBuildSiteArchive_PersistsLocalizedCovers(t *testing.T) {
	store := &fakeStore{snapshot: Snapshot{
		Works: []*work.Work{
			{ID: 1, Title: "Frieren", Type: work.TypeAnime, Cover: "https://cdn.example.com/frieren.webp"},
		},
		Characters: []*character.Character{
			{ID: 9, Title: "Fern", Category: character.CategoryLiked, Cover: "https://cdn.example.com/fern.png"},
		},
	}}
	fetcher := &fakeFetcher{images: map[string][]byte{
		"https://cdn.example.com/frieren.webp": []byte("webp"),
		"https://cdn.example.com/fern.png":     []byte("png"),
	}}
	service := NewService(store, fetcher, slog.Default())

	_, _, err := service.BuildSiteArchive(context.Background(), true)

	require.NoError(t, err)
	assert.ElementsMatch(t, []WriteBack{
		{Table: TableWorks, Key: "Frieren", LocalPath: "/img/covers/frieren.webp"},
		{Table: TableCharacters, Key: "9", LocalPath: "/img/chara/fern.png"},
	}, store.writeBacks)
}

/*
TestExport_DumpsEveryTable verifies the raw dump covers music and config,
which the site archive does not.
*/
func TestExport_DumpsEveryTable(t *testing.T) {
	store := &fakeStore{snapshot: Snapshot{
		Works:  []*work.Work{{ID: 1, Title: "Hades", Type: work.TypeGames, Cover: "https://cdn.example.com/h.png"}},
		Albums: []*album.Album{{ID: 1, Title: "Brave New World Instrumental", Artist: "Sasakure.UK"}},
		Profile: &profile.Profile{
			Username: "adria",
			Bio:      "media log",
		},
	}}
	service := NewService(store, &fakeFetcher{}, slog.Default())

	document, filename, err := service.Export(context.Background())

	require.NoError(t, err)
	assert.Regexp(t, `^kiroku-export-\d{4}-\d{2}-\d{2}\.json$`, filename)
	assert.Equal(t, store.snapshot.Albums, document.Music)
	assert.Equal(t, store.snapshot.Profile, document.Config)

	// The dump is verbatim: the remote cover stays remote.
	works := document.Works.([]*work.Work)
	assert.Equal(t, "https://cdn.example.com/h.png", works[0].Cover)
}

/*
TestBuildDatabaseDocument_MonthlyEntryKeys verifies the serialized key
names of monthly entries, which the site frontend reads verbatim.
*/
func TestBuildDatabaseDocument_MonthlyEntryKeys(t *testing.T) {
	snapshot := &Snapshot{
		MonthlyPicks: []*pick.MonthlyPick{
			{Month: "2026-07", WorkTitle: "Frieren", Cover: "/img/covers/monthly-pick-2026-07.webp"},
		},
		MonthlyChars: []*pick.MonthlyCharPick{
			{Month: "2026-07", CharName: "Fern", Cover: "/img/chara/monthly-char-2026-07.png"},
		},
	}

	encoded, err := json.Marshal(buildDatabaseDocument(snapshot))
	require.NoError(t, err)

	var document map[string]any
	require.NoError(t, json.Unmarshal(encoded, &document))

	picks := document["monthlyPicks"].([]any)
	require.Len(t, picks, 1)
	assert.Equal(t, map[string]any{
		"month": "2026-07",
		"title": "Frieren",
		"cover": "/img/covers/monthly-pick-2026-07.webp",
	}, picks[0])

	chars := document["monthlyChars"].([]any)
	require.Len(t, chars, 1)
	assert.Equal(t, map[string]any{
		"month": "2026-07",
		"name":  "Fern",
		"cover": "/img/chara/monthly-char-2026-07.png",
	}, chars[0])
}

/*
TestBuildDatabaseDocument_PartitionsCharacters verifies category routing
and hall of fame ordering.
*/
func TestBuildDatabaseDocument_PartitionsCharacters(t *testing.T) {
	snapshot := &Snapshot{
		Characters: []*character.Character{
			{Title: "Second", Category: character.CategoryHallOfFame, SortOrder: pointer.To(1)},
			{Title: "First", Category: character.CategoryHallOfFame, SortOrder: pointer.To(0)},
			{Title: "Liked", Category: character.CategoryLiked},
			{Title: "Maybe", Category: character.CategoryInterested},
			{Title: "Nope", Category: character.CategoryDisliked},
		},
	}

	document := buildDatabaseDocument(snapshot)

	require.Len(t, document.Characters, 2)
	assert.Equal(t, "First", document.Characters[0].Title)
	assert.Equal(t, "Second", document.Characters[1].Title)
	require.Len(t, document.LikedCharacters, 1)
	require.Len(t, document.InterestedCharacters, 1)
	require.Len(t, document.DislikedCharacters, 1)
}
