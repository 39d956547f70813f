// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package backup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adriaferrer/kiroku/internal/catalog/character"
	"github.com/adriaferrer/kiroku/internal/catalog/favorite"
	"github.com/adriaferrer/kiroku/internal/catalog/pick"
	"github.com/adriaferrer/kiroku/internal/catalog/work"
	"github.com/adriaferrer/kiroku/pkg/pointer"
)

/*
TestRewrite_LocalizesWorkCovers verifies the canonical naming of work
cover images.
*/
func TestRewrite_LocalizesWorkCovers(t *testing.T) {
	snapshot := &Snapshot{
		Works: []*work.Work{
			{Title: "Elden Ring", Cover: "https://images.igdb.com/elden.png"},
			{Title: "NieR:Automata", Cover: "https://images.igdb.com/nier.webp"},
		},
	}

	plan := Rewrite(snapshot)

	require.Len(t, plan.Downloads, 2)
	assert.Equal(t, "/img/covers/elden-ring.png", snapshot.Works[0].Cover)
	assert.Equal(t, "/img/covers/nierautomata.webp", snapshot.Works[1].Cover)
	assert.Equal(t, Download{URL: "https://images.igdb.com/elden.png", LocalPath: "/img/covers/elden-ring.png"}, plan.Downloads[0])
	assert.Contains(t, plan.WriteBacks, WriteBack{Table: TableWorks, Key: "Elden Ring", LocalPath: "/img/covers/elden-ring.png"})
}

/*
TestRewrite_IsIdempotent verifies that a second pass over an already
localized snapshot plans nothing.
*/
func TestRewrite_IsIdempotent(t *testing.T) {
	snapshot := &Snapshot{
		Works: []*work.Work{{Title: "Hades", Cover: "https://cdn.example.com/hades.jpg"}},
		Characters: []*character.Character{
			{ID: 7, Title: "Zagreus", Cover: "https://cdn.example.com/zagreus.png", Category: character.CategoryLiked},
		},
	}

	first := Rewrite(snapshot)
	second := Rewrite(snapshot)

	assert.Len(t, first.Downloads, 2)
	assert.Empty(t, second.Downloads)
	assert.Empty(t, second.WriteBacks)
}

/*
TestRewrite_DeduplicatesSharedURLs verifies that records sharing a remote
URL produce exactly one download job and share its local path.
*/
func TestRewrite_DeduplicatesSharedURLs(t *testing.T) {
	sharedURL := "https://cdn.example.com/shared.png"
	snapshot := &Snapshot{
		Works: []*work.Work{
			{Title: "Berserk", Cover: sharedURL},
			{Title: "Berserk -M", Cover: sharedURL},
		},
	}

	plan := Rewrite(snapshot)

	require.Len(t, plan.Downloads, 1)
	assert.Equal(t, "/img/covers/berserk.png", snapshot.Works[0].Cover)
	assert.Equal(t, "/img/covers/berserk.png", snapshot.Works[1].Cover)
	require.Len(t, plan.WriteBacks, 2)
}

/*
TestRewrite_SyntheticKeys verifies the naming of covers that do not belong
to a single work: saga cards and monthly picks.
*/
func TestRewrite_SyntheticKeys(t *testing.T) {
	snapshot := &Snapshot{
		Favorites: []*favorite.Favorite{
			{SortOrder: 0, IsSaga: true, Title: "Dark Souls", Cover: pointer.To("https://cdn.example.com/ds.jpg")},
			{SortOrder: 1, IsSaga: false, Title: "Celeste"},
		},
		MonthlyPicks: []*pick.MonthlyPick{
			{Month: "2026-07", WorkTitle: "Frieren", Cover: "https://cdn.example.com/frieren.webp"},
		},
		MonthlyChars: []*pick.MonthlyCharPick{
			{Month: "2026-07", CharName: "Fern", Cover: "https://cdn.example.com/fern.png"},
		},
	}

	plan := Rewrite(snapshot)

	require.Len(t, plan.Downloads, 3)
	assert.Equal(t, "/img/covers/saga-dark-souls.jpg", *snapshot.Favorites[0].Cover)
	assert.Equal(t, "/img/covers/monthly-pick-2026-07.webp", snapshot.MonthlyPicks[0].Cover)
	assert.Equal(t, "/img/chara/monthly-char-2026-07.png", snapshot.MonthlyChars[0].Cover)
	assert.Contains(t, plan.WriteBacks, WriteBack{Table: TableFavorites, Key: "0", LocalPath: "/img/covers/saga-dark-souls.jpg"})
	assert.Contains(t, plan.WriteBacks, WriteBack{Table: TableMonthlyPicks, Key: "2026-07", LocalPath: "/img/covers/monthly-pick-2026-07.webp"})
	assert.Contains(t, plan.WriteBacks, WriteBack{Table: TableMonthlyChars, Key: "2026-07", LocalPath: "/img/chara/monthly-char-2026-07.png"})
}

/*
TestRewrite_UnknownExtensionFallsBackToJpg verifies the extension allow
list.
*/
func TestRewrite_UnknownExtensionFallsBackToJpg(t *testing.T) {
	snapshot := &Snapshot{
		Works: []*work.Work{{Title: "Outer Wilds", Cover: "https://cdn.example.com/cover.svg"}},
	}

	plan := Rewrite(snapshot)

	require.Len(t, plan.Downloads, 1)
	assert.Equal(t, "/img/covers/outer-wilds.jpg", snapshot.Works[0].Cover)
}
