// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package favorite

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adriaferrer/kiroku/internal/platform/apperr"
	"github.com/adriaferrer/kiroku/pkg/pointer"
)

// fakeRepository records the last replaced shelf.
type fakeRepository struct {
	stored []*Favorite
}

func (f *fakeRepository) ListFavorites(_ context.Context) ([]*Favorite, error) {
	return f.stored, nil
}

func (f *fakeRepository) ReplaceFavorites(_ context.Context, favorites []*Favorite) error {
	f.stored = favorites
	return nil
}

func (f *fakeRepository) DeleteByTitles(_ context.Context, _ []string) error {
	return nil
}

func (f *fakeRepository) UpdateCover(_ context.Context, _ int, _ string) error {
	return nil
}

/*
TestReplaceFavorites_AssignsDenseOrder verifies that ranks come from the
submitted array position, dense and zero-based, regardless of what the
client claims.
*/
func TestReplaceFavorites_AssignsDenseOrder(t *testing.T) {
	repository := &fakeRepository{}
	service := NewService(repository, slog.Default())

	stored, err := service.ReplaceFavorites(context.Background(), []EntryInput{
		{Title: "Elden Ring"},
		{IsSaga: true, Title: "Dark Souls", Cover: pointer.To("https://cdn.example.com/ds.jpg")},
		{Title: "Celeste"},
	})

	require.NoError(t, err)
	require.Len(t, stored, 3)
	for position, entry := range stored {
		assert.Equal(t, position, entry.SortOrder)
	}
	assert.Equal(t, repository.stored, stored)
}

/*
TestReplaceFavorites_RejectsInvalidEntries verifies the shelf validation
rules.
*/
func TestReplaceFavorites_RejectsInvalidEntries(t *testing.T) {
	testCases := []struct {
		name    string
		entries []EntryInput
	}{
		{
			name:    "missing title",
			entries: []EntryInput{{Title: ""}},
		},
		{
			name:    "cover on a plain entry",
			entries: []EntryInput{{Title: "Hades", Cover: pointer.To("https://cdn.example.com/h.png")}},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			service := NewService(&fakeRepository{}, slog.Default())

			_, err := service.ReplaceFavorites(context.Background(), testCase.entries)

			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		})
	}
}
