// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package work

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adriaferrer/kiroku/internal/platform/apperr"
	"github.com/adriaferrer/kiroku/pkg/pagination"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	byID    map[int]*Work
	nextID  int
	deleted []int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byID: map[int]*Work{}, nextID: 1}
}

func (f *fakeRepository) ListWorks(_ context.Context, filter Filter, limit, offset int) ([]*Work, int, error) {
	works := []*Work{}
	for _, entity := range f.byID {
		if filter.Type != "" && entity.Type != filter.Type {
			continue
		}
		works = append(works, entity)
	}
	return works, len(works), nil
}

func (f *fakeRepository) ListAllWorks(_ context.Context) ([]*Work, error) {
	works := []*Work{}
	for _, entity := range f.byID {
		works = append(works, entity)
	}
	return works, nil
}

func (f *fakeRepository) GetWork(_ context.Context, id int) (*Work, error) {
	entity, ok := f.byID[id]
	if !ok {
		return nil, apperr.NotFound("Work")
	}
	return entity, nil
}

func (f *fakeRepository) GetWorkByTitle(_ context.Context, title string) (*Work, error) {
	for _, entity := range f.byID {
		if entity.Title == title {
			return entity, nil
		}
	}
	return nil, apperr.NotFound("Work")
}

func (f *fakeRepository) UpsertWork(_ context.Context, entity *Work) error {
	for id, existing := range f.byID {
		if existing.Title == entity.Title {
			entity.ID = id
			f.byID[id] = entity
			return nil
		}
	}
	entity.ID = f.nextID
	f.byID[f.nextID] = entity
	f.nextID++
	return nil
}

func (f *fakeRepository) UpdateCoverByTitle(_ context.Context, title, cover string) error {
	for _, entity := range f.byID {
		if entity.Title == title {
			entity.Cover = cover
			return nil
		}
	}
	return apperr.NotFound("Work")
}

func (f *fakeRepository) DeleteWork(_ context.Context, id int) error {
	if _, ok := f.byID[id]; !ok {
		return apperr.NotFound("Work")
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeSagaLinker records auto-append calls and can simulate failures.
type fakeSagaLinker struct {
	calls []string
	err   error
}

func (f *fakeSagaLinker) AutoAppend(_ context.Context, title string) (string, bool, error) {
	f.calls = append(f.calls, title)
	if f.err != nil {
		return "", false, f.err
	}
	return "", false, nil
}

// fakeFavoriteCleaner records which titles were passed for cleanup.
type fakeFavoriteCleaner struct {
	titles []string
}

func (f *fakeFavoriteCleaner) DeleteByTitles(_ context.Context, titles []string) error {
	f.titles = append(f.titles, titles...)
	return nil
}

// fakePickCleaner records which work titles were passed for cleanup.
type fakePickCleaner struct {
	titles []string
}

func (f *fakePickCleaner) DeleteByWorkTitle(_ context.Context, title string) error {
	f.titles = append(f.titles, title)
	return nil
}

func newTestService(repo Repository, sagas SagaLinker) *Service {
	return NewService(repo, sagas, &fakeFavoriteCleaner{}, &fakePickCleaner{}, slog.Default())
}

/*
TestSaveWork_NormalizesLegacyGameType verifies that the historical "game"
type alias is stored as "games".
*/
func TestSaveWork_NormalizesLegacyGameType(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo, &fakeSagaLinker{})

	entity, err := service.SaveWork(context.Background(), SaveInput{
		Title:        "Elden Ring",
		Type:         "game",
		Score:        10,
		CoverOffsetY: 50,
	})

	require.NoError(t, err)
	assert.Equal(t, TypeGames, entity.Type)
	assert.NotZero(t, entity.ID)
}

/*
TestSaveWork_ValidationFailures verifies per-field validation errors.
*/
func TestSaveWork_ValidationFailures(t *testing.T) {
	testCases := []struct {
		name  string
		input SaveInput
	}{
		{"missing title", SaveInput{Type: TypeGames}},
		{"unknown media type", SaveInput{Title: "X", Type: "movies"}},
		{"score out of range", SaveInput{Title: "X", Type: TypeAnime, Score: 11}},
		{"malformed cover", SaveInput{Title: "X", Type: TypeAnime, Cover: "not-a-url"}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			service := newTestService(newFakeRepository(), &fakeSagaLinker{})

			_, err := service.SaveWork(context.Background(), testCase.input)

			require.Error(t, err)
			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, "VALIDATION_ERROR", appError.Code)
		})
	}
}

/*
TestSaveWork_SagaLinkFailureDoesNotFailSave verifies that a saga linking
error never rolls back an already persisted save.
*/
func TestSaveWork_SagaLinkFailureDoesNotFailSave(t *testing.T) {
	repo := newFakeRepository()
	linker := &fakeSagaLinker{err: errors.New("saga store down")}
	service := newTestService(repo, linker)

	entity, err := service.SaveWork(context.Background(), SaveInput{
		Title: "Persona 5",
		Type:  TypeGames,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Persona 5"}, linker.calls)
	assert.NotNil(t, repo.byID[entity.ID])
}

/*
TestDeleteWork_CleansDependentRows verifies that deleting a work removes
favorites under both title variants and the monthly pick referencing it.
*/
func TestDeleteWork_CleansDependentRows(t *testing.T) {
	repo := newFakeRepository()
	favorites := &fakeFavoriteCleaner{}
	picks := &fakePickCleaner{}
	service := NewService(repo, &fakeSagaLinker{}, favorites, picks, slog.Default())

	entity, err := service.SaveWork(context.Background(), SaveInput{Title: "Berserk", Type: TypeManga})
	require.NoError(t, err)

	require.NoError(t, service.DeleteWork(context.Background(), entity.ID))

	assert.ElementsMatch(t, []string{"Berserk", "Berserk -M"}, favorites.titles)
	assert.Equal(t, []string{"Berserk"}, picks.titles)
	assert.Equal(t, []int{entity.ID}, repo.deleted)
}

/*
TestListWorks_FiltersByType verifies type filtering and pagination metadata.
*/
func TestListWorks_FiltersByType(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo, &fakeSagaLinker{})

	_, err := service.SaveWork(context.Background(), SaveInput{Title: "Frieren", Type: TypeAnime})
	require.NoError(t, err)
	_, err = service.SaveWork(context.Background(), SaveInput{Title: "Hades", Type: "game"})
	require.NoError(t, err)

	works, metadata, err := service.ListWorks(context.Background(), Filter{Type: "game"}, pagination.Params{Page: 1, Limit: 50})

	require.NoError(t, err)
	require.Len(t, works, 1)
	assert.Equal(t, "Hades", works[0].Title)
	assert.Equal(t, 1, metadata.Total)
}
