// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package saga

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adriaferrer/kiroku/internal/platform/apperr"
)

// fakeRepository is an in-memory Repository for saga service tests.
type fakeRepository struct {
	sagas map[string]*Saga
	order []string
}

func newFakeRepository(sagas ...*Saga) *fakeRepository {
	repo := &fakeRepository{sagas: map[string]*Saga{}}
	for _, entity := range sagas {
		repo.sagas[entity.Name] = entity
		repo.order = append(repo.order, entity.Name)
	}
	return repo
}

func (f *fakeRepository) ListSagas(_ context.Context) ([]*Saga, error) {
	list := []*Saga{}
	for _, name := range f.order {
		list = append(list, f.sagas[name])
	}
	return list, nil
}

func (f *fakeRepository) GetSaga(_ context.Context, name string) (*Saga, error) {
	entity, ok := f.sagas[name]
	if !ok {
		return nil, apperr.NotFound("Saga")
	}
	return entity, nil
}

func (f *fakeRepository) UpsertSaga(_ context.Context, entity *Saga) error {
	if _, ok := f.sagas[entity.Name]; !ok {
		f.order = append(f.order, entity.Name)
	}
	f.sagas[entity.Name] = entity
	return nil
}

func (f *fakeRepository) DeleteSaga(_ context.Context, name string) error {
	if _, ok := f.sagas[name]; !ok {
		return apperr.NotFound("Saga")
	}
	delete(f.sagas, name)
	return nil
}

/*
TestAutoAppend_AppendsNumberedSequel verifies that a numbered title is
appended to the matching saga and the member list is re-sorted with the
newest entry first.
*/
func TestAutoAppend_AppendsNumberedSequel(t *testing.T) {
	repo := newFakeRepository(&Saga{
		Name:       "Persona",
		WorkTitles: []string{"Persona 4", "Persona 3"},
	})
	service := NewService(repo, slog.Default())

	name, appended, err := service.AutoAppend(context.Background(), "Persona 5")

	require.NoError(t, err)
	assert.True(t, appended)
	assert.Equal(t, "Persona", name)
	assert.Equal(t, []string{"Persona 5", "Persona 4", "Persona 3"}, repo.sagas["Persona"].WorkTitles)
}

/*
TestAutoAppend_SkipsUnnumberedTitles verifies that titles without a
detectable sequence number are never linked automatically.
*/
func TestAutoAppend_SkipsUnnumberedTitles(t *testing.T) {
	repo := newFakeRepository(&Saga{Name: "Persona", WorkTitles: []string{"Persona 3"}})
	service := NewService(repo, slog.Default())

	_, appended, err := service.AutoAppend(context.Background(), "Persona")

	require.NoError(t, err)
	assert.False(t, appended)
	assert.Equal(t, []string{"Persona 3"}, repo.sagas["Persona"].WorkTitles)
}

/*
TestAutoAppend_IsIdempotent verifies that re-saving an already linked title
does not duplicate it in the member list.
*/
func TestAutoAppend_IsIdempotent(t *testing.T) {
	repo := newFakeRepository(&Saga{
		Name:       "Yakuza",
		WorkTitles: []string{"Yakuza 2", "Yakuza 0"},
	})
	service := NewService(repo, slog.Default())

	name, appended, err := service.AutoAppend(context.Background(), "Yakuza 2")

	require.NoError(t, err)
	assert.False(t, appended)
	assert.Equal(t, "Yakuza", name)
	assert.Equal(t, []string{"Yakuza 2", "Yakuza 0"}, repo.sagas["Yakuza"].WorkTitles)
}

/*
TestAutoAppend_FirstMatchingSagaWins verifies that when two saga names both
prefix the title, the first one in listing order receives the entry.
*/
func TestAutoAppend_FirstMatchingSagaWins(t *testing.T) {
	repo := newFakeRepository(
		&Saga{Name: "Final Fantasy", WorkTitles: []string{"Final Fantasy IX"}},
		&Saga{Name: "Final Fantasy VII", WorkTitles: []string{"Final Fantasy VII Remake"}},
	)
	service := NewService(repo, slog.Default())

	name, appended, err := service.AutoAppend(context.Background(), "Final Fantasy VII Rebirth")

	require.NoError(t, err)
	assert.True(t, appended)
	assert.Equal(t, "Final Fantasy", name)
}

/*
TestAutoAppend_MatchesCaseInsensitively verifies prefix matching ignores
letter case.
*/
func TestAutoAppend_MatchesCaseInsensitively(t *testing.T) {
	repo := newFakeRepository(&Saga{Name: "dark souls", WorkTitles: []string{}})
	service := NewService(repo, slog.Default())

	name, appended, err := service.AutoAppend(context.Background(), "Dark Souls III")

	require.NoError(t, err)
	assert.True(t, appended)
	assert.Equal(t, "dark souls", name)
}

/*
TestPutSaga_SortsMembers verifies that stored member lists are re-sorted by
sequence number, descending, with unnumbered titles last.
*/
func TestPutSaga_SortsMembers(t *testing.T) {
	service := NewService(newFakeRepository(), slog.Default())

	entity, err := service.PutSaga(context.Background(), "Zelda", []string{
		"Zelda Chronicles",
		"Zelda 2",
		"Zelda 36",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Zelda 36", "Zelda 2", "Zelda Chronicles"}, entity.WorkTitles)
}

/*
TestPutSaga_RequiresName verifies the name validation rule.
*/
func TestPutSaga_RequiresName(t *testing.T) {
	service := NewService(newFakeRepository(), slog.Default())

	_, err := service.PutSaga(context.Background(), "  ", nil)

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}
