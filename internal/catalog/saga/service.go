// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package saga

import (
	"context"
	"log/slog"
	"strings"

	"github.com/adriaferrer/kiroku/internal/platform/validate"
	"github.com/adriaferrer/kiroku/pkg/sequence"
)

// Service implements the saga use cases, including the automatic linking of
// newly saved works into their series.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService constructs a new saga [Service].
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

// ListSagas returns every saga ordered by name.
func (service *Service) ListSagas(ctx context.Context) ([]*Saga, error) {
	return service.repository.ListSagas(ctx)
}

// GetSaga retrieves a single saga by name.
func (service *Service) GetSaga(ctx context.Context, name string) (*Saga, error) {
	return service.repository.GetSaga(ctx, name)
}

// PutSaga validates and persists a saga, re-sorting the member titles by
// their sequence number before storing.
func (service *Service) PutSaga(ctx context.Context, name string, workTitles []string) (*Saga, error) {
	validator := &validate.Validator{}
	err := validator.
		Required("name", name).
		MaxLen("name", name, 200).
		Err()
	if err != nil {
		return nil, err
	}

	if workTitles == nil {
		workTitles = []string{}
	}
	sequence.Sort(workTitles)

	entity := &Saga{Name: name, WorkTitles: workTitles}
	if err := service.repository.UpsertSaga(ctx, entity); err != nil {
		return nil, err
	}

	return entity, nil
}

// DeleteSaga removes a saga by name.
func (service *Service) DeleteSaga(ctx context.Context, name string) error {
	return service.repository.DeleteSaga(ctx, name)
}

// AutoAppend links a newly saved work title into the first saga whose name
// is a prefix of the title.
//
// # Rules
//   - Titles without a detectable sequence number are never linked. A bare
//     "Persona" should not be filed under the "Persona" saga automatically.
//   - Matching is a case-insensitive prefix check against the saga name.
//   - The first matching saga in name order wins.
//   - Appending is idempotent: titles already in the member list are skipped.
//
// # Returns
//   - The saga name and true when the title was appended.
//   - An empty name and false when no saga matched or linking was skipped.
func (service *Service) AutoAppend(ctx context.Context, title string) (string, bool, error) {
	if _, ok := sequence.Number(title); !ok {
		return "", false, nil
	}

	sagas, err := service.repository.ListSagas(ctx)
	if err != nil {
		return "", false, err
	}

	loweredTitle := strings.ToLower(title)
	for _, entity := range sagas {
		if !strings.HasPrefix(loweredTitle, strings.ToLower(entity.Name)) {
			continue
		}
		if entity.Contains(title) {
			return entity.Name, false, nil
		}

		entity.WorkTitles = append(entity.WorkTitles, title)
		sequence.Sort(entity.WorkTitles)

		if err := service.repository.UpsertSaga(ctx, entity); err != nil {
			return "", false, err
		}

		return entity.Name, true, nil
	}

	return "", false, nil
}
