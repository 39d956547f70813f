// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package pick

import (
	"context"
	"log/slog"

	"github.com/adriaferrer/kiroku/internal/platform/validate"
)

// Service implements the monthly pick use cases.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService constructs a new pick [Service].
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

// ListPicks returns all monthly work picks, newest month first.
func (service *Service) ListPicks(ctx context.Context) ([]*MonthlyPick, error) {
	return service.repository.ListPicks(ctx)
}

// PutPick validates and stores the work pick for one month.
func (service *Service) PutPick(ctx context.Context, month, workTitle, cover string) (*MonthlyPick, error) {
	validator := &validate.Validator{}
	err := validator.
		Month("month", month).
		Required("work_title", workTitle).
		Cover("cover", cover).
		Err()
	if err != nil {
		return nil, err
	}

	entity := &MonthlyPick{Month: month, WorkTitle: workTitle, Cover: cover}
	if err := service.repository.UpsertPick(ctx, entity); err != nil {
		return nil, err
	}

	return entity, nil
}

// DeletePick removes the work pick of the given month.
func (service *Service) DeletePick(ctx context.Context, month string) error {
	return service.repository.DeletePick(ctx, month)
}

// DeleteByWorkTitle removes any pick referencing the given work title.
// Called by the work service as part of catalog cleanup.
func (service *Service) DeleteByWorkTitle(ctx context.Context, title string) error {
	return service.repository.DeleteByWorkTitle(ctx, title)
}

// ListCharPicks returns all monthly character picks, newest month first.
func (service *Service) ListCharPicks(ctx context.Context) ([]*MonthlyCharPick, error) {
	return service.repository.ListCharPicks(ctx)
}

// PutCharPick validates and stores the character pick for one month.
func (service *Service) PutCharPick(ctx context.Context, month, charName, cover string) (*MonthlyCharPick, error) {
	validator := &validate.Validator{}
	err := validator.
		Month("month", month).
		Required("char_name", charName).
		Cover("cover", cover).
		Err()
	if err != nil {
		return nil, err
	}

	entity := &MonthlyCharPick{Month: month, CharName: charName, Cover: cover}
	if err := service.repository.UpsertCharPick(ctx, entity); err != nil {
		return nil, err
	}

	return entity, nil
}

// DeleteCharPick removes the character pick of the given month.
func (service *Service) DeleteCharPick(ctx context.Context, month string) error {
	return service.repository.DeleteCharPick(ctx, month)
}
