// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package edition

import (
	"context"
	"log/slog"

	"github.com/adriaferrer/kiroku/internal/platform/validate"
)

// Service implements the edition mapping use cases.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService constructs a new edition [Service].
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

// ListVersions returns every mapping ordered by main title.
func (service *Service) ListVersions(ctx context.Context) ([]*GameVersion, error) {
	return service.repository.ListVersions(ctx)
}

// MapInput holds the data accepted when linking an edition to a main game.
type MapInput struct {
	MainID       int64
	EditionID    int64
	MainTitle    string
	EditionTitle string
	VersionType  string
}

// MapVersion validates and stores an edition mapping.
func (service *Service) MapVersion(ctx context.Context, input MapInput) (*GameVersion, error) {
	if input.VersionType == "" {
		input.VersionType = VersionUnknown
	}

	validator := &validate.Validator{}
	err := validator.
		Custom("main_igdb_id", input.MainID <= 0, "A main game IGDB ID is required").
		Custom("edition_igdb_id", input.EditionID <= 0, "An edition IGDB ID is required").
		Custom("edition_igdb_id", input.MainID == input.EditionID, "An edition cannot point at itself").
		OneOf("version_type", input.VersionType, VersionTypes...).
		Err()
	if err != nil {
		return nil, err
	}

	entity := &GameVersion{
		MainID:       input.MainID,
		EditionID:    input.EditionID,
		MainTitle:    input.MainTitle,
		EditionTitle: input.EditionTitle,
		VersionType:  input.VersionType,
	}

	if err := service.repository.CreateVersion(ctx, entity); err != nil {
		return nil, err
	}

	return entity, nil
}

// UnmapVersion removes a mapping by its edition IGDB ID.
func (service *Service) UnmapVersion(ctx context.Context, editionID int64) error {
	return service.repository.DeleteVersion(ctx, editionID)
}
