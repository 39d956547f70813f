// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package profile

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/adriaferrer/kiroku/internal/platform/validate"
)

// Service implements the profile configuration use cases.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService constructs a new profile [Service].
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

// GetProfile reads the site configuration.
func (service *Service) GetProfile(ctx context.Context) (*Profile, error) {
	return service.repository.GetProfile(ctx)
}

// PutProfile validates and replaces the site configuration.
//
// Deco documents default to empty arrays so the stored column is always
// valid JSON regardless of what the client omitted.
func (service *Service) PutProfile(ctx context.Context, entity *Profile) (*Profile, error) {
	validator := &validate.Validator{}
	err := validator.
		MaxLen("username", entity.Username, 100).
		MaxLen("bio", entity.Bio, 2000).
		Custom("decoPairs", entity.DecoPairs != nil && !json.Valid(entity.DecoPairs), "Must be valid JSON").
		Custom("decoGroups", entity.DecoGroups != nil && !json.Valid(entity.DecoGroups), "Must be valid JSON").
		Err()
	if err != nil {
		return nil, err
	}

	if entity.DecoPairs == nil {
		entity.DecoPairs = json.RawMessage("[]")
	}
	if entity.DecoGroups == nil {
		entity.DecoGroups = json.RawMessage("[]")
	}

	if err := service.repository.PutProfile(ctx, entity); err != nil {
		return nil, err
	}

	return entity, nil
}
