// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package character

import (
	"context"
	"log/slog"

	"github.com/adriaferrer/kiroku/internal/platform/validate"
)

// Service implements the character catalog use cases.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService constructs a new character [Service].
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

// ListCharacters returns every character grouped for the admin board.
func (service *Service) ListCharacters(ctx context.Context) ([]*Character, error) {
	return service.repository.ListCharacters(ctx)
}

// SaveInput holds the data accepted when creating or updating a character.
type SaveInput struct {
	ID           int // zero for creation
	Title        string
	Cover        string
	SourceID     *int
	CoverOffsetY int
	Category     string
	SortOrder    *int
}

// SaveCharacter validates and persists a character entry.
//
// A zero ID creates a new entry; a non-zero ID updates the existing one.
func (service *Service) SaveCharacter(ctx context.Context, input SaveInput) (*Character, error) {
	validator := &validate.Validator{}
	err := validator.
		Required("title", input.Title).
		MaxLen("title", input.Title, 200).
		OneOf("category", input.Category, Categories...).
		Range("coverOffsetY", input.CoverOffsetY, 0, 100).
		Cover("cover", input.Cover).
		Custom("order", input.Category != CategoryHallOfFame && input.SortOrder != nil,
			"Only hall of fame entries carry a rank").
		Err()
	if err != nil {
		return nil, err
	}

	entity := &Character{
		ID:           input.ID,
		Title:        input.Title,
		Cover:        input.Cover,
		SourceID:     input.SourceID,
		CoverOffsetY: input.CoverOffsetY,
		Category:     input.Category,
		SortOrder:    input.SortOrder,
	}

	if entity.ID == 0 {
		if err := service.repository.CreateCharacter(ctx, entity); err != nil {
			return nil, err
		}
		return entity, nil
	}

	if err := service.repository.UpdateCharacter(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// Reorder applies a batch of category/rank placements atomically.
func (service *Service) Reorder(ctx context.Context, placements []Placement) error {
	validator := &validate.Validator{}
	validator.Custom("placements", len(placements) == 0, "At least one placement is required")
	for _, placement := range placements {
		validator.OneOf("category", placement.Category, Categories...)
	}
	if err := validator.Err(); err != nil {
		return err
	}

	return service.repository.ApplyPlacements(ctx, placements)
}

// AdjustOffsets applies a batch of cover crop changes atomically.
func (service *Service) AdjustOffsets(ctx context.Context, changes []OffsetChange) error {
	validator := &validate.Validator{}
	validator.Custom("offsets", len(changes) == 0, "At least one change is required")
	for _, change := range changes {
		validator.Range("coverOffsetY", change.CoverOffsetY, 0, 100)
	}
	if err := validator.Err(); err != nil {
		return err
	}

	return service.repository.ApplyOffsets(ctx, changes)
}

// DeleteCharacter removes a character by ID.
func (service *Service) DeleteCharacter(ctx context.Context, id int) error {
	return service.repository.DeleteCharacter(ctx, id)
}
