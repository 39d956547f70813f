// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package work

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/adriaferrer/kiroku/internal/platform/validate"
	"github.com/adriaferrer/kiroku/pkg/pagination"
)

// SagaLinker appends a newly saved title to a matching saga, if any.
//
// Implemented by the saga service. Kept as a local interface so the work
// package does not import the saga package.
type SagaLinker interface {
	AutoAppend(ctx context.Context, title string) (sagaName string, appended bool, err error)
}

// FavoriteCleaner removes favorite rows whose titles match a deleted work.
type FavoriteCleaner interface {
	DeleteByTitles(ctx context.Context, titles []string) error
}

// PickCleaner removes monthly pick rows that reference a deleted work.
type PickCleaner interface {
	DeleteByWorkTitle(ctx context.Context, title string) error
}

// Service implements the work catalog use cases.
type Service struct {
	repository Repository
	sagas      SagaLinker
	favorites  FavoriteCleaner
	picks      PickCleaner
	logger     *slog.Logger
}

// NewService constructs a new work [Service] with its dependencies.
func NewService(
	repository Repository,
	sagas SagaLinker,
	favorites FavoriteCleaner,
	picks PickCleaner,
	logger *slog.Logger,
) *Service {
	return &Service{
		repository: repository,
		sagas:      sagas,
		favorites:  favorites,
		picks:      picks,
		logger:     logger,
	}
}

// ListWorks returns a filtered page of works plus pagination metadata.
func (service *Service) ListWorks(ctx context.Context, filter Filter, params pagination.Params) ([]*Work, pagination.Meta, error) {
	filter.Type = NormalizeType(filter.Type)

	works, total, err := service.repository.ListWorks(ctx, filter, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("work_service_list_failed: %w", err)
	}

	return works, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// GetWork retrieves a single work by its storage ID.
func (service *Service) GetWork(ctx context.Context, id int) (*Work, error) {
	return service.repository.GetWork(ctx, id)
}

// SaveInput holds the data accepted when creating or updating a work.
type SaveInput struct {
	Title        string
	Cover        string
	Year         *int
	Type         string
	Status       string
	Score        int
	StartDate    string
	FinishDate   string
	CoverOffsetY int
	PrivateNotes string
}

// SaveWork validates and persists a work, creating or updating by title.
//
// # Flow
//
//  1. Normalize the media type and validate the payload.
//  2. Upsert the row keyed on the unique title.
//  3. Try to append the title to a matching saga. Saga linking failures are
//     logged but never fail the save: the entry itself is already stored.
//
// # Returns
//   - The persisted [*Work] with storage ID and timestamps populated.
func (service *Service) SaveWork(ctx context.Context, input SaveInput) (*Work, error) {
	// ── 1. Validation ─────────────────────────────────────────────────────

	mediaType := NormalizeType(input.Type)

	validator := &validate.Validator{}
	err := validator.
		Required("title", input.Title).
		MaxLen("title", input.Title, 300).
		OneOf("type", mediaType, TypeGames, TypeAnime, TypeManga).
		Range("score", input.Score, 0, 10).
		Range("coverOffsetY", input.CoverOffsetY, 0, 100).
		Cover("cover", input.Cover).
		Err()
	if err != nil {
		return nil, err
	}

	// ── 2. Persistence ────────────────────────────────────────────────────

	entity := &Work{
		Title:        input.Title,
		Cover:        input.Cover,
		Year:         input.Year,
		Type:         mediaType,
		Status:       input.Status,
		Score:        input.Score,
		StartDate:    input.StartDate,
		FinishDate:   input.FinishDate,
		CoverOffsetY: input.CoverOffsetY,
		PrivateNotes: input.PrivateNotes,
	}

	if err := service.repository.UpsertWork(ctx, entity); err != nil {
		return nil, err
	}

	// ── 3. Saga Linking (best effort) ─────────────────────────────────────

	sagaName, appended, err := service.sagas.AutoAppend(ctx, entity.Title)
	if err != nil {
		service.logger.WarnContext(ctx, "work_saga_autoappend_failed",
			slog.String("title", entity.Title),
			slog.String("error", err.Error()),
		)
	} else if appended {
		service.logger.InfoContext(ctx, "work_appended_to_saga",
			slog.String("title", entity.Title),
			slog.String("saga", sagaName),
		)
	}

	return entity, nil
}

// DeleteWork removes a work and cleans up the rows that reference its title.
//
// # Flow
//
//  1. Load the work to learn its title.
//  2. Remove favorites matching the title with and without the manga suffix.
//  3. Remove the monthly pick referencing the title, if any.
//  4. Delete the work row itself.
//
// Character rows are protected by a foreign key: deleting a work that a
// character still points at returns a Conflict error instead.
func (service *Service) DeleteWork(ctx context.Context, id int) error {
	entity, err := service.repository.GetWork(ctx, id)
	if err != nil {
		return err
	}

	withSuffix, withoutSuffix := TitleVariants(entity.Title)
	if err := service.favorites.DeleteByTitles(ctx, []string{withSuffix, withoutSuffix}); err != nil {
		return fmt.Errorf("work_service_favorite_cleanup_failed: %w", err)
	}

	if err := service.picks.DeleteByWorkTitle(ctx, entity.Title); err != nil {
		return fmt.Errorf("work_service_pick_cleanup_failed: %w", err)
	}

	return service.repository.DeleteWork(ctx, id)
}
