// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package character

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/adriaferrer/kiroku/internal/platform/apperr"
	requestutil "github.com/adriaferrer/kiroku/internal/platform/request"
	"github.com/adriaferrer/kiroku/internal/platform/respond"
)

// Handler implements the character HTTP endpoints.
type Handler struct {
	characterService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{characterService: service}
}

// Routes returns a [chi.Router] configured with character routes.
//
// # Endpoints
//   - GET    /         : List all characters.
//   - PUT    /         : Create or update a character.
//   - POST   /reorder  : Bulk category/rank placement.
//   - POST   /offsets  : Bulk cover crop adjustment.
//   - DELETE /{id}     : Delete a character.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Put("/", handler.save)
	router.Post("/reorder", handler.reorder)
	router.Post("/offsets", handler.offsets)
	router.Delete("/{id}", handler.remove)

	return router
}

// list handles GET /api/v1/characters requests.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	characters, err := handler.characterService.ListCharacters(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, characters)
}

// saveRequest represents the JSON payload for creating or updating a character.
type saveRequest struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Cover        string `json:"cover"`
	SourceID     *int   `json:"source_id"`
	CoverOffsetY int    `json:"coverOffsetY"`
	Category     string `json:"category"`
	SortOrder    *int   `json:"order"`
}

// save handles PUT /api/v1/characters requests.
func (handler *Handler) save(writer http.ResponseWriter, request *http.Request) {
	var input saveRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity, err := handler.characterService.SaveCharacter(request.Context(), SaveInput{
		ID:           input.ID,
		Title:        input.Title,
		Cover:        input.Cover,
		SourceID:     input.SourceID,
		CoverOffsetY: input.CoverOffsetY,
		Category:     input.Category,
		SortOrder:    input.SortOrder,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if input.ID == 0 {
		respond.Created(writer, entity)
		return
	}
	respond.OK(writer, entity)
}

// reorder handles POST /api/v1/characters/reorder requests.
//
// The board sends the full placement of every moved character so drag and
// drop across categories lands in one atomic batch.
func (handler *Handler) reorder(writer http.ResponseWriter, request *http.Request) {
	var placements []Placement
	if err := requestutil.DecodeJSON(request, &placements); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.characterService.Reorder(request.Context(), placements); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// offsets handles POST /api/v1/characters/offsets requests.
func (handler *Handler) offsets(writer http.ResponseWriter, request *http.Request) {
	var changes []OffsetChange
	if err := requestutil.DecodeJSON(request, &changes); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.characterService.AdjustOffsets(request.Context(), changes); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// remove handles DELETE /api/v1/characters/{id} requests.
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	id, err := strconv.Atoi(requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid character ID"))
		return
	}

	if err := handler.characterService.DeleteCharacter(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
