// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package edition

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/adriaferrer/kiroku/internal/platform/apperr"
	requestutil "github.com/adriaferrer/kiroku/internal/platform/request"
	"github.com/adriaferrer/kiroku/internal/platform/respond"
)

// Handler implements the edition mapping HTTP endpoints.
type Handler struct {
	editionService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{editionService: service}
}

// Routes returns a [chi.Router] configured with edition mapping routes.
//
// # Endpoints
//   - GET    /              : List every mapping.
//   - POST   /              : Link an edition to a main game.
//   - DELETE /{editionID}   : Remove a mapping.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Delete("/{editionID}", handler.remove)

	return router
}

// list handles GET /api/v1/editions requests.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	versions, err := handler.editionService.ListVersions(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, versions)
}

// createRequest represents the JSON payload for linking an edition.
type createRequest struct {
	MainID       int64  `json:"main_igdb_id"`
	EditionID    int64  `json:"edition_igdb_id"`
	MainTitle    string `json:"main_title"`
	EditionTitle string `json:"edition_title"`
	VersionType  string `json:"version_type"`
}

// create handles POST /api/v1/editions requests.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity, err := handler.editionService.MapVersion(request.Context(), MapInput{
		MainID:       input.MainID,
		EditionID:    input.EditionID,
		MainTitle:    input.MainTitle,
		EditionTitle: input.EditionTitle,
		VersionType:  input.VersionType,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entity)
}

// remove handles DELETE /api/v1/editions/{editionID} requests.
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	editionID, err := strconv.ParseInt(requestutil.Param(request, "editionID"), 10, 64)
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid edition ID"))
		return
	}

	if err := handler.editionService.UnmapVersion(request.Context(), editionID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
