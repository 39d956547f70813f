// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package search

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/adriaferrer/kiroku/internal/platform/apperr"
	requestutil "github.com/adriaferrer/kiroku/internal/platform/request"
	"github.com/adriaferrer/kiroku/internal/platform/respond"
)

// Handler implements the catalog search HTTP endpoints.
type Handler struct {
	searchService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{searchService: service}
}

// Routes returns a [chi.Router] configured with search routes.
//
// # Endpoints
//   - GET /                   : Media search (q, type parameters).
//   - GET /songs              : Album search (q parameter).
//   - GET /versions/{mainID}  : Resolve stored edition mappings of a game.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.search)
	router.Get("/songs", handler.searchSongs)
	router.Get("/versions/{mainID}", handler.versions)

	return router
}

// search handles GET /api/v1/search requests.
func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	term := request.URL.Query().Get("q")
	mediaType := request.URL.Query().Get("type")

	results, err := handler.searchService.Search(request.Context(), term, mediaType)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, results)
}

// searchSongs handles GET /api/v1/search/songs requests.
func (handler *Handler) searchSongs(writer http.ResponseWriter, request *http.Request) {
	term := request.URL.Query().Get("q")

	results, err := handler.searchService.SearchAlbums(request.Context(), term)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, results)
}

// versions handles GET /api/v1/search/versions/{mainID} requests.
func (handler *Handler) versions(writer http.ResponseWriter, request *http.Request) {
	mainID, err := strconv.ParseInt(requestutil.Param(request, "mainID"), 10, 64)
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid main game ID"))
		return
	}

	results, err := handler.searchService.Versions(request.Context(), mainID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, results)
}
