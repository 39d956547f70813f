// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package album

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/adriaferrer/kiroku/internal/platform/apperr"
	requestutil "github.com/adriaferrer/kiroku/internal/platform/request"
	"github.com/adriaferrer/kiroku/internal/platform/respond"
)

// Handler implements the album HTTP endpoints.
type Handler struct {
	albumService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{albumService: service}
}

// Routes returns a [chi.Router] configured with album routes.
//
// # Endpoints
//   - GET    /         : List all albums.
//   - PUT    /         : Create or update an album.
//   - POST   /offsets  : Adjust one album's vertical cover crop.
//   - DELETE /{id}     : Delete an album.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Put("/", handler.save)
	router.Post("/offsets", handler.offset)
	router.Delete("/{id}", handler.remove)

	return router
}

// list handles GET /api/v1/music requests.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	albums, err := handler.albumService.ListAlbums(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, albums)
}

// saveRequest represents the JSON payload for creating or updating an album.
type saveRequest struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Artist       string `json:"artist"`
	Album        string `json:"album"`
	Cover        string `json:"cover"`
	Year         *int   `json:"year"`
	Score        int    `json:"score"`
	CoverOffsetY int    `json:"coverOffsetY"`
}

// save handles PUT /api/v1/music requests.
func (handler *Handler) save(writer http.ResponseWriter, request *http.Request) {
	var input saveRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity, err := handler.albumService.SaveAlbum(request.Context(), SaveInput{
		ID:           input.ID,
		Title:        input.Title,
		Artist:       input.Artist,
		Album:        input.Album,
		Cover:        input.Cover,
		Year:         input.Year,
		Score:        input.Score,
		CoverOffsetY: input.CoverOffsetY,
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

// offsetRequest represents the JSON payload for a cover crop adjustment.
type offsetRequest struct {
	ID           int `json:"id"`
	CoverOffsetY int `json:"coverOffsetY"`
}

// offset handles POST /api/v1/music/offsets requests.
func (handler *Handler) offset(writer http.ResponseWriter, request *http.Request) {
	var input offsetRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.albumService.AdjustOffset(request.Context(), input.ID, input.CoverOffsetY); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// remove handles DELETE /api/v1/music/{id} requests.
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	id, err := strconv.Atoi(requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid album ID"))
		return
	}

	if err := handler.albumService.DeleteAlbum(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
